package nfa

import "github.com/digideskio/sonavara/internal/sparse"

// threadList is one "parallel state set": every NFA state reachable by
// epsilon transitions from the threads alive at a given input position,
// deduplicated by State.ID via a sparse.SparseSet so no state is stepped
// twice in the same generation (that's what keeps simulation O(N*M)
// instead of exponential, the whole point of not backtracking).
type threadList struct {
	set     *sparse.SparseSet
	states  []*State // Atom states only; ready to step on the next byte
	matched bool
}

func newThreadList(numStates uint32) *threadList {
	capacity := numStates
	if capacity == 0 {
		capacity = 1
	}
	return &threadList{set: sparse.NewSparseSet(capacity)}
}

// reset empties tl so it can stand in for a fresh generation without a
// new allocation: the simulator ping-pongs between two thread lists for
// the whole input instead of allocating one per byte.
func (tl *threadList) reset() {
	tl.set.Clear()
	tl.states = tl.states[:0]
	tl.matched = false
}

// add performs the epsilon-closure insertion of s: Split states are
// expanded recursively into both branches: Match sets the matched flag;
// Atom states join the stepping frontier.
func (tl *threadList) add(s *State) {
	if s == nil || tl.set.Contains(s.ID) {
		return
	}
	tl.set.Insert(s.ID)

	switch s.Kind {
	case KindSplit:
		tl.add(s.Out)
		tl.add(s.Out1)
	case KindMatch:
		tl.matched = true
	default:
		tl.states = append(tl.states, s)
	}
}

// step consumes input byte b, advancing from cur's frontier into next's,
// which is reset (not reallocated) first.
func step(cur, next *threadList, b byte) {
	next.reset()
	for _, s := range cur.states {
		if s.Atom.Test(b) {
			next.add(s.Out)
		}
	}
}

// IsMatch reports whether input is matched in its entirety by the NFA
// rooted at start.
func IsMatch(start *State, numStates uint32, input []byte) bool {
	cur := newThreadList(numStates)
	next := newThreadList(numStates)
	cur.add(start)

	for _, b := range input {
		if len(cur.states) == 0 {
			return false
		}
		step(cur, next, b)
		cur, next = next, cur
	}
	return cur.matched
}

// MatchPrefix finds the longest prefix of input accepted by the NFA
// rooted at start, simulating every live thread in parallel rather than
// committing to the first one that reaches Match (greedy backtracking
// would stop too early on inputs like "ab" against "a|ab"). It reports
// (length, true) on any accepting prefix, or (0, false) if none exists,
// including the empty prefix.
func MatchPrefix(start *State, numStates uint32, input []byte) (int, bool) {
	cur := newThreadList(numStates)
	next := newThreadList(numStates)
	cur.add(start)

	longest := -1
	if cur.matched {
		longest = 0
	}

	for i, b := range input {
		if len(cur.states) == 0 {
			break
		}
		step(cur, next, b)
		cur, next = next, cur
		if cur.matched {
			longest = i + 1
		}
	}

	if longest < 0 {
		return 0, false
	}
	return longest, true
}
