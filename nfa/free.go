package nfa

// Free severs every edge in the NFA graph rooted at start so the garbage
// collector can reclaim it, even though the graph may contain cycles (a
// `*`/`+` split's body can re-enter the split itself). It runs two DFS
// passes over the graph itself rather than building an auxiliary visited
// set:
//
//  1. Mark pass — walk from start, tagging each state it reaches via its
//     own marked field. When about to descend into a successor that is
//     already marked (a back-edge closing a cycle, or a second path
//     converging on a state already reached another way), null that
//     successor pointer first instead of descending again. This prunes
//     the graph down to a spanning out-tree in place, so the second pass
//     can never revisit a state or loop forever.
//  2. Free pass — walk the now-acyclic graph, nulling every remaining
//     edge on each state as it is visited.
//
// The shared MatchState sentinel is skipped by both passes and is never
// mutated or freed. Calling Free twice on the same graph, or with
// start == nil, is a no-op.
func Free(start *State) {
	if start == nil || start == MatchState {
		return
	}

	markPass(start)
	freePass(start)
}

// markPass tags every state reachable from start and cuts any edge that
// would re-enter an already-tagged state, turning cycles and reconverging
// paths alike into dead ends the free pass will never cross.
func markPass(start *State) {
	start.marked = true
	stack := []*State{start}

	for len(stack) > 0 {
		n := len(stack) - 1
		s := stack[n]
		stack = stack[:n]

		if s.Out != nil && s.Out != MatchState {
			if s.Out.marked {
				s.Out = nil
			} else {
				s.Out.marked = true
				stack = append(stack, s.Out)
			}
		}
		if s.Kind == KindSplit && s.Out1 != nil && s.Out1 != MatchState {
			if s.Out1.marked {
				s.Out1 = nil
			} else {
				s.Out1.marked = true
				stack = append(stack, s.Out1)
			}
		}
	}
}

// freePass walks the tree the mark pass left behind and nulls every
// remaining edge. The mark pass already guarantees each state is reached
// exactly once here, so no visited tracking is needed in this pass either.
func freePass(start *State) {
	stack := []*State{start}

	for len(stack) > 0 {
		n := len(stack) - 1
		s := stack[n]
		stack = stack[:n]

		out, out1 := s.Out, s.Out1
		s.Out, s.Out1, s.marked = nil, nil, false

		if out != nil && out != MatchState {
			stack = append(stack, out)
		}
		if out1 != nil && out1 != MatchState {
			stack = append(stack, out1)
		}
	}
}
