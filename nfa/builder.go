package nfa

import "github.com/digideskio/sonavara/syntax"

// frag is a partially-built piece of the automaton on the construction
// stack: a start state plus the list of dangling out-edges still waiting
// to be patched to whatever comes next.
type frag struct {
	start *State
	out   patchList
}

// outEdge names one dangling edge: either s.Out or s.Out1.
type outEdge struct {
	s     *State
	out1  bool
}

// patchList is a list of dangling edges that all need to end up pointing
// at the same future state.
type patchList []outEdge

func (pl patchList) patch(target *State) {
	for _, e := range pl {
		if e.out1 {
			e.s.Out1 = target
		} else {
			e.s.Out = target
		}
	}
}

func concatPatch(a, b patchList) patchList {
	return append(a, b...)
}

// Compile runs Thompson construction over a postfix token stream, producing
// the entry state of the NFA graph. maxStates bounds the number of Atom and
// Split states the construction may allocate (0 means unlimited); it exists
// to keep a pathological {m,n} expansion from exhausting memory.
func Compile(tokens syntax.Tokens, maxStates uint32) (*State, uint32, error) {
	var stack []frag
	var nextID uint32 = 1

	newState := func(k Kind) (*State, error) {
		if maxStates != 0 && nextID > maxStates {
			return nil, &BuildError{Reason: "pattern compiles to more states than Config.MaxStates allows"}
		}
		s := &State{ID: nextID, Kind: k}
		nextID++
		return s, nil
	}

	pop := func() (frag, error) {
		if len(stack) == 0 {
			return frag{}, &BuildError{Reason: "malformed token stream: operator with no operand"}
		}
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]
		return f, nil
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case syntax.Atom:
			s, err := newState(KindAtom)
			if err != nil {
				return nil, 0, err
			}
			s.Atom = tok.Set
			stack = append(stack, frag{start: s, out: patchList{{s: s}}})

		case syntax.Concat:
			f2, err := pop()
			if err != nil {
				return nil, 0, err
			}
			f1, err := pop()
			if err != nil {
				return nil, 0, err
			}
			f1.out.patch(f2.start)
			stack = append(stack, frag{start: f1.start, out: f2.out})

		case syntax.Alt:
			f2, err := pop()
			if err != nil {
				return nil, 0, err
			}
			f1, err := pop()
			if err != nil {
				return nil, 0, err
			}
			s, err := newState(KindSplit)
			if err != nil {
				return nil, 0, err
			}
			s.Out = f1.start
			s.Out1 = f2.start
			stack = append(stack, frag{start: s, out: concatPatch(f1.out, f2.out)})

		case syntax.Star:
			f, err := pop()
			if err != nil {
				return nil, 0, err
			}
			s, err := newState(KindSplit)
			if err != nil {
				return nil, 0, err
			}
			s.Out = f.start
			f.out.patch(s)
			stack = append(stack, frag{start: s, out: patchList{{s: s, out1: true}}})

		case syntax.Plus:
			f, err := pop()
			if err != nil {
				return nil, 0, err
			}
			s, err := newState(KindSplit)
			if err != nil {
				return nil, 0, err
			}
			s.Out = f.start
			f.out.patch(s)
			stack = append(stack, frag{start: f.start, out: patchList{{s: s, out1: true}}})

		case syntax.Opt:
			f, err := pop()
			if err != nil {
				return nil, 0, err
			}
			s, err := newState(KindSplit)
			if err != nil {
				return nil, 0, err
			}
			s.Out = f.start
			stack = append(stack, frag{start: s, out: concatPatch(f.out, patchList{{s: s, out1: true}})})
		}
	}

	if len(stack) != 1 {
		return nil, 0, &BuildError{Reason: "malformed token stream: did not reduce to a single fragment"}
	}

	f := stack[0]
	f.out.patch(MatchState)
	return f.start, nextID, nil
}
