// Package nfa implements Thompson construction of a nondeterministic finite
// automaton from a syntax.Tokens postfix stream, and a parallel
// state-set (Pike/Thompson) simulator that matches without backtracking.
package nfa

import "github.com/digideskio/sonavara/internal/bitset"

// Kind identifies the role of a State in the automaton graph.
type Kind int

const (
	// KindAtom consumes one input byte that is a member of Atom, moving to Out.
	KindAtom Kind = iota
	// KindSplit follows both Out and Out1 simultaneously (epsilon transitions).
	KindSplit
	// KindMatch marks an accepting state. There is exactly one Match
	// instance in the whole program; see MatchState.
	KindMatch
)

// State is one node of the NFA graph. Atom and Split states are owned by
// whichever Regex compiled them; the shared MatchState is not owned by
// anyone and must never be mutated or freed.
type State struct {
	ID   uint32
	Kind Kind
	Atom bitset.ByteSet
	Out  *State
	Out1 *State // only meaningful when Kind == KindSplit

	// marked is Free's mark-pass flag. It lives on the state itself so the
	// destructor never needs an auxiliary visited set to break cycles.
	marked bool
}

// MatchState is the single shared accepting sentinel every compiled NFA's
// accepting paths are patched to point at. It carries no outgoing edges
// and is never freed by Free.
var MatchState = &State{ID: 0, Kind: KindMatch}
