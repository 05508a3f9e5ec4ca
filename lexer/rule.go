package lexer

import "github.com/digideskio/sonavara/nfa"

// Action turns the bytes a rule matched into a token id. A nil Action
// marks a skip rule: the cursor still advances past the match, but Lex
// produces no token and continues scanning from the first rule.
type Action func(match []byte) int

// Rule pairs a pattern with the action it feeds on match. Rules are tried
// in table order; the first one whose compiled pattern matches a
// positive-length prefix at the cursor wins, regardless of whether a
// later rule would have matched more input.
type Rule struct {
	Pattern string
	Action  Action
}

// Table is an ordered rule list, tried top to bottom on every call to Lex.
type Table []Rule

// compiledRule is a Rule plus everything compiling it once produces: the
// Thompson NFA entry point, its state count (for sizing the simulator's
// sparse set), and a conservative required literal prefix used to skip
// NFA runs the prefilter can already rule out.
type compiledRule struct {
	rule      Rule
	start     *nfa.State
	numStates uint32
	prefix    []byte
}
