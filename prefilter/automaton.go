// Package prefilter wraps github.com/coregx/ahocorasick to give the lexer
// a fast-reject check over every rule's required literal prefix (see
// package literal). It never decides which rule wins a match: it only
// lets the lexer skip NFA runs it can prove are doomed at the current
// position, the same role the Aho-Corasick automaton plays for large
// literal alternations in the teacher engine this was adapted from.
package prefilter

import "github.com/coregx/ahocorasick"

// RuleFilter multiplexes every lexer rule's extracted literal prefix into
// a single Aho-Corasick automaton.
type RuleFilter struct {
	auto *ahocorasick.Automaton
}

// NewRuleFilter builds a filter from one required-prefix slice per rule.
// A nil entry means "this rule has no extractable literal prefix" and is
// simply left out of the automaton; PossibleAt always defers to the NFA
// for such rules by construction (it is never asked about them).
func NewRuleFilter(prefixes [][]byte) (*RuleFilter, error) {
	builder := ahocorasick.NewBuilder()
	n := 0
	for _, p := range prefixes {
		if len(p) == 0 {
			continue
		}
		builder.AddPattern(p)
		n++
	}
	if n == 0 {
		return &RuleFilter{}, nil
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &RuleFilter{auto: auto}, nil
}

// PossibleAt reports whether some registered literal prefix occurs
// starting exactly at pos in haystack. A filter with no registered
// prefixes (every rule lacked one) always reports true, since it has
// nothing to rule out.
func (rf *RuleFilter) PossibleAt(haystack []byte, pos int) bool {
	if rf.auto == nil {
		return true
	}
	if pos >= len(haystack) {
		return false
	}
	m := rf.auto.Find(haystack, pos)
	return m != nil && m.Start == pos
}
