// Package lexer turns an ordered table of pattern/action rules into a
// longest-prefix-per-rule, first-rule-wins tokenizer over an input stream.
// It is the only package in this module that performs I/O, and it is a
// thin driver: all matching is delegated to package nfa.
package lexer

import (
	"fmt"
	"io"

	"github.com/digideskio/sonavara/literal"
	"github.com/digideskio/sonavara/nfa"
	"github.com/digideskio/sonavara/prefilter"
	"github.com/digideskio/sonavara/syntax"
)

// Lexer holds an input buffer, a cursor into it, and every rule's compiled
// NFA. The buffer is always owned by the Lexer (even lexers started from a
// string copy their source once, at construction), so Close has a single
// uniform cleanup path regardless of which constructor built it.
type Lexer struct {
	src    []byte
	pos    int
	rules  []compiledRule
	filter *prefilter.RuleFilter
	closed bool
}

// NewFromString builds a Lexer over src, compiling every rule in table up
// front. It fails fast: a syntax or NFA-construction error in any rule's
// pattern is fatal and no Lexer is returned, naming which rule failed.
func NewFromString(src string, table Table) (*Lexer, error) {
	return newLexer([]byte(src), table)
}

// NewFromReader reads r to EOF into an owned buffer and builds a Lexer
// over it, the same way NewFromString does over an in-memory string.
func NewFromReader(r io.Reader, table Table) (*Lexer, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lexer: reading input: %w", err)
	}
	return newLexer(buf, table)
}

func newLexer(src []byte, table Table) (*Lexer, error) {
	rules := make([]compiledRule, 0, len(table))
	prefixes := make([][]byte, 0, len(table))

	for i, r := range table {
		tokens, err := syntax.Parse(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("lexer: rule %d (%q): %w", i, r.Pattern, err)
		}
		start, numStates, err := nfa.Compile(tokens, 0)
		if err != nil {
			return nil, fmt.Errorf("lexer: rule %d (%q): %w", i, r.Pattern, err)
		}

		prefix, _ := literal.RequiredPrefix(r.Pattern)
		rules = append(rules, compiledRule{rule: r, start: start, numStates: numStates, prefix: prefix})
		prefixes = append(prefixes, prefix)
	}

	filter, err := prefilter.NewRuleFilter(prefixes)
	if err != nil {
		return nil, fmt.Errorf("lexer: building prefilter: %w", err)
	}

	return &Lexer{src: src, rules: rules, filter: filter}, nil
}

// Lex scans the rule table in order starting at the cursor. The first
// rule whose compiled pattern accepts a positive-length prefix there wins
// outright: Lex never looks further for a longer match from a later rule.
// A matching skip rule (nil Action) advances the cursor and restarts the
// scan from the first rule, producing no token. io.EOF signals the
// cursor has reached the end of input; ErrNoMatch signals that no rule
// matched a positive-length prefix at a cursor short of the end.
func (l *Lexer) Lex() (int, error) {
restart:
	if l.pos >= len(l.src) {
		return 0, io.EOF
	}

	// A single combined check over every rule's required prefix: if none
	// of them can start here, every rule that HAS a required prefix can
	// be skipped without running its NFA at all.
	somePrefixHere := l.filter.PossibleAt(l.src, l.pos)

	for i := range l.rules {
		cr := &l.rules[i]
		if len(cr.prefix) > 0 && !somePrefixHere {
			continue
		}

		n, ok := nfa.MatchPrefix(cr.start, cr.numStates, l.src[l.pos:])
		if !ok || n <= 0 {
			continue
		}

		matched := l.src[l.pos : l.pos+n]
		l.pos += n

		if cr.rule.Action == nil {
			goto restart
		}
		return cr.rule.Action(matched), nil
	}

	return 0, ErrNoMatch
}

// Close releases every rule's compiled NFA. A Lexer must not be used
// again after Close; Lex's behavior past that point is undefined.
func (l *Lexer) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	for i := range l.rules {
		nfa.Free(l.rules[i].start)
		l.rules[i].start = nil
	}
	return nil
}
