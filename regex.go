// Package sonavara is a regular-expression engine built on Thompson's
// construction: a pattern compiles to an NFA, and matching runs by
// parallel state-set simulation in O(N·M) time (N = input length,
// M = pattern size) with no backtracking.
//
// Supported syntax: literals, `.`, concatenation, alternation `|`,
// grouping `(...)`, bounded and unbounded repetition (`*`, `+`, `?`,
// `{m}`, `{m,}`, `{m,n}`), character classes with negation, ranges, the
// `{-}`/`{+}` set-difference/union operators, POSIX named classes
// (`[:alpha:]` and friends), backslash escapes (including octal and
// `\xHH` hex), inline option flags (`(?i)`, `(?isx-isx:...)`), and
// `(?#...)` comments. Not supported: capture groups, backreferences,
// anchors, Unicode beyond single bytes, look-around, and lazy
// quantifiers — see package syntax's doc comment for the full grammar.
//
// Example:
//
//	re, err := sonavara.Compile(`[[:alpha:]][[:alnum:]_]*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.IsMatch([]byte("x1")) {
//	    fmt.Println("matched!")
//	}
package sonavara

import (
	"github.com/digideskio/sonavara/nfa"
	"github.com/digideskio/sonavara/syntax"
)

// Regex is a compiled pattern: an NFA entry point plus the state count
// needed to size the simulator's working set. A Regex holds no I/O state
// and is safe to use concurrently from multiple goroutines for matching;
// Free must not race with any in-flight match.
type Regex struct {
	start     *nfa.State
	numStates uint32
	pattern   string
}

// Compile parses pattern and builds its NFA using DefaultConfig's limits.
// It returns a *CompileError (wrapping either a *syntax.SyntaxError or an
// *nfa.BuildError) if the pattern is malformed or its NFA would exceed
// those limits.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics instead of returning an error.
// It is meant for compile-time-constant patterns known to be valid.
//
// Example:
//
//	var identRe = sonavara.MustCompile(`[[:alpha:]][[:alnum:]_]*`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileWithConfig compiles pattern under the limits in cfg.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	tokens, err := syntax.ParseWithLimit(pattern, cfg.MaxRepeatCount)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	start, numStates, err := nfa.Compile(tokens, cfg.MaxStates)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	return &Regex{start: start, numStates: numStates, pattern: pattern}, nil
}

// IsMatch reports whether input, taken as a whole, is accepted by re.
func (re *Regex) IsMatch(input []byte) bool {
	return nfa.IsMatch(re.start, re.numStates, input)
}

// MatchPrefix returns the length of the longest prefix of input accepted
// by re, or -1 if no prefix (including the empty one) is accepted.
func (re *Regex) MatchPrefix(input []byte) int {
	n, ok := nfa.MatchPrefix(re.start, re.numStates, input)
	if !ok {
		return -1
	}
	return n
}

// String returns the pattern re was compiled from.
func (re *Regex) String() string {
	return re.pattern
}

// Free severs every edge in re's NFA so the garbage collector can reclaim
// its states without walking a cyclic pointer graph. re must not be used
// again afterward.
func (re *Regex) Free() {
	nfa.Free(re.start)
}
