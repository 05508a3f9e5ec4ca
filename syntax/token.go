// Package syntax implements the pattern tokenizer: a state-machine parser
// that turns a textual regular expression into a linear postfix token
// stream ready for Thompson construction (see package nfa).
//
// Supported syntax: literals, '.', character classes (ranges, negation,
// POSIX [:name:] classes, set-difference [A]{-}[B] and set-union
// [A]{+}[B]), grouping, alternation, the quantifiers *, +, ?, {m}, {m,},
// {m,n}, escapes (letter, octal, \xHH hex), inline option groups
// (?isx-isx:...) and (?isx-isx), and (?#...) comments. Capture groups, backreferences,
// anchors, and lookaround are not part of this syntax (see spec Non-goals).
package syntax

import "github.com/digideskio/sonavara/internal/bitset"

// Kind identifies the shape of a Token in the postfix stream.
type Kind int

const (
	// Atom consumes one input byte drawn from its Set.
	Atom Kind = iota
	// Concat combines the two previous operands in sequence.
	Concat
	// Alt combines the two previous operands as alternatives.
	Alt
	// Star repeats the previous operand zero or more times.
	Star
	// Plus repeats the previous operand one or more times.
	Plus
	// Opt makes the previous operand optional (zero or one time).
	Opt
)

// Token is one element of the postfix token stream. Only Atom tokens carry
// a payload (Set); the rest are nullary operators.
type Token struct {
	Kind Kind
	Set  bitset.ByteSet
}

// Tokens is a linear postfix sequence representing a pattern's AST in
// shunting-yard form, ready for nfa.Compile.
type Tokens []Token
