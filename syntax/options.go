package syntax

// options holds the state of the three inline flags, scoped per group via
// the paren-frame stack: (?isx-isx:...).
type options uint8

const (
	optI options = 1 << iota // case-insensitive atoms
	optS                     // '.' matches '\n' too
	optX                     // whitespace outside a class is insignificant
)

// parenFrame snapshots tokenizer state across a (...) group so it can be
// restored when the matching ) is found. A stack of these (linked via prev)
// lets groups nest to any depth.
type parenFrame struct {
	nalt  int
	natom int
	opts  options
	last  int // pattern index to re-arm as the "last atom" on close
	prev  *parenFrame
}
