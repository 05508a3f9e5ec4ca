package lexer

import "errors"

// ErrNoMatch is returned by Lex when the cursor is not at end of input but
// no rule in the table matched a positive-length prefix there. It is never
// confused with io.EOF: the two conditions are reported through distinct
// errors rather than overloaded integer sentinels.
var ErrNoMatch = errors.New("lexer: no rule matched")
