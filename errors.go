package sonavara

import "fmt"

// CompileError wraps a pattern compilation failure with the pattern that
// caused it. The underlying error is always either a *syntax.SyntaxError
// (the pattern failed to parse) or an *nfa.BuildError (the token stream
// parsed but could not be turned into an NFA, e.g. it exceeded
// Config.MaxStates); callers that want that detail can errors.As into it.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("sonavara: compiling %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
