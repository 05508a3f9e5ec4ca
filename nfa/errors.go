package nfa

import "fmt"

// BuildError reports a Thompson-construction failure: a token stream that
// isn't a well-formed postfix expression, or one that would compile to
// more states than a Config allows.
type BuildError struct {
	Reason string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: %s", e.Reason)
}
