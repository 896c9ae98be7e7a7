package typespec

import "fmt"

// UnknownTypeError is returned when a spec's base name is not an accepted
// type spelling.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown column type %q", e.Name)
}

// MalformedParametersError is returned when a spec's parenthesized argument
// list does not satisfy the arity rule for its kind.
type MalformedParametersError struct {
	Name   string // base type name as written
	Params string // raw argument list
	Reason string
}

func (e *MalformedParametersError) Error() string {
	return fmt.Sprintf("invalid parameters (%s) for type %q: %s", e.Params, e.Name, e.Reason)
}
