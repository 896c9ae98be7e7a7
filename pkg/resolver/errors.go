package resolver

import "fmt"

// MissingRequiredParameterError is returned when an operation's required
// parameter was supplied neither at the call site nor by stored
// configuration.
type MissingRequiredParameterError struct {
	Method string
	Key    string
}

func (e *MissingRequiredParameterError) Error() string {
	return fmt.Sprintf("%s: %q is required either as an argument or in the table configuration", e.Method, e.Key)
}
