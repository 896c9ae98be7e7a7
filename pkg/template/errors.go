package template

import (
	"fmt"
	"sort"
)

// UnresolvedVarError is returned when a placeholder references a variable
// that was not supplied. Available lists the variable names that were
// supplied, sorted, so the author can spot the typo.
type UnresolvedVarError struct {
	Name      string
	Available []string
}

func newUnresolvedVarError(name string, vars map[string]string) *UnresolvedVarError {
	available := make([]string, 0, len(vars))
	for k := range vars {
		available = append(available, k)
	}
	sort.Strings(available)
	return &UnresolvedVarError{Name: name, Available: available}
}

func (e *UnresolvedVarError) Error() string {
	return fmt.Sprintf("template variable %q not provided (available: %v)", e.Name, e.Available)
}
