package dialect

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[Name]*Definition)
)

// Register adds a dialect definition to the registry. Called by the
// pkg/dialects packages in their init() functions.
func Register(d *Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[d.Name] = d
}

// Get retrieves a dialect definition by name.
func Get(name Name) (*Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[name]
	return d, ok
}

// Lookup retrieves a dialect definition, failing with
// *UnknownDialectError when the name is not registered.
func Lookup(name Name) (*Definition, error) {
	if d, ok := Get(name); ok {
		return d, nil
	}
	return nil, &UnknownDialectError{Name: string(name), Available: List()}
}

// List returns all registered dialect names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a dialect name is registered.
func IsRegistered(name Name) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// UnknownDialectError is returned when an unregistered dialect is
// requested.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unsupported dialect %q (available: %v)", e.Name, e.Available)
}
