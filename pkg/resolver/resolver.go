// Package resolver merges stored method configuration, expanded template
// variables, and call-time overrides into the final parameter bag for a
// dialect operation.
//
// Every configuration-backed operation — bulk load paths, external-storage
// paths, partition and repair options — resolves through this one pipeline,
// so the precedence contract (explicit call-time value > configured or
// expanded value > absent) holds uniformly rather than per operation.
package resolver

import (
	"github.com/tablekit/tablekit/pkg/params"
	"github.com/tablekit/tablekit/pkg/template"
)

// Request carries the call-site inputs to a resolution.
type Request struct {
	// Args are explicit call-time overrides; they always win over stored
	// configuration.
	Args params.Map

	// Vars are template variables applied to the stored configuration
	// before merging. Empty means no expansion.
	Vars map[string]string

	// NoConfig skips the stored configuration entirely; only Args feed
	// the result.
	NoConfig bool
}

// Resolve produces the final parameter bag for methodName. The pipeline
// order is load-bearing:
//
//  1. base = stored configuration, unless req.NoConfig
//  2. base is template-expanded when req.Vars is non-empty
//  3. requiredKey is taken from req.Args when present there, otherwise
//     pulled out of base
//  4. base is merged with req.Args, req.Args winning on conflicts
//
// When requiredKey is non-empty and neither source supplied it, Resolve
// fails with *MissingRequiredParameterError. An empty requiredKey means the
// operation has no mandatory parameter.
func Resolve(methodName string, stored params.Map, requiredKey string, req Request) (params.Map, error) {
	base := params.Map{}
	if !req.NoConfig && len(stored) > 0 {
		base = stored.Clone()
	}

	if len(req.Vars) > 0 && len(base) > 0 {
		expanded, err := template.ExpandMap(base, req.Vars)
		if err != nil {
			return nil, err
		}
		base = expanded
	}

	if requiredKey != "" {
		if _, fromCall := req.Args[requiredKey]; !fromCall {
			if v, fromConfig := base[requiredKey]; fromConfig {
				// Keep the configured value; it moves through the merge
				// below untouched since the caller did not override it.
				base[requiredKey] = v
			}
		} else {
			// Call-time value wins; the configured one is discarded so
			// the merge cannot resurrect it.
			delete(base, requiredKey)
		}
	}

	resolved := base.Merge(req.Args)

	if requiredKey != "" {
		if _, ok := resolved[requiredKey]; !ok {
			return nil, &MissingRequiredParameterError{
				Method: methodName,
				Key:    requiredKey,
			}
		}
	}

	return resolved, nil
}
