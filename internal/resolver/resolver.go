// Package resolver orders modules so that every module appears after the
// modules it depends on.
package resolver

import (
	"fmt"
	"strings"

	zerrors "github.com/zmodtool/cli/internal/errors"
	"github.com/zmodtool/cli/internal/metadata"
)

// Unresolved describes one module left with unsatisfied dependencies after
// the topological pass.
type Unresolved struct {
	// Path is the module's root directory.
	Path string

	// Name is the module's declared name.
	Name string

	// Remaining are the dependency names that could not be satisfied,
	// in declaration order.
	Remaining []string
}

// UnresolvedError reports modules whose dependencies could not be satisfied.
// Cyclic dependencies and references to unknown module names are reported
// identically: both leave a module with remaining dependency names.
type UnresolvedError struct {
	Modules []Unresolved
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	var b strings.Builder
	b.WriteString("unmet or cyclic dependencies in modules:\n")
	for _, m := range e.Modules {
		fmt.Fprintf(&b, "%s depends on: %v\n", m.Path, m.Remaining)
	}
	return b.String()
}

// Unwrap returns the sentinel so callers can match with errors.Is.
func (e *UnresolvedError) Unwrap() error {
	return zerrors.ErrUnresolved
}

// Resolve performs a Kahn topological sort over the given modules.
//
// Modules with no dependencies keep their input order; a module becomes
// ready only once all of its dependencies have been emitted, and ready
// modules are processed FIFO. The output is therefore deterministic for a
// given input order and dependency set.
//
// The input records are never mutated: dependency sets are copied into a
// private working map before edges are consumed.
func Resolve(modules []*metadata.Module) ([]*metadata.Module, error) {
	var ready []*metadata.Module
	var pending []*metadata.Module

	// Private working copy of each pending module's dependency list.
	remaining := make(map[*metadata.Module][]string)

	for _, m := range modules {
		deps := m.DependsOn()
		if len(deps) == 0 {
			ready = append(ready, m)
			continue
		}
		pending = append(pending, m)
		remaining[m] = append([]string(nil), deps...)
	}

	sorted := make([]*metadata.Module, 0, len(modules))

	for len(ready) > 0 {
		node := ready[0]
		ready = ready[1:]
		sorted = append(sorted, node)

		var still []*metadata.Module
		for _, m := range pending {
			remaining[m] = remove(remaining[m], node.Name)
			if len(remaining[m]) == 0 {
				ready = append(ready, m)
				delete(remaining, m)
				continue
			}
			still = append(still, m)
		}
		pending = still
	}

	if len(pending) > 0 {
		err := &UnresolvedError{}
		for _, m := range pending {
			err.Modules = append(err.Modules, Unresolved{
				Path:      m.Path,
				Name:      m.Name,
				Remaining: remaining[m],
			})
		}
		return nil, err
	}

	return sorted, nil
}

// remove drops every occurrence of name, preserving order.
func remove(deps []string, name string) []string {
	out := deps[:0]
	for _, d := range deps {
		if d != name {
			out = append(out, d)
		}
	}
	return out
}
