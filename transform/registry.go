// Package transform: explicit registration tables.
//
// Registry maps stage names to transform instances for one bind call; Catalog
// maps class identifiers to factories for config build and persistence load.
// Both are plain values scoped to one engine context — there is no global
// mutable factory table. Contract: populate before the first bind/load, treat
// as immutable afterwards within one process run.
package transform

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Registry maps stage name -> Transform for one pipeline bind.
type Registry struct {
	byName map[string]Transform
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Transform)}
}

// Register binds a transform instance to a stage name.
//
// Errors:
//   - ErrEmptyStageName when name is empty.
//   - ErrDuplicateStage when name is already registered.
//
// Complexity: O(1).
func (r *Registry) Register(name string, t Transform) error {
	if name == "" {
		return ErrEmptyStageName
	}
	if _, ok := r.byName[name]; ok {
		return errors.Wrapf(ErrDuplicateStage, "stage %q", name)
	}
	r.byName[name] = t
	return nil
}

// MustRegister is Register panicking on error; intended for static wiring in
// tests and examples where a registration failure is a programming error.
func (r *Registry) MustRegister(name string, t Transform) *Registry {
	if err := r.Register(name, t); err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the transform registered under name.
func (r *Registry) Lookup(name string) (Transform, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names returns all registered stage names in lexical order.
// Deterministic regardless of registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of registered stages.
func (r *Registry) Len() int { return len(r.byName) }

// Catalog maps a transform class identifier to the Factory reconstructing it.
type Catalog map[string]Factory

// New instantiates class via its registered factory.
//
// Errors:
//   - ErrUnknownClass when the class has no factory.
//   - any error returned by the factory itself.
func (c Catalog) New(class string, ctx Context, src ResourceSource, cfg map[string]any) (Transform, error) {
	factory, ok := c[class]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownClass, "class %q", class)
	}
	t, err := factory(ctx, src, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "class %q", class)
	}
	return t, nil
}

// Merge returns a new Catalog containing the receiver's entries overlaid with
// extra's; extra wins on class collisions. Neither input is mutated.
func (c Catalog) Merge(extra Catalog) Catalog {
	merged := make(Catalog, len(c)+len(extra))
	for class, f := range c {
		merged[class] = f
	}
	for class, f := range extra {
		merged[class] = f
	}
	return merged
}
