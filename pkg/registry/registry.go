// Package registry stores compiled block templates by name. A registry is
// an explicit value with a process-wide lifetime: create it once at startup,
// pass it to every registrar, and populate it before block instances are
// created. Entries are first-write-wins and never removed or overwritten.
//
// Registration is designed for a single logical thread of control during
// startup; concurrent registration is not a supported usage. The internal
// mutex keeps misuse from corrupting the map, not from interleaving
// registrations meaningfully.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-blockgen/pkg/plan"
)

var (
	// ErrDuplicateName reports a second registration under an existing name.
	ErrDuplicateName = errors.New("registry: block name already registered")
	// ErrNotFound reports a lookup for an unregistered name.
	ErrNotFound = errors.New("registry: block name not registered")
)

// Template is one registered block: its immutable build plan and the
// initializer that applies it to a block-instance context.
type Template struct {
	Name string
	Plan plan.Plan
	Init plan.Initializer
}

// Registry maps block names to templates.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		templates: make(map[string]Template),
	}
}

// Add stores a compiled plan under its name. Duplicate names return
// ErrDuplicateName and leave the existing entry untouched.
func (r *Registry) Add(p plan.Plan) error {
	if p.Name == "" {
		return fmt.Errorf("registry: plan name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[p.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
	}
	r.templates[p.Name] = Template{
		Name: p.Name,
		Plan: p,
		Init: p.Initializer(),
	}
	return nil
}

// Get retrieves a template by name.
func (r *Registry) Get(name string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tpl, ok := r.templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return tpl, nil
}

// MustGet panics if the template is missing.
func (r *Registry) MustGet(name string) Template {
	tpl, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Has reports whether a name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.templates[name]
	return ok
}

// Names returns the registered names sorted lexically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.templates)
}
