// Package blockgen compiles declarative block definitions into executable
// build plans and registers them for the block editor runtime. The core
// pipeline tokenizes the definition message, binds %N placeholders to typed
// argument descriptors, synthesizes the trailing dummy input, and assembles
// the ordered field/input layout. Registration is atomic: a definition that
// fails any stage leaves the registry untouched.
package blockgen

import (
	"fmt"

	"github.com/goliatone/go-blockgen/internal/compile"
	"github.com/goliatone/go-blockgen/pkg/blockdef"
	"github.com/goliatone/go-blockgen/pkg/fields"
	"github.com/goliatone/go-blockgen/pkg/plan"
	"github.com/goliatone/go-blockgen/pkg/registry"
)

// Option customises a Registrar.
type Option func(*Registrar)

// WithRegistry injects the template registry to populate. By default each
// Registrar owns a fresh registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(r *Registrar) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithFields injects the field constructor registry used during compilation.
func WithFields(reg *fields.Registry) Option {
	return func(r *Registrar) {
		if reg != nil {
			r.fields = reg
		}
	}
}

// Registrar drives the compilation pipeline and commits successful plans to
// its registry. Registration is not safe for concurrent use; callers in a
// multi-threaded host must serialize registrations externally.
type Registrar struct {
	registry *registry.Registry
	fields   *fields.Registry
}

// New constructs a Registrar with the supplied options.
func New(options ...Option) *Registrar {
	r := &Registrar{
		registry: registry.New(),
		fields:   fields.NewRegistry(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Registry exposes the populated template registry for lookups.
func (r *Registrar) Registry() *registry.Registry {
	return r.registry
}

// Fields exposes the field constructor registry for custom kind wiring.
func (r *Registrar) Fields() *fields.Registry {
	return r.fields
}

// Compile runs the pipeline without touching the registry.
func (r *Registrar) Compile(def blockdef.Definition) (plan.Plan, error) {
	return compile.Compile(def, r.fields)
}

// Register compiles the definition and stores its template. Any compilation
// failure aborts before the registry is consulted, so a failed registration
// never shadows or disturbs existing entries.
func (r *Registrar) Register(def blockdef.Definition) error {
	p, err := r.Compile(def)
	if err != nil {
		return err
	}
	return r.registry.Add(p)
}

// RegisterDocument registers every definition in a loaded document, in
// document order, stopping at the first failure.
func (r *Registrar) RegisterDocument(doc blockdef.Document) error {
	for _, def := range doc.Definitions() {
		if err := r.Register(def); err != nil {
			return fmt.Errorf("register %q: %w", def.Name, err)
		}
	}
	return nil
}

// Compile is a convenience wrapper using the built-in field kinds.
func Compile(def blockdef.Definition) (plan.Plan, error) {
	return compile.Compile(def, fields.NewRegistry())
}
