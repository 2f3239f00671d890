// Package fields maps argument descriptor kinds to plan field constructors.
// The built-in constructors cover the standard field kinds; editors that
// ship custom field widgets register additional kinds before compiling
// definitions that reference them.
package fields

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-blockgen/pkg/blockdef"
	"github.com/goliatone/go-blockgen/pkg/plan"
)

// Constructor builds the plan field for a descriptor. Constructors validate
// kind-specific payload and must not mutate the descriptor.
type Constructor func(arg blockdef.Arg) (plan.Field, error)

// Registry stores field constructors by kind. The zero value is unusable;
// construct with NewRegistry (built-ins included) or Empty.
type Registry struct {
	mu           sync.RWMutex
	constructors map[blockdef.Kind]Constructor
}

// NewRegistry returns a registry with the built-in field kinds registered.
func NewRegistry() *Registry {
	reg := Empty()
	reg.registerBuiltins()
	return reg
}

// Empty returns a registry without built-ins, for callers that want full
// control over the kind table.
func Empty() *Registry {
	return &Registry{
		constructors: make(map[blockdef.Kind]Constructor),
	}
}

// Register adds a constructor for a kind. Duplicate kinds return an error;
// input kinds are rejected because inputs are built by the compiler itself.
func (r *Registry) Register(kind blockdef.Kind, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("fields: constructor is required")
	}
	trimmed := blockdef.Kind(strings.TrimSpace(string(kind)))
	if trimmed == "" {
		return fmt.Errorf("fields: kind is required")
	}
	if trimmed.IsInput() {
		return fmt.Errorf("fields: %q is an input kind, not a field kind", trimmed)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[trimmed]; exists {
		return fmt.Errorf("fields: kind %q already registered", trimmed)
	}
	r.constructors[trimmed] = ctor
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(kind blockdef.Kind, ctor Constructor) {
	if err := r.Register(kind, ctor); err != nil {
		panic(err)
	}
}

// Build resolves the descriptor's kind and constructs its plan field.
// Unregistered kinds wrap blockdef.ErrUnknownArgKind.
func (r *Registry) Build(arg blockdef.Arg) (plan.Field, error) {
	if arg == nil {
		return plan.Field{}, fmt.Errorf("fields: nil descriptor")
	}
	r.mu.RLock()
	ctor, ok := r.constructors[arg.Kind()]
	r.mu.RUnlock()
	if !ok {
		return plan.Field{}, fmt.Errorf("%w: %q", blockdef.ErrUnknownArgKind, arg.Kind())
	}
	return ctor(arg)
}

// Has reports whether a kind is registered.
func (r *Registry) Has(kind blockdef.Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.constructors[kind]
	return ok
}

// Kinds returns the registered kinds sorted lexically.
func (r *Registry) Kinds() []blockdef.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]blockdef.Kind, 0, len(r.constructors))
	for kind := range r.constructors {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (r *Registry) registerBuiltins() {
	r.MustRegister(blockdef.KindFieldInput, func(arg blockdef.Arg) (plan.Field, error) {
		return descriptorField(arg), nil
	})
	r.MustRegister(blockdef.KindFieldAngle, func(arg blockdef.Arg) (plan.Field, error) {
		return descriptorField(arg), nil
	})
	r.MustRegister(blockdef.KindFieldCheckbox, func(arg blockdef.Arg) (plan.Field, error) {
		return descriptorField(arg), nil
	})
	r.MustRegister(blockdef.KindFieldColour, func(arg blockdef.Arg) (plan.Field, error) {
		return descriptorField(arg), nil
	})
	r.MustRegister(blockdef.KindFieldDate, func(arg blockdef.Arg) (plan.Field, error) {
		return descriptorField(arg), nil
	})
	r.MustRegister(blockdef.KindFieldVariable, func(arg blockdef.Arg) (plan.Field, error) {
		return descriptorField(arg), nil
	})
	r.MustRegister(blockdef.KindFieldDropdown, func(arg blockdef.Arg) (plan.Field, error) {
		dropdown, ok := arg.(blockdef.DropdownField)
		if ok && len(dropdown.Options) == 0 {
			return plan.Field{}, fmt.Errorf("fields: dropdown %q needs at least one option", arg.ArgName())
		}
		return descriptorField(arg), nil
	})
	r.MustRegister(blockdef.KindFieldImage, func(arg blockdef.Arg) (plan.Field, error) {
		image, ok := arg.(blockdef.ImageField)
		if ok && strings.TrimSpace(image.Src) == "" {
			return plan.Field{}, fmt.Errorf("fields: image field needs a src")
		}
		return descriptorField(arg), nil
	})
	r.MustRegister(blockdef.KindFieldLabel, func(arg blockdef.Arg) (plan.Field, error) {
		field := descriptorField(arg)
		if label, ok := arg.(blockdef.LabelField); ok {
			field.Text = label.Text
		}
		return field, nil
	})
}

func descriptorField(arg blockdef.Arg) plan.Field {
	return plan.Field{
		Kind: arg.Kind(),
		Name: arg.ArgName(),
		Spec: arg,
	}
}
