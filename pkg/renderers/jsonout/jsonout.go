// Package jsonout renders a compiled plan as canonical JSON, the format the
// CLI emits for inspection and golden testing.
package jsonout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-blockgen/pkg/plan"
	"github.com/goliatone/go-blockgen/pkg/render"
)

// Renderer emits the plan's JSON form.
type Renderer struct{}

// Ensure the render contract is satisfied.
var _ render.Renderer = Renderer{}

// New returns the JSON renderer.
func New() Renderer {
	return Renderer{}
}

// Name identifies the renderer in the registry.
func (Renderer) Name() string { return "json" }

// ContentType reports the emitted media type.
func (Renderer) ContentType() string { return "application/json" }

// Render marshals the plan, indented unless Compact is requested.
func (Renderer) Render(ctx context.Context, p plan.Plan, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		data []byte
		err  error
	)
	if options.Compact {
		data, err = json.Marshal(p)
	} else {
		data, err = json.MarshalIndent(p, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("jsonout: marshal plan %q: %w", p.Name, err)
	}
	return data, nil
}
