package render

import (
	"context"

	"github.com/goliatone/go-blockgen/pkg/plan"
)

// Renderer converts a compiled plan into a byte representation (JSON, text)
// for diagnostics and tooling. Renderers never touch the editor runtime;
// applying a plan to a live block goes through plan.Block.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, p plan.Plan, options RenderOptions) ([]byte, error)
}

// RenderOptions carries per-request rendering knobs.
type RenderOptions struct {
	// Compact requests the densest representation the renderer supports.
	Compact bool
}
