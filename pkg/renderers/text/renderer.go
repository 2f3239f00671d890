// Package text renders a compiled plan as a short human-readable summary,
// one line per input with its stacked fields indented beneath it.
package text

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-blockgen/pkg/blockdef"
	"github.com/goliatone/go-blockgen/pkg/plan"
	"github.com/goliatone/go-blockgen/pkg/render"
)

const templateName = "templates/plan.tpl"

// Renderer emits the plan summary from the embedded pongo2 template.
type Renderer struct {
	mu          sync.Mutex
	templateSet *pongo2.TemplateSet
	template    *pongo2.Template
}

// Ensure the render contract is satisfied.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer over the embedded template set.
func New() *Renderer {
	return &Renderer{
		templateSet: pongo2.NewSet("blockgen", pongo2.NewFSLoader(templatesFS)),
	}
}

// Name identifies the renderer in the registry.
func (*Renderer) Name() string { return "text" }

// ContentType reports the emitted media type.
func (*Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render executes the plan template. Compact trims blank lines.
func (r *Renderer) Render(ctx context.Context, p plan.Plan, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpl, err := r.getTemplate()
	if err != nil {
		return nil, err
	}
	out, err := tmpl.Execute(planContext(p))
	if err != nil {
		return nil, fmt.Errorf("text: execute template: %w", err)
	}
	if options.Compact {
		out = compact(out)
	}
	return []byte(out), nil
}

func (r *Renderer) getTemplate() (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.template != nil {
		return r.template, nil
	}
	tmpl, err := r.templateSet.FromFile(templateName)
	if err != nil {
		return nil, fmt.Errorf("text: load template: %w", err)
	}
	r.template = tmpl
	return tmpl, nil
}

// planContext flattens the plan into template-friendly values; connector
// checks are pre-joined so the template never iterates mixed types.
func planContext(p plan.Plan) pongo2.Context {
	inputs := make([]map[string]any, 0, len(p.Inputs))
	for _, in := range p.Inputs {
		fields := make([]map[string]any, 0, len(in.Fields))
		for _, f := range in.Fields {
			fields = append(fields, map[string]any{
				"kind": string(f.Kind),
				"name": f.Name,
				"text": f.Text,
			})
		}
		align := ""
		if in.Align != "" && in.Align != blockdef.AlignLeft {
			align = string(in.Align)
		}
		inputs = append(inputs, map[string]any{
			"kind":   string(in.Kind),
			"name":   in.Name,
			"check":  strings.Join(in.Check, ", "),
			"align":  align,
			"fields": fields,
		})
	}

	colour := ""
	if p.Colour != nil {
		colour = strconv.FormatFloat(*p.Colour, 'g', -1, 64)
	}
	return pongo2.Context{
		"name":     p.Name,
		"colour":   colour,
		"inputs":   inputs,
		"output":   describeConnection(p.Output),
		"previous": describeConnection(p.PreviousStatement),
		"next":     describeConnection(p.NextStatement),
		"inline":   p.InputsInline != nil && *p.InputsInline,
		"tooltip":  p.Tooltip.Resolve(),
		"helpUrl":  p.HelpURL.Resolve(),
	}
}

func describeConnection(c *blockdef.Connection) string {
	if c == nil {
		return ""
	}
	if len(c.Check) == 0 {
		return "any"
	}
	return "[" + strings.Join(c.Check, ", ") + "]"
}

func compact(out string) string {
	lines := strings.Split(out, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n") + "\n"
}
