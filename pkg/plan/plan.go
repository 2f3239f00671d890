package plan

import "github.com/goliatone/go-blockgen/pkg/blockdef"

// Field is one resolved field attached to an input. Name is the binding
// name used by the runtime to look the field up on the block; labels and
// images are anonymous. Spec carries the original descriptor so the widget
// layer can construct the concrete control.
type Field struct {
	Kind blockdef.Kind `json:"kind"`
	Name string        `json:"name,omitempty"`
	// Text is the display text for label fields synthesised from message
	// literals; other kinds leave it empty and rely on Spec.
	Text string       `json:"text,omitempty"`
	Spec blockdef.Arg `json:"-"`
}

// Input is one resolved input row: the connector kind, its constraint and
// alignment, and the fields stacked before it in message order.
type Input struct {
	Kind   blockdef.Kind      `json:"kind"`
	Name   string             `json:"name,omitempty"`
	Check  blockdef.TypeCheck `json:"check,omitempty"`
	Align  blockdef.Alignment `json:"align,omitempty"`
	Fields []Field            `json:"fields,omitempty"`
}

// Plan is the fully resolved build plan for one block definition.
type Plan struct {
	Name              string               `json:"name"`
	Colour            *float64             `json:"colour,omitempty"`
	Inputs            []Input              `json:"inputs"`
	Output            *blockdef.Connection `json:"output,omitempty"`
	PreviousStatement *blockdef.Connection `json:"previousStatement,omitempty"`
	NextStatement     *blockdef.Connection `json:"nextStatement,omitempty"`
	InputsInline      *bool                `json:"inputsInline,omitempty"`
	Tooltip           blockdef.Text        `json:"tooltip,omitempty"`
	HelpURL           blockdef.Text        `json:"helpUrl,omitempty"`
}

// Initializer populates a block-instance context from a compiled plan.
type Initializer func(Block)

// Initializer binds Apply so registries can store a plain function value.
func (p Plan) Initializer() Initializer {
	return p.Apply
}

// Apply drives the collaborator in build-plan order: colour, each input with
// its constraint, alignment, and fields, the inline flag, the declared
// connector family, then tooltip and help URL. Field attachment order is the
// message order and must not be reordered.
func (p Plan) Apply(b Block) {
	if p.Colour != nil {
		b.SetColour(*p.Colour)
	}

	for _, in := range p.Inputs {
		var slot BlockInput
		switch in.Kind {
		case blockdef.KindInputStatement:
			slot = b.AppendStatementInput(in.Name)
		case blockdef.KindInputDummy:
			slot = b.AppendDummyInput(in.Name)
		default:
			slot = b.AppendValueInput(in.Name)
		}
		if in.Check != nil {
			slot.SetCheck(in.Check)
		}
		if in.Align != "" && in.Align != blockdef.AlignLeft {
			slot.SetAlign(in.Align)
		}
		for _, field := range in.Fields {
			slot.AppendField(field)
		}
	}

	if p.InputsInline != nil {
		b.SetInputsInline(*p.InputsInline)
	}

	switch {
	case p.Output != nil:
		b.SetOutput(p.Output.Check)
	case p.PreviousStatement != nil:
		b.SetPreviousStatement(p.PreviousStatement.Check)
	}
	if p.NextStatement != nil {
		b.SetNextStatement(p.NextStatement.Check)
	}

	if !p.Tooltip.IsZero() {
		b.SetTooltip(p.Tooltip)
	}
	if !p.HelpURL.IsZero() {
		b.SetHelpURL(p.HelpURL)
	}
}
