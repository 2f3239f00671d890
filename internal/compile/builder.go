package compile

import (
	"fmt"

	"github.com/goliatone/go-blockgen/pkg/blockdef"
	"github.com/goliatone/go-blockgen/pkg/fields"
	"github.com/goliatone/go-blockgen/pkg/plan"
)

// build runs the single pass over the finalized element sequence. Field
// producing elements accumulate in a buffer that flushes, in order, onto the
// next input element. A buffer left unflushed at the end of the sequence is
// discarded; finalize only synthesizes an input after trailing literals.
func build(def blockdef.Definition, elements []element, reg *fields.Registry) (plan.Plan, error) {
	p := plan.Plan{
		Name:              def.Name,
		Colour:            def.Colour,
		Output:            def.Output,
		PreviousStatement: def.PreviousStatement,
		NextStatement:     def.NextStatement,
		InputsInline:      def.InputsInline,
		Tooltip:           def.Tooltip,
		HelpURL:           def.HelpURL,
	}

	var buffer []plan.Field
	for _, el := range elements {
		if el.isLiteral() {
			field, err := reg.Build(blockdef.LabelField{Text: el.literal})
			if err != nil {
				return plan.Plan{}, fmt.Errorf("compile %q: %w", def.Name, err)
			}
			buffer = append(buffer, field)
			continue
		}

		switch arg := el.arg.(type) {
		case blockdef.ValueInput:
			p.Inputs = append(p.Inputs, flush(plan.Input{
				Kind:  blockdef.KindInputValue,
				Name:  arg.Name,
				Check: arg.Check,
				Align: arg.Align,
			}, &buffer))
		case blockdef.StatementInput:
			p.Inputs = append(p.Inputs, flush(plan.Input{
				Kind:  blockdef.KindInputStatement,
				Name:  arg.Name,
				Check: arg.Check,
				Align: arg.Align,
			}, &buffer))
		case blockdef.DummyInput:
			p.Inputs = append(p.Inputs, flush(plan.Input{
				Kind:  blockdef.KindInputDummy,
				Name:  arg.Name,
				Align: arg.Align,
			}, &buffer))
		default:
			field, err := reg.Build(arg)
			if err != nil {
				return plan.Plan{}, fmt.Errorf("compile %q: %w", def.Name, err)
			}
			buffer = append(buffer, field)
		}
	}

	if p.Inputs == nil {
		p.Inputs = []plan.Input{}
	}
	return p, nil
}

func flush(in plan.Input, buffer *[]plan.Field) plan.Input {
	if len(*buffer) > 0 {
		in.Fields = *buffer
		*buffer = nil
	}
	return in
}
