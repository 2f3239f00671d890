package plan_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blockgen/pkg/blockdef"
	"github.com/goliatone/go-blockgen/pkg/plan"
	"github.com/goliatone/go-blockgen/pkg/testsupport"
)

func TestApply_CallOrder(t *testing.T) {
	hue := 210.0
	inline := true
	p := plan.Plan{
		Name:   "math_sum",
		Colour: &hue,
		Inputs: []plan.Input{
			{Kind: blockdef.KindInputValue, Name: "A", Check: blockdef.TypeCheck{"Number"}},
			{
				Kind:  blockdef.KindInputValue,
				Name:  "B",
				Check: blockdef.TypeCheck{"Number"},
				Align: blockdef.AlignRight,
				Fields: []plan.Field{
					{Kind: blockdef.KindFieldLabel, Text: "plus"},
				},
			},
		},
		Output:       &blockdef.Connection{Check: blockdef.TypeCheck{"Number"}},
		InputsInline: &inline,
		Tooltip:      blockdef.StaticText("adds two numbers"),
	}

	block := testsupport.NewRecordingBlock()
	p.Apply(block)

	want := []string{
		`setColour 210`,
		`appendValueInput "A"`,
		`setCheck [Number]`,
		`appendValueInput "B"`,
		`setCheck [Number]`,
		`setAlign RIGHT`,
		`appendField label "plus"`,
		`setInputsInline true`,
		`setOutput [Number]`,
		`setTooltip "adds two numbers"`,
	}
	if diff := cmp.Diff(want, block.Calls); diff != "" {
		t.Fatalf("call order mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_ConnectorFamilies(t *testing.T) {
	statement := plan.Plan{
		Name:              "do_thing",
		PreviousStatement: &blockdef.Connection{},
		NextStatement:     &blockdef.Connection{Check: blockdef.TypeCheck{"Action"}},
	}

	block := testsupport.NewRecordingBlock()
	statement.Apply(block)

	want := []string{
		`setPreviousStatement any`,
		`setNextStatement [Action]`,
	}
	if diff := cmp.Diff(want, block.Calls); diff != "" {
		t.Fatalf("call order mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_IsRepeatable(t *testing.T) {
	p := plan.Plan{
		Name: "greeting",
		Inputs: []plan.Input{
			{
				Kind: blockdef.KindInputDummy,
				Fields: []plan.Field{
					{Kind: blockdef.KindFieldLabel, Text: "Hello"},
				},
			},
		},
	}

	first := testsupport.NewRecordingBlock()
	second := testsupport.NewRecordingBlock()
	init := p.Initializer()
	init(first)
	init(second)

	if diff := cmp.Diff(first.Calls, second.Calls); diff != "" {
		t.Fatalf("initializer should be deterministic (-first +second):\n%s", diff)
	}
}
