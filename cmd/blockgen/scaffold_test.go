package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blockgen/pkg/ident"
)

// scriptedPrompter answers prompts from canned responses keyed by a prefix of
// the prompt message.
type scriptedPrompter struct {
	inputs   map[string]string
	selected string
	confirm  bool
}

func (s scriptedPrompter) Input(message, def string) (string, error) {
	for prefix, answer := range s.inputs {
		if strings.HasPrefix(message, prefix) {
			return answer, nil
		}
	}
	return def, nil
}

func (s scriptedPrompter) Select(string, []string) (string, error) {
	return s.selected, nil
}

func (s scriptedPrompter) Confirm(string, bool) (bool, error) {
	return s.confirm, nil
}

func TestScaffoldDefinition_ValueBlock(t *testing.T) {
	p := scriptedPrompter{
		inputs: map[string]string{
			"Block name": "math_sum",
			"Message":    "%1 plus %2",
			"Colour hue": "230",
			"Tooltip":    "Adds two numbers.",
			"Help URL":   "https://example.com/sum",
		},
		selected: connectorOutput,
		confirm:  true,
	}

	doc, err := scaffoldDefinition(p, ident.New())
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	want := map[string]any{
		"name":         "math_sum",
		"message":      "%1 plus %2",
		"args":         []any{},
		"colour":       230.0,
		"output":       nil,
		"inputsInline": true,
		"tooltip":      "Adds two numbers.",
		"helpUrl":      "https://example.com/sum",
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestScaffoldDefinition_StatementConnectors(t *testing.T) {
	p := scriptedPrompter{selected: connectorStatement}

	doc, err := scaffoldDefinition(p, ident.New())
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	for _, key := range []string{"previousStatement", "nextStatement"} {
		value, ok := doc[key]
		if !ok || value != nil {
			t.Fatalf("%s should be declared null, got %v (present=%v)", key, value, ok)
		}
	}
	if _, ok := doc["output"]; ok {
		t.Fatalf("statement block must not declare an output")
	}
	if name := doc["name"].(string); !strings.HasPrefix(name, "block_") {
		t.Fatalf("default name should use the id generator, got %q", name)
	}
}

func TestScaffoldDefinition_SkipsEmptyOptionals(t *testing.T) {
	p := scriptedPrompter{selected: connectorNone}

	doc, err := scaffoldDefinition(p, ident.New())
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	for _, key := range []string{"colour", "tooltip", "helpUrl", "inputsInline", "output", "previousStatement"} {
		if _, ok := doc[key]; ok {
			t.Fatalf("empty answer should leave %q unset", key)
		}
	}
}

func TestScaffoldDefinition_RejectsBadHue(t *testing.T) {
	p := scriptedPrompter{
		inputs:   map[string]string{"Colour hue": "teal"},
		selected: connectorNone,
	}

	if _, err := scaffoldDefinition(p, ident.New()); err == nil {
		t.Fatalf("non-numeric hue should fail")
	}
}
