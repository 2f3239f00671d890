package text_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	blockgen "github.com/goliatone/go-blockgen"
	"github.com/goliatone/go-blockgen/pkg/blockdef"
	"github.com/goliatone/go-blockgen/pkg/plan"
	"github.com/goliatone/go-blockgen/pkg/render"
	"github.com/goliatone/go-blockgen/pkg/renderers/text"
	"github.com/goliatone/go-blockgen/pkg/testsupport"
)

func mustCompile(t *testing.T, def blockdef.Definition) plan.Plan {
	t.Helper()
	p, err := blockgen.Compile(def)
	if err != nil {
		t.Fatalf("compile %q: %v", def.Name, err)
	}
	return p
}

func TestRender_ValueBlock(t *testing.T) {
	colour := 230.0
	p := mustCompile(t, blockdef.Definition{
		Name:    "math_sum",
		Message: "%1 plus %2",
		Args: []blockdef.Arg{
			blockdef.ValueInput{Name: "A", Check: blockdef.TypeCheck{"Number"}},
			blockdef.ValueInput{Name: "B", Check: blockdef.TypeCheck{"Number"}},
		},
		Colour:  &colour,
		Output:  &blockdef.Connection{Check: blockdef.TypeCheck{"Number"}},
		Tooltip: blockdef.StaticText("Adds two numbers."),
	})

	out, err := text.New().Render(testsupport.Context(), p, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		`block math_sum`,
		`colour hue 230`,
		`input_value "A" check [Number]`,
		`input_value "B" check [Number]`,
		`  field_label text "plus"`,
		`output [Number]`,
		`tooltip "Adds two numbers."`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("rendered text mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_GoldenContract(t *testing.T) {
	defs := testsupport.MustLoadDefinitions(t, filepath.Join("testdata", "sum.json"))
	p, err := blockgen.Compile(defs[0])
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	out, err := text.New().Render(testsupport.Context(), p, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "sum_plan.golden.txt")
	if testsupport.WriteMaybeGolden(t, goldenPath, out) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_StatementBlock(t *testing.T) {
	p := mustCompile(t, blockdef.Definition{
		Name:    "controls_repeat",
		Message: "repeat %1 %2 times",
		Args: []blockdef.Arg{
			blockdef.TextField{Name: "TIMES", Text: "10"},
			blockdef.StatementInput{Name: "DO"},
		},
		PreviousStatement: &blockdef.Connection{},
		NextStatement:     &blockdef.Connection{},
		LastDummyAlign:    blockdef.AlignRight,
	})

	out, err := text.New().Render(testsupport.Context(), p, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		`block controls_repeat`,
		`input_statement "DO"`,
		`  field_label text "repeat"`,
		`  field_input "TIMES"`,
		`input_dummy align RIGHT`,
		`  field_label text "times"`,
		`previous any`,
		`next any`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("rendered text mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_CompactStripsBlankLines(t *testing.T) {
	p := mustCompile(t, blockdef.Definition{Name: "noop", Message: "noop"})

	out, err := text.New().Render(testsupport.Context(), p, render.RenderOptions{Compact: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			t.Fatalf("compact output kept a blank line:\n%s", out)
		}
	}
	if !strings.HasPrefix(string(out), "block noop") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := mustCompile(t, blockdef.Definition{Name: "noop", Message: "noop"})
	if _, err := text.New().Render(ctx, p, render.RenderOptions{}); err == nil {
		t.Fatalf("cancelled context should fail")
	}
}
