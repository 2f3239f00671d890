package testsupport

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-blockgen/pkg/blockdef"
	"github.com/goliatone/go-blockgen/pkg/plan"
)

// RecordingBlock implements plan.Block by logging every collaborator call in
// order, letting tests assert the exact sequence an initializer produces
// without a real editor runtime.
type RecordingBlock struct {
	Calls  []string
	Inputs []*RecordedInput
}

// Ensure the collaborator contract is satisfied.
var _ plan.Block = (*RecordingBlock)(nil)

// NewRecordingBlock returns an empty recorder.
func NewRecordingBlock() *RecordingBlock {
	return &RecordingBlock{}
}

func (b *RecordingBlock) record(format string, args ...any) {
	b.Calls = append(b.Calls, fmt.Sprintf(format, args...))
}

func (b *RecordingBlock) SetColour(hue float64) {
	b.record("setColour %g", hue)
}

func (b *RecordingBlock) AppendValueInput(name string) plan.BlockInput {
	return b.appendInput("appendValueInput", name)
}

func (b *RecordingBlock) AppendStatementInput(name string) plan.BlockInput {
	return b.appendInput("appendStatementInput", name)
}

func (b *RecordingBlock) AppendDummyInput(name string) plan.BlockInput {
	return b.appendInput("appendDummyInput", name)
}

func (b *RecordingBlock) appendInput(kind, name string) plan.BlockInput {
	b.record("%s %q", kind, name)
	in := &RecordedInput{block: b, Kind: kind, Name: name}
	b.Inputs = append(b.Inputs, in)
	return in
}

func (b *RecordingBlock) SetInputsInline(inline bool) {
	b.record("setInputsInline %v", inline)
}

func (b *RecordingBlock) SetOutput(check blockdef.TypeCheck) {
	b.record("setOutput %s", describeCheck(check))
}

func (b *RecordingBlock) SetPreviousStatement(check blockdef.TypeCheck) {
	b.record("setPreviousStatement %s", describeCheck(check))
}

func (b *RecordingBlock) SetNextStatement(check blockdef.TypeCheck) {
	b.record("setNextStatement %s", describeCheck(check))
}

func (b *RecordingBlock) SetTooltip(tip blockdef.Text) {
	b.record("setTooltip %q", tip.Resolve())
}

func (b *RecordingBlock) SetHelpURL(url blockdef.Text) {
	b.record("setHelpUrl %q", url.Resolve())
}

// RecordedInput captures the per-input calls.
type RecordedInput struct {
	block  *RecordingBlock
	Kind   string
	Name   string
	Check  blockdef.TypeCheck
	Align  blockdef.Alignment
	Fields []plan.Field
}

func (in *RecordedInput) SetCheck(check blockdef.TypeCheck) {
	in.Check = check
	in.block.record("setCheck %s", describeCheck(check))
}

func (in *RecordedInput) SetAlign(align blockdef.Alignment) {
	in.Align = align
	in.block.record("setAlign %s", align)
}

func (in *RecordedInput) AppendField(field plan.Field) {
	in.Fields = append(in.Fields, field)
	if field.Kind == blockdef.KindFieldLabel && field.Name == "" {
		in.block.record("appendField label %q", field.Text)
		return
	}
	in.block.record("appendField %s %q", field.Kind, field.Name)
}

func describeCheck(check blockdef.TypeCheck) string {
	if check == nil {
		return "any"
	}
	return "[" + strings.Join(check, " ") + "]"
}
