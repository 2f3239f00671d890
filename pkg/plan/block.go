package plan

import "github.com/goliatone/go-blockgen/pkg/blockdef"

// Block is the block-instance context supplied by the editor runtime. The
// compiler never constructs blocks; it only drives this interface in
// build-plan order. Tests substitute a recording implementation.
type Block interface {
	SetColour(hue float64)
	AppendValueInput(name string) BlockInput
	AppendStatementInput(name string) BlockInput
	AppendDummyInput(name string) BlockInput
	SetInputsInline(inline bool)
	SetOutput(check blockdef.TypeCheck)
	SetPreviousStatement(check blockdef.TypeCheck)
	SetNextStatement(check blockdef.TypeCheck)
	SetTooltip(tip blockdef.Text)
	SetHelpURL(url blockdef.Text)
}

// BlockInput is one appended input slot. Field widgets are constructed by
// the runtime from the descriptor carried in Field.
type BlockInput interface {
	SetCheck(check blockdef.TypeCheck)
	SetAlign(align blockdef.Alignment)
	AppendField(field Field)
}
