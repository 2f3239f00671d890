package fields

import (
	"errors"
	"testing"

	"github.com/goliatone/go-blockgen/pkg/blockdef"
	"github.com/goliatone/go-blockgen/pkg/plan"
)

func TestNewRegistry_BuiltinsCoverStandardKinds(t *testing.T) {
	reg := NewRegistry()
	for _, kind := range []blockdef.Kind{
		blockdef.KindFieldInput,
		blockdef.KindFieldAngle,
		blockdef.KindFieldCheckbox,
		blockdef.KindFieldColour,
		blockdef.KindFieldDate,
		blockdef.KindFieldVariable,
		blockdef.KindFieldDropdown,
		blockdef.KindFieldImage,
		blockdef.KindFieldLabel,
	} {
		if !reg.Has(kind) {
			t.Fatalf("built-in kind %q missing", kind)
		}
	}
}

func TestBuild_DescriptorCarriedOnField(t *testing.T) {
	reg := NewRegistry()
	arg := blockdef.TextField{Name: "TEXT", Text: "hi"}

	field, err := reg.Build(arg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if field.Kind != blockdef.KindFieldInput || field.Name != "TEXT" {
		t.Fatalf("unexpected field: %+v", field)
	}
	if field.Spec != blockdef.Arg(arg) {
		t.Fatalf("descriptor not carried on field")
	}
}

func TestBuild_UnknownKind(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Build(blockdef.RawArg{Tag: "field_mystery"})
	if !errors.Is(err, blockdef.ErrUnknownArgKind) {
		t.Fatalf("want ErrUnknownArgKind, got %v", err)
	}
}

func TestBuild_KindPayloadValidation(t *testing.T) {
	reg := NewRegistry()

	if _, err := reg.Build(blockdef.DropdownField{Name: "OP"}); err == nil {
		t.Fatalf("dropdown without options should fail")
	}
	if _, err := reg.Build(blockdef.ImageField{Width: 16, Height: 16}); err == nil {
		t.Fatalf("image without src should fail")
	}
	if _, err := reg.Build(blockdef.DropdownField{
		Name:    "OP",
		Options: []blockdef.DropdownOption{{Label: "add", Value: "ADD"}},
	}); err != nil {
		t.Fatalf("valid dropdown: %v", err)
	}
}

func TestRegister_Rules(t *testing.T) {
	reg := Empty()
	ctor := func(arg blockdef.Arg) (plan.Field, error) {
		return plan.Field{Kind: arg.Kind()}, nil
	}

	if err := reg.Register("field_slider", ctor); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("field_slider", ctor); err == nil {
		t.Fatalf("duplicate kind should fail")
	}
	if err := reg.Register(blockdef.KindInputValue, ctor); err == nil {
		t.Fatalf("input kinds should be rejected")
	}
	if err := reg.Register("", ctor); err == nil {
		t.Fatalf("empty kind should fail")
	}
	if err := reg.Register("field_other", nil); err == nil {
		t.Fatalf("nil constructor should fail")
	}
}

func TestKinds_Sorted(t *testing.T) {
	reg := Empty()
	reg.MustRegister("field_b", func(arg blockdef.Arg) (plan.Field, error) { return plan.Field{}, nil })
	reg.MustRegister("field_a", func(arg blockdef.Arg) (plan.Field, error) { return plan.Field{}, nil })

	kinds := reg.Kinds()
	if len(kinds) != 2 || kinds[0] != "field_a" || kinds[1] != "field_b" {
		t.Fatalf("kinds should sort lexically, got %v", kinds)
	}
}
