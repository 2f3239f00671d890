package blockdef

import (
	"encoding/json"
	"fmt"
)

// Kind tags an argument descriptor variant. The input kinds form a closed
// set; field kinds are open to extension through the fields registry.
type Kind string

const (
	KindFieldInput    Kind = "field_input"
	KindFieldAngle    Kind = "field_angle"
	KindFieldCheckbox Kind = "field_checkbox"
	KindFieldColour   Kind = "field_colour"
	KindFieldDate     Kind = "field_date"
	KindFieldVariable Kind = "field_variable"
	KindFieldDropdown Kind = "field_dropdown"
	KindFieldImage    Kind = "field_image"
	KindFieldLabel    Kind = "field_label"

	KindInputValue     Kind = "input_value"
	KindInputStatement Kind = "input_statement"
	KindInputDummy     Kind = "input_dummy"
)

// IsInput reports whether the kind names an input connector rather than a
// field widget.
func (k Kind) IsInput() bool {
	switch k {
	case KindInputValue, KindInputStatement, KindInputDummy:
		return true
	}
	return false
}

// Alignment positions fields inside an input row. The zero value is
// left-aligned.
type Alignment string

const (
	AlignLeft   Alignment = "LEFT"
	AlignCentre Alignment = "CENTRE"
	AlignRight  Alignment = "RIGHT"
)

// ParseAlignment normalises a document alignment token. Unknown tokens fall
// back to left alignment so a typo degrades layout, not compilation.
func ParseAlignment(raw string) Alignment {
	switch Alignment(raw) {
	case AlignCentre, "CENTER":
		return AlignCentre
	case AlignRight:
		return AlignRight
	}
	return AlignLeft
}

// TypeCheck constrains which blocks may connect to an input or connector. A
// nil check accepts any connection.
type TypeCheck []string

// UnmarshalJSON accepts the three document forms: null, a single type name,
// or a list of type names.
func (t *TypeCheck) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TypeCheck{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("blockdef: type check must be null, string, or string list: %w", err)
	}
	*t = TypeCheck(many)
	return nil
}

// Connection declares a connector on the block. Presence of the declaration
// is meaningful even with a nil check ("output": null accepts anything), so
// definitions carry *Connection and distinguish declared from absent.
type Connection struct {
	Check TypeCheck
}

// UnmarshalJSON treats any present value, including null, as a declaration.
func (c *Connection) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		c.Check = nil
		return nil
	}
	return c.Check.UnmarshalJSON(data)
}

// MarshalJSON emits the compact document form.
func (c Connection) MarshalJSON() ([]byte, error) {
	switch len(c.Check) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(c.Check[0])
	}
	return json.Marshal([]string(c.Check))
}

// Definition is the declarative block specification handed to the compiler.
// Name, Message, and Args are required; Args may be empty but must be
// declared. Exactly one of Output and PreviousStatement may be set.
type Definition struct {
	Name              string
	Message           string
	Args              []Arg
	Colour            *float64
	Output            *Connection
	PreviousStatement *Connection
	NextStatement     *Connection
	InputsInline      *bool
	Tooltip           Text
	HelpURL           Text
	LastDummyAlign    Alignment

	// Extensions preserves unrecognised document keys so downstream tooling
	// can round-trip vendor metadata.
	Extensions map[string]json.RawMessage
}
