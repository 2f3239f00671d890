package blockdef

// Arg is one argument descriptor referenced by a `%N` placeholder. The three
// input variants are closed; field variants may be extended by registering a
// constructor for a custom Kind in the fields registry.
type Arg interface {
	Kind() Kind
	// ArgName is the binding name used when attaching the element to a block
	// instance. Empty for anonymous elements such as labels and images.
	ArgName() string
}

// ValueInput accepts a nested value-producing block.
type ValueInput struct {
	Name  string
	Check TypeCheck
	Align Alignment
}

func (a ValueInput) Kind() Kind      { return KindInputValue }
func (a ValueInput) ArgName() string { return a.Name }

// StatementInput accepts a nested statement stack.
type StatementInput struct {
	Name  string
	Check TypeCheck
	Align Alignment
}

func (a StatementInput) Kind() Kind      { return KindInputStatement }
func (a StatementInput) ArgName() string { return a.Name }

// DummyInput connects nothing; it exists to terminate a row of fields.
type DummyInput struct {
	Name  string
	Align Alignment
}

func (a DummyInput) Kind() Kind      { return KindInputDummy }
func (a DummyInput) ArgName() string { return a.Name }

// TextField is a single-line editable text widget.
type TextField struct {
	Name string
	Text string
}

func (a TextField) Kind() Kind      { return KindFieldInput }
func (a TextField) ArgName() string { return a.Name }

// AngleField edits an angle in degrees.
type AngleField struct {
	Name  string
	Angle float64
}

func (a AngleField) Kind() Kind      { return KindFieldAngle }
func (a AngleField) ArgName() string { return a.Name }

// CheckboxField toggles a boolean.
type CheckboxField struct {
	Name    string
	Checked bool
}

func (a CheckboxField) Kind() Kind      { return KindFieldCheckbox }
func (a CheckboxField) ArgName() string { return a.Name }

// ColourField picks a colour, stored as a #rrggbb string.
type ColourField struct {
	Name   string
	Colour string
}

func (a ColourField) Kind() Kind      { return KindFieldColour }
func (a ColourField) ArgName() string { return a.Name }

// DateField picks a calendar date, stored as yyyy-mm-dd.
type DateField struct {
	Name string
	Date string
}

func (a DateField) Kind() Kind      { return KindFieldDate }
func (a DateField) ArgName() string { return a.Name }

// VariableField binds a user variable by name.
type VariableField struct {
	Name     string
	Variable string
}

func (a VariableField) Kind() Kind      { return KindFieldVariable }
func (a VariableField) ArgName() string { return a.Name }

// DropdownOption pairs the label shown to the user with the value reported
// by the field. Documents encode options as ["label", "VALUE"] pairs.
type DropdownOption struct {
	Label string
	Value string
}

// DropdownField selects one of a fixed option list.
type DropdownField struct {
	Name    string
	Options []DropdownOption
}

func (a DropdownField) Kind() Kind      { return KindFieldDropdown }
func (a DropdownField) ArgName() string { return a.Name }

// ImageField renders a static image inline with the block's fields.
type ImageField struct {
	Src    string
	Width  float64
	Height float64
	Alt    string
}

func (a ImageField) Kind() Kind      { return KindFieldImage }
func (a ImageField) ArgName() string { return "" }

// LabelField is non-editable text. The tokenizer produces anonymous labels
// for literal message fragments; documents may also declare them explicitly.
type LabelField struct {
	Name string
	Text string
}

func (a LabelField) Kind() Kind      { return KindFieldLabel }
func (a LabelField) ArgName() string { return a.Name }
