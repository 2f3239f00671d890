package blockdef

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RawArg carries a descriptor whose type tag has no built-in decoding.
// Custom field kinds registered with the fields registry receive the raw
// document payload through it; unregistered tags fail compilation with
// ErrUnknownArgKind.
type RawArg struct {
	Tag     Kind
	Name    string
	Payload json.RawMessage
}

func (a RawArg) Kind() Kind      { return a.Tag }
func (a RawArg) ArgName() string { return a.Name }

// UnmarshalJSON decodes the ["label", "VALUE"] pair form used by documents.
func (o *DropdownOption) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("blockdef: dropdown option must be a [label, value] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("blockdef: dropdown option needs exactly 2 entries, got %d", len(pair))
	}
	o.Label, o.Value = pair[0], pair[1]
	return nil
}

// MarshalJSON emits the document pair form.
func (o DropdownOption) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{o.Label, o.Value})
}

// ParseDefinitions decodes a definition document holding either a single
// definition object or a list of them.
func ParseDefinitions(data []byte) ([]Definition, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("blockdef: empty definition document")
	}
	if trimmed[0] == '[' {
		var raws []json.RawMessage
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("blockdef: decode definition list: %w", err)
		}
		defs := make([]Definition, 0, len(raws))
		for i, raw := range raws {
			def, err := ParseDefinition(raw)
			if err != nil {
				return nil, fmt.Errorf("blockdef: definition %d: %w", i, err)
			}
			defs = append(defs, def)
		}
		return defs, nil
	}
	def, err := ParseDefinition(trimmed)
	if err != nil {
		return nil, err
	}
	return []Definition{def}, nil
}

// ParseDefinition decodes one definition object. Structural requirements
// (name, message, args list, connector exclusivity) are enforced here so a
// malformed document never reaches the compiler.
func ParseDefinition(data []byte) (Definition, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return Definition{}, fmt.Errorf("blockdef: decode definition: %w", err)
	}

	var def Definition
	consume := func(key string, dst any) error {
		raw, ok := doc[key]
		if !ok {
			return nil
		}
		delete(doc, key)
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("blockdef: decode %q: %w", key, err)
		}
		return nil
	}

	if err := consume("name", &def.Name); err != nil {
		return Definition{}, err
	}
	if err := consume("message", &def.Message); err != nil {
		return Definition{}, err
	}

	rawArgs, ok := doc["args"]
	if !ok {
		return Definition{}, fmt.Errorf("%w (definition %q)", ErrMissingArgs, def.Name)
	}
	delete(doc, "args")
	args, err := decodeArgs(rawArgs)
	if err != nil {
		return Definition{}, fmt.Errorf("definition %q: %w", def.Name, err)
	}
	def.Args = args

	// Connectors cannot go through consume: encoding/json turns a JSON null
	// into a nil pointer without calling Connection.UnmarshalJSON, and a null
	// connector is a declaration, not an absence.
	consumeConnection := func(key string, dst **Connection) error {
		raw, ok := doc[key]
		if !ok {
			return nil
		}
		delete(doc, key)
		conn := new(Connection)
		if err := conn.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("blockdef: decode %q: %w", key, err)
		}
		*dst = conn
		return nil
	}

	if err := consume("colour", &def.Colour); err != nil {
		return Definition{}, err
	}
	if err := consumeConnection("output", &def.Output); err != nil {
		return Definition{}, err
	}
	if err := consumeConnection("previousStatement", &def.PreviousStatement); err != nil {
		return Definition{}, err
	}
	if err := consumeConnection("nextStatement", &def.NextStatement); err != nil {
		return Definition{}, err
	}
	if err := consume("inputsInline", &def.InputsInline); err != nil {
		return Definition{}, err
	}
	if err := consume("tooltip", &def.Tooltip); err != nil {
		return Definition{}, err
	}
	if err := consume("helpUrl", &def.HelpURL); err != nil {
		return Definition{}, err
	}
	var align string
	if err := consume("lastDummyAlign", &align); err != nil {
		return Definition{}, err
	}
	def.LastDummyAlign = ParseAlignment(align)

	if len(doc) > 0 {
		def.Extensions = doc
	}

	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func decodeArgs(data []byte) ([]Arg, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingArgs, err)
	}
	args := make([]Arg, 0, len(raws))
	for i, raw := range raws {
		arg, err := decodeArg(raw)
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", i+1, err)
		}
		args = append(args, arg)
	}
	return args, nil
}

func decodeArg(raw json.RawMessage) (Arg, error) {
	var probe struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("blockdef: decode arg: %w", err)
	}
	if probe.Type == "" {
		return nil, fmt.Errorf("%w: missing type tag", ErrUnknownArgKind)
	}

	decode := func(dst any) error {
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("blockdef: decode %s: %w", probe.Type, err)
		}
		return nil
	}

	switch Kind(probe.Type) {
	case KindInputValue:
		var a struct {
			Name  string    `json:"name"`
			Check TypeCheck `json:"check"`
			Align string    `json:"align"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return ValueInput{Name: a.Name, Check: a.Check, Align: ParseAlignment(a.Align)}, nil
	case KindInputStatement:
		var a struct {
			Name  string    `json:"name"`
			Check TypeCheck `json:"check"`
			Align string    `json:"align"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return StatementInput{Name: a.Name, Check: a.Check, Align: ParseAlignment(a.Align)}, nil
	case KindInputDummy:
		var a struct {
			Name  string `json:"name"`
			Align string `json:"align"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return DummyInput{Name: a.Name, Align: ParseAlignment(a.Align)}, nil
	case KindFieldInput:
		var a struct {
			Name string `json:"name"`
			Text string `json:"text"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return TextField{Name: a.Name, Text: a.Text}, nil
	case KindFieldAngle:
		var a struct {
			Name  string  `json:"name"`
			Angle float64 `json:"angle"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return AngleField{Name: a.Name, Angle: a.Angle}, nil
	case KindFieldCheckbox:
		var a struct {
			Name    string `json:"name"`
			Checked bool   `json:"checked"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return CheckboxField{Name: a.Name, Checked: a.Checked}, nil
	case KindFieldColour:
		var a struct {
			Name   string `json:"name"`
			Colour string `json:"colour"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return ColourField{Name: a.Name, Colour: a.Colour}, nil
	case KindFieldDate:
		var a struct {
			Name string `json:"name"`
			Date string `json:"date"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return DateField{Name: a.Name, Date: a.Date}, nil
	case KindFieldVariable:
		var a struct {
			Name     string `json:"name"`
			Variable string `json:"variable"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return VariableField{Name: a.Name, Variable: a.Variable}, nil
	case KindFieldDropdown:
		var a struct {
			Name    string           `json:"name"`
			Options []DropdownOption `json:"options"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return DropdownField{Name: a.Name, Options: a.Options}, nil
	case KindFieldImage:
		var a struct {
			Src    string  `json:"src"`
			Width  float64 `json:"width"`
			Height float64 `json:"height"`
			Alt    string  `json:"alt"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return ImageField{Src: a.Src, Width: a.Width, Height: a.Height, Alt: a.Alt}, nil
	case KindFieldLabel:
		var a struct {
			Name string `json:"name"`
			Text string `json:"text"`
		}
		if err := decode(&a); err != nil {
			return nil, err
		}
		return LabelField{Name: a.Name, Text: a.Text}, nil
	}

	return RawArg{Tag: Kind(probe.Type), Name: probe.Name, Payload: append(json.RawMessage(nil), raw...)}, nil
}
