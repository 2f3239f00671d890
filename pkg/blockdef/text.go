package blockdef

import "encoding/json"

// Text is a tooltip or help URL value: either static text fixed at
// definition time, or a deferred accessor the block-instance runtime
// resolves when the value is displayed. Documents only produce static text;
// deferred accessors come from programmatic definitions.
type Text struct {
	value string
	fn    func() string
}

// StaticText wraps a fixed string.
func StaticText(s string) Text {
	return Text{value: s}
}

// DeferredText wraps a late-bound accessor.
func DeferredText(fn func() string) Text {
	return Text{fn: fn}
}

// IsZero reports whether neither a value nor an accessor is set.
func (t Text) IsZero() bool {
	return t.value == "" && t.fn == nil
}

// Deferred reports whether the value is late-bound.
func (t Text) Deferred() bool {
	return t.fn != nil
}

// Resolve returns the static value or invokes the accessor.
func (t Text) Resolve() string {
	if t.fn != nil {
		return t.fn()
	}
	return t.value
}

// UnmarshalJSON accepts a plain string.
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = StaticText(s)
	return nil
}

// MarshalJSON resolves the value; diagnostics that serialise a plan see the
// accessor's current output.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Resolve())
}
