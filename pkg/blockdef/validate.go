package blockdef

import "fmt"

// Validate performs the structural checks that do not require message
// interpolation: required keys and connector exclusivity. Placeholder
// coverage is enforced during compilation.
func (d Definition) Validate() error {
	if d.Name == "" {
		return ErrMissingName
	}
	if d.Message == "" {
		return fmt.Errorf("%w (definition %q)", ErrMissingMessage, d.Name)
	}
	if d.Output != nil && d.PreviousStatement != nil {
		return fmt.Errorf("%w (definition %q)", ErrConflictingConnectors, d.Name)
	}
	return nil
}
