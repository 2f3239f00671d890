// Package compile implements the message interpolation pipeline: tokenize
// the message, bind placeholders to argument descriptors, synthesize the
// trailing dummy input, and assemble the ordered build plan. The pipeline is
// single-pass and fails fast; no partial plan escapes an error.
package compile

import (
	"github.com/goliatone/go-blockgen/pkg/blockdef"
	"github.com/goliatone/go-blockgen/pkg/fields"
	"github.com/goliatone/go-blockgen/pkg/plan"
)

// Compile turns a validated definition into its build plan.
func Compile(def blockdef.Definition, reg *fields.Registry) (plan.Plan, error) {
	if err := def.Validate(); err != nil {
		return plan.Plan{}, err
	}

	tokens := tokenize(def.Message)
	elements, err := resolve(tokens, def.Args)
	if err != nil {
		return plan.Plan{}, err
	}
	elements = finalize(elements, def.LastDummyAlign)

	return build(def, elements, reg)
}
