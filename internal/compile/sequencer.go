package compile

import "github.com/goliatone/go-blockgen/pkg/blockdef"

// finalize appends a synthetic dummy input when the sequence ends in literal
// text, so trailing label text is not orphaned. The synthetic input carries
// the definition's lastDummyAlign. A sequence ending in a field descriptor
// gets no synthetic input; that buffer is discarded by the builder.
func finalize(elements []element, lastDummyAlign blockdef.Alignment) []element {
	if len(elements) == 0 {
		return elements
	}
	if !elements[len(elements)-1].isLiteral() {
		return elements
	}
	return append(elements, element{arg: blockdef.DummyInput{Align: lastDummyAlign}})
}
