package compile

import (
	"fmt"

	"github.com/goliatone/go-blockgen/pkg/blockdef"
)

// element is one entry in the display sequence: literal label text or a
// placeholder bound to its argument descriptor.
type element struct {
	literal string
	arg     blockdef.Arg
}

func (e element) isLiteral() bool { return e.arg == nil }

// resolve binds each placeholder token to args[index-1] and enforces full,
// unique coverage: every declared argument referenced exactly once. Token
// order is preserved.
func resolve(tokens []token, args []blockdef.Arg) ([]element, error) {
	elements := make([]element, 0, len(tokens))
	seen := make(map[int]struct{}, len(args))

	for _, tok := range tokens {
		if !tok.placeholder {
			elements = append(elements, element{literal: tok.literal})
			continue
		}
		if tok.index < 1 || tok.index > len(args) {
			return nil, fmt.Errorf("%w: %%%d with %d args", blockdef.ErrIndexOutOfRange, tok.index, len(args))
		}
		if _, dup := seen[tok.index]; dup {
			return nil, fmt.Errorf("%w: %%%d", blockdef.ErrDuplicateIndex, tok.index)
		}
		seen[tok.index] = struct{}{}
		elements = append(elements, element{arg: args[tok.index-1]})
	}

	if len(seen) != len(args) {
		for i := range args {
			if _, ok := seen[i+1]; !ok {
				return nil, fmt.Errorf("%w: arg %d", blockdef.ErrUnreferencedArgument, i+1)
			}
		}
	}
	return elements, nil
}
