package blockdef

import "errors"

var (
	// ErrMissingName reports a definition without a registry key.
	ErrMissingName = errors.New("blockdef: definition name is required")
	// ErrMissingMessage reports a definition without a message string.
	ErrMissingMessage = errors.New("blockdef: definition message is required")
	// ErrMissingArgs reports a document whose args key is absent or is not a
	// list. Programmatic definitions treat a nil Args slice as empty.
	ErrMissingArgs = errors.New("blockdef: definition args must be a list")
	// ErrConflictingConnectors reports a definition declaring both an output
	// and a previous-statement connector.
	ErrConflictingConnectors = errors.New("blockdef: output and previousStatement are mutually exclusive")

	// ErrIndexOutOfRange reports a placeholder index outside [1, len(args)].
	ErrIndexOutOfRange = errors.New("blockdef: placeholder index out of range")
	// ErrDuplicateIndex reports a placeholder index referenced more than once.
	ErrDuplicateIndex = errors.New("blockdef: placeholder index referenced twice")
	// ErrUnreferencedArgument reports a declared argument the message never
	// references.
	ErrUnreferencedArgument = errors.New("blockdef: argument never referenced by message")
	// ErrUnknownArgKind reports an argument descriptor tag with no registered
	// constructor. Internally constructed descriptors use the closed variant
	// set, so this surfaces only for data crossing the document boundary or
	// for custom kinds missing a registration.
	ErrUnknownArgKind = errors.New("blockdef: unknown argument kind")
)
