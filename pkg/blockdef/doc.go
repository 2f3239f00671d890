// Package blockdef defines the declarative block specification consumed by
// the compiler: the Definition document, the tagged argument descriptor
// variants referenced by `%N` message placeholders, connector declarations,
// and the loader contracts for reading definition documents from JSON or
// YAML sources. Compilation of a Definition into a build plan lives in the
// top-level blockgen package; blockdef only models and validates the input.
package blockdef
