// Package plan defines the compiled build plan for a block definition: the
// ordered inputs with their attached fields, the block-level attributes, and
// the Block collaborator interface the plan is applied to. A Plan is
// deterministic and immutable once compiled; applying it twice to two block
// instances produces identical call sequences.
package plan
