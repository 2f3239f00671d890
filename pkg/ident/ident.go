// Package ident generates unique block-instance identifiers. The local
// generator is a process-wide atomic counter prefixed with a per-process
// nonce; collaborative deployments plug in a Coordinator backed by their
// coordination service so IDs stay unique across processes. The Coordinator
// contract is the only concurrency-sensitive external seam the compiler
// depends on.
package ident

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"sync/atomic"
)

// Coordinator maps a local counter value to a globally unique string.
type Coordinator interface {
	UniqueID(local uint64) string
}

// Generator issues identifiers. Safe for concurrent use.
type Generator struct {
	counter atomic.Uint64
	nonce   string
	coord   Coordinator
}

// Option customises a Generator.
type Option func(*Generator)

// WithCoordinator delegates ID construction to an external service.
func WithCoordinator(coord Coordinator) Option {
	return func(g *Generator) {
		g.coord = coord
	}
}

// New constructs a Generator with a fresh process nonce.
func New(options ...Option) *Generator {
	g := &Generator{nonce: processNonce()}
	for _, opt := range options {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Next returns the next identifier.
func (g *Generator) Next() string {
	local := g.counter.Add(1)
	if g.coord != nil {
		return g.coord.UniqueID(local)
	}
	return g.nonce + ":" + strconv.FormatUint(local, 36)
}

func processNonce() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// Fall back to a fixed prefix; counter uniqueness still holds within
		// the process.
		return "blk"
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
