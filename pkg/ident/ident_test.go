package ident_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/goliatone/go-blockgen/pkg/ident"
)

func TestNext_UniqueUnderConcurrency(t *testing.T) {
	t.Parallel()

	gen := ident.New()

	const workers = 8
	const perWorker = 200

	ids := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- gen.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, workers*perWorker)
	for id := range ids {
		if id == "" {
			t.Fatalf("empty identifier")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier %q", id)
		}
		seen[id] = struct{}{}
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d ids, got %d", workers*perWorker, len(seen))
	}
}

type sequenceCoordinator struct{}

func (sequenceCoordinator) UniqueID(local uint64) string {
	return fmt.Sprintf("node-7/%d", local)
}

func TestNext_CoordinatorOverride(t *testing.T) {
	t.Parallel()

	gen := ident.New(ident.WithCoordinator(sequenceCoordinator{}))
	if got := gen.Next(); got != "node-7/1" {
		t.Fatalf("first id: %q", got)
	}
	if got := gen.Next(); got != "node-7/2" {
		t.Fatalf("second id: %q", got)
	}
}

func TestNext_SeparateGeneratorsDiffer(t *testing.T) {
	t.Parallel()

	a := ident.New()
	b := ident.New()
	if a.Next() == b.Next() {
		t.Fatalf("generators share a nonce")
	}
}
