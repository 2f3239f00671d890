package blockgen

import (
	internalLoader "github.com/goliatone/go-blockgen/internal/loader"
	"github.com/goliatone/go-blockgen/pkg/blockdef"
)

// NewLoader constructs a definition document loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...blockdef.LoaderOption) blockdef.Loader {
	cfg := blockdef.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
