package blockdef

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Document pairs a loaded definition source with its parsed definitions.
type Document struct {
	source Source
	defs   []Definition
}

// NewDocument parses raw document bytes (JSON) and records their origin.
func NewDocument(src Source, data []byte) (Document, error) {
	defs, err := ParseDefinitions(data)
	if err != nil {
		return Document{}, err
	}
	return Document{source: src, defs: defs}, nil
}

// DocumentFromDefinitions wraps programmatic definitions without a source.
func DocumentFromDefinitions(defs ...Definition) Document {
	return Document{defs: defs}
}

// Source returns the document origin; nil for programmatic documents.
func (d Document) Source() Source { return d.source }

// WithSource returns a copy of the document recording the given origin.
func (d Document) WithSource(src Source) Document {
	d.source = src
	return d
}

// Definitions returns the parsed definitions in document order.
func (d Document) Definitions() []Definition { return d.defs }

// Loader fetches and parses definition documents. The concrete
// implementation lives in internal/loader; construct one through the
// top-level blockgen package.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions carries resolved loader configuration.
type LoaderOptions struct {
	FileSystem        fs.FS
	HTTPClient        *http.Client
	AllowHTTPFallback bool
	RequestTimeout    time.Duration
	SanitizeTooltips  bool
}

// LoaderOption customises loader construction.
type LoaderOption func(*LoaderOptions)

// NewLoaderOptions applies options over defaults.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	opts := LoaderOptions{
		RequestTimeout:   30 * time.Second,
		SanitizeTooltips: true,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	return opts
}

// WithFileSystem supplies an fs.FS for SourceKindFS documents.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileSystem = fsys
	}
}

// WithHTTPClient enables URL sources using the supplied client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(o *LoaderOptions) {
		o.HTTPClient = client
		o.AllowHTTPFallback = client != nil
	}
}

// WithHTTPFallback enables URL sources with a default client.
func WithHTTPFallback(allow bool) LoaderOption {
	return func(o *LoaderOptions) {
		o.AllowHTTPFallback = allow
	}
}

// WithRequestTimeout bounds URL fetches.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(o *LoaderOptions) {
		if timeout > 0 {
			o.RequestTimeout = timeout
		}
	}
}

// WithTooltipSanitizer toggles markup stripping on loaded tooltip text.
// Enabled by default; programmatic definitions are never sanitised.
func WithTooltipSanitizer(enabled bool) LoaderOption {
	return func(o *LoaderOptions) {
		o.SanitizeTooltips = enabled
	}
}
