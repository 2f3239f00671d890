package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/goliatone/go-blockgen/pkg/blockdef"
)

// Loader implements blockdef.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level blockgen package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	sanitize  bool
}

// Ensure the implementation satisfies the public interface.
var _ blockdef.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options blockdef.LoaderOptions) blockdef.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		sanitize:  options.SanitizeTooltips,
	}
}

// Load fetches a definition document from the provided source, decoding
// JSON or YAML and sanitising tooltip markup when enabled.
func (l *Loader) Load(ctx context.Context, src blockdef.Source) (blockdef.Document, error) {
	if src == nil {
		return blockdef.Document{}, errors.New("blockdef loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case blockdef.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case blockdef.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case blockdef.SourceKindURL:
		if !l.allowHTTP {
			return blockdef.Document{}, errors.New("blockdef loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location())
	default:
		err = errors.New("blockdef loader: unsupported source kind")
	}
	if err != nil {
		return blockdef.Document{}, err
	}

	normalized, err := normalizeDocument(data)
	if err != nil {
		return blockdef.Document{}, err
	}

	doc, err := blockdef.NewDocument(src, normalized)
	if err != nil {
		return blockdef.Document{}, err
	}
	if l.sanitize {
		doc = sanitizeDocument(doc)
	}
	return doc, nil
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blockdef loader: read %q: %w", path, err)
	}
	return data, nil
}

func loadFromFS(ctx context.Context, fsys fs.FS, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if fsys == nil {
		return nil, errors.New("blockdef loader: no file system configured")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("blockdef loader: read %q: %w", name, err)
	}
	return data, nil
}

func loadHTTP(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("blockdef loader: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("blockdef loader: fetch %q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blockdef loader: fetch %q: unexpected status %d", rawURL, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("blockdef loader: read response: %w", err)
	}
	return data, nil
}
