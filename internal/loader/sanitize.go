package loader

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-blockgen/pkg/blockdef"
)

var (
	tooltipPolicyOnce sync.Once
	tooltipPolicy     *bluemonday.Policy
)

// sanitizeDocument strips markup from tooltip text in loaded documents.
// Definition documents are frequently vendored from third parties and
// tooltips end up in editor DOM verbatim, so loaded text is treated as
// untrusted. Programmatic definitions never pass through here.
func sanitizeDocument(doc blockdef.Document) blockdef.Document {
	defs := doc.Definitions()
	changed := false
	out := make([]blockdef.Definition, len(defs))
	for i, def := range defs {
		if !def.Tooltip.IsZero() && !def.Tooltip.Deferred() {
			cleaned := sanitizeText(def.Tooltip.Resolve())
			if cleaned != def.Tooltip.Resolve() {
				def.Tooltip = blockdef.StaticText(cleaned)
				changed = true
			}
		}
		out[i] = def
	}
	if !changed {
		return doc
	}
	cleaned := blockdef.DocumentFromDefinitions(out...)
	return cleaned.WithSource(doc.Source())
}

func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(tooltipSanitizer().Sanitize(trimmed))
}

func tooltipSanitizer() *bluemonday.Policy {
	tooltipPolicyOnce.Do(func() {
		tooltipPolicy = bluemonday.StrictPolicy()
	})
	return tooltipPolicy
}
