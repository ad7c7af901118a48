package dynforms

import (
	"io/fs"

	"github.com/goliatone/go-dynforms/pkg/renderers/text"
)

// EmbeddedTemplates exposes the built-in text preview templates so callers
// can copy or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return text.TemplatesFS()
}
