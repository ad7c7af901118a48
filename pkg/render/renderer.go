package render

import (
	"context"

	"github.com/goliatone/go-dynforms/pkg/forms"
)

// Renderer converts a form into a byte representation: the wire payload, a
// preview, or the reply a simulated client would send.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form forms.Form, options RenderOptions) ([]byte, error)
}
