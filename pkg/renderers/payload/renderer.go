// Package payload renders a form as the JSON payload the client dialog
// system consumes.
package payload

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/render"
)

// Option configures the payload renderer.
type Option func(*Renderer)

// WithIndent pretty-prints the payload.
func WithIndent(enabled bool) Option {
	return func(r *Renderer) {
		r.indent = enabled
	}
}

// Renderer implements render.Renderer by serialising the form.
type Renderer struct {
	indent bool
}

// New constructs a payload renderer emitting compact JSON by default.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string { return "payload" }

// ContentType reports application/json.
func (r *Renderer) ContentType() string { return "application/json" }

// Render serialises the form. Feedback in options is ignored since the wire
// format has no slot for it.
func (r *Renderer) Render(ctx context.Context, form forms.Form, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("payload: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errors.New("payload: form is required")
	}

	var (
		out []byte
		err error
	)
	if r.indent {
		out, err = forms.EncodeIndent(form)
	} else {
		out, err = forms.Encode(form)
	}
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	return out, nil
}

var _ render.Renderer = (*Renderer)(nil)
