package dynforms

import (
	"context"

	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/orchestrator"
	"github.com/goliatone/go-dynforms/pkg/render"
)

// RenderOptions carries feedback from a previously rejected reply; alias
// exported via the root package for convenience.
type RenderOptions = render.RenderOptions

// Request describes a form to prepare and render.
type Request = orchestrator.Request

// Transformer mutates prepared forms before rendering.
type Transformer = orchestrator.Transformer

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Render renders a form built in code with the named built-in renderer
// (payload, text or tui). It is the simplest entry point for callers that just
// want the wire payload or a preview.
func Render(ctx context.Context, form forms.Form, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	_, out, err := gen.Generate(ctx, orchestrator.Request{
		Form:     form,
		Renderer: rendererName,
	})
	return out, err
}

// Decode parses the client's JSON reply and validates it against form. The
// result is nil when the client closed the dialog.
func Decode(form forms.Form, reply []byte) (any, error) {
	raw, err := forms.ParseResponse(reply)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return form.Decode(raw)
}
