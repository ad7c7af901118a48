package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-dynforms/pkg/formdef"
	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/render"
	"github.com/goliatone/go-dynforms/pkg/renderers/payload"
	"github.com/goliatone/go-dynforms/pkg/renderers/text"
	"github.com/goliatone/go-dynforms/pkg/renderers/tui"
)

const defaultRendererName = "payload"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithStore injects a preloaded definition store.
func WithStore(store *formdef.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithDefinitionsFS loads definitions from fsys when no store was injected.
func WithDefinitionsFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.definitionsFS = fsys
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformers registers transformers that run, in order, against every
// prepared form.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, transformers...)
	}
}

// Orchestrator coordinates the pipeline from a definition id to rendered
// output. It applies sensible defaults (payload, text and tui renderers) while
// remaining open to dependency injection.
type Orchestrator struct {
	store           *formdef.Store
	definitionsFS   fs.FS
	registry        *render.Registry
	defaultRenderer string
	transformers    []Transformer
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Errors raised
// while applying defaults are reported by the first Prepare or Generate call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a form to prepare and render.
type Request struct {
	// FormID selects a definition from the store. Ignored when Form is set.
	FormID string

	// Form bypasses the store for forms built in code.
	Form forms.Form

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries feedback from a previously rejected reply.
	RenderOptions render.RenderOptions
}

// Err reports a failure raised while applying defaults, such as a broken
// definition file.
func (o *Orchestrator) Err() error {
	return o.initialiseErr
}

// Store exposes the definition store, which may be empty.
func (o *Orchestrator) Store() *formdef.Store {
	return o.store
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Prepare resolves the request's form and runs the transformers. Callers keep
// the returned form to decode the client's reply.
func (o *Orchestrator) Prepare(ctx context.Context, req Request) (forms.Form, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	form := req.Form
	if form == nil {
		if req.FormID == "" {
			return nil, errors.New("orchestrator: form id is required")
		}
		built, err := o.store.Form(req.FormID)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
		form = built
	}

	for _, transformer := range o.transformers {
		if transformer == nil {
			continue
		}
		if err := transformer.Transform(ctx, form); err != nil {
			return nil, fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}
	return form, nil
}

// Render renders an already prepared form.
func (o *Orchestrator) Render(ctx context.Context, form forms.Form, rendererName string, options render.RenderOptions) ([]byte, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	renderer, err := o.rendererFor(rendererName)
	if err != nil {
		return nil, err
	}
	output, err := renderer.Render(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Generate prepares and renders the requested form. It returns the prepared
// form alongside the output so the reply can be decoded against it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (forms.Form, []byte, error) {
	form, err := o.Prepare(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	output, err := o.Render(ctx, form, req.Renderer, req.RenderOptions)
	if err != nil {
		return nil, nil, err
	}
	return form, output, nil
}

// RendererName resolves the renderer a request would use. An empty name
// selects the default renderer.
func (o *Orchestrator) RendererName(name string) string {
	if name == "" {
		return o.defaultRenderer
	}
	return name
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := o.RendererName(name)

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.store == nil {
		store, err := formdef.LoadFS(o.definitionsFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load definitions: %w", err)
			return
		}
		o.store = store
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderers: %w", err)
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

// DefaultRegistry returns a registry holding the built-in renderers: payload,
// text and tui.
func DefaultRegistry() (*render.Registry, error) {
	textRenderer, err := text.New()
	if err != nil {
		return nil, err
	}
	tuiRenderer, err := tui.New()
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(payload.New(), textRenderer, tuiRenderer)
}
