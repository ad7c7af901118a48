// Package text renders a human-readable preview of a form, one line per field
// or button, for logs and the CLI.
package text

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/model"
	"github.com/goliatone/go-dynforms/pkg/render"
	"github.com/goliatone/go-dynforms/pkg/render/template"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const defaultTemplate = "form"

// TemplatesFS returns the embedded templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Option configures the text renderer.
type Option func(*Renderer)

// WithTemplatesFS swaps the embedded templates. The filesystem must provide
// the template named by WithTemplateName (default "form.tpl").
func WithTemplatesFS(files fs.FS) Option {
	return func(r *Renderer) {
		if files != nil {
			r.templates = files
		}
	}
}

// WithTemplateName overrides the template used for every form.
func WithTemplateName(name string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			r.name = trimmed
		}
	}
}

// Renderer implements render.Renderer using a pongo2 template.
type Renderer struct {
	templates fs.FS
	name      string
	engine    *template.Engine
}

// New constructs a text renderer backed by the embedded templates.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{name: defaultTemplate}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.templates == nil {
		r.templates = TemplatesFS()
	}
	engine, err := template.New(template.WithFS(r.templates))
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	r.engine = engine
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string { return "text" }

// ContentType reports text/plain.
func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render produces the preview. Messages in options.Errors are printed under
// the matching field, or at the top when keyed by "".
func (r *Renderer) Render(ctx context.Context, form forms.Form, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("text: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errors.New("text: form is required")
	}

	data, err := buildView(form, options)
	if err != nil {
		return nil, err
	}
	out, err := r.engine.RenderTemplate(r.name, data)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	return []byte(out), nil
}

func buildView(form forms.Form, options render.RenderOptions) (map[string]any, error) {
	data := map[string]any{
		"title":       form.Title(),
		"type":        string(form.Type()),
		"form_errors": options.Errors[""],
	}

	switch f := form.(type) {
	case *forms.CustomForm:
		if err := f.Err(); err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		fields := f.Fields()
		items := make([]map[string]any, 0, len(fields))
		for i, field := range fields {
			items = append(items, map[string]any{
				"index":  i,
				"key":    field.Key.String(),
				"kind":   string(field.Kind),
				"text":   field.Text,
				"detail": fieldDetail(field),
				"errors": options.Errors[field.Key.String()],
			})
		}
		data["fields"] = items
	case *forms.SimpleForm:
		if err := f.Err(); err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		data["content"] = f.Content()
		buttons := f.Buttons()
		items := make([]map[string]any, 0, len(buttons))
		for i, button := range buttons {
			image := ""
			if button.Image != nil {
				image = string(button.Image.Type) + ":" + button.Image.Data
			}
			items = append(items, map[string]any{
				"index": i,
				"key":   button.Key.String(),
				"text":  button.Text,
				"image": image,
			})
		}
		data["buttons"] = items
	case *forms.ModalForm:
		data["content"] = f.Content()
		data["modal"] = true
		data["button1"] = f.TrueButtonLabel()
		data["button2"] = f.FalseButtonLabel()
	default:
		return nil, fmt.Errorf("text: unsupported form %T", form)
	}
	return data, nil
}

func fieldDetail(field model.Field) string {
	var parts []string
	switch field.Kind {
	case model.KindSlider:
		rng := formatNumber(field.Min) + ".." + formatNumber(field.Max)
		if field.Step != nil {
			rng += " step " + formatNumber(*field.Step)
		}
		parts = append(parts, rng)
	case model.KindStepSlider, model.KindDropdown:
		parts = append(parts, strings.Join(field.Options, " | "))
	case model.KindInput:
		if field.Placeholder != "" {
			parts = append(parts, "placeholder "+strconv.Quote(field.Placeholder))
		}
	}
	if field.Default != nil {
		parts = append(parts, "default "+formatDefault(field))
	}
	return strings.Join(parts, ", ")
}

func formatDefault(field model.Field) string {
	switch field.Kind {
	case model.KindStepSlider, model.KindDropdown:
		if i, ok := model.AsInt(field.Default); ok && i >= 0 && i < len(field.Options) {
			return field.Options[i]
		}
	case model.KindSlider:
		if n, ok := model.AsNumber(field.Default); ok {
			return formatNumber(n)
		}
	case model.KindInput:
		if s, ok := field.Default.(string); ok {
			return strconv.Quote(s)
		}
	}
	return fmt.Sprint(field.Default)
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

var _ render.Renderer = (*Renderer)(nil)
