package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-dynforms/pkg/forms"
)

// Transformer mutates a form after it is built and before it is rendered.
// Implementations can translate text or append runtime buttons, such as a
// list of online players.
type Transformer interface {
	Transform(ctx context.Context, form forms.Form) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form forms.Form) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form forms.Form) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// Placeholders replaces "{name}" tokens in titles, body text and button labels
// with the supplied values. Field text of custom forms is left alone since the
// descriptors are fixed once added.
type Placeholders map[string]string

// Transform applies the replacements.
func (p Placeholders) Transform(_ context.Context, form forms.Form) error {
	if len(p) == 0 {
		return nil
	}
	pairs := make([]string, 0, len(p)*2)
	for name, value := range p {
		pairs = append(pairs, "{"+name+"}", value)
	}
	replacer := strings.NewReplacer(pairs...)

	switch f := form.(type) {
	case *forms.CustomForm:
		f.SetTitle(replacer.Replace(f.Title()))
	case *forms.SimpleForm:
		f.SetTitle(replacer.Replace(f.Title()))
		f.SetContent(replacer.Replace(f.Content()))
	case *forms.ModalForm:
		f.SetTitle(replacer.Replace(f.Title()))
		f.SetContent(replacer.Replace(f.Content()))
		f.SetTrueButtonLabel(replacer.Replace(f.TrueButtonLabel()))
		f.SetFalseButtonLabel(replacer.Replace(f.FalseButtonLabel()))
	default:
		return fmt.Errorf("orchestrator: placeholders: unsupported form %T", form)
	}
	return nil
}
