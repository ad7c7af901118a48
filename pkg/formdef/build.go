package formdef

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/model"
)

// ErrInvalidDefinition reports a definition that cannot produce a form.
var ErrInvalidDefinition = errors.New("formdef: invalid definition")

// Build constructs a fresh form from the definition. Every call returns a new
// form, so callers may keep mutating the result.
func (d Definition) Build() (forms.Form, error) {
	switch d.Type {
	case model.FormTypeCustom:
		return d.buildCustom()
	case model.FormTypeSimple:
		return d.buildSimple()
	case model.FormTypeModal:
		return d.buildModal()
	case "":
		return nil, fmt.Errorf("%w: %s: missing type", ErrInvalidDefinition, d.label())
	default:
		return nil, fmt.Errorf("%w: %s: unknown type %q", ErrInvalidDefinition, d.label(), d.Type)
	}
}

func (d Definition) buildCustom() (forms.Form, error) {
	form := forms.NewCustomForm(sanitizeText(d.Title))
	for i, field := range d.Fields {
		opts := field.options()
		text := sanitizeText(field.Text)
		switch field.Type {
		case model.KindLabel:
			form.AddLabel(text, opts...)
		case model.KindToggle:
			form.AddToggle(text, opts...)
		case model.KindSlider:
			if field.Min == nil || field.Max == nil {
				return nil, fmt.Errorf("%w: %s: field %d: slider requires min and max", ErrInvalidDefinition, d.label(), i)
			}
			form.AddSlider(text, *field.Min, *field.Max, opts...)
		case model.KindStepSlider:
			steps := field.Steps
			if len(steps) == 0 {
				steps = field.Options
			}
			form.AddStepSlider(text, sanitizeAll(steps), opts...)
		case model.KindDropdown:
			form.AddDropdown(text, sanitizeAll(field.Options), opts...)
		case model.KindInput:
			form.AddInput(text, opts...)
		default:
			// recorded by the form as a construction error
			form.AddField(model.Field{Kind: field.Type, Text: text})
		}
	}
	if err := form.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, d.label(), err)
	}
	return form, nil
}

func (d Definition) buildSimple() (forms.Form, error) {
	form := forms.NewSimpleForm(sanitizeText(d.Title)).SetContent(sanitizeText(d.Content))
	for _, button := range d.Buttons {
		var opts []forms.ButtonOption
		if button.ID != "" {
			opts = append(opts, forms.WithButtonKey(button.ID))
		}
		if button.Image != nil {
			opts = append(opts, forms.WithImage(button.Image.Type, button.Image.Data))
		}
		form.AddButton(sanitizeText(button.Text), opts...)
	}
	if err := form.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, d.label(), err)
	}
	return form, nil
}

func (d Definition) buildModal() (forms.Form, error) {
	if len(d.Fields) > 0 || len(d.Buttons) > 0 {
		return nil, fmt.Errorf("%w: %s: modal forms only use button1 and button2", ErrInvalidDefinition, d.label())
	}
	return forms.NewModalForm(sanitizeText(d.Title)).
		SetContent(sanitizeText(d.Content)).
		SetTrueButtonLabel(sanitizeText(d.Button1)).
		SetFalseButtonLabel(sanitizeText(d.Button2)), nil
}

func (f FieldDefinition) options() []forms.FieldOption {
	var opts []forms.FieldOption
	if f.ID != "" {
		opts = append(opts, forms.WithKey(f.ID))
	}
	if f.Default != nil {
		def := f.Default
		if s, ok := def.(string); ok {
			def = sanitizeText(s)
		}
		opts = append(opts, forms.WithDefault(def))
	}
	if f.Step != nil {
		opts = append(opts, forms.WithStep(*f.Step))
	}
	if f.Placeholder != "" {
		opts = append(opts, forms.WithPlaceholder(sanitizeText(f.Placeholder)))
	}
	return opts
}

func (d Definition) label() string {
	switch {
	case d.ID != "" && d.Source != "":
		return fmt.Sprintf("form %q (file %s)", d.ID, d.Source)
	case d.ID != "":
		return fmt.Sprintf("form %q", d.ID)
	default:
		return "form"
	}
}
