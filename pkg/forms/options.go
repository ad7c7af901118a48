package forms

import "github.com/goliatone/go-dynforms/pkg/model"

// FieldOption configures a control added to a CustomForm.
type FieldOption func(*model.Field)

// WithKey sets the identifier the control's value is stored under in the
// decoded Result. Without it the control's position is used.
func WithKey(id string) FieldOption {
	return func(f *model.Field) {
		f.Key = model.NameKey(id)
	}
}

// WithDefault pre-selects a value on the client: a bool for toggles, a number
// for sliders, an option index for step sliders and dropdowns, and a string
// for inputs.
func WithDefault(value any) FieldOption {
	return func(f *model.Field) {
		f.Default = value
	}
}

// WithStep sets the increment between slider positions.
func WithStep(step float64) FieldOption {
	return func(f *model.Field) {
		f.Step = &step
	}
}

// WithPlaceholder sets the hint an empty input box shows.
func WithPlaceholder(text string) FieldOption {
	return func(f *model.Field) {
		f.Placeholder = text
	}
}

// ButtonOption configures a button added to a SimpleForm.
type ButtonOption func(*model.Button)

// WithButtonKey sets the key a reply selecting the button decodes to. Without
// it the button's position is used.
func WithButtonKey(id string) ButtonOption {
	return func(b *model.Button) {
		b.Key = model.NameKey(id)
	}
}

// WithImage attaches an image loaded from a resource path or a URL.
func WithImage(kind model.ImageType, data string) ButtonOption {
	return func(b *model.Button) {
		b.Image = &model.Image{Type: kind, Data: data}
	}
}
