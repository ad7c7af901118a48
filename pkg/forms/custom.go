package forms

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-dynforms/pkg/model"
)

// CustomForm is a dialog made of interactive controls. The client replies
// with one value per control, in declaration order.
type CustomForm struct {
	title  string
	fields []model.Field
	reg    registry
}

// NewCustomForm returns an empty custom form.
func NewCustomForm(title string) *CustomForm {
	return &CustomForm{title: title}
}

// Type reports model.FormTypeCustom.
func (f *CustomForm) Type() model.FormType { return model.FormTypeCustom }

// Title reports the dialog title.
func (f *CustomForm) Title() string { return f.title }

// SetTitle replaces the dialog title.
func (f *CustomForm) SetTitle(title string) *CustomForm {
	f.title = title
	return f
}

// AddLabel adds read-only text. The client always replies null for it.
func (f *CustomForm) AddLabel(text string, opts ...FieldOption) *CustomForm {
	return f.add(model.Field{Kind: model.KindLabel, Text: text}, opts)
}

// AddToggle adds an on/off switch.
func (f *CustomForm) AddToggle(text string, opts ...FieldOption) *CustomForm {
	return f.add(model.Field{Kind: model.KindToggle, Text: text}, opts)
}

// AddSlider adds a numeric slider bounded by min and max, inclusive.
func (f *CustomForm) AddSlider(text string, min, max float64, opts ...FieldOption) *CustomForm {
	return f.add(model.Field{Kind: model.KindSlider, Text: text, Min: min, Max: max}, opts)
}

// AddStepSlider adds a slider over labelled steps. The reply is the index of
// the chosen step.
func (f *CustomForm) AddStepSlider(text string, steps []string, opts ...FieldOption) *CustomForm {
	return f.add(model.Field{Kind: model.KindStepSlider, Text: text, Options: append([]string(nil), steps...)}, opts)
}

// AddDropdown adds a drop-down list. The reply is the index of the chosen
// option.
func (f *CustomForm) AddDropdown(text string, options []string, opts ...FieldOption) *CustomForm {
	return f.add(model.Field{Kind: model.KindDropdown, Text: text, Options: append([]string(nil), options...)}, opts)
}

// AddInput adds a free-text box.
func (f *CustomForm) AddInput(text string, opts ...FieldOption) *CustomForm {
	return f.add(model.Field{Kind: model.KindInput, Text: text}, opts)
}

// AddField appends a prepared descriptor. Its key is resolved the same way as
// for the typed builders.
func (f *CustomForm) AddField(field model.Field) *CustomForm {
	return f.add(field.Clone(), nil)
}

func (f *CustomForm) add(field model.Field, opts []FieldOption) *CustomForm {
	for _, opt := range opts {
		if opt != nil {
			opt(&field)
		}
	}
	field.Key = f.reg.resolve(field.Key)
	f.reg.add(field.Key, string(field.Kind), field.Check())
	f.fields = append(f.fields, field)
	return f
}

// Len reports the number of controls.
func (f *CustomForm) Len() int { return len(f.fields) }

// Fields returns a copy of the declared controls in order.
func (f *CustomForm) Fields() []model.Field {
	out := make([]model.Field, len(f.fields))
	for i, field := range f.fields {
		out[i] = field.Clone()
	}
	return out
}

// Err reports problems recorded while the form was built.
func (f *CustomForm) Err() error { return f.reg.err() }

type customPayload struct {
	Type    model.FormType `json:"type"`
	Title   string         `json:"title"`
	Content []model.Field  `json:"content"`
}

// MarshalJSON emits the wire payload. It fails when the form was built
// inconsistently.
func (f *CustomForm) MarshalJSON() ([]byte, error) {
	if err := f.Err(); err != nil {
		return nil, fmt.Errorf("forms: custom form %q: %w", f.title, err)
	}
	content := f.fields
	if content == nil {
		content = []model.Field{}
	}
	return json.Marshal(customPayload{Type: f.Type(), Title: f.title, Content: content})
}

// Decode validates a reply against the declared controls. A nil reply means
// the dialog was closed and yields (nil, nil). Decoding is all-or-nothing.
func (f *CustomForm) Decode(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	values, ok := asList(raw)
	if !ok {
		return nil, typeMismatch(f.Type(), raw)
	}
	if err := f.Err(); err != nil {
		return nil, registryFault(f.Type(), -1, err)
	}
	if len(values) != len(f.fields) {
		return nil, &ResponseError{
			Kind:     KindSizeMismatch,
			Form:     f.Type(),
			Index:    -1,
			Expected: len(f.fields),
			Got:      len(values),
		}
	}

	result := newResult()
	for i, value := range values {
		if i >= len(f.fields) || !f.fields[i].Kind.Valid() {
			return nil, registryFault(f.Type(), i, nil)
		}
		field := f.fields[i]
		if !field.Accepts(value) {
			return nil, &ResponseError{
				Kind:     KindFieldValidation,
				Form:     f.Type(),
				Index:    i,
				Key:      field.Key,
				Received: describe(value),
			}
		}
		result.set(field.Key, value)
	}
	return result, nil
}

// asList accepts []any directly and any other slice or array via reflection.
func asList(raw any) ([]any, bool) {
	if list, ok := raw.([]any); ok {
		return list, true
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
