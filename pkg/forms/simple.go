package forms

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-dynforms/pkg/model"
)

// SimpleForm is a dialog with body text and a list of buttons. The client
// replies with the index of the pressed button.
type SimpleForm struct {
	title   string
	content string
	buttons []model.Button
	reg     registry
}

// NewSimpleForm returns a simple form without buttons.
func NewSimpleForm(title string) *SimpleForm {
	return &SimpleForm{title: title}
}

// Type reports model.FormTypeSimple.
func (f *SimpleForm) Type() model.FormType { return model.FormTypeSimple }

// Title reports the dialog title.
func (f *SimpleForm) Title() string { return f.title }

// SetTitle replaces the dialog title.
func (f *SimpleForm) SetTitle(title string) *SimpleForm {
	f.title = title
	return f
}

// Content reports the body text.
func (f *SimpleForm) Content() string { return f.content }

// SetContent replaces the body text shown above the buttons.
func (f *SimpleForm) SetContent(content string) *SimpleForm {
	f.content = content
	return f
}

// AddButton appends a button.
func (f *SimpleForm) AddButton(text string, opts ...ButtonOption) *SimpleForm {
	button := model.Button{Text: text}
	for _, opt := range opts {
		if opt != nil {
			opt(&button)
		}
	}
	button.Key = f.reg.resolve(button.Key)
	f.reg.add(button.Key, button.Text, button.Check())
	f.buttons = append(f.buttons, button)
	return f
}

// Len reports the number of buttons.
func (f *SimpleForm) Len() int { return len(f.buttons) }

// Buttons returns a copy of the buttons in order.
func (f *SimpleForm) Buttons() []model.Button {
	out := make([]model.Button, len(f.buttons))
	for i, button := range f.buttons {
		out[i] = button.Clone()
	}
	return out
}

// Err reports problems recorded while the form was built.
func (f *SimpleForm) Err() error { return f.reg.err() }

type simplePayload struct {
	Type    model.FormType `json:"type"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Buttons []model.Button `json:"buttons"`
}

// MarshalJSON emits the wire payload.
func (f *SimpleForm) MarshalJSON() ([]byte, error) {
	if err := f.Err(); err != nil {
		return nil, fmt.Errorf("forms: simple form %q: %w", f.title, err)
	}
	buttons := f.buttons
	if buttons == nil {
		buttons = []model.Button{}
	}
	return json.Marshal(simplePayload{Type: f.Type(), Title: f.title, Content: f.content, Buttons: buttons})
}

// Decode maps the pressed button index to the button's key. A nil reply
// means the dialog was closed and yields (nil, nil).
func (f *SimpleForm) Decode(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if !model.IsIntegral(raw) {
		return nil, typeMismatch(f.Type(), raw)
	}
	index, fits := model.AsInt(raw)
	if err := f.Err(); err != nil {
		return nil, registryFault(f.Type(), index, err)
	}
	if !fits || index < 0 || index >= len(f.buttons) {
		if !fits {
			index = -1
		}
		return nil, &ResponseError{
			Kind:     KindIndexOutOfRange,
			Form:     f.Type(),
			Index:    index,
			Value:    raw,
			Expected: len(f.buttons),
			Received: describe(raw),
		}
	}
	return f.buttons[index].Key, nil
}
