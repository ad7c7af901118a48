package forms

import (
	"github.com/goccy/go-json"

	"github.com/goliatone/go-dynforms/pkg/model"
)

// ModalForm is a yes/no dialog. The first button replies true, the second
// false.
type ModalForm struct {
	title      string
	content    string
	trueLabel  string
	falseLabel string
}

// NewModalForm returns a modal form with empty body and button labels.
func NewModalForm(title string) *ModalForm {
	return &ModalForm{title: title}
}

// Type reports model.FormTypeModal.
func (f *ModalForm) Type() model.FormType { return model.FormTypeModal }

// Title reports the dialog title.
func (f *ModalForm) Title() string { return f.title }

// SetTitle replaces the dialog title.
func (f *ModalForm) SetTitle(title string) *ModalForm {
	f.title = title
	return f
}

// Content reports the body text.
func (f *ModalForm) Content() string { return f.content }

// SetContent replaces the body text.
func (f *ModalForm) SetContent(content string) *ModalForm {
	f.content = content
	return f
}

// TrueButtonLabel reports the label of the button that replies true.
func (f *ModalForm) TrueButtonLabel() string { return f.trueLabel }

// SetTrueButtonLabel labels the button that replies true.
func (f *ModalForm) SetTrueButtonLabel(text string) *ModalForm {
	f.trueLabel = text
	return f
}

// FalseButtonLabel reports the label of the button that replies false.
func (f *ModalForm) FalseButtonLabel() string { return f.falseLabel }

// SetFalseButtonLabel labels the button that replies false.
func (f *ModalForm) SetFalseButtonLabel(text string) *ModalForm {
	f.falseLabel = text
	return f
}

type modalPayload struct {
	Type    model.FormType `json:"type"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Button1 string         `json:"button1"`
	Button2 string         `json:"button2"`
}

// MarshalJSON emits the wire payload.
func (f *ModalForm) MarshalJSON() ([]byte, error) {
	return json.Marshal(modalPayload{
		Type:    f.Type(),
		Title:   f.title,
		Content: f.content,
		Button1: f.trueLabel,
		Button2: f.falseLabel,
	})
}

// Decode accepts only a boolean, which passes through unchanged. Any other
// reply, null included, is a type mismatch; HandleResponse routes null
// replies to the close handler before decoding.
func (f *ModalForm) Decode(raw any) (any, error) {
	b, ok := raw.(bool)
	if !ok {
		return nil, typeMismatch(f.Type(), raw)
	}
	return b, nil
}
