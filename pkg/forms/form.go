package forms

import (
	"github.com/goccy/go-json"

	"github.com/goliatone/go-dynforms/pkg/model"
)

// Form is the contract shared by every dialog variant.
type Form interface {
	json.Marshaler

	// Type reports the payload discriminator.
	Type() model.FormType
	// Title reports the dialog title.
	Title() string
	// Decode validates a raw client reply and returns the decoded value: a
	// *Result for custom forms, a model.Key for simple forms and a bool for
	// modal forms. A nil return with a nil error means the dialog was closed.
	Decode(raw any) (any, error)
}

// Encode serialises a form into its wire payload.
func Encode(form Form) ([]byte, error) {
	return json.Marshal(form)
}

// EncodeIndent serialises a form with indentation, for previews and fixtures.
func EncodeIndent(form Form) ([]byte, error) {
	return json.MarshalIndent(form, "", "  ")
}

var (
	_ Form = (*CustomForm)(nil)
	_ Form = (*SimpleForm)(nil)
	_ Form = (*ModalForm)(nil)
)
