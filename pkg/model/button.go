package model

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Image decorates a simple form button.
type Image struct {
	Type ImageType `json:"type"`
	Data string    `json:"data"`
}

// Button is one choice of a simple form. Key is what a reply selecting the
// button decodes to.
type Button struct {
	Text  string
	Image *Image
	Key   Key
}

// Check validates the button's image, when present.
func (b Button) Check() error {
	if b.Image != nil && !b.Image.Type.Valid() {
		return fmt.Errorf("%w: button %q image type %q", ErrInvalidField, b.Text, b.Image.Type)
	}
	return nil
}

// Clone returns a copy that shares no pointers with b.
func (b Button) Clone() Button {
	out := b
	if b.Image != nil {
		img := *b.Image
		out.Image = &img
	}
	return out
}

type buttonFragment struct {
	Text  string `json:"text"`
	Image *Image `json:"image,omitempty"`
}

// MarshalJSON emits the button fragment the client renders.
func (b Button) MarshalJSON() ([]byte, error) {
	return json.Marshal(buttonFragment{Text: b.Text, Image: b.Image})
}
