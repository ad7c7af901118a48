package model

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ErrInvalidField reports a descriptor whose parameters cannot produce a
// usable control.
var ErrInvalidField = errors.New("model: invalid field")

// Field describes one control in a custom form together with the constraints
// its reply must satisfy. Options holds the steps of a step slider or the
// choices of a dropdown. Default is nil when the client should pick its own
// initial value.
type Field struct {
	Kind        Kind
	Text        string
	Key         Key
	Min         float64
	Max         float64
	Step        *float64
	Options     []string
	Default     any
	Placeholder string
}

// Accepts reports whether v is a valid reply for the field.
func (f Field) Accepts(v any) bool {
	switch f.Kind {
	case KindLabel:
		return v == nil
	case KindToggle:
		_, ok := v.(bool)
		return ok
	case KindSlider:
		n, ok := AsNumber(v)
		return ok && n >= f.Min && n <= f.Max
	case KindStepSlider, KindDropdown:
		i, ok := AsInt(v)
		return ok && i >= 0 && i < len(f.Options)
	case KindInput:
		_, ok := v.(string)
		return ok
	default:
		return false
	}
}

// Check validates the descriptor's own parameters, including that a default
// value is one the field would accept as a reply.
func (f Field) Check() error {
	if !f.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidField, f.Kind)
	}
	switch f.Kind {
	case KindSlider:
		if f.Min > f.Max {
			return fmt.Errorf("%w: slider %q min %v exceeds max %v", ErrInvalidField, f.Text, f.Min, f.Max)
		}
		if f.Step != nil && *f.Step <= 0 {
			return fmt.Errorf("%w: slider %q step must be positive", ErrInvalidField, f.Text)
		}
	case KindStepSlider, KindDropdown:
		if len(f.Options) == 0 {
			return fmt.Errorf("%w: %s %q has no options", ErrInvalidField, f.Kind, f.Text)
		}
	}
	if f.Default == nil {
		return nil
	}
	if f.Kind == KindLabel {
		return fmt.Errorf("%w: label %q cannot carry a default", ErrInvalidField, f.Text)
	}
	if !f.Accepts(f.Default) {
		return fmt.Errorf("%w: %s %q default %v is not a valid value", ErrInvalidField, f.Kind, f.Text, f.Default)
	}
	return nil
}

// Clone returns a copy that shares no slices or pointers with f.
func (f Field) Clone() Field {
	out := f
	if f.Step != nil {
		step := *f.Step
		out.Step = &step
	}
	if f.Options != nil {
		out.Options = append([]string(nil), f.Options...)
	}
	return out
}

type labelFragment struct {
	Type Kind   `json:"type"`
	Text string `json:"text"`
}

type toggleFragment struct {
	Type    Kind   `json:"type"`
	Text    string `json:"text"`
	Default any    `json:"default,omitempty"`
}

type sliderFragment struct {
	Type    Kind     `json:"type"`
	Text    string   `json:"text"`
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	Step    *float64 `json:"step,omitempty"`
	Default any      `json:"default,omitempty"`
}

type stepSliderFragment struct {
	Type    Kind     `json:"type"`
	Text    string   `json:"text"`
	Steps   []string `json:"steps"`
	Default any      `json:"default,omitempty"`
}

type dropdownFragment struct {
	Type    Kind     `json:"type"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Default any      `json:"default"`
}

type inputFragment struct {
	Type        Kind   `json:"type"`
	Text        string `json:"text"`
	Placeholder string `json:"placeholder"`
	Default     any    `json:"default"`
}

// MarshalJSON emits the fragment the client renders for the field. Dropdowns
// and inputs always carry a default key, null when unset.
func (f Field) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case KindLabel:
		return json.Marshal(labelFragment{Type: f.Kind, Text: f.Text})
	case KindToggle:
		return json.Marshal(toggleFragment{Type: f.Kind, Text: f.Text, Default: f.Default})
	case KindSlider:
		return json.Marshal(sliderFragment{Type: f.Kind, Text: f.Text, Min: f.Min, Max: f.Max, Step: f.Step, Default: f.Default})
	case KindStepSlider:
		return json.Marshal(stepSliderFragment{Type: f.Kind, Text: f.Text, Steps: nonNil(f.Options), Default: f.Default})
	case KindDropdown:
		return json.Marshal(dropdownFragment{Type: f.Kind, Text: f.Text, Options: nonNil(f.Options), Default: f.Default})
	case KindInput:
		return json.Marshal(inputFragment{Type: f.Kind, Text: f.Text, Placeholder: f.Placeholder, Default: f.Default})
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidField, f.Kind)
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
