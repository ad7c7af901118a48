package formdef

import "github.com/goliatone/go-dynforms/pkg/model"

// Definition describes one form. Custom forms use Fields, simple forms use
// Content and Buttons, modal forms use Content, Button1 and Button2.
type Definition struct {
	ID      string             `json:"-" yaml:"-"`
	Source  string             `json:"-" yaml:"-"`
	Type    model.FormType     `json:"type" yaml:"type"`
	Title   string             `json:"title" yaml:"title"`
	Content string             `json:"content,omitempty" yaml:"content,omitempty"`
	Button1 string             `json:"button1,omitempty" yaml:"button1,omitempty"`
	Button2 string             `json:"button2,omitempty" yaml:"button2,omitempty"`
	Buttons []ButtonDefinition `json:"buttons,omitempty" yaml:"buttons,omitempty"`
	Fields  []FieldDefinition  `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// FieldDefinition describes one control of a custom form. Steps is accepted
// as an alias of Options for step sliders.
type FieldDefinition struct {
	Type        model.Kind `json:"type" yaml:"type"`
	ID          string     `json:"id,omitempty" yaml:"id,omitempty"`
	Text        string     `json:"text" yaml:"text"`
	Default     any        `json:"default,omitempty" yaml:"default,omitempty"`
	Min         *float64   `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64   `json:"max,omitempty" yaml:"max,omitempty"`
	Step        *float64   `json:"step,omitempty" yaml:"step,omitempty"`
	Steps       []string   `json:"steps,omitempty" yaml:"steps,omitempty"`
	Options     []string   `json:"options,omitempty" yaml:"options,omitempty"`
	Placeholder string     `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// ButtonDefinition describes one button of a simple form.
type ButtonDefinition struct {
	ID    string           `json:"id,omitempty" yaml:"id,omitempty"`
	Text  string           `json:"text" yaml:"text"`
	Image *ImageDefinition `json:"image,omitempty" yaml:"image,omitempty"`
}

// ImageDefinition mirrors model.Image.
type ImageDefinition struct {
	Type model.ImageType `json:"type" yaml:"type"`
	Data string          `json:"data" yaml:"data"`
}

// Store holds loaded definitions keyed by form id.
type Store struct {
	definitions map[string]Definition
}
