package model

// Kind enumerates the field controls a custom form can carry.
type Kind string

const (
	KindLabel      Kind = "label"
	KindToggle     Kind = "toggle"
	KindSlider     Kind = "slider"
	KindStepSlider Kind = "step_slider"
	KindDropdown   Kind = "dropdown"
	KindInput      Kind = "input"
)

// Valid reports whether the kind is known and therefore has a validator.
func (k Kind) Valid() bool {
	switch k {
	case KindLabel, KindToggle, KindSlider, KindStepSlider, KindDropdown, KindInput:
		return true
	default:
		return false
	}
}

// Interactive reports whether the client returns a value for the kind.
func (k Kind) Interactive() bool {
	return k.Valid() && k != KindLabel
}

// FormType is the payload discriminator the client uses to pick a dialog
// layout.
type FormType string

const (
	FormTypeCustom FormType = "custom_form"
	FormTypeModal  FormType = "modal"
	FormTypeSimple FormType = "form"
)

// ImageType selects where a button image is loaded from.
type ImageType string

const (
	ImageTypePath ImageType = "path"
	ImageTypeURL  ImageType = "url"
)

// Valid reports whether the image type is supported by the client.
func (t ImageType) Valid() bool {
	return t == ImageTypePath || t == ImageTypeURL
}
