// Package model defines the typed building blocks of a dialog form: field
// descriptors, buttons, and output keys. A Field is a tagged variant over the
// supported client controls (label, toggle, slider, step slider, dropdown and
// free-text input). Each variant carries its own constraint parameters, so the
// payload fragment sent to the client and the validator applied to the reply
// come from the same value. Keys resolve once, when a field is registered, to
// either an explicit identifier or the field's positional index.
package model
