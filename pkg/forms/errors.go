package forms

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/goliatone/go-dynforms/pkg/model"
)

// ErrorKind classifies why a reply could not be decoded.
type ErrorKind string

const (
	KindTypeMismatch    ErrorKind = "type_mismatch"
	KindSizeMismatch    ErrorKind = "size_mismatch"
	KindFieldValidation ErrorKind = "field_validation"
	KindIndexOutOfRange ErrorKind = "index_out_of_range"
	KindRegistryFault   ErrorKind = "registry_fault"
)

var (
	// ErrTypeMismatch signals a reply of the wrong shape for the form variant.
	ErrTypeMismatch = errors.New("forms: response type mismatch")
	// ErrSizeMismatch signals a custom form reply with the wrong element count.
	ErrSizeMismatch = errors.New("forms: response size mismatch")
	// ErrFieldValidation signals a value rejected by its field's validator.
	ErrFieldValidation = errors.New("forms: field validation failed")
	// ErrIndexOutOfRange signals a simple form reply outside the button list.
	ErrIndexOutOfRange = errors.New("forms: button index out of range")
	// ErrRegistryFault signals a form that was built inconsistently. It points
	// at a construction bug rather than at the reply.
	ErrRegistryFault = errors.New("forms: field registry fault")
)

// ResponseError describes a rejected reply. It unwraps to one of the
// package sentinels so callers can match with errors.Is.
type ResponseError struct {
	Kind ErrorKind
	Form model.FormType
	// Index is the offending element or button index, -1 when not relevant
	// or when a button index does not fit in an int.
	Index int
	// Value is the offending reply value for out-of-range button indices.
	Value any
	// Key is the output key of the offending field for validation failures.
	Key model.Key
	// Expected and Got carry the counts for size mismatches.
	Expected int
	Got      int
	// Received names the kind of value the client sent.
	Received string
	// Cause carries the construction error behind a registry fault.
	Cause error
}

func (e *ResponseError) Error() string {
	switch e.Kind {
	case KindTypeMismatch:
		return fmt.Sprintf("forms: %s expected %s response, got %s", e.Form, expectedShape(e.Form), e.Received)
	case KindSizeMismatch:
		return fmt.Sprintf("forms: %s expected a response with %d elements, got %d", e.Form, e.Expected, e.Got)
	case KindFieldValidation:
		return fmt.Sprintf("forms: %s invalid value for element %s (got %s)", e.Form, e.Key, e.Received)
	case KindIndexOutOfRange:
		return fmt.Sprintf("forms: %s button index %v out of range [0, %d)", e.Form, e.Value, e.Expected)
	case KindRegistryFault:
		if e.Cause != nil {
			return fmt.Sprintf("forms: %s registry fault: %v", e.Form, e.Cause)
		}
		return fmt.Sprintf("forms: %s registry fault: invalid element %d", e.Form, e.Index)
	default:
		return "forms: invalid response"
	}
}

// Unwrap exposes the sentinel for the error kind and, for registry faults,
// the construction error.
func (e *ResponseError) Unwrap() []error {
	var sentinel error
	switch e.Kind {
	case KindTypeMismatch:
		sentinel = ErrTypeMismatch
	case KindSizeMismatch:
		sentinel = ErrSizeMismatch
	case KindFieldValidation:
		sentinel = ErrFieldValidation
	case KindIndexOutOfRange:
		sentinel = ErrIndexOutOfRange
	case KindRegistryFault:
		sentinel = ErrRegistryFault
	}
	out := make([]error, 0, 2)
	if sentinel != nil {
		out = append(out, sentinel)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}
	return out
}

// IsRejected reports whether err is a reply the client got wrong, as opposed
// to a registry fault or an unrelated error.
func IsRejected(err error) bool {
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		return false
	}
	return respErr.Kind != KindRegistryFault
}

// AsResponseError extracts the ResponseError wrapped in err.
func AsResponseError(err error) (*ResponseError, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr, true
	}
	return nil, false
}

func typeMismatch(form model.FormType, raw any) *ResponseError {
	return &ResponseError{Kind: KindTypeMismatch, Form: form, Index: -1, Received: describe(raw)}
}

func registryFault(form model.FormType, index int, cause error) *ResponseError {
	return &ResponseError{Kind: KindRegistryFault, Form: form, Index: index, Cause: cause}
}

func expectedShape(form model.FormType) string {
	switch form {
	case model.FormTypeCustom:
		return "an array"
	case model.FormTypeSimple:
		return "an integer"
	case model.FormTypeModal:
		return "a boolean"
	default:
		return "a"
	}
}

// describe names the JSON kind of a decoded value.
func describe(v any) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case bool:
		return "boolean"
	case string:
		return "string"
	case map[string]any:
		return "object"
	}
	if model.IsIntegral(v) {
		return "integer"
	}
	if _, ok := model.AsNumber(v); ok {
		return "float"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
