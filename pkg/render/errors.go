package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/model"
)

// ErrorMapping splits feedback into field-level messages keyed by output key
// and form-level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// Options converts the mapping into RenderOptions.Errors, with form-level
// messages under the empty key.
func (m ErrorMapping) Options() map[string][]string {
	if len(m.Fields) == 0 && len(m.Form) == 0 {
		return nil
	}
	out := make(map[string][]string, len(m.Fields)+1)
	for key, messages := range m.Fields {
		out[key] = append([]string(nil), messages...)
	}
	if len(m.Form) > 0 {
		out[""] = append([]string(nil), m.Form...)
	}
	return out
}

// MapDecodeError turns a decode failure into renderer feedback. Field
// validation failures attach to the offending field; everything else is
// form-level.
func MapDecodeError(err error) ErrorMapping {
	var mapping ErrorMapping
	if err == nil {
		return mapping
	}
	respErr, ok := forms.AsResponseError(err)
	if !ok {
		mapping.Form = normalizeMessages([]string{err.Error()})
		return mapping
	}
	switch respErr.Kind {
	case forms.KindFieldValidation:
		mapping.Fields = map[string][]string{
			respErr.Key.String(): {fmt.Sprintf("Invalid value (got %s)", respErr.Received)},
		}
	case forms.KindSizeMismatch:
		mapping.Form = []string{fmt.Sprintf("Expected %d answers, got %d", respErr.Expected, respErr.Got)}
	case forms.KindIndexOutOfRange:
		mapping.Form = []string{fmt.Sprintf("Button %v does not exist", respErr.Value)}
	case forms.KindTypeMismatch:
		mapping.Form = []string{fmt.Sprintf("Unexpected %s reply", respErr.Received)}
	default:
		mapping.Form = normalizeMessages([]string{respErr.Error()})
	}
	return mapping
}

// MapErrorPayload attaches application feedback (for example business rule
// failures raised from a response handler) to the fields of a custom form.
// Keys may be output keys, positions, or JSON pointer style paths such as
// "/content/2". Unknown keys become form-level messages so nothing is lost.
func MapErrorPayload(form *forms.CustomForm, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}

	known := make(map[string]struct{})
	var fields []model.Field
	if form != nil {
		fields = form.Fields()
	}
	for _, field := range fields {
		known[field.Key.String()] = struct{}{}
	}

	for rawKey, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		key, ok := resolveErrorKey(rawKey, fields, known)
		if !ok {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[key] = append(mapping.Fields[key], normalized...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// MergeFormErrors concatenates and normalises form-level messages, trimming
// whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func resolveErrorKey(raw string, fields []model.Field, known map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", false
	}
	if _, ok := known[trimmed]; ok {
		return trimmed, true
	}

	segments := strings.FieldsFunc(strings.TrimLeft(trimmed, "#$/."), func(r rune) bool {
		return r == '/' || r == '.' || r == '[' || r == ']'
	})
	if len(segments) == 2 && segments[0] == "content" {
		if idx, err := strconv.Atoi(segments[1]); err == nil && idx >= 0 && idx < len(fields) {
			return fields[idx].Key.String(), true
		}
	}
	if len(segments) == 1 {
		if _, ok := known[segments[0]]; ok {
			return segments[0], true
		}
	}
	return "", false
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors":
		return true
	default:
		return false
	}
}
