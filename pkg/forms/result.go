package forms

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/goliatone/go-dynforms/pkg/model"
)

// Result is the decoded reply of a custom form: each control's value under
// its output key, in declaration order. Values are stored exactly as the
// client sent them.
type Result struct {
	values *orderedmap.OrderedMap[string, any]
}

func newResult() *Result {
	return &Result{values: orderedmap.New[string, any]()}
}

func (r *Result) set(key model.Key, value any) {
	r.values.Set(key.String(), value)
}

// Len reports the number of entries.
func (r *Result) Len() int {
	if r == nil || r.values == nil {
		return 0
	}
	return r.values.Len()
}

// Keys returns the entry keys in declaration order.
func (r *Result) Keys() []string {
	if r.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns the value stored under key.
func (r *Result) Get(key string) (any, bool) {
	if r.Len() == 0 {
		return nil, false
	}
	return r.values.Get(key)
}

// At returns the value of the control at a positional key.
func (r *Result) At(key model.Key) (any, bool) {
	return r.Get(key.String())
}

// Bool returns a toggle value.
func (r *Result) Bool(key string) (bool, bool) {
	v, ok := r.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Int returns a step slider or dropdown index, or an integral slider value.
func (r *Result) Int(key string) (int, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	return model.AsInt(v)
}

// Float returns a slider value.
func (r *Result) Float(key string) (float64, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	return model.AsNumber(v)
}

// String returns an input value.
func (r *Result) String(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Map copies the entries into a plain map, losing their order.
func (r *Result) Map() map[string]any {
	out := make(map[string]any, r.Len())
	for _, key := range r.Keys() {
		out[key], _ = r.values.Get(key)
	}
	return out
}

// MarshalJSON encodes the entries as an object in declaration order.
func (r *Result) MarshalJSON() ([]byte, error) {
	if r.Len() == 0 {
		return []byte("{}"), nil
	}
	return r.values.MarshalJSON()
}
