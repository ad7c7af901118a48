package forms

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-dynforms/pkg/model"
)

// registry tracks key resolution for the append-only element lists of custom
// and simple forms. Keys resolve when an element is added and never change.
type registry struct {
	count int
	seen  map[string]int
	errs  []error
}

// resolve returns the explicit key, or the position the next element will
// occupy.
func (r *registry) resolve(key model.Key) model.Key {
	if key.Named() {
		return key
	}
	return model.IndexKey(r.count)
}

// add records the next element. Problems are kept rather than returned so
// builders stay chainable; they surface from Err, MarshalJSON and Decode.
func (r *registry) add(key model.Key, label string, check error) {
	position := r.count
	r.count++
	if check != nil {
		r.errs = append(r.errs, fmt.Errorf("element %d: %w", position, check))
	}
	if r.seen == nil {
		r.seen = make(map[string]int)
	}
	if prev, dup := r.seen[key.String()]; dup {
		r.errs = append(r.errs, fmt.Errorf("element %d (%s): key %q already used by element %d", position, label, key.String(), prev))
		return
	}
	r.seen[key.String()] = position
}

func (r *registry) err() error {
	return errors.Join(r.errs...)
}
