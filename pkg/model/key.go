package model

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Key identifies a field or button in a decoded response. A named key carries
// the caller's identifier; an index key carries the element's position.
type Key struct {
	name  string
	index int
	named bool
}

// NameKey returns a key for an explicit identifier.
func NameKey(name string) Key {
	return Key{name: name, named: true}
}

// IndexKey returns a positional key.
func IndexKey(index int) Key {
	return Key{index: index}
}

// Named reports whether the key carries an explicit identifier.
func (k Key) Named() bool {
	return k.named
}

// Name returns the explicit identifier, if any.
func (k Key) Name() (string, bool) {
	return k.name, k.named
}

// Index returns the positional index, if the key is positional.
func (k Key) Index() (int, bool) {
	return k.index, !k.named
}

// String returns the key as used in result mappings.
func (k Key) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}

// MarshalJSON encodes named keys as strings and positional keys as integers.
func (k Key) MarshalJSON() ([]byte, error) {
	if k.named {
		return json.Marshal(k.name)
	}
	return json.Marshal(k.index)
}

// UnmarshalJSON accepts either a string or an integer.
func (k *Key) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*k = NameKey(name)
		return nil
	}
	var index int
	if err := json.Unmarshal(data, &index); err != nil {
		return err
	}
	*k = IndexKey(index)
	return nil
}
