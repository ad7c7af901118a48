package forms

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// ErrMalformedResponse wraps replies that are not valid JSON.
var ErrMalformedResponse = errors.New("forms: malformed response")

// ParseResponse decodes the client's raw JSON reply. Numbers are kept as
// json.Number so integer indices stay distinguishable from fractional slider
// values.
func ParseResponse(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	// the streaming decoder accepts truncated literals such as "nul" at the
	// end of input, so the body is validated with a full unmarshal first
	if err := json.Unmarshal(trimmed, new(any)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedResponse)
	}
	return raw, nil
}
