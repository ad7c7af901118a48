package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form.
type RenderOptions struct {
	// Errors surfaces feedback from a previously rejected reply keyed by output
	// key (see MapDecodeError). Form-level messages use the empty key.
	Errors map[string][]string
}
