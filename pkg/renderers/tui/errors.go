package tui

import "errors"

// ErrAborted signals the user aborted input (e.g., Ctrl+C). The renderer
// turns it into a null reply, the same thing a client sends when the dialog
// is dismissed.
var ErrAborted = errors.New("tui: aborted")
