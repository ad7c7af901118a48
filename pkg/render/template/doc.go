// Package template wraps the pongo2 engine used by text-based renderers. It
// loads templates from an fs.FS, caches parsed templates, and runs with
// autoescaping disabled since dialog previews are plain text.
package template
