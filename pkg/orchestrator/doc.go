// Package orchestrator wires the definition store → form → transformer →
// renderer pipeline, providing dependency injection friendly helpers for
// consumers that prefer a single entry point.
package orchestrator
