package httpapi

import "sync/atomic"

// DebugToggle is a runtime-togglable debug flag. It implements
// ports.Preferences, so the trace sink reads it fresh on every call, and the
// HTTP surface exposes it for remote flipping while a pipeline is live.
type DebugToggle struct {
	enabled atomic.Bool
}

// NewDebugToggle creates a toggle in the given initial state.
func NewDebugToggle(initial bool) *DebugToggle {
	t := &DebugToggle{}
	t.enabled.Store(initial)
	return t
}

// DebugEnabled reports the current state.
func (t *DebugToggle) DebugEnabled() bool {
	return t.enabled.Load()
}

// Set flips the flag; the next pipeline call observes the new state.
func (t *DebugToggle) Set(enabled bool) {
	t.enabled.Store(enabled)
}
