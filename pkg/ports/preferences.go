package ports

// Preferences exposes host-owned runtime configuration.
//
// Implementations must answer from live state on every call: the debug flag
// is consulted fresh for each record and each reduction, so toggling it in
// the host takes effect on the very next notification with no caching lag.
type Preferences interface {
	DebugEnabled() bool
}

// PreferenceFunc adapts a plain function to the Preferences interface.
type PreferenceFunc func() bool

func (f PreferenceFunc) DebugEnabled() bool {
	return f()
}
