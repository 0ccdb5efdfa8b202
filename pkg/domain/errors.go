package domain

import (
	"errors"
	"fmt"
)

// ErrUnmappedKind is returned when classification is requested for a raw kind
// absent from the conversion table.
var ErrUnmappedKind = errors.New("unmapped raw kind")

// UnmappedKindError carries the offending kind for diagnostics. It unwraps to
// ErrUnmappedKind so callers can match with errors.Is.
type UnmappedKindError struct {
	Kind RawKind
}

func (e *UnmappedKindError) Error() string {
	return fmt.Sprintf("no change mapping for raw kind %q", string(e.Kind))
}

func (e *UnmappedKindError) Unwrap() error {
	return ErrUnmappedKind
}
