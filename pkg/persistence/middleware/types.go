// Package middleware wraps a Journal to add behavior without the journal
// implementations knowing about it.
package middleware

import "github.com/aretw0/swell/pkg/ports"

// Middleware allows wrapping a Journal to add behavior.
type Middleware func(ports.Journal) ports.Journal

// Chain applies middlewares so the first listed one sees appends first.
func Chain(journal ports.Journal, mws ...Middleware) ports.Journal {
	for i := len(mws) - 1; i >= 0; i-- {
		journal = mws[i](journal)
	}
	return journal
}
