package backend

import "context"

// Noop is the terminal tier: it never interacts and reports every session as
// unavailable, which the result normalizer maps to the per-kind cancelled
// default. Its probe always succeeds so the selector can always land
// somewhere.
type Noop struct{}

// ID implements Adapter.
func (Noop) ID() string { return "noop" }

// Probe implements Adapter.
func (Noop) Probe() error { return nil }

// Run implements Adapter.
func (Noop) Run(ctx context.Context, s *Session) (Signal, error) {
	if err := ctx.Err(); err != nil {
		return Unavailable(), err
	}
	return Unavailable(), nil
}
