package backend

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ambler289/ada-ui/internal/env"
)

// BackendEnv forces a tier by adapter ID, bypassing the probe order.
const BackendEnv = "ADA_UI_BACKEND"

// Selector picks one adapter out of an ordered candidate list and memoizes
// the pick, so every invocation in a process uses the same tier. Adapters
// earlier in the list are preferred; the list should end with an adapter
// whose probe never fails.
type Selector struct {
	mu       sync.Mutex
	env      env.Env
	adapters []Adapter
	selected Adapter
}

// NewSelector builds a selector over adapters in preference order.
func NewSelector(e env.Env, adapters ...Adapter) *Selector {
	if e == nil {
		e = env.New()
	}
	return &Selector{env: e, adapters: adapters}
}

// Select returns the adapter serving this process: the forced one when
// BackendEnv names a known ID, otherwise the first candidate whose probe
// succeeds. The first call probes; later calls return the memoized pick.
// When every probe fails (only possible with a custom adapter list) the last
// candidate is used regardless.
func (s *Selector) Select() Adapter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected != nil {
		return s.selected
	}
	s.selected = s.pick()
	slog.Debug("backend selected", "backend", s.selected.ID())
	return s.selected
}

// Reset drops the memoized pick so the next Select probes again. Meant for
// tests and for hosts whose terminal situation changed.
func (s *Selector) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

func (s *Selector) pick() Adapter {
	if forced := s.env.Get(BackendEnv); forced != "" {
		for _, a := range s.adapters {
			if a.ID() == forced {
				return a
			}
		}
		slog.Warn("unknown forced backend, falling back to probing", "backend", forced)
	}
	for _, a := range s.adapters {
		if err := probe(a); err != nil {
			slog.Debug("backend probe failed", "backend", a.ID(), "error", err)
			continue
		}
		return a
	}
	return s.adapters[len(s.adapters)-1]
}

// probe shields the selector from misbehaving adapters: a panicking probe
// counts as a failed one.
func probe(a Adapter) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("probe panicked: %v", r)
		}
	}()
	return a.Probe()
}
