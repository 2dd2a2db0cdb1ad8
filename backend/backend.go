// Package backend abstracts the terminal capability tiers a dialog can be
// presented through. Adapters expose one uniform surface: probe for
// availability, run one modal session, report how it closed. Everything
// backend-specific about the close signal is flattened here so that dialog
// controllers never branch on backend identity.
package backend

import (
	"context"
	"errors"

	"github.com/ambler289/ada-ui/template"
	"github.com/ambler289/ada-ui/theme"
)

// ErrUnavailable reports that a backend cannot be initialized in this
// process. It is only ever consumed by the selector, which degrades to the
// next tier; it never reaches a caller.
var ErrUnavailable = errors.New("backend unavailable")

// FilterMode selects how the list dialog filters items as the user types.
type FilterMode int

const (
	// FilterOff disables the live filter.
	FilterOff FilterMode = iota
	// FilterSubstring matches a case-insensitive substring of the display
	// string.
	FilterSubstring
	// FilterFuzzy ranks items with fuzzy matching.
	FilterFuzzy
)

// Param is one bulk-editor row as the backends see it: already formatted for
// display, typed only so a backend can pick a tri-state control for bools.
type Param struct {
	Name        string
	DisplayName string
	Type        string // "bool", "float" or "string"
	Current     string // formatted current value, unit included
	Unit        string
	Notes       string
}

// Session describes one modal dialog invocation. It is assembled by the
// controller after template and theme resolution; adapters only read it.
type Session struct {
	ID    string
	Kind  string // a template kind constant
	Title string

	Message string
	Prompt  string
	Default string

	// Buttons in order; the first is the primary action.
	Buttons []string
	// HasCancel is set when the template resolved a cancel affordance.
	// Without it the dialog renders no cancel control; closing the window
	// remains possible and normalizes to the dismissed signal.
	HasCancel   bool
	CancelLabel string

	Items     []string
	Multi     bool
	AllButton bool
	Filter    FilterMode

	Params []Param

	Tree   *template.Tree
	Styles *theme.Styles
}

// SignalKind classifies how a modal session closed.
type SignalKind int

const (
	// SignalDismissed is a close with no decision: escape, window close, or
	// an explicit cancel control.
	SignalDismissed SignalKind = iota
	// SignalAccepted carries a decision in the Signal payload.
	SignalAccepted
	// SignalUnavailable means no interaction was possible at all.
	SignalUnavailable
)

// Signal is the normalized close signal every adapter reports. Which payload
// fields are meaningful depends on the session kind; the result normalizer
// maps them into the per-kind result contract.
type Signal struct {
	Kind    SignalKind
	Button  string            // chosen button label
	Text    string            // entered text
	Indices []int             // selected item indices, in original item order
	Fields  map[string]string // bulk-editor raw entries keyed by param name
}

// Dismissed returns the no-decision signal.
func Dismissed() Signal {
	return Signal{Kind: SignalDismissed}
}

// Unavailable returns the no-interaction signal.
func Unavailable() Signal {
	return Signal{Kind: SignalUnavailable}
}

// Adapter is one capability tier. Implementations are immutable once probed
// and safe to reuse across invocations; exactly one adapter serves a given
// invocation.
type Adapter interface {
	// ID identifies the tier ("tui", "inline", "console", "noop").
	ID() string
	// Probe reports whether the backend can run in this process. A probe
	// must be cheap and must not leave state behind.
	Probe() error
	// Run blocks on one modal session and reports how it closed. Errors are
	// treated as dismissal by callers; they never surface to the user.
	Run(ctx context.Context, s *Session) (Signal, error)
}
