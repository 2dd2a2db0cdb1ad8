// Package forms is the public dialog surface: themed modal prompts that
// degrade gracefully from a full-screen terminal UI down to plain line
// prompts, always returning a normalized per-kind result.
package forms

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/internal/env"
	"github.com/ambler289/ada-ui/internal/fsext"
	"github.com/ambler289/ada-ui/internal/ui/dialog"
	"github.com/ambler289/ada-ui/template"
	"github.com/ambler289/ada-ui/theme"
)

// AlertPolicy controls alert presentation for a single call. The zero value
// shows alerts normally.
type AlertPolicy struct {
	// Silent suppresses the dialog entirely; the alert resolves as if it
	// had been dismissed. Scripted batch runs use this to drop progress
	// noise without touching global state.
	Silent bool
}

// Options carries the per-call configuration shared by all dialog kinds.
type Options struct {
	title        string
	message      string
	buttons      []string
	okLabel      string
	cancelLabel  string
	defaultText  string
	filter       backend.FilterMode
	filterSet    bool
	allButton    bool
	alertPolicy  AlertPolicy
	templateName string
	resourceDir  string
	themeDicts   [][]byte
	env          env.Env
	selector     *backend.Selector
}

// Option adjusts a single dialog call.
type Option func(*Options)

// WithTitle overrides the dialog title from the template.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

// WithButtons replaces the dialog's button labels, first label primary.
func WithButtons(labels ...string) Option {
	return func(o *Options) { o.buttons = labels }
}

// WithOKLabel renames the primary button.
func WithOKLabel(label string) Option {
	return func(o *Options) { o.okLabel = label }
}

// WithCancelLabel renames the cancel button.
func WithCancelLabel(label string) Option {
	return func(o *Options) { o.cancelLabel = label }
}

// WithDefault preloads the text input with a value.
func WithDefault(value string) Option {
	return func(o *Options) { o.defaultText = value }
}

// WithFilter sets the list filter mode. The filter still requires the
// template to carry a filter box; without one the mode is ignored.
func WithFilter(mode backend.FilterMode) Option {
	return func(o *Options) {
		o.filter = mode
		o.filterSet = true
	}
}

// WithAllButton adds a check-all affordance to multi selections.
func WithAllButton() Option {
	return func(o *Options) { o.allButton = true }
}

// WithAlertPolicy sets the alert policy for this call.
func WithAlertPolicy(policy AlertPolicy) Option {
	return func(o *Options) { o.alertPolicy = policy }
}

// WithTemplate names the dialog template to load instead of the kind's
// default.
func WithTemplate(name string) Option {
	return func(o *Options) { o.templateName = name }
}

// WithResourceDir overrides where templates and themes are loaded from.
func WithResourceDir(dir string) Option {
	return func(o *Options) { o.resourceDir = dir }
}

// WithThemeDict layers an extra theme dictionary on top of the ones loaded
// from disk. Later dictionaries win.
func WithThemeDict(dict []byte) Option {
	return func(o *Options) { o.themeDicts = append(o.themeDicts, dict) }
}

// WithEnv substitutes the process environment, mostly for tests.
func WithEnv(e env.Env) Option {
	return func(o *Options) { o.env = e }
}

// WithSelector substitutes the backend selector, mostly for tests.
func WithSelector(sel *backend.Selector) Option {
	return func(o *Options) { o.selector = sel }
}

var (
	defaultSelectorOnce sync.Once
	defaultSelector     *backend.Selector
)

// sharedSelector builds the process-wide selector over the full degradation
// ladder. Probing is deferred to the first dialog.
func sharedSelector() *backend.Selector {
	defaultSelectorOnce.Do(func() {
		e := env.New()
		defaultSelector = backend.NewSelector(e,
			dialog.NewTUI(false, e),
			dialog.NewTUI(true, e),
			backend.DefaultConsole(),
			backend.Noop{},
		)
	})
	return defaultSelector
}

// ResetBackendCache drops the memoized backend so the next dialog probes
// again.
func ResetBackendCache() {
	sharedSelector().Reset()
}

func buildOptions(opts []Option) *Options {
	o := &Options{env: env.New()}
	for _, opt := range opts {
		opt(o)
	}
	if o.selector == nil {
		o.selector = sharedSelector()
	}
	return o
}

func (o *Options) dir() string {
	if o.resourceDir != "" {
		return o.resourceDir
	}
	return fsext.ResourceDir(o.env)
}

// loadTree loads the named template, falling back to the built-in tree for
// the kind when the resource is missing or malformed.
func (o *Options) loadTree(kind string) *template.Tree {
	name := o.templateName
	if name == "" {
		name = kind
	}
	tree, err := template.Load(fsext.TemplatePath(o.dir(), name), kind)
	if err != nil {
		slog.Debug("dialog template fallback", "template", name, "error", err)
		return template.Builtin(kind)
	}
	return tree
}

// loadStyles composes the theme stack: disk dictionaries in lexical order,
// then per-call dictionaries, with required tokens defaulted.
func (o *Options) loadStyles() *theme.Styles {
	dicts := theme.LoadAll(fsext.ThemePaths(o.dir()))
	dicts = append(dicts, o.themeDicts...)
	return theme.NewStyles(theme.Compose(dicts...))
}

// session assembles the backend session for one invocation: template and
// theme resolution, then symbolic part lookup to decide which affordances
// the dialog carries.
func (o *Options) session(kind string) *backend.Session {
	tree := o.loadTree(kind)
	styles := o.loadStyles()

	s := &backend.Session{
		ID:      uuid.NewString(),
		Kind:    kind,
		Title:   o.title,
		Message: o.message,
		Default: o.defaultText,
		Tree:    tree,
		Styles:  styles,
	}

	if s.Title == "" {
		if node, err := tree.Resolve(template.PartTitle); err == nil {
			s.Title = node.Text
		}
	}
	if node, err := tree.Resolve(template.PartPrompt); err == nil {
		s.Prompt = node.Text
	}

	s.Buttons = o.buttons
	if len(s.Buttons) == 0 {
		if node, err := tree.Resolve(template.PartButtonOK); err == nil && node.Text != "" {
			s.Buttons = []string{node.Text}
		}
	}
	if o.okLabel != "" {
		if len(s.Buttons) == 0 {
			s.Buttons = []string{o.okLabel}
		} else {
			s.Buttons[0] = o.okLabel
		}
	}

	if node, err := tree.Resolve(template.PartCancel); err == nil {
		s.HasCancel = true
		s.CancelLabel = node.Text
	}
	if o.cancelLabel != "" {
		s.CancelLabel = o.cancelLabel
	}

	if tree.Has(template.PartFilter) {
		s.Filter = backend.FilterSubstring
		if o.filterSet {
			s.Filter = o.filter
		}
	}
	s.AllButton = o.allButton && tree.Has(template.PartButtonAll)

	return s
}

// show runs one modal session on the selected backend. Backend errors are
// logged and swallowed; the caller sees a cancelled result.
func show(ctx context.Context, s *backend.Session, o *Options, params []Parameter) Result {
	adapter := o.selector.Select()
	slog.Debug("dialog open",
		"id", s.ID,
		"kind", s.Kind,
		"backend", adapter.ID(),
	)

	sig, err := adapter.Run(ctx, s)
	if err != nil {
		slog.Error("dialog backend failed", "id", s.ID, "backend", adapter.ID(), "error", err)
		sig = backend.Dismissed()
	}

	result := normalize(s, sig, params)
	slog.Debug("dialog closed", "id", s.ID, "ok", result.OK)
	return result
}
