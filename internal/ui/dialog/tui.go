package dialog

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/term"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/internal/env"
)

// TUI is the bubbletea-backed adapter. The full-screen variant takes over
// the terminal with the alternate screen; the inline variant renders in the
// normal scrollback for terminals that cannot host a full-screen program.
type TUI struct {
	inline bool
	env    env.Env
}

var _ backend.Adapter = (*TUI)(nil)

// NewTUI builds the adapter. Inline selects the degraded in-place variant.
func NewTUI(inline bool, e env.Env) *TUI {
	if e == nil {
		e = env.New()
	}
	return &TUI{inline: inline, env: e}
}

// ID implements [backend.Adapter].
func (t *TUI) ID() string {
	if t.inline {
		return "inline"
	}
	return "tui"
}

// Probe implements [backend.Adapter].
func (t *TUI) Probe() error {
	if !term.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("%w: not a terminal", backend.ErrUnavailable)
	}
	// Dumb terminals cannot drive the alternate screen; the inline variant
	// still can render there.
	if !t.inline {
		if t.env.Get("TERM") == "dumb" {
			return fmt.Errorf("%w: dumb terminal", backend.ErrUnavailable)
		}
		if colorprofile.Detect(os.Stdout, t.env.Env()) == colorprofile.NoTTY {
			return fmt.Errorf("%w: no color support detected", backend.ErrUnavailable)
		}
	}
	return nil
}

// Run implements [backend.Adapter].
func (t *TUI) Run(ctx context.Context, s *backend.Session) (backend.Signal, error) {
	model := newHost(s, t.inline)
	program := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithEnvironment(uv.Environ(t.env.Env())),
	)
	final, err := program.Run()
	if err != nil {
		return backend.Dismissed(), err
	}
	if h, ok := final.(*host); ok {
		return h.signal, nil
	}
	return backend.Dismissed(), nil
}
