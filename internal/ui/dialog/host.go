package dialog

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/ambler289/ada-ui/backend"
)

// host runs one dialog model to completion inside a bubbletea program and
// records the close signal.
type host struct {
	session *backend.Session
	dialog  Model
	inline  bool
	width   int
	height  int
	signal  backend.Signal
	quitKey key.Binding
}

var _ tea.Model = (*host)(nil)

func newHost(s *backend.Session, inline bool) *host {
	return &host{
		session: s,
		dialog:  New(s),
		inline:  inline,
		signal:  backend.Dismissed(),
		quitKey: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// Init implements [tea.Model].
func (h *host) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model].
func (h *host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		return h, nil
	case tea.KeyPressMsg:
		if key.Matches(msg, h.quitKey) {
			h.signal = backend.Dismissed()
			return h, tea.Quit
		}
	}

	switch action := h.dialog.HandleMsg(msg).(type) {
	case ActionSubmit:
		h.signal = action.Signal
		return h, tea.Quit
	case ActionDismiss:
		h.signal = backend.Dismissed()
		return h, tea.Quit
	}
	return h, nil
}

// View implements [tea.Model].
func (h *host) View() tea.View {
	var v tea.View
	v.AltScreen = !h.inline
	if h.session.Styles != nil {
		v.BackgroundColor = h.session.Styles.Background
	}

	width, height := h.width, h.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	canvas := uv.NewScreenBuffer(width, height)
	v.Cursor = h.dialog.Draw(canvas, canvas.Bounds())

	content := strings.ReplaceAll(canvas.Render(), "\r\n", "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	v.Content = strings.Join(lines, "\n")
	return v
}
