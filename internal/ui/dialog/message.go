package dialog

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/internal/ui/common"
	"github.com/ambler289/ada-ui/template"
)

// Message is the alert and confirm dialog: a title, a body and a horizontal
// button row. With a single button it is an acknowledgement; with several it
// is a choice.
type Message struct {
	session  *backend.Session
	selected int
	keyMap   struct {
		LeftRight,
		EnterSpace,
		Yes,
		No,
		Tab,
		Close key.Binding
	}
	help help.Model
}

var _ Model = (*Message)(nil)

// NewMessage creates the message dialog for a session.
func NewMessage(s *backend.Session) *Message {
	m := &Message{session: s}
	m.keyMap.LeftRight = key.NewBinding(
		key.WithKeys("left", "right"),
		key.WithHelp("←/→", "choose"),
	)
	m.keyMap.EnterSpace = key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "confirm"),
	)
	m.keyMap.Yes = key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	)
	m.keyMap.No = key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	)
	m.keyMap.Tab = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "choose"),
	)
	m.keyMap.Close = CloseKey
	if !s.HasCancel && s.Kind != template.KindConfirm {
		m.keyMap.Yes.SetEnabled(false)
		m.keyMap.No.SetEnabled(false)
	}
	m.help = help.New()
	m.help.Styles = s.Styles.Help
	return m
}

// HandleMsg implements [Model].
func (m *Message) HandleMsg(msg tea.Msg) Action {
	msgKey, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msgKey, m.keyMap.Close):
		return ActionDismiss{}
	case key.Matches(msgKey, m.keyMap.LeftRight, m.keyMap.Tab):
		m.cycle()
	case key.Matches(msgKey, m.keyMap.EnterSpace):
		return m.activate()
	case key.Matches(msgKey, m.keyMap.Yes):
		m.selected = 0
		return m.activate()
	case key.Matches(msgKey, m.keyMap.No):
		return ActionDismiss{}
	}
	return nil
}

func (m *Message) cycle() {
	if len(m.session.Buttons) > 1 {
		m.selected = (m.selected + 1) % len(m.session.Buttons)
	}
}

func (m *Message) activate() Action {
	buttons := m.session.Buttons
	if len(buttons) == 0 {
		return ActionSubmit{Signal: backend.Signal{Kind: backend.SignalAccepted, Button: "OK"}}
	}
	return ActionSubmit{Signal: backend.Signal{
		Kind:   backend.SignalAccepted,
		Button: buttons[m.selected],
	}}
}

// Draw implements [Model].
func (m *Message) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	t := m.session.Styles
	width := dialogWidth(t, area.Dx())

	rc := newRenderContext(t, width)
	rc.title = m.session.Title
	if m.session.Message != "" {
		rc.addPart(wrapMessage(t, m.session.Message, width))
	}

	buttons := m.session.Buttons
	if len(buttons) == 0 {
		buttons = []string{"OK"}
	}
	opts := make([]common.ButtonOpts, len(buttons))
	for i, label := range buttons {
		opts[i] = common.ButtonOpts{Text: label, Selected: i == m.selected, Padding: 3}
	}
	row := common.ButtonGroup(t, opts, " ")
	rc.addPart(lipgloss.NewStyle().
		Width(max(0, width-t.Dialog.View.GetHorizontalFrameSize())).
		AlignHorizontal(lipgloss.Center).
		Render(row))
	rc.help = m.help.View(m)

	DrawCenter(scr, area, rc.render())
	return nil
}

// ShortHelp implements [help.KeyMap].
func (m *Message) ShortHelp() []key.Binding {
	bindings := []key.Binding{m.keyMap.EnterSpace}
	if len(m.session.Buttons) > 1 {
		bindings = append([]key.Binding{m.keyMap.LeftRight}, bindings...)
	}
	if m.session.HasCancel {
		bindings = append(bindings, m.keyMap.Close)
	}
	return bindings
}

// FullHelp implements [help.KeyMap].
func (m *Message) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keyMap.LeftRight, m.keyMap.EnterSpace, m.keyMap.Yes, m.keyMap.No},
		{m.keyMap.Tab, m.keyMap.Close},
	}
}
