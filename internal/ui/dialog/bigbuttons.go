package dialog

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/internal/ui/list"
)

// BigButtons is the chooser dialog: one full-width button per option,
// stacked vertically. In multi mode the options become check rows with an
// accept action, plus a check-all shortcut when the session allows it.
type BigButtons struct {
	session *backend.Session
	cursor  int
	checked []bool
	keyMap  struct {
		Previous,
		Next,
		Toggle,
		All,
		Accept,
		Close key.Binding
	}
	help help.Model
}

var _ Model = (*BigButtons)(nil)

// NewBigButtons creates the chooser dialog for a session.
func NewBigButtons(s *backend.Session) *BigButtons {
	b := &BigButtons{
		session: s,
		checked: make([]bool, len(s.Items)),
	}
	b.keyMap.Previous = key.NewBinding(
		key.WithKeys("up", "shift+tab", "ctrl+p"),
		key.WithHelp("↑", "previous"),
	)
	b.keyMap.Next = key.NewBinding(
		key.WithKeys("down", "tab", "ctrl+n"),
		key.WithHelp("↓", "next"),
	)
	b.keyMap.Toggle = key.NewBinding(
		key.WithKeys("space"),
		key.WithHelp("space", "toggle"),
		key.WithDisabled(),
	)
	b.keyMap.All = key.NewBinding(
		key.WithKeys("a", "ctrl+a"),
		key.WithHelp("a", "all"),
		key.WithDisabled(),
	)
	b.keyMap.Accept = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	)
	closeKey := CloseKey
	closeKey.SetHelp("esc", "cancel")
	b.keyMap.Close = closeKey

	if s.Multi {
		b.keyMap.Toggle.SetEnabled(true)
		b.keyMap.Accept.SetHelp("enter", "accept")
		if s.AllButton {
			b.keyMap.All.SetEnabled(true)
		}
	}

	b.help = help.New()
	b.help.Styles = s.Styles.Help
	return b
}

// HandleMsg implements [Model].
func (b *BigButtons) HandleMsg(msg tea.Msg) Action {
	msgKey, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msgKey, b.keyMap.Close):
		return ActionDismiss{}
	case key.Matches(msgKey, b.keyMap.Previous):
		if b.cursor > 0 {
			b.cursor--
		}
	case key.Matches(msgKey, b.keyMap.Next):
		if b.cursor < len(b.session.Items)-1 {
			b.cursor++
		}
	case key.Matches(msgKey, b.keyMap.Toggle):
		if b.cursor < len(b.checked) {
			b.checked[b.cursor] = !b.checked[b.cursor]
		}
	case key.Matches(msgKey, b.keyMap.All):
		for i := range b.checked {
			b.checked[i] = true
		}
	case key.Matches(msgKey, b.keyMap.Accept):
		return b.accept()
	}
	return nil
}

func (b *BigButtons) accept() Action {
	if !b.session.Multi {
		if len(b.session.Items) == 0 {
			return ActionDismiss{}
		}
		return ActionSubmit{Signal: backend.Signal{
			Kind:    backend.SignalAccepted,
			Indices: []int{b.cursor},
		}}
	}
	indices := []int{}
	for i, on := range b.checked {
		if on {
			indices = append(indices, i)
		}
	}
	return ActionSubmit{Signal: backend.Signal{
		Kind:    backend.SignalAccepted,
		Indices: indices,
	}}
}

// Draw implements [Model].
func (b *BigButtons) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	t := b.session.Styles
	width := dialogWidth(t, area.Dx())
	innerWidth := max(0, width-t.Dialog.View.GetHorizontalFrameSize())

	rc := newRenderContext(t, width)
	rc.title = b.session.Title
	if b.session.Message != "" {
		rc.addPart(wrapMessage(t, b.session.Message, width))
	}

	rows := make([]string, len(b.session.Items))
	for i, item := range b.session.Items {
		label := item
		if b.session.Multi {
			icon := list.CheckOff
			if b.checked[i] {
				icon = list.CheckOn
			}
			label = icon + " " + label
		}
		style := t.ButtonBlur
		if i == b.cursor {
			style = t.ButtonFocus
		}
		rows[i] = style.Width(innerWidth).Padding(0, 2).Render(label)
	}
	rc.addPart(strings.Join(rows, "\n"))
	rc.help = b.help.View(b)

	DrawCenter(scr, area, rc.render())
	return nil
}

// ShortHelp implements [help.KeyMap].
func (b *BigButtons) ShortHelp() []key.Binding {
	bindings := []key.Binding{b.keyMap.Previous, b.keyMap.Next}
	if b.session.Multi {
		bindings = append(bindings, b.keyMap.Toggle)
	}
	bindings = append(bindings, b.keyMap.Accept)
	if b.session.HasCancel {
		bindings = append(bindings, b.keyMap.Close)
	}
	return bindings
}

// FullHelp implements [help.KeyMap].
func (b *BigButtons) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{b.keyMap.Previous, b.keyMap.Next, b.keyMap.Toggle, b.keyMap.All},
		{b.keyMap.Accept, b.keyMap.Close},
	}
}
