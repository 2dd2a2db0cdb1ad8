package dialog

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/internal/ui/list"
)

// Select is the list selection dialog, in single or multi mode, with an
// optional live filter above the items.
type Select struct {
	session *backend.Session
	list    *list.Model
	input   textinput.Model
	filter  bool
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

var _ Model = (*Select)(nil)

// NewSelect creates the selection dialog for a session.
func NewSelect(s *backend.Session) *Select {
	d := &Select{
		session: s,
		list:    list.New(s.Items),
		filter:  s.Filter != backend.FilterOff,
	}
	d.list.SetHeight(defaultListHeight)
	d.list.SetFuzzy(s.Filter == backend.FilterFuzzy)

	if d.filter {
		d.input = textinput.New()
		d.input.SetVirtualCursor(false)
		d.input.Placeholder = "type to filter"
		d.input.SetStyles(s.Styles.TextInput)
		d.input.Focus()
	}

	d.keyMap.Previous = key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous"),
	)
	d.keyMap.Next = key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next"),
	)
	d.keyMap.Toggle = key.NewBinding(
		key.WithKeys("ctrl+s", " "),
		key.WithHelp("space", "toggle"),
		key.WithDisabled(),
	)
	d.keyMap.All = key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "all"),
		key.WithDisabled(),
	)
	d.keyMap.Accept = key.NewBinding(
		key.WithKeys("enter", "ctrl+y"),
		key.WithHelp("enter", "accept"),
	)
	closeKey := CloseKey
	closeKey.SetHelp("esc", "cancel")
	d.keyMap.Close = closeKey

	if s.Multi {
		d.keyMap.Toggle.SetEnabled(true)
		if s.AllButton {
			d.keyMap.All.SetEnabled(true)
		}
	}

	d.help = help.New()
	d.help.Styles = s.Styles.Help
	return d
}

// HandleMsg implements [Model].
func (d *Select) HandleMsg(msg tea.Msg) Action {
	msgKey, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msgKey, d.keyMap.Close):
		return ActionDismiss{}
	case key.Matches(msgKey, d.keyMap.Previous):
		d.list.CursorUp()
	case key.Matches(msgKey, d.keyMap.Next):
		d.list.CursorDown()
	case key.Matches(msgKey, d.keyMap.Toggle):
		// With the filter focused a bare space belongs to the query.
		if d.filter && msgKey.String() == " " {
			d.updateFilter(msg)
			return nil
		}
		d.list.Toggle()
	case key.Matches(msgKey, d.keyMap.All):
		d.list.SetAllChecked(true)
	case key.Matches(msgKey, d.keyMap.Accept):
		return d.accept()
	default:
		if d.filter {
			d.updateFilter(msg)
		}
	}
	return nil
}

func (d *Select) updateFilter(msg tea.Msg) {
	d.input, _ = d.input.Update(msg)
	d.list.SetFilter(d.input.Value())
}

func (d *Select) accept() Action {
	if d.session.Multi {
		return ActionSubmit{Signal: backend.Signal{
			Kind:    backend.SignalAccepted,
			Indices: d.list.CheckedIndices(),
		}}
	}
	idx, ok := d.list.Current()
	if !ok {
		return nil
	}
	return ActionSubmit{Signal: backend.Signal{
		Kind:    backend.SignalAccepted,
		Indices: []int{idx},
	}}
}

// Draw implements [Model].
func (d *Select) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	t := d.session.Styles
	width := dialogWidth(t, area.Dx())
	innerWidth := width - t.Dialog.View.GetHorizontalFrameSize()

	rc := newRenderContext(t, width)
	rc.title = d.session.Title
	rowsAbove := 0
	if d.session.Message != "" {
		message := wrapMessage(t, d.session.Message, width)
		rc.addPart(message)
		rowsAbove = countLines(message)
	}

	var cur *tea.Cursor
	if d.filter {
		d.input.SetWidth(max(0, innerWidth-t.Dialog.InputPrompt.GetHorizontalFrameSize()-1))
		rc.addPart(t.Dialog.InputPrompt.Render(d.input.View()))
		cur = inputCursor(t, d.input.Cursor(), rowsAbove)
	}
	rc.addPart(d.list.View(t, d.session.Multi))
	rc.help = d.help.View(d)

	DrawCenterCursor(scr, area, rc.render(), cur)
	return cur
}

// ShortHelp implements [help.KeyMap].
func (d *Select) ShortHelp() []key.Binding {
	bindings := []key.Binding{d.keyMap.Previous, d.keyMap.Next}
	if d.session.Multi {
		bindings = append(bindings, d.keyMap.Toggle)
	}
	return append(bindings, d.keyMap.Accept, d.keyMap.Close)
}

// FullHelp implements [help.KeyMap].
func (d *Select) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{d.keyMap.Previous, d.keyMap.Next, d.keyMap.Toggle, d.keyMap.All},
		{d.keyMap.Accept, d.keyMap.Close},
	}
}
