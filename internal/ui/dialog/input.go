package dialog

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/ambler289/ada-ui/backend"
)

// Input is the single-line text entry dialog.
type Input struct {
	session *backend.Session
	input   textinput.Model
	keyMap  struct {
		Submit,
		Close key.Binding
	}
	help help.Model
}

var _ Model = (*Input)(nil)

// NewInput creates the text input dialog for a session.
func NewInput(s *backend.Session) *Input {
	i := &Input{session: s}

	i.input = textinput.New()
	i.input.SetVirtualCursor(false)
	i.input.SetStyles(s.Styles.TextInput)
	i.input.Placeholder = s.Prompt
	i.input.SetValue(s.Default)
	i.input.Focus()

	i.keyMap.Submit = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "accept"),
	)
	i.keyMap.Close = CloseKey

	i.help = help.New()
	i.help.Styles = s.Styles.Help
	return i
}

// HandleMsg implements [Model].
func (i *Input) HandleMsg(msg tea.Msg) Action {
	msgKey, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msgKey, i.keyMap.Close):
		return ActionDismiss{}
	case key.Matches(msgKey, i.keyMap.Submit):
		return ActionSubmit{Signal: backend.Signal{
			Kind: backend.SignalAccepted,
			Text: i.input.Value(),
		}}
	default:
		i.input, _ = i.input.Update(msg)
	}
	return nil
}

// Draw implements [Model].
func (i *Input) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	t := i.session.Styles
	width := dialogWidth(t, area.Dx())

	innerWidth := width - t.Dialog.View.GetHorizontalFrameSize()
	i.input.SetWidth(max(0, innerWidth-t.Dialog.InputPrompt.GetHorizontalFrameSize()-1))

	rc := newRenderContext(t, width)
	rc.title = i.session.Title
	var rowsAbove int
	if i.session.Message != "" {
		body := wrapMessage(t, i.session.Message, width)
		rc.addPart(body)
		rowsAbove = countLines(body)
	}
	rc.addPart(t.Dialog.InputPrompt.Render(i.input.View()))
	rc.help = i.help.View(i)

	cur := inputCursor(t, i.input.Cursor(), rowsAbove)
	DrawCenterCursor(scr, area, rc.render(), cur)
	return cur
}

// ShortHelp implements [help.KeyMap].
func (i *Input) ShortHelp() []key.Binding {
	bindings := []key.Binding{i.keyMap.Submit}
	if i.session.HasCancel {
		bindings = append(bindings, i.keyMap.Close)
	}
	return bindings
}

// FullHelp implements [help.KeyMap].
func (i *Input) FullHelp() [][]key.Binding {
	return [][]key.Binding{{i.keyMap.Submit, i.keyMap.Close}}
}
