package dialog

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/theme"
)

// Bulk editor sizing.
const (
	maxEditorHeight = 18
	fieldHeight     = 3 // label + control + spacing
)

// Tri-state entries for boolean rows. An empty entry keeps the current
// value; these strings are what the result parser receives.
const (
	boolKeep = ""
	boolYes  = "yes"
	boolNo   = "no"
)

// BulkEdit is the parameter editor dialog: one row per parameter, boolean
// rows cycling keep/yes/no, everything else as free text where a blank entry
// keeps the current value.
type BulkEdit struct {
	session *backend.Session
	inputs  []textinput.Model // nil entry for bool rows
	bools   []string          // tri-state entry for bool rows
	focused int
	keyMap  struct {
		Confirm,
		Next,
		Previous,
		Cycle,
		Close key.Binding
	}
	help     help.Model
	viewport viewport.Model
}

var _ Model = (*BulkEdit)(nil)

// NewBulkEdit creates the bulk editor for a session.
func NewBulkEdit(s *backend.Session) *BulkEdit {
	b := &BulkEdit{
		session: s,
		inputs:  make([]textinput.Model, len(s.Params)),
		bools:   make([]string, len(s.Params)),
	}

	b.keyMap.Confirm = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	)
	b.keyMap.Next = key.NewBinding(
		key.WithKeys("down", "tab"),
		key.WithHelp("↓/tab", "next"),
	)
	b.keyMap.Previous = key.NewBinding(
		key.WithKeys("up", "shift+tab"),
		key.WithHelp("↑/shift+tab", "previous"),
	)
	b.keyMap.Cycle = key.NewBinding(
		key.WithKeys("space", "left", "right"),
		key.WithHelp("space", "cycle"),
	)
	closeKey := CloseKey
	closeKey.SetHelp("esc", "cancel")
	b.keyMap.Close = closeKey

	for i, p := range s.Params {
		if p.Type == "bool" {
			b.bools[i] = boolKeep
			continue
		}
		input := textinput.New()
		input.SetVirtualCursor(false)
		input.SetStyles(s.Styles.TextInput)
		input.Prompt = "> "
		input.Placeholder = p.Current
		input.Blur()
		b.inputs[i] = input
	}
	if len(s.Params) > 0 {
		b.focusRow(0)
	}

	b.viewport = viewport.New()
	b.help = help.New()
	b.help.Styles = s.Styles.Help
	return b
}

func (b *BulkEdit) isBool(i int) bool {
	return b.session.Params[i].Type == "bool"
}

func (b *BulkEdit) focusRow(newIndex int) {
	if len(b.session.Params) == 0 {
		return
	}
	if !b.isBool(b.focused) {
		b.inputs[b.focused].Blur()
	}
	n := len(b.session.Params)
	b.focused = ((newIndex % n) + n) % n
	if !b.isBool(b.focused) {
		b.inputs[b.focused].Focus()
	}
	b.ensureRowVisible(b.focused)
}

func (b *BulkEdit) ensureRowVisible(row int) {
	start := row * fieldHeight
	end := start + fieldHeight - 1
	top := b.viewport.YOffset()
	height := b.viewport.Height()
	if start < top {
		b.viewport.SetYOffset(start)
	} else if end > top+height-1 {
		b.viewport.SetYOffset(end - height + 1)
	}
}

func (b *BulkEdit) cycleBool(i int) {
	switch b.bools[i] {
	case boolKeep:
		b.bools[i] = boolYes
	case boolYes:
		b.bools[i] = boolNo
	default:
		b.bools[i] = boolKeep
	}
}

// Fields returns the raw entries keyed by parameter name, blank rows
// omitted.
func (b *BulkEdit) Fields() map[string]string {
	fields := map[string]string{}
	for i, p := range b.session.Params {
		var entry string
		if b.isBool(i) {
			entry = b.bools[i]
		} else {
			entry = strings.TrimSpace(b.inputs[i].Value())
		}
		if entry != "" {
			fields[p.Name] = entry
		}
	}
	return fields
}

// HandleMsg implements [Model].
func (b *BulkEdit) HandleMsg(msg tea.Msg) Action {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, b.keyMap.Close):
			return ActionDismiss{}
		case key.Matches(msg, b.keyMap.Confirm):
			if b.focused == len(b.session.Params)-1 || len(b.session.Params) <= 1 {
				return ActionSubmit{Signal: backend.Signal{
					Kind:   backend.SignalAccepted,
					Fields: b.Fields(),
				}}
			}
			b.focusRow(b.focused + 1)
		case key.Matches(msg, b.keyMap.Next):
			b.focusRow(b.focused + 1)
		case key.Matches(msg, b.keyMap.Previous):
			b.focusRow(b.focused - 1)
		case key.Matches(msg, b.keyMap.Cycle) && len(b.session.Params) > 0 && b.isBool(b.focused):
			b.cycleBool(b.focused)
		default:
			if len(b.session.Params) > 0 && !b.isBool(b.focused) {
				b.inputs[b.focused], _ = b.inputs[b.focused].Update(msg)
			}
		}
	case tea.MouseWheelMsg:
		b.viewport, _ = b.viewport.Update(msg)
	case tea.PasteMsg:
		if len(b.session.Params) > 0 && !b.isBool(b.focused) {
			b.inputs[b.focused], _ = b.inputs[b.focused].Update(msg)
		}
	}
	return nil
}

func (b *BulkEdit) rowView(t *theme.Styles, i int, innerWidth int) string {
	p := b.session.Params[i]
	label := p.DisplayName
	if label == "" {
		label = p.Name
	}
	header := t.Base.Render(label)
	if p.Unit != "" {
		header += " " + t.Dialog.Unit.Render("("+p.Unit+")")
	}
	header += " " + t.Dialog.CurrentValue.Render(p.Current)
	if p.Notes != "" {
		header += " " + t.Muted.Render(p.Notes)
	}
	header = lipgloss.NewStyle().MaxWidth(innerWidth).Render(header)

	var control string
	if b.isBool(i) {
		control = b.boolRowView(t, i)
	} else {
		b.inputs[i].SetWidth(max(0, innerWidth-len(b.inputs[i].Prompt)-1))
		control = b.inputs[i].View()
	}
	return header + "\n" + control + "\n"
}

func (b *BulkEdit) boolRowView(t *theme.Styles, i int) string {
	options := []struct{ entry, label string }{
		{boolKeep, "keep"},
		{boolYes, "yes"},
		{boolNo, "no"},
	}
	parts := make([]string, len(options))
	for j, opt := range options {
		style := t.Dialog.NormalItem
		if b.bools[i] == opt.entry {
			style = t.Dialog.SelectedItem
			if i != b.focused {
				style = t.Dialog.CheckedItem
			}
		}
		parts[j] = style.Render(opt.label)
	}
	return "  " + strings.Join(parts, " ")
}

// Draw implements [Model].
func (b *BulkEdit) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	t := b.session.Styles
	width := dialogWidth(t, area.Dx())
	innerWidth := max(0, width-t.Dialog.View.GetHorizontalFrameSize())

	rows := make([]string, len(b.session.Params))
	for i := range b.session.Params {
		rows[i] = b.rowView(t, i, innerWidth)
	}
	content := strings.Join(rows, "")

	height := min(maxEditorHeight, len(b.session.Params)*fieldHeight)
	b.viewport.SetWidth(innerWidth)
	b.viewport.SetHeight(height)
	b.viewport.SetContent(content)

	rc := newRenderContext(t, width)
	rc.title = b.session.Title
	if b.session.Message != "" {
		rc.addPart(wrapMessage(t, b.session.Message, width))
	}
	rc.addPart(b.viewport.View())
	rc.help = b.help.View(b)

	DrawCenter(scr, area, rc.render())
	return nil
}

// ShortHelp implements [help.KeyMap].
func (b *BulkEdit) ShortHelp() []key.Binding {
	return []key.Binding{
		b.keyMap.Next,
		b.keyMap.Cycle,
		b.keyMap.Confirm,
		b.keyMap.Close,
	}
}

// FullHelp implements [help.KeyMap].
func (b *BulkEdit) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{b.keyMap.Next, b.keyMap.Previous, b.keyMap.Cycle},
		{b.keyMap.Confirm, b.keyMap.Close},
	}
}
