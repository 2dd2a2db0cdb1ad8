// Package dialog contains the bubbletea models for each dialog kind and the
// program host that runs exactly one of them to completion.
package dialog

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/internal/ui/common"
	"github.com/ambler289/ada-ui/template"
)

// Dialog sizing constants.
const (
	defaultDialogMaxWidth = 80
	defaultListHeight     = 12
	titleContentHeight    = 1
	inputContentHeight    = 1
)

// CloseKey is the default binding for dismissing a dialog.
var CloseKey = key.NewBinding(
	key.WithKeys("esc", "alt+esc"),
	key.WithHelp("esc", "cancel"),
)

// Action is the outcome of handling one message. The host interprets it; a
// nil action means the dialog consumed the message and stays open.
type Action any

// ActionSubmit closes the dialog with a decision.
type ActionSubmit struct {
	Signal backend.Signal
}

// ActionDismiss closes the dialog without a decision.
type ActionDismiss struct{}

// Model is a dialog that can be drawn on a screen and fed messages.
type Model interface {
	// HandleMsg processes a message and returns the resulting action, or
	// nil when the dialog stays open unchanged.
	HandleMsg(msg tea.Msg) Action
	// Draw paints the dialog onto the screen within area and returns the
	// desired cursor position, if any.
	Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor
}

// New builds the model for a session kind. Unknown kinds fall back to the
// plain message dialog, mirroring the template fallback.
func New(s *backend.Session) Model {
	switch s.Kind {
	case template.KindInput:
		return NewInput(s)
	case template.KindSelect:
		return NewSelect(s)
	case template.KindBigButtons:
		return NewBigButtons(s)
	case template.KindBulkEdit:
		return NewBulkEdit(s)
	default:
		return NewMessage(s)
	}
}

// DrawCenterCursor draws view centered in the screen area and offsets the
// cursor to match.
func DrawCenterCursor(scr uv.Screen, area uv.Rectangle, view string, cur *tea.Cursor) {
	width, height := lipgloss.Size(view)
	center := common.CenterRect(area, width, height)
	if cur != nil {
		cur.X += center.Min.X
		cur.Y += center.Min.Y
	}
	uv.NewStyledString(view).Draw(scr, center)
}

// DrawCenter draws view centered in the screen area.
func DrawCenter(scr uv.Screen, area uv.Rectangle, view string) {
	DrawCenterCursor(scr, area, view, nil)
}
