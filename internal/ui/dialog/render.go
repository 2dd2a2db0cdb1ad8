package dialog

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/ambler289/ada-ui/internal/ui/common"
	"github.com/ambler289/ada-ui/theme"
)

// renderContext lays out the shared dialog chrome: gradient title bar,
// content parts stacked vertically, help line, all inside the focused
// border.
type renderContext struct {
	styles *theme.Styles
	width  int
	title  string
	parts  []string
	help   string
}

func newRenderContext(s *theme.Styles, width int) *renderContext {
	return &renderContext{styles: s, width: width}
}

func (rc *renderContext) addPart(part string) {
	if len(part) > 0 {
		rc.parts = append(rc.parts, part)
	}
}

func (rc *renderContext) render() string {
	titleStyle := rc.styles.Dialog.Title
	dialogStyle := rc.styles.Dialog.View.Width(rc.width)

	var parts []string
	if len(rc.title) > 0 {
		title := common.DialogTitle(rc.styles, rc.title,
			max(0, rc.width-dialogStyle.GetHorizontalFrameSize()-
				titleStyle.GetHorizontalFrameSize()))
		parts = append(parts, titleStyle.Render(title))
	}
	parts = append(parts, rc.parts...)

	if len(rc.help) > 0 {
		helpWidth := rc.width - dialogStyle.GetHorizontalFrameSize()
		helpStyle := rc.styles.Dialog.HelpView.Width(helpWidth)
		parts = append(parts, ansi.Truncate(helpStyle.Render(rc.help), helpWidth-1, ""))
	}

	return dialogStyle.Render(strings.Join(parts, "\n"))
}

// inputCursor offsets a text input's cursor by the dialog frame so it lands
// where the input is actually drawn.
func inputCursor(s *theme.Styles, cur *tea.Cursor, rowsAbove int) *tea.Cursor {
	if cur == nil {
		return nil
	}
	titleStyle := s.Dialog.Title
	dialogStyle := s.Dialog.View
	inputStyle := s.Dialog.InputPrompt
	cur.X += inputStyle.GetHorizontalFrameSize() +
		dialogStyle.GetBorderLeftSize() +
		dialogStyle.GetPaddingLeft() +
		dialogStyle.GetMarginLeft()
	cur.Y += titleStyle.GetVerticalFrameSize() + titleContentHeight +
		rowsAbove +
		inputStyle.GetVerticalFrameSize() +
		dialogStyle.GetPaddingTop() +
		dialogStyle.GetMarginTop() +
		dialogStyle.GetBorderTopSize()
	return cur
}

// countLines reports how many terminal rows a rendered block occupies.
func countLines(view string) int {
	return lipgloss.Height(view)
}

// dialogWidth clamps the dialog width to the drawable area.
func dialogWidth(s *theme.Styles, areaWidth int) int {
	return max(20, min(defaultDialogMaxWidth, areaWidth-s.Dialog.View.GetHorizontalBorderSize()-2))
}

// wrapMessage wraps body text to the dialog's inner width.
func wrapMessage(s *theme.Styles, text string, width int) string {
	inner := max(1, width-s.Dialog.View.GetHorizontalFrameSize()-
		s.Dialog.Message.GetHorizontalFrameSize())
	return s.Dialog.Message.Render(lipgloss.NewStyle().Width(inner).Render(text))
}
