// Package common holds rendering helpers shared by the dialog models.
package common

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/ambler289/ada-ui/theme"
)

// CenterRect returns a rectangle of the given size centered in area.
func CenterRect(area uv.Rectangle, width, height int) uv.Rectangle {
	centerX := area.Min.X + area.Dx()/2
	centerY := area.Min.Y + area.Dy()/2
	minX := centerX - width/2
	minY := centerY - height/2
	return image.Rect(minX, minY, minX+width, minY+height)
}

// DialogTitle renders a dialog title with a gradient rule filling the
// remaining width.
func DialogTitle(s *theme.Styles, title string, width int) string {
	const char = "╱"
	remaining := width - lipgloss.Width(title) - 1
	if remaining > 0 {
		rule := theme.ApplyForegroundGrad(s, strings.Repeat(char, remaining), s.Primary, s.Secondary)
		title = title + " " + rule
	}
	return title
}
