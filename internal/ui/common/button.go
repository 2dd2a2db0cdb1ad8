package common

import (
	"strings"

	"github.com/ambler289/ada-ui/theme"
)

// ButtonOpts configures a single rendered button.
type ButtonOpts struct {
	// Text is the button label.
	Text string
	// Selected indicates whether the button currently has focus.
	Selected bool
	// Padding is the inner horizontal padding, defaulting to 2.
	Padding int
}

// Button renders one button with its selection state.
func Button(s *theme.Styles, opts ButtonOpts) string {
	style := s.ButtonBlur
	if opts.Selected {
		style = s.ButtonFocus
	}
	if opts.Padding == 0 {
		opts.Padding = 2
	}
	return style.Padding(0, opts.Padding).Render(opts.Text)
}

// ButtonGroup renders a row of selectable buttons. Spacing separates the
// buttons; use "\n" for a vertical stack. Defaults to two spaces.
func ButtonGroup(s *theme.Styles, buttons []ButtonOpts, spacing string) string {
	if len(buttons) == 0 {
		return ""
	}
	if spacing == "" {
		spacing = "  "
	}
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		parts[i] = Button(s, b)
	}
	return strings.Join(parts, spacing)
}
