package theme

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"
)

// Styles holds every style the dialog layer renders with, derived from a
// composed token scope. One Styles value belongs to one dialog invocation.
type Styles struct {
	// Reusable text styles.
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style

	// Semantic colors.
	Background color.Color
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Border     color.Color

	// Buttons.
	ButtonFocus lipgloss.Style
	ButtonBlur  lipgloss.Style

	// Window borders.
	BorderFocus lipgloss.Style

	// Dialog chrome.
	Dialog struct {
		Title        lipgloss.Style
		View         lipgloss.Style
		Message      lipgloss.Style
		HelpView     lipgloss.Style
		NormalItem   lipgloss.Style
		SelectedItem lipgloss.Style
		CheckedItem  lipgloss.Style
		InputPrompt  lipgloss.Style
		CurrentValue lipgloss.Style
		Unit         lipgloss.Style
		FilterMatch  lipgloss.Style
	}

	TextInput textinput.Styles
	Help      help.Styles

	// Cosmetic metrics from the scope.
	Padding int
	Radius  int
}

// NewStyles builds the style tree for one composed scope.
func NewStyles(scope Scope) *Styles {
	var (
		bg        = scope.Color(KeyBackground)
		primary   = scope.Color(KeyPrimary)
		secondary = scope.Color(KeySecondary)
		fg        = scope.Color(KeyForeground)
		border    = scope.Color(KeyBorder)

		fgMuted  = charmtone.Smoke
		fgSubtle = charmtone.Oyster
		white    = charmtone.Butter
	)

	s := &Styles{}

	s.Background = bg
	s.Primary = primary
	s.Secondary = secondary
	s.Foreground = fg
	s.Border = border

	s.Padding = scope.Int(KeyPadding)
	s.Radius = scope.Int(KeyRadius)

	base := lipgloss.NewStyle().Foreground(fg)
	s.Base = base
	s.Muted = base.Foreground(fgMuted)
	s.Subtle = base.Foreground(fgSubtle)

	s.ButtonFocus = lipgloss.NewStyle().Foreground(white).Background(secondary)
	s.ButtonBlur = base.Background(charmtone.Charcoal)

	frame := lipgloss.NormalBorder()
	if s.Radius > 0 {
		frame = lipgloss.RoundedBorder()
	}
	s.BorderFocus = lipgloss.NewStyle().
		BorderForeground(primary).
		Border(frame).
		Padding(s.Padding, s.Padding*2)

	s.Dialog.Title = base.Padding(0, 1).Foreground(primary).Bold(true)
	s.Dialog.View = base.Border(frame).BorderForeground(border)
	s.Dialog.Message = base.Padding(0, 1)
	s.Dialog.HelpView = base.Padding(0, 1).AlignHorizontal(lipgloss.Left)
	s.Dialog.NormalItem = base.Padding(0, 1)
	s.Dialog.SelectedItem = base.Padding(0, 1).Background(primary).Foreground(white)
	s.Dialog.CheckedItem = base.Padding(0, 1).Foreground(secondary)
	s.Dialog.InputPrompt = base.Margin(1, 1)
	s.Dialog.CurrentValue = base.Foreground(fgMuted)
	s.Dialog.Unit = base.Foreground(fgSubtle)
	s.Dialog.FilterMatch = base.Foreground(secondary).Underline(true)

	s.TextInput = textinput.Styles{
		Focused: textinput.StyleState{
			Text:        base,
			Placeholder: base.Foreground(fgSubtle),
			Prompt:      base.Foreground(secondary),
			Suggestion:  base.Foreground(fgSubtle),
		},
		Blurred: textinput.StyleState{
			Text:        base.Foreground(fgMuted),
			Placeholder: base.Foreground(fgSubtle),
			Prompt:      base.Foreground(fgMuted),
			Suggestion:  base.Foreground(fgSubtle),
		},
		Cursor: textinput.CursorStyle{
			Color: secondary,
			Shape: tea.CursorBlock,
			Blink: true,
		},
	}

	s.Help = help.Styles{
		ShortKey:       base.Foreground(fgMuted),
		ShortDesc:      base.Foreground(fgSubtle),
		ShortSeparator: base.Foreground(border),
		Ellipsis:       base.Foreground(border),
		FullKey:        base.Foreground(fgMuted),
		FullDesc:       base.Foreground(fgSubtle),
		FullSeparator:  base.Foreground(border),
	}

	return s
}

// DefaultStyles builds styles from the built-in brand tokens alone.
func DefaultStyles() *Styles {
	return NewStyles(Compose())
}
