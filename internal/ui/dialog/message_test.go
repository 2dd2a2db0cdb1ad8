package dialog

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/template"
	"github.com/ambler289/ada-ui/theme"
)

func keyPress(code rune, text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: text}
}

func ctrlKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: tea.ModCtrl}
}

func enterKey() tea.KeyPressMsg { return keyPress(tea.KeyEnter, "") }
func escKey() tea.KeyPressMsg   { return keyPress(tea.KeyEscape, "") }
func upKey() tea.KeyPressMsg    { return keyPress(tea.KeyUp, "") }
func downKey() tea.KeyPressMsg  { return keyPress(tea.KeyDown, "") }
func tabKey() tea.KeyPressMsg   { return keyPress(tea.KeyTab, "") }
func spaceKey() tea.KeyPressMsg { return keyPress(tea.KeySpace, " ") }

func testSession(kind string) *backend.Session {
	return &backend.Session{
		Kind:   kind,
		Title:  "Test",
		Styles: theme.DefaultStyles(),
		Tree:   template.Builtin(kind),
	}
}

func TestMessageAcceptsDefaultButton(t *testing.T) {
	s := testSession(template.KindAlert)
	s.Buttons = []string{"OK"}
	m := NewMessage(s)

	action := m.HandleMsg(enterKey())
	submit, ok := action.(ActionSubmit)
	require.True(t, ok)
	require.Equal(t, backend.SignalAccepted, submit.Signal.Kind)
	require.Equal(t, "OK", submit.Signal.Button)
}

func TestMessageCyclesButtons(t *testing.T) {
	s := testSession(template.KindAlert)
	s.Buttons = []string{"Save", "Discard", "Cancel"}
	m := NewMessage(s)

	m.HandleMsg(tabKey())
	m.HandleMsg(tabKey())
	action := m.HandleMsg(enterKey())
	submit, ok := action.(ActionSubmit)
	require.True(t, ok)
	require.Equal(t, "Cancel", submit.Signal.Button)
}

func TestMessageEscapeDismisses(t *testing.T) {
	s := testSession(template.KindAlert)
	s.Buttons = []string{"OK"}
	m := NewMessage(s)

	action := m.HandleMsg(escKey())
	require.IsType(t, ActionDismiss{}, action)
}

func TestConfirmShortcuts(t *testing.T) {
	s := testSession(template.KindConfirm)
	s.Buttons = []string{"Yes", "No"}
	s.HasCancel = true
	m := NewMessage(s)

	action := m.HandleMsg(keyPress('y', "y"))
	submit, ok := action.(ActionSubmit)
	require.True(t, ok)
	require.Equal(t, "Yes", submit.Signal.Button)

	m = NewMessage(s)
	action = m.HandleMsg(keyPress('n', "n"))
	require.IsType(t, ActionDismiss{}, action)
}

func TestNewPicksModelByKind(t *testing.T) {
	require.IsType(t, &Message{}, New(testSession(template.KindAlert)))
	require.IsType(t, &Message{}, New(testSession(template.KindConfirm)))
	require.IsType(t, &Input{}, New(testSession(template.KindInput)))
	require.IsType(t, &Select{}, New(testSession(template.KindSelect)))
	require.IsType(t, &BigButtons{}, New(testSession(template.KindBigButtons)))
	require.IsType(t, &BulkEdit{}, New(testSession(template.KindBulkEdit)))
	require.IsType(t, &Message{}, New(testSession("mystery")))
}
