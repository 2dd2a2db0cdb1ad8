package backend

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ambler289/ada-ui/template"
)

func runConsole(t *testing.T, input string, s *Session) (Signal, string) {
	t.Helper()
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(input), &out)
	sig, err := c.Run(context.Background(), s)
	require.NoError(t, err)
	return sig, out.String()
}

func TestConsoleAlertAcknowledge(t *testing.T) {
	sig, out := runConsole(t, "\n", &Session{
		Kind:    template.KindAlert,
		Title:   "Heads up",
		Message: "Something happened",
		Buttons: []string{"OK"},
	})
	require.Equal(t, SignalAccepted, sig.Kind)
	require.Equal(t, "OK", sig.Button)
	require.Contains(t, out, "Heads up")
	require.Contains(t, out, "Something happened")
}

func TestConsoleAlertEOFDismisses(t *testing.T) {
	sig, _ := runConsole(t, "", &Session{
		Kind:    template.KindAlert,
		Buttons: []string{"OK"},
	})
	require.Equal(t, SignalDismissed, sig.Kind)
}

func TestConsoleAlertMultipleButtons(t *testing.T) {
	sig, out := runConsole(t, "2\n", &Session{
		Kind:    template.KindAlert,
		Buttons: []string{"Save", "Discard"},
	})
	require.Equal(t, SignalAccepted, sig.Kind)
	require.Equal(t, "Discard", sig.Button)
	require.Contains(t, out, "1) Save")
	require.Contains(t, out, "2) Discard")
}

func TestConsoleConfirm(t *testing.T) {
	yes := &Session{Kind: template.KindConfirm, Buttons: []string{"Yes", "No"}}

	sig, _ := runConsole(t, "y\n", yes)
	require.Equal(t, SignalAccepted, sig.Kind)
	require.Equal(t, "Yes", sig.Button)

	sig, _ = runConsole(t, "n\n", yes)
	require.Equal(t, SignalDismissed, sig.Kind)

	sig, _ = runConsole(t, "\n", yes)
	require.Equal(t, SignalDismissed, sig.Kind)
}

func TestConsoleInputUsesDefaultOnBlank(t *testing.T) {
	s := &Session{Kind: template.KindInput, Prompt: "Name", Default: "Wall-01"}

	sig, _ := runConsole(t, "Roof-07\n", s)
	require.Equal(t, SignalAccepted, sig.Kind)
	require.Equal(t, "Roof-07", sig.Text)

	sig, _ = runConsole(t, "\n", s)
	require.Equal(t, SignalAccepted, sig.Kind)
	require.Equal(t, "Wall-01", sig.Text)
}

func TestConsoleSelectSingle(t *testing.T) {
	s := &Session{Kind: template.KindSelect, Items: []string{"Alpha", "Beta", "Gamma"}}

	sig, _ := runConsole(t, "3\n", s)
	require.Equal(t, SignalAccepted, sig.Kind)
	require.Equal(t, []int{2}, sig.Indices)

	sig, _ = runConsole(t, "9\n", s)
	require.Equal(t, SignalDismissed, sig.Kind)
}

func TestConsoleSelectMulti(t *testing.T) {
	s := &Session{
		Kind:      template.KindSelect,
		Items:     []string{"Alpha", "Beta", "Gamma"},
		Multi:     true,
		AllButton: true,
	}

	sig, _ := runConsole(t, "3, 1\n", s)
	require.Equal(t, SignalAccepted, sig.Kind)
	require.Equal(t, []int{0, 2}, sig.Indices)

	sig, _ = runConsole(t, "a\n", s)
	require.Equal(t, SignalAccepted, sig.Kind)
	require.Equal(t, []int{0, 1, 2}, sig.Indices)

	sig, _ = runConsole(t, "\n", s)
	require.Equal(t, SignalDismissed, sig.Kind)
}

func TestConsoleBigButtons(t *testing.T) {
	s := &Session{Kind: template.KindBigButtons, Items: []string{"Door", "Window"}}

	sig, _ := runConsole(t, "1\n", s)
	require.Equal(t, SignalAccepted, sig.Kind)
	require.Equal(t, []int{0}, sig.Indices)
}

func TestConsoleBulkEdit(t *testing.T) {
	s := &Session{
		Kind: template.KindBulkEdit,
		Params: []Param{
			{Name: "Height", DisplayName: "Height", Type: "float", Current: "2.4 m", Unit: "m"},
			{Name: "Structural", DisplayName: "Structural", Type: "bool", Current: "Yes"},
		},
	}

	sig, out := runConsole(t, "3.0\n\ny\n", s)
	require.Equal(t, SignalAccepted, sig.Kind)
	require.Equal(t, map[string]string{"Height": "3.0"}, sig.Fields)
	require.Contains(t, out, "Height")
	require.Contains(t, out, "blank keeps")
}

func TestConsoleBulkEditDeclinedApply(t *testing.T) {
	s := &Session{
		Kind:   template.KindBulkEdit,
		Params: []Param{{Name: "A", Type: "string", Current: "x"}},
	}

	sig, _ := runConsole(t, "y\nn\n", s)
	require.Equal(t, SignalDismissed, sig.Kind)
}

func TestConsoleInjectedStreamsAlwaysProbe(t *testing.T) {
	c := NewConsole(strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, c.Probe())
}
