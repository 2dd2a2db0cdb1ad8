package forms

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/internal/env"
	"github.com/ambler289/ada-ui/template"
)

// scriptedAdapter records the session it was handed and answers with a
// canned signal.
type scriptedAdapter struct {
	signal  backend.Signal
	session *backend.Session
	runs    int
}

func (a *scriptedAdapter) ID() string   { return "scripted" }
func (a *scriptedAdapter) Probe() error { return nil }

func (a *scriptedAdapter) Run(ctx context.Context, s *backend.Session) (backend.Signal, error) {
	a.session = s
	a.runs++
	return a.signal, nil
}

func scripted(t *testing.T, sig backend.Signal) (*scriptedAdapter, []Option) {
	t.Helper()
	a := &scriptedAdapter{signal: sig}
	sel := backend.NewSelector(env.NewFromMap(nil), a)
	return a, []Option{WithSelector(sel), WithResourceDir(t.TempDir())}
}

func TestAlertReturnsChosenButton(t *testing.T) {
	a, opts := scripted(t, backend.Signal{Kind: backend.SignalAccepted, Button: "OK"})

	got := Alert(context.Background(), "saved", opts...)
	require.NotNil(t, got)
	require.Equal(t, "OK", *got)

	// The built-in alert layout carries no cancel affordance.
	require.False(t, a.session.HasCancel)
	require.Equal(t, template.KindAlert, a.session.Kind)
	require.Equal(t, "saved", a.session.Message)
	require.NotEmpty(t, a.session.ID)
}

func TestAlertDismissedReturnsNil(t *testing.T) {
	_, opts := scripted(t, backend.Dismissed())
	require.Nil(t, Alert(context.Background(), "gone", opts...))
}

func TestSilentAlertSkipsBackend(t *testing.T) {
	a, opts := scripted(t, backend.Signal{Kind: backend.SignalAccepted, Button: "OK"})
	opts = append(opts, WithAlertPolicy(AlertPolicy{Silent: true}))

	require.Nil(t, Alert(context.Background(), "quiet", opts...))
	require.Zero(t, a.runs)
}

func TestConfirm(t *testing.T) {
	a, opts := scripted(t, backend.Signal{Kind: backend.SignalAccepted, Button: "Yes"})
	require.True(t, Confirm(context.Background(), "proceed?", opts...))
	require.Equal(t, []string{"Yes", "No"}, a.session.Buttons)
	require.True(t, a.session.HasCancel)

	_, opts = scripted(t, backend.Dismissed())
	require.False(t, Confirm(context.Background(), "proceed?", opts...))
}

func TestInputDistinguishesEmptyFromCancelled(t *testing.T) {
	_, opts := scripted(t, backend.Signal{Kind: backend.SignalAccepted, Text: ""})
	got := Input(context.Background(), "Name", opts...)
	require.NotNil(t, got)
	require.Empty(t, *got)

	_, opts = scripted(t, backend.Dismissed())
	require.Nil(t, Input(context.Background(), "Name", opts...))
}

func TestSelectFromList(t *testing.T) {
	a, opts := scripted(t, backend.Signal{Kind: backend.SignalAccepted, Indices: []int{1}})

	got := SelectFromList(context.Background(), "pick", []string{"a", "b"}, opts...)
	require.NotNil(t, got)
	require.Equal(t, "b", *got)

	// The built-in select layout carries a filter box, enabling the
	// substring filter by default.
	require.Equal(t, backend.FilterSubstring, a.session.Filter)
}

func TestSelectMultiCancelledIsEmptyNotNil(t *testing.T) {
	_, opts := scripted(t, backend.Dismissed())
	got := SelectMultiFromList(context.Background(), "pick", []string{"a", "b"}, opts...)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSelectMultiReturnsValuesInOrder(t *testing.T) {
	_, opts := scripted(t, backend.Signal{Kind: backend.SignalAccepted, Indices: []int{0, 2}})
	got := SelectMultiFromList(context.Background(), "pick", []string{"a", "b", "c"}, opts...)
	require.Equal(t, []string{"a", "c"}, got)
}

func TestBigButtonsDismissedReturnsNil(t *testing.T) {
	_, opts := scripted(t, backend.Dismissed())
	require.Nil(t, BigButtons(context.Background(), "choose", []string{"Door", "Window"}, opts...))
}

func TestBigButtonsMultiAllButtonNeedsTemplatePart(t *testing.T) {
	a, opts := scripted(t, backend.Signal{Kind: backend.SignalAccepted, Indices: []int{0, 1}})
	opts = append(opts, WithAllButton())

	got := BigButtonsMulti(context.Background(), "choose", []string{"a", "b"}, opts...)
	require.Equal(t, []string{"a", "b"}, got)
	require.True(t, a.session.AllButton)
}

func TestBulkEditChangeSet(t *testing.T) {
	_, opts := scripted(t, backend.Signal{
		Kind:   backend.SignalAccepted,
		Fields: map[string]string{"Height": "15,0 ft"},
	})
	params := []Parameter{{Name: "Height", Type: TypeFloat, Value: 12.5, Unit: "ft"}}

	changes, ok := BulkEdit(context.Background(), "edit", params, opts...)
	require.True(t, ok)
	require.Equal(t, map[string]any{"Height": 15.0}, changes)
}

func TestBulkEditCancelled(t *testing.T) {
	_, opts := scripted(t, backend.Dismissed())
	changes, ok := BulkEdit(context.Background(), "edit", []Parameter{{Name: "A"}}, opts...)
	require.False(t, ok)
	require.Nil(t, changes)
}

func TestSessionUsesTemplateFromResourceDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates"), 0o755))
	custom := `{
		"kind": "alert",
		"root": {
			"type": "panel",
			"children": [
				{"type": "text", "name": "title_text", "text": "House Rules"},
				{"type": "button", "name": "button_ok", "text": "Understood"},
				{"type": "button", "name": "button_cancel", "text": "Back"}
			]
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "templates", "alert.json"), []byte(custom), 0o644))

	a := &scriptedAdapter{signal: backend.Signal{Kind: backend.SignalAccepted, Button: "Understood"}}
	sel := backend.NewSelector(env.NewFromMap(nil), a)

	got := Alert(context.Background(), "hi", WithSelector(sel), WithResourceDir(dir))
	require.NotNil(t, got)
	require.Equal(t, "Understood", *got)

	require.Equal(t, "House Rules", a.session.Title)
	require.Equal(t, []string{"Understood"}, a.session.Buttons)
	require.True(t, a.session.HasCancel)
	require.Equal(t, "Back", a.session.CancelLabel)
}

func TestThemeDictOptionReachesStyles(t *testing.T) {
	a, opts := scripted(t, backend.Signal{Kind: backend.SignalAccepted, Button: "OK"})
	opts = append(opts, WithThemeDict([]byte(`{"primary":"#FF0000"}`)))

	Alert(context.Background(), "hi", opts...)
	require.NotNil(t, a.session.Styles)
	r, g, b, _ := a.session.Styles.Primary.RGBA()
	require.Equal(t, uint32(0xFFFF), r)
	require.Zero(t, g)
	require.Zero(t, b)
}

type failingProvider struct{}

func (failingProvider) Label() string { return "Catalog" }

func (failingProvider) Items(ctx context.Context) ([]string, error) {
	return nil, errors.New("backend down")
}

func TestPickersSwallowProviderFailures(t *testing.T) {
	require.Nil(t, PickOne(context.Background(), failingProvider{}))

	many := PickMany(context.Background(), failingProvider{})
	require.NotNil(t, many)
	require.Empty(t, many)
}
