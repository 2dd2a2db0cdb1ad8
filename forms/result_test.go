package forms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/template"
)

func TestNormalizeMessageKinds(t *testing.T) {
	s := &backend.Session{Kind: template.KindAlert}

	r := normalize(s, backend.Signal{Kind: backend.SignalAccepted, Button: "OK"}, nil)
	require.True(t, r.OK)
	require.Equal(t, "OK", r.Button)

	r = normalize(s, backend.Dismissed(), nil)
	require.False(t, r.OK)

	r = normalize(s, backend.Unavailable(), nil)
	require.False(t, r.OK)
}

func TestNormalizeInput(t *testing.T) {
	s := &backend.Session{Kind: template.KindInput}

	r := normalize(s, backend.Signal{Kind: backend.SignalAccepted, Text: ""}, nil)
	require.True(t, r.OK)
	require.Empty(t, r.Text)

	r = normalize(s, backend.Dismissed(), nil)
	require.False(t, r.OK)
}

func TestNormalizeSelectSingle(t *testing.T) {
	s := &backend.Session{Kind: template.KindSelect, Items: []string{"a", "b", "c"}}

	r := normalize(s, backend.Signal{Kind: backend.SignalAccepted, Indices: []int{2}}, nil)
	require.True(t, r.OK)
	require.Equal(t, []string{"c"}, r.Values)

	// Out-of-range indices cannot produce a value; the outcome degrades to
	// cancelled rather than panicking.
	r = normalize(s, backend.Signal{Kind: backend.SignalAccepted, Indices: []int{9}}, nil)
	require.False(t, r.OK)
}

func TestNormalizeSelectMultiNeverNil(t *testing.T) {
	s := &backend.Session{Kind: template.KindSelect, Items: []string{"a", "b"}, Multi: true}

	r := normalize(s, backend.Dismissed(), nil)
	require.False(t, r.OK)
	require.NotNil(t, r.Values)
	require.Empty(t, r.Values)

	r = normalize(s, backend.Signal{Kind: backend.SignalAccepted, Indices: []int{}}, nil)
	require.True(t, r.OK)
	require.NotNil(t, r.Values)
	require.Empty(t, r.Values)
}

func TestNormalizeBulkEdit(t *testing.T) {
	params := []Parameter{
		{Name: "Height", Type: TypeFloat, Value: 2.4},
		{Name: "Structural", Type: TypeBool, Value: true},
		{Name: "Comment", Type: TypeString, Value: "old"},
	}
	s := &backend.Session{Kind: template.KindBulkEdit}

	sig := backend.Signal{Kind: backend.SignalAccepted, Fields: map[string]string{
		"Height":     "15,0 ft",
		"Structural": "no",
		"Comment":    "",
	}}
	r := normalize(s, sig, params)
	require.True(t, r.OK)
	require.Equal(t, map[string]any{"Height": 15.0, "Structural": false}, r.Changes)

	// Accepted with nothing entered: an empty, non-nil change set.
	r = normalize(s, backend.Signal{Kind: backend.SignalAccepted}, params)
	require.True(t, r.OK)
	require.NotNil(t, r.Changes)
	require.Empty(t, r.Changes)

	r = normalize(s, backend.Dismissed(), params)
	require.False(t, r.OK)
	require.Nil(t, r.Changes)
}

func TestNormalizeIgnoresUnknownFieldNames(t *testing.T) {
	params := []Parameter{{Name: "Known", Type: TypeString}}
	s := &backend.Session{Kind: template.KindBulkEdit}

	sig := backend.Signal{Kind: backend.SignalAccepted, Fields: map[string]string{
		"Unknown": "x",
	}}
	r := normalize(s, sig, params)
	require.True(t, r.OK)
	require.Empty(t, r.Changes)
}
