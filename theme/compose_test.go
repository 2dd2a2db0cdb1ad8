package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeEmptyHasRequiredTokens(t *testing.T) {
	scope := Compose()
	for _, key := range RequiredKeys() {
		require.True(t, scope.Has(key), "missing required token %q", key)
	}
}

func TestComposeLaterOverridesEarlier(t *testing.T) {
	base := []byte(`{"primary": "#111111", "extra": "one"}`)
	brand := []byte(`{"primary": "#222222"}`)

	scope := Compose(base, brand)

	require.Equal(t, "#222222", scope[KeyPrimary])
	require.Equal(t, "one", scope["extra"])
}

func TestComposeMalformedDictIgnored(t *testing.T) {
	scope := Compose([]byte(`{not json`), []byte(`{"primary": "#333333"}`))
	require.Equal(t, "#333333", scope[KeyPrimary])
	for _, key := range RequiredKeys() {
		require.True(t, scope.Has(key))
	}
}

func TestComposePatchesMissingRequired(t *testing.T) {
	scope := Compose([]byte(`{"primary": "#444444"}`))
	require.Equal(t, "#444444", scope[KeyPrimary])
	require.Equal(t, defaults[KeyBackground], scope[KeyBackground])
	require.Equal(t, defaults[KeyRadius], scope[KeyRadius])
}

func TestScopeColorFallsBackOnGarbage(t *testing.T) {
	scope := Compose([]byte(`{"primary": "not-a-color"}`))

	want := Scope{}.Color(KeyPrimary)
	require.Equal(t, want, scope.Color(KeyPrimary))
}

func TestScopeInt(t *testing.T) {
	scope := Compose([]byte(`{"radius": "0", "padding": "oops"}`))
	require.Equal(t, 0, scope.Int(KeyRadius))
	// Unparsable padding falls back to the default.
	require.Equal(t, 1, scope.Int(KeyPadding))
}

func TestLoadDictJSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"primary": "#555555"}`), 0o644))

	yamlPath := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("primary: \"#666666\"\n"), 0o644))

	fromJSON := Compose(LoadDict(jsonPath))
	fromYAML := Compose(LoadDict(yamlPath))

	require.Equal(t, "#555555", fromJSON[KeyPrimary])
	require.Equal(t, "#666666", fromYAML[KeyPrimary])
}

func TestLoadDictBestEffort(t *testing.T) {
	require.Nil(t, LoadDict(filepath.Join(t.TempDir(), "missing.json")))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(":\t:::"), 0o644))
	require.Nil(t, LoadDict(bad))
}

func TestLoadAllSkipsBroken(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"x":"1"}`), 0o644))

	dicts := LoadAll([]string{good, filepath.Join(dir, "missing.json")})
	require.Len(t, dicts, 1)
}

func TestNewStylesNeverPanicsOnHostileScope(t *testing.T) {
	scope := Compose([]byte(`{"background":"zzz","radius":"-3","padding":"x"}`))
	s := NewStyles(scope)
	require.NotNil(t, s)
	require.Equal(t, -3, s.Radius)
}
