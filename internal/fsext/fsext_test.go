package fsext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ambler289/ada-ui/internal/env"
)

func TestResourceDirOverride(t *testing.T) {
	e := env.NewFromMap(map[string]string{ResourceDirEnv: "/tmp/ada-res"})
	require.Equal(t, "/tmp/ada-res", ResourceDir(e))
}

func TestResourceDirDefault(t *testing.T) {
	e := env.NewFromMap(nil)
	dir := ResourceDir(e)
	require.NotEmpty(t, dir)
	require.Equal(t, "ada-ui", filepath.Base(dir))
}

func TestTemplatePath(t *testing.T) {
	require.Equal(t,
		filepath.Join("res", "templates", "alert.json"),
		TemplatePath("res", "alert"),
	)
}

func TestThemePaths(t *testing.T) {
	dir := t.TempDir()
	themes := filepath.Join(dir, "themes")
	require.NoError(t, os.MkdirAll(themes, 0o755))

	for _, name := range []string{"00-base.json", "10-brand.yaml", "ignore.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(themes, name), []byte("{}"), 0o644))
	}

	paths := ThemePaths(dir)
	require.Len(t, paths, 2)
	require.Equal(t, filepath.Join(themes, "00-base.json"), paths[0])
	require.Equal(t, filepath.Join(themes, "10-brand.yaml"), paths[1])
}

func TestThemePathsMissingDir(t *testing.T) {
	require.Empty(t, ThemePaths(filepath.Join(t.TempDir(), "nope")))
}
