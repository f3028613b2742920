package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# viewer\n\nVIEWER_ASSETS=\"/srv/assets\"\nexport VIEWER_GEOMETRY='Teapot'\nnot a pair\nVIEWER_TEXTURE=Moon\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv(AssetsDir, "")
	t.Setenv(Geometry, "")
	t.Setenv(Texture, "Crate")
	os.Unsetenv(AssetsDir)
	os.Unsetenv(Geometry)

	require.NoError(t, Load(path))
	assert.Equal(t, "/srv/assets", os.Getenv(AssetsDir))
	assert.Equal(t, "Teapot", os.Getenv(Geometry))
	assert.Equal(t, "Crate", os.Getenv(Texture), "process environment wins")
}

func TestLoadMissing(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "absent.env")))
}

func TestGet(t *testing.T) {
	t.Setenv(ConfigPath, "  ")
	assert.Equal(t, "config/viewer.yaml", Get(ConfigPath, "config/viewer.yaml"))
	t.Setenv(ConfigPath, "/etc/viewer.yaml")
	assert.Equal(t, "/etc/viewer.yaml", Get(ConfigPath, "x"))
}
