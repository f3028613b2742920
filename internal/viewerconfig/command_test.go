package viewerconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-viewer/internal/animation"
	"shape-viewer/internal/commands"
	"shape-viewer/internal/controller"
	"shape-viewer/internal/drawable"
	"shape-viewer/internal/shape"
	"shape-viewer/internal/texture"
)

type fixedSource controller.Snapshot

func (s fixedSource) Snapshot() controller.Snapshot { return controller.Snapshot(s) }

func snapshot(textureName string) controller.Snapshot {
	return controller.Snapshot{
		Geometry:  shape.Capsule,
		Mode:      drawable.Line,
		Animation: animation.State{Motion: animation.RotateY, Speed: 3},
		Texture:   texture.Settings{Name: textureName, ColorSpace: texture.SRGB},
	}
}

func TestCapture(t *testing.T) {
	p := Capture(Default(), snapshot("moon"))
	assert.Equal(t, shape.Capsule.String(), p.Geometry)
	assert.Equal(t, drawable.Line.String(), p.Method)
	assert.Equal(t, "Moon", p.Texture)
	assert.Equal(t, texture.SRGB.String(), p.ColorSpace)
	assert.Equal(t, animation.RotateY.String(), p.Motion)
	assert.Equal(t, float32(3), p.AnimationSpeed)
	assert.Equal(t, Default().WindowWidth, p.WindowWidth)

	p = Capture(Default(), snapshot("brick.png"))
	assert.Equal(t, Default().Texture, p.Texture)

	_, err := Options(p)
	assert.NoError(t, err)
}

func TestConfigSaveCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.yaml")
	prefs := Default()
	prefs.ShowFPS = true
	reg := commands.NewRegistry()
	Register(reg, path, &prefs, fixedSource(snapshot("UV Grid")))

	ok, err := reg.ExecuteLine("cmd config")
	require.True(t, ok)
	assert.Error(t, err)

	ok, err = reg.ExecuteLine("cmd config -save")
	require.True(t, ok)
	require.NoError(t, err)

	saved, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, prefs, saved)
	assert.Equal(t, "UV Grid", saved.Texture)
	assert.Equal(t, shape.Capsule.String(), saved.Geometry)
	assert.True(t, saved.ShowFPS)
}
