package viewerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-viewer/internal/animation"
	"shape-viewer/internal/drawable"
	"shape-viewer/internal/shape"
	"shape-viewer/internal/texture"
)

func TestLoadMissingFile(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("geometry: Teapot\nshow_fps: true\nanimation_speed: 2.5\n"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Teapot", p.Geometry)
	assert.True(t, p.ShowFPS)
	assert.Equal(t, float32(2.5), p.AnimationSpeed)
	assert.Equal(t, Default().Texture, p.Texture)
	assert.Equal(t, 1280, p.WindowWidth)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("geometry: [unclosed\n"), 0644))
	p, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "viewer.yaml")
	want := Default()
	want.GridVisible = true
	want.Motion = animation.OrbitClockwise.String()
	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplyOverrides(t *testing.T) {
	p := Default()
	require.NoError(t, Apply(&p, Overrides{AssetsDir: "/srv/assets"}))
	assert.Equal(t, "/srv/assets", p.AssetsDir)
	assert.Equal(t, Default().Geometry, p.Geometry, "empty override keeps value")
	assert.Equal(t, Default().Texture, p.Texture)
}

func TestOptions(t *testing.T) {
	p := Default()
	p.Geometry = "torus"
	p.Method = "wireframe"
	p.Texture = "moon"
	p.ColorSpace = "srgb"
	p.Motion = "rotate-x"
	p.AnimationSpeed = 3
	opts, err := Options(p)
	require.NoError(t, err)
	assert.Equal(t, shape.Wheel, opts.Geometry)
	assert.Equal(t, drawable.Line, opts.Mode)
	assert.Equal(t, "Moon", opts.Texture.Name)
	assert.Equal(t, texture.SRGB, opts.Texture.ColorSpace)
	assert.Equal(t, animation.RotateX, opts.Animation.Motion)
	assert.Equal(t, float32(3), opts.Animation.Speed)
	assert.Equal(t, "assets", opts.AssetsDir)

	for _, bad := range []func(*Prefs){
		func(p *Prefs) { p.Geometry = "prism" },
		func(p *Prefs) { p.Method = "voxel" },
		func(p *Prefs) { p.Texture = "Brick" },
		func(p *Prefs) { p.ColorSpace = "cmyk" },
		func(p *Prefs) { p.Motion = "spin" },
		func(p *Prefs) { p.AnimationSpeed = -1 },
	} {
		p := Default()
		bad(&p)
		_, err := Options(p)
		assert.Error(t, err)
	}
}
