package drawable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-viewer/internal/shape"
	"shape-viewer/internal/texture"
)

func TestBuildPointsOverridesMaterial(t *testing.T) {
	mat := NewStandardMaterial(texture.DefaultSettings())
	d := Build(Points, mat)
	require.NotNil(t, d.Material)
	assert.NotSame(t, mat, d.Material)
	assert.Equal(t, float32(3), d.Material.Size)
	assert.Equal(t, AdditiveBlending, d.Material.Blending)
	assert.True(t, d.Material.Transparent)
	assert.False(t, d.Material.SizeAttenuation)
	assert.Nil(t, d.Material.Map)
	assert.True(t, d.CastShadow)
}

func TestBuildLineAndSolidShareMaterial(t *testing.T) {
	mat := NewStandardMaterial(texture.DefaultSettings())
	for _, m := range []Mode{Line, Solid} {
		d := Build(m, mat)
		assert.Same(t, mat, d.Material, m.String())
		assert.True(t, d.CastShadow)
		assert.Equal(t, m, d.Mode)
	}
}

func TestBuildAssignsFreshIDs(t *testing.T) {
	a := Build(Solid, nil)
	b := Build(Solid, nil)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Nil(t, a.Shape)
}

func TestSetShapeCopies(t *testing.T) {
	d := Build(Line, nil)
	s := shape.Build(shape.Cone)
	d.SetShape(s)
	s.Height = 100
	assert.Equal(t, float32(5), d.Shape.Height)
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseMode("wireframe")
	require.NoError(t, err)
	assert.Equal(t, Line, got)
	_, err = ParseMode("voxel")
	assert.Error(t, err)
	assert.Equal(t, Points, Solid.Next())
}
