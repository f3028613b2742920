package panel

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-viewer/internal/animation"
	"shape-viewer/internal/commands"
	"shape-viewer/internal/controller"
	"shape-viewer/internal/drawable"
	"shape-viewer/internal/lights"
	"shape-viewer/internal/pose"
	"shape-viewer/internal/shape"
	"shape-viewer/internal/texture"
)

type fakeScene struct{ items []*drawable.Drawable }

func (s *fakeScene) Add(d *drawable.Drawable) { s.items = append(s.items, d) }
func (s *fakeScene) Remove(d *drawable.Drawable) {
	for i, it := range s.items {
		if it == d {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

type fakeGizmo struct {
	target *pose.Pose
	mode   controller.TransformMode
}

func (g *fakeGizmo) Attach(p *pose.Pose)                { g.target = p }
func (g *fakeGizmo) Detach()                            { g.target = nil }
func (g *fakeGizmo) SetMode(m controller.TransformMode) { g.mode = m }

type fakeLoader struct{ reqs []texture.Request }

func (l *fakeLoader) Load(_ context.Context, req texture.Request) { l.reqs = append(l.reqs, req) }

type fakeLights struct{ l [lights.Count]lights.Directional }

func (f *fakeLights) Light(n int) (*lights.Directional, bool) {
	if n < 1 || n > lights.Count {
		return nil, false
	}
	return &f.l[n-1], true
}

type fakeCamera struct{ fov float32 }

func (c *fakeCamera) FOV() float32       { return c.fov }
func (c *fakeCamera) SetFOV(deg float32) { c.fov = deg }

type fixture struct {
	reg    *commands.Registry
	ctrl   *controller.Controller
	gizmo  *fakeGizmo
	loader *fakeLoader
	lights *fakeLights
	camera *fakeCamera
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		reg:    commands.NewRegistry(),
		gizmo:  &fakeGizmo{},
		loader: &fakeLoader{},
		lights: &fakeLights{l: lights.Defaults()},
		camera: &fakeCamera{fov: 45},
	}
	opts := controller.DefaultOptions()
	opts.Loader = f.loader
	f.ctrl = controller.New(&fakeScene{}, f.gizmo, opts)
	Register(context.Background(), f.reg, f.ctrl, Env{Lights: f.lights, Camera: f.camera})
	return f
}

func (f *fixture) run(t *testing.T, line string) error {
	t.Helper()
	ok, err := f.reg.ExecuteLine("cmd " + line)
	require.True(t, ok)
	return err
}

func TestRegisterNames(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []string{"affine", "anim", "camera", "geometry", "light", "method", "reset", "texture"}, f.reg.Names())

	reg := commands.NewRegistry()
	opts := controller.DefaultOptions()
	Register(context.Background(), reg, controller.New(&fakeScene{}, nil, opts), Env{})
	assert.NotContains(t, reg.Names(), "light")
	assert.NotContains(t, reg.Names(), "camera")
}

func TestGeometry(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "geometry -kind cone"))
	assert.Equal(t, shape.Cone, f.ctrl.Shape().Kind)
	require.NoError(t, f.run(t, "geometry -next"))
	assert.Equal(t, shape.Wheel, f.ctrl.Shape().Kind)

	assert.Error(t, f.run(t, "geometry -kind dodecahedron"))
	assert.True(t, errors.Is(f.run(t, "geometry"), ErrNoFlags))
	assert.Equal(t, shape.Wheel, f.ctrl.Shape().Kind)
}

func TestMethod(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "method -mode wireframe"))
	assert.Equal(t, drawable.Line, f.ctrl.Current().Mode)
	require.NoError(t, f.run(t, "method -next"))
	assert.Equal(t, drawable.Solid, f.ctrl.Current().Mode)
	require.NoError(t, f.run(t, "method -next"))
	assert.Equal(t, drawable.Points, f.ctrl.Current().Mode)
	assert.Error(t, f.run(t, "method -mode voxel"))
}

func TestTexture(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, `texture -name "earth night"`))
	require.Len(t, f.loader.reqs, 1)
	assert.Equal(t, "Earth Night", f.loader.reqs[0].Name)

	require.NoError(t, f.run(t, "texture -repeat-x 4 -anisotropy 16"))
	s := f.ctrl.TextureSettings()
	assert.Equal(t, float32(4), s.RepeatX)
	assert.Equal(t, float32(1), s.RepeatY, "untouched axis keeps its value")
	assert.Equal(t, 16, s.Anisotropy)
	assert.Len(t, f.loader.reqs, 1, "sampling changes do not reload")

	require.NoError(t, f.run(t, "texture -colorspace srgb"))
	require.Len(t, f.loader.reqs, 2)
	assert.Equal(t, texture.SRGB, f.loader.reqs[1].ColorSpace)

	require.NoError(t, f.run(t, "texture -url https://example.com/img/brick.png?size=2"))
	require.Len(t, f.loader.reqs, 3)
	assert.Equal(t, "brick.png", f.loader.reqs[2].Name)
	assert.Equal(t, "https://example.com/img/brick.png?size=2", f.loader.reqs[2].Path)
}

func TestTextureRejects(t *testing.T) {
	f := newFixture(t)
	before := f.ctrl.TextureSettings()

	err := f.run(t, "texture -repeat-x 51 -anisotropy 2")
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, before, f.ctrl.TextureSettings(), "nothing applied on error")

	assert.True(t, errors.Is(f.run(t, "texture -anisotropy 17"), ErrOutOfRange))
	assert.True(t, errors.Is(f.run(t, "texture -repeat-y -1"), ErrOutOfRange))
	assert.Error(t, f.run(t, "texture -name Brick"))
	assert.Error(t, f.run(t, "texture -colorspace cmyk"))
	assert.Error(t, f.run(t, "texture -url file:///etc/passwd"))
	assert.Error(t, f.run(t, "texture -name Moon -url https://example.com/a.png"))
	assert.True(t, errors.Is(f.run(t, "texture"), ErrNoFlags))
	assert.Empty(t, f.loader.reqs)
}

func TestAffine(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "affine -mode rotate"))
	assert.Equal(t, controller.Rotate, f.ctrl.TransformMode())
	assert.Same(t, &f.ctrl.Current().Pose, f.gizmo.target)

	require.NoError(t, f.run(t, "affine -mode none"))
	assert.Equal(t, controller.TransformNone, f.ctrl.TransformMode())
	assert.Nil(t, f.gizmo.target)

	assert.Error(t, f.run(t, "affine -mode shear"))
	assert.True(t, errors.Is(f.run(t, "affine"), ErrNoFlags))
}

func TestAnim(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, `anim -type "rotate-y" -speed 2 -play`))
	a := f.ctrl.Animation()
	assert.True(t, a.Playing)
	assert.Equal(t, animation.RotateY, a.Motion)
	assert.Equal(t, float32(2), a.Speed)

	require.NoError(t, f.run(t, "anim -toggle"))
	assert.False(t, f.ctrl.Animation().Playing)
	require.NoError(t, f.run(t, "anim -toggle"))
	assert.True(t, f.ctrl.Animation().Playing)
	require.NoError(t, f.run(t, "anim -stop"))
	assert.False(t, f.ctrl.Animation().Playing)

	require.NoError(t, f.run(t, "anim -next-type"))
	assert.Equal(t, animation.RotateZ, f.ctrl.Animation().Motion)

	assert.Error(t, f.run(t, "anim -play -stop"))
	assert.True(t, errors.Is(f.run(t, "anim -speed 11"), ErrOutOfRange))
	assert.Error(t, f.run(t, "anim -type spin"))
	assert.True(t, errors.Is(f.run(t, "anim"), ErrNoFlags))
	assert.Equal(t, float32(2), f.ctrl.Animation().Speed)
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	rest := f.ctrl.Current().Pose
	f.ctrl.Current().Pose.Position.X = 7
	require.NoError(t, f.run(t, "reset"))
	assert.True(t, rest.ApproxEqual(f.ctrl.Current().Pose, 1e-6))
}

func TestLight(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "light -n 2 -intensity 3.5 -y 12 -color #ff0000"))
	l := f.lights.l[1]
	assert.Equal(t, float32(3.5), l.Intensity)
	assert.Equal(t, pose.Vec3{X: 5, Y: 12, Z: 5}, l.Position)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, l.Color)

	require.NoError(t, f.run(t, "light -x -20"))
	assert.Equal(t, float32(-20), f.lights.l[0].Position.X)

	before := f.lights.l
	assert.True(t, errors.Is(f.run(t, "light -intensity 10.5"), ErrOutOfRange))
	assert.True(t, errors.Is(f.run(t, "light -intensity 2 -z 21"), ErrOutOfRange))
	assert.True(t, errors.Is(f.run(t, "light -n 3 -intensity 1"), ErrOutOfRange))
	assert.Error(t, f.run(t, "light -color purple"))
	assert.True(t, errors.Is(f.run(t, "light"), ErrNoFlags))
	assert.Equal(t, before, f.lights.l, "rejected commands leave the light alone")
}

func TestCamera(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "camera -fov 60"))
	assert.Equal(t, float32(60), f.camera.fov)
	assert.True(t, errors.Is(f.run(t, "camera -fov 0.5"), ErrOutOfRange))
	assert.True(t, errors.Is(f.run(t, "camera -fov 91"), ErrOutOfRange))
	assert.True(t, errors.Is(f.run(t, "camera"), ErrNoFlags))
	assert.Equal(t, float32(60), f.camera.fov)
}
