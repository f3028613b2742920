// Package panel is the viewer's control panel: terminal commands that edit geometry,
// render method, texture, transform mode, animation, lights and camera.
// Every command funnels into the object controller or the scene's light/camera settings.
package panel

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"path"
	"strings"

	"shape-viewer/internal/animation"
	"shape-viewer/internal/commands"
	"shape-viewer/internal/controller"
	"shape-viewer/internal/drawable"
	"shape-viewer/internal/lights"
	"shape-viewer/internal/shape"
	"shape-viewer/internal/texture"
)

// ErrOutOfRange is returned when a numeric flag is outside its slider range.
var ErrOutOfRange = errors.New("value out of range")

// ErrNoFlags is returned when a command that needs at least one flag gets none.
var ErrNoFlags = errors.New("no flags given")

// Slider ranges.
const (
	MaxRepeat     = 50
	MaxAnisotropy = 16
	MinFOV        = 1
	MaxFOV        = 90
	MaxSpeed      = 10
)

// Lights gives the panel access to the scene's directional lights by 1-based index.
type Lights interface {
	Light(n int) (*lights.Directional, bool)
}

// Camera exposes the perspective camera's field of view in degrees.
type Camera interface {
	FOV() float32
	SetFOV(deg float32)
}

// Env is what the panel edits besides the controller. Nil fields disable their commands.
type Env struct {
	Lights Lights
	Camera Camera
}

// unset marks a float flag the user did not pass.
var unset = math.NaN()

func isSet(v float64) bool { return !math.IsNaN(v) }

func inRange(name string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: -%s %g not in [%g, %g]", ErrOutOfRange, name, v, lo, hi)
	}
	return nil
}

// Register adds every panel command to reg. ctx bounds texture loads started by commands.
func Register(ctx context.Context, reg *commands.Registry, ctrl *controller.Controller, env Env) {
	registerGeometry(reg, ctrl)
	registerMethod(reg, ctrl)
	registerTexture(ctx, reg, ctrl)
	registerAffine(reg, ctrl)
	registerAnim(reg, ctrl)
	reg.Register("reset", flag.NewFlagSet("reset", flag.ContinueOnError), func() error {
		ctrl.ResetPose()
		return nil
	})
	if env.Lights != nil {
		registerLight(reg, env.Lights)
	}
	if env.Camera != nil {
		registerCamera(reg, env.Camera)
	}
}

func registerGeometry(reg *commands.Registry, ctrl *controller.Controller) {
	fs := flag.NewFlagSet("geometry", flag.ContinueOnError)
	kind := fs.String("kind", "", "geometry: "+strings.Join(kindNames(), ", "))
	next := fs.Bool("next", false, "switch to the next geometry")
	reg.Register("geometry", fs, func() error {
		switch {
		case *next:
			ctrl.OnGeometryChange(ctrl.Shape().Kind.Next())
		case *kind != "":
			k, err := shape.ParseKind(*kind)
			if err != nil {
				return err
			}
			ctrl.OnGeometryChange(k)
		default:
			return fmt.Errorf("%w: use -kind or -next", ErrNoFlags)
		}
		return nil
	})
}

func registerMethod(reg *commands.Registry, ctrl *controller.Controller) {
	fs := flag.NewFlagSet("method", flag.ContinueOnError)
	mode := fs.String("mode", "", "render method: Point, Line or Solid")
	next := fs.Bool("next", false, "switch to the next render method")
	reg.Register("method", fs, func() error {
		switch {
		case *next:
			ctrl.OnModeChange(ctrl.Current().Mode.Next())
		case *mode != "":
			m, err := drawable.ParseMode(*mode)
			if err != nil {
				return err
			}
			ctrl.OnModeChange(m)
		default:
			return fmt.Errorf("%w: use -mode or -next", ErrNoFlags)
		}
		return nil
	})
}

func registerTexture(ctx context.Context, reg *commands.Registry, ctrl *controller.Controller) {
	fs := flag.NewFlagSet("texture", flag.ContinueOnError)
	name := fs.String("name", "", "catalog texture: "+strings.Join(texture.Names(), ", "))
	url := fs.String("url", "", "download an image from an http(s) URL and use it")
	repeatX := fs.Float64("repeat-x", unset, "horizontal tiling, 0-50")
	repeatY := fs.Float64("repeat-y", unset, "vertical tiling, 0-50")
	aniso := fs.Int("anisotropy", -1, "anisotropic filtering, 0-16")
	cs := fs.String("colorspace", "", "texture color space: linear or srgb")
	reg.Register("texture", fs, func() error {
		if *name == "" && *url == "" && !isSet(*repeatX) && !isSet(*repeatY) && *aniso < 0 && *cs == "" {
			return fmt.Errorf("%w: use -name, -url, -repeat-x, -repeat-y, -anisotropy or -colorspace", ErrNoFlags)
		}
		if *name != "" && *url != "" {
			return errors.New("use either -name or -url")
		}
		// validate everything before touching state
		settings := ctrl.TextureSettings()
		rx, ry := float64(settings.RepeatX), float64(settings.RepeatY)
		if isSet(*repeatX) {
			if err := inRange("repeat-x", *repeatX, 0, MaxRepeat); err != nil {
				return err
			}
			rx = *repeatX
		}
		if isSet(*repeatY) {
			if err := inRange("repeat-y", *repeatY, 0, MaxRepeat); err != nil {
				return err
			}
			ry = *repeatY
		}
		if *aniso >= 0 {
			if err := inRange("anisotropy", float64(*aniso), 0, MaxAnisotropy); err != nil {
				return err
			}
		}
		colorSpace := settings.ColorSpace
		if *cs != "" {
			parsed, err := texture.ParseColorSpace(*cs)
			if err != nil {
				return err
			}
			colorSpace = parsed
		}
		if *url != "" && !texture.IsRemote(*url) {
			return fmt.Errorf("-url %q is not an http(s) URL", *url)
		}

		if isSet(*repeatX) || isSet(*repeatY) {
			ctrl.SetTextureRepeat(float32(rx), float32(ry))
		}
		if *aniso >= 0 {
			ctrl.SetAnisotropy(*aniso)
		}
		switch {
		case *name != "":
			// a new image picks up the new color space with it
			if colorSpace != settings.ColorSpace {
				ctrl.SetColorSpace(ctx, colorSpace)
			}
			return ctrl.OnTextureChange(ctx, *name)
		case *url != "":
			if colorSpace != settings.ColorSpace {
				ctrl.SetColorSpace(ctx, colorSpace)
			}
			ctrl.LoadTextureFile(ctx, path.Base(strings.SplitN(*url, "?", 2)[0]), *url)
		default:
			ctrl.SetColorSpace(ctx, colorSpace)
		}
		return nil
	})
}

func registerAffine(reg *commands.Registry, ctrl *controller.Controller) {
	fs := flag.NewFlagSet("affine", flag.ContinueOnError)
	mode := fs.String("mode", "", "transform gizmo: none, translate, rotate or scale")
	reg.Register("affine", fs, func() error {
		if *mode == "" {
			return fmt.Errorf("%w: use -mode", ErrNoFlags)
		}
		m, err := controller.ParseTransformMode(*mode)
		if err != nil {
			return err
		}
		ctrl.OnTransformModeChange(m)
		return nil
	})
}

func registerAnim(reg *commands.Registry, ctrl *controller.Controller) {
	fs := flag.NewFlagSet("anim", flag.ContinueOnError)
	play := fs.Bool("play", false, "start the animation")
	stop := fs.Bool("stop", false, "stop the animation")
	toggle := fs.Bool("toggle", false, "toggle the animation")
	speed := fs.Float64("speed", unset, "animation speed, 0-10")
	typ := fs.String("type", "", "motion: "+strings.Join(motionNames(), ", "))
	nextType := fs.Bool("next-type", false, "switch to the next motion")
	reg.Register("anim", fs, func() error {
		if !*play && !*stop && !*toggle && !isSet(*speed) && *typ == "" && !*nextType {
			return fmt.Errorf("%w: use -play, -stop, -toggle, -speed, -type or -next-type", ErrNoFlags)
		}
		if btoi(*play)+btoi(*stop)+btoi(*toggle) > 1 {
			return errors.New("use only one of -play, -stop and -toggle")
		}
		if isSet(*speed) {
			if err := inRange("speed", *speed, 0, MaxSpeed); err != nil {
				return err
			}
		}
		var motion animation.Motion
		if *typ != "" {
			m, err := animation.ParseMotion(*typ)
			if err != nil {
				return err
			}
			motion = m
		}

		if isSet(*speed) {
			ctrl.SetSpeed(float32(*speed))
		}
		switch {
		case *typ != "":
			ctrl.SetMotion(motion)
		case *nextType:
			ctrl.SetMotion(ctrl.Animation().Motion.Next())
		}
		switch {
		case *play:
			ctrl.OnAnimationPlayToggle(true)
		case *stop:
			ctrl.OnAnimationPlayToggle(false)
		case *toggle:
			ctrl.OnAnimationPlayToggle(!ctrl.Animation().Playing)
		}
		return nil
	})
}

func registerLight(reg *commands.Registry, ls Lights) {
	fs := flag.NewFlagSet("light", flag.ContinueOnError)
	n := fs.Int("n", 1, "light number, 1 or 2")
	intensity := fs.Float64("intensity", unset, "light intensity, 0-10")
	x := fs.Float64("x", unset, "light position x, -20 to 20")
	y := fs.Float64("y", unset, "light position y, -20 to 20")
	z := fs.Float64("z", unset, "light position z, -20 to 20")
	col := fs.String("color", "", "light color as #rrggbb")
	reg.Register("light", fs, func() error {
		l, ok := ls.Light(*n)
		if !ok {
			return fmt.Errorf("%w: -n %d not in [1, %d]", ErrOutOfRange, *n, lights.Count)
		}
		if !isSet(*intensity) && !isSet(*x) && !isSet(*y) && !isSet(*z) && *col == "" {
			return fmt.Errorf("%w: use -intensity, -x, -y, -z or -color", ErrNoFlags)
		}
		next := *l
		if isSet(*intensity) {
			if err := inRange("intensity", *intensity, 0, lights.MaxIntensity); err != nil {
				return err
			}
			next.Intensity = float32(*intensity)
		}
		for i, v := range []*float64{x, y, z} {
			if !isSet(*v) {
				continue
			}
			if err := inRange(string(rune('x'+i)), *v, -lights.MaxPosition, lights.MaxPosition); err != nil {
				return err
			}
			next.Position.SetAxis(i, float32(*v))
		}
		if *col != "" {
			c, err := lights.ParseHex(*col)
			if err != nil {
				return err
			}
			next.Color = c
		}
		*l = next
		return nil
	})
}

func registerCamera(reg *commands.Registry, cam Camera) {
	fs := flag.NewFlagSet("camera", flag.ContinueOnError)
	fov := fs.Float64("fov", unset, "field of view in degrees, 1-90")
	reg.Register("camera", fs, func() error {
		if !isSet(*fov) {
			return fmt.Errorf("%w: use -fov", ErrNoFlags)
		}
		if err := inRange("fov", *fov, MinFOV, MaxFOV); err != nil {
			return err
		}
		cam.SetFOV(float32(*fov))
		return nil
	})
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

func kindNames() []string {
	var out []string
	for _, k := range shape.Kinds() {
		out = append(out, k.String())
	}
	return out
}

func motionNames() []string {
	var out []string
	for _, m := range animation.Motions() {
		out = append(out, m.String())
	}
	return out
}
