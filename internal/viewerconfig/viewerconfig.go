package viewerconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"shape-viewer/internal/animation"
	"shape-viewer/internal/controller"
	"shape-viewer/internal/drawable"
	"shape-viewer/internal/shape"
	"shape-viewer/internal/texture"
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// Prefs holds viewer preferences: debug overlays, window, and the object shown at startup.
type Prefs struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	GridVisible  bool `yaml:"grid_visible"`

	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	AssetsDir    string `yaml:"assets_dir"`
	Font         string `yaml:"font"` // file under <assets>/fonts; empty picks the first found

	Geometry       string  `yaml:"geometry"`
	Method         string  `yaml:"method"`
	Texture        string  `yaml:"texture"`
	ColorSpace     string  `yaml:"colorspace"`
	Motion         string  `yaml:"motion"`
	AnimationSpeed float32 `yaml:"animation_speed"`
}

// Overrides are settings taken from the environment. Empty fields leave Prefs alone.
type Overrides struct {
	AssetsDir string
	Geometry  string
	Texture   string
}

// Default returns the preferences used when no config file exists.
func Default() Prefs {
	return Prefs{
		WindowWidth:    1280,
		WindowHeight:   720,
		AssetsDir:      "assets",
		Geometry:       shape.Box.String(),
		Method:         drawable.Solid.String(),
		Texture:        texture.DefaultName,
		ColorSpace:     texture.Linear.String(),
		Motion:         animation.UpDown.String(),
		AnimationSpeed: animation.DefaultSpeed,
	}
}

// Load reads preferences from path. Keys missing from the file keep their defaults.
// A missing file is not an error; an unreadable or malformed one returns Default() and the error.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("viewerconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("viewerconfig: %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply merges non-empty overrides into p.
func Apply(p *Prefs, o Overrides) error {
	return copier.CopyWithOption(p, &o, copier.Option{IgnoreEmpty: true})
}

// Options converts preferences into controller options. Unknown names are errors.
func Options(p Prefs) (controller.Options, error) {
	opts := controller.DefaultOptions()
	var err error
	if opts.Geometry, err = shape.ParseKind(p.Geometry); err != nil {
		return opts, fmt.Errorf("viewerconfig: geometry: %w", err)
	}
	if opts.Mode, err = drawable.ParseMode(p.Method); err != nil {
		return opts, fmt.Errorf("viewerconfig: method: %w", err)
	}
	if opts.Texture.Name, _, err = texture.Lookup(p.Texture); err != nil {
		return opts, fmt.Errorf("viewerconfig: texture: %w", err)
	}
	if opts.Texture.ColorSpace, err = texture.ParseColorSpace(p.ColorSpace); err != nil {
		return opts, fmt.Errorf("viewerconfig: colorspace: %w", err)
	}
	if opts.Animation.Motion, err = animation.ParseMotion(p.Motion); err != nil {
		return opts, fmt.Errorf("viewerconfig: motion: %w", err)
	}
	if p.AnimationSpeed < 0 {
		return opts, fmt.Errorf("viewerconfig: animation_speed %g is negative", p.AnimationSpeed)
	}
	opts.Animation.Speed = p.AnimationSpeed
	if p.AssetsDir != "" {
		opts.AssetsDir = p.AssetsDir
	}
	return opts, nil
}
