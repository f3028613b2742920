package viewerconfig

import (
	"errors"
	"flag"

	"shape-viewer/internal/commands"
	"shape-viewer/internal/controller"
	"shape-viewer/internal/texture"
)

// Source is where the saved object settings come from.
type Source interface {
	Snapshot() controller.Snapshot
}

// Capture returns p with the startup object replaced by the state in s. A texture loaded
// from a URL is not in the catalog, so p keeps its texture in that case.
func Capture(p Prefs, s controller.Snapshot) Prefs {
	p.Geometry = s.Geometry.String()
	p.Method = s.Mode.String()
	if name, _, err := texture.Lookup(s.Texture.Name); err == nil {
		p.Texture = name
	}
	p.ColorSpace = s.Texture.ColorSpace.String()
	p.Motion = s.Animation.Motion.String()
	p.AnimationSpeed = s.Animation.Speed
	return p
}

// Register adds "config -save", which writes prefs with the current object state to path.
// prefs is updated in place so later saves build on it.
func Register(reg *commands.Registry, path string, prefs *Prefs, src Source) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	save := fs.Bool("save", false, "save the current object as the startup object in "+path)
	reg.Register("config", fs, func() error {
		if !*save {
			return errors.New("config: nothing to do, use -save")
		}
		next := Capture(*prefs, src.Snapshot())
		if err := Save(path, next); err != nil {
			return err
		}
		*prefs = next
		return nil
	})
}
