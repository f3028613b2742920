package texture

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GroundPath is the ground plane's texture, relative to the assets directory.
const GroundPath = "textures/hardwood2_diffuse.jpg"

// DefaultName is the texture applied to the object at startup.
const DefaultName = "Crate"

// catalog maps display names to asset paths relative to the assets directory. Order is panel order.
var catalog = []struct {
	name string
	path string
}{
	{"Crate", "textures/crate.gif"},
	{"Earth Day", "textures/earth_atmos.jpg"},
	{"Earth Night", "textures/earth_lights.png"},
	{"Moon", "textures/moon.jpg"},
	{"UV Grid", "textures/uv_grid.jpg"},
}

// Names returns the catalog's display names in panel order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, e := range catalog {
		out[i] = e.name
	}
	return out
}

// Lookup returns the canonical display name and relative asset path for name (case-insensitive).
func Lookup(name string) (canonical, rel string, err error) {
	n := strings.TrimSpace(name)
	for _, e := range catalog {
		if strings.EqualFold(n, e.name) {
			return e.name, e.path, nil
		}
	}
	return "", "", fmt.Errorf("unknown texture %q", name)
}

// Path resolves a catalog name to a file path under assetsDir.
func Path(assetsDir, name string) (string, error) {
	_, rel, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(assetsDir, rel), nil
}
