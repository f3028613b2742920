package shape

import (
	"fmt"
	"strings"
)

// Kind identifies one of the primitive geometries the viewer can show.
type Kind int

const (
	Box Kind = iota
	Sphere
	Cylinder
	Cone
	Wheel // torus
	Teapot
	Tube
	Capsule
)

var kindNames = [...]string{
	Box:      "Box",
	Sphere:   "Sphere",
	Cylinder: "Cylinder",
	Cone:     "Cone",
	Wheel:    "Wheel",
	Teapot:   "Teapot",
	Tube:     "Tube",
	Capsule:  "Capsule",
}

// Kinds returns every kind in control-panel order.
func Kinds() []Kind {
	return []Kind{Box, Sphere, Cylinder, Cone, Wheel, Teapot, Tube, Capsule}
}

// String returns the display name (e.g. "Wheel").
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Next returns the kind after k, wrapping around.
func (k Kind) Next() Kind {
	return Kind((int(k) + 1) % len(kindNames))
}

// ParseKind maps a display name (case-insensitive) to a Kind. "torus" is accepted for Wheel.
func ParseKind(name string) (Kind, error) {
	n := strings.TrimSpace(name)
	if strings.EqualFold(n, "torus") {
		return Wheel, nil
	}
	for i, s := range kindNames {
		if strings.EqualFold(n, s) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown geometry %q", name)
}
