// Package shape describes the viewer's primitive geometries and where they rest on the ground plane.
// It holds no GPU state; the render package turns a Descriptor into a mesh.
package shape

// Tessellation constants. These are fixed per kind and not user settings.
const (
	sphereSegments       = 24
	roundSegments        = 32 // cylinder, cone, wheel tubular
	wheelRadialSegments  = 16
	teapotSegments       = 15
	tubeTubularSegments  = 20
	tubeRadialSegments   = 8
	capsuleCapSegments   = 8
	capsuleRadialSegment = 16
)

// Default parameters per kind.
const (
	boxSide        = 3
	sphereRadius   = 2
	cylinderRadius = 2
	cylinderHeight = 6
	coneRadius     = 5
	coneHeight     = 5
	wheelRadius    = 2
	wheelTube      = 0.8
	teapotSize     = 2
	tubeScale      = 3
	tubeRadius     = 1
	capsuleRadius  = 2
	capsuleLength  = 2
)

// Rest heights that are fixed regardless of parameters.
const (
	teapotRestHeight  = teapotSize
	tubeRestHeight    = 2
	capsuleRestHeight = 4
)

// Descriptor is an immutable description of one primitive: its kind and dimensional parameters.
// Only the fields relevant to Kind are set.
type Descriptor struct {
	Kind Kind

	Width, Height, Depth    float32 // box; Height also cylinder and cone
	Radius                  float32 // sphere, cone, wheel, tube, capsule
	RadiusTop, RadiusBottom float32 // cylinder
	Tube                    float32 // wheel tube radius
	Length                  float32 // capsule body length
	Size                    float32 // teapot
	Scale                   float32 // tube curve scale
	RadialSegments          int
	HeightSegments          int // sphere rings
	TubularSegments         int
	CapSegments             int
}

// Build returns the descriptor for kind with the viewer's default parameters.
// Unknown kinds yield the box.
func Build(kind Kind) Descriptor {
	switch kind {
	case Sphere:
		return Descriptor{Kind: Sphere, Radius: sphereRadius, RadialSegments: sphereSegments, HeightSegments: sphereSegments}
	case Cylinder:
		return Descriptor{Kind: Cylinder, RadiusTop: cylinderRadius, RadiusBottom: cylinderRadius, Height: cylinderHeight, RadialSegments: roundSegments}
	case Cone:
		return Descriptor{Kind: Cone, Radius: coneRadius, Height: coneHeight, RadialSegments: roundSegments}
	case Wheel:
		return Descriptor{Kind: Wheel, Radius: wheelRadius, Tube: wheelTube, RadialSegments: wheelRadialSegments, TubularSegments: roundSegments}
	case Teapot:
		return Descriptor{Kind: Teapot, Size: teapotSize, RadialSegments: teapotSegments}
	case Tube:
		return Descriptor{Kind: Tube, Scale: tubeScale, Radius: tubeRadius, TubularSegments: tubeTubularSegments, RadialSegments: tubeRadialSegments}
	case Capsule:
		return Descriptor{Kind: Capsule, Radius: capsuleRadius, Length: capsuleLength, CapSegments: capsuleCapSegments, RadialSegments: capsuleRadialSegment}
	default:
		return Descriptor{Kind: Box, Width: boxSide, Height: boxSide, Depth: boxSide}
	}
}

// RestHeight is the Y position that puts the object's origin above the ground plane.
// Teapot, tube and capsule use fixed values rather than their parameters.
func RestHeight(d Descriptor) float32 {
	switch d.Kind {
	case Box, Cylinder, Cone:
		return d.Height / 2
	case Sphere:
		return d.Radius
	case Wheel:
		return d.Radius + d.Tube
	case Teapot:
		return teapotRestHeight
	case Tube:
		return tubeRestHeight
	case Capsule:
		return capsuleRestHeight
	default:
		return 0
	}
}
