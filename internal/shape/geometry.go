package shape

import "github.com/chewxy/math32"

// Geometry is an indexed triangle mesh in the layout raylib meshes use:
// 3 floats per position and normal, 2 per texcoord, 16-bit indices.
type Geometry struct {
	Positions []float32
	Normals   []float32
	TexCoords []float32
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (g Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// TriangleCount returns the number of indexed triangles.
func (g Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

func (g *Geometry) addVertex(px, py, pz, nx, ny, nz, u, v float32) {
	g.Positions = append(g.Positions, px, py, pz)
	g.Normals = append(g.Normals, nx, ny, nz)
	g.TexCoords = append(g.TexCoords, u, v)
}

// Generated reports whether the renderer must build the mesh from Mesh(d) rather than a built-in generator.
func Generated(k Kind) bool {
	return k == Tube || k == Capsule || k == Teapot
}

// Mesh builds geometry for kinds without a built-in generator (tube, capsule, teapot).
// Other kinds return an empty Geometry.
func Mesh(d Descriptor) Geometry {
	switch d.Kind {
	case Tube:
		return tubeMesh(d)
	case Capsule:
		return capsuleMesh(d)
	case Teapot:
		return teapotMesh(d)
	default:
		return Geometry{}
	}
}

// tubeCurve is the sine path the tube is swept along, t in [0,1].
func tubeCurve(t, scale float32) (x, y, z float32) {
	return math32.Sin(2*math32.Pi*t) * scale, 0, (t*4 - 1.5) * scale
}

// tubeMesh sweeps a circle along tubeCurve. The curve is planar in XZ, so the frame
// uses +Y as binormal and needs no parallel transport.
func tubeMesh(d Descriptor) Geometry {
	tubular, radial := d.TubularSegments, d.RadialSegments
	var g Geometry
	for i := 0; i <= tubular; i++ {
		t := float32(i) / float32(tubular)
		px, py, pz := tubeCurve(t, d.Scale)
		// tangent = d/dt curve; normal N = B x T with B = +Y
		tx, tz := 2*math32.Pi*math32.Cos(2*math32.Pi*t), float32(4)
		l := math32.Hypot(tx, tz)
		tx, tz = tx/l, tz/l
		nx, nz := tz, -tx
		for j := 0; j <= radial; j++ {
			v := float32(j) / float32(radial) * 2 * math32.Pi
			sin, cos := math32.Sin(v), -math32.Cos(v)
			ox := cos * nx
			oy := sin
			oz := cos * nz
			g.addVertex(px+d.Radius*ox, py+d.Radius*oy, pz+d.Radius*oz, ox, oy, oz,
				float32(i)/float32(tubular), float32(j)/float32(radial))
		}
	}
	stride := radial + 1
	for j := 1; j <= tubular; j++ {
		for i := 1; i <= radial; i++ {
			a := uint16(stride*(j-1) + (i - 1))
			b := uint16(stride*j + (i - 1))
			c := uint16(stride*j + i)
			e := uint16(stride*(j-1) + i)
			g.Indices = append(g.Indices, a, b, e, b, c, e)
		}
	}
	return g
}

type profilePoint struct{ x, y float32 }

// lathe revolves a profile (x >= 0, ordered bottom to top) around +Y.
func lathe(profile []profilePoint, segments int) Geometry {
	var g Geometry
	n := len(profile)
	for i := 0; i <= segments; i++ {
		phi := float32(i) / float32(segments) * 2 * math32.Pi
		sin, cos := math32.Sin(phi), math32.Cos(phi)
		for j, p := range profile {
			prev, next := profile[max(j-1, 0)], profile[min(j+1, n-1)]
			dx, dy := next.x-prev.x, next.y-prev.y
			nx, ny := dy, -dx
			if l := math32.Hypot(nx, ny); l > 0 {
				nx, ny = nx/l, ny/l
			}
			g.addVertex(p.x*sin, p.y, p.x*cos, nx*sin, ny, nx*cos,
				float32(i)/float32(segments), float32(j)/float32(n-1))
		}
	}
	for i := 0; i < segments; i++ {
		for j := 0; j < n-1; j++ {
			a := uint16(i*n + j)
			b := uint16((i+1)*n + j)
			c := uint16((i+1)*n + j + 1)
			e := uint16(i*n + j + 1)
			g.Indices = append(g.Indices, a, b, e, c, e, b)
		}
	}
	return g
}

// capsuleMesh is a cylinder of Length with hemispherical caps, centered on the origin.
func capsuleMesh(d Descriptor) Geometry {
	half := d.Length / 2
	caps := d.CapSegments
	profile := make([]profilePoint, 0, 2*caps+2)
	for i := 0; i <= caps; i++ {
		a := -math32.Pi/2 + float32(i)/float32(caps)*math32.Pi/2
		profile = append(profile, profilePoint{d.Radius * math32.Cos(a), -half + d.Radius*math32.Sin(a)})
	}
	for i := 0; i <= caps; i++ {
		a := float32(i) / float32(caps) * math32.Pi / 2
		profile = append(profile, profilePoint{d.Radius * math32.Cos(a), half + d.Radius*math32.Sin(a)})
	}
	// poles sit exactly on the axis
	profile[0].x = 0
	profile[len(profile)-1].x = 0
	return lathe(profile, d.RadialSegments)
}

// teapotProfile is the pot outline for size 1: body, rim, lid and knob, bottom at y = -1.
// Spout and handle are not part of the lathe.
var teapotProfile = []profilePoint{
	{0, -1}, {0.8, -1}, {1.05, -0.85}, {1.25, -0.5}, {1.3, -0.2}, {1.22, 0.15},
	{1.0, 0.4}, {0.85, 0.5}, {0.8, 0.52}, {0.6, 0.62}, {0.3, 0.7}, {0.12, 0.75},
	{0.18, 0.82}, {0.15, 0.9}, {0, 0.93},
}

func teapotMesh(d Descriptor) Geometry {
	profile := make([]profilePoint, len(teapotProfile))
	for i, p := range teapotProfile {
		profile[i] = profilePoint{p.x * d.Size, p.y * d.Size}
	}
	return lathe(profile, d.RadialSegments)
}
