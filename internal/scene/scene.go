// Package scene holds the geometry shared by the card and particle layers:
// the 3D tilt, its perspective projection and hit-test resolution.
package scene

import "math"

type Vec2 struct {
	X, Y float64
}

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Rotation turns points by Degrees around Axis through the origin.
// A zero angle or a zero-length axis is the identity.
type Rotation struct {
	Degrees float64
	Axis    Vec3
}

// IsIdentity reports whether Apply leaves every point unchanged.
func (r Rotation) IsIdentity() bool {
	return r.Degrees == 0 || r.Axis.Len() == 0
}

// Apply rotates v (Rodrigues' formula).
func (r Rotation) Apply(v Vec3) Vec3 {
	if r.IsIdentity() {
		return v
	}
	k := r.Axis.Scale(1 / r.Axis.Len())
	theta := r.Degrees * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}

// Projector maps points of a w×h layer through a rotation about the layer
// center, a perspective divide and a translation into screen space.
// X points right, Y down and Z toward the viewer.
type Projector struct {
	Width, Height float64
	Rotation      Rotation

	// Origin is the screen position of the layer's top-left corner at rest.
	Origin Vec2

	// Offset is added after projection.
	Offset Vec2
}

// Distance is the eye distance used for the perspective divide.
func (p Projector) Distance() float64 {
	return math.Max(p.Width, p.Height)
}

// Project maps a layer-local point to screen space.
func (p Projector) Project(x, y float64) Vec2 {
	cx, cy := p.Width/2, p.Height/2
	v := p.Rotation.Apply(Vec3{X: x - cx, Y: y - cy})
	d := p.Distance()
	k := 1.0
	if d > 0 && v.Z < d {
		k = d / (d - v.Z)
	}
	return Vec2{
		X: p.Origin.X + p.Offset.X + cx + v.X*k,
		Y: p.Origin.Y + p.Offset.Y + cy + v.Y*k,
	}
}

// Vertex is one mesh point: Src in layer pixels, Dst in screen space.
type Vertex struct {
	Src, Dst Vec2
}

// Mesh subdivides the layer into segments×segments quads so the texture
// follows the perspective closely. Indices form two triangles per quad.
func (p Projector) Mesh(segments int) ([]Vertex, []uint16) {
	if segments < 1 {
		segments = 1
	}
	n := segments + 1
	verts := make([]Vertex, 0, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			sx := p.Width * float64(i) / float64(segments)
			sy := p.Height * float64(j) / float64(segments)
			verts = append(verts, Vertex{Src: Vec2{sx, sy}, Dst: p.Project(sx, sy)})
		}
	}
	idx := make([]uint16, 0, segments*segments*6)
	for j := 0; j < segments; j++ {
		for i := 0; i < segments; i++ {
			a := uint16(j*n + i)
			b := a + 1
			c := a + uint16(n)
			d := c + 1
			idx = append(idx, a, b, c, b, d, c)
		}
	}
	return verts, idx
}
