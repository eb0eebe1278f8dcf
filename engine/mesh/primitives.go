package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	unitRadius     = 0.5
	roundSegments  = 32
	sphereStacks   = 16
	sphereSlices   = 24
	defaultTiling  = 100.0
	shadeAmbient   = 0.55
	shadeDiffusion = 0.45
)

// shadeLight is the fixed direction baked into the grey shading of tint meshes.
var shadeLight = mgl32.Vec3{0.4, 1.0, 0.6}.Normalize()

// GenerateOption configures procedural generation.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	planeTiling float32
}

// WithPlaneTiling sets how many times the texture repeats across UnitPlane.
//
// Parameters:
//   - tiling: UV scale, 100 by default
//
// Returns:
//   - GenerateOption: functional option to set the tiling
func WithPlaneTiling(tiling float32) GenerateOption {
	return func(c *generateConfig) {
		c.planeTiling = tiling
	}
}

// Generate builds the unit primitive for a descriptor name.
// An ".xml" suffix on name is accepted.
//
// Parameters:
//   - name: one of the Unit* descriptor names
//   - options: generation options
//
// Returns:
//   - *Mesh: the generated mesh
//   - error: ErrUnknownDescriptor if name matches no primitive
func Generate(name string, options ...GenerateOption) (*Mesh, error) {
	cfg := generateConfig{planeTiling: defaultTiling}
	for _, option := range options {
		option(&cfg)
	}

	name = NormalizeName(name)
	var m *Mesh
	switch name {
	case UnitConeTint:
		m = cone()
	case UnitCylinderTint:
		m = cylinder()
	case UnitCubeTint:
		m = cube(func(n mgl32.Vec3) mgl32.Vec4 { return shade(n) })
	case UnitCubeColor:
		m = cube(faceColor)
	case UnitPlane:
		m = plane(cfg.planeTiling)
	case UnitSphere:
		m = sphere()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDescriptor, name)
	}
	m.Name = name
	return m, nil
}

// shade returns the baked grey for a surface normal.
func shade(n mgl32.Vec3) mgl32.Vec4 {
	s := shadeAmbient + shadeDiffusion*max(0, n.Dot(shadeLight))
	return mgl32.Vec4{s, s, s, 1}
}

// faceColor gives every cube face its own color.
func faceColor(n mgl32.Vec3) mgl32.Vec4 {
	switch {
	case n.X() > 0.5:
		return mgl32.Vec4{1, 0, 0, 1}
	case n.X() < -0.5:
		return mgl32.Vec4{0, 1, 1, 1}
	case n.Y() > 0.5:
		return mgl32.Vec4{0, 1, 0, 1}
	case n.Y() < -0.5:
		return mgl32.Vec4{1, 0, 1, 1}
	case n.Z() > 0.5:
		return mgl32.Vec4{0, 0, 1, 1}
	default:
		return mgl32.Vec4{1, 1, 0, 1}
	}
}

func vertex(p mgl32.Vec3, c mgl32.Vec4, u, v float32) GPUVertex {
	return GPUVertex{Position: p, Color: c, TexCoord: [2]float32{u, v}}
}

func cube(color func(n mgl32.Vec3) mgl32.Vec4) *Mesh {
	// each face is spanned by axes u, v with u x v = n
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}},
	}

	m := &Mesh{}
	for _, f := range faces {
		c := color(f.n)
		center := f.n.Mul(unitRadius)
		u, v := f.u.Mul(unitRadius), f.v.Mul(unitRadius)
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			vertex(center.Sub(u).Sub(v), c, 0, 0),
			vertex(center.Add(u).Sub(v), c, 1, 0),
			vertex(center.Add(u).Add(v), c, 1, 1),
			vertex(center.Sub(u).Add(v), c, 0, 1),
		)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// ring returns the point at angle step i of roundSegments on a circle of unitRadius at height y.
func ring(i int, y float32) (mgl32.Vec3, mgl32.Vec3) {
	a := 2 * math32.Pi * float32(i) / roundSegments
	sin, cos := math32.Sincos(a)
	n := mgl32.Vec3{cos, 0, sin}
	return mgl32.Vec3{unitRadius * cos, y, unitRadius * sin}, n
}

func cylinder() *Mesh {
	const h = 0.5
	m := &Mesh{}

	// side
	for i := range roundSegments {
		b0, n0 := ring(i, -h)
		b1, n1 := ring(i+1, -h)
		t0, t1 := mgl32.Vec3{b0[0], h, b0[2]}, mgl32.Vec3{b1[0], h, b1[2]}
		u0, u1 := float32(i)/roundSegments, float32(i+1)/roundSegments
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			vertex(b0, shade(n0), u0, 0),
			vertex(t0, shade(n0), u0, 1),
			vertex(t1, shade(n1), u1, 1),
			vertex(b1, shade(n1), u1, 0),
		)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	m.appendCap(h, mgl32.Vec3{0, 1, 0})
	m.appendCap(-h, mgl32.Vec3{0, -1, 0})
	return m
}

// appendCap adds a disc of unitRadius at height y facing n, which must be +Y or -Y.
func (m *Mesh) appendCap(y float32, n mgl32.Vec3) {
	c := shade(n)
	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, vertex(mgl32.Vec3{0, y, 0}, c, 0.5, 0.5))
	for i := range roundSegments {
		p, dir := ring(i, y)
		m.Vertices = append(m.Vertices, vertex(p, c, 0.5+dir[0]/2, 0.5+dir[2]/2))
	}
	for i := range uint32(roundSegments) {
		cur := center + 1 + i
		next := center + 1 + (i+1)%roundSegments
		if n.Y() > 0 {
			m.Indices = append(m.Indices, center, next, cur)
		} else {
			m.Indices = append(m.Indices, center, cur, next)
		}
	}
}

func cone() *Mesh {
	const (
		height = 1.0
		slope  = unitRadius / height
	)
	m := &Mesh{}
	for i := range roundSegments {
		b0, n0 := ring(i, 0)
		b1, n1 := ring(i+1, 0)
		// side normals lean up by the slope of the cone
		n0 = mgl32.Vec3{n0[0], slope, n0[2]}.Normalize()
		n1 = mgl32.Vec3{n1[0], slope, n1[2]}.Normalize()
		nm := n0.Add(n1).Normalize()
		u0, u1 := float32(i)/roundSegments, float32(i+1)/roundSegments
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			vertex(b0, shade(n0), u0, 0),
			vertex(mgl32.Vec3{0, height, 0}, shade(nm), (u0+u1)/2, 1),
			vertex(b1, shade(n1), u1, 0),
		)
		m.Indices = append(m.Indices, base, base+1, base+2)
	}
	m.appendCap(0, mgl32.Vec3{0, -1, 0})
	return m
}

func plane(tiling float32) *Mesh {
	c := mgl32.Vec4{1, 1, 1, 1}
	m := &Mesh{
		Vertices: []GPUVertex{
			vertex(mgl32.Vec3{-unitRadius, 0, -unitRadius}, c, 0, 0),
			vertex(mgl32.Vec3{unitRadius, 0, -unitRadius}, c, tiling, 0),
			vertex(mgl32.Vec3{unitRadius, 0, unitRadius}, c, tiling, tiling),
			vertex(mgl32.Vec3{-unitRadius, 0, unitRadius}, c, 0, tiling),
		},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
	return m
}

func sphere() *Mesh {
	m := &Mesh{}
	for j := 0; j <= sphereStacks; j++ {
		theta := math32.Pi * float32(j) / sphereStacks
		sinT, cosT := math32.Sincos(theta)
		for i := 0; i <= sphereSlices; i++ {
			phi := 2 * math32.Pi * float32(i) / sphereSlices
			sinP, cosP := math32.Sincos(phi)
			n := mgl32.Vec3{sinT * cosP, cosT, sinT * sinP}
			m.Vertices = append(m.Vertices, vertex(n.Mul(unitRadius), shade(n),
				float32(i)/sphereSlices, float32(j)/sphereStacks))
		}
	}

	row := uint32(sphereSlices + 1)
	for j := range uint32(sphereStacks) {
		for i := range uint32(sphereSlices) {
			a := j*row + i
			b := a + 1
			d := a + row
			c := d + 1
			// the triangles touching a pole would be degenerate
			if j != 0 {
				m.Indices = append(m.Indices, d, a, b)
			}
			if j != sphereStacks-1 {
				m.Indices = append(m.Indices, d, b, c)
			}
		}
	}
	return m
}
