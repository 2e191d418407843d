package primitive

import (
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var testColor = mgl32.Vec3{0.545, 0.118, 0.118}
var testOrigin = mgl32.Vec3{0.1, -0.2, 0.3}

var shapeTests = []struct {
	name         string
	build        func() Mesh
	out_vertices int
	out_indices  int
}{
	{"box", func() Mesh { return Box(0.28, 0.18, 0.10, testColor, testOrigin) }, 24, 36},
	{"cylinder6", func() Mesh { return Cylinder(0.03, 0.1, 6, testColor, testOrigin) }, 4*6 + 2, 12 * 6},
	{"cylinder12", func() Mesh { return Cylinder(0.05, 0.2, 12, testColor, testOrigin) }, 4*12 + 2, 12 * 12},
	{"frustum", func() Mesh { return Frustum(0.05, 0.02, 0.2, 8, testColor, testOrigin) }, 4*8 + 2, 12 * 8},
	{"cone", func() Mesh { return Cone(0.04, 0.09, 10, testColor, testOrigin) }, 2*10 + 2, 6 * 10},
	{"halfcylinder", func() Mesh { return HalfCylinder(0.015, 0.08, 8, testColor, testOrigin) }, (8/2 + 1) * 2, 3 * 8},
	{"torus", func() Mesh { return Torus(0.05, 0.01, 8, 12, testColor, testOrigin) }, 8 * 12, 6 * 8 * 12},
	{"roundedbox", func() Mesh { return RoundedBox(0.13, 0.085, 0.085, 0.015, 6, testColor, testOrigin) }, 24 + 2*(4*6+2), 36 + 2*12*6},
}

func TestShapeCounts(t *testing.T) {
	for _, test := range shapeTests {
		m := test.build()
		if m.VertexCount() != test.out_vertices {
			t.Errorf("%s: vertices=%d; expected %d", test.name, m.VertexCount(), test.out_vertices)
		}
		if len(m.Indices) != test.out_indices {
			t.Errorf("%s: indices=%d; expected %d", test.name, len(m.Indices), test.out_indices)
		}
	}
}

func TestShapeInvariants(t *testing.T) {
	for _, test := range shapeTests {
		m := test.build()

		if len(m.Indices)%3 != 0 {
			t.Errorf("%s: index count %d not divisible by 3", test.name, len(m.Indices))
		}
		for _, index := range m.Indices {
			if int(index) >= m.VertexCount() {
				t.Errorf("%s: index %d out of range (%d vertices)", test.name, index, m.VertexCount())
				break
			}
		}

		if len(m.Normals) != m.VertexCount() || len(m.Colors) != m.VertexCount() {
			t.Errorf("%s: attribute arrays not parallel: %d positions, %d normals, %d colors",
				test.name, m.VertexCount(), len(m.Normals), len(m.Colors))
		}

		for i, n := range m.Normals {
			if math.Abs(float64(n.Len())-1) > 1e-5 {
				t.Errorf("%s: normal %d has length %v, expected 1", test.name, i, n.Len())
				break
			}
		}

		for i, c := range m.Colors {
			if c != testColor {
				t.Errorf("%s: color %d = %v, expected uniform %v", test.name, i, c, testColor)
				break
			}
		}
	}
}

func TestShapeDeterminism(t *testing.T) {
	for _, test := range shapeTests {
		a := test.build()
		b := test.build()
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: two builds with identical parameters differ", test.name)
		}
	}
}

func TestBoxBounds(t *testing.T) {
	m := Box(0.28, 0.18, 0.10, testColor, mgl32.Vec3{})

	min := m.Positions[0]
	max := m.Positions[0]
	for _, p := range m.Positions {
		for c := 0; c < 3; c++ {
			if p[c] < min[c] {
				min[c] = p[c]
			}
			if p[c] > max[c] {
				max[c] = p[c]
			}
		}
	}

	expectedMin := mgl32.Vec3{-0.14, -0.09, -0.05}
	expectedMax := mgl32.Vec3{0.14, 0.09, 0.05}
	if min != expectedMin {
		t.Errorf("box min = %v; expected %v", min, expectedMin)
	}
	if max != expectedMax {
		t.Errorf("box max = %v; expected %v", max, expectedMax)
	}
}

// Every cylinder cap triangle must keep a constant +-Y normal while the
// side quads stay purely radial.
func TestCylinderNormalSplit(t *testing.T) {
	const segments = 6
	m := Cylinder(0.03, 0.1, segments, testColor, mgl32.Vec3{})

	up := mgl32.Vec3{0, 1, 0}
	down := mgl32.Vec3{0, -1, 0}

	for i := 0; i < 2*segments; i++ {
		if y := m.Normals[i].Y(); y != 0 {
			t.Errorf("side normal %d has vertical component %v", i, y)
		}
	}
	for i := 2 * segments; i < 3*segments+1; i++ {
		if m.Normals[i] != up {
			t.Errorf("top cap normal %d = %v; expected %v", i, m.Normals[i], up)
		}
	}
	for i := 3*segments + 1; i < m.VertexCount(); i++ {
		if m.Normals[i] != down {
			t.Errorf("bottom cap normal %d = %v; expected %v", i, m.Normals[i], down)
		}
	}
}
