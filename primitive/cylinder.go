package primitive

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Cylinder builds a closed cylinder standing on origin, extending height
// along +Y. For N segments: 4N+2 vertices, 12N indices.
func Cylinder(radius, height float32, segments int, color, origin mgl32.Vec3) Mesh {
	return Frustum(radius, radius, height, segments, color, origin)
}

// Frustum is a cylinder whose top ring has its own radius. The lateral
// surface keeps purely radial normals (no vertical component), so tapered
// and straight sections stack with the same silhouette shading. Each cap is
// a fan over its own center and ring vertices, not shared with the sides.
func Frustum(bottomRadius, topRadius, height float32, segments int, color, origin mgl32.Vec3) Mesh {
	ox, oy, oz := origin.X(), origin.Y(), origin.Z()

	var m Mesh

	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		cosA, sinA := float32(math.Cos(angle)), float32(math.Sin(angle))
		normal := mgl32.Vec3{cosA, 0, sinA}
		m.addVertex(mgl32.Vec3{ox + bottomRadius*cosA, oy, oz + bottomRadius*sinA}, normal, color)
		m.addVertex(mgl32.Vec3{ox + topRadius*cosA, oy + height, oz + topRadius*sinA}, normal, color)
	}

	for i := 0; i < segments; i++ {
		i0 := uint32(i * 2)
		i1 := i0 + 1
		i2 := uint32(((i + 1) % segments) * 2)
		i3 := i2 + 1
		m.Indices = append(m.Indices, i0, i2, i1, i1, i2, i3)
	}

	topCenter := uint32(m.VertexCount())
	m.addVertex(mgl32.Vec3{ox, oy + height, oz}, mgl32.Vec3{0, 1, 0}, color)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		cosA, sinA := float32(math.Cos(angle)), float32(math.Sin(angle))
		m.addVertex(mgl32.Vec3{ox + topRadius*cosA, oy + height, oz + topRadius*sinA}, mgl32.Vec3{0, 1, 0}, color)
	}
	for i := 0; i < segments; i++ {
		m.Indices = append(m.Indices,
			topCenter, topCenter+1+uint32(i), topCenter+1+uint32((i+1)%segments))
	}

	bottomCenter := uint32(m.VertexCount())
	m.addVertex(mgl32.Vec3{ox, oy, oz}, mgl32.Vec3{0, -1, 0}, color)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		cosA, sinA := float32(math.Cos(angle)), float32(math.Sin(angle))
		m.addVertex(mgl32.Vec3{ox + bottomRadius*cosA, oy, oz + bottomRadius*sinA}, mgl32.Vec3{0, -1, 0}, color)
	}
	for i := 0; i < segments; i++ {
		m.Indices = append(m.Indices,
			bottomCenter, bottomCenter+1+uint32((i+1)%segments), bottomCenter+1+uint32(i))
	}

	return m
}

// HalfCylinder builds an open trough: the cylinder lateral surface over the
// angular domain [-pi/2, +pi/2] (half of segments steps), bulging towards
// +X, with no caps. Used to fillet box edges into rounded corners.
func HalfCylinder(radius, height float32, segments int, color, origin mgl32.Vec3) Mesh {
	ox, oy, oz := origin.X(), origin.Y(), origin.Z()
	halfSegments := segments / 2

	var m Mesh

	for i := 0; i <= halfSegments; i++ {
		angle := -math.Pi/2 + math.Pi*float64(i)/float64(halfSegments)
		cosA, sinA := float32(math.Cos(angle)), float32(math.Sin(angle))
		normal := mgl32.Vec3{cosA, 0, sinA}
		m.addVertex(mgl32.Vec3{ox + radius*cosA, oy, oz + radius*sinA}, normal, color)
		m.addVertex(mgl32.Vec3{ox + radius*cosA, oy + height, oz + radius*sinA}, normal, color)
	}

	for i := 0; i < halfSegments; i++ {
		i0 := uint32(i * 2)
		i1 := i0 + 1
		i2 := uint32((i + 1) * 2)
		i3 := i2 + 1
		m.Indices = append(m.Indices, i0, i2, i1, i1, i2, i3)
	}

	return m
}
