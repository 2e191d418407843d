package primitive

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Cone builds a closed cone with its apex height above origin. Side normals
// tilt by the cone half-angle (radius/height slope, normalized); the flat
// bottom cap fans over its own center and ring with a -Y normal.
// For N segments: 2N+2 vertices, 6N indices.
func Cone(radius, height float32, segments int, color, origin mgl32.Vec3) Mesh {
	ox, oy, oz := origin.X(), origin.Y(), origin.Z()
	slope := radius / height
	normalScale := 1 / float32(math.Sqrt(float64(1+slope*slope)))

	var m Mesh

	const apex = uint32(0)
	m.addVertex(mgl32.Vec3{ox, oy + height, oz}, mgl32.Vec3{0, 1, 0}, color)

	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		cosA, sinA := float32(math.Cos(angle)), float32(math.Sin(angle))
		m.addVertex(
			mgl32.Vec3{ox + radius*cosA, oy, oz + radius*sinA},
			mgl32.Vec3{cosA * normalScale, slope * normalScale, sinA * normalScale},
			color)
	}

	for i := 0; i < segments; i++ {
		m.Indices = append(m.Indices,
			apex, 1+uint32(i), 1+uint32((i+1)%segments))
	}

	bottomCenter := uint32(m.VertexCount())
	m.addVertex(mgl32.Vec3{ox, oy, oz}, mgl32.Vec3{0, -1, 0}, color)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		cosA, sinA := float32(math.Cos(angle)), float32(math.Sin(angle))
		m.addVertex(mgl32.Vec3{ox + radius*cosA, oy, oz + radius*sinA}, mgl32.Vec3{0, -1, 0}, color)
	}
	for i := 0; i < segments; i++ {
		m.Indices = append(m.Indices,
			bottomCenter, bottomCenter+1+uint32((i+1)%segments), bottomCenter+1+uint32(i))
	}

	return m
}
