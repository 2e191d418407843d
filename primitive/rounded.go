package primitive

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RoundedBox approximates a box with rounded vertical edges: a center box
// narrowed by the corner radius, with a full-height cylinder set into each
// side edge. Stands on origin, extending height along +Y.
func RoundedBox(w, h, d, cornerR float32, segments int, color, origin mgl32.Vec3) Mesh {
	ox, oy, oz := origin.X(), origin.Y(), origin.Z()
	innerW := w - cornerR*2

	parts := []Mesh{
		Box(innerW, h, d, color, mgl32.Vec3{ox, oy + h/2, oz}),
	}
	for _, side := range []float32{-1, 1} {
		edgeX := ox + side*(innerW/2)
		parts = append(parts, Cylinder(cornerR, h, segments, color, mgl32.Vec3{edgeX, oy, oz}))
	}

	return Merge(parts...)
}
