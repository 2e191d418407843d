package primitive

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Torus builds a donut lying in the XZ plane around origin. outerR is the
// outer extent, innerR the tube radius, so the ring of tube centers sits at
// outerR-innerR. Both loops wrap modulo their sample counts, closing the
// grid: rings*segments vertices, 6*rings*segments indices.
func Torus(outerR, innerR float32, segments, rings int, color, origin mgl32.Vec3) Mesh {
	ox, oy, oz := origin.X(), origin.Y(), origin.Z()
	ringRadius := outerR - innerR

	var m Mesh

	for i := 0; i < rings; i++ {
		theta := 2 * math.Pi * float64(i) / float64(rings)
		cosT, sinT := float32(math.Cos(theta)), float32(math.Sin(theta))
		centerX := ox + ringRadius*cosT
		centerZ := oz + ringRadius*sinT

		for j := 0; j < segments; j++ {
			phi := 2 * math.Pi * float64(j) / float64(segments)
			cosP, sinP := float32(math.Cos(phi)), float32(math.Sin(phi))

			m.addVertex(
				mgl32.Vec3{centerX + innerR*cosP*cosT, oy + innerR*sinP, centerZ + innerR*cosP*sinT},
				mgl32.Vec3{cosP * cosT, sinP, cosP * sinT},
				color)
		}
	}

	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			curr := uint32(i*segments + j)
			nextI := uint32(((i+1)%rings)*segments + j)
			nextJ := uint32(i*segments + (j+1)%segments)
			nextIJ := uint32(((i+1)%rings)*segments + (j+1)%segments)

			m.Indices = append(m.Indices, curr, nextI, nextJ, nextI, nextIJ, nextJ)
		}
	}

	return m
}
