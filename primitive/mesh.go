// Package primitive synthesizes hard-faceted low poly meshes.
//
// Every face owns private copies of its corner vertices, so each vertex
// normal is an exact per-face constant and no normal averaging pass is
// needed afterwards. This inflates vertex counts, which is fine for
// hundreds-of-triangles item models.
package primitive

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a triangle-list vertex/index buffer set. Positions, Normals and
// Colors are parallel arrays of the same length; every index triple in
// Indices is one counter-clockwise triangle and max(Indices) < VertexCount.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Colors    []mgl32.Vec3
	Indices   []uint32
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) addVertex(position, normal, color mgl32.Vec3) {
	m.Positions = append(m.Positions, position)
	m.Normals = append(m.Normals, normal)
	m.Colors = append(m.Colors, color)
}

func uniformColors(color mgl32.Vec3, count int) []mgl32.Vec3 {
	colors := make([]mgl32.Vec3, count)
	for i := range colors {
		colors[i] = color
	}
	return colors
}
