package primitive

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Box builds an axis aligned box centered at origin: 6 faces, each with its
// own 4 vertices and the matching axis unit normal, quads split along a
// fixed diagonal. Always 24 vertices and 36 indices.
func Box(w, h, d float32, color, origin mgl32.Vec3) Mesh {
	ox, oy, oz := origin.X(), origin.Y(), origin.Z()
	hw, hh, hd := w/2, h/2, d/2

	positions := []mgl32.Vec3{
		// front (+Z)
		{ox - hw, oy - hh, oz + hd}, {ox + hw, oy - hh, oz + hd}, {ox + hw, oy + hh, oz + hd}, {ox - hw, oy + hh, oz + hd},
		// back (-Z)
		{ox + hw, oy - hh, oz - hd}, {ox - hw, oy - hh, oz - hd}, {ox - hw, oy + hh, oz - hd}, {ox + hw, oy + hh, oz - hd},
		// top (+Y)
		{ox - hw, oy + hh, oz + hd}, {ox + hw, oy + hh, oz + hd}, {ox + hw, oy + hh, oz - hd}, {ox - hw, oy + hh, oz - hd},
		// bottom (-Y)
		{ox - hw, oy - hh, oz - hd}, {ox + hw, oy - hh, oz - hd}, {ox + hw, oy - hh, oz + hd}, {ox - hw, oy - hh, oz + hd},
		// right (+X)
		{ox + hw, oy - hh, oz + hd}, {ox + hw, oy - hh, oz - hd}, {ox + hw, oy + hh, oz - hd}, {ox + hw, oy + hh, oz + hd},
		// left (-X)
		{ox - hw, oy - hh, oz - hd}, {ox - hw, oy - hh, oz + hd}, {ox - hw, oy + hh, oz + hd}, {ox - hw, oy + hh, oz - hd},
	}

	normals := []mgl32.Vec3{
		{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1},
		{0, 0, -1}, {0, 0, -1}, {0, 0, -1}, {0, 0, -1},
		{0, 1, 0}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0},
		{0, -1, 0}, {0, -1, 0}, {0, -1, 0}, {0, -1, 0},
		{1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {1, 0, 0},
		{-1, 0, 0}, {-1, 0, 0}, {-1, 0, 0}, {-1, 0, 0},
	}

	indices := []uint32{
		0, 1, 2, 0, 2, 3,
		4, 5, 6, 4, 6, 7,
		8, 9, 10, 8, 10, 11,
		12, 13, 14, 12, 14, 15,
		16, 17, 18, 16, 18, 19,
		20, 21, 22, 20, 22, 23,
	}

	return Mesh{
		Positions: positions,
		Normals:   normals,
		Colors:    uniformColors(color, len(positions)),
		Indices:   indices,
	}
}
