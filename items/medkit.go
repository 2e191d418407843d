package items

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/itemforge/itemforge/primitive"
)

// Medkit builds a compact first aid case: dark red plastic shell with
// rounded corner edges, off-white cross, gray handle and metal latches.
func Medkit() primitive.Mesh {
	baseRed := mgl32.Vec3{0.55, 0.12, 0.1}
	baseRedDark := mgl32.Vec3{0.4, 0.08, 0.06}
	crossWhite := mgl32.Vec3{0.88, 0.85, 0.8}
	handleGray := mgl32.Vec3{0.4, 0.38, 0.35}
	latchMetal := mgl32.Vec3{0.55, 0.53, 0.5}
	dirtEdge := mgl32.Vec3{0.35, 0.12, 0.1}

	parts := []primitive.Mesh{
		// main shell
		primitive.Box(0.13, 0.085, 0.085, baseRed, mgl32.Vec3{0, 0.0425, 0}),
	}

	// rounded corners, full height cylinders set into the shell edges
	cornerCenters := []mgl32.Vec3{
		{-0.0575, 0, 0.035},
		{0.0575, 0, 0.035},
		{-0.0575, 0, -0.035},
		{0.0575, 0, -0.035},
	}
	for _, center := range cornerCenters {
		parts = append(parts, primitive.Cylinder(0.015, 0.085, 6, baseRed, center))
	}

	parts = append(parts,
		// raised lid
		primitive.Box(0.135, 0.015, 0.09, baseRedDark, mgl32.Vec3{0, 0.0925, 0}),
		// cross, horizontal then vertical bar
		primitive.Box(0.065, 0.018, 0.006, crossWhite, mgl32.Vec3{0, 0.1, 0.045}),
		primitive.Box(0.018, 0.065, 0.006, crossWhite, mgl32.Vec3{0, 0.1, 0.045}),
		// handle base and arc
		primitive.Box(0.055, 0.018, 0.025, handleGray, mgl32.Vec3{0, 0.1, 0}),
		primitive.Box(0.045, 0.015, 0.012, handleGray, mgl32.Vec3{0, 0.118, 0}),
	)

	for _, side := range []float32{-1, 1} {
		parts = append(parts,
			// handle supports
			primitive.Box(0.012, 0.025, 0.012, handleGray, mgl32.Vec3{side * 0.025, 0.108, 0}),
			// latch and clasp
			primitive.Box(0.022, 0.035, 0.018, latchMetal, mgl32.Vec3{side * 0.055, 0.09, 0.035}),
			primitive.Box(0.015, 0.012, 0.008, latchMetal, mgl32.Vec3{side * 0.055, 0.1, 0.043}),
		)
	}

	// corner protectors
	protectorCenters := []mgl32.Vec3{
		{-0.065, 0.0425, 0.043},
		{0.065, 0.0425, 0.043},
		{-0.065, 0.0425, -0.043},
		{0.065, 0.0425, -0.043},
	}
	for _, center := range protectorCenters {
		parts = append(parts, primitive.Box(0.015, 0.085, 0.015, baseRedDark, center))
	}

	// dirt along the lid edge
	for i := 0; i < 3; i++ {
		dirtX := -0.04 + float32(i)*0.04
		parts = append(parts, primitive.Box(0.015, 0.003, 0.003, dirtEdge, mgl32.Vec3{dirtX, 0.087, 0.042}))
	}

	// molded plastic seam lines on the sides
	for _, side := range []float32{-1, 1} {
		parts = append(parts, primitive.Box(0.003, 0.06, 0.003, baseRedDark, mgl32.Vec3{side * 0.065, 0.04, 0}))
	}

	return primitive.Merge(parts...)
}
