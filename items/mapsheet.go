package items

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/itemforge/itemforge/primitive"
)

// MapSheet builds a folded paper map: thin layered sheets in aged paper
// tones with crease lines, curled edges, a faded route and a red X mark.
func MapSheet() primitive.Mesh {
	paperBase := mgl32.Vec3{0.78, 0.72, 0.55}
	paperDark := mgl32.Vec3{0.65, 0.58, 0.42}
	paperLight := mgl32.Vec3{0.85, 0.8, 0.65}
	printColor := mgl32.Vec3{0.35, 0.4, 0.35}
	markRed := mgl32.Vec3{0.6, 0.2, 0.18}
	edgeWorn := mgl32.Vec3{0.55, 0.5, 0.38}

	parts := []primitive.Mesh{
		// base sheet and fold layers
		primitive.Box(0.15, 0.004, 0.11, paperBase, mgl32.Vec3{0, 0.002, 0}),
		primitive.Box(0.15, 0.003, 0.052, paperLight, mgl32.Vec3{0, 0.0055, 0.03}),
		primitive.Box(0.15, 0.003, 0.052, paperDark, mgl32.Vec3{0, 0.0055, -0.03}),
		// crease lines
		primitive.Box(0.15, 0.005, 0.002, paperDark, mgl32.Vec3{0, 0.004, 0}),
		primitive.Box(0.15, 0.005, 0.002, paperDark, mgl32.Vec3{0, 0.004, 0.055}),
		primitive.Box(0.15, 0.005, 0.002, paperDark, mgl32.Vec3{0, 0.004, -0.055}),
		// curling front and back edges
		primitive.Cylinder(0.006, 0.15, 6, edgeWorn, mgl32.Vec3{0, 0.006, 0.058}),
		primitive.Cylinder(0.005, 0.15, 6, edgeWorn, mgl32.Vec3{0, 0.005, -0.058}),
		// red X destination mark
		primitive.Box(0.022, 0.005, 0.003, markRed, mgl32.Vec3{-0.035, 0.005, 0.015}),
		primitive.Box(0.003, 0.005, 0.022, markRed, mgl32.Vec3{-0.035, 0.005, 0.015}),
		// faded printed route
		primitive.Box(0.05, 0.005, 0.001, printColor, mgl32.Vec3{0.02, 0.005, 0}),
		primitive.Box(0.001, 0.005, 0.04, printColor, mgl32.Vec3{0.045, 0.005, -0.02}),
		// compass rose and needle
		primitive.Cylinder(0.012, 0.005, 6, printColor, mgl32.Vec3{0.055, 0.005, -0.04}),
		primitive.Box(0.002, 0.005, 0.015, printColor, mgl32.Vec3{0.055, 0.005, -0.04}),
		// worn corners and a text block hint
		primitive.Box(0.025, 0.003, 0.003, edgeWorn, mgl32.Vec3{0.07, 0.0035, 0.054}),
		primitive.Box(0.02, 0.003, 0.003, edgeWorn, mgl32.Vec3{-0.065, 0.0035, -0.053}),
		primitive.Box(0.025, 0.005, 0.015, printColor, mgl32.Vec3{-0.05, 0.005, 0.025}),
	}

	return primitive.Merge(parts...)
}
