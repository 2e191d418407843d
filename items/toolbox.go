package items

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/itemforge/itemforge/primitive"
)

// Toolbox builds a rectangular metal toolbox: desaturated blue-gray body
// with reinforcement bands, corner brackets, a rubber-grip handle bar and
// scratch highlights.
func Toolbox() primitive.Mesh {
	bodyBlue := mgl32.Vec3{0.28, 0.32, 0.38}
	bodyBlueDark := mgl32.Vec3{0.2, 0.22, 0.26}
	handleBlack := mgl32.Vec3{0.15, 0.15, 0.15}
	metalLight := mgl32.Vec3{0.5, 0.5, 0.52}
	metalDark := mgl32.Vec3{0.35, 0.35, 0.38}
	scratchColor := mgl32.Vec3{0.45, 0.47, 0.5}

	parts := []primitive.Mesh{
		// body, bottom edge, lid and lid top edge
		primitive.Box(0.18, 0.09, 0.095, bodyBlue, mgl32.Vec3{0, 0.045, 0}),
		primitive.Box(0.185, 0.012, 0.1, bodyBlueDark, mgl32.Vec3{0, 0.006, 0}),
		primitive.Box(0.185, 0.018, 0.1, bodyBlue, mgl32.Vec3{0, 0.099, 0}),
		primitive.Box(0.188, 0.01, 0.102, metalDark, mgl32.Vec3{0, 0.113, 0}),
		// horizontal reinforcement bands
		primitive.Box(0.19, 0.012, 0.1, metalLight, mgl32.Vec3{0, 0.025, 0}),
		primitive.Box(0.19, 0.012, 0.1, metalLight, mgl32.Vec3{0, 0.065, 0}),
	}

	// handle mount brackets
	for _, side := range []float32{-1, 1} {
		parts = append(parts, primitive.Box(0.03, 0.035, 0.025, metalDark, mgl32.Vec3{side * 0.07, 0.116, 0}))
	}

	parts = append(parts,
		// handle bar with end caps
		primitive.Cylinder(0.014, 0.12, 8, handleBlack, mgl32.Vec3{0, 0.135, 0}),
	)
	for _, side := range []float32{-1, 1} {
		parts = append(parts, primitive.Cylinder(0.016, 0.01, 8, metalDark, mgl32.Vec3{side * 0.062, 0.135, 0}))
	}

	parts = append(parts,
		// central latch mechanism
		primitive.Box(0.045, 0.025, 0.018, metalLight, mgl32.Vec3{0, 0.105, 0.05}),
		primitive.Box(0.035, 0.015, 0.012, metalDark, mgl32.Vec3{0, 0.118, 0.053}),
	)

	// corner protectors
	bracketCenters := []mgl32.Vec3{
		{-0.0925, 0.045, 0.048},
		{0.0925, 0.045, 0.048},
		{-0.0925, 0.045, -0.048},
		{0.0925, 0.045, -0.048},
	}
	for _, center := range bracketCenters {
		parts = append(parts, primitive.Box(0.018, 0.09, 0.018, metalDark, center))
	}

	// interior tray divider peeking over the rim
	parts = append(parts, primitive.Box(0.14, 0.02, 0.008, bodyBlueDark, mgl32.Vec3{0, 0.085, 0}))

	// scratch highlights
	scratches := []struct {
		x, y, z, length, width float32
	}{
		{0.05, 0.03, 0.048, 0.025, 0.002},
		{-0.06, 0.055, 0.048, 0.03, 0.002},
		{0.02, 0.075, 0.048, 0.02, 0.002},
		{-0.04, 0.04, -0.048, 0.025, 0.002},
	}
	for _, s := range scratches {
		parts = append(parts, primitive.Box(s.length, 0.002, s.width, scratchColor, mgl32.Vec3{s.x, s.y, s.z}))
	}

	parts = append(parts,
		// lid edge highlights, front and back
		primitive.Box(0.185, 0.006, 0.006, metalLight, mgl32.Vec3{0, 0.115, 0.05}),
		primitive.Box(0.185, 0.006, 0.006, metalLight, mgl32.Vec3{0, 0.115, -0.05}),
	)

	// small side latches
	for _, side := range []float32{-1, 1} {
		parts = append(parts, primitive.Box(0.015, 0.02, 0.01, metalLight, mgl32.Vec3{side * 0.08, 0.1, 0.045}))
	}

	return primitive.Merge(parts...)
}
