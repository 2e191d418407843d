package items

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/itemforge/itemforge/primitive"
)

// Flashlight builds a bulky handheld flashlight: hardware-store industrial
// look, muted yellow body with dark rubber grip rings, wider head, inset
// lens and a side clip.
func Flashlight() primitive.Mesh {
	bodyYellow := mgl32.Vec3{0.72, 0.62, 0.38}
	bodyDark := mgl32.Vec3{0.25, 0.22, 0.18}
	headGray := mgl32.Vec3{0.35, 0.35, 0.38}
	lensColor := mgl32.Vec3{0.75, 0.82, 0.88}
	wornEdge := mgl32.Vec3{0.55, 0.48, 0.32}
	buttonRed := mgl32.Vec3{0.65, 0.18, 0.15}
	clipMetal := mgl32.Vec3{0.5, 0.5, 0.52}

	parts := []primitive.Mesh{
		// main body, 12 segments for the faceted industrial look
		primitive.Cylinder(0.032, 0.14, 12, bodyYellow, mgl32.Vec3{}),
		// slightly wider middle section
		primitive.Cylinder(0.036, 0.04, 12, bodyYellow, mgl32.Vec3{0, 0.05, 0}),
	}

	// rubberized grip rings
	for i := 0; i < 3; i++ {
		gripY := 0.02 + float32(i)*0.04
		parts = append(parts, primitive.Cylinder(0.034, 0.018, 12, bodyDark, mgl32.Vec3{0, gripY, 0}))
	}

	parts = append(parts,
		// head, rim and inset lens
		primitive.Cylinder(0.042, 0.055, 12, bodyYellow, mgl32.Vec3{0, 0.14, 0}),
		primitive.Cylinder(0.046, 0.02, 12, headGray, mgl32.Vec3{0, 0.195, 0}),
		primitive.Cylinder(0.038, 0.008, 12, lensColor, mgl32.Vec3{0, 0.215, 0}),
		// tail cap
		primitive.Cylinder(0.033, 0.018, 12, headGray, mgl32.Vec3{0, -0.018, 0}),
		// power button
		primitive.Box(0.012, 0.01, 0.012, buttonRed, mgl32.Vec3{0, 0.08, 0.035}),
		// side mounted metal clip
		primitive.Box(0.003, 0.08, 0.012, clipMetal, mgl32.Vec3{-0.038, 0.06, 0}),
		primitive.Box(0.006, 0.015, 0.012, clipMetal, mgl32.Vec3{-0.038, 0.11, 0}),
		// scratch marks
		primitive.Box(0.025, 0.003, 0.002, wornEdge, mgl32.Vec3{0.025, 0.07, 0.03}),
		primitive.Box(0.02, 0.003, 0.002, wornEdge, mgl32.Vec3{-0.02, 0.12, -0.032}),
		// bevel detail where the head meets the body
		primitive.Box(0.045, 0.008, 0.045, headGray, mgl32.Vec3{0, 0.148, 0}),
	)

	return primitive.Merge(parts...)
}
