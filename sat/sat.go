// Package sat implements the separating axis test (SAT) for oriented rectangles.
//
// Two convex shapes are disjoint if and only if there exists an axis on which
// their projections do not overlap. For convex polygons it is sufficient to
// test the edge normals of both polygons, which for a pair of rectangles means
// four axes: the local x and y directions of each rectangle.
//
// Unlike a corner-containment heuristic, this test is exact: it detects the
// edge-through-edge crossings where two rectangles intersect without either
// one's vertex entering the other. Separation is proven with a strict
// comparison, so shapes that merely touch on an edge or corner are reported
// as intersecting.
//
// References:
//   - Gottschalk, Lin, Manocha: "OBBTree: A Hierarchical Structure for Rapid
//     Interference Detection" (1996)
//   - Ericson: "Real-Time Collision Detection" (2005), ch. 4-5
package sat

import (
	"math"

	"github.com/akmonengine/footprint/rect"
	"github.com/go-gl/mathgl/mgl64"
)

// Intersects reports whether the closed regions of two oriented rectangles
// share at least one point. Boundary contact counts as intersection.
func Intersects(a, b rect.Rect) bool {
	cornersA := a.Corners()
	cornersB := b.Corners()

	axes := [4]mgl64.Vec2{}
	axes[0], axes[1] = localAxes(a)
	axes[2], axes[3] = localAxes(b)

	for _, axis := range axes {
		minA, maxA := project(cornersA, axis)
		minB, maxB := project(cornersB, axis)

		// A gap on any tested axis proves the shapes are separated; no
		// further axes need to be examined.
		if maxA < minB || maxB < minA {
			return false
		}
	}

	// No separating axis exists among the edge normals of either rectangle,
	// therefore the convex regions intersect.
	return true
}

// localAxes returns the rectangle's local x and y directions in the global
// frame. They are unit length by construction, though SAT only compares
// projections on the same axis so the scale would not matter.
func localAxes(r rect.Rect) (mgl64.Vec2, mgl64.Vec2) {
	cos := math.Cos(r.Heading)
	sin := math.Sin(r.Heading)

	return mgl64.Vec2{cos, sin}, mgl64.Vec2{-sin, cos}
}

// project returns the interval covered by the corners projected onto the axis.
func project(corners [4]mgl64.Vec2, axis mgl64.Vec2) (float64, float64) {
	min := corners[0].Dot(axis)
	max := min

	for _, corner := range corners[1:] {
		p := corner.Dot(axis)
		min = math.Min(min, p)
		max = math.Max(max, p)
	}

	return min, max
}
