// Package footprint classifies overlap between asymmetric oriented rectangles.
//
// The package offers two interchangeable overlap strategies: a fast corner
// containment heuristic and an exact separating-axis reference, plus an
// ordered classification pipeline over generated scenario corpora.
package footprint

import (
	"github.com/akmonengine/footprint/rect"
	"github.com/akmonengine/footprint/sat"
	"github.com/go-gl/mathgl/mgl64"
)

// Tester decides whether two oriented rectangles overlap.
//
// Implementations must be pure and deterministic: the same pair of rectangles
// always yields the same answer, with no side effects. Both rectangles are
// value types, so implementations never observe shared mutable state.
type Tester interface {
	Overlaps(a, b rect.Rect) bool
}

// Heuristic is a bidirectional corner-containment tester. A corner of one
// rectangle is transformed into the other rectangle's local frame and checked
// against its local bounds, in both directions; any contained corner means
// overlap. Bounds are inclusive, so exact edge or corner touching counts.
//
// This is not a full separating-axis test. It covers containment and the
// typical partial overlaps, but misses configurations where the rectangles
// cross edge-through-edge without either one's vertex entering the other,
// such as two thin rectangles forming a plus sign or two offset squares in a
// four-pointed-star crossing. That false negative is part of the contract;
// callers needing the exact answer use Exact instead.
type Heuristic struct{}

// Overlaps reports whether any corner of a lies inside b or vice versa.
// Symmetric in its arguments since both directions are always checked.
func (Heuristic) Overlaps(a, b rect.Rect) bool {
	return containsCorner(b, a) || containsCorner(a, b)
}

// containsCorner reports whether any global-frame corner of other, expressed
// in the target rectangle's local frame, lies within the target's local
// bounds. With negative extents the bounds can be inverted and then contain
// nothing, which is intended.
func containsCorner(target, other rect.Rect) bool {
	bounds := target.LocalBounds()
	toLocal := mgl64.Rotate2D(-target.Heading)

	for _, corner := range other.Corners() {
		local := toLocal.Mul2x1(corner.Sub(target.Center))
		if bounds.ContainsPoint(local) {
			return true
		}
	}

	return false
}

// Exact is the reference tester: a true convex-polygon intersection via the
// separating axis test. It reports overlap iff the closed regions share at
// least one point, including boundary contact.
type Exact struct{}

// Overlaps reports whether the two rectangles' regions intersect.
func (Exact) Overlaps(a, b rect.Rect) bool {
	return sat.Intersects(a, b)
}
