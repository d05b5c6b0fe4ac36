package rect

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAABBContainsPoint(t *testing.T) {
	box := AABB{Min: mgl64.Vec2{-1, -2}, Max: mgl64.Vec2{3, 4}}

	t.Run("interior point", func(t *testing.T) {
		if !box.ContainsPoint(mgl64.Vec2{0, 0}) {
			t.Error("expected interior point to be contained")
		}
	})

	t.Run("edge points are contained", func(t *testing.T) {
		edges := []mgl64.Vec2{
			{-1, 0}, // left edge
			{3, 0},  // right edge
			{0, -2}, // bottom edge
			{0, 4},  // top edge
		}
		for _, p := range edges {
			if !box.ContainsPoint(p) {
				t.Errorf("expected edge point %v to be contained (inclusive bounds)", p)
			}
		}
	})

	t.Run("corner point is contained", func(t *testing.T) {
		if !box.ContainsPoint(mgl64.Vec2{3, 4}) {
			t.Error("expected corner point to be contained (inclusive bounds)")
		}
	})

	t.Run("outside points", func(t *testing.T) {
		outside := []mgl64.Vec2{
			{-1.0001, 0},
			{3.0001, 0},
			{0, -2.0001},
			{0, 4.0001},
		}
		for _, p := range outside {
			if box.ContainsPoint(p) {
				t.Errorf("expected point %v to be outside", p)
			}
		}
	})

	t.Run("inverted box contains nothing", func(t *testing.T) {
		inverted := AABB{Min: mgl64.Vec2{1, -1}, Max: mgl64.Vec2{-1, 1}}

		for _, p := range []mgl64.Vec2{{0, 0}, {1, 0}, {-1, 0}} {
			if inverted.ContainsPoint(p) {
				t.Errorf("inverted box should not contain %v", p)
			}
		}
	})
}

func TestAABBOverlaps(t *testing.T) {
	box := AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{2, 2}}

	t.Run("overlapping boxes", func(t *testing.T) {
		other := AABB{Min: mgl64.Vec2{1, 1}, Max: mgl64.Vec2{3, 3}}
		if !box.Overlaps(other) || !other.Overlaps(box) {
			t.Error("expected boxes to overlap")
		}
	})

	t.Run("touching boxes overlap", func(t *testing.T) {
		other := AABB{Min: mgl64.Vec2{2, 0}, Max: mgl64.Vec2{4, 2}}
		if !box.Overlaps(other) {
			t.Error("expected edge-touching boxes to overlap (inclusive bounds)")
		}
	})

	t.Run("disjoint boxes", func(t *testing.T) {
		other := AABB{Min: mgl64.Vec2{5, 5}, Max: mgl64.Vec2{6, 6}}
		if box.Overlaps(other) {
			t.Error("expected disjoint boxes not to overlap")
		}
	})
}
