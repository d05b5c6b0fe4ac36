package rect

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// ErrInvalidGeometry is returned when a rectangle carries non-finite values.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Rect is an oriented rectangle described by a reference point, a heading and
// four independent extents. The extents are measured from the reference point
// along the rectangle's own axes: Front/Rear along local +x/-x, Left/Right
// along local +y/-y. They need not be symmetric, which models a vehicle-shaped
// footprint whose reference point sits off-center.
//
// Negative extents are allowed and shrink or invert that side; they are kept
// as given, never clamped. Heading is in radians and unnormalized, only its
// cosine and sine are ever used.
type Rect struct {
	Center  mgl64.Vec2
	Heading float64
	Front   float64
	Left    float64
	Rear    float64
	Right   float64
}

// New builds a rectangle from its 7 scalar parameters.
func New(cx, cy, heading, front, left, rear, right float64) Rect {
	return Rect{
		Center:  mgl64.Vec2{cx, cy},
		Heading: heading,
		Front:   front,
		Left:    left,
		Rear:    rear,
		Right:   right,
	}
}

// LocalCorners returns the corners in the rectangle's own frame, in the fixed
// order rear-right, front-right, front-left, rear-left. The ordering gives a
// consistent polygon winding and must not change.
func (r Rect) LocalCorners() [4]mgl64.Vec2 {
	return [4]mgl64.Vec2{
		{-r.Rear, -r.Right},
		{r.Front, -r.Right},
		{r.Front, r.Left},
		{-r.Rear, r.Left},
	}
}

// Corners returns the global-frame corners: the local corners rotated by
// Heading and translated by Center, same ordering as LocalCorners.
func (r Rect) Corners() [4]mgl64.Vec2 {
	rotation := mgl64.Rotate2D(r.Heading)

	corners := r.LocalCorners()
	for i, corner := range corners {
		corners[i] = rotation.Mul2x1(corner).Add(r.Center)
	}

	return corners
}

// LocalBounds returns the axis-aligned box spanned by the extents in the
// rectangle's own frame. The bounds are reported as stored: negative extents
// can produce Min > Max on an axis, an inverted box containing nothing.
func (r Rect) LocalBounds() AABB {
	return AABB{
		Min: mgl64.Vec2{-r.Rear, -r.Right},
		Max: mgl64.Vec2{r.Front, r.Left},
	}
}

// Validate reports whether the rectangle is made of finite numbers. Zero or
// negative extents and out-of-range headings are valid; only NaN and ±Inf are
// rejected, with an error rooted in ErrInvalidGeometry.
func (r Rect) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"center x", r.Center.X()},
		{"center y", r.Center.Y()},
		{"heading", r.Heading},
		{"front extent", r.Front},
		{"left extent", r.Left},
		{"rear extent", r.Rear},
		{"right extent", r.Right},
	}

	for _, field := range fields {
		if math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return errors.Wrapf(ErrInvalidGeometry, "%s is %v", field.name, field.value)
		}
	}

	return nil
}
