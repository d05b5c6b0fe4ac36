// Package scenario generates the two-rectangle overlap test corpus: grid
// displacements, asymmetric extent deltas and discrete heading sweeps, in a
// fixed, reproducible order.
package scenario

import (
	"github.com/akmonengine/footprint/rect"
	"github.com/go-gl/mathgl/mgl64"
)

// Scenario is one test case: an ordered, immutable pair of rectangles.
type Scenario struct {
	A rect.Rect
	B rect.Rect
}

// Params flattens the scenario into its 14 scalar parameters, rectangle A
// first, each as (cx, cy, heading, front, left, rear, right).
func (s Scenario) Params() [14]float64 {
	return [14]float64{
		s.A.Center.X(), s.A.Center.Y(), s.A.Heading, s.A.Front, s.A.Left, s.A.Rear, s.A.Right,
		s.B.Center.X(), s.B.Center.Y(), s.B.Heading, s.B.Front, s.B.Left, s.B.Rear, s.B.Right,
	}
}

// Baseline rectangle A: every scenario starts from this pose and footprint,
// shifted by the preset tables below.
const (
	baseX     = 2.0
	baseY     = 4.0
	baseFront = 1.0
	baseLeft  = 1.0
	baseRear  = 1.0
	baseRight = 2.0
)

// The 11 displacement/extent presets. Index i combines a lateral offset for
// both rectangles, a longitudinal offset for rectangle B, and the four extent
// deltas applied to B's footprint. Fixture data, kept verbatim.
var (
	latOffsets  = [...]float64{0, 6, 10, 14, 22, 34, 44, 50, 56, 62, 70}
	lonOffsets  = [...]float64{1, 1, 1, 1, 1, 1, 1, 1, 3, 4, 5}
	frontDeltas = [...]float64{0, 0, 0, 0, 0, 0, -0.5, -0.8, 2.0, 3.0, 4.0}
	leftDeltas  = [...]float64{-0.5, -0.5, -0.5, -0.5, 3.0, 4.0, -0.5, -0.5, 0, 0, 0}
	rearDeltas  = [...]float64{0, 0, -0.5, -0.7, 0, 0, -0.5, -0.8, 2.0, 3.0, 4.0}
	rightDeltas = [...]float64{0, 0, -1.5, -1.7, 2.0, 3.0, 0, 0, -1.0, -1.0, -1.0}
)

const presetCount = len(latOffsets)

// Heading sweep: outer headings for rectangle A and relative offsets added
// for rectangle B, both in degrees. The degenerate (0, 0) pair is skipped.
var (
	sweepHeadings = [...]int{-180, -135, -90, -45, 0, 45, 90, 135}
	sweepOffsets  = [...]int{0, 10, 20, 30}
)

// Generate produces the ordered scenario corpus:
//
//  1. the 11 presets at heading zero, rectangle B one preset-step ahead;
//  2. the same presets with B's lateral displacement biased right (+1);
//  3. biased left (-1);
//  4. with B's longitudinal displacement mirrored about rectangle A;
//  5. the heading sweep, replaying the presets per heading combination with
//     the hand-tuned positional corrections applied.
//
// The output depends only on the compiled-in tables: repeated calls return
// identical corpora in identical order.
func Generate() []Scenario {
	sweepCombos := len(sweepHeadings)*len(sweepOffsets) - 1
	scenarios := make([]Scenario, 0, (4+sweepCombos)*presetCount)

	rx := baseX
	scenarios = appendPresets(scenarios, rx, 0, false)

	// right of centre
	rx += 12
	scenarios = appendPresets(scenarios, rx, 1, false)

	// left of centre
	rx += 12
	scenarios = appendPresets(scenarios, rx, -1, false)

	// mirrored about rectangle A
	rx += 22
	scenarios = appendPresets(scenarios, rx, 0, true)

	for _, headingA := range sweepHeadings {
		for _, offset := range sweepOffsets {
			if headingA == 0 && offset == 0 {
				continue
			}
			rx += 12
			scenarios = appendSweepPresets(scenarios, rx, headingA, offset)
		}
	}

	return scenarios
}

// appendPresets replays the 11 presets at heading zero. latBias shifts
// rectangle B's lateral position; mirrored reflects its longitudinal offset
// about rectangle A's position.
func appendPresets(scenarios []Scenario, rx, latBias float64, mirrored bool) []Scenario {
	for i := 0; i < presetCount; i++ {
		bx := rx + lonOffsets[i]
		if mirrored {
			bx = rx - lonOffsets[i]
		}

		scenarios = append(scenarios, Scenario{
			A: rect.New(rx, baseY+latOffsets[i], 0, baseFront, baseLeft, baseRear, baseRight),
			B: rect.New(bx, baseY+latBias+latOffsets[i], 0,
				baseFront+frontDeltas[i], baseLeft+leftDeltas[i],
				baseRear+rearDeltas[i], baseRight+rightDeltas[i]),
		})
	}

	return scenarios
}

// appendSweepPresets replays the presets for one heading combination,
// applying any positional correction registered for (headingA, offset, i).
func appendSweepPresets(scenarios []Scenario, rx float64, headingA, offset int) []Scenario {
	radA := mgl64.DegToRad(float64(headingA))
	radB := mgl64.DegToRad(float64(headingA + offset))

	for i := 0; i < presetCount; i++ {
		dx, dy := correction(headingA, offset, i)

		scenarios = append(scenarios, Scenario{
			A: rect.New(rx, baseY+latOffsets[i], radA, baseFront, baseLeft, baseRear, baseRight),
			B: rect.New(rx+lonOffsets[i]+dx, baseY+latOffsets[i]+dy, radB,
				baseFront+frontDeltas[i], baseLeft+leftDeltas[i],
				baseRear+rearDeltas[i], baseRight+rightDeltas[i]),
		})
	}

	return scenarios
}
