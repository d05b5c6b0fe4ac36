package footprint

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/akmonengine/footprint/rect"
	"github.com/akmonengine/footprint/scenario"
	"github.com/go-gl/mathgl/mgl64"
)

// Label returns the printable classification label for a result.
func Label(overlap bool) string {
	if overlap {
		return "Overlap"
	}
	return "No Overlap"
}

// RenderResults writes one "Test case N: Overlap|No Overlap" line per result,
// N being 1-based. The [startID, stopID] window is honored the way the range
// rendering defines it: indices below startID are skipped, and rendering
// breaks after processing index stopID, inclusive. A stopID at or beyond the
// last index renders through the end.
func RenderResults(w io.Writer, results []Result, startID, stopID int) error {
	for i, result := range results {
		if i < startID {
			continue
		}
		if _, err := fmt.Fprintf(w, "Test case %d: %s\n", i+1, Label(result.Overlap)); err != nil {
			return err
		}
		if i == stopID {
			break
		}
	}

	return nil
}

var csvHeader = []string{
	"cx1", "cy1", "o1", "lf1", "wl1", "lr1", "wr1",
	"cx2", "cy2", "o2", "lf2", "wl2", "lr2", "wr2",
}

// WriteCSV exports the scenario parameters, one row of 14 columns per
// scenario, in generation order.
func WriteCSV(w io.Writer, scenarios []scenario.Scenario) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, s := range scenarios {
		params := s.Params()
		record := make([]string, len(params))
		for i, v := range params {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Outline returns the rectangle's corner ring closed by repeating the first
// corner, ready for handing to a plotting collaborator.
func Outline(r rect.Rect) []mgl64.Vec2 {
	corners := r.Corners()
	return []mgl64.Vec2{corners[0], corners[1], corners[2], corners[3], corners[0]}
}
