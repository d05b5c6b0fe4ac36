package footprint

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/akmonengine/footprint/rect"
	"github.com/akmonengine/footprint/scenario"
)

func buildScenarios(count int) []scenario.Scenario {
	scenarios := make([]scenario.Scenario, count)
	for i := range scenarios {
		// Every other pair overlaps; the offset makes each scenario unique.
		offset := float64(i) * 10
		gap := 0.5
		if i%2 == 1 {
			gap = 50
		}
		scenarios[i] = scenario.Scenario{
			A: rect.New(offset, 0, 0, 1, 1, 1, 1),
			B: rect.New(offset+1+gap, 0, 0, 1, 1, 1, 1),
		}
	}
	return scenarios
}

func TestClassify(t *testing.T) {
	t.Run("preserves generation order", func(t *testing.T) {
		scenarios := buildScenarios(37)

		results, err := Classify(Heuristic{}, scenarios, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != len(scenarios) {
			t.Fatalf("expected %d results, got %d", len(scenarios), len(results))
		}

		for i, result := range results {
			if result.Scenario != scenarios[i] {
				t.Fatalf("result %d does not match scenario %d", i, i)
			}
			expected := i%2 == 0
			if result.Overlap != expected {
				t.Errorf("result %d: expected overlap=%v, got %v", i, expected, result.Overlap)
			}
		}
	})

	t.Run("single worker matches many workers", func(t *testing.T) {
		scenarios := buildScenarios(11)

		sequential, err := Classify(Heuristic{}, scenarios, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parallel, err := Classify(Heuristic{}, scenarios, 8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i := range sequential {
			if sequential[i] != parallel[i] {
				t.Fatalf("result %d differs between worker counts", i)
			}
		}
	})

	t.Run("zero workers defaults to one", func(t *testing.T) {
		results, err := Classify(Exact{}, buildScenarios(3), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(results))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		results, err := Classify(Heuristic{}, nil, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected no results, got %d", len(results))
		}
	})

	t.Run("non-finite rectangle aborts with the test case index", func(t *testing.T) {
		scenarios := buildScenarios(3)
		scenarios[1].B.Front = math.NaN()

		_, err := Classify(Heuristic{}, scenarios, 2)
		if err == nil {
			t.Fatal("expected an error for NaN extent")
		}
		if !errors.Is(err, rect.ErrInvalidGeometry) {
			t.Errorf("expected ErrInvalidGeometry, got %v", err)
		}
		if !strings.Contains(err.Error(), "test case 2") {
			t.Errorf("expected the error to name test case 2, got %q", err.Error())
		}
	})
}
