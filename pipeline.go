package footprint

import (
	"sync"

	"github.com/akmonengine/footprint/scenario"
	"github.com/pkg/errors"
)

const DEFAULT_WORKERS = 1

// Result pairs a scenario with its overlap classification.
type Result struct {
	Scenario scenario.Scenario
	Overlap  bool
}

// Classify runs the tester over every scenario and returns the results in
// generation order, regardless of how the work is scheduled across workers.
// Each scenario is independent, so classification is fanned out over
// max(DEFAULT_WORKERS, workersCount) goroutines writing into per-index slots.
//
// All rectangles are validated up front; a non-finite value aborts the run
// with an error naming the offending 1-based test case.
func Classify(tester Tester, scenarios []scenario.Scenario, workersCount int) ([]Result, error) {
	workersCount = max(DEFAULT_WORKERS, workersCount)

	for i, s := range scenarios {
		if err := s.A.Validate(); err != nil {
			return nil, errors.Wrapf(err, "test case %d: rectangle A", i+1)
		}
		if err := s.B.Validate(); err != nil {
			return nil, errors.Wrapf(err, "test case %d: rectangle B", i+1)
		}
	}

	results := make([]Result, len(scenarios))
	task(workersCount, scenarios, func(i int, s scenario.Scenario) {
		results[i] = Result{Scenario: s, Overlap: tester.Overlaps(s.A, s.B)}
	})

	return results, nil
}

func task[T any](workersCount int, data []T, fn func(i int, data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}
