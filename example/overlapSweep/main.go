package main

import (
	"fmt"
	"os"

	"github.com/akmonengine/footprint"
	"github.com/akmonengine/footprint/scenario"
)

// Generates the sweep corpus, classifies it with the corner-containment
// heuristic, and prints one line per test case. Pass a file path to also
// export the scenario parameters as CSV. Test cases where the heuristic and
// the exact tester disagree are listed at the end.
func main() {
	scenarios := scenario.Generate()

	heuristic, err := footprint.Classify(footprint.Heuristic{}, scenarios, 4)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	startID := 0
	stopID := len(heuristic)
	if err := footprint.RenderResults(os.Stdout, heuristic, startID, stopID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	exact, err := footprint.Classify(footprint.Exact{}, scenarios, 4)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i := range heuristic {
		if heuristic[i].Overlap != exact[i].Overlap {
			fmt.Printf("Test case %d: heuristic says %s, exact says %s\n",
				i+1, footprint.Label(heuristic[i].Overlap), footprint.Label(exact[i].Overlap))
		}
	}

	if len(os.Args) > 1 {
		f, err := os.Create(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()

		if err := footprint.WriteCSV(f, scenarios); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
