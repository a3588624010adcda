package sudoku

import (
	"time"

	"github.com/gitrdm/gridlogic/pkg/solver"
)

// Solve translates the request, runs the engine, and packages the verdict.
func Solve(req Request) (Response, error) {
	b, err := build(req)
	if err != nil {
		return Response{}, err
	}

	var breadcrumbs []string
	var rep solver.Reporter = solver.NopReporter{}
	if req.Config.Breadcrumbs {
		rep = solver.NewTraceReporter(b.variableNames, b.constraintNames,
			solver.CollectSink(&breadcrumbs))
	}

	cfg := solver.Config{Greedy: req.Config.Greedy, MaxDepth: req.Config.MaxDepth}

	start := time.Now()
	result, final := solver.Solve(b.domains, b.constraints, cfg, rep)
	elapsed := time.Since(start)

	domains := make(map[string][]int, len(final))
	for id, domain := range final {
		domains[b.variableNames[id]] = domain.Values()
	}
	return Response{
		Result:      result.String(),
		Domains:     domains,
		DurationMS:  elapsed.Milliseconds(),
		Breadcrumbs: breadcrumbs,
	}, nil
}

// FromGrid converts a 9x9 grid with 0 for blanks into the request's
// per-cell candidate lists.
func FromGrid(grid [9][9]int) map[string][]int {
	domains := make(map[string][]int, 81)
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			if d := grid[r-1][c-1]; d != 0 {
				domains[cellName(r, c)] = []int{d}
			} else {
				domains[cellName(r, c)] = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
			}
		}
	}
	return domains
}

// ToGrid extracts a solved response into a 9x9 grid; unsolved cells are 0.
func ToGrid(domains map[string][]int) [9][9]int {
	var grid [9][9]int
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			if digits := domains[cellName(r, c)]; len(digits) == 1 {
				grid[r-1][c-1] = digits[0]
			}
		}
	}
	return grid
}
