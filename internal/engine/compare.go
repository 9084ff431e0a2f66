package engine

import (
	"errors"
	"time"
)

// StrategyReport summarizes one Dijkstra run for the side-by-side
// benchmark endpoint.
type StrategyReport struct {
	Strategy        Strategy `json:"strategy"`
	ExecutionTimeMS float64  `json:"execution_time_ms"`
	Operations      Counters `json:"operations"`
	FoundPath       bool     `json:"found_path"`
	Route           *Route   `json:"route,omitempty"`
}

// PerformanceComparison pits the array scan against the binary heap on
// the same query. Speedup is array time over heap time; below 1.0 the
// array scan won, which is common on small graphs.
type PerformanceComparison struct {
	Source     string          `json:"source"`
	Dest       string          `json:"dest"`
	Vertices   int             `json:"vertices"`
	Edges      int             `json:"edges"`
	ArrayBased *StrategyReport `json:"array_based"`
	HeapBased  *StrategyReport `json:"heap_based"`
	Speedup    float64         `json:"speedup"`
}

// ComparePerformance runs both Dijkstra strategies on the same query
// and reports wall-clock time and operation counts for each. Both runs
// must agree on whether a path exists; an unreachable destination is
// still a comparable result, not an error.
func ComparePerformance(g *Graph, source, dest string) (*PerformanceComparison, error) {
	array, err := timedRun(g, StrategyArray, source, dest)
	if err != nil {
		return nil, err
	}
	heap, err := timedRun(g, StrategyHeap, source, dest)
	if err != nil {
		return nil, err
	}

	speedup := 0.0
	if heap.ExecutionTimeMS > 0 {
		speedup = array.ExecutionTimeMS / heap.ExecutionTimeMS
	}
	return &PerformanceComparison{
		Source:     NormalizeCode(source),
		Dest:       NormalizeCode(dest),
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		ArrayBased: array,
		HeapBased:  heap,
		Speedup:    round4(speedup),
	}, nil
}

func timedRun(g *Graph, strategy Strategy, source, dest string) (*StrategyReport, error) {
	start := time.Now()
	res, err := Solve(g, strategy, source, dest, nil)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	report := &StrategyReport{
		Strategy:        strategy,
		ExecutionTimeMS: round4(float64(elapsed.Nanoseconds()) / 1e6),
		Operations:      res.Counters,
		FoundPath:       res.Found,
	}
	if res.Found {
		route, err := reconstruct(g, res)
		if err != nil {
			return nil, err
		}
		report.Route = route
	}
	return report, nil
}

// ModeComparison holds the optimal route under every single-criterion
// mode plus the composite recommendation, for the "all" optimization
// mode of the find endpoint.
type ModeComparison struct {
	Cheapest    *Route `json:"cheapest,omitempty"`
	Fastest     *Route `json:"fastest,omitempty"`
	Shortest    *Route `json:"shortest,omitempty"`
	BestOverall *Route `json:"best_overall,omitempty"`
	// Recommended names the single-criterion mode whose route matches
	// the composite winner, or "best_overall" when none does.
	Recommended string `json:"recommended"`
}

// CompareModes solves the same query under every optimization mode.
// A destination unreachable under one mode is unreachable under all of
// them, so ErrNoRoute propagates as-is.
func CompareModes(n Network, source, dest string) (*ModeComparison, error) {
	solve := func(mode Mode) (*Route, error) {
		g, err := n.Graph(mode)
		if err != nil {
			return nil, err
		}
		return FindRoute(g, source, dest, nil)
	}

	cheapest, err := solve(ModeCheapest)
	if err != nil {
		return nil, err
	}
	fastest, err := solve(ModeFastest)
	if err != nil {
		return nil, err
	}
	shortest, err := solve(ModeShortest)
	if err != nil {
		return nil, err
	}
	best, err := solve(ModeBestOverall)
	if err != nil {
		return nil, err
	}

	cmp := &ModeComparison{
		Cheapest:    cheapest,
		Fastest:     fastest,
		Shortest:    shortest,
		BestOverall: best,
		Recommended: string(ModeBestOverall),
	}
	switch pathKey(best) {
	case pathKey(cheapest):
		cmp.Recommended = string(ModeCheapest)
	case pathKey(fastest):
		cmp.Recommended = string(ModeFastest)
	case pathKey(shortest):
		cmp.Recommended = string(ModeShortest)
	}
	return cmp, nil
}

// IsNotFound reports whether err maps to a 404 at the API boundary.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownAirport) || errors.Is(err, ErrNoRoute)
}
