package engine

import "errors"

// Sentinel errors surfaced by the engine. Handlers translate them to
// HTTP statuses; ErrNoRoute is an expected outcome, not a failure.
var (
	// ErrUnknownAirport reports a code that is not part of the airport set.
	// Distinct from ErrNoRoute: the vertex does not exist at all.
	ErrUnknownAirport = errors.New("engine: unknown airport code")

	// ErrNoRoute reports that the graph was searched to exhaustion and the
	// destination is unreachable from the source.
	ErrNoRoute = errors.New("engine: no route found")

	// ErrNegativeWeight reports a negative edge weight reaching a solver.
	// Dijkstra correctness depends on non-negative weights, so this is an
	// invariant violation that aborts the query.
	ErrNegativeWeight = errors.New("engine: negative edge weight")

	// ErrEmptyGraph reports a query against a graph with no vertices.
	ErrEmptyGraph = errors.New("engine: graph has no vertices")

	// ErrSameAirport reports a query with identical source and destination.
	ErrSameAirport = errors.New("engine: source and destination are the same airport")
)
