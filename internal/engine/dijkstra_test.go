package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamna2004/dsaProjectFinal/internal/domain"
)

func TestFindRoute_CheapestSeedExample(t *testing.T) {
	g := seedGraph(t, ModeCheapest)

	route, err := FindRoute(g, "LHE", "JFK", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"LHE", "DXB", "DOH", "JFK"}, route.Path)
	assert.Equal(t, 600.0, route.TotalPriceUSD)
	assert.Equal(t, 675, route.TotalDurationMin)
	assert.Equal(t, 2, route.Stops)
}

func TestFindRoute_FastestSeedExample(t *testing.T) {
	g := seedGraph(t, ModeFastest)

	route, err := FindRoute(g, "LHE", "JFK", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"LHE", "DOH", "JFK"}, route.Path)
	assert.Equal(t, 600, route.TotalDurationMin)
	assert.Equal(t, 700.0, route.TotalPriceUSD)
	assert.Equal(t, 1, route.Stops)
}

func TestFindRoute_ShortestPrefersDirect(t *testing.T) {
	g := seedGraph(t, ModeShortest)

	route, err := FindRoute(g, "LHE", "JFK", nil)
	require.NoError(t, err)

	// Great-circle distances obey the triangle inequality, so the
	// direct flight is always the shortest itinerary when one exists.
	assert.Equal(t, []string{"LHE", "JFK"}, route.Path)
	assert.Equal(t, "PK999", route.Legs[0].FlightNo)
}

func TestSolve_StrategiesAgree(t *testing.T) {
	for _, mode := range []Mode{ModeCheapest, ModeFastest, ModeShortest, ModeBestOverall} {
		g := seedGraph(t, mode)

		heapRes, err := Solve(g, StrategyHeap, "LHE", "JFK", nil)
		require.NoError(t, err)
		arrayRes, err := Solve(g, StrategyArray, "LHE", "JFK", nil)
		require.NoError(t, err)

		assert.Equal(t, heapRes.Found, arrayRes.Found, "mode %s", mode)
		assert.Equal(t, heapRes.Dist, arrayRes.Dist, "mode %s", mode)
		assert.Equal(t, heapRes.CameFrom, arrayRes.CameFrom, "mode %s", mode)
	}
}

func TestSolve_CountersPerStrategy(t *testing.T) {
	g := seedGraph(t, ModeCheapest)

	heapRes, err := Solve(g, StrategyHeap, "LHE", "JFK", nil)
	require.NoError(t, err)
	assert.Positive(t, heapRes.Counters.ExtractMinOps)
	assert.Positive(t, heapRes.Counters.RelaxOps)
	assert.Positive(t, heapRes.Counters.HeapOps)
	assert.Zero(t, heapRes.Counters.Comparisons)

	arrayRes, err := Solve(g, StrategyArray, "LHE", "JFK", nil)
	require.NoError(t, err)
	assert.Positive(t, arrayRes.Counters.ExtractMinOps)
	assert.Positive(t, arrayRes.Counters.RelaxOps)
	assert.Positive(t, arrayRes.Counters.Comparisons)
	assert.Zero(t, arrayRes.Counters.HeapOps)
}

func TestSolve_UnknownAirport(t *testing.T) {
	g := seedGraph(t, ModeCheapest)

	_, err := Solve(g, StrategyHeap, "LHE", "ZZZ", nil)
	assert.ErrorIs(t, err, ErrUnknownAirport)

	_, err = Solve(g, StrategyArray, "ZZZ", "JFK", nil)
	assert.ErrorIs(t, err, ErrUnknownAirport)
}

func TestSolve_SameAirport(t *testing.T) {
	g := seedGraph(t, ModeCheapest)

	_, err := Solve(g, StrategyHeap, "LHE", "lhe", nil)
	assert.ErrorIs(t, err, ErrSameAirport)
}

func TestFindRoute_NoRoute(t *testing.T) {
	n := seedNetwork()
	// MID exists but has no outgoing flights.
	n.Airports = append(n.Airports, domain.Airport{ID: 6, Code: "MID", Latitude: 20.0, Longitude: 40.0})
	g, err := n.Graph(ModeCheapest)
	require.NoError(t, err)

	for _, strategy := range []Strategy{StrategyHeap, StrategyArray} {
		res, err := Solve(g, strategy, "MID", "JFK", nil)
		require.NoError(t, err)
		assert.False(t, res.Found, "strategy %s", strategy)
	}

	_, err = FindRoute(g, "MID", "JFK", nil)
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestSolve_PathReconstructionTerminatesAtSource(t *testing.T) {
	g := seedGraph(t, ModeCheapest)

	res, err := Solve(g, StrategyHeap, "LHE", "JFK", nil)
	require.NoError(t, err)
	require.True(t, res.Found)

	var reversed []string
	for cur := "JFK"; cur != "LHE"; cur = res.CameFrom[cur] {
		reversed = append(reversed, cur)
	}
	reversed = append(reversed, "LHE")

	route, err := reconstruct(g, res)
	require.NoError(t, err)
	for i, code := range route.Path {
		assert.Equal(t, code, reversed[len(reversed)-1-i])
	}
}

func TestSolve_TraceRespectsCap(t *testing.T) {
	g := seedGraph(t, ModeCheapest)

	rec := NewRecorder[SearchState](3)
	_, err := Solve(g, StrategyHeap, "LHE", "JFK", rec)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(rec.States()), 3)
}

func TestSolve_CapDoesNotChangeResult(t *testing.T) {
	g := seedGraph(t, ModeCheapest)

	capped := NewRecorder[SearchState](1)
	unlimited := NewRecorder[SearchState](1000)

	cappedRes, err := Solve(g, StrategyHeap, "LHE", "JFK", capped)
	require.NoError(t, err)
	fullRes, err := Solve(g, StrategyHeap, "LHE", "JFK", unlimited)
	require.NoError(t, err)

	assert.Equal(t, fullRes.Dist, cappedRes.Dist)
	assert.Equal(t, fullRes.CameFrom, cappedRes.CameFrom)
	assert.Equal(t, fullRes.Counters, cappedRes.Counters)
	assert.Greater(t, len(unlimited.States()), len(capped.States()))
}

func TestSolve_TraceStepsAreSequential(t *testing.T) {
	g := seedGraph(t, ModeFastest)

	rec := NewRecorder[SearchState](1000)
	_, err := Solve(g, StrategyArray, "LHE", "JFK", rec)
	require.NoError(t, err)

	states := rec.States()
	require.NotEmpty(t, states)
	for i, st := range states {
		assert.Equal(t, i, st.Step)
	}
}
