package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparePerformance_Seed(t *testing.T) {
	g := seedGraph(t, ModeCheapest)

	cmp, err := ComparePerformance(g, "LHE", "JFK")
	require.NoError(t, err)

	assert.Equal(t, "LHE", cmp.Source)
	assert.Equal(t, "JFK", cmp.Dest)
	assert.Equal(t, 5, cmp.Vertices)
	assert.Equal(t, 7, cmp.Edges)

	require.NotNil(t, cmp.ArrayBased)
	require.NotNil(t, cmp.HeapBased)
	assert.True(t, cmp.ArrayBased.FoundPath)
	assert.True(t, cmp.HeapBased.FoundPath)

	// Same optimum regardless of strategy.
	require.NotNil(t, cmp.ArrayBased.Route)
	require.NotNil(t, cmp.HeapBased.Route)
	assert.Equal(t, cmp.HeapBased.Route.Path, cmp.ArrayBased.Route.Path)
	assert.Equal(t, cmp.HeapBased.Route.TotalPriceUSD, cmp.ArrayBased.Route.TotalPriceUSD)

	assert.Positive(t, cmp.ArrayBased.Operations.Comparisons)
	assert.Positive(t, cmp.HeapBased.Operations.HeapOps)
	assert.GreaterOrEqual(t, cmp.Speedup, 0.0)
}

func TestComparePerformance_NoRouteIsComparable(t *testing.T) {
	n := seedNetwork()
	n.Airports = append(n.Airports, seedNetwork().Airports[0])
	n.Airports[len(n.Airports)-1].Code = "MID"
	g, err := n.Graph(ModeCheapest)
	require.NoError(t, err)

	cmp, err := ComparePerformance(g, "MID", "JFK")
	require.NoError(t, err)

	assert.False(t, cmp.ArrayBased.FoundPath)
	assert.False(t, cmp.HeapBased.FoundPath)
	assert.Nil(t, cmp.ArrayBased.Route)
	assert.Nil(t, cmp.HeapBased.Route)
}

func TestComparePerformance_UnknownAirport(t *testing.T) {
	g := seedGraph(t, ModeCheapest)

	_, err := ComparePerformance(g, "LHE", "ZZZ")
	assert.ErrorIs(t, err, ErrUnknownAirport)
}

func TestCompareModes_Seed(t *testing.T) {
	cmp, err := CompareModes(seedNetwork(), "LHE", "JFK")
	require.NoError(t, err)

	require.NotNil(t, cmp.Cheapest)
	require.NotNil(t, cmp.Fastest)
	require.NotNil(t, cmp.Shortest)
	require.NotNil(t, cmp.BestOverall)

	assert.Equal(t, []string{"LHE", "DXB", "DOH", "JFK"}, cmp.Cheapest.Path)
	assert.Equal(t, []string{"LHE", "DOH", "JFK"}, cmp.Fastest.Path)
	assert.Equal(t, []string{"LHE", "JFK"}, cmp.Shortest.Path)

	assert.Contains(t, []string{
		string(ModeCheapest), string(ModeFastest), string(ModeShortest), string(ModeBestOverall),
	}, cmp.Recommended)
}

func TestCompareModes_NoRoute(t *testing.T) {
	n := seedNetwork()
	n.Airports = append(n.Airports, seedNetwork().Airports[0])
	n.Airports[len(n.Airports)-1].Code = "MID"

	_, err := CompareModes(n, "MID", "JFK")
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrUnknownAirport))
	assert.True(t, IsNotFound(ErrNoRoute))
	assert.False(t, IsNotFound(ErrSameAirport))
	assert.False(t, IsNotFound(nil))
}
