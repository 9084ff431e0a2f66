package engine

import (
	"fmt"
	"math"

	"github.com/hamna2004/dsaProjectFinal/internal/domain"
)

// Route is an ordered itinerary between two airports. Total fields are
// always the sums over the legs; Stops is len(Path)-2.
type Route struct {
	Path             []string        `json:"path"`
	Legs             []domain.Flight `json:"legs"`
	TotalPriceUSD    float64         `json:"total_price_usd"`
	TotalDurationMin int             `json:"total_duration_min"`
	TotalDistanceKM  float64         `json:"total_distance_km"`
	Stops            int             `json:"stops"`
}

// newRoute assembles a Route from consecutive legs, computing the leg
// distances from airport coordinates.
func (g *Graph) newRoute(legs []domain.Flight) *Route {
	r := &Route{
		Path:  make([]string, 0, len(legs)+1),
		Legs:  legs,
		Stops: len(legs) - 1,
	}
	for _, f := range legs {
		r.Path = append(r.Path, f.From)
		r.TotalPriceUSD += f.PriceUSD
		r.TotalDurationMin += f.DurationMin
		r.TotalDistanceKM += g.Distance(f)
	}
	r.Path = append(r.Path, legs[len(legs)-1].To)
	r.TotalDistanceKM = math.Round(r.TotalDistanceKM*100) / 100
	return r
}

// reconstruct walks the parent pointers backwards from the destination.
// Absence of the destination from came_from is definitive: tentative
// infinite costs are never finalized, so a missing entry means
// unreachable, not "reachable at cost infinity".
func reconstruct(g *Graph, res *SearchResult) (*Route, error) {
	if !res.Found {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoRoute, res.Source, res.Dest)
	}
	var legs []domain.Flight
	for cur := res.Dest; cur != res.Source; {
		f, ok := res.EdgeTo[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrNoRoute, res.Source, res.Dest)
		}
		legs = append(legs, f)
		cur = res.CameFrom[cur]
	}
	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}
	return g.newRoute(legs), nil
}

// FindRoute computes the optimal route between two airports under the
// graph's mode using the heap Dijkstra strategy. rec may be nil.
func FindRoute(g *Graph, source, dest string, rec *Recorder[SearchState]) (*Route, error) {
	res, err := Solve(g, StrategyHeap, source, dest, rec)
	if err != nil {
		return nil, err
	}
	return reconstruct(g, res)
}

// EnumerateRoutes lists every simple path from source to dest with at
// most maxStops intermediate airports, in the deterministic order
// induced by the adjacency lists. Parallel flights over the same airport
// path yield distinct routes.
func EnumerateRoutes(g *Graph, source, dest string, maxStops int) ([]*Route, error) {
	source, dest = NormalizeCode(source), NormalizeCode(dest)
	if err := g.requireAirports(source, dest); err != nil {
		return nil, err
	}
	if source == dest {
		return nil, ErrSameAirport
	}

	var (
		routes []*Route
		legs   []domain.Flight
		onPath = map[string]bool{source: true}
		walk   func(current string, stopsLeft int)
	)
	walk = func(current string, stopsLeft int) {
		if current == dest {
			taken := make([]domain.Flight, len(legs))
			copy(taken, legs)
			routes = append(routes, g.newRoute(taken))
			return
		}
		if stopsLeft < 0 {
			return
		}
		for _, f := range g.Neighbors(current) {
			if onPath[f.To] {
				continue
			}
			onPath[f.To] = true
			legs = append(legs, f)
			walk(f.To, stopsLeft-1)
			legs = legs[:len(legs)-1]
			onPath[f.To] = false
		}
	}
	walk(source, maxStops)
	return routes, nil
}
