// Package engine is the routing and analysis core of the flight planner.
//
// A query builds one immutable Graph from the airport/flight records and
// hands it to exactly one solver: the Dijkstra strategies, the Pareto
// finder, the MST builder or the analyzer. Nothing in this package
// mutates shared state after construction, so graphs and solvers are
// safe to use from concurrent queries.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hamna2004/dsaProjectFinal/internal/domain"
)

// Mode selects the optimization criterion and therefore the edge weight.
type Mode string

const (
	// ModeCheapest weighs edges by ticket price.
	ModeCheapest Mode = "cheapest"
	// ModeFastest weighs edges by flight duration in minutes.
	ModeFastest Mode = "fastest"
	// ModeShortest weighs edges by great-circle distance between the
	// endpoint airports, computed from coordinates on demand.
	ModeShortest Mode = "shortest"
	// ModeBestOverall weighs edges by a min-max normalized composite of
	// price, duration and distance.
	ModeBestOverall Mode = "best_overall"
)

// Composite criterion weights for ModeBestOverall.
const (
	compositePriceWeight    = 0.40
	compositeDurationWeight = 0.35
	compositeDistanceWeight = 0.25
)

// ParseMode maps a request string onto a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeCheapest:
		return ModeCheapest, true
	case ModeFastest:
		return ModeFastest, true
	case ModeShortest:
		return ModeShortest, true
	case ModeBestOverall:
		return ModeBestOverall, true
	}
	return "", false
}

// NormalizeCode canonicalizes an airport code (" lhe " -> "LHE").
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Network bundles the record sets one query operates on. It is the raw
// material for per-mode graphs; the Pareto finder and mode comparison
// build several graphs from the same Network.
type Network struct {
	Airports []domain.Airport
	Flights  []domain.Flight
}

// Graph builds the per-mode graph for this network.
func (n Network) Graph(mode Mode) (*Graph, error) {
	return NewGraph(n.Airports, n.Flights, mode)
}

// Graph is an immutable directed multigraph of airports and flights,
// weighted for a single optimization mode. Adjacency lists are ordered
// by increasing weight, then destination code, then flight number; every
// solver inherits this deterministic tie-break.
type Graph struct {
	mode     Mode
	airports map[string]domain.Airport
	adj      map[string][]domain.Flight
	codes    []string // all airport codes, sorted
	edges    []domain.Flight
	weight   func(domain.Flight) float64
}

// NewGraph builds a graph from the given records. Flights referencing an
// airport absent from the set are dropped (their weight cannot be
// computed without coordinates). A negative price or duration aborts the
// build with ErrNegativeWeight.
func NewGraph(airports []domain.Airport, flights []domain.Flight, mode Mode) (*Graph, error) {
	g := &Graph{
		mode:     mode,
		airports: make(map[string]domain.Airport, len(airports)),
		adj:      make(map[string][]domain.Flight),
	}

	for _, a := range airports {
		code := NormalizeCode(a.Code)
		if code == "" {
			continue
		}
		a.Code = code
		g.airports[code] = a
		g.codes = append(g.codes, code)
	}
	sort.Strings(g.codes)

	kept := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		f.From = NormalizeCode(f.From)
		f.To = NormalizeCode(f.To)
		if _, ok := g.airports[f.From]; !ok {
			continue
		}
		if _, ok := g.airports[f.To]; !ok {
			continue
		}
		if f.PriceUSD < 0 || f.DurationMin < 0 {
			return nil, fmt.Errorf("%w: flight %s %s->%s", ErrNegativeWeight, f.FlightNo, f.From, f.To)
		}
		kept = append(kept, f)
	}

	g.weight = g.weightFn(kept)

	for _, f := range kept {
		g.adj[f.From] = append(g.adj[f.From], f)
	}
	for code := range g.adj {
		edges := g.adj[code]
		sort.Slice(edges, func(i, j int) bool {
			wi, wj := g.weight(edges[i]), g.weight(edges[j])
			if wi != wj {
				return wi < wj
			}
			if edges[i].To != edges[j].To {
				return edges[i].To < edges[j].To
			}
			return edges[i].FlightNo < edges[j].FlightNo
		})
	}
	for _, code := range g.codes {
		g.edges = append(g.edges, g.adj[code]...)
	}

	return g, nil
}

// weightFn builds the mode's weight function. ModeBestOverall needs a
// normalization pass over every edge first, so the closure captures the
// min-max bounds computed here.
func (g *Graph) weightFn(flights []domain.Flight) func(domain.Flight) float64 {
	switch g.mode {
	case ModeFastest:
		return func(f domain.Flight) float64 { return float64(f.DurationMin) }
	case ModeShortest:
		return g.Distance
	case ModeBestOverall:
		var (
			minP, maxP = bounds(flights, func(f domain.Flight) float64 { return f.PriceUSD })
			minD, maxD = bounds(flights, func(f domain.Flight) float64 { return float64(f.DurationMin) })
			minK, maxK = bounds(flights, g.Distance)
		)
		priceRange := span(minP, maxP)
		durRange := span(minD, maxD)
		distRange := span(minK, maxK)
		return func(f domain.Flight) float64 {
			return (f.PriceUSD-minP)/priceRange*compositePriceWeight +
				(float64(f.DurationMin)-minD)/durRange*compositeDurationWeight +
				(g.Distance(f)-minK)/distRange*compositeDistanceWeight
		}
	default: // ModeCheapest
		return func(f domain.Flight) float64 { return f.PriceUSD }
	}
}

func bounds(flights []domain.Flight, metric func(domain.Flight) float64) (lo, hi float64) {
	for i, f := range flights {
		v := metric(f)
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}
	return lo, hi
}

// span guards the normalization divisor against a zero range.
func span(lo, hi float64) float64 {
	if hi > lo {
		return hi - lo
	}
	return 1.0
}

// Mode reports the optimization mode this graph was built for.
func (g *Graph) Mode() Mode { return g.mode }

// HasAirport reports whether the code is part of the airport set.
func (g *Graph) HasAirport(code string) bool {
	_, ok := g.airports[NormalizeCode(code)]
	return ok
}

// Airport looks up an airport record by code.
func (g *Graph) Airport(code string) (domain.Airport, bool) {
	a, ok := g.airports[NormalizeCode(code)]
	return a, ok
}

// Codes returns all airport codes in sorted order.
func (g *Graph) Codes() []string { return g.codes }

// Neighbors returns the outgoing flights of an airport, ordered by
// increasing mode weight, then destination code, then flight number.
func (g *Graph) Neighbors(code string) []domain.Flight {
	return g.adj[NormalizeCode(code)]
}

// Edges returns every flight kept in the graph, grouped by source code
// in sorted order.
func (g *Graph) Edges() []domain.Flight { return g.edges }

// VertexCount is the number of airports, including isolated ones.
func (g *Graph) VertexCount() int { return len(g.codes) }

// EdgeCount is the number of flights kept in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Weight returns the mode-dependent weight of a flight.
func (g *Graph) Weight(f domain.Flight) float64 { return g.weight(f) }

// Distance returns the great-circle distance in kilometers between the
// flight's endpoint airports. It is not stored on the edge.
func (g *Graph) Distance(f domain.Flight) float64 {
	from, ok := g.airports[f.From]
	if !ok {
		return 0
	}
	to, ok := g.airports[f.To]
	if !ok {
		return 0
	}
	return haversine(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

// requireAirports verifies every code is present, wrapping
// ErrUnknownAirport with the offending code.
func (g *Graph) requireAirports(codes ...string) error {
	for _, code := range codes {
		if !g.HasAirport(code) {
			return fmt.Errorf("%w: %s", ErrUnknownAirport, NormalizeCode(code))
		}
	}
	return nil
}
