package planner

import (
	"context"

	"github.com/hamna2004/dsaProjectFinal/internal/domain"
	"github.com/hamna2004/dsaProjectFinal/internal/engine"
	"github.com/hamna2004/dsaProjectFinal/internal/repository"
)

type PlannerUseCase interface {
	FindRoute(ctx context.Context, source, dest string, mode engine.Mode, maxStops int) (*engine.Route, error)
	AllRoutes(ctx context.Context, source, dest string, maxStops int) ([]*engine.Route, error)
	CompareModes(ctx context.Context, source, dest string) (*engine.ModeComparison, error)
	Pareto(ctx context.Context, source, dest string) (*engine.ParetoResult, error)
	SimulateDijkstra(ctx context.Context, input SimulationInput) (*DijkstraSimulation, error)
	SimulateMST(ctx context.Context, source, dest string, alg engine.MSTAlgorithm, maxStates int) (*MSTSimulation, error)
	ComparePerformance(ctx context.Context, source, dest string, mode engine.Mode) (*engine.PerformanceComparison, error)
	Stats(ctx context.Context, mode engine.Mode) (*engine.GraphStats, error)
	AdjacencyList(ctx context.Context) (map[string][]engine.AdjacencyEntry, error)
	AdjacencyMatrix(ctx context.Context) (*engine.MatrixView, error)
	Components(ctx context.Context) ([][]string, error)
	RouteAnalysis(ctx context.Context, source, dest string, maxHops int) (*engine.SubgraphAnalysis, error)
}

type Cache interface {
	GetAirports(ctx context.Context) ([]domain.Airport, error)
	SetAirports(ctx context.Context, airports []domain.Airport) error
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

// PlannerService answers routing and analysis queries. Every query
// builds its graphs from one network snapshot loaded through the
// cache, so a sync landing mid-query cannot produce a mixed view.
type PlannerService struct {
	airports      repository.AirportRepository
	flights       repository.FlightRepository
	cache         Cache
	defaultStates int
	maxStates     int
}

// SimulationInput parameterizes a traced Dijkstra run.
type SimulationInput struct {
	Source    string
	Dest      string
	Mode      engine.Mode
	Strategy  engine.Strategy
	MaxStates int
}

// DijkstraSimulation is a replayable search trace plus its outcome.
type DijkstraSimulation struct {
	States   []engine.SearchState `json:"states"`
	Route    *engine.Route        `json:"route,omitempty"`
	Found    bool                 `json:"found"`
	Counters engine.Counters      `json:"operations"`
}

// MSTSimulation is a replayable MST construction trace plus the tree.
type MSTSimulation struct {
	States []engine.MSTState `json:"states"`
	Result *engine.MSTResult `json:"result"`
}

func NewPlannerService(
	airports repository.AirportRepository,
	flights repository.FlightRepository,
	cache Cache,
	defaultStates, maxStates int,
) *PlannerService {
	return &PlannerService{
		airports:      airports,
		flights:       flights,
		cache:         cache,
		defaultStates: defaultStates,
		maxStates:     maxStates,
	}
}

// loadNetwork assembles the record snapshot for one query, cache-aside.
func (s *PlannerService) loadNetwork(ctx context.Context) (engine.Network, error) {
	var n engine.Network

	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			n.Airports = cached
		}
	}
	if n.Airports == nil {
		airports, err := s.airports.List(ctx)
		if err != nil {
			return engine.Network{}, err
		}
		n.Airports = airports
		if s.cache != nil {
			_ = s.cache.SetAirports(ctx, airports)
		}
	}

	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			n.Flights = cached
		}
	}
	if n.Flights == nil {
		flights, err := s.flights.List(ctx)
		if err != nil {
			return engine.Network{}, err
		}
		n.Flights = flights
		if s.cache != nil {
			_ = s.cache.SetFlights(ctx, flights)
		}
	}

	return n, nil
}

func (s *PlannerService) graph(ctx context.Context, mode engine.Mode) (*engine.Graph, error) {
	n, err := s.loadNetwork(ctx)
	if err != nil {
		return nil, err
	}
	return n.Graph(mode)
}

// FindRoute returns the optimal route under the mode. When the optimum
// uses more stops than allowed, the best admissible route is picked
// from the bounded enumeration instead; no admissible route at all is
// ErrNoRoute.
func (s *PlannerService) FindRoute(ctx context.Context, source, dest string, mode engine.Mode, maxStops int) (*engine.Route, error) {
	g, err := s.graph(ctx, mode)
	if err != nil {
		return nil, err
	}

	route, err := engine.FindRoute(g, source, dest, nil)
	if err != nil {
		return nil, err
	}
	if route.Stops <= maxStops {
		return route, nil
	}

	candidates, err := engine.EnumerateRoutes(g, source, dest, maxStops)
	if err != nil {
		return nil, err
	}
	var best *engine.Route
	var bestWeight float64
	for _, r := range candidates {
		w := routeWeight(g, r)
		if best == nil || w < bestWeight {
			best, bestWeight = r, w
		}
	}
	if best == nil {
		return nil, engine.ErrNoRoute
	}
	return best, nil
}

func routeWeight(g *engine.Graph, r *engine.Route) float64 {
	var w float64
	for _, leg := range r.Legs {
		w += g.Weight(leg)
	}
	return w
}

func (s *PlannerService) AllRoutes(ctx context.Context, source, dest string, maxStops int) ([]*engine.Route, error) {
	g, err := s.graph(ctx, engine.ModeCheapest)
	if err != nil {
		return nil, err
	}
	return engine.EnumerateRoutes(g, source, dest, maxStops)
}

func (s *PlannerService) CompareModes(ctx context.Context, source, dest string) (*engine.ModeComparison, error) {
	n, err := s.loadNetwork(ctx)
	if err != nil {
		return nil, err
	}
	return engine.CompareModes(n, source, dest)
}

func (s *PlannerService) Pareto(ctx context.Context, source, dest string) (*engine.ParetoResult, error) {
	n, err := s.loadNetwork(ctx)
	if err != nil {
		return nil, err
	}
	return engine.FindPareto(n, source, dest)
}

func (s *PlannerService) SimulateDijkstra(ctx context.Context, input SimulationInput) (*DijkstraSimulation, error) {
	g, err := s.graph(ctx, input.Mode)
	if err != nil {
		return nil, err
	}

	rec := engine.NewRecorder[engine.SearchState](s.clampStates(input.MaxStates))
	res, err := engine.Solve(g, input.Strategy, input.Source, input.Dest, rec)
	if err != nil {
		return nil, err
	}

	sim := &DijkstraSimulation{
		States:   rec.States(),
		Found:    res.Found,
		Counters: res.Counters,
	}
	if res.Found {
		route, err := engine.FindRoute(g, input.Source, input.Dest, nil)
		if err != nil {
			return nil, err
		}
		sim.Route = route
	}
	return sim, nil
}

func (s *PlannerService) SimulateMST(ctx context.Context, source, dest string, alg engine.MSTAlgorithm, maxStates int) (*MSTSimulation, error) {
	g, err := s.graph(ctx, engine.ModeCheapest)
	if err != nil {
		return nil, err
	}

	rec := engine.NewRecorder[engine.MSTState](s.clampStates(maxStates))
	result, err := engine.SolveMST(g, source, dest, alg, rec)
	if err != nil {
		return nil, err
	}
	return &MSTSimulation{States: rec.States(), Result: result}, nil
}

func (s *PlannerService) ComparePerformance(ctx context.Context, source, dest string, mode engine.Mode) (*engine.PerformanceComparison, error) {
	g, err := s.graph(ctx, mode)
	if err != nil {
		return nil, err
	}
	return engine.ComparePerformance(g, source, dest)
}

func (s *PlannerService) Stats(ctx context.Context, mode engine.Mode) (*engine.GraphStats, error) {
	g, err := s.graph(ctx, mode)
	if err != nil {
		return nil, err
	}
	stats := g.Stats()
	return &stats, nil
}

func (s *PlannerService) AdjacencyList(ctx context.Context) (map[string][]engine.AdjacencyEntry, error) {
	g, err := s.graph(ctx, engine.ModeCheapest)
	if err != nil {
		return nil, err
	}
	return g.AdjacencyList(), nil
}

func (s *PlannerService) AdjacencyMatrix(ctx context.Context) (*engine.MatrixView, error) {
	g, err := s.graph(ctx, engine.ModeCheapest)
	if err != nil {
		return nil, err
	}
	view := g.AdjacencyMatrix()
	return &view, nil
}

func (s *PlannerService) Components(ctx context.Context) ([][]string, error) {
	g, err := s.graph(ctx, engine.ModeCheapest)
	if err != nil {
		return nil, err
	}
	return g.Components(), nil
}

func (s *PlannerService) RouteAnalysis(ctx context.Context, source, dest string, maxHops int) (*engine.SubgraphAnalysis, error) {
	g, err := s.graph(ctx, engine.ModeCheapest)
	if err != nil {
		return nil, err
	}
	return g.RouteSubgraph(source, dest, maxHops)
}

// clampStates keeps a requested trace size inside the configured
// ceiling; an absent or non-positive request falls back to the
// configured default.
func (s *PlannerService) clampStates(requested int) int {
	if requested <= 0 {
		return s.defaultStates
	}
	if requested > s.maxStates {
		return s.maxStates
	}
	return requested
}

var _ PlannerUseCase = (*PlannerService)(nil)
