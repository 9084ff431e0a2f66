package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hamna2004/dsaProjectFinal/internal/engine"
	"github.com/hamna2004/dsaProjectFinal/internal/service/planner"
)

// MockPlannerUseCase is a mock implementation of planner.PlannerUseCase.
type MockPlannerUseCase struct {
	mock.Mock
}

func (m *MockPlannerUseCase) FindRoute(ctx context.Context, source, dest string, mode engine.Mode, maxStops int) (*engine.Route, error) {
	args := m.Called(ctx, source, dest, mode, maxStops)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.Route), args.Error(1)
}

func (m *MockPlannerUseCase) AllRoutes(ctx context.Context, source, dest string, maxStops int) ([]*engine.Route, error) {
	args := m.Called(ctx, source, dest, maxStops)
	return args.Get(0).([]*engine.Route), args.Error(1)
}

func (m *MockPlannerUseCase) CompareModes(ctx context.Context, source, dest string) (*engine.ModeComparison, error) {
	args := m.Called(ctx, source, dest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.ModeComparison), args.Error(1)
}

func (m *MockPlannerUseCase) Pareto(ctx context.Context, source, dest string) (*engine.ParetoResult, error) {
	args := m.Called(ctx, source, dest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.ParetoResult), args.Error(1)
}

func (m *MockPlannerUseCase) SimulateDijkstra(ctx context.Context, input planner.SimulationInput) (*planner.DijkstraSimulation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planner.DijkstraSimulation), args.Error(1)
}

func (m *MockPlannerUseCase) SimulateMST(ctx context.Context, source, dest string, alg engine.MSTAlgorithm, maxStates int) (*planner.MSTSimulation, error) {
	args := m.Called(ctx, source, dest, alg, maxStates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planner.MSTSimulation), args.Error(1)
}

func (m *MockPlannerUseCase) ComparePerformance(ctx context.Context, source, dest string, mode engine.Mode) (*engine.PerformanceComparison, error) {
	args := m.Called(ctx, source, dest, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.PerformanceComparison), args.Error(1)
}

func (m *MockPlannerUseCase) Stats(ctx context.Context, mode engine.Mode) (*engine.GraphStats, error) {
	args := m.Called(ctx, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.GraphStats), args.Error(1)
}

func (m *MockPlannerUseCase) AdjacencyList(ctx context.Context) (map[string][]engine.AdjacencyEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string][]engine.AdjacencyEntry), args.Error(1)
}

func (m *MockPlannerUseCase) AdjacencyMatrix(ctx context.Context) (*engine.MatrixView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.MatrixView), args.Error(1)
}

func (m *MockPlannerUseCase) Components(ctx context.Context) ([][]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([][]string), args.Error(1)
}

func (m *MockPlannerUseCase) RouteAnalysis(ctx context.Context, source, dest string, maxHops int) (*engine.SubgraphAnalysis, error) {
	args := m.Called(ctx, source, dest, maxHops)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.SubgraphAnalysis), args.Error(1)
}

func plannerRouter(service planner.PlannerUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewPlannerHandler(service, 4).Register(router.Group("/api"))
	return router
}

func TestPlannerHandler_findRoute(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	route := &engine.Route{Path: []string{"LHE", "DXB", "DOH", "JFK"}, TotalPriceUSD: 600, TotalDurationMin: 675, Stops: 2}
	mockService.On("FindRoute", mock.Anything, "LHE", "JFK", engine.ModeCheapest, 4).Return(route, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/routes/find?source=LHE&dest=JFK", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "cheapest", body["optimization"])
	mockService.AssertExpectations(t)
}

func TestPlannerHandler_findRoute_AllModes(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	cmp := &engine.ModeComparison{Recommended: "cheapest"}
	mockService.On("CompareModes", mock.Anything, "LHE", "JFK").Return(cmp, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/routes/find?source=LHE&dest=JFK&optimization=all", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
	mockService.AssertNotCalled(t, "FindRoute")
}

func TestPlannerHandler_findRoute_MissingParams(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/routes/find?source=LHE", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "FindRoute")
}

func TestPlannerHandler_findRoute_UnknownMode(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/routes/find?source=LHE&dest=JFK&optimization=scenic", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlannerHandler_findRoute_MaxStopsOutOfRange(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/routes/find?source=LHE&dest=JFK&max_stops=9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "FindRoute")
}

func TestPlannerHandler_findRoute_NotFound(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	mockService.On("FindRoute", mock.Anything, "MID", "JFK", engine.ModeCheapest, 4).Return(nil, engine.ErrNoRoute).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/routes/find?source=MID&dest=JFK", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestPlannerHandler_pareto(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	result := &engine.ParetoResult{
		Routes:     []*engine.Route{{Path: []string{"LHE", "JFK"}}},
		Candidates: []*engine.Route{{Path: []string{"LHE", "JFK"}}, {Path: []string{"LHE", "DOH", "JFK"}}},
	}
	mockService.On("Pareto", mock.Anything, "LHE", "JFK").Return(result, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/routes/pareto?source=LHE&dest=JFK", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["pareto_count"])
	assert.Equal(t, float64(2), body["total_candidates"])
}

func TestPlannerHandler_simulateDijkstra(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	sim := &planner.DijkstraSimulation{Found: true, Route: &engine.Route{Path: []string{"LHE", "JFK"}}}
	mockService.On("SimulateDijkstra", mock.Anything, planner.SimulationInput{
		Source:    "LHE",
		Dest:      "JFK",
		Mode:      engine.ModeFastest,
		Strategy:  engine.StrategyArray,
		MaxStates: 50,
	}).Return(sim, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/simulate/dijkstra?source=LHE&dest=JFK&mode=fastest&strategy=array&max_states=50", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestPlannerHandler_simulateMST(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	sim := &planner.MSTSimulation{
		Result: &engine.MSTResult{
			Edges:       []engine.MSTEdge{{From: "DOH", To: "DXB", Weight: 150, FlightNo: "EK301"}},
			TotalWeight: 150,
			Airports:    []string{"DOH", "DXB"},
		},
	}
	mockService.On("SimulateMST", mock.Anything, "LHE", "JFK", engine.MSTKruskal, 0).Return(sim, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/simulate/mst?source=LHE&dest=JFK&algorithm=kruskal", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "kruskal", body["algorithm"])
	assert.Equal(t, float64(150), body["total_weight"])
}

func TestPlannerHandler_simulateMST_UnknownAlgorithm(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/simulate/mst?source=LHE&dest=JFK&algorithm=boruvka", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SimulateMST")
}

func TestPlannerHandler_comparePerformance(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	cmp := &engine.PerformanceComparison{Source: "LHE", Dest: "JFK", Speedup: 1.2}
	mockService.On("ComparePerformance", mock.Anything, "LHE", "JFK", engine.ModeCheapest).Return(cmp, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/simulate/compare-performance?source=LHE&dest=JFK", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestPlannerHandler_stats(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	stats := &engine.GraphStats{Vertices: 5, Edges: 7, Density: 0.35}
	mockService.On("Stats", mock.Anything, engine.ModeCheapest).Return(stats, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/graph/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestPlannerHandler_components(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	mockService.On("Components", mock.Anything).Return([][]string{{"DOH", "DXB", "IST", "JFK", "LHE"}}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/graph/components", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
}

func TestPlannerHandler_routeAnalysis(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	analysis := &engine.SubgraphAnalysis{Source: "LHE", Dest: "JFK", TotalPaths: 4, Connected: true}
	mockService.On("RouteAnalysis", mock.Anything, "LHE", "JFK", 2).Return(analysis, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/graph/route-analysis?source=LHE&dest=JFK&max_hops=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestPlannerHandler_routeAnalysis_SameAirport(t *testing.T) {
	mockService := &MockPlannerUseCase{}
	router := plannerRouter(mockService)

	mockService.On("RouteAnalysis", mock.Anything, "LHE", "LHE", 3).Return(nil, engine.ErrSameAirport).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/graph/route-analysis?source=LHE&dest=LHE", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
