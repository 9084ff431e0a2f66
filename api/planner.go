package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hamna2004/dsaProjectFinal/internal/engine"
	"github.com/hamna2004/dsaProjectFinal/internal/service/planner"
)

// PlannerHandler exposes the routing and analysis queries. All routing
// endpoints take source and dest as query parameters; the optimization
// mode defaults to cheapest.
type PlannerHandler struct {
	service  planner.PlannerUseCase
	maxStops int
}

func NewPlannerHandler(service planner.PlannerUseCase, maxStops int) *PlannerHandler {
	return &PlannerHandler{service: service, maxStops: maxStops}
}

func (h *PlannerHandler) Register(router *gin.RouterGroup) {
	router.GET("/routes/find", h.findRoute)
	router.GET("/routes/all", h.allRoutes)
	router.GET("/routes/pareto", h.pareto)

	router.GET("/simulate/dijkstra", h.simulateDijkstra)
	router.GET("/simulate/mst", h.simulateMST)
	router.GET("/simulate/compare-performance", h.comparePerformance)

	router.GET("/graph/stats", h.stats)
	router.GET("/graph/adjacency-list", h.adjacencyList)
	router.GET("/graph/adjacency-matrix", h.adjacencyMatrix)
	router.GET("/graph/components", h.components)
	router.GET("/graph/route-analysis", h.routeAnalysis)
}

// endpoints reads and validates the source/dest pair every routing
// query requires.
func (h *PlannerHandler) endpoints(c *gin.Context) (source, dest string, ok bool) {
	source = c.Query("source")
	dest = c.Query("dest")
	if source == "" || dest == "" {
		fail(c, http.StatusBadRequest, "source and dest are required")
		return "", "", false
	}
	return source, dest, true
}

func (h *PlannerHandler) findRoute(c *gin.Context) {
	source, dest, valid := h.endpoints(c)
	if !valid {
		return
	}

	maxStops, err := h.intParam(c, "max_stops", h.maxStops, 0, h.maxStops)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	optimization := c.DefaultQuery("optimization", string(engine.ModeCheapest))
	if optimization == "all" {
		cmp, err := h.service.CompareModes(c.Request.Context(), source, dest)
		if err != nil {
			failFromErr(c, err)
			return
		}
		ok(c, gin.H{"comparison": cmp})
		return
	}

	mode, known := engine.ParseMode(optimization)
	if !known {
		fail(c, http.StatusBadRequest, "unknown optimization mode: "+optimization)
		return
	}

	route, err := h.service.FindRoute(c.Request.Context(), source, dest, mode, maxStops)
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, gin.H{"route": route, "optimization": string(mode)})
}

func (h *PlannerHandler) allRoutes(c *gin.Context) {
	source, dest, valid := h.endpoints(c)
	if !valid {
		return
	}

	maxStops, err := h.intParam(c, "max_stops", h.maxStops, 0, h.maxStops)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	routes, err := h.service.AllRoutes(c.Request.Context(), source, dest, maxStops)
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, gin.H{"routes": routes, "count": len(routes)})
}

func (h *PlannerHandler) pareto(c *gin.Context) {
	source, dest, valid := h.endpoints(c)
	if !valid {
		return
	}

	result, err := h.service.Pareto(c.Request.Context(), source, dest)
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, gin.H{
		"routes":           result.Routes,
		"all_candidates":   result.Candidates,
		"pareto_count":     len(result.Routes),
		"total_candidates": len(result.Candidates),
	})
}

func (h *PlannerHandler) simulateDijkstra(c *gin.Context) {
	source, dest, valid := h.endpoints(c)
	if !valid {
		return
	}

	mode, known := engine.ParseMode(c.DefaultQuery("mode", string(engine.ModeCheapest)))
	if !known {
		fail(c, http.StatusBadRequest, "unknown optimization mode")
		return
	}

	strategy := engine.StrategyHeap
	if s := c.Query("strategy"); s == string(engine.StrategyArray) {
		strategy = engine.StrategyArray
	}

	maxStates, err := h.intParam(c, "max_states", 0, 0, 1<<20)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	sim, err := h.service.SimulateDijkstra(c.Request.Context(), planner.SimulationInput{
		Source:    source,
		Dest:      dest,
		Mode:      mode,
		Strategy:  strategy,
		MaxStates: maxStates,
	})
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, gin.H{
		"states":     sim.States,
		"route":      sim.Route,
		"found":      sim.Found,
		"operations": sim.Counters,
	})
}

func (h *PlannerHandler) simulateMST(c *gin.Context) {
	source, dest, valid := h.endpoints(c)
	if !valid {
		return
	}

	alg, known := engine.ParseMSTAlgorithm(c.DefaultQuery("algorithm", string(engine.MSTPrim)))
	if !known {
		fail(c, http.StatusBadRequest, "unknown mst algorithm")
		return
	}

	maxStates, err := h.intParam(c, "max_states", 0, 0, 1<<20)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	sim, err := h.service.SimulateMST(c.Request.Context(), source, dest, alg, maxStates)
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, gin.H{
		"states":       sim.States,
		"mst_edges":    sim.Result.Edges,
		"total_weight": sim.Result.TotalWeight,
		"airports":     sim.Result.Airports,
		"algorithm":    string(alg),
	})
}

func (h *PlannerHandler) comparePerformance(c *gin.Context) {
	source, dest, valid := h.endpoints(c)
	if !valid {
		return
	}

	mode, known := engine.ParseMode(c.DefaultQuery("mode", string(engine.ModeCheapest)))
	if !known {
		fail(c, http.StatusBadRequest, "unknown optimization mode")
		return
	}

	cmp, err := h.service.ComparePerformance(c.Request.Context(), source, dest, mode)
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, gin.H{"comparison": cmp})
}

func (h *PlannerHandler) stats(c *gin.Context) {
	mode, known := engine.ParseMode(c.DefaultQuery("mode", string(engine.ModeCheapest)))
	if !known {
		fail(c, http.StatusBadRequest, "unknown optimization mode")
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), mode)
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, gin.H{"stats": stats})
}

func (h *PlannerHandler) adjacencyList(c *gin.Context) {
	list, err := h.service.AdjacencyList(c.Request.Context())
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, gin.H{"adjacency_list": list})
}

func (h *PlannerHandler) adjacencyMatrix(c *gin.Context) {
	view, err := h.service.AdjacencyMatrix(c.Request.Context())
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, gin.H{"airports": view.Airports, "matrix": view.Matrix})
}

func (h *PlannerHandler) components(c *gin.Context) {
	components, err := h.service.Components(c.Request.Context())
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, gin.H{"components": components, "count": len(components)})
}

func (h *PlannerHandler) routeAnalysis(c *gin.Context) {
	source, dest, valid := h.endpoints(c)
	if !valid {
		return
	}

	maxHops, err := h.intParam(c, "max_hops", 3, 1, 5)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := h.service.RouteAnalysis(c.Request.Context(), source, dest, maxHops)
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, gin.H{"analysis": analysis})
}

// intParam reads an optional integer query parameter with bounds.
func (h *PlannerHandler) intParam(c *gin.Context, name string, def, min, max int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return 0, &paramError{name: name}
	}
	return v, nil
}

type paramError struct{ name string }

func (e *paramError) Error() string { return "invalid " + e.name }
