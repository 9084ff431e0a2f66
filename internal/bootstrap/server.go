package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hamna2004/dsaProjectFinal/api"
	"github.com/hamna2004/dsaProjectFinal/config"
	"github.com/hamna2004/dsaProjectFinal/internal/service/flights"
	"github.com/hamna2004/dsaProjectFinal/internal/service/planner"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, plannerSvc planner.PlannerUseCase) error {
	router := NewRouter(cfg, flightSvc, plannerSvc)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// NewRouter wires every handler onto a gin engine.
func NewRouter(cfg *config.Config, flightSvc flights.FlightUseCase, plannerSvc planner.PlannerUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	group := router.Group("/api")
	api.NewFlightHandler(flightSvc).Register(group)
	api.NewPlannerHandler(plannerSvc, cfg.Engine.MaxStops).Register(group)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
