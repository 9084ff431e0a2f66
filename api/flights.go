package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hamna2004/dsaProjectFinal/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/airports", h.listAirports)
	router.GET("/flights", h.listFlights)
	router.GET("/flights/search", h.searchFlights)
	router.GET("/flights/:id", h.getFlight)
	router.POST("/flights/sync", h.syncFlights)
}

func (h *FlightHandler) listAirports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, gin.H{"airports": airports, "count": len(airports)})
}

func (h *FlightHandler) listFlights(c *gin.Context) {
	list, err := h.service.ListFlights(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, gin.H{"flights": list, "count": len(list)})
}

func (h *FlightHandler) searchFlights(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		fail(c, http.StatusBadRequest, "from and to are required")
		return
	}

	list, err := h.service.SearchFlights(c.Request.Context(), from, to)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, gin.H{"flights": list, "count": len(list)})
}

func (h *FlightHandler) getFlight(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return
	}

	flight, err := h.service.GetFlight(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if flight == nil {
		fail(c, http.StatusNotFound, "flight not found")
		return
	}
	ok(c, gin.H{"flight": flight})
}

func (h *FlightHandler) syncFlights(c *gin.Context) {
	var input flights.SyncInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	eventID, err := h.service.SyncFlights(c.Request.Context(), input)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"success":  true,
		"event_id": eventID,
		"airports": len(input.Airports),
		"flights":  len(input.Flights),
	})
}
