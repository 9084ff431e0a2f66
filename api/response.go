package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamna2004/dsaProjectFinal/internal/engine"
)

// ok wraps a payload in the success envelope.
func ok(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// fail emits the error envelope with the given status.
func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// failFromErr maps engine errors to HTTP statuses: unknown airports and
// unreachable destinations are 404, bad queries are 400, everything
// else is a 500.
func failFromErr(c *gin.Context, err error) {
	switch {
	case engine.IsNotFound(err):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrSameAirport), errors.Is(err, engine.ErrEmptyGraph):
		fail(c, http.StatusBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, err.Error())
	}
}
