package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/maksim-leskin/api-chik-chik/services/schedule"
	"github.com/maksim-leskin/api-chik-chik/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the availability query endpoint.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler with the given service.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// ResolveHandler handles GET /api with the optional service/spec/month/day
// query parameters.
func (h *ScheduleHandler) ResolveHandler(c *gin.Context) {
	logger := getLogger(c)

	q, err := parseScheduleQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query parameter", err.Error())
		return
	}

	result, err := h.Service.Resolve(c.Request.Context(), q)
	if err != nil {
		switch {
		case schedule.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
		case schedule.IsBadInput(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to resolve availability query", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

func parseScheduleQuery(c *gin.Context) (schedule.Query, error) {
	var q schedule.Query
	var err error
	if q.Service, err = intQueryParam(c, "service"); err != nil {
		return q, err
	}
	if q.Spec, err = intQueryParam(c, "spec"); err != nil {
		return q, err
	}
	if q.Month, err = intQueryParam(c, "month"); err != nil {
		return q, err
	}
	if q.Day, err = intQueryParam(c, "day"); err != nil {
		return q, err
	}
	return q, nil
}

// intQueryParam coerces an optional query parameter to an integer. Absent
// parameters yield nil; present but non-numeric values are an error.
func intQueryParam(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %q must be an integer", name)
	}
	return &v, nil
}
