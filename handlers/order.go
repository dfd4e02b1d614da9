package handlers

import (
	"fmt"
	"net/http"

	"github.com/maksim-leskin/api-chik-chik/services/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler serves the order submission endpoint.
type OrderHandler struct {
	Service order.OrderService
}

// NewOrderHandler creates an OrderHandler with the given service.
func NewOrderHandler(svc order.OrderService) *OrderHandler {
	return &OrderHandler{Service: svc}
}

// CreateOrderHandler handles POST /api/order.
func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	logger := getLogger(c)

	var details map[string]any
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Create(details)
	if err != nil {
		logger.Error("Failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.Header("Location", fmt.Sprintf("api/order/%s", created.ID))
	c.JSON(http.StatusCreated, created)
}
