package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the route handlers for registration.
type HandlerBundle struct {
	// Availability endpoints.
	ResolveAvailability gin.HandlerFunc

	// Order endpoints.
	CreateOrder gin.HandlerFunc
}
