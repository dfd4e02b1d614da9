package orderRepo

import (
	"github.com/maksim-leskin/api-chik-chik/models"
)

// OrderRepository appends order records. Orders are never updated or read
// back by this service.
type OrderRepository interface {
	Create(order *models.Order) error
}
