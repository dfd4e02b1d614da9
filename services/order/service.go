package order

import (
	"fmt"
	"time"

	orderRepo "github.com/maksim-leskin/api-chik-chik/database/repository/order"
	"github.com/maksim-leskin/api-chik-chik/models"

	"github.com/google/uuid"
)

// OrderService records booking orders.
type OrderService interface {
	Create(details map[string]any) (*models.Order, error)
}

// DefaultOrderService is a concrete implementation.
type DefaultOrderService struct {
	Repo orderRepo.OrderRepository
	Now  func() time.Time
}

// Create assigns an id and creation time to the caller-supplied order
// details and appends the record.
func (s *DefaultOrderService) Create(details map[string]any) (*models.Order, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	order := &models.Order{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Details:   details,
	}
	if err := s.Repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	return order, nil
}
