package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shopline/commerce-api/internal/core/domain"
	"github.com/shopline/commerce-api/internal/core/ports"
)

// OrderService validates order requests and delegates the atomic
// price-snapshot-and-persist step to the repository.
type OrderService struct {
	orders ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

// CreateOrder checks the requested items in input order and persists the
// order. Validation is fail-fast: the first offending item names itself in
// the error and nothing is written. Price resolution, total computation, and
// the header+items write all happen inside one repository transaction, so a
// product deleted mid-request or a failed item insert rolls the whole order
// back.
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, items []ports.OrderItemSpec) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: products array is required and cannot be empty", domain.ErrInvalidItems)
	}
	for i, item := range items {
		if item.ProductID == 0 {
			return nil, fmt.Errorf("%w: item %d must have product_id and quantity", domain.ErrInvalidItems, i+1)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d quantity must be greater than 0", domain.ErrInvalidItems, i+1)
		}
	}

	order, err := s.orders.Create(ctx, userID, items)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("user_id", userID).
		Int("items", len(order.Items)).
		Str("total_amount", order.TotalAmount.String()).
		Msg("order created")
	return order, nil
}

// GetUserOrders lists the caller's orders, newest first, with items.
func (s *OrderService) GetUserOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// GetAllOrders lists every order with owner identity, for the admin view.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.ListAll(ctx)
}
