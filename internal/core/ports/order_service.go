package ports

import (
	"context"

	"github.com/shopline/commerce-api/internal/core/domain"
)

// OrderService validates and aggregates order requests.
type OrderService interface {
	// CreateOrder validates the items (non-empty, each with a product id and
	// a positive quantity, each product present in the store), snapshots
	// current prices, and persists the order with all its line items
	// atomically. Validation stops at the first offending item.
	CreateOrder(ctx context.Context, userID int64, items []OrderItemSpec) (*domain.Order, error)
	GetUserOrders(ctx context.Context, userID int64) ([]*domain.Order, error)
	GetAllOrders(ctx context.Context) ([]*domain.Order, error)
}
