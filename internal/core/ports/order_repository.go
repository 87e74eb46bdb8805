package ports

import (
	"context"

	"github.com/shopline/commerce-api/internal/core/domain"
)

// OrderItemSpec is one requested (product, quantity) pair for a new order.
type OrderItemSpec struct {
	ProductID int64
	Quantity  int
}

// OrderRepository defines the persistence operations for orders.
//
// Create must resolve current product prices, compute the total, and write
// the order header together with all its items as a single transaction:
// either the whole order lands or nothing does. It returns the hydrated
// order (header plus items with product names) as read back from the store.
type OrderRepository interface {
	Create(ctx context.Context, userID int64, items []OrderItemSpec) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
}
