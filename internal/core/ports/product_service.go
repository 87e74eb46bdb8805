package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopline/commerce-api/internal/core/domain"
)

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name     string
	Price    decimal.Decimal
	Category string
}

// UpdateProductInput carries partial updates; nil fields are left untouched.
type UpdateProductInput struct {
	Name     *string
	Price    *decimal.Decimal
	Category *string
}

// ProductService implements the product catalog surface.
type ProductService interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error)
}
