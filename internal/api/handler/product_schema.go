package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopline/commerce-api/internal/core/domain"
)

// --- Request / Response types ---

type createProductRequest struct {
	Name     string          `json:"name"     validate:"required"`
	Price    decimal.Decimal `json:"price"    validate:"required"`
	Category string          `json:"category" validate:"required"`
}

type updateProductRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
}

type productPayload struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toProductPayload(p *domain.Product) productPayload {
	return productPayload{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type productEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Product productPayload `json:"product"`
}

type listProductsEnvelope struct {
	Success  bool             `json:"success"`
	Count    int              `json:"count"`
	Products []productPayload `json:"products"`
}
