package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a purchasable item. Price is mutable over time; orders copy the
// price into their items at creation, so later updates never rewrite history.
type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductFilter narrows product listings. Zero values mean "no constraint".
type ProductFilter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
}
