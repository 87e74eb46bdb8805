package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopline/commerce-api/internal/core/domain"
)

// --- Request / Response types ---

type orderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type createOrderRequest struct {
	Products []orderItemRequest `json:"products"`
}

// orderItemResponse carries the price snapshot taken at creation time plus
// the derived per-line total.
type orderItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

type orderResponse struct {
	ID          int64               `json:"id"`
	UserID      int64               `json:"user_id,omitempty"`
	Username    string              `json:"username,omitempty"`
	Email       string              `json:"email,omitempty"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []orderItemResponse `json:"items"`
}

type createOrderEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Order   orderResponse `json:"order"`
}

type listOrdersEnvelope struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Orders  []orderResponse `json:"orders"`
}

// --- Domain → Response mapping ---

// toOrderResponse projects an order for the JSON surface. withOwner adds the
// owner identity columns used by the admin view.
func toOrderResponse(o *domain.Order, withOwner bool) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Subtotal(),
		})
	}

	resp := orderResponse{
		ID:          o.ID,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}
	if withOwner {
		resp.UserID = o.UserID
		resp.Username = o.Username
		resp.Email = o.Email
	}
	return resp
}
