package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopline/commerce-api/internal/api/middleware"
	"github.com/shopline/commerce-api/internal/core/domain"
	"github.com/shopline/commerce-api/internal/core/ports"
)

// stubOrderService records the last create call and returns canned orders.
type stubOrderService struct {
	created   *domain.Order
	orders    []*domain.Order
	err       error
	lastUser  int64
	lastItems []ports.OrderItemSpec
}

func (s *stubOrderService) CreateOrder(_ context.Context, userID int64, items []ports.OrderItemSpec) (*domain.Order, error) {
	s.lastUser = userID
	s.lastItems = items
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubOrderService) GetUserOrders(_ context.Context, userID int64) ([]*domain.Order, error) {
	s.lastUser = userID
	return s.orders, s.err
}

func (s *stubOrderService) GetAllOrders(context.Context) ([]*domain.Order, error) {
	return s.orders, s.err
}

func sampleOrder() *domain.Order {
	price := decimal.RequireFromString("10.00")
	return &domain.Order{
		ID:          3,
		UserID:      7,
		Username:    "alice",
		Email:       "alice@example.com",
		TotalAmount: decimal.RequireFromString("25.00"),
		Status:      domain.OrderStatusPending,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Items: []domain.OrderItem{
			{OrderID: 3, ProductID: 1, ProductName: "Keyboard", Quantity: 2, Price: price},
			{OrderID: 3, ProductID: 2, ProductName: "Mouse Pad", Quantity: 1, Price: decimal.RequireFromString("5.00")},
		},
	}
}

func TestOrderHandler_Create(t *testing.T) {
	svc := &stubOrderService{created: sampleOrder()}
	h := NewOrderHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/orders",
		`{"products":[{"product_id":1,"quantity":2},{"product_id":2,"quantity":1}]}`)
	c.Set(middleware.ContextKeyUser, &domain.User{ID: 7, Role: domain.RoleUser})

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if svc.lastUser != 7 {
		t.Fatalf("service saw user %d", svc.lastUser)
	}
	want := []ports.OrderItemSpec{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}
	if len(svc.lastItems) != len(want) || svc.lastItems[0] != want[0] || svc.lastItems[1] != want[1] {
		t.Fatalf("service saw items %v", svc.lastItems)
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Order   struct {
			ID          int64  `json:"id"`
			UserID      int64  `json:"user_id"`
			Username    string `json:"username"`
			TotalAmount string `json:"total_amount"`
			Status      string `json:"status"`
			Items       []struct {
				ProductName string `json:"product_name"`
				Price       string `json:"price"`
				Total       string `json:"total"`
			} `json:"items"`
		} `json:"order"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Message != "Order created successfully" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if resp.Order.TotalAmount != "25" || resp.Order.Status != "pending" {
		t.Fatalf("unexpected order projection: %+v", resp.Order)
	}
	if resp.Order.Username != "alice" {
		t.Fatalf("create response should include the owner, got %+v", resp.Order)
	}
	if len(resp.Order.Items) != 2 || resp.Order.Items[0].Total != "20" {
		t.Fatalf("unexpected items: %+v", resp.Order.Items)
	}
}

func TestOrderHandler_CreateRejections(t *testing.T) {
	wantErr := fmt.Errorf("%w: products array is required and cannot be empty", domain.ErrInvalidItems)
	svc := &stubOrderService{err: wantErr}
	h := NewOrderHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/api/orders", `{"products":[]}`)
	c.Set(middleware.ContextKeyUser, &domain.User{ID: 7, Role: domain.RoleUser})
	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidItems) {
		t.Fatalf("expected ErrInvalidItems to pass through, got %v", err)
	}

	// Without auth context the service is never reached.
	c, _ = newTestContext(t, http.MethodPost, "/api/orders", `{"products":[{"product_id":1,"quantity":1}]}`)
	if err := h.Create(c); err == nil {
		t.Fatal("expected error without auth context")
	}
	if svc.lastUser != 7 {
		t.Fatalf("service must not be called without auth context, lastUser=%d", svc.lastUser)
	}
}

func TestOrderHandler_MyOrders(t *testing.T) {
	svc := &stubOrderService{orders: []*domain.Order{sampleOrder()}}
	h := NewOrderHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/orders/my-orders", "")
	c.Set(middleware.ContextKeyUser, &domain.User{ID: 7, Role: domain.RoleUser})
	if err := h.MyOrders(c); err != nil {
		t.Fatalf("MyOrders returned error: %v", err)
	}
	if svc.lastUser != 7 {
		t.Fatalf("service saw user %d", svc.lastUser)
	}

	var resp struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Orders  []struct {
			Username string `json:"username"`
		} `json:"orders"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Count != 1 || len(resp.Orders) != 1 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	// Owner identity is omitted from the self view.
	if resp.Orders[0].Username != "" {
		t.Fatalf("self view must not carry owner identity: %+v", resp.Orders[0])
	}
}

func TestOrderHandler_AllOrders(t *testing.T) {
	svc := &stubOrderService{orders: []*domain.Order{sampleOrder()}}
	h := NewOrderHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/orders/admin/all", "")
	if err := h.AllOrders(c); err != nil {
		t.Fatalf("AllOrders returned error: %v", err)
	}

	var resp struct {
		Count  int `json:"count"`
		Orders []struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"orders"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || resp.Orders[0].Username != "alice" || resp.Orders[0].Email != "alice@example.com" {
		t.Fatalf("admin view should carry owner identity: %+v", resp)
	}
}
