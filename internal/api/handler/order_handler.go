package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopline/commerce-api/internal/api/metrics"
	"github.com/shopline/commerce-api/internal/core/domain"
	"github.com/shopline/commerce-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /api/orders.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Requested (product, quantity) pairs"
// @Success      201   {object}  createOrderEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	items := make([]ports.OrderItemSpec, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, ports.OrderItemSpec{ProductID: p.ProductID, Quantity: p.Quantity})
	}

	order, err := h.orderService.CreateOrder(c.Request().Context(), user.ID, items)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidItems):
			metrics.OrdersRejectedTotal.WithLabelValues("invalid_items").Inc()
		case errors.Is(err, domain.ErrProductNotFound):
			metrics.OrdersRejectedTotal.WithLabelValues("product_not_found").Inc()
		}
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderTotalAmount.Observe(order.TotalAmount.InexactFloat64())

	return c.JSON(http.StatusCreated, createOrderEnvelope{
		Success: true,
		Message: "Order created successfully",
		Order:   toOrderResponse(order, true),
	})
}

// MyOrders handles GET /api/orders/my-orders.
//
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOrdersEnvelope
// @Failure      401  {object}  errorEnvelope
// @Router       /api/orders/my-orders [get]
func (h *OrderHandler) MyOrders(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.GetUserOrders(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	resp := listOrdersEnvelope{Success: true, Count: len(orders), Orders: make([]orderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o, false))
	}
	return c.JSON(http.StatusOK, resp)
}

// AllOrders handles GET /api/orders/admin/all.
//
// @Summary      List every order (admin)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOrdersEnvelope
// @Failure      403  {object}  errorEnvelope
// @Router       /api/orders/admin/all [get]
func (h *OrderHandler) AllOrders(c echo.Context) error {
	orders, err := h.orderService.GetAllOrders(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listOrdersEnvelope{Success: true, Count: len(orders), Orders: make([]orderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o, true))
	}
	return c.JSON(http.StatusOK, resp)
}
