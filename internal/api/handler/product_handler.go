package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/shopline/commerce-api/internal/core/domain"
	"github.com/shopline/commerce-api/internal/core/ports"
)

// ProductHandler handles the product catalog endpoints. Reads are public;
// writes are admin-gated at the router.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /api/products with optional category, minPrice, maxPrice,
// and search query filters.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        minPrice  query     number  false  "Minimum price"
// @Param        maxPrice  query     number  false  "Maximum price"
// @Param        search    query     string  false  "Name substring search"
// @Success      200       {object}  listProductsEnvelope
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := domain.ProductFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	if raw := c.QueryParam("minPrice"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid minPrice")
		}
		filter.MinPrice = &p
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid maxPrice")
		}
		filter.MaxPrice = &p
	}

	products, err := h.productService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	resp := listProductsEnvelope{Success: true, Count: len(products), Products: make([]productPayload, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, toProductPayload(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
	}

	product, err := h.productService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productEnvelope{Success: true, Product: toProductPayload(product)})
}

// Create handles POST /api/products.
//
// @Summary      Create a product (admin)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "New product"
// @Success      201   {object}  productEnvelope
// @Failure      400   {object}  errorEnvelope
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !req.Price.IsPositive() {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be greater than 0")
	}

	product, err := h.productService.Create(c.Request().Context(), ports.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productEnvelope{
		Success: true,
		Message: "Product created successfully",
		Product: toProductPayload(product),
	})
}

// Update handles PUT /api/products/:id.
//
// @Summary      Update a product (admin)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  productEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Price != nil && !req.Price.IsPositive() {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be greater than 0")
	}

	product, err := h.productService.Update(c.Request().Context(), id, ports.UpdateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productEnvelope{
		Success: true,
		Message: "Product updated successfully",
		Product: toProductPayload(product),
	})
}
