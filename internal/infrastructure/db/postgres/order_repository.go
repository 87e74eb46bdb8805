package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shopline/commerce-api/internal/core/domain"
	"github.com/shopline/commerce-api/internal/core/ports"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create validates the referenced products, snapshots their current prices,
// and writes the order header plus every line item inside one serializable
// transaction. A missing product or a failed insert rolls back everything,
// so no partially populated order can ever be observed. Prices are read in
// input order; serializable isolation keeps them consistent with each other
// even when a concurrent request is updating a product mid-order.
func (r *OrderRepository) Create(ctx context.Context, userID int64, items []ports.OrderItemSpec) (*domain.Order, error) {
	var order *domain.Order

	err := withTransaction(ctx, r.db, sql.LevelSerializable, func(tx *sql.Tx) error {
		totalAmount := decimal.Zero
		lines := make([]domain.OrderItem, 0, len(items))

		for _, item := range items {
			var (
				name     string
				category string
				price    decimal.Decimal
			)
			err := tx.QueryRowContext(ctx,
				`SELECT name, category, price FROM products WHERE id = $1`,
				item.ProductID).Scan(&name, &category, &price)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return fmt.Errorf("product with ID %d: %w", item.ProductID, domain.ErrProductNotFound)
				}
				return fmt.Errorf("fetch product %d: %w", item.ProductID, err)
			}

			totalAmount = totalAmount.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			lines = append(lines, domain.OrderItem{
				ProductID:   item.ProductID,
				ProductName: name,
				Category:    category,
				Quantity:    item.Quantity,
				Price:       price,
			})
		}

		order = &domain.Order{
			UserID:      userID,
			TotalAmount: totalAmount,
			Status:      domain.OrderStatusPending,
			Items:       lines,
		}
		err := tx.QueryRowContext(ctx,
			`INSERT INTO orders (user_id, total_amount, status, created_at, updated_at)
			 VALUES ($1, $2, $3, NOW(), NOW())
			 RETURNING id, created_at, updated_at`,
			userID, totalAmount, order.Status).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			err := tx.QueryRowContext(ctx,
				`INSERT INTO order_items (order_id, product_id, quantity, price)
				 VALUES ($1, $2, $3, $4)
				 RETURNING id`,
				order.ID, item.ProductID, item.Quantity, item.Price).Scan(&item.ID)
			if err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

const orderColumns = `o.id, o.user_id, u.username, u.email, o.total_amount, o.status, o.created_at, o.updated_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (*domain.Order, error) {
	var o domain.Order
	// Owner columns come through a LEFT JOIN; a deleted user leaves NULLs.
	var username, email sql.NullString
	err := row.Scan(&o.ID, &o.UserID, &username, &email, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	o.Username, o.Email = username.String, email.String
	return &o, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+`
		 FROM orders o
		 LEFT JOIN users u ON o.user_id = u.id
		 WHERE o.id = $1`, id))
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return r.list(ctx,
		`SELECT `+orderColumns+`
		 FROM orders o
		 LEFT JOIN users u ON o.user_id = u.id
		 WHERE o.user_id = $1
		 ORDER BY o.created_at DESC`, userID)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return r.list(ctx,
		`SELECT `+orderColumns+`
		 FROM orders o
		 LEFT JOIN users u ON o.user_id = u.id
		 ORDER BY o.created_at DESC`)
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	for _, o := range orders {
		if err := r.loadItems(ctx, o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, order *domain.Order) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT oi.id, oi.order_id, oi.product_id, p.name, p.category, oi.quantity, oi.price
		 FROM order_items oi
		 LEFT JOIN products p ON oi.product_id = p.id
		 WHERE oi.order_id = $1
		 ORDER BY oi.id`, order.ID)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		var name, category sql.NullString
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &name, &category, &item.Quantity, &item.Price)
		if err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		item.ProductName, item.Category = name.String, category.String
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows error: %w", err)
	}

	order.Items = items
	return nil
}
