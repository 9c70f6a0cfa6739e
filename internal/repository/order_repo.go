package repository

import (
	"context"
	"errors"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateTx inserts the order and its items inside the checkout transaction.
func (r *OrderRepository) CreateTx(ctx context.Context, tx pgx.Tx, o *model.Order, items []model.OrderItem) (string, error) {
	orderID := uuid.NewString()
	now := time.Now()
	query := `
		INSERT INTO orders (order_id, user_id, subtotal, discount, coupon_code, total, status, payment_ref, order_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	if _, err := tx.Exec(ctx, query, orderID, o.UserID, o.Subtotal, o.Discount, o.CouponCode, o.Total, o.Status, o.PaymentRef, now, now); err != nil {
		return "", err
	}

	itemQuery := `
		INSERT INTO order_items (order_item_id, order_id, product_id, name, quantity, size, color, price_at_purchase)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, it := range items {
		if _, err := tx.Exec(ctx, itemQuery, uuid.NewString(), orderID, it.ProductID, it.Name, it.Quantity, it.Size, it.Color, it.PriceAtPurchase); err != nil {
			return "", err
		}
	}
	return orderID, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	var o model.Order
	query := `
		SELECT order_id, user_id, subtotal, discount, coupon_code, total, status, payment_ref, order_date, created_at
		FROM orders WHERE order_id=$1 AND deleted_at IS NULL
	`
	err := r.DB.QueryRow(ctx, query, orderID).Scan(&o.OrderID, &o.UserID, &o.Subtotal, &o.Discount,
		&o.CouponCode, &o.Total, &o.Status, &o.PaymentRef, &o.OrderDate, &o.CreatedAt)
	if err != nil {
		return nil, errors.New("order not found")
	}
	return &o, nil
}

// GetByPaymentRef resolves an order from the external payment reference on
// webhook notifications.
func (r *OrderRepository) GetByPaymentRef(ctx context.Context, ref string) (*model.Order, error) {
	var o model.Order
	query := `
		SELECT order_id, user_id, subtotal, discount, coupon_code, total, status, payment_ref, order_date, created_at
		FROM orders WHERE payment_ref=$1 AND deleted_at IS NULL
	`
	err := r.DB.QueryRow(ctx, query, ref).Scan(&o.OrderID, &o.UserID, &o.Subtotal, &o.Discount,
		&o.CouponCode, &o.Total, &o.Status, &o.PaymentRef, &o.OrderDate, &o.CreatedAt)
	if err != nil {
		return nil, errors.New("order not found")
	}
	return &o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	query := `
		SELECT order_id, user_id, subtotal, discount, coupon_code, total, status, payment_ref, order_date, created_at
		FROM orders WHERE user_id=$1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.OrderID, &o.UserID, &o.Subtotal, &o.Discount, &o.CouponCode,
			&o.Total, &o.Status, &o.PaymentRef, &o.OrderDate, &o.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, nil
}

func (r *OrderRepository) ListItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	query := `
		SELECT order_item_id, order_id, product_id, name, quantity, size, color, price_at_purchase
		FROM order_items WHERE order_id=$1
	`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.OrderItem{}
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.OrderItemID, &it.OrderID, &it.ProductID, &it.Name, &it.Quantity, &it.Size, &it.Color, &it.PriceAtPurchase); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *OrderRepository) SetStatus(ctx context.Context, orderID, status string) error {
	query := `UPDATE orders SET status=$1 WHERE order_id=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}
