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

type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

// AddOrIncrement inserts a cart row for (user, product, size, color) or, if
// one already exists, bumps its quantity. Returns the row id.
func (r *CartRepository) AddOrIncrement(ctx context.Context, userID, productID string, qty int, size, color string) (string, error) {
	var id string
	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, size, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, product_id, size, color)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id
	`
	if err := r.DB.QueryRow(ctx, query, uuid.NewString(), userID, productID, qty, size, color, time.Now()).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// SetQuantity sets the exact quantity for a user's cart row.
func (r *CartRepository) SetQuantity(ctx context.Context, userID, itemID string, qty int) error {
	query := `UPDATE cart_items SET quantity=$1 WHERE id=$2 AND user_id=$3`
	tag, err := r.DB.Exec(ctx, query, qty, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, userID, itemID string) error {
	query := `DELETE FROM cart_items WHERE id=$1 AND user_id=$2`
	tag, err := r.DB.Exec(ctx, query, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	query := `DELETE FROM cart_items WHERE user_id=$1`
	_, err := r.DB.Exec(ctx, query, userID)
	return err
}

// ClearTx clears the cart inside a checkout transaction.
func (r *CartRepository) ClearTx(ctx context.Context, tx pgx.Tx, userID string) error {
	query := `DELETE FROM cart_items WHERE user_id=$1`
	_, err := tx.Exec(ctx, query, userID)
	return err
}

// List returns the user's cart rows joined with product display fields.
func (r *CartRepository) List(ctx context.Context, userID string) ([]model.CartItem, error) {
	query := `
		SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.size, ci.color,
			p.name, p.image_url, p.price, p.sale_price, p.is_on_sale, ci.created_at
		FROM cart_items ci
		JOIN products p ON p.product_id = ci.product_id
		WHERE ci.user_id=$1
		ORDER BY ci.created_at
	`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.Size, &it.Color,
			&it.Name, &it.ImageURL, &it.Price, &it.SalePrice, &it.IsOnSale, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
