package repository

import (
	"context"
	"errors"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAlreadyInWishlist is returned on a duplicate (user, product) add.
var ErrAlreadyInWishlist = errors.New("product already in wishlist")

type WishlistRepository struct {
	DB *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{DB: db}
}

func (r *WishlistRepository) Add(ctx context.Context, userID, productID string) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO wishlist_items (id, user_id, product_id, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.DB.Exec(ctx, query, id, userID, productID, time.Now()); err != nil {
		if isUniqueViolation(err) {
			return "", ErrAlreadyInWishlist
		}
		return "", err
	}
	return id, nil
}

func (r *WishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	query := `DELETE FROM wishlist_items WHERE user_id=$1 AND product_id=$2`
	tag, err := r.DB.Exec(ctx, query, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("wishlist item not found")
	}
	return nil
}

func (r *WishlistRepository) Clear(ctx context.Context, userID string) error {
	query := `DELETE FROM wishlist_items WHERE user_id=$1`
	_, err := r.DB.Exec(ctx, query, userID)
	return err
}

func (r *WishlistRepository) Exists(ctx context.Context, userID, productID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM wishlist_items WHERE user_id=$1 AND product_id=$2)`
	if err := r.DB.QueryRow(ctx, query, userID, productID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *WishlistRepository) List(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	query := `
		SELECT wi.id, wi.user_id, wi.product_id, wi.created_at,
			p.name, p.image_url, p.price, p.sale_price, p.is_on_sale
		FROM wishlist_items wi
		JOIN products p ON p.product_id = wi.product_id
		WHERE wi.user_id=$1
		ORDER BY wi.created_at DESC
	`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.WishlistItem{}
	for rows.Next() {
		var it model.WishlistItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ProductID, &it.CreatedAt,
			&it.Name, &it.ImageURL, &it.Price, &it.SalePrice, &it.IsOnSale); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
