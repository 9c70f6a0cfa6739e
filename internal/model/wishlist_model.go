package model

import "time"

// WishlistItem is a (user, product) pair, unique per pair.
type WishlistItem struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	ProductID string     `json:"product_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// denormalized from products
	Name      string   `json:"name"`
	ImageURL  string   `json:"image_url,omitempty"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"sale_price,omitempty"`
	IsOnSale  bool     `json:"is_on_sale"`
}
