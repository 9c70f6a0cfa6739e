package model

import "time"

// CartItem is a user's cart row joined with product display fields.
// At most one row exists per (user, product, size, color); repeated adds
// merge by incrementing quantity.
type CartItem struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`

	// denormalized from products
	Name      string   `json:"name"`
	ImageURL  string   `json:"image_url,omitempty"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"sale_price,omitempty"`
	IsOnSale  bool     `json:"is_on_sale"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// UnitPrice is what one unit of this line costs right now.
func (it *CartItem) UnitPrice() float64 {
	if it.IsOnSale && it.SalePrice != nil {
		return *it.SalePrice
	}
	return it.Price
}

// CartResponse is returned by GET /cart.
type CartResponse struct {
	Items    []CartItem `json:"items"`
	Count    int        `json:"count"`
	Subtotal float64    `json:"subtotal"`
}
