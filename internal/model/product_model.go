package model

import "time"

type Product struct {
	ProductID   string     `json:"product_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	SalePrice   *float64   `json:"sale_price,omitempty"`
	IsOnSale    bool       `json:"is_on_sale"`
	ImageURL    string     `json:"image_url,omitempty"`
	Sizes       []string   `json:"sizes"`
	Colors      []string   `json:"colors"`
	CategoryID  *string    `json:"category_id,omitempty"`
	ThemeID     *string    `json:"theme_id,omitempty"`
	Stock       int        `json:"stock"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// EffectivePrice is the unit price a buyer pays right now.
func (p *Product) EffectivePrice() float64 {
	if p.IsOnSale && p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
