package model

import "time"

const (
	OrderPendingPayment = "pending_payment"
	OrderPaid           = "paid"
	OrderCancelled      = "cancelled"
)

type Order struct {
	OrderID     string     `json:"order_id"`
	UserID      string     `json:"user_id"`
	Subtotal    float64    `json:"subtotal"`
	Discount    float64    `json:"discount"`
	CouponCode  *string    `json:"coupon_code,omitempty"`
	Total       float64    `json:"total"`
	Status      string     `json:"status"`
	PaymentRef  *string    `json:"payment_ref,omitempty"`
	OrderDate   *time.Time `json:"order_date,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// OrderItem captures a cart line at checkout time; price is frozen at the
// unit price in effect when the order was placed.
type OrderItem struct {
	OrderItemID     string  `json:"order_item_id"`
	OrderID         string  `json:"order_id"`
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	Size            string  `json:"size"`
	Color           string  `json:"color"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

type OrderResponse struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}
