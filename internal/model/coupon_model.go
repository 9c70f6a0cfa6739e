package model

import (
	"errors"
	"time"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon validation failures. These are terminal, user-displayable errors;
// handlers map them to status codes without retrying.
var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponExpired       = errors.New("coupon is not valid at this time")
	ErrCouponUsageExceeded = errors.New("coupon usage limit reached")
	ErrCouponBelowMinimum  = errors.New("order subtotal is below the coupon minimum")
)

type Coupon struct {
	CouponID              string     `json:"coupon_id"`
	Code                  string     `json:"code"`
	DiscountType          string     `json:"discount_type"`
	DiscountValue         float64    `json:"discount_value"`
	MinimumOrderAmount    float64    `json:"minimum_order_amount"`
	MaximumDiscountAmount *float64   `json:"maximum_discount_amount,omitempty"`
	UsageLimit            *int       `json:"usage_limit,omitempty"`
	UsedCount             int        `json:"used_count"`
	ValidFrom             time.Time  `json:"valid_from"`
	ExpiryDate            time.Time  `json:"expiry_date"`
	IsActive              bool       `json:"is_active"`
	CreatedAt             *time.Time `json:"created_at,omitempty"`
	DeletedAt             *time.Time `json:"deleted_at,omitempty"`
}

// CheckRedeemable reports whether the coupon can be applied to an order with
// the given subtotal at time now. Checks run in a fixed order so the caller
// always sees the same error kind for the same inputs.
func (c *Coupon) CheckRedeemable(subtotal float64, now time.Time) error {
	if !c.IsActive {
		return ErrCouponNotFound
	}
	if now.Before(c.ValidFrom) || now.After(c.ExpiryDate) {
		return ErrCouponExpired
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return ErrCouponUsageExceeded
	}
	if subtotal < c.MinimumOrderAmount {
		return ErrCouponBelowMinimum
	}
	return nil
}

// DiscountFor computes the discount for an order subtotal. Percentage
// discounts are capped at MaximumDiscountAmount when set; fixed discounts
// never exceed the subtotal.
func (c *Coupon) DiscountFor(subtotal float64) float64 {
	switch c.DiscountType {
	case DiscountPercentage:
		d := subtotal * c.DiscountValue / 100
		if c.MaximumDiscountAmount != nil && d > *c.MaximumDiscountAmount {
			d = *c.MaximumDiscountAmount
		}
		return d
	case DiscountFixed:
		if c.DiscountValue > subtotal {
			return subtotal
		}
		return c.DiscountValue
	}
	return 0
}
