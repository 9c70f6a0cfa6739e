package model

import (
	"errors"
	"testing"
	"time"
)

func activeCoupon(discountType string, value float64) *Coupon {
	return &Coupon{
		CouponID:      "c1",
		Code:          "SAVE",
		DiscountType:  discountType,
		DiscountValue: value,
		ValidFrom:     time.Now().Add(-24 * time.Hour),
		ExpiryDate:    time.Now().Add(24 * time.Hour),
		IsActive:      true,
	}
}

func TestPercentageDiscountCappedAtMaximum(t *testing.T) {
	maxDiscount := 200.0
	c := activeCoupon(DiscountPercentage, 20)
	c.MaximumDiscountAmount = &maxDiscount

	if got := c.DiscountFor(1500); got != 200 {
		t.Fatalf("discount = %v, want 200 (min(300, 200))", got)
	}
	// below the cap the raw percentage applies
	if got := c.DiscountFor(500); got != 100 {
		t.Fatalf("discount = %v, want 100", got)
	}
}

func TestPercentageDiscountWithoutCap(t *testing.T) {
	c := activeCoupon(DiscountPercentage, 20)
	if got := c.DiscountFor(1500); got != 300 {
		t.Fatalf("discount = %v, want 300", got)
	}
}

func TestFixedDiscountNeverExceedsSubtotal(t *testing.T) {
	c := activeCoupon(DiscountFixed, 500)
	if got := c.DiscountFor(300); got != 300 {
		t.Fatalf("discount = %v, want 300 (min(500, 300))", got)
	}
	if got := c.DiscountFor(800); got != 500 {
		t.Fatalf("discount = %v, want 500", got)
	}
}

func TestCheckRedeemableInactive(t *testing.T) {
	c := activeCoupon(DiscountFixed, 50)
	c.IsActive = false
	if err := c.CheckRedeemable(100, time.Now()); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("err = %v, want ErrCouponNotFound", err)
	}
}

func TestCheckRedeemableExpired(t *testing.T) {
	c := activeCoupon(DiscountFixed, 50)
	// after expiry, regardless of subtotal
	after := c.ExpiryDate.Add(time.Hour)
	if err := c.CheckRedeemable(1e9, after); !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("err = %v, want ErrCouponExpired", err)
	}
	// before the window opens
	before := c.ValidFrom.Add(-time.Hour)
	if err := c.CheckRedeemable(100, before); !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("err = %v, want ErrCouponExpired", err)
	}
}

func TestCheckRedeemableUsageLimit(t *testing.T) {
	limit := 10
	c := activeCoupon(DiscountFixed, 50)
	c.UsageLimit = &limit
	c.UsedCount = 10
	if err := c.CheckRedeemable(100, time.Now()); !errors.Is(err, ErrCouponUsageExceeded) {
		t.Fatalf("err = %v, want ErrCouponUsageExceeded", err)
	}

	c.UsedCount = 9
	if err := c.CheckRedeemable(100, time.Now()); err != nil {
		t.Fatalf("err = %v, want nil with one use left", err)
	}
}

func TestCheckRedeemableBelowMinimum(t *testing.T) {
	c := activeCoupon(DiscountFixed, 50)
	c.MinimumOrderAmount = 250
	if err := c.CheckRedeemable(249.99, time.Now()); !errors.Is(err, ErrCouponBelowMinimum) {
		t.Fatalf("err = %v, want ErrCouponBelowMinimum", err)
	}
	if err := c.CheckRedeemable(250, time.Now()); err != nil {
		t.Fatalf("err = %v, want nil at exactly the minimum", err)
	}
}
