package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
)

type fakeCouponStore struct {
	coupons   map[string]*model.Coupon
	redeemed  []string
	redeemErr error
}

func (f *fakeCouponStore) GetByCode(_ context.Context, code string) (*model.Coupon, error) {
	c, ok := f.coupons[code]
	if !ok {
		return nil, model.ErrCouponNotFound
	}
	return c, nil
}

func (f *fakeCouponStore) Redeem(_ context.Context, couponID string) error {
	if f.redeemErr != nil {
		return f.redeemErr
	}
	f.redeemed = append(f.redeemed, couponID)
	return nil
}

func newCouponFixture() (*CouponService, *fakeCouponStore) {
	maxDiscount := 200.0
	store := &fakeCouponStore{coupons: map[string]*model.Coupon{
		"POP20": {
			CouponID:              "cp-1",
			Code:                  "POP20",
			DiscountType:          model.DiscountPercentage,
			DiscountValue:         20,
			MaximumDiscountAmount: &maxDiscount,
			ValidFrom:             time.Now().Add(-time.Hour),
			ExpiryDate:            time.Now().Add(time.Hour),
			IsActive:              true,
		},
	}}
	return &CouponService{Store: store}, store
}

func TestValidateNormalizesCode(t *testing.T) {
	svc, _ := newCouponFixture()

	discount, coupon, err := svc.Validate(context.Background(), "  pop20 ", 1500, time.Now())
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if coupon.Code != "POP20" {
		t.Fatalf("coupon code = %q, want POP20", coupon.Code)
	}
	if discount != 200 {
		t.Fatalf("discount = %v, want 200", discount)
	}
}

func TestValidateEmptyCode(t *testing.T) {
	svc, _ := newCouponFixture()
	if _, _, err := svc.Validate(context.Background(), "   ", 100, time.Now()); err == nil {
		t.Fatal("expected error for empty code")
	}
}

func TestValidateUnknownCode(t *testing.T) {
	svc, _ := newCouponFixture()
	_, _, err := svc.Validate(context.Background(), "NOPE", 100, time.Now())
	if !errors.Is(err, model.ErrCouponNotFound) {
		t.Fatalf("err = %v, want ErrCouponNotFound", err)
	}
}

func TestValidateIsPure(t *testing.T) {
	svc, store := newCouponFixture()
	now := time.Now()

	first, _, err := svc.Validate(context.Background(), "POP20", 750, now)
	if err != nil {
		t.Fatalf("first Validate returned error: %v", err)
	}
	second, _, err := svc.Validate(context.Background(), "POP20", 750, now)
	if err != nil {
		t.Fatalf("second Validate returned error: %v", err)
	}
	if first != second {
		t.Fatalf("same inputs gave different discounts: %v then %v", first, second)
	}
	if len(store.redeemed) != 0 {
		t.Fatal("Validate must not redeem")
	}
}

func TestValidateExpiredCoupon(t *testing.T) {
	svc, store := newCouponFixture()
	store.coupons["POP20"].ExpiryDate = time.Now().Add(-time.Minute)

	_, _, err := svc.Validate(context.Background(), "POP20", 1500, time.Now())
	if !errors.Is(err, model.ErrCouponExpired) {
		t.Fatalf("err = %v, want ErrCouponExpired", err)
	}
}

func TestRedeemDelegatesToStore(t *testing.T) {
	svc, store := newCouponFixture()
	if err := svc.Redeem(context.Background(), "cp-1"); err != nil {
		t.Fatalf("Redeem returned error: %v", err)
	}
	if len(store.redeemed) != 1 || store.redeemed[0] != "cp-1" {
		t.Fatalf("redeemed = %v, want [cp-1]", store.redeemed)
	}

	store.redeemErr = model.ErrCouponUsageExceeded
	if err := svc.Redeem(context.Background(), "cp-1"); !errors.Is(err, model.ErrCouponUsageExceeded) {
		t.Fatalf("err = %v, want ErrCouponUsageExceeded", err)
	}
}
