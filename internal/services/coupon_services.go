package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
)

// CouponStore is the slice of the coupon repository validation needs;
// an interface so tests can substitute a fake.
type CouponStore interface {
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
	Redeem(ctx context.Context, couponID string) error
}

type CouponService struct {
	Store CouponStore
	Repo  *repository.CouponRepository // admin CRUD; unset in validation-only tests
}

func NewCouponService(repo *repository.CouponRepository) *CouponService {
	return &CouponService{Store: repo, Repo: repo}
}

// Validate decides whether the code may be applied to an order with the
// given subtotal at time now, and computes the discount. It has no side
// effects; Redeem consumes a use at order placement.
func (s *CouponService) Validate(ctx context.Context, code string, subtotal float64, now time.Time) (float64, *model.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return 0, nil, errors.New("coupon code is required")
	}
	if subtotal < 0 {
		return 0, nil, errors.New("subtotal must be >= 0")
	}

	c, err := s.Store.GetByCode(ctx, code)
	if err != nil {
		return 0, nil, err
	}
	if err := c.CheckRedeemable(subtotal, now); err != nil {
		return 0, nil, err
	}
	return c.DiscountFor(subtotal), c, nil
}

// Redeem consumes one use of the coupon. The store increments used_count
// and re-checks the limit in a single statement, so this is safe under
// concurrent redemptions.
func (s *CouponService) Redeem(ctx context.Context, couponID string) error {
	return s.Store.Redeem(ctx, couponID)
}

func validateCouponFields(c *model.Coupon) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		return errors.New("code is required")
	}
	if c.DiscountType != model.DiscountPercentage && c.DiscountType != model.DiscountFixed {
		return errors.New("discount type must be percentage or fixed")
	}
	if c.DiscountValue <= 0 {
		return errors.New("discount value must be > 0")
	}
	if c.DiscountType == model.DiscountPercentage && c.DiscountValue > 100 {
		return errors.New("percentage discount cannot exceed 100")
	}
	if c.MinimumOrderAmount < 0 {
		return errors.New("minimum order amount must be >= 0")
	}
	if c.MaximumDiscountAmount != nil && *c.MaximumDiscountAmount <= 0 {
		return errors.New("maximum discount amount must be > 0")
	}
	if c.UsageLimit != nil && *c.UsageLimit <= 0 {
		return errors.New("usage limit must be > 0")
	}
	if !c.ExpiryDate.After(c.ValidFrom) {
		return errors.New("expiry date must be after valid from")
	}
	return nil
}

func (s *CouponService) Create(ctx context.Context, c *model.Coupon) (string, error) {
	if err := validateCouponFields(c); err != nil {
		return "", err
	}
	return s.Repo.Create(ctx, c)
}

func (s *CouponService) List(ctx context.Context) ([]model.Coupon, error) {
	return s.Repo.List(ctx)
}

func (s *CouponService) Update(ctx context.Context, c *model.Coupon) error {
	if err := validateCouponFields(c); err != nil {
		return err
	}
	return s.Repo.Update(ctx, c)
}

func (s *CouponService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
