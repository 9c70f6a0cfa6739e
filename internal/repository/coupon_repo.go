package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateCode is returned when a coupon code already exists; handlers
// report it as a conflict, distinct from generic failures.
var ErrDuplicateCode = errors.New("coupon code already exists")

type CouponRepository struct {
	DB *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{DB: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *CouponRepository) Create(ctx context.Context, c *model.Coupon) (string, error) {
	id := uuid.NewString()
	query := `
		INSERT INTO coupons (coupon_id, code, discount_type, discount_value, minimum_order_amount, maximum_discount_amount, usage_limit, used_count, valid_from, expiry_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $10, $11)
	`
	_, err := r.DB.Exec(ctx, query, id, strings.ToUpper(c.Code), c.DiscountType, c.DiscountValue,
		c.MinimumOrderAmount, c.MaximumDiscountAmount, c.UsageLimit, c.ValidFrom, c.ExpiryDate, c.IsActive, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrDuplicateCode
		}
		return "", err
	}
	return id, nil
}

// GetByCode looks a coupon up by its uppercase-normalized code.
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var c model.Coupon
	query := `
		SELECT coupon_id, code, discount_type, discount_value, minimum_order_amount, maximum_discount_amount, usage_limit, used_count, valid_from, expiry_date, is_active, created_at
		FROM coupons WHERE code=$1 AND deleted_at IS NULL
	`
	err := r.DB.QueryRow(ctx, query, strings.ToUpper(code)).Scan(&c.CouponID, &c.Code, &c.DiscountType, &c.DiscountValue,
		&c.MinimumOrderAmount, &c.MaximumDiscountAmount, &c.UsageLimit, &c.UsedCount, &c.ValidFrom, &c.ExpiryDate, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, model.ErrCouponNotFound
	}
	return &c, nil
}

func (r *CouponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	query := `
		SELECT coupon_id, code, discount_type, discount_value, minimum_order_amount, maximum_discount_amount, usage_limit, used_count, valid_from, expiry_date, is_active, created_at
		FROM coupons WHERE deleted_at IS NULL ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Coupon{}
	for rows.Next() {
		var c model.Coupon
		if err := rows.Scan(&c.CouponID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.MinimumOrderAmount,
			&c.MaximumDiscountAmount, &c.UsageLimit, &c.UsedCount, &c.ValidFrom, &c.ExpiryDate, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func (r *CouponRepository) Update(ctx context.Context, c *model.Coupon) error {
	query := `
		UPDATE coupons
		SET code=$1, discount_type=$2, discount_value=$3, minimum_order_amount=$4, maximum_discount_amount=$5,
			usage_limit=$6, valid_from=$7, expiry_date=$8, is_active=$9
		WHERE coupon_id=$10 AND deleted_at IS NULL
	`
	tag, err := r.DB.Exec(ctx, query, strings.ToUpper(c.Code), c.DiscountType, c.DiscountValue, c.MinimumOrderAmount,
		c.MaximumDiscountAmount, c.UsageLimit, c.ValidFrom, c.ExpiryDate, c.IsActive, c.CouponID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCode
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCouponNotFound
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE coupons SET deleted_at=$1 WHERE coupon_id=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCouponNotFound
	}
	return nil
}

// Redeem increments used_count with the usage-limit check folded into the
// same statement, so concurrent redemptions near the limit cannot push
// used_count past usage_limit. Zero rows affected means the limit was hit.
func (r *CouponRepository) Redeem(ctx context.Context, couponID string) error {
	query := `
		UPDATE coupons
		SET used_count = used_count + 1
		WHERE coupon_id=$1 AND deleted_at IS NULL
		AND (usage_limit IS NULL OR used_count < usage_limit)
	`
	tag, err := r.DB.Exec(ctx, query, couponID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCouponUsageExceeded
	}
	return nil
}

// RedeemTx is Redeem inside the checkout transaction, so the usage increment
// commits or rolls back together with the order.
func (r *CouponRepository) RedeemTx(ctx context.Context, tx pgx.Tx, couponID string) error {
	query := `
		UPDATE coupons
		SET used_count = used_count + 1
		WHERE coupon_id=$1 AND deleted_at IS NULL
		AND (usage_limit IS NULL OR used_count < usage_limit)
	`
	tag, err := tx.Exec(ctx, query, couponID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCouponUsageExceeded
	}
	return nil
}
