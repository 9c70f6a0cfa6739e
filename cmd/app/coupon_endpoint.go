package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/middleware"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type couponRequest struct {
	Code                  string    `json:"code"`
	DiscountType          string    `json:"discount_type"`
	DiscountValue         float64   `json:"discount_value"`
	MinimumOrderAmount    float64   `json:"minimum_order_amount"`
	MaximumDiscountAmount *float64  `json:"maximum_discount_amount"`
	UsageLimit            *int      `json:"usage_limit"`
	ValidFrom             time.Time `json:"valid_from"`
	ExpiryDate            time.Time `json:"expiry_date"`
	IsActive              bool      `json:"is_active"`
}

func (r *couponRequest) toModel() *model.Coupon {
	return &model.Coupon{
		Code:                  r.Code,
		DiscountType:          r.DiscountType,
		DiscountValue:         r.DiscountValue,
		MinimumOrderAmount:    r.MinimumOrderAmount,
		MaximumDiscountAmount: r.MaximumDiscountAmount,
		UsageLimit:            r.UsageLimit,
		ValidFrom:             r.ValidFrom,
		ExpiryDate:            r.ExpiryDate,
		IsActive:              r.IsActive,
	}
}

// couponStatus maps coupon errors to HTTP status codes.
func couponStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrCouponNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateCode):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func registerCouponRoutes(g *echo.Group, cs *services.CouponService) {
	// validation is called from the cart page before checkout
	g.GET("/coupons/:code", func(c echo.Context) error {
		subtotal, err := strconv.ParseFloat(c.QueryParam("subtotal"), 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "subtotal is required"})
		}
		discount, coupon, err := cs.Validate(c.Request().Context(), c.Param("code"), subtotal, time.Now())
		if err != nil {
			return c.JSON(couponStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"discount": discount,
			"coupon":   coupon,
		})
	})

	admin := g.Group("/admin/coupons")
	admin.Use(middleware.JWTMiddleware())

	admin.GET("", middleware.AdminOnly(func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}))

	admin.POST("", middleware.AdminOnly(func(c echo.Context) error {
		req := new(couponRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := cs.Create(c.Request().Context(), req.toModel())
		if err != nil {
			return c.JSON(couponStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"coupon_id": id})
	}))

	admin.PUT("/:id", middleware.AdminOnly(func(c echo.Context) error {
		req := new(couponRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		coupon := req.toModel()
		coupon.CouponID = c.Param("id")
		if err := cs.Update(c.Request().Context(), coupon); err != nil {
			return c.JSON(couponStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	}))

	admin.DELETE("/:id", middleware.AdminOnly(func(c echo.Context) error {
		if err := cs.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(couponStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	}))
}
