package main

import (
	"net/http"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/middleware"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type checkoutRequest struct {
	CouponCode string `json:"coupon_code"`
}

func registerOrderRoutes(g *echo.Group, osvc *services.OrderService) {
	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware())

	p.POST("/checkout", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(checkoutRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		result, err := osvc.Checkout(c.Request().Context(), claims.UserID, req.CouponCode)
		if err != nil {
			return c.JSON(couponStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, result)
	})

	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		list, err := osvc.ListByUser(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	p.GET("/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		resp, err := osvc.Get(c.Request().Context(), claims.UserID, c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, resp)
	})

	// midtrans webhook, authenticated by its signature
	g.POST("/payments/notification", func(c echo.Context) error {
		payload := map[string]interface{}{}
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		}
		if err := osvc.HandleNotification(c.Request().Context(), payload); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "ok"})
	})
}
