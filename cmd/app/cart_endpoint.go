package main

import (
	"net/http"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/middleware"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")
	p.Use(middleware.JWTMiddleware())

	// GET cart
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		cart, err := cs.Get(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cart)
	})

	// ADD item (merges into an existing row for the same product/size/color)
	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		id, err := cs.Add(c.Request().Context(), claims.UserID, req.ProductID, req.Quantity, req.Size, req.Color)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"id": id})
	})

	// UPDATE quantity
	p.PUT("/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.Update(c.Request().Context(), claims.UserID, c.Param("id"), req.Quantity); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	// REMOVE item
	p.DELETE("/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if err := cs.Remove(c.Request().Context(), claims.UserID, c.Param("id")); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if err := cs.Clear(c.Request().Context(), claims.UserID); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})
}
