package main

import (
	"errors"
	"net/http"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/middleware"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type addWishlistRequest struct {
	ProductID string `json:"product_id"`
}

func registerWishlistRoutes(g *echo.Group, ws *services.WishlistService) {
	p := g.Group("/wishlist")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		list, err := ws.List(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(addWishlistRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := ws.Add(c.Request().Context(), claims.UserID, req.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrAlreadyInWishlist) {
				return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"id": id})
	})

	p.DELETE("/:productId", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if err := ws.Remove(c.Request().Context(), claims.UserID, c.Param("productId")); err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})

	p.DELETE("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if err := ws.Clear(c.Request().Context(), claims.UserID); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})
}
