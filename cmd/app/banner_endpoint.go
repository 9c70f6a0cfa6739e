package main

import (
	"net/http"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/middleware"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type bannerRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
	Position int    `json:"position"`
	IsActive bool   `json:"is_active"`
}

func registerBannerRoutes(g *echo.Group, bs *services.BannerService) {
	g.GET("/banners", func(c echo.Context) error {
		list, err := bs.List(c.Request().Context(), true)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	admin := g.Group("/banners")
	admin.Use(middleware.JWTMiddleware())

	admin.GET("/all", middleware.AdminOnly(func(c echo.Context) error {
		list, err := bs.List(c.Request().Context(), false)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}))

	admin.POST("", middleware.AdminOnly(func(c echo.Context) error {
		req := new(bannerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		b := &model.Banner{Title: req.Title, ImageURL: req.ImageURL, LinkURL: req.LinkURL, Position: req.Position, IsActive: req.IsActive}
		id, err := bs.Create(c.Request().Context(), b)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"banner_id": id})
	}))

	admin.PUT("/:id", middleware.AdminOnly(func(c echo.Context) error {
		req := new(bannerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		b := &model.Banner{BannerID: c.Param("id"), Title: req.Title, ImageURL: req.ImageURL, LinkURL: req.LinkURL, Position: req.Position, IsActive: req.IsActive}
		if err := bs.Update(c.Request().Context(), b); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	}))

	admin.DELETE("/:id", middleware.AdminOnly(func(c echo.Context) error {
		if err := bs.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	}))
}
