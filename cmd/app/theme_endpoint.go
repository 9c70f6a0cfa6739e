package main

import (
	"net/http"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/middleware"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type themeRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

func registerThemeRoutes(g *echo.Group, ts *services.ThemeService) {
	// storefront sees active themes only
	g.GET("/themes", func(c echo.Context) error {
		list, err := ts.List(c.Request().Context(), true)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/themes/:id", func(c echo.Context) error {
		t, err := ts.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, t)
	})

	admin := g.Group("/themes")
	admin.Use(middleware.JWTMiddleware())

	admin.GET("/all", middleware.AdminOnly(func(c echo.Context) error {
		list, err := ts.List(c.Request().Context(), false)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}))

	admin.POST("", middleware.AdminOnly(func(c echo.Context) error {
		req := new(themeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		t := &model.Theme{Name: req.Name, Slug: req.Slug, Description: req.Description, ImageURL: req.ImageURL, IsActive: req.IsActive}
		id, err := ts.Create(c.Request().Context(), t)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"theme_id": id})
	}))

	admin.PUT("/:id", middleware.AdminOnly(func(c echo.Context) error {
		req := new(themeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		t := &model.Theme{ThemeID: c.Param("id"), Name: req.Name, Slug: req.Slug, Description: req.Description, ImageURL: req.ImageURL, IsActive: req.IsActive}
		if err := ts.Update(c.Request().Context(), t); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	}))

	admin.DELETE("/:id", middleware.AdminOnly(func(c echo.Context) error {
		if err := ts.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	}))
}
