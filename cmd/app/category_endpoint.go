package main

import (
	"net/http"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/middleware"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type categoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func registerCategoryRoutes(g *echo.Group, cs *services.CategoryService) {
	g.GET("/categories", func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/categories/:id", func(c echo.Context) error {
		cat, err := cs.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cat)
	})

	admin := g.Group("/categories")
	admin.Use(middleware.JWTMiddleware())

	admin.POST("", middleware.AdminOnly(func(c echo.Context) error {
		req := new(categoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := cs.Create(c.Request().Context(), &model.Category{Name: req.Name, Slug: req.Slug, Description: req.Description})
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"category_id": id})
	}))

	admin.PUT("/:id", middleware.AdminOnly(func(c echo.Context) error {
		req := new(categoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		cat := &model.Category{CategoryID: c.Param("id"), Name: req.Name, Slug: req.Slug, Description: req.Description}
		if err := cs.Update(c.Request().Context(), cat); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	}))

	admin.DELETE("/:id", middleware.AdminOnly(func(c echo.Context) error {
		if err := cs.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	}))
}
