package main

import (
	"net/http"
	"strconv"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/middleware"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"sale_price"`
	IsOnSale    bool     `json:"is_on_sale"`
	ImageURL    string   `json:"image_url"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	CategoryID  *string  `json:"category_id"`
	ThemeID     *string  `json:"theme_id"`
	Stock       int      `json:"stock"`
	IsActive    bool     `json:"is_active"`
}

func (r *productRequest) toModel() *model.Product {
	return &model.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		SalePrice:   r.SalePrice,
		IsOnSale:    r.IsOnSale,
		ImageURL:    r.ImageURL,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		CategoryID:  r.CategoryID,
		ThemeID:     r.ThemeID,
		Stock:       r.Stock,
		IsActive:    r.IsActive,
	}
}

// registerProductRoutes mounts product endpoints.
// Public:
//
//	GET /products       -> list (?category=&theme=&limit=&offset=)
//	GET /products/:id   -> get
//
// Admin:
//
//	POST /products, PUT /products/:id, DELETE /products/:id
func registerProductRoutes(g *echo.Group, ps *services.ProductService) {
	g.GET("/products", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		list, err := ps.List(c.Request().Context(), c.QueryParam("category"), c.QueryParam("theme"), limit, offset)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/products/:id", func(c echo.Context) error {
		p, err := ps.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, p)
	})

	admin := g.Group("/products")
	admin.Use(middleware.JWTMiddleware())

	admin.POST("", middleware.AdminOnly(func(c echo.Context) error {
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := ps.Create(c.Request().Context(), req.toModel())
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"product_id": id})
	}))

	admin.PUT("/:id", middleware.AdminOnly(func(c echo.Context) error {
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		p := req.toModel()
		p.ProductID = c.Param("id")
		if err := ps.Update(c.Request().Context(), p); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	}))

	admin.DELETE("/:id", middleware.AdminOnly(func(c echo.Context) error {
		if err := ps.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	}))
}
