package main

import (
	"errors"
	"net/http"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/middleware"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func registerReviewRoutes(g *echo.Group, rs *services.ReviewService) {
	g.GET("/products/:id/reviews", func(c echo.Context) error {
		list, err := rs.ListByProduct(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	p := g.Group("")
	p.Use(middleware.JWTMiddleware())

	p.POST("/products/:id/reviews", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(reviewRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		rv := &model.Review{
			UserID:    claims.UserID,
			ProductID: c.Param("id"),
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		id, err := rs.Create(c.Request().Context(), rv)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"review_id": id})
	})

	p.DELETE("/reviews/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if err := rs.Delete(c.Request().Context(), claims.UserID, c.Param("id")); err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
