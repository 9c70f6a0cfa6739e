package main

import (
	"net/http"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/middleware"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes(g *echo.Group, as *services.AuthService) {
	p := g.Group("/auth")

	p.POST("/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		userID, err := as.Register(c.Request().Context(), req.Email, req.Password, req.Name)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"user_id": userID})
	})

	p.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		u, err := as.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		token, err := middleware.GenerateToken(u.UserID, u.Email, u.Role, 24)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not issue token"})
		}
		return c.JSON(http.StatusOK, map[string]string{
			"token":   token,
			"user_id": u.UserID,
			"role":    u.Role,
		})
	})
}
