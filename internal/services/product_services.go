package services

import (
	"context"
	"errors"
	"strings"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
)

type ProductService struct {
	Repo         *repository.ProductRepository
	CategoryRepo *repository.CategoryRepository
	ThemeRepo    *repository.ThemeRepository
}

func NewProductService(r *repository.ProductRepository, cr *repository.CategoryRepository, tr *repository.ThemeRepository) *ProductService {
	return &ProductService{Repo: r, CategoryRepo: cr, ThemeRepo: tr}
}

func (s *ProductService) validate(ctx context.Context, p *model.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Price < 0 {
		return errors.New("price must be >= 0")
	}
	if p.SalePrice != nil && *p.SalePrice < 0 {
		return errors.New("sale price must be >= 0")
	}
	if p.IsOnSale && p.SalePrice == nil {
		return errors.New("sale price is required for products on sale")
	}
	if p.Stock < 0 {
		return errors.New("stock must be >= 0")
	}
	if p.CategoryID != nil {
		if _, err := s.CategoryRepo.GetByID(ctx, *p.CategoryID); err != nil {
			return errors.New("category not found")
		}
	}
	if p.ThemeID != nil {
		if _, err := s.ThemeRepo.GetByID(ctx, *p.ThemeID); err != nil {
			return errors.New("theme not found")
		}
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, p *model.Product) (string, error) {
	if err := s.validate(ctx, p); err != nil {
		return "", err
	}
	return s.Repo.Create(ctx, p)
}

func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, categoryID, themeID string, limit, offset int) ([]model.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.List(ctx, categoryID, themeID, limit, offset)
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if err := s.validate(ctx, p); err != nil {
		return err
	}
	return s.Repo.Update(ctx, p)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
