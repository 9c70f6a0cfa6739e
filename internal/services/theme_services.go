package services

import (
	"context"
	"errors"
	"strings"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
)

type ThemeService struct {
	Repo *repository.ThemeRepository
}

func NewThemeService(r *repository.ThemeRepository) *ThemeService {
	return &ThemeService{Repo: r}
}

func (s *ThemeService) Create(ctx context.Context, t *model.Theme) (string, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return "", errors.New("name is required")
	}
	if t.Slug == "" {
		t.Slug = Slugify(t.Name)
	}
	return s.Repo.Create(ctx, t)
}

func (s *ThemeService) Get(ctx context.Context, id string) (*model.Theme, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ThemeService) List(ctx context.Context, activeOnly bool) ([]model.Theme, error) {
	return s.Repo.List(ctx, activeOnly)
}

func (s *ThemeService) Update(ctx context.Context, t *model.Theme) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return errors.New("name is required")
	}
	if t.Slug == "" {
		t.Slug = Slugify(t.Name)
	}
	return s.Repo.Update(ctx, t)
}

func (s *ThemeService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
