package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
)

var slugCleanup = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a URL slug.
func Slugify(name string) string {
	s := slugCleanup.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(s, "-")
}

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(r *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: r}
}

func (s *CategoryService) Create(ctx context.Context, c *model.Category) (string, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return "", errors.New("name is required")
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return s.Repo.Create(ctx, c)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.Repo.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, c *model.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return s.Repo.Update(ctx, c)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
