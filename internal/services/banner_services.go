package services

import (
	"context"
	"errors"
	"strings"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
)

type BannerService struct {
	Repo *repository.BannerRepository
}

func NewBannerService(r *repository.BannerRepository) *BannerService {
	return &BannerService{Repo: r}
}

func (s *BannerService) validate(b *model.Banner) error {
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" {
		return errors.New("title is required")
	}
	if b.ImageURL == "" {
		return errors.New("image url is required")
	}
	if b.Position < 0 {
		return errors.New("position must be >= 0")
	}
	return nil
}

func (s *BannerService) Create(ctx context.Context, b *model.Banner) (string, error) {
	if err := s.validate(b); err != nil {
		return "", err
	}
	return s.Repo.Create(ctx, b)
}

func (s *BannerService) List(ctx context.Context, activeOnly bool) ([]model.Banner, error) {
	return s.Repo.List(ctx, activeOnly)
}

func (s *BannerService) Update(ctx context.Context, b *model.Banner) error {
	if err := s.validate(b); err != nil {
		return err
	}
	return s.Repo.Update(ctx, b)
}

func (s *BannerService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
