package services

import (
	"context"
	"errors"
	"strings"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
)

type ReviewService struct {
	Repo        *repository.ReviewRepository
	ProductRepo *repository.ProductRepository
}

func NewReviewService(r *repository.ReviewRepository, pr *repository.ProductRepository) *ReviewService {
	return &ReviewService{Repo: r, ProductRepo: pr}
}

func (s *ReviewService) Create(ctx context.Context, rv *model.Review) (string, error) {
	if rv.Rating < 1 || rv.Rating > 5 {
		return "", errors.New("rating must be between 1 and 5")
	}
	rv.Comment = strings.TrimSpace(rv.Comment)
	if _, err := s.ProductRepo.GetByID(ctx, rv.ProductID); err != nil {
		return "", err
	}
	return s.Repo.Create(ctx, rv)
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	return s.Repo.ListByProduct(ctx, productID)
}

func (s *ReviewService) Delete(ctx context.Context, userID, reviewID string) error {
	return s.Repo.Delete(ctx, userID, reviewID)
}
