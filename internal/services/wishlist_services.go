package services

import (
	"context"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
)

type WishlistService struct {
	Repo        *repository.WishlistRepository
	ProductRepo *repository.ProductRepository
}

func NewWishlistService(r *repository.WishlistRepository, pr *repository.ProductRepository) *WishlistService {
	return &WishlistService{Repo: r, ProductRepo: pr}
}

func (s *WishlistService) Add(ctx context.Context, userID, productID string) (string, error) {
	if _, err := s.ProductRepo.GetByID(ctx, productID); err != nil {
		return "", err
	}
	return s.Repo.Add(ctx, userID, productID)
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	return s.Repo.Remove(ctx, userID, productID)
}

func (s *WishlistService) Clear(ctx context.Context, userID string) error {
	return s.Repo.Clear(ctx, userID)
}

func (s *WishlistService) List(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	return s.Repo.List(ctx, userID)
}
