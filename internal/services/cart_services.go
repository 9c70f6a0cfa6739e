package services

import (
	"context"
	"errors"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
)

type CartService struct {
	Repo        *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(r *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{Repo: r, ProductRepo: pr}
}

// Add merges quantity into an existing (user, product, size, color) row or
// creates one. Returns the row id.
func (s *CartService) Add(ctx context.Context, userID, productID string, qty int, size, color string) (string, error) {
	if qty < 1 {
		return "", errors.New("quantity must be >= 1")
	}
	p, err := s.ProductRepo.GetByID(ctx, productID)
	if err != nil {
		return "", err
	}
	if !p.IsActive {
		return "", errors.New("product is not available")
	}
	if size != "" && !contains(p.Sizes, size) {
		return "", errors.New("size not offered for this product")
	}
	if color != "" && !contains(p.Colors, color) {
		return "", errors.New("color not offered for this product")
	}
	return s.Repo.AddOrIncrement(ctx, userID, productID, qty, size, color)
}

// Update sets the exact quantity for a cart row. Quantities below 1 are
// rejected; removal is an explicit operation.
func (s *CartService) Update(ctx context.Context, userID, itemID string, qty int) error {
	if qty < 1 {
		return errors.New("quantity must be >= 1")
	}
	return s.Repo.SetQuantity(ctx, userID, itemID, qty)
}

func (s *CartService) Remove(ctx context.Context, userID, itemID string) error {
	return s.Repo.Remove(ctx, userID, itemID)
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.Repo.Clear(ctx, userID)
}

// Get returns the cart with its item count and subtotal.
func (s *CartService) Get(ctx context.Context, userID string) (*model.CartResponse, error) {
	items, err := s.Repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &model.CartResponse{Items: items}
	for i := range items {
		resp.Count += items[i].Quantity
		resp.Subtotal += items[i].UnitPrice() * float64(items[i].Quantity)
	}
	return resp, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
