package repository

import (
	"context"
	"errors"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BannerRepository struct {
	DB *pgxpool.Pool
}

func NewBannerRepository(db *pgxpool.Pool) *BannerRepository {
	return &BannerRepository{DB: db}
}

func (r *BannerRepository) Create(ctx context.Context, b *model.Banner) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO banners (banner_id, title, image_url, link_url, position, is_active, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.DB.Exec(ctx, query, id, b.Title, b.ImageURL, b.LinkURL, b.Position, b.IsActive, time.Now()); err != nil {
		return "", err
	}
	return id, nil
}

func (r *BannerRepository) List(ctx context.Context, activeOnly bool) ([]model.Banner, error) {
	query := `
		SELECT banner_id, title, image_url, link_url, position, is_active, created_at
		FROM banners
		WHERE deleted_at IS NULL AND ($1 = FALSE OR is_active = TRUE)
		ORDER BY position, created_at
	`
	rows, err := r.DB.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Banner{}
	for rows.Next() {
		var b model.Banner
		if err := rows.Scan(&b.BannerID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Position, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, nil
}

func (r *BannerRepository) Update(ctx context.Context, b *model.Banner) error {
	query := `UPDATE banners SET title=$1, image_url=$2, link_url=$3, position=$4, is_active=$5 WHERE banner_id=$6 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, b.Title, b.ImageURL, b.LinkURL, b.Position, b.IsActive, b.BannerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("banner not found")
	}
	return nil
}

func (r *BannerRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE banners SET deleted_at=$1 WHERE banner_id=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("banner not found")
	}
	return nil
}
