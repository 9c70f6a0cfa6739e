package repository

import (
	"context"
	"errors"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ThemeRepository struct {
	DB *pgxpool.Pool
}

func NewThemeRepository(db *pgxpool.Pool) *ThemeRepository {
	return &ThemeRepository{DB: db}
}

func (r *ThemeRepository) Create(ctx context.Context, t *model.Theme) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO themes (theme_id, name, slug, description, image_url, is_active, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.DB.Exec(ctx, query, id, t.Name, t.Slug, t.Description, t.ImageURL, t.IsActive, time.Now()); err != nil {
		return "", err
	}
	return id, nil
}

func (r *ThemeRepository) GetByID(ctx context.Context, id string) (*model.Theme, error) {
	var t model.Theme
	query := `SELECT theme_id, name, slug, description, image_url, is_active, created_at FROM themes WHERE theme_id=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&t.ThemeID, &t.Name, &t.Slug, &t.Description, &t.ImageURL, &t.IsActive, &t.CreatedAt); err != nil {
		return nil, errors.New("theme not found")
	}
	return &t, nil
}

// List returns themes; activeOnly hides unpublished collections from the storefront.
func (r *ThemeRepository) List(ctx context.Context, activeOnly bool) ([]model.Theme, error) {
	query := `
		SELECT theme_id, name, slug, description, image_url, is_active, created_at
		FROM themes
		WHERE deleted_at IS NULL AND ($1 = FALSE OR is_active = TRUE)
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Theme{}
	for rows.Next() {
		var t model.Theme
		if err := rows.Scan(&t.ThemeID, &t.Name, &t.Slug, &t.Description, &t.ImageURL, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, nil
}

func (r *ThemeRepository) Update(ctx context.Context, t *model.Theme) error {
	query := `UPDATE themes SET name=$1, slug=$2, description=$3, image_url=$4, is_active=$5 WHERE theme_id=$6 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, t.Name, t.Slug, t.Description, t.ImageURL, t.IsActive, t.ThemeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("theme not found")
	}
	return nil
}

func (r *ThemeRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE themes SET deleted_at=$1 WHERE theme_id=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("theme not found")
	}
	return nil
}
