package repository

import (
	"context"
	"errors"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *model.Category) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO categories (category_id, name, slug, description, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.DB.Exec(ctx, query, id, c.Name, c.Slug, c.Description, time.Now()); err != nil {
		return "", err
	}
	return id, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	query := `SELECT category_id, name, slug, description, created_at FROM categories WHERE category_id=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&c.CategoryID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
		return nil, errors.New("category not found")
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT category_id, name, slug, description, created_at FROM categories WHERE deleted_at IS NULL ORDER BY name`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *model.Category) error {
	query := `UPDATE categories SET name=$1, slug=$2, description=$3 WHERE category_id=$4 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, c.Name, c.Slug, c.Description, c.CategoryID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE categories SET deleted_at=$1 WHERE category_id=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}
