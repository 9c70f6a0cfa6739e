package repository

import (
	"context"
	"errors"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (string, error) {
	id := uuid.NewString()
	query := `
		INSERT INTO products (product_id, name, description, price, sale_price, is_on_sale, image_url, sizes, colors, category_id, theme_id, stock, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.DB.Exec(ctx, query, id, p.Name, p.Description, p.Price, p.SalePrice, p.IsOnSale,
		p.ImageURL, p.Sizes, p.Colors, p.CategoryID, p.ThemeID, p.Stock, p.IsActive, time.Now())
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	query := `
		SELECT product_id, name, description, price, sale_price, is_on_sale, image_url, sizes, colors, category_id, theme_id, stock, is_active, created_at
		FROM products WHERE product_id=$1 AND deleted_at IS NULL
	`
	err := r.DB.QueryRow(ctx, query, id).Scan(&p.ProductID, &p.Name, &p.Description, &p.Price, &p.SalePrice, &p.IsOnSale,
		&p.ImageURL, &p.Sizes, &p.Colors, &p.CategoryID, &p.ThemeID, &p.Stock, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, errors.New("product not found")
	}
	return &p, nil
}

// List returns active products, optionally filtered by category or theme.
func (r *ProductRepository) List(ctx context.Context, categoryID, themeID string, limit, offset int) ([]model.Product, error) {
	query := `
		SELECT product_id, name, description, price, sale_price, is_on_sale, image_url, sizes, colors, category_id, theme_id, stock, is_active, created_at
		FROM products
		WHERE deleted_at IS NULL AND is_active = TRUE
		AND ($1 = '' OR category_id::text = $1)
		AND ($2 = '' OR theme_id::text = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.DB.Query(ctx, query, categoryID, themeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Description, &p.Price, &p.SalePrice, &p.IsOnSale,
			&p.ImageURL, &p.Sizes, &p.Colors, &p.CategoryID, &p.ThemeID, &p.Stock, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products
		SET name=$1, description=$2, price=$3, sale_price=$4, is_on_sale=$5, image_url=$6,
			sizes=$7, colors=$8, category_id=$9, theme_id=$10, stock=$11, is_active=$12
		WHERE product_id=$13 AND deleted_at IS NULL
	`
	tag, err := r.DB.Exec(ctx, query, p.Name, p.Description, p.Price, p.SalePrice, p.IsOnSale, p.ImageURL,
		p.Sizes, p.Colors, p.CategoryID, p.ThemeID, p.Stock, p.IsActive, p.ProductID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}

// Delete soft-deletes a product.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE products SET deleted_at=$1 WHERE product_id=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}
