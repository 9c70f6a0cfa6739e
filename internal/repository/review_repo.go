package repository

import (
	"context"
	"errors"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateReview is returned when a user reviews the same product twice.
var ErrDuplicateReview = errors.New("product already reviewed")

type ReviewRepository struct {
	DB *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *model.Review) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO reviews (review_id, user_id, product_id, rating, comment, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.DB.Exec(ctx, query, id, rv.UserID, rv.ProductID, rv.Rating, rv.Comment, time.Now()); err != nil {
		if isUniqueViolation(err) {
			return "", ErrDuplicateReview
		}
		return "", err
	}
	return id, nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	query := `
		SELECT rv.review_id, rv.user_id, rv.product_id, rv.rating, rv.comment, u.name, rv.created_at
		FROM reviews rv
		JOIN users u ON u.user_id = rv.user_id
		WHERE rv.product_id=$1 AND rv.deleted_at IS NULL
		ORDER BY rv.created_at DESC
	`
	rows, err := r.DB.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ReviewID, &rv.UserID, &rv.ProductID, &rv.Rating, &rv.Comment, &rv.UserName, &rv.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, rv)
	}
	return list, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, userID, reviewID string) error {
	query := `UPDATE reviews SET deleted_at=$1 WHERE review_id=$2 AND user_id=$3 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), reviewID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("review not found")
	}
	return nil
}
