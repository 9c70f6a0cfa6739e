package repository

import (
	"context"
	"errors"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepository struct {
	DB *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{DB: db}
}

// CreateUser inserts a new user and returns its id.
func (r *AuthRepository) CreateUser(ctx context.Context, email, passwordHash, name, role string) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO users (user_id, email, password_hash, name, role, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.DB.Exec(ctx, query, id, email, passwordHash, name, role, time.Now()); err != nil {
		return "", err
	}
	return id, nil
}

func (r *AuthRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT user_id, email, password_hash, name, role, created_at, deleted_at
			FROM users
			WHERE email=$1`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt, &u.DeletedAt); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *AuthRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	query := `SELECT user_id, email, name, role, created_at, deleted_at FROM users WHERE user_id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&u.UserID, &u.Email, &u.Name, &u.Role, &u.CreatedAt, &u.DeletedAt); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *AuthRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
