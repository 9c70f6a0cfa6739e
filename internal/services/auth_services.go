package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

type AuthService struct {
	Users *repository.AuthRepository
}

func NewAuthService(u *repository.AuthRepository) *AuthService {
	return &AuthService{Users: u}
}

func (s *AuthService) validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// Register creates a user with role "user".
func (s *AuthService) Register(ctx context.Context, email, password, name string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.validateEmail(email); err != nil {
		return "", err
	}
	if err := s.validatePassword(password); err != nil {
		return "", err
	}
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errors.New("email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return s.Users.CreateUser(ctx, email, string(hash), strings.TrimSpace(name), "user")
}

// Login verifies credentials and returns the user on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}
	if u.DeletedAt != nil {
		return nil, errors.New("account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}
	return u, nil
}
