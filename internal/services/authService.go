package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/arzan03/ProductHub/internal/models"
	"github.com/arzan03/ProductHub/internal/storage"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService struct {
	users  storage.UserStore
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAuthService(users storage.UserStore, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Signup registers a new user and returns the stored record with a session
// token. The email check and the insert are separate store calls, so two
// concurrent signups for one address can both succeed.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*models.User, string, error) {
	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, "", ErrUserExists
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, "", err
	}

	hashedPassword, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	// The user stays persisted if signing fails.
	token, err := s.tokens.GenerateJWT(user.Email, user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("signup token for %s: %w", user.ID.Hex(), err)
	}

	return user, token, nil
}

// Login checks credentials and returns the user with a fresh token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", err
	}

	ok, err := s.hasher.VerifyPassword(req.Password, user.Password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateJWT(user.Email, user.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
