package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/credkarma/credkarma/internal/models"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// UserExists returns true if a user with the given username or email exists.
	UserExists(ctx context.Context, username, email string) (bool, error)
	// CreateUser inserts a new user row with the given password hash.
	CreateUser(ctx context.Context, u models.User, passwordHash string) error
	// GetByLogin fetches a user by username or email, plus the password hash.
	GetByLogin(ctx context.Context, login string) (models.User, string, error)
	// GetByID fetches a user by primary key.
	GetByID(ctx context.Context, id string) (models.User, error)
}

// TokenRepository defines the token persistence operations required by the
// authentication service.
type TokenRepository interface {
	// Insert stores a freshly issued token with its expiry.
	Insert(ctx context.Context, token, userID string, expiresAt time.Time) error
	// Lookup resolves a token to its user ID.
	Lookup(ctx context.Context, token string) (string, error)
	// Delete revokes a token.
	Delete(ctx context.Context, token string) error
}

// AuthService implements registration, login, and token resolution by
// delegating to the user and token repositories.
type AuthService struct {
	users    UserRepository
	tokens   TokenRepository
	tokenTTL time.Duration
}

// NewAuthService constructs a new AuthService. tokenTTL bounds the lifetime
// of issued bearer tokens.
func NewAuthService(users UserRepository, tokens TokenRepository, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, tokens: tokens, tokenTTL: tokenTTL}
}

// Register creates a new account and issues a bearer token for it.
// Returns ErrUserExists when the username or email is already taken.
func (s *AuthService) Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error) {
	exists, err := s.users.UserExists(ctx, data.Username, data.Email)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if exists {
		return models.AuthResponse{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthResponse{}, err
	}

	role := data.Role
	if role == "" {
		role = models.RoleUser
	}
	user := models.User{
		ID:       uuid.NewString(),
		Username: data.Username,
		Email:    data.Email,
		Role:     role,
	}
	if err := s.users.CreateUser(ctx, user, string(hash)); err != nil {
		return models.AuthResponse{}, err
	}

	return s.issueToken(ctx, user)
}

// Login verifies the credentials and issues a bearer token.
// Returns ErrInvalidCredentials for an unknown login or a wrong password.
func (s *AuthService) Login(ctx context.Context, creds models.LoginCredentials) (models.AuthResponse, error) {
	user, hash, err := s.users.GetByLogin(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		return models.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	return s.issueToken(ctx, user)
}

// Me returns the current profile of the authenticated user.
func (s *AuthService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// ResolveToken maps a bearer token to its user ID. Returns
// ErrInvalidCredentials for unknown or expired tokens.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (string, error) {
	userID, err := s.tokens.Lookup(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	return userID, nil
}

// Logout revokes the bearer token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Delete(ctx, token)
}

func (s *AuthService) issueToken(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token := uuid.NewString()
	if err := s.tokens.Insert(ctx, token, user.ID, time.Now().Add(s.tokenTTL)); err != nil {
		return models.AuthResponse{}, err
	}
	return models.AuthResponse{Token: token, User: user}, nil
}
