package service

import (
	"context"
	"fmt"
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and profile lookup. Passwords
// are stored only as bcrypt hashes; the plaintext is discarded as soon as
// the hash is computed.
type AuthService struct {
	users  UserStore
	tokens *TokenManager
	logger *zap.Logger
}

func NewAuthService(users UserStore, tokens *TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", &ValidationError{Msg: "email, password, and name are required"}
	}

	if existing, err := s.users.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", &ConflictError{Msg: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique index catches registrations racing on the same email.
		if IsConflict(err) {
			return nil, "", err
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", &ValidationError{Msg: "email and password are required"}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, "", &AuthError{Msg: "invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", &AuthError{Msg: "invalid credentials"}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyToken resolves a bearer token to the user id it was issued for.
func (s *AuthService) VerifyToken(token string) (string, error) {
	return s.tokens.Verify(token)
}
