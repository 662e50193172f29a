package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"restaurant-inventory/internal/model"
	"restaurant-inventory/internal/security"
	"restaurant-inventory/pkg/apierror"
)

const (
	msgBadCredentials = "incorrect username or password"
	msgInvalidToken   = "invalid or expired token"
	msgUserNotFound   = "Usuario no encontrado"
)

type userStore interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, id int64, upd model.UserUpdate, now time.Time) (model.User, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type passwordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) bool
	VerifyMissing(plaintext string) bool
}

type tokenIssuer interface {
	IssueAccess(subject string) (string, error)
	IssueRefresh(subject string) (string, time.Time, error)
	Validate(token string) (*security.Claims, error)
}

type AuthService struct {
	users  userStore
	hasher passwordHasher
	tokens tokenIssuer
}

func NewAuthService(users userStore, hasher passwordHasher, tokens tokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Login answers unknown users and wrong passwords with the same error and comparable latency.
func (s *AuthService) Login(ctx context.Context, username string, password string) (model.TokenPair, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		s.hasher.VerifyMissing(password)
		return model.TokenPair{}, apierror.Unauthenticated(msgBadCredentials)
	}
	if err != nil {
		return model.TokenPair{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return model.TokenPair{}, apierror.Unauthenticated(msgBadCredentials)
	}

	return s.issuePair(user.Username)
}

// Refresh exchanges a refresh token for a new pair, provided its subject still exists.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	claims, err := s.tokens.Validate(refreshToken)
	if err != nil || !claims.IsRefresh() {
		return model.TokenPair{}, apierror.Unauthenticated(msgInvalidToken)
	}

	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, apierror.Unauthenticated(msgInvalidToken)
	}
	if err != nil {
		return model.TokenPair{}, err
	}

	return s.issuePair(user.Username)
}

// CurrentUser resolves the subject attached by the auth gate.
func (s *AuthService) CurrentUser(ctx context.Context, username string) (model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return model.User{}, mapStoreError(err, msgUserNotFound)
	}
	return user, nil
}

func (s *AuthService) issuePair(subject string) (model.TokenPair, error) {
	access, err := s.tokens.IssueAccess(subject)
	if err != nil {
		return model.TokenPair{}, err
	}

	refresh, refreshExp, err := s.tokens.IssueRefresh(subject)
	if err != nil {
		return model.TokenPair{}, err
	}

	slog.Debug("token pair issued", "subject", subject)
	return model.TokenPair{
		AccessToken:      access,
		TokenType:        "bearer",
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}
