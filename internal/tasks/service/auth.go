package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/domain"
	"github.com/aussiebroadwan/taskdeck/internal/tasks/store"
	"github.com/aussiebroadwan/taskdeck/pkg/cryptox"
	"github.com/aussiebroadwan/taskdeck/pkg/idx"
	"github.com/aussiebroadwan/taskdeck/pkg/slogx"
)

// MinPasswordLength is the minimum accepted password length on register.
const MinPasswordLength = 6

var (
	ErrValidation = errors.New("validation_failed")

	ErrDuplicateUser = errors.New("duplicate_user")

	// ErrInvalidCredentials is returned for both unknown-email and
	// wrong-password so a caller cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// AuthService orchestrates register, login, refresh, and logout. It holds no
// state across requests; everything lives in the store or in the tokens the
// client carries.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// Register validates the credentials, creates the user, and returns a fresh
// token pair.
func (s *AuthService) Register(ctx context.Context, email, password string) (domain.TokenPair, error) {
	if !validEmail(email) || len(password) < MinPasswordLength {
		return domain.TokenPair{}, ErrValidation
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.TokenPair{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.TokenPair{}, ErrDuplicateUser
		}
		return domain.TokenPair{}, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID)
	return s.Tokens.Issue(user.ID)
}

// Login verifies email+password and returns a fresh token pair. Unknown
// email and failed hash verification are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	if !validEmail(email) {
		return domain.TokenPair{}, ErrValidation
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.TokenPair{}, ErrInvalidCredentials
	}

	return s.Tokens.Issue(user.ID)
}

// Refresh exchanges a valid refresh token for a new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	return s.Tokens.Refresh(refreshToken)
}

// Logout is a server-side no-op: tokens are stateless and the client simply
// discards its pair.
func (s *AuthService) Logout() {}

// validEmail accepts addr-spec emails only, no display names.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
