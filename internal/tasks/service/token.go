package service

import (
	"errors"
	"time"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/domain"
	"github.com/aussiebroadwan/taskdeck/pkg/jwtx"
)

var (
	// ErrInvalidToken covers every access token failure: malformed, bad
	// signature, expired.
	ErrInvalidToken = errors.New("invalid_token")

	// ErrInvalidRefresh is the refresh-side counterpart.
	ErrInvalidRefresh = errors.New("invalid_refresh_token")
)

// TokenService issues and verifies the stateless access/refresh token pair.
// The two token kinds are signed with distinct secrets, so one never
// verifies as the other. There is no revocation: any unexpired, correctly
// signed token is accepted, and multiple refresh tokens for one user may be
// valid at once.
type TokenService struct {
	AccessSecret  []byte
	RefreshSecret []byte
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Issue signs a fresh access/refresh pair for userID.
func (s *TokenService) Issue(userID string) (domain.TokenPair, error) {
	now := time.Now()

	access, err := jwtx.Sign(jwtx.NewClaims(userID, s.Issuer, s.AccessTTL, now), s.AccessSecret)
	if err != nil {
		return domain.TokenPair{}, err
	}

	refresh, err := jwtx.Sign(jwtx.NewClaims(userID, s.Issuer, s.RefreshTTL, now), s.RefreshSecret)
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess resolves an access token to its subject user id. Pure and
// side-effect free, safe for unbounded parallel calls.
func (s *TokenService) VerifyAccess(token string) (string, error) {
	claims, err := jwtx.Verify(token, s.AccessSecret)
	if err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// VerifyRefresh resolves a refresh token to its subject user id.
func (s *TokenService) VerifyRefresh(token string) (string, error) {
	claims, err := jwtx.Verify(token, s.RefreshSecret)
	if err != nil {
		return "", ErrInvalidRefresh
	}
	return claims.Subject, nil
}

// Refresh verifies the presented refresh token and mints a new pair for the
// same subject. The old refresh token is not invalidated.
func (s *TokenService) Refresh(refreshToken string) (domain.TokenPair, error) {
	userID, err := s.VerifyRefresh(refreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return s.Issue(userID)
}
