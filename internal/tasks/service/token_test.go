package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/taskdeck/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() *TokenService {
	return &TokenService{
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
		Issuer:        "taskdeck-test",
		AccessTTL:     jwtx.DefaultAccessTokenTTL,
		RefreshTTL:    jwtx.DefaultRefreshTokenTTL,
	}
}

func TestTokenServiceIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	pair, err := svc.Issue("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	userID, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)

	userID, err = svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestTokenKindsDoNotCross(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	pair, err := svc.Issue("user-1")
	require.NoError(t, err)

	// Distinct secrets: a refresh token must not pass as an access token.
	_, err = svc.VerifyAccess(pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyRefresh(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestVerifyAccessExpired(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()
	svc.AccessTTL = -time.Second

	pair, err := svc.Issue("user-1")
	require.NoError(t, err)

	_, err = svc.VerifyAccess(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessMalformed(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.VerifyAccess(tok)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestRefreshDoesNotRevokeOldToken(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	pair, err := svc.Issue("user-1")
	require.NoError(t, err)

	next, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	userID, err := svc.VerifyAccess(next.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)

	// Multiple refresh tokens for one user coexist: the old one keeps
	// working after a refresh.
	again, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, again.AccessToken)
}

func TestRefreshRejectsInvalidToken(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	_, err := svc.Refresh("not-a-token")
	require.ErrorIs(t, err, ErrInvalidRefresh)

	other := newTestTokenService()
	other.RefreshSecret = []byte("different-secret")
	pair, err := other.Issue("user-1")
	require.NoError(t, err)

	_, err = svc.Refresh(pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}
