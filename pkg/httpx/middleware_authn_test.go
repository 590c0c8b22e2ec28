package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	userID string
	err    error
}

func (s stubVerifier) VerifyAccess(token string) (string, error) {
	return s.userID, s.err
}

func TestAuthnMiddleware(t *testing.T) {
	t.Parallel()

	echoUser := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(UserIDFromContext(r.Context())))
	})

	t.Run("missing header", func(t *testing.T) {
		h := Chain(echoUser, AuthnMiddleware(stubVerifier{userID: "u1"}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		h := Chain(echoUser, AuthnMiddleware(stubVerifier{userID: "u1"}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("verification failure", func(t *testing.T) {
		h := Chain(echoUser, AuthnMiddleware(stubVerifier{err: errors.New("bad token")}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches handler with user id", func(t *testing.T) {
		h := Chain(echoUser, AuthnMiddleware(stubVerifier{userID: "user-42"}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-42", rec.Body.String())
	})
}

func TestUserIDFromContextUnset(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, UserIDFromContext(req.Context()))
}
