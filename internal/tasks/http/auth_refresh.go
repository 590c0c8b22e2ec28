package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/service"
	"github.com/aussiebroadwan/taskdeck/pkg/httpx"
)

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Refresh tokens
//	@Description	Exchange a valid refresh token for a new access/refresh pair.
//	@Description	The presented refresh token stays valid; nothing is revoked.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		refreshRequest	true	"refresh token"
//	@Success		200		{object}	domain.TokenPair
//	@Failure		401		{object}	httpx.ErrorResponse	"invalid or expired refresh token"
//	@Router			/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	pair, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		// Every refresh failure maps to the same response; the caller is
		// not told whether the token was malformed, forged, or expired.
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pair)
}
