package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/service"
	"github.com/aussiebroadwan/taskdeck/pkg/httpx"
	"github.com/aussiebroadwan/taskdeck/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Exchange email and password for an access/refresh token pair.
//	@Description	Unknown email and wrong password return the same response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		credentialsRequest	true	"email and password"
//	@Success		200		{object}	domain.TokenPair
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		401		{object}	httpx.ErrorResponse
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	pair, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			log.Error("login failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pair)
}
