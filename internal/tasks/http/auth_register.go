package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/service"
	"github.com/aussiebroadwan/taskdeck/pkg/httpx"
	"github.com/aussiebroadwan/taskdeck/pkg/slogx"
)

// credentialsRequest is the JSON body shared by register and login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register
//	@Description	Create a new account and return an access/refresh token pair.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		credentialsRequest	true	"email and password (min 6 chars)"
//	@Success		201		{object}	domain.TokenPair
//	@Failure		400		{object}	httpx.ErrorResponse	"invalid input or duplicate email"
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	pair, err := h.AuthService.Register(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		case errors.Is(err, service.ErrDuplicateUser):
			httpx.WriteError(w, http.StatusBadRequest, "User already exists")
		default:
			log.Error("register failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pair)
}
