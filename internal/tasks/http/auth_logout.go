package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/service"
	"github.com/aussiebroadwan/taskdeck/pkg/httpx"
)

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Logout
//	@Description	Server-side no-op. Tokens are stateless, so logging out is the
//	@Description	client discarding its token pair; any copy it kept remains
//	@Description	valid until expiry.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	httpx.MessageResponse
//	@Router			/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.AuthService.Logout()
	httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "Logged out successfully"})
}
