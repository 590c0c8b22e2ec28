package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskdeck/pkg/httpx"
)

// RootHandler godoc
//
//	@Summary	API banner
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	httpx.MessageResponse
//	@Router		/ [get].
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{
			Message: "Task Management API is running",
		})
	}
}
