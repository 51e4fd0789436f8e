package api

import (
	"net/http"

	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
)

// Health проверяет доступность хранилища.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} shared.HealthResponse
// @Failure      503 {object} shared.MessageResponse "Store Unavailable"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Health.Ping(r.Context()); err != nil {
		h.Log.Sugar().Warnw("health check failed", "error", err)
		WriteMsg(w, http.StatusServiceUnavailable, MsgStoreUnavailable)
		return
	}
	WriteJSON(w, http.StatusOK, shared.HealthResponse{Status: "ok"})
}
