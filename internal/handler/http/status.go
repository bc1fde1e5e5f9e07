package http

import (
	"net/http"

	"github.com/vordan/ssh-tray/internal/logger"
	"github.com/vordan/ssh-tray/internal/utils"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	response, err := h.services.SyncService.Status(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.status").Msg("error collecting server status")
		http.Error(w, "error collecting server status", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
