package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vordan/ssh-tray/internal/logger"
	"github.com/vordan/ssh-tray/internal/service"
	"github.com/vordan/ssh-tray/internal/utils"
	"github.com/vordan/ssh-tray/models"
)

// Credential headers shared by all sync endpoints. X-Timestamp carries the
// timestamp returned by the previous successful upload or download, empty on
// the first sync of a machine.
const (
	headerUserID      = "X-User-ID"
	headerPassword    = "X-Password"
	headerSystemID    = "X-System-ID"
	headerTimestamp   = "X-Timestamp"
	headerNewPassword = "X-New-Password"
)

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req := models.UploadRequest{
		Slug:               r.Header.Get(headerUserID),
		Password:           r.Header.Get(headerPassword),
		SystemID:           r.Header.Get(headerSystemID),
		LastKnownTimestamp: r.Header.Get(headerTimestamp),
	}
	if err := requireHeaders(req.Slug, req.Password, req.SystemID); err != nil {
		log.Error().Str("func", "*Handler.upload").Msg(err.Error())
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}
	if !json.Valid(payload) {
		log.Error().Str("func", "*Handler.upload").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	req.Payload = payload

	response, err := h.services.SyncService.Upload(r.Context(), req)
	if err != nil {
		var conflict *service.ConflictError
		if errors.As(err, &conflict) {
			log.Info().Str("func", "*Handler.upload").
				Str("slug", req.Slug).
				Str("server_system_id", conflict.Server.ServerSystemID).
				Msg("upload rejected with newer server version")
			utils.WriteJSON(w, conflict.Server, http.StatusConflict)
			return
		}

		log.Err(err).Str("func", "*Handler.upload").Msg("error uploading bookmarks")
		http.Error(w, "error uploading bookmarks", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")
	password := r.Header.Get(headerPassword)
	if password == "" {
		log.Error().Str("func", "*Handler.download").Msg(ErrMissingPasswordHeader.Error())
		http.Error(w, ErrMissingPasswordHeader.Error(), statusFromError(ErrMissingPasswordHeader))
		return
	}

	response, err := h.services.SyncService.Download(r.Context(), slug, password)
	if err != nil {
		log.Err(err).Str("func", "*Handler.download").Str("slug", slug).Msg("error downloading bookmarks")
		http.Error(w, "error downloading bookmarks", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) checkSlug(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	slug := r.Header.Get(headerUserID)
	if slug == "" {
		log.Error().Str("func", "*Handler.checkSlug").Msg(ErrMissingSlugHeader.Error())
		http.Error(w, ErrMissingSlugHeader.Error(), statusFromError(ErrMissingSlugHeader))
		return
	}

	response, err := h.services.SyncService.CheckSlug(r.Context(), slug, r.Header.Get(headerPassword))
	if err != nil {
		log.Err(err).Str("func", "*Handler.checkSlug").Str("slug", slug).Msg("error checking slug")
		http.Error(w, "error checking slug", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	slug := r.Header.Get(headerUserID)
	oldPassword := r.Header.Get(headerPassword)
	newPassword := r.Header.Get(headerNewPassword)

	var headerErr error
	switch {
	case slug == "":
		headerErr = ErrMissingSlugHeader
	case oldPassword == "":
		headerErr = ErrMissingPasswordHeader
	case newPassword == "":
		headerErr = ErrMissingNewPasswordHeader
	}
	if headerErr != nil {
		log.Error().Str("func", "*Handler.changePassword").Msg(headerErr.Error())
		http.Error(w, headerErr.Error(), statusFromError(headerErr))
		return
	}

	if err := h.services.SyncService.ChangePassword(r.Context(), slug, oldPassword, newPassword); err != nil {
		log.Err(err).Str("func", "*Handler.changePassword").Str("slug", slug).Msg("error changing password")
		http.Error(w, "error changing password", statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func requireHeaders(slug, password, systemID string) error {
	switch {
	case slug == "":
		return ErrMissingSlugHeader
	case password == "":
		return ErrMissingPasswordHeader
	case systemID == "":
		return ErrMissingSystemIDHeader
	default:
		return nil
	}
}
