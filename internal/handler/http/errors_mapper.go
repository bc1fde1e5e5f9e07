package http

import (
	"errors"
	"net/http"

	"github.com/vordan/ssh-tray/internal/service"
	"github.com/vordan/ssh-tray/internal/store"
	"github.com/vordan/ssh-tray/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrMissingSlugHeader:        http.StatusBadRequest,
	ErrMissingPasswordHeader:    http.StatusBadRequest,
	ErrMissingSystemIDHeader:    http.StatusBadRequest,
	ErrMissingNewPasswordHeader: http.StatusBadRequest,

	validators.ErrValidation: http.StatusBadRequest,

	service.ErrAuth:     http.StatusUnauthorized,
	service.ErrNotFound: http.StatusNotFound,
	service.ErrConflict: http.StatusConflict,

	store.ErrNoVersions:      http.StatusNotFound,
	store.ErrReadingVersions: http.StatusInternalServerError,
	store.ErrSavingVersion:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
