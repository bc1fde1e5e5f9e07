package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vordan/ssh-tray/internal/config"
	"github.com/vordan/ssh-tray/internal/logger"
	"github.com/vordan/ssh-tray/internal/utils"
	"github.com/vordan/ssh-tray/internal/validators"
	"github.com/vordan/ssh-tray/models"
)

const requestTimeout = 10 * time.Second

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL built from
// cfg.SyncServer and cfg.SyncPort and configures the underlying HTTP client
// with the resolved base URL and request timeout.
//
// Returns an error if cfg.SyncServer is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.TrayConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.SyncServer, cfg.SyncPort)
	if err != nil {
		return nil, fmt.Errorf("invalid sync server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(host string, port int) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	u, err := url.Parse(host)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}
	if u.Port() == "" && port > 0 {
		u.Host = u.Host + ":" + strconv.Itoa(port)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [ServerAdapter]. The payload travels as the request body
// and the identity fields as X-* headers, matching the server's contract.
func (h *httpServerAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	if err := validateCredentials(req.Slug, req.Password); err != nil {
		return models.UploadResponse{}, err
	}

	var result models.UploadResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-User-ID", req.Slug).
		SetHeader("X-Password", req.Password).
		SetHeader("X-System-ID", req.SystemID).
		SetHeader("X-Timestamp", req.LastKnownTimestamp).
		SetBody([]byte(req.Payload)).
		SetResult(&result).
		Post("/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	return result, nil
}

// Download implements [ServerAdapter].
func (h *httpServerAdapter) Download(ctx context.Context, slug, password string) (models.DownloadResponse, error) {
	if err := validateCredentials(slug, password); err != nil {
		return models.DownloadResponse{}, err
	}

	var result models.DownloadResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Password", password).
		SetResult(&result).
		Get("/download/" + slug)
	if err != nil {
		return models.DownloadResponse{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadResponse{}, err
	}

	return result, nil
}

// CheckSlug implements [ServerAdapter].
func (h *httpServerAdapter) CheckSlug(ctx context.Context, slug, password string) (models.CheckSlugResponse, error) {
	if err := validateCredentials(slug, password); err != nil {
		return models.CheckSlugResponse{}, err
	}

	var result models.CheckSlugResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-User-ID", slug).
		SetHeader("X-Password", password).
		SetResult(&result).
		Post("/check-slug")
	if err != nil {
		return models.CheckSlugResponse{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CheckSlugResponse{}, err
	}

	return result, nil
}

// ChangePassword implements [ServerAdapter]. The new password is validated
// locally so an unusable replacement never reaches the server.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, slug, oldPassword, newPassword string) error {
	if err := validateCredentials(slug, oldPassword); err != nil {
		return err
	}
	if err := validators.ValidatePassword(newPassword); err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-User-ID", slug).
		SetHeader("X-Password", oldPassword).
		SetHeader("X-New-Password", newPassword).
		Post("/change-password")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// Status implements [ServerAdapter]. No credentials are attached.
func (h *httpServerAdapter) Status(ctx context.Context) (models.StatusResponse, error) {
	var result models.StatusResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/status")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	return result, nil
}

func validateCredentials(slug, password string) error {
	if err := validators.ValidateSlug(slug); err != nil {
		return err
	}
	return validators.ValidatePassword(password)
}
