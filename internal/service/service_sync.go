// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/vordan/ssh-tray/internal/logger"
	"github.com/vordan/ssh-tray/internal/store"
	"github.com/vordan/ssh-tray/internal/validators"
	"github.com/vordan/ssh-tray/models"
)

type syncService struct {
	versions store.VersionRepository
	appInfo  AppInfoService
	logger   *logger.Logger

	// now is swappable in tests so stored timestamps are deterministic.
	now func() time.Time
}

// NewSyncService constructs the server-side sync protocol implementation on
// top of a version repository.
func NewSyncService(versions store.VersionRepository, appInfo AppInfoService, logger *logger.Logger) SyncService {
	return &syncService{
		versions: versions,
		appInfo:  appInfo,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *syncService) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	if err := validators.ValidateSlug(req.Slug); err != nil {
		return models.UploadResponse{}, err
	}
	if err := validators.ValidatePassword(req.Password); err != nil {
		return models.UploadResponse{}, err
	}

	latest, err := s.versions.Latest(ctx, req.Slug)
	switch {
	case errors.Is(err, store.ErrNoVersions):
		// First upload to this slug always succeeds, whatever timestamp the
		// client thinks it remembers.
		return s.storeVersion(ctx, req)

	case err != nil:
		return models.UploadResponse{}, fmt.Errorf("load latest version: %w", err)
	}

	if !passwordsEqual(req.Password, latest.Password) {
		return models.UploadResponse{}, ErrAuth
	}

	if latest.Timestamp != "" && latest.Timestamp != req.LastKnownTimestamp {
		// Someone else stored a version since this client last synced. Hand
		// the competing snapshot back, stored data untouched.
		s.logger.Info().
			Str("slug", req.Slug).
			Str("client_ts", req.LastKnownTimestamp).
			Str("server_ts", latest.Timestamp).
			Msg("upload conflict detected")

		return models.UploadResponse{}, &ConflictError{Server: models.ConflictResponse{
			ServerData:      latest.Payload,
			ServerTimestamp: latest.Timestamp,
			ServerSystemID:  latest.SystemID,
		}}
	}

	return s.storeVersion(ctx, req)
}

func (s *syncService) storeVersion(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	v := models.Version{
		Slug:      req.Slug,
		SystemID:  req.SystemID,
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
		Password:  req.Password,
		Payload:   req.Payload,
	}

	if err := s.versions.Save(ctx, v); err != nil {
		return models.UploadResponse{}, fmt.Errorf("save version: %w", err)
	}

	s.logger.Info().
		Str("slug", req.Slug).
		Str("system_id", req.SystemID).
		Str("timestamp", v.Timestamp).
		Msg("version stored")

	return models.UploadResponse{Timestamp: v.Timestamp}, nil
}

func (s *syncService) Download(ctx context.Context, slug, password string) (models.DownloadResponse, error) {
	if err := validators.ValidateSlug(slug); err != nil {
		return models.DownloadResponse{}, err
	}

	latest, err := s.versions.Latest(ctx, slug)
	switch {
	case errors.Is(err, store.ErrNoVersions):
		return models.DownloadResponse{}, ErrNotFound
	case err != nil:
		return models.DownloadResponse{}, fmt.Errorf("load latest version: %w", err)
	}

	if !passwordsEqual(password, latest.Password) {
		return models.DownloadResponse{}, ErrAuth
	}

	return models.DownloadResponse{
		Data:      latest.Payload,
		Timestamp: latest.Timestamp,
		SystemID:  latest.SystemID,
	}, nil
}

func (s *syncService) CheckSlug(ctx context.Context, slug, password string) (models.CheckSlugResponse, error) {
	if err := validators.ValidateSlug(slug); err != nil {
		return models.CheckSlugResponse{}, err
	}

	latest, err := s.versions.Latest(ctx, slug)
	switch {
	case errors.Is(err, store.ErrNoVersions):
		return models.CheckSlugResponse{}, nil
	case err != nil:
		return models.CheckSlugResponse{}, fmt.Errorf("load latest version: %w", err)
	}

	return models.CheckSlugResponse{
		Exists:     true,
		Authorized: passwordsEqual(password, latest.Password),
	}, nil
}

func (s *syncService) ChangePassword(ctx context.Context, slug, oldPassword, newPassword string) error {
	if err := validators.ValidateSlug(slug); err != nil {
		return err
	}
	if err := validators.ValidatePassword(newPassword); err != nil {
		return err
	}

	latest, err := s.versions.Latest(ctx, slug)
	switch {
	case errors.Is(err, store.ErrNoVersions):
		return ErrNotFound
	case err != nil:
		return fmt.Errorf("load latest version: %w", err)
	}

	if !passwordsEqual(oldPassword, latest.Password) {
		return ErrAuth
	}

	latest.Password = newPassword
	if err := s.versions.ReplaceLatest(ctx, latest); err != nil {
		return fmt.Errorf("replace latest version: %w", err)
	}

	s.logger.Info().Str("slug", slug).Msg("password changed")

	return nil
}

func (s *syncService) Status(ctx context.Context) (models.StatusResponse, error) {
	slugs, files, err := s.versions.Stats(ctx)
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("collect store stats: %w", err)
	}

	return models.StatusResponse{
		Status:        "ok",
		Version:       s.appInfo.GetAppVersion(ctx),
		UptimeSeconds: int64(s.appInfo.Uptime(ctx).Seconds()),
		Slugs:         slugs,
		Files:         files,
	}, nil
}

func passwordsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
