package service

import (
	"context"
	"time"

	"github.com/vordan/ssh-tray/internal/config"
	"github.com/vordan/ssh-tray/internal/logger"
)

// AppInfoService exposes build/runtime metadata for the /status endpoint.
type AppInfoService interface {
	// GetAppVersion returns the configured application version string.
	GetAppVersion(ctx context.Context) string

	// Uptime returns how long the service has been running.
	Uptime(ctx context.Context) time.Duration
}

type appInfoService struct {
	version   string
	startedAt time.Time
	logger    *logger.Logger
}

// NewAppInfoService captures the process start time and the configured
// version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		version:   cfg.Version,
		startedAt: time.Now(),
		logger:    logger,
	}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

func (s *appInfoService) Uptime(_ context.Context) time.Duration {
	return time.Since(s.startedAt)
}
