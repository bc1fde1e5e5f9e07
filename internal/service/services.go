// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package service

import (
	"github.com/vordan/ssh-tray/internal/config"
	"github.com/vordan/ssh-tray/internal/logger"
	"github.com/vordan/ssh-tray/internal/store"
)

// Services bundles the domain services the handler layer depends on.
type Services struct {
	SyncService    SyncService
	AppInfoService AppInfoService
}

// NewServices wires the domain services from storage and configuration.
func NewServices(storages store.Storages, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	appInfo := NewAppInfoService(cfg.App, logger)

	return &Services{
		SyncService:    NewSyncService(storages.Versions, appInfo, logger),
		AppInfoService: appInfo,
	}
}
