// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package store

import (
	"github.com/vordan/ssh-tray/internal/config"
	"github.com/vordan/ssh-tray/internal/logger"
)

// Storages bundles the repositories the service layer depends on.
type Storages struct {
	Versions VersionRepository
}

// NewStorages wires the file-backed version repository from the storage
// configuration.
func NewStorages(cfg config.Storage, logger *logger.Logger) (Storages, error) {
	versions, err := NewFileVersionRepository(cfg.DataDir, logger)
	if err != nil {
		return Storages{}, err
	}

	return Storages{Versions: versions}, nil
}
