// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// parseLegacyFile reads the line-oriented key=value config file kept for
// compatibility with hand-edited setups.
//
// Recognized keys: terminal, sync_enabled, sync_server, sync_port. Blank
// lines, comments, unknown keys, and malformed lines are ignored; the config
// file must never prevent the tray from starting. A missing file yields
// (nil, nil).
func parseLegacyFile(path string) (*TrayConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	cfg := &TrayConfig{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "terminal":
			cfg.Terminal = value
		case "sync_enabled":
			cfg.SyncEnabled = parseLegacyBool(value)
		case "sync_server":
			cfg.SyncServer = value
		case "sync_port":
			if port, err := strconv.Atoi(value); err == nil && port > 0 {
				cfg.SyncPort = port
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning config file: %w", err)
	}

	return cfg, nil
}

func parseLegacyBool(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
