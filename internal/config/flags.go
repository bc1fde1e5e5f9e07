package config

import (
	"flag"
	"time"
)

// ParseServerFlags parses the sync server's command-line flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-data-dir version store directory
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-app-version version string reported by /status
func ParseServerFlags() *ServerConfig {
	var address string
	var dataDir string
	var requestTimeout time.Duration
	var appVersion string

	flag.StringVar(&address, "a", "", "Net address host:port")
	flag.StringVar(&dataDir, "data-dir", "", "Version store directory")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&appVersion, "app-version", "", "Application version string")

	flag.Parse()

	return &ServerConfig{
		Server: Server{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DataDir: dataDir,
		},
		App: App{
			Version: appVersion,
		},
	}
}

// ParseTrayFlags parses the tray client's command-line flags.
//
// Flags:
//
//	-terminal terminal emulator command or path
//	-b bookmarks file path
//	-c/-config legacy config file path
//	-sync-server sync server host
//	-sync-port sync server port
//	-version print version and exit
//	-uninstall remove desktop integration and exit
func ParseTrayFlags() *TrayConfig {
	var terminal string
	var bookmarksPath string
	var configPath string
	var syncServer string
	var syncPort int
	var showVersion bool
	var uninstall bool

	flag.StringVar(&terminal, "terminal", "", "Terminal emulator command or path")
	flag.StringVar(&bookmarksPath, "b", "", "Bookmarks file path")
	flag.StringVar(&configPath, "c", "", "Config file path")
	flag.StringVar(&configPath, "config", "", "Config file path (alias)")
	flag.StringVar(&syncServer, "sync-server", "", "Sync server host")
	flag.IntVar(&syncPort, "sync-port", 0, "Sync server port")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&uninstall, "uninstall", false, "Remove desktop integration and exit")

	flag.Parse()

	return &TrayConfig{
		Terminal:      terminal,
		SyncServer:    syncServer,
		SyncPort:      syncPort,
		BookmarksPath: bookmarksPath,
		ConfigPath:    configPath,
		ShowVersion:   showVersion,
		Uninstall:     uninstall,
	}
}
