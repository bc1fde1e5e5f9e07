package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vordan/ssh-tray/internal/client"
	"github.com/vordan/ssh-tray/internal/config"
	"github.com/vordan/ssh-tray/internal/logger"
	"github.com/vordan/ssh-tray/internal/system"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewTrayLogger("ssh-tray")
	cfg, err := config.GetTrayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.ShowVersion {
		return
	}

	paths, err := system.DefaultPaths()
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving desktop integration paths")
	}

	if cfg.Uninstall {
		if err := paths.Uninstall(); err != nil {
			log.Fatal().Err(err).Msg("uninstall failed")
		}
		fmt.Println("Desktop integration removed. Bookmark and config files were left in place.")
		return
	}

	// keep the menu entry current across upgrades
	if exe, err := os.Executable(); err == nil {
		if err := paths.WriteDesktopFile(exe); err != nil {
			log.Warn().Err(err).Msg("writing desktop file")
		}
	}

	app, err := client.NewApp(cfg, newNotifyFrontend(log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init tray app error")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("tray run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
