package client

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/vordan/ssh-tray/internal/adapter"
	"github.com/vordan/ssh-tray/internal/bookmarks"
	"github.com/vordan/ssh-tray/internal/config"
	"github.com/vordan/ssh-tray/internal/logger"
	"github.com/vordan/ssh-tray/internal/menu"
	"github.com/vordan/ssh-tray/internal/terminal"
)

const instructionsTemplate = `SSH Bookmark Manager Help

Bookmarks: %s
Config: %s

How to use:
 - Each line in the bookmarks file is either:
     * a bookmark: DESCRIPTION<tab>user@host[:port]
     * a group header: a line with dashes, e.g. '------ Group Name ------'
 - Set your terminal in the config file (e.g. 'terminal=mate-terminal').
 - Edit everything with a text editor; the menu refreshes automatically.
 - Use the tray icon to launch SSH, edit bookmarks, show help, or sync.`

// App is the tray application runtime. It owns the bookmark entries, the
// file watcher, and the optional sync adapter, and drives the frontend.
type App struct {
	cfg      *config.TrayConfig
	frontend Frontend
	server   adapter.ServerAdapter
	watcher  *BookmarkWatcher
	logger   *logger.Logger

	entries  []bookmarks.Entry
	firstRun bool
}

// NewApp wires the tray runtime. It bootstraps the bookmark and config files
// on first run and, when sync is enabled, constructs the server adapter.
func NewApp(cfg *config.TrayConfig, frontend Frontend, logger *logger.Logger) (*App, error) {
	createdBookmarks, err := bookmarks.EnsureFile(cfg.BookmarksPath)
	if err != nil {
		return nil, fmt.Errorf("bootstrap bookmarks file: %w", err)
	}
	createdConfig, err := config.EnsureConfigFile(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("bootstrap config file: %w", err)
	}

	app := &App{
		cfg:      cfg,
		frontend: frontend,
		logger:   logger,
		firstRun: createdBookmarks || createdConfig,
	}

	if cfg.SyncEnabled {
		app.server, err = adapter.NewHTTPServerAdapter(*cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create sync adapter: %w", err)
		}
	}

	app.watcher, err = NewBookmarkWatcher()
	if err != nil {
		return nil, err
	}

	return app, nil
}

// Run starts the event loop and blocks until the user quits or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.frontend.Close()

	if err := a.reload(); err != nil {
		return err
	}

	if a.firstRun {
		a.showInstructions()
	}

	if err := a.watcher.Start(a.cfg.BookmarksPath); err != nil {
		return err
	}
	defer a.watcher.Stop()

	a.logger.Info().Str("bookmarks", a.cfg.BookmarksPath).Msg("tray application started")

	if a.server != nil {
		go func() {
			msg, err := a.TestConnection(ctx)
			if err != nil {
				a.logger.Warn().Err(err).Msg("sync server connection test")
				return
			}
			a.logger.Info().Msg(msg)
		}()
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case _, ok := <-a.watcher.Events():
			if !ok {
				return nil
			}
			if err := a.reload(); err != nil {
				a.logger.Warn().Err(err).Msg("reloading bookmarks after file change")
			}

		case err, ok := <-a.watcher.Errors():
			if !ok {
				return nil
			}
			a.logger.Warn().Err(err).Msg("bookmark watcher error")

		case item, ok := <-a.frontend.Selections():
			if !ok {
				return nil
			}
			if quit := a.handleSelection(ctx, item); quit {
				return nil
			}
		}
	}
}

// reload re-reads the bookmark file and pushes a fresh snapshot to the
// frontend. A missing file yields an empty menu, never an error.
func (a *App) reload() error {
	entries, err := bookmarks.Load(a.cfg.BookmarksPath)
	if err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}

	a.entries = entries
	a.frontend.Render(menu.Build(entries, a.cfg.SyncEnabled))

	return nil
}

func (a *App) handleSelection(ctx context.Context, item menu.Item) bool {
	switch item.Kind {
	case menu.ItemLaunch:
		if err := terminal.Launch(a.cfg.Terminal, item.Target, item.Title); err != nil {
			a.surfaceError("Could not open SSH connection", err)
		}
		return false

	case menu.ItemAction:
		return a.handleAction(ctx, item.Action)

	default:
		return false
	}
}

func (a *App) handleAction(ctx context.Context, action menu.Action) bool {
	switch action {
	case menu.ActionEdit:
		a.openEditor()
	case menu.ActionInstructions:
		a.showInstructions()
	case menu.ActionSyncUpload:
		a.syncUpload(ctx)
	case menu.ActionSyncDownload:
		a.syncDownload(ctx)
	case menu.ActionQuit:
		return true
	}
	return false
}

// openEditor hands the bookmark file to the desktop's default editor. The
// watcher picks up the saved result, so no callback wiring is needed.
func (a *App) openEditor() {
	cmd := exec.Command("xdg-open", a.cfg.BookmarksPath)
	if err := cmd.Start(); err != nil {
		a.surfaceError("Could not open editor", err)
		return
	}
	go cmd.Wait()
}

func (a *App) showInstructions() {
	a.frontend.Notify(
		"SSH Bookmark Manager - Instructions",
		fmt.Sprintf(instructionsTemplate, a.cfg.BookmarksPath, a.cfg.ConfigPath),
	)
}

// surfaceError shows a failure to the user exactly once and logs it.
// Sync and launch errors are never retried automatically.
func (a *App) surfaceError(title string, err error) {
	a.logger.Error().Err(err).Msg(title)
	a.frontend.Notify(title, err.Error())
}
