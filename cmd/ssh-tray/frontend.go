package main

import (
	"os/exec"

	"github.com/vordan/ssh-tray/internal/logger"
	"github.com/vordan/ssh-tray/internal/menu"
)

// notifyFrontend is the headless [client.Frontend] shipped with the binary.
// A desktop toolkit binding (AppIndicator, StatusNotifier) replaces it by
// feeding user activations into Selections; this one logs menu snapshots and
// delivers notifications through notify-send when available.
type notifyFrontend struct {
	logger     *logger.Logger
	selections chan menu.Item
	notifySend string
}

func newNotifyFrontend(logger *logger.Logger) *notifyFrontend {
	// best effort; missing notify-send falls back to the log
	path, _ := exec.LookPath("notify-send")

	return &notifyFrontend{
		logger:     logger,
		selections: make(chan menu.Item),
		notifySend: path,
	}
}

func (f *notifyFrontend) Render(snapshot menu.Snapshot) {
	launches := 0
	for _, item := range snapshot.Items {
		if item.Kind == menu.ItemLaunch {
			launches++
		}
	}
	f.logger.Info().Int("items", len(snapshot.Items)).Int("bookmarks", launches).Msg("menu rebuilt")
}

func (f *notifyFrontend) Selections() <-chan menu.Item {
	return f.selections
}

func (f *notifyFrontend) Notify(title, message string) {
	if f.notifySend != "" {
		if err := exec.Command(f.notifySend, title, message).Run(); err == nil {
			return
		}
	}
	f.logger.Info().Str("title", title).Msg(message)
}

func (f *notifyFrontend) Close() error {
	return nil
}
