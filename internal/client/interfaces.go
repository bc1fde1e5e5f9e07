package client

import (
	"context"

	"github.com/vordan/ssh-tray/internal/menu"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Frontend is the rendering toolkit boundary. Implementations own the tray
// icon and its menu; the runtime never touches toolkit objects directly.
type Frontend interface {
	// Render replaces the displayed menu with snapshot. Called on startup
	// and whenever the bookmark file changes.
	Render(snapshot menu.Snapshot)

	// Selections emits the menu items the user activates. Closing the
	// channel ends the application loop.
	Selections() <-chan menu.Item

	// Notify shows a transient message to the user.
	Notify(title, message string)

	// Close releases toolkit resources.
	Close() error
}
