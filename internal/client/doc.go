// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

// Package client implements the tray application runtime.
//
// It wires the bookmark file, the menu snapshot builder, the file watcher,
// and the sync adapter into a single event loop. The actual tray toolkit is
// abstracted behind the [Frontend] interface: the runtime hands it immutable
// menu snapshots and reacts to the items the user activates.
package client
