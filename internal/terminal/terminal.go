// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

// Package terminal builds and launches terminal-emulator command lines that
// open an interactive "ssh user@host[:port]" session.
//
// Every supported emulator wants a different argument shape for "open a tab
// with a title and run this command", so the command construction is a
// per-emulator table. The launched subprocess is fire-and-forget; the tray
// does not supervise SSH sessions.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// Supported lists the terminal emulators the launcher knows argument shapes
// for, in preference order.
var Supported = []string{
	"mate-terminal", "gnome-terminal", "xfce4-terminal", "tilix",
	"konsole", "lxterminal", "xterm",
}

// targetPattern restricts SSH targets to characters that are safe to embed in
// the bash -c command string. Anything else is rejected before launch.
var targetPattern = regexp.MustCompile(`^[A-Za-z0-9._@:-]+$`)

// ErrInvalidTarget is returned when an SSH target contains characters outside
// targetPattern.
var ErrInvalidTarget = errors.New("invalid ssh target format")

// Available returns the supported emulators found in PATH, in preference
// order.
func Available() []string {
	var found []string
	for _, name := range Supported {
		if _, err := exec.LookPath(name); err == nil {
			found = append(found, name)
		}
	}
	return found
}

// Resolve turns a configured terminal setting into an executable path.
// Absolute executable paths pass through; otherwise the name is looked up in
// PATH and returned as-is when not found (the launch will then surface the
// real exec error).
func Resolve(terminal string) string {
	if strings.HasPrefix(terminal, "/") {
		if info, err := os.Stat(terminal); err == nil && info.Mode()&0111 != 0 {
			return terminal
		}
	}
	if path, err := exec.LookPath(terminal); err == nil {
		return path
	}
	return terminal
}

// Command builds the argv for opening an SSH session to target in the given
// emulator, with label as the tab or window title. The target is validated
// against targetPattern first.
func Command(terminal, target, label string) ([]string, error) {
	if !targetPattern.MatchString(target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}

	exe := Resolve(terminal)
	title := sanitizeTitle(label)
	// Set the window title, run ssh, and drop to a shell when the session
	// ends so the tab stays open for reconnects.
	shell := fmt.Sprintf(`printf '\033]0;%s\007'; ssh %s; exec bash`, title, target)

	switch {
	case strings.Contains(exe, "mate-terminal"), strings.Contains(exe, "gnome-terminal"):
		return []string{exe, "--tab", "--title", title, "--", "bash", "-c", shell}, nil
	case strings.Contains(exe, "xfce4-terminal"):
		return []string{exe, "--tab", "--title", title, "--command", "bash -c \"" + shell + "\""}, nil
	case strings.Contains(exe, "tilix"):
		return []string{exe, "--action=session-add-down", "--", "bash", "-c", shell}, nil
	case strings.Contains(exe, "konsole"):
		return []string{exe, "--new-tab", "-p", "tabtitle=" + title, "-e", "bash", "-c", shell}, nil
	case strings.Contains(exe, "xterm"):
		return []string{exe, "-T", title, "-e", "bash", "-c", shell}, nil
	default:
		return []string{exe, "-e", "bash -c \"" + shell + "\""}, nil
	}
}

// Launch starts the terminal subprocess for an SSH session and returns
// without waiting for it.
func Launch(terminal, target, label string) error {
	argv, err := Command(terminal, target, label)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch terminal %q: %w", argv[0], err)
	}

	// Detach: the session lives in the emulator, not in the tray process.
	go func() { _ = cmd.Wait() }()

	return nil
}

// sanitizeTitle strips characters that would break out of the embedded shell
// string or corrupt the title escape sequence.
func sanitizeTitle(label string) string {
	clean := strings.Trim(label, `'"`)
	return strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', '\\', '`', '$', ';', '\n', '\r', '\t':
			return -1
		}
		return r
	}, clean)
}
