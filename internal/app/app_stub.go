//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"black-hole/internal/sims/blackhole"
)

// ErrNoGUI is returned by Run when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with -tags ebiten; try the tui subcommand")

// Run reports that the GUI is unavailable in this build.
func Run(*blackhole.Simulation, *Config, *slog.Logger) error {
	return ErrNoGUI
}
