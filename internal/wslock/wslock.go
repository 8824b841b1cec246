package wslock

import (
	"log/slog"

	"github.com/lucax88x/wslock/internal/clock"
	"github.com/lucax88x/wslock/internal/command"
	"github.com/lucax88x/wslock/internal/notify"
	"github.com/lucax88x/wslock/internal/wm"
	"github.com/lucax88x/wslock/internal/wm/i3"
)

// Wslock wires the collaborators of a lock session.
type Wslock struct {
	Logger   *slog.Logger
	Clock    clock.Clock
	Notifier notify.Notifier
	WM       wm.Client
}

func NewWslock(logger *slog.Logger, socketPath string) *Wslock {
	cmd := command.NewCommand(logger)

	return &Wslock{
		Logger:   logger,
		Clock:    clock.NewSystemClock(),
		Notifier: notify.NewDesktop(logger, cmd),
		WM:       i3.NewClient(logger, socketPath),
	}
}
