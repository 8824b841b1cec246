package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/lucax88x/wslock/internal/command"
)

type Urgency string

const (
	Normal   Urgency = "normal"
	Critical Urgency = "critical"
)

const AppName = "wslock"

type Notification struct {
	Summary string
	Urgency Urgency
	Timeout time.Duration
}

type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

// Desktop shows notifications through notify-send, which talks to whatever
// org.freedesktop.Notifications daemon is running.
type Desktop struct {
	logger  *slog.Logger
	command command.Runner
	binary  string
}

func NewDesktop(logger *slog.Logger, runner command.Runner) *Desktop {
	return &Desktop{
		logger:  logger,
		command: runner,
		binary:  "notify-send",
	}
}

func (d *Desktop) Notify(ctx context.Context, notification Notification) error {
	d.logger.DebugContext(ctx, "notify: show",
		slog.String("summary", notification.Summary),
		slog.String("urgency", string(notification.Urgency)),
		slog.Duration("timeout", notification.Timeout))

	_, err := d.command.Run(ctx, d.binary, Args(notification)...)
	if err != nil {
		return fmt.Errorf("notify: could not show '%s': %w", notification.Summary, err)
	}

	return nil
}

func Args(notification Notification) []string {
	urgency := notification.Urgency
	if urgency == "" {
		urgency = Normal
	}

	return []string{
		"--app-name", AppName,
		"--urgency", string(urgency),
		"--expire-time", strconv.FormatInt(notification.Timeout.Milliseconds(), 10),
		"--",
		notification.Summary,
	}
}

var _ Notifier = (*Desktop)(nil)
