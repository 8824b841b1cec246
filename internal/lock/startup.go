package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucax88x/wslock/internal/clock"
	"github.com/lucax88x/wslock/internal/notify"
	"github.com/lucax88x/wslock/internal/wm"
)

const (
	// Delays above WarnThreshold get a warning WarnLead before locking.
	WarnThreshold = 15 * time.Second
	WarnLead      = 10 * time.Second

	WarningSummary = "Locking in 10 seconds"
)

type StartupGate struct {
	logger        *slog.Logger
	clock         clock.Clock
	notifier      notify.Notifier
	notifyTimeout time.Duration
}

func NewStartupGate(
	logger *slog.Logger,
	clk clock.Clock,
	notifier notify.Notifier,
	notifyTimeout time.Duration,
) *StartupGate {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}

	return &StartupGate{
		logger:        logger,
		clock:         clk,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
	}
}

// Wait sleeps for delay. Long delays are split so the user gets a critical
// warning WarnLead before the lock takes effect.
func (g *StartupGate) Wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	if delay <= WarnThreshold {
		g.logger.InfoContext(ctx, "lock: waiting before start", slog.Duration("delay", delay))
		return g.clock.Sleep(ctx, delay)
	}

	g.logger.InfoContext(ctx, "lock: waiting before start",
		slog.Duration("delay", delay),
		slog.Duration("warn_at", delay-WarnLead))

	if err := g.clock.Sleep(ctx, delay-WarnLead); err != nil {
		return err
	}

	if err := g.notifier.Notify(ctx, notify.Notification{
		Summary: WarningSummary,
		Urgency: notify.Critical,
		Timeout: g.notifyTimeout,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrNotification, err)
	}

	return g.clock.Sleep(ctx, WarnLead)
}

// Enforce runs one synchronous pass against the currently focused workspace,
// so a user already sitting on a disallowed workspace is moved even if focus
// never changes again.
func (g *StartupGate) Enforce(
	ctx context.Context,
	client wm.Client,
	policy Policy,
	enforcer *Enforcer,
	tracker *Tracker,
) (Action, error) {
	workspaces, err := client.Workspaces(ctx)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	current := policy.IdentifierOf(wm.Focused(workspaces))

	return enforcer.Enforce(ctx, current, tracker)
}
