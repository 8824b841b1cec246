package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucax88x/wslock/internal/notify"
)

const (
	LockedSummary   = "Workspace locked!"
	UnlockedSummary = "Workspaces unlocked"

	DefaultNotifyTimeout = 2 * time.Second
)

type CommandSink interface {
	RunCommand(ctx context.Context, command string) error
}

// Action describes what Enforce did.
type Action struct {
	Compliant bool
	// Target is the workspace switched to when not compliant.
	Target Identifier
	// Neutral is set when no fallback was known and Target is the policy's
	// neutral workspace.
	Neutral bool
}

type Enforcer struct {
	logger        *slog.Logger
	policy        Policy
	commands      CommandSink
	notifier      notify.Notifier
	notifyTimeout time.Duration
}

func NewEnforcer(
	logger *slog.Logger,
	policy Policy,
	commands CommandSink,
	notifier notify.Notifier,
	notifyTimeout time.Duration,
) *Enforcer {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}

	return &Enforcer{
		logger:        logger,
		policy:        policy,
		commands:      commands,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
	}
}

// Enforce classifies current and, when it is disallowed, switches back to the
// tracker's fallback and raises a critical notification.
func (e *Enforcer) Enforce(ctx context.Context, current *Identifier, tracker *Tracker) (Action, error) {
	if !e.policy.IsDisallowed(current) {
		tracker.Update(*current, true)
		e.logger.DebugContext(ctx, "lock: workspace allowed", slog.String("workspace", string(*current)))
		return Action{Compliant: true}, nil
	}

	action := Action{}
	target, ok := tracker.Fallback()
	if ok {
		action.Target = target
	} else {
		action.Target = e.policy.Neutral()
		action.Neutral = true
	}

	e.logger.InfoContext(ctx, "lock: reverting disallowed workspace",
		slog.String("workspace", describe(current)),
		slog.String("target", string(action.Target)),
		slog.Bool("neutral", action.Neutral))

	command := e.policy.Command(action.Target)
	if err := e.commands.RunCommand(ctx, command); err != nil {
		return action, fmt.Errorf("%w: %w", ErrCommandSend, err)
	}

	if err := e.notifier.Notify(ctx, notify.Notification{
		Summary: LockedSummary,
		Urgency: notify.Critical,
		Timeout: e.notifyTimeout,
	}); err != nil {
		return action, fmt.Errorf("%w: %w", ErrNotification, err)
	}

	return action, nil
}

func describe(id *Identifier) string {
	if id == nil {
		return "<none>"
	}
	return string(*id)
}
