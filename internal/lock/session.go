package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lucax88x/wslock/internal/clock"
	"github.com/lucax88x/wslock/internal/notify"
	"github.com/lucax88x/wslock/internal/wm"
	"github.com/lucax88x/wslock/internal/wm/events"
)

type State int32

const (
	Starting State = iota
	Running
	Draining
	Ended
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Draining:
		return "draining"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

type Options struct {
	Duration time.Duration
	Delay    time.Duration
	// Workspaces may be empty, the focused workspace is used then.
	Workspaces    []string
	Invert        bool
	Mode          Mode
	NotifyTimeout time.Duration
}

// Observer is told about session milestones, e.g. to print them.
type Observer interface {
	Resolved(policy Policy, implicit bool)
	Delaying(delay time.Duration)
	Started(until time.Time)
}

type nopObserver struct{}

func (nopObserver) Resolved(Policy, bool)  {}
func (nopObserver) Delaying(time.Duration) {}
func (nopObserver) Started(time.Time)      {}

type Session struct {
	logger   *slog.Logger
	client   wm.Client
	notifier notify.Notifier
	clock    clock.Clock
	observer Observer
	options  Options

	state atomic.Int32
}

func NewSession(
	logger *slog.Logger,
	client wm.Client,
	notifier notify.Notifier,
	clk clock.Clock,
	options Options,
) *Session {
	if options.NotifyTimeout <= 0 {
		options.NotifyTimeout = DefaultNotifyTimeout
	}

	return &Session{
		logger:   logger,
		client:   client,
		notifier: notifier,
		clock:    clk,
		observer: nopObserver{},
		options:  options,
	}
}

func (s *Session) WithObserver(observer Observer) *Session {
	s.observer = observer
	return s
}

func (s *Session) State() State {
	return State(s.state.Load())
}

func (s *Session) setState(ctx context.Context, state State) {
	s.state.Store(int32(state))
	s.logger.DebugContext(ctx, "lock: state", slog.String("state", state.String()))
}

// Run enforces the policy until the duration elapses. It returns nil only on
// clean expiry, after the unlocked notification was shown.
func (s *Session) Run(ctx context.Context) error {
	s.setState(ctx, Starting)
	defer s.setState(ctx, Ended)

	policy, err := s.resolve(ctx)
	if err != nil {
		return err
	}

	tracker := NewTracker(policy)
	enforcer := NewEnforcer(s.logger, policy, s.client, s.notifier, s.options.NotifyTimeout)
	gate := NewStartupGate(s.logger, s.clock, s.notifier, s.options.NotifyTimeout)

	if s.options.Delay > 0 {
		s.observer.Delaying(s.options.Delay)
	}

	if err := gate.Wait(ctx, s.options.Delay); err != nil {
		return err
	}

	if _, err := gate.Enforce(ctx, s.client, policy, enforcer, tracker); err != nil {
		return err
	}

	sub, err := s.client.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer func() {
		if err := sub.Close(); err != nil {
			s.logger.DebugContext(ctx, "lock: could not close subscription", slog.Any("error", err))
		}
	}()

	s.setState(ctx, Running)
	expired := s.clock.After(s.options.Duration)
	until := s.clock.Now().Add(s.options.Duration)

	s.logger.InfoContext(ctx, "lock: started", slog.Time("until", until))
	s.observer.Started(until)

	if err := s.loop(ctx, expired, sub, policy, enforcer, tracker); err != nil {
		return err
	}

	s.setState(ctx, Draining)

	if err := s.notifier.Notify(ctx, notify.Notification{
		Summary: UnlockedSummary,
		Urgency: notify.Normal,
		Timeout: s.options.NotifyTimeout,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrNotification, err)
	}

	s.logger.InfoContext(ctx, "lock: workspaces unlocked")

	return nil
}

// resolve builds the policy, seeding it with the focused workspace when no
// workspace was given. It runs before any timer starts.
func (s *Session) resolve(ctx context.Context) (Policy, error) {
	workspaces := s.options.Workspaces
	implicit := len(workspaces) == 0

	if implicit {
		focused, err := s.focused(ctx)
		if err != nil {
			return Policy{}, err
		}
		workspaces = []string{focused}
	}

	policy, err := NewPolicy(workspaces, s.options.Invert, s.options.Mode)
	if err != nil {
		return Policy{}, err
	}

	s.logger.InfoContext(ctx, "lock: policy",
		slog.Any("workspaces", workspaces),
		slog.Bool("invert", policy.Invert()),
		slog.String("mode", policy.Mode().String()),
		slog.Bool("implicit", implicit))
	s.observer.Resolved(policy, implicit)

	return policy, nil
}

func (s *Session) focused(ctx context.Context) (string, error) {
	workspaces, err := s.client.Workspaces(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConnection, err)
	}

	ws := wm.Focused(workspaces)
	if ws == nil {
		return "", ErrNoFocusedWorkspace
	}

	if s.options.Mode == ModeNumber {
		if !ws.HasNum() {
			return "", fmt.Errorf("%w: workspace '%s' has no number", ErrNoFocusedWorkspace, ws.Name)
		}
		return string(numberIdentifier(ws.Num)), nil
	}

	if ws.Name == "" {
		return "", fmt.Errorf("%w: focused workspace has no name", ErrNoFocusedWorkspace)
	}

	return ws.Name, nil
}

// loop processes focus events one at a time until expired fires. When the
// timer and an event are ready together the timer wins and the event is
// dropped.
func (s *Session) loop(
	ctx context.Context,
	expired <-chan time.Time,
	sub wm.Subscription,
	policy Policy,
	enforcer *Enforcer,
	tracker *Tracker,
) error {
	for {
		if fired(expired) {
			return nil
		}

		select {
		case <-expired:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-sub.Events():
			if !ok {
				return closedStream(sub)
			}

			if fired(expired) {
				s.logger.DebugContext(ctx, "lock: timer elapsed, dropping event", slog.String("change", event.Kind))
				return nil
			}

			if !events.IsFocus(event.Kind) {
				continue
			}

			current := policy.IdentifierOf(event.Current)
			if _, err := enforcer.Enforce(ctx, current, tracker); err != nil {
				return err
			}
		}
	}
}

func fired(expired <-chan time.Time) bool {
	select {
	case <-expired:
		return true
	default:
		return false
	}
}

func closedStream(sub wm.Subscription) error {
	err := sub.Err()
	if err == nil {
		err = errors.New("event stream closed")
	}
	return fmt.Errorf("%w: %w", ErrConnection, err)
}
