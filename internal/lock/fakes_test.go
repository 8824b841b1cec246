package lock

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/lucax88x/wslock/internal/clock"
	"github.com/lucax88x/wslock/internal/notify"
	"github.com/lucax88x/wslock/internal/wm"
	"github.com/lucax88x/wslock/internal/wm/events"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

//nolint:gochecknoglobals // test fixture
var epoch = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

type fakeSubscription struct {
	events chan wm.Event
	err    error

	mu     sync.Mutex
	closed bool
}

func newFakeSubscription(buffer int) *fakeSubscription {
	return &fakeSubscription{events: make(chan wm.Event, buffer)}
}

func (s *fakeSubscription) Events() <-chan wm.Event {
	return s.events
}

func (s *fakeSubscription) Err() error {
	return s.err
}

func (s *fakeSubscription) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSubscription) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

type fakeClient struct {
	mu            sync.Mutex
	workspaces    []wm.Workspace
	workspacesErr error
	commands      []string
	commandErr    error
	sub           *fakeSubscription
	subscribeErr  error
}

func newFakeClient(focused string) *fakeClient {
	return &fakeClient{
		workspaces: []wm.Workspace{{Name: focused, Num: wm.NoNum, Focused: true}},
		sub:        newFakeSubscription(0),
	}
}

func (c *fakeClient) Workspaces(_ context.Context) ([]wm.Workspace, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]wm.Workspace(nil), c.workspaces...), c.workspacesErr
}

func (c *fakeClient) RunCommand(_ context.Context, command string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.commandErr != nil {
		return c.commandErr
	}
	c.commands = append(c.commands, command)
	return nil
}

func (c *fakeClient) Subscribe(_ context.Context) (wm.Subscription, error) {
	if c.subscribeErr != nil {
		return nil, c.subscribeErr
	}
	return c.sub, nil
}

func (c *fakeClient) Commands() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.commands...)
}

type shown struct {
	notify.Notification
	At time.Time
}

type recordingNotifier struct {
	mu    sync.Mutex
	clock clock.Clock
	shown []shown
	err   error
}

func newRecordingNotifier(clk clock.Clock) *recordingNotifier {
	return &recordingNotifier{clock: clk}
}

func (n *recordingNotifier) Notify(_ context.Context, notification notify.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.shown = append(n.shown, shown{Notification: notification, At: n.clock.Now()})
	return nil
}

func (n *recordingNotifier) Shown() []shown {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]shown(nil), n.shown...)
}

func (n *recordingNotifier) Summaries() []string {
	var summaries []string
	for _, s := range n.Shown() {
		summaries = append(summaries, s.Summary)
	}
	return summaries
}

func focus(name string) wm.Event {
	return wm.Event{Kind: events.Focus, Current: &wm.Workspace{Name: name, Num: wm.NoNum, Focused: true}}
}

func id(s string) *Identifier {
	v := Identifier(s)
	return &v
}

// expiredClock hands out timers that have already fired.
type expiredClock struct {
	*clock.Fake
}

func (c expiredClock) After(_ time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.Now()
	return ch
}
