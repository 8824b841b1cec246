package i3

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/lucax88x/wslock/internal/wm"
	"github.com/lucax88x/wslock/internal/wm/events"
	"go.i3wm.org/i3/v4"
	"golang.org/x/sync/errgroup"
)

// API is the subset of go.i3wm.org/i3/v4 used by Client.
type API interface {
	GetWorkspaces() ([]i3.Workspace, error)
	RunCommand(command string) ([]i3.CommandResult, error)
	Subscribe(eventTypes ...i3.EventType) Receiver
}

type Receiver interface {
	Next() bool
	Event() i3.Event
	Err() error
	Close() error
}

type libraryReceiver interface {
	Next() bool
	Event() i3.Event
	Close() error
}

// eventReceiver gives *i3.EventReceiver an Err method. The library reports a
// stream failure through Close once Next returned false, and its Close must
// run at most once.
type eventReceiver struct {
	recv libraryReceiver

	once sync.Once
	mu   sync.Mutex
	err  error
}

func newEventReceiver(recv libraryReceiver) *eventReceiver {
	return &eventReceiver{recv: recv}
}

func (r *eventReceiver) Next() bool {
	if r.recv.Next() {
		return true
	}

	_ = r.Close()
	return false
}

func (r *eventReceiver) Event() i3.Event {
	return r.recv.Event()
}

func (r *eventReceiver) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *eventReceiver) Close() error {
	r.once.Do(func() {
		err := r.recv.Close()

		r.mu.Lock()
		r.err = err
		r.mu.Unlock()
	})

	return r.Err()
}

type libraryAPI struct{}

func (libraryAPI) GetWorkspaces() ([]i3.Workspace, error) {
	return i3.GetWorkspaces()
}

func (libraryAPI) RunCommand(command string) ([]i3.CommandResult, error) {
	return i3.RunCommand(command)
}

func (libraryAPI) Subscribe(eventTypes ...i3.EventType) Receiver {
	return newEventReceiver(i3.Subscribe(eventTypes...))
}

type Client struct {
	logger *slog.Logger
	api    API
}

// NewClient talks to the running i3 (or sway) instance. An empty socketPath
// keeps the library's discovery, falling back to $SWAYSOCK when set.
func NewClient(logger *slog.Logger, socketPath string) *Client {
	if socketPath == "" {
		socketPath = os.Getenv("SWAYSOCK")
	}

	if socketPath != "" {
		path := socketPath
		i3.SocketPathHook = func() (string, error) {
			return path, nil
		}
	}

	return NewClientWithAPI(logger, libraryAPI{})
}

func NewClientWithAPI(logger *slog.Logger, api API) *Client {
	return &Client{
		logger: logger,
		api:    api,
	}
}

func (c *Client) Workspaces(ctx context.Context) ([]wm.Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workspaces, err := c.api.GetWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("i3: could not get workspaces: %w", err)
	}

	result := make([]wm.Workspace, 0, len(workspaces))
	for _, ws := range workspaces {
		result = append(result, toWorkspace(ws))
	}

	return result, nil
}

func (c *Client) RunCommand(ctx context.Context, command string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "i3: run command", slog.String("command", command))

	results, err := c.api.RunCommand(command)
	if err != nil {
		return fmt.Errorf("i3: could not run command '%s': %w", command, err)
	}

	var failures []string
	for _, result := range results {
		if !result.Success {
			failures = append(failures, result.Error)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("i3: command '%s' failed: %s", command, strings.Join(failures, "; "))
	}

	return nil
}

func (c *Client) Subscribe(ctx context.Context) (wm.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	receiver := c.api.Subscribe(i3.WorkspaceEventType)

	subCtx, cancel := context.WithCancel(ctx)
	group, groupCtx := errgroup.WithContext(subCtx)

	sub := &subscription{
		events: make(chan wm.Event),
		cancel: cancel,
		group:  group,
	}

	group.Go(func() error {
		defer close(sub.events)
		return c.pump(groupCtx, receiver, sub.events)
	})

	// Next blocks on the socket, closing the receiver is the only way to
	// unblock it.
	group.Go(func() error {
		<-groupCtx.Done()
		if err := receiver.Close(); err != nil {
			c.logger.DebugContext(ctx, "i3: could not close event receiver", slog.Any("error", err))
		}
		return nil
	})

	c.logger.InfoContext(ctx, "i3: subscribed to workspace events")

	return sub, nil
}

func (c *Client) pump(ctx context.Context, receiver Receiver, out chan<- wm.Event) error {
	for receiver.Next() {
		workspaceEvent, ok := receiver.Event().(*i3.WorkspaceEvent)
		if !ok {
			continue
		}

		event := wm.Event{
			Kind:    workspaceEvent.Change,
			Current: resolve(workspaceEvent),
		}

		select {
		case out <- event:
		case <-ctx.Done():
			return nil
		}
	}

	if ctx.Err() != nil {
		return nil
	}

	if err := receiver.Err(); err != nil {
		return fmt.Errorf("i3: event connection failed: %w", err)
	}

	return errors.New("i3: event connection closed")
}

// resolve maps the event node to a workspace. Event nodes carry no number,
// so it is derived from the name the way i3 does.
func resolve(event *i3.WorkspaceEvent) *wm.Workspace {
	name := event.Current.Name
	if name == "" {
		return nil
	}

	return &wm.Workspace{
		Name:    name,
		Num:     NumFromName(name),
		Focused: events.IsFocus(event.Change),
	}
}

// NumFromName returns the number i3 assigns to a workspace name: its leading
// digits ("3: chat" is 3), or NoNum when it does not start with one. Like
// i3's strtol, leading whitespace is skipped.
func NumFromName(name string) int64 {
	name = strings.TrimLeft(name, " \t\n")

	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}

	if end == 0 {
		return wm.NoNum
	}

	num, err := strconv.ParseInt(name[:end], 10, 64)
	if err != nil {
		return wm.NoNum
	}

	return num
}

func toWorkspace(ws i3.Workspace) wm.Workspace {
	num := ws.Num
	if num < 0 {
		num = wm.NoNum
	}

	return wm.Workspace{
		Name:    ws.Name,
		Num:     num,
		Focused: ws.Focused,
	}
}

type subscription struct {
	events chan wm.Event
	cancel context.CancelFunc
	group  *errgroup.Group

	once   sync.Once
	closed bool
	mu     sync.Mutex
}

func (s *subscription) Events() <-chan wm.Event {
	return s.events
}

func (s *subscription) Err() error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return nil
	}

	s.cancel()
	return s.group.Wait()
}

func (s *subscription) Close() error {
	var err error

	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.cancel()
		err = s.group.Wait()
	})

	return err
}

var (
	_ wm.Client       = (*Client)(nil)
	_ Receiver        = (*eventReceiver)(nil)
	_ libraryReceiver = (*i3.EventReceiver)(nil)
)
