package wm

import (
	"context"

	"github.com/lucax88x/wslock/internal/wm/events"
)

// NoNum is reported for workspaces that have no number, e.g. named-only
// workspaces in i3.
const NoNum int64 = -1

type Workspace struct {
	Name    string
	Num     int64
	Focused bool
}

func (w Workspace) HasNum() bool {
	return w.Num >= 0
}

type Event struct {
	Kind events.Kind
	// Current is nil when the window manager reports no workspace.
	Current *Workspace
}

type Subscription interface {
	// Events is closed when the underlying connection ends.
	Events() <-chan Event
	// Err reports why Events was closed, nil after Close.
	Err() error
	Close() error
}

type Client interface {
	Workspaces(ctx context.Context) ([]Workspace, error)
	RunCommand(ctx context.Context, command string) error
	// Subscribe opens a dedicated connection for workspace events so that
	// pending queries on the command connection never delay delivery.
	Subscribe(ctx context.Context) (Subscription, error)
}

// Focused returns the focused workspace, or nil when none is focused.
func Focused(workspaces []Workspace) *Workspace {
	for i := range workspaces {
		if workspaces[i].Focused {
			ws := workspaces[i]
			return &ws
		}
	}
	return nil
}

// ByName returns the workspace with the given name, or nil.
func ByName(workspaces []Workspace, name string) *Workspace {
	for i := range workspaces {
		if workspaces[i].Name == name {
			ws := workspaces[i]
			return &ws
		}
	}
	return nil
}
