package lock

import "errors"

var (
	// ErrConnection means the window-manager link could not be established or
	// was lost.
	ErrConnection = errors.New("lock: window manager connection failed")
	// ErrNoFocusedWorkspace means no workspace could be inferred at startup.
	ErrNoFocusedWorkspace = errors.New("lock: no workspace is focused")
	// ErrCommandSend means a corrective command could not be issued.
	ErrCommandSend = errors.New("lock: could not send command")
	// ErrNotification means an alert could not be shown.
	ErrNotification = errors.New("lock: could not show notification")
)
