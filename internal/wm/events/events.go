package events

// Kind is the "change" field of an i3/sway workspace event.
type Kind = string

const (
	Focus    Kind = "focus"
	Init     Kind = "init"
	Empty    Kind = "empty"
	Rename   Kind = "rename"
	Move     Kind = "move"
	Urgent   Kind = "urgent"
	Reload   Kind = "reload"
	Restored Kind = "restored"
)

// IsFocus reports whether a change represents a user-driven focus switch.
func IsFocus(kind Kind) bool {
	return kind == Focus
}
