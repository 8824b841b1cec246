package lock

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lucax88x/wslock/internal/wm"
)

// Mode selects whether workspaces are identified by name or by number. It is
// fixed for a session.
type Mode int

const (
	ModeName Mode = iota
	ModeNumber
)

func (m Mode) String() string {
	if m == ModeNumber {
		return "number"
	}
	return "name"
}

// Identifier is a workspace name or a normalised workspace number, depending
// on the Mode it was built for.
type Identifier string

const neutralName = "wslock"

type Policy struct {
	allowed []Identifier
	invert  bool
	mode    Mode
	neutral Identifier
}

// NewPolicy validates the workspace list. The first workspace is the
// fallback used when reverting a disallowed switch.
func NewPolicy(workspaces []string, invert bool, mode Mode) (Policy, error) {
	if len(workspaces) == 0 {
		return Policy{}, fmt.Errorf("lock: policy needs at least one workspace")
	}

	allowed := make([]Identifier, 0, len(workspaces))
	for _, ws := range workspaces {
		id, err := parseIdentifier(ws, mode)
		if err != nil {
			return Policy{}, err
		}
		allowed = append(allowed, id)
	}

	policy := Policy{
		allowed: allowed,
		invert:  invert,
		mode:    mode,
	}
	policy.neutral = policy.pickNeutral()

	return policy, nil
}

func parseIdentifier(raw string, mode Mode) (Identifier, error) {
	if mode == ModeName {
		if raw == "" {
			return "", fmt.Errorf("lock: empty workspace name")
		}
		return Identifier(raw), nil
	}

	num, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || num < 0 {
		return "", fmt.Errorf("lock: '%s' is not a workspace number", raw)
	}

	return numberIdentifier(num), nil
}

func numberIdentifier(num int64) Identifier {
	return Identifier(strconv.FormatInt(num, 10))
}

func (p Policy) pickNeutral() Identifier {
	if p.mode == ModeNumber {
		for n := int64(1); ; n++ {
			if id := numberIdentifier(n); !p.Contains(id) {
				return id
			}
		}
	}

	id := Identifier(neutralName)
	for i := 2; p.Contains(id); i++ {
		id = Identifier(fmt.Sprintf("%s-%d", neutralName, i))
	}
	return id
}

func (p Policy) Allowed() []Identifier {
	return slices.Clone(p.allowed)
}

func (p Policy) Invert() bool {
	return p.invert
}

func (p Policy) Mode() Mode {
	return p.mode
}

// Neutral is a workspace that is never in the listed set. Under inversion it
// is always compliant, so it is a safe landing spot.
func (p Policy) Neutral() Identifier {
	return p.neutral
}

func (p Policy) Contains(id Identifier) bool {
	return slices.Contains(p.allowed, id)
}

// IsDisallowed classifies the focused workspace. A nil workspace can't be
// verified and is always disallowed.
func (p Policy) IsDisallowed(current *Identifier) bool {
	if current == nil {
		return true
	}

	member := p.Contains(*current)
	if p.invert {
		return member
	}
	return !member
}

// IdentifierOf extracts the identifier for this policy's mode. Under number
// mode a workspace without a number yields nil, i.e. it is treated exactly
// like a missing workspace.
func (p Policy) IdentifierOf(ws *wm.Workspace) *Identifier {
	if ws == nil {
		return nil
	}

	var id Identifier
	switch p.mode {
	case ModeNumber:
		if !ws.HasNum() {
			return nil
		}
		id = numberIdentifier(ws.Num)
	default:
		if ws.Name == "" {
			return nil
		}
		id = Identifier(ws.Name)
	}

	return &id
}

// Command builds the window-manager command that focuses id.
func (p Policy) Command(id Identifier) string {
	if p.mode == ModeNumber {
		return "workspace number " + string(id)
	}

	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(string(id))
	return `workspace "` + escaped + `"`
}
