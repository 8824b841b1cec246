package lock

// Tracker remembers the most recent workspace that satisfied the policy. Once
// set it is never cleared.
type Tracker struct {
	last *Identifier
}

// NewTracker seeds the fallback with the first listed workspace. Under
// inversion the listed workspaces are the forbidden ones, so it starts empty.
func NewTracker(policy Policy) *Tracker {
	t := &Tracker{}
	if !policy.Invert() {
		first := policy.allowed[0]
		t.last = &first
	}
	return t
}

func (t *Tracker) Update(current Identifier, compliant bool) {
	if !compliant {
		return
	}
	t.last = &current
}

func (t *Tracker) Fallback() (Identifier, bool) {
	if t.last == nil {
		return "", false
	}
	return *t.last, true
}
