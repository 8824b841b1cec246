package lock

import (
	"testing"

	"github.com/lucax88x/wslock/internal/wm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDisallowedWithoutInvert(t *testing.T) {
	policy, err := NewPolicy([]string{"work", "mail"}, false, ModeName)
	require.NoError(t, err)

	for _, ws := range []string{"work", "mail", "play", "", "Work"} {
		assert.Equal(t, !policy.Contains(Identifier(ws)), policy.IsDisallowed(id(ws)), ws)
	}
	assert.False(t, policy.IsDisallowed(id("work")))
	assert.True(t, policy.IsDisallowed(id("play")))
}

func TestIsDisallowedWithInvert(t *testing.T) {
	policy, err := NewPolicy([]string{"games", "chat"}, true, ModeName)
	require.NoError(t, err)

	for _, ws := range []string{"games", "chat", "work", "mail"} {
		assert.Equal(t, policy.Contains(Identifier(ws)), policy.IsDisallowed(id(ws)), ws)
	}
	assert.True(t, policy.IsDisallowed(id("games")))
	assert.False(t, policy.IsDisallowed(id("work")))
}

func TestIsDisallowedWithoutWorkspace(t *testing.T) {
	for _, invert := range []bool{false, true} {
		for _, mode := range []Mode{ModeName, ModeNumber} {
			policy, err := NewPolicy([]string{"1"}, invert, mode)
			require.NoError(t, err)
			assert.True(t, policy.IsDisallowed(nil), "invert=%v mode=%s", invert, mode)
		}
	}
}

func TestNewPolicyRejectsEmptyList(t *testing.T) {
	_, err := NewPolicy(nil, false, ModeName)
	assert.Error(t, err)
}

func TestNewPolicyNormalisesNumbers(t *testing.T) {
	policy, err := NewPolicy([]string{"07", " 2"}, false, ModeNumber)
	require.NoError(t, err)

	assert.Equal(t, []Identifier{"7", "2"}, policy.Allowed())

	_, err = NewPolicy([]string{"web"}, false, ModeNumber)
	assert.Error(t, err)

	_, err = NewPolicy([]string{"-1"}, false, ModeNumber)
	assert.Error(t, err)
}

func TestNeutralIsNeverListed(t *testing.T) {
	named, err := NewPolicy([]string{"wslock", "wslock-2"}, true, ModeName)
	require.NoError(t, err)
	assert.Equal(t, Identifier("wslock-3"), named.Neutral())

	numbered, err := NewPolicy([]string{"1", "2", "4"}, true, ModeNumber)
	require.NoError(t, err)
	assert.Equal(t, Identifier("3"), numbered.Neutral())
	assert.False(t, numbered.IsDisallowed(id(string(numbered.Neutral()))))
}

func TestIdentifierOf(t *testing.T) {
	byName, err := NewPolicy([]string{"work"}, false, ModeName)
	require.NoError(t, err)
	byNumber, err := NewPolicy([]string{"1"}, false, ModeNumber)
	require.NoError(t, err)

	numbered := &wm.Workspace{Name: "1: work", Num: 1}
	named := &wm.Workspace{Name: "scratch", Num: wm.NoNum}

	assert.Equal(t, id("1: work"), byName.IdentifierOf(numbered))
	assert.Equal(t, id("1"), byNumber.IdentifierOf(numbered))
	assert.Nil(t, byNumber.IdentifierOf(named))
	assert.Nil(t, byName.IdentifierOf(&wm.Workspace{Num: 3}))
	assert.Nil(t, byName.IdentifierOf(nil))

	assert.True(t, byNumber.IsDisallowed(byNumber.IdentifierOf(named)))
}

func TestCommand(t *testing.T) {
	byName, err := NewPolicy([]string{"x"}, false, ModeName)
	require.NoError(t, err)
	byNumber, err := NewPolicy([]string{"1"}, false, ModeNumber)
	require.NoError(t, err)

	assert.Equal(t, `workspace "work"`, byName.Command("work"))
	assert.Equal(t, `workspace "say \"hi\" \\o/"`, byName.Command(`say "hi" \o/`))
	assert.Equal(t, "workspace number 4", byNumber.Command("4"))
}

func TestTracker(t *testing.T) {
	policy, err := NewPolicy([]string{"a", "b"}, false, ModeName)
	require.NoError(t, err)

	tracker := NewTracker(policy)
	fallback, ok := tracker.Fallback()
	require.True(t, ok)
	assert.Equal(t, Identifier("a"), fallback)

	tracker.Update("c", false)
	fallback, _ = tracker.Fallback()
	assert.Equal(t, Identifier("a"), fallback)

	tracker.Update("b", true)
	fallback, _ = tracker.Fallback()
	assert.Equal(t, Identifier("b"), fallback)
}

func TestTrackerStartsEmptyUnderInvert(t *testing.T) {
	policy, err := NewPolicy([]string{"x"}, true, ModeName)
	require.NoError(t, err)

	tracker := NewTracker(policy)
	_, ok := tracker.Fallback()
	assert.False(t, ok)

	tracker.Update("y", true)
	fallback, ok := tracker.Fallback()
	require.True(t, ok)
	assert.Equal(t, Identifier("y"), fallback)
}
