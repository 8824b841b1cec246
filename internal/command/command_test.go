package command

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsStdout(t *testing.T) {
	cmd := NewCommand(slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := cmd.Run(context.Background(), "echo", "hello")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRunFailsOnMissingBinary(t *testing.T) {
	cmd := NewCommand(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := cmd.Run(context.Background(), "wslock-does-not-exist")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "wslock-does-not-exist")
}
