package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/lucax88x/wslock/cmd/cli/config/settings"
	"github.com/lucax88x/wslock/cmd/cli/console"
	"github.com/lucax88x/wslock/cmd/cli/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewStatusCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
) *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "report whether a lock is running",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := runner.SetLevel(level, viper.GetString(settings.KeyLogLevel)); err != nil {
				return err
			}
			return Status(ctx, logger, console, viper.GetString(settings.KeyPidFile))
		},
	}

	statusCmd.SetOut(console.Stdout)
	statusCmd.SetErr(console.Stderr)

	return statusCmd
}

func Status(ctx context.Context, logger *slog.Logger, console *console.Console, pidFile string) error {
	pid, alive, err := runner.ReadPidFile(pidFile)

	if errors.Is(err, os.ErrNotExist) {
		console.Info("No lock is running")
		return nil
	}

	if err != nil {
		return err
	}

	if !alive {
		logger.DebugContext(ctx, "status: stale pid file", slog.String("path", pidFile), slog.Int("pid", pid))
		console.Warning("No lock is running (stale pid file %s)", pidFile)
		return nil
	}

	console.Success("Lock running with pid %d", pid)
	return nil
}
