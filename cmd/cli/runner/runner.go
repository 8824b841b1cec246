package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lucax88x/wslock/cmd/cli/config/settings"
	"github.com/lucax88x/wslock/cmd/cli/console"
	"github.com/lucax88x/wslock/internal/wslock"
	"github.com/spf13/viper"
)

type RunE func(
	ctx context.Context,
	console *console.Console,
	args []string,
	di *wslock.Wslock,
) error

func RunCmdE(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
	args []string,
	run RunE,
) error {
	if err := SetLevel(level, viper.GetString(settings.KeyLogLevel)); err != nil {
		return err
	}

	di := wslock.NewWslock(logger, viper.GetString(settings.KeySocketPath))

	return run(ctx, console, args, di)
}

func SetLevel(level *slog.LevelVar, name string) error {
	if name == "" {
		return nil
	}

	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return fmt.Errorf("runner: invalid log level '%s': %w", name, err)
	}

	level.Set(parsed)
	return nil
}
