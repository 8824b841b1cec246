package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lucax88x/wslock/cmd/cli/commands"
	"github.com/lucax88x/wslock/cmd/cli/config"
	"github.com/lucax88x/wslock/cmd/cli/console"
	"github.com/lucax88x/wslock/internal/setup"
	"github.com/spf13/viper"
)

func cli(viper *viper.Viper, console *console.Console, cfg *config.Cfg, level *slog.LevelVar) setup.ProgramExecutor {
	return func(ctx context.Context, logger *slog.Logger) error {
		return commands.NewRootCmd(ctx, logger, level, viper, console, cfg).ExecuteContext(ctx)
	}
}

func main() {
	result := setup.Run(cli)

	if result != setup.Ok {
		os.Exit(result)
	}
}
