package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lucax88x/wslock/cmd/cli/config"
	"github.com/lucax88x/wslock/cmd/cli/config/settings"
	"github.com/lucax88x/wslock/cmd/cli/console"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wslock <duration> [workspace...]",
		Short: "lock i3/sway to a set of workspaces for a while",
		Long: `wslock keeps you on the given workspaces (the focused one when none is
given) until the duration elapses. Switching elsewhere is reverted.

Durations are human readable, e.g. "1h 15min 3s".`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runLockCmd(ctx, logger, level, viper, console, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringP(settings.KeyDelay, "d", "", "start after a delay, e.g. \"30s\"")
	flags.BoolP(settings.KeyInvert, "i", false, "treat the workspaces as forbidden instead of allowed")
	flags.BoolP(settings.KeyUseNumbers, "n", false, "identify workspaces by number instead of name")
	flags.Int(settings.KeyNotifyTimeout, 0, "notification timeout in milliseconds")

	persistent := rootCmd.PersistentFlags()
	persistent.String(settings.KeyLogLevel, "", "log level: debug, info, warn, error")
	persistent.String(settings.KeySocketPath, "", "i3/sway ipc socket path")
	persistent.String(settings.KeyPidFile, "", "pid file guarding against concurrent locks")

	cfg.Apply(viper)
	viper.SetEnvPrefix(settings.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)
	_ = viper.BindPFlags(persistent)

	rootCmd.AddCommand(NewStatusCmd(ctx, logger, level, viper, console))

	rootCmd.SetOut(console.Stdout)
	rootCmd.SetErr(console.Stderr)

	return rootCmd
}
