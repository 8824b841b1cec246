package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lucax88x/wslock/cmd/cli/config/settings"
	"github.com/lucax88x/wslock/cmd/cli/console"
	"github.com/lucax88x/wslock/cmd/cli/runner"
	"github.com/lucax88x/wslock/internal/clock"
	"github.com/lucax88x/wslock/internal/humantime"
	"github.com/lucax88x/wslock/internal/lock"
	"github.com/lucax88x/wslock/internal/wslock"
	"github.com/spf13/viper"
)

func runLockCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
	args []string,
) error {
	options, err := LockOptions(viper, args)
	if err != nil {
		return err
	}

	pidFile := viper.GetString(settings.KeyPidFile)

	return runner.RunCmdE(ctx, logger, level, viper, console, args, func(
		ctx context.Context,
		console *console.Console,
		_ []string,
		di *wslock.Wslock,
	) error {
		if err := runner.CreatePidFile(pidFile); err != nil {
			return err
		}

		defer func() {
			if err := runner.RemovePidFile(pidFile); err != nil {
				di.Logger.ErrorContext(ctx, "lock: could not remove pid file", slog.Any("error", err))
			}
		}()

		session := lock.NewSession(di.Logger, di.WM, di.Notifier, di.Clock, options).
			WithObserver(&consoleObserver{console: console})

		return session.Run(ctx)
	})
}

// LockOptions turns the positional arguments and the bound settings into
// session options.
func LockOptions(viper *viper.Viper, args []string) (lock.Options, error) {
	if len(args) == 0 {
		return lock.Options{}, fmt.Errorf("lock: missing duration")
	}

	duration, err := humantime.Parse(args[0])
	if err != nil {
		return lock.Options{}, fmt.Errorf("lock: invalid duration: %w", err)
	}

	var delay time.Duration
	if raw := viper.GetString(settings.KeyDelay); raw != "" {
		delay, err = humantime.Parse(raw)
		if err != nil {
			return lock.Options{}, fmt.Errorf("lock: invalid delay: %w", err)
		}
	}

	mode := lock.ModeName
	if viper.GetBool(settings.KeyUseNumbers) {
		mode = lock.ModeNumber
	}

	options := lock.Options{
		Duration:      duration,
		Delay:         delay,
		Workspaces:    args[1:],
		Invert:        viper.GetBool(settings.KeyInvert),
		Mode:          mode,
		NotifyTimeout: time.Duration(viper.GetInt(settings.KeyNotifyTimeout)) * time.Millisecond,
	}

	if len(options.Workspaces) > 0 {
		if _, err := lock.NewPolicy(options.Workspaces, options.Invert, options.Mode); err != nil {
			return lock.Options{}, err
		}
	}

	return options, nil
}

type consoleObserver struct {
	console *console.Console
}

func (o *consoleObserver) Resolved(policy lock.Policy, implicit bool) {
	names := make([]string, 0, len(policy.Allowed()))
	for _, id := range policy.Allowed() {
		names = append(names, string(id))
	}

	verb := "Locking on"
	if policy.Invert() {
		verb = "Locking away from"
	}

	if implicit {
		o.console.Info("%s workspace %s", verb, strings.Join(names, ", "))
		return
	}
	o.console.Info("%s workspaces %s", verb, strings.Join(names, ", "))
}

func (o *consoleObserver) Delaying(delay time.Duration) {
	o.console.Info("Starting after %s", humantime.Format(delay))
}

func (o *consoleObserver) Started(until time.Time) {
	o.console.Success("Started! Unlocks at %s", until.Format(clock.Time))
}

var _ lock.Observer = (*consoleObserver)(nil)
