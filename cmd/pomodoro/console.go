package main

import (
	"os"
	"os/signal"

	"pomodoro/internal/console"

	"github.com/spf13/cobra"
)

func newConsoleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run the timer in the terminal",
		Long: `Run the timer without a window. Commands are read line by line from
stdin; type "help" for the list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			lock, err := acquireLock(log)
			if err != nil {
				return err
			}
			defer func() {
				_ = lock.Release()
			}()

			core := newPomodoro(cfg, log)
			defer core.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			events := core.engine.Subscribe(16)
			return console.New(core.engine, core.store, cmd.OutOrStdout()).Run(ctx, cmd.InOrStdin(), events)
		},
	}
}
