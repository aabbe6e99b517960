package main

import (
	"fmt"
	"log/slog"

	"pomodoro/internal/logger"
	"pomodoro/internal/storage"

	"github.com/spf13/cobra"
)

// options holds the persistent flag values.
type options struct {
	configPath   string
	session      int
	breakMinutes int
	mute         bool
	logLevel     string
	logFormat    string
}

// runtimeConfig is the validated configuration after flags are applied.
// LoadErr is set when the file could not be used and defaults were taken.
type runtimeConfig struct {
	storage.Config
	Path    string
	LoadErr error
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Pomodoro is a focus and break timer",
		Long: `Pomodoro alternates focus sessions and breaks, plays a short beep on
every switch and lives in the system tray while it runs.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			return runDesktop(cfg, log)
		},
	}

	addPersistentFlags(rootCmd, opts)
	rootCmd.AddCommand(newConsoleCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: <user config dir>/Pomodoro/settings.yaml)")
	flags.IntVar(&opts.session, "session", 0, "session length in minutes (1-60)")
	flags.IntVar(&opts.breakMinutes, "break", 0, "break length in minutes (1-60)")
	flags.BoolVar(&opts.mute, "mute", false, "do not play the transition beep")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: pretty or json")
}

// setup resolves configuration and builds the logger shared by every command.
func setup(cmd *cobra.Command, opts *options) (runtimeConfig, *slog.Logger, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return runtimeConfig{}, nil, err
	}

	log := logger.New(logger.Config{
		Writer: cmd.ErrOrStderr(),
		Format: cfg.LogFormat,
		Level:  logger.ParseLevel(cfg.LogLevel),
	})
	if cfg.LoadErr != nil {
		log.Warn("config ignored, using defaults", "path", cfg.Path, "error", cfg.LoadErr)
	}
	log.Debug("config resolved",
		"path", cfg.Path,
		"session_minutes", cfg.SessionMinutes,
		"break_minutes", cfg.BreakMinutes,
		"sound", cfg.Sound)
	return cfg, log, nil
}

// resolveConfig loads the config file and applies explicitly set flags on top.
// A broken file falls back to defaults; an invalid flag is an error.
func resolveConfig(cmd *cobra.Command, opts *options) (runtimeConfig, error) {
	path := opts.configPath
	if path == "" {
		defaultPath, err := storage.DefaultPath(appName)
		if err != nil {
			return runtimeConfig{}, err
		}
		path = defaultPath
	}

	loaded, loadErr := storage.LoadConfig(path)
	if loadErr != nil {
		loaded = storage.DefaultConfig()
	}
	cfg := runtimeConfig{Config: loaded, Path: path, LoadErr: loadErr}

	flags := cmd.Flags()
	if flags.Changed("session") {
		cfg.SessionMinutes = opts.session
	}
	if flags.Changed("break") {
		cfg.BreakMinutes = opts.breakMinutes
	}
	if flags.Changed("mute") {
		cfg.Sound = !opts.mute
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return runtimeConfig{}, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
