package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lgbarn/san-english-go/internal/config"
	"github.com/lgbarn/san-english-go/internal/english"
	"github.com/lgbarn/san-english-go/internal/logging"
)

// app is the state shared by every subcommand once the root has loaded the
// configuration.
type app struct {
	cfg    *config.Config
	logger *logging.Logger

	configPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "san-english",
		Short:         "Translate chess moves in SAN into English",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML configuration file")
	flags.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFile, "log-file", "", "also write JSON log records to this file")

	rootCmd.AddCommand(newTranslateCmd(a))
	rootCmd.AddCommand(newGameCmd(a))
	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads the configuration file, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.NewConfig()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	b := config.From(cfg)
	flags := cmd.Flags()
	if changed(flags, "log-level") {
		b.WithLogLevel(a.logLevel)
	}
	if changed(flags, "log-file") {
		b.WithLogFile(a.logFile)
	}
	a.cfg = b.Build()
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), a.cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded", "config", a.configPath, "mode", a.cfg.Mode, "workers", a.cfg.Workers)
	return nil
}

func (a *app) teardown() error {
	if a.logger == nil {
		return nil
	}
	return a.logger.Close()
}

func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return logging.Discard()
	}
	return a.logger.Logger
}

// changed reports whether the named flag was set on the command line.
func changed(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

// modeValue adapts english.Mode to pflag.Value.
type modeValue struct {
	mode *english.Mode
}

func (v modeValue) String() string {
	if v.mode == nil {
		return english.Simple.String()
	}
	return v.mode.String()
}

func (v modeValue) Set(s string) error {
	m, err := english.ParseMode(s)
	if err != nil {
		return err
	}
	*v.mode = m
	return nil
}

func (v modeValue) Type() string {
	return "mode"
}

// addModeFlag registers --mode/-m. The flag only overrides the configured
// mode when given.
func addModeFlag(flags *pflag.FlagSet, mode *english.Mode) {
	flags.VarP(modeValue{mode: mode}, "mode", "m", "output mode (simple or verbose)")
}

// resolveMode returns the --mode flag if set, else the configured mode.
func (a *app) resolveMode(flags *pflag.FlagSet, flagMode english.Mode) english.Mode {
	if changed(flags, "mode") {
		return flagMode
	}
	return a.cfg.Mode
}
