package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/aicommit/internal/config"
	"github.com/sevigo/aicommit/internal/logger"
)

// Set through -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "none"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
	boldColor    = color.New(color.Bold)
)

// Populated by PersistentPreRunE before any command runs.
var (
	runCfg    *config.Config
	appLogger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aicommit",
	Short: "aicommit writes git commit messages for your staged changes.",
	Long: `aicommit sends the staged diff to an OpenAI-compatible model and proposes
a commit message, which you can accept, copy or discard.

Examples:
  aicommit auth add deepseek sk-...
  git add -p && aicommit
  aicommit --dry-run --copy`,
	Version:           fmt.Sprintf("%s (commit %s)", version, commit),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
	RunE:              runCommit,
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Prompt config file to use before the default locations")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")
	flags.String("provider", "", "Provider to use for this run instead of the current one")
	flags.Duration("timeout", 2*time.Minute, "Time limit for generating the message")

	bindFlag(config.KeyConfigPath, "config")
	bindFlag(config.KeyLogLevel, "log-level")
	bindFlag(config.KeyLogFormat, "log-format")
	bindFlag(config.KeyProvider, "provider")
	bindFlag(config.KeyTimeout, "timeout")
}

func bindFlag(key, name string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("failed to bind flag %s: %v", name, err))
	}
}

func initRuntime(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	runCfg = cfg
	appLogger = logger.NewLogger(cfg.Logging, nil)
	slog.SetDefault(appLogger)
	return nil
}
