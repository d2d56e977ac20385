package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/aicommit/internal/logger"
)

// Viper keys shared with the CLI flag bindings.
const (
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
	KeyLogOutput  = "log_output"
	KeyConfigPath = "config"
	KeyConfigDir  = "config_dir"
	KeyProvider   = "provider"
	KeyTimeout    = "timeout"
)

// EnvPrefix is prepended to every environment override, e.g. AICOMMIT_LOG_LEVEL.
const EnvPrefix = "AICOMMIT"

// Config holds the per-run settings of the CLI.
type Config struct {
	Logging logger.Config

	// PromptConfigPath is the --config override for the prompt config file.
	PromptConfigPath string

	// GlobalDir holds config.json and the global prompt config.
	GlobalDir string

	// Provider overrides the current provider from config.json when set.
	Provider string

	WorkDir string
	Timeout time.Duration
}

// LoadConfig reads settings from flags bound into viper and AICOMMIT_*
// environment variables, applying defaults.
func LoadConfig() (*Config, error) {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyLogFormat, "text")
	viper.SetDefault(KeyLogOutput, "stderr")
	viper.SetDefault(KeyConfigDir, GlobalDir())
	viper.SetDefault(KeyTimeout, 2*time.Minute)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	timeout := viper.GetDuration(KeyTimeout)
	if timeout <= 0 {
		slog.Warn("invalid timeout, using default", "provided", viper.GetString(KeyTimeout))
		timeout = 2 * time.Minute
	}

	return &Config{
		Logging: logger.Config{
			Level:  viper.GetString(KeyLogLevel),
			Format: viper.GetString(KeyLogFormat),
			Output: viper.GetString(KeyLogOutput),
		},
		PromptConfigPath: viper.GetString(KeyConfigPath),
		GlobalDir:        viper.GetString(KeyConfigDir),
		Provider:         strings.TrimSpace(viper.GetString(KeyProvider)),
		WorkDir:          workDir,
		Timeout:          timeout,
	}, nil
}
