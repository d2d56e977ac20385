package config

import (
	"log/slog"
	"os"

	"github.com/sevigo/aicommit/internal/core"
)

// Resolver produces the effective prompt config for one run.
type Resolver struct {
	locator  *Locator
	logger   *slog.Logger
	readFile func(name string) ([]byte, error)
}

// NewResolver returns a Resolver that reads files found by locator.
func NewResolver(locator *Locator, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		locator:  locator,
		logger:   logger,
		readFile: os.ReadFile,
	}
}

// Resolve returns the prompt config from the first file found, or the
// built-in defaults. It never fails.
func (r *Resolver) Resolve(customPath string) core.PromptConfig {
	cfg, _ := r.ResolveWithSource(customPath)
	return cfg
}

// ResolveWithSource is Resolve that also reports where the config came from.
// The returned Source is the zero value when defaults were used because no
// file was found.
func (r *Resolver) ResolveWithSource(customPath string) (core.PromptConfig, Source) {
	src := r.locator.Locate(customPath)
	if customPath != "" && src.Path != customPath {
		r.logger.Warn("custom prompt config not found, falling back to search", "path", customPath)
	}
	if !src.Found() {
		r.logger.Debug("no prompt config file found, using defaults")
		return core.DefaultPromptConfig(), src
	}

	data, err := r.readFile(src.Path)
	if err != nil {
		r.logger.Warn("failed to read prompt config, using defaults", "path", src.Path, "error", err)
		return core.DefaultPromptConfig(), src
	}

	r.logger.Debug("loaded prompt config", "path", src.Path, "format", src.Format.String())
	return Parse(string(data), src.Format, r.logger.With("path", src.Path)), src
}
