//go:build wireinject
// +build wireinject

package wire

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/aicommit/internal/app"
	"github.com/sevigo/aicommit/internal/config"
)

// InitializeCommitter builds a Committer for the current provider.
func InitializeCommitter(cfg *config.Config, logger *slog.Logger) (*app.Committer, error) {
	wire.Build(CommitterSet)
	return &app.Committer{}, nil
}

// InitializeResolver builds the prompt config resolver.
func InitializeResolver(cfg *config.Config, logger *slog.Logger) *config.Resolver {
	wire.Build(ResolverSet)
	return &config.Resolver{}
}
