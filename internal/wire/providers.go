package wire

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/aicommit/internal/app"
	"github.com/sevigo/aicommit/internal/config"
	"github.com/sevigo/aicommit/internal/gitutil"
	"github.com/sevigo/aicommit/internal/llm"
)

var ResolverSet = wire.NewSet(
	config.NewResolver,
	provideLocator,
)

var CommitterSet = wire.NewSet(
	ResolverSet,
	app.NewCommitter,
	provideGitClient,
	provideStore,
	provideGenerator,
)

func provideLocator(cfg *config.Config) *config.Locator {
	return config.NewLocator(cfg.WorkDir, cfg.GlobalDir)
}

func provideGitClient(cfg *config.Config, logger *slog.Logger) *gitutil.Client {
	return gitutil.NewClient(logger, cfg.WorkDir)
}

func provideStore(cfg *config.Config) (*config.Store, error) {
	store, err := config.LoadStore(cfg.GlobalDir)
	if err != nil {
		return nil, err
	}
	if cfg.Provider != "" {
		store.SetOverride(cfg.Provider)
	}
	return store, nil
}

func provideGenerator(store *config.Store, logger *slog.Logger) (llm.Generator, error) {
	provider, providerCfg, err := store.CurrentProviderConfig()
	if err != nil {
		return nil, err
	}
	return llm.NewOpenAIGenerator(provider, providerCfg, logger), nil
}
