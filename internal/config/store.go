package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/sevigo/aicommit/internal/core"
)

var (
	ErrInvalidProvider       = errors.New("invalid provider")
	ErrProviderNotConfigured = errors.New("provider not configured")
	ErrNoProviderSelected    = errors.New("no provider selected")
	ErrSettingsParsing       = errors.New("settings parsing failed")
)

// Settings is the content of config.json.
type Settings struct {
	CurrentProvider core.Provider                         `json:"currentProvider" mapstructure:"currentProvider"`
	Providers       map[core.Provider]core.ProviderConfig `json:"providers" mapstructure:"providers"`
}

// Store keeps provider credentials in the global config.json.
type Store struct {
	path     string
	settings Settings
	override core.Provider
}

// LoadStore reads config.json from dir, creating the directory and an empty
// settings file when they do not exist yet.
func LoadStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	s := &Store{
		path:     filepath.Join(dir, SettingsFilename),
		settings: Settings{Providers: map[core.Provider]core.ProviderConfig{}},
	}

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSettingsParsing, s.path, err)
	}
	if err := v.Unmarshal(&s.settings); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSettingsParsing, s.path, err)
	}
	if s.settings.Providers == nil {
		s.settings.Providers = map[core.Provider]core.ProviderConfig{}
	}
	return s, nil
}

// Path returns the location of config.json.
func (s *Store) Path() string {
	return s.path
}

// SetOverride selects a provider for this run only, without saving it.
func (s *Store) SetOverride(provider string) {
	s.override = core.Provider(strings.TrimSpace(provider))
}

// CurrentProvider returns the selected provider, or "" when none is set.
func (s *Store) CurrentProvider() core.Provider {
	if s.override != "" {
		return s.override
	}
	return s.settings.CurrentProvider
}

// CurrentProviderConfig returns the selected provider and its settings.
func (s *Store) CurrentProviderConfig() (core.Provider, core.ProviderConfig, error) {
	current := s.CurrentProvider()
	if current == "" {
		return "", core.ProviderConfig{}, fmt.Errorf("%w: run 'aicommit auth add <provider> <apiKey>' first", ErrNoProviderSelected)
	}
	cfg, err := s.ProviderConfig(current)
	if err != nil {
		return "", core.ProviderConfig{}, err
	}
	return current, cfg, nil
}

// ProviderConfig returns the settings stored for provider.
func (s *Store) ProviderConfig(provider core.Provider) (core.ProviderConfig, error) {
	if err := validateProvider(provider); err != nil {
		return core.ProviderConfig{}, err
	}
	cfg, ok := s.settings.Providers[provider]
	if !ok {
		return core.ProviderConfig{}, fmt.Errorf("%w: %s", ErrProviderNotConfigured, provider)
	}
	return cfg, nil
}

// AddProvider stores cfg for provider, filling the default endpoint and model.
// The first provider added becomes the current one.
func (s *Store) AddProvider(provider core.Provider, cfg core.ProviderConfig) error {
	if err := validateProvider(provider); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return fmt.Errorf("api key for %s must not be empty", provider)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = provider.DefaultEndpoint()
	}
	if cfg.Model == "" {
		cfg.Model = provider.DefaultModel()
	}

	s.settings.Providers[provider] = cfg
	if s.settings.CurrentProvider == "" {
		s.settings.CurrentProvider = provider
	}
	return s.save()
}

// UseProvider makes an already configured provider the current one.
func (s *Store) UseProvider(provider core.Provider) error {
	if _, err := s.ProviderConfig(provider); err != nil {
		return err
	}
	s.settings.CurrentProvider = provider
	return s.save()
}

// Providers returns the configured provider names, sorted.
func (s *Store) Providers() []core.Provider {
	return slices.Sorted(maps.Keys(s.settings.Providers))
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to save settings to %s: %w", s.path, err)
	}
	return nil
}

func validateProvider(provider core.Provider) error {
	if provider.IsValid() {
		return nil
	}
	names := make([]string, len(core.Providers))
	for i, p := range core.Providers {
		names[i] = string(p)
	}
	return fmt.Errorf("%w: %q, must be one of: %s", ErrInvalidProvider, provider, strings.Join(names, ", "))
}
