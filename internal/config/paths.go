package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sevigo/aicommit/internal/core"
)

// AppName names the directory under the user's config home.
const AppName = "aicommit"

// Prompt config file names, in lookup order. The first entry is the one
// created by "prompt init".
const (
	PromptFilenameYML      = ".aicommit.yml"
	PromptFilenameYAML     = ".aicommit.yaml"
	PromptFilenameMarkdown = ".aicommit.md"
)

// PromptFilenames lists every accepted prompt config file name.
var PromptFilenames = []string{PromptFilenameYML, PromptFilenameYAML, PromptFilenameMarkdown}

// SettingsFilename holds provider credentials inside the global directory.
const SettingsFilename = "config.json"

// GlobalDir returns $XDG_CONFIG_HOME/aicommit, falling back to ~/.config/aicommit.
func GlobalDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".config", AppName)
}

// FormatForPath picks the prompt config format from the file extension.
// Anything that is not markdown is read as YAML.
func FormatForPath(path string) core.ConfigFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return core.FormatHeadingText
	default:
		return core.FormatStructured
	}
}
