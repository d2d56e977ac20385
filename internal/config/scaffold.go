package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/sevigo/aicommit/internal/core"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var ErrPromptConfigExists = errors.New("prompt configuration already exists")

var scaffolds = template.Must(template.New("scaffold").
	Funcs(template.FuncMap{"indent": indent}).
	ParseFS(templateFiles, "templates/*.tmpl"))

// ScaffoldFilename is the file name prompt init writes for format.
func ScaffoldFilename(format core.ConfigFormat) string {
	if format == core.FormatHeadingText {
		return PromptFilenameMarkdown
	}
	return PromptFilenameYML
}

// Scaffold renders a prompt config file in format holding the built-in defaults.
func Scaffold(format core.ConfigFormat) ([]byte, error) {
	name := "aicommit.yml.tmpl"
	if format == core.FormatHeadingText {
		name = "aicommit.md.tmpl"
	}

	var buf bytes.Buffer
	if err := scaffolds.ExecuteTemplate(&buf, name, core.DefaultPromptConfig()); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// WriteScaffold creates a default prompt config in dir. It refuses to write
// when any prompt config file already exists there.
func WriteScaffold(dir string, format core.ConfigFormat) (string, error) {
	if existing := NewLocator(dir, "").Locate(""); existing.Found() {
		return existing.Path, fmt.Errorf("%w at %s", ErrPromptConfigExists, existing.Path)
	}

	content, err := Scaffold(format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := filepath.Join(dir, ScaffoldFilename(format))
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
