package config

import (
	"log/slog"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/aicommit/internal/core"
)

var (
	systemPromptHeading = regexp.MustCompile(`# System Prompt\s*\n`)
	userPromptHeading   = regexp.MustCompile(`# User Prompt Template\s*\n`)
)

// nextHeading ends a markdown section.
const nextHeading = "\n# "

// Parse reads content in the given format. It never fails: anything it cannot
// use is replaced by the built-in default and reported through logger.
func Parse(content string, format core.ConfigFormat, logger *slog.Logger) core.PromptConfig {
	switch format {
	case core.FormatHeadingText:
		return ParseMarkdown(content, logger)
	default:
		return ParseYAML(content, logger)
	}
}

// ParseYAML reads the structured format:
//
//	prompt:
//	  system: |
//	    ...
//	  user: |
//	    ...
//	exclude:
//	  - "pattern"
func ParseYAML(content string, logger *slog.Logger) core.PromptConfig {
	if logger == nil {
		logger = slog.Default()
	}

	var doc any
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		logger.Warn("failed to parse YAML prompt config, using defaults", "error", err)
		return core.DefaultPromptConfig()
	}

	root, ok := asMap(doc)
	if !ok {
		logger.Warn("YAML prompt config is not a mapping, using defaults")
		return core.DefaultPromptConfig()
	}

	var overrides core.PromptOverrides

	prompt, ok := asMap(root["prompt"])
	if ok {
		overrides.SystemPrompt = stringField(prompt, "system", logger)
		overrides.UserPromptTemplate = stringField(prompt, "user", logger)
	} else {
		logger.Warn("YAML prompt config is missing or has an invalid prompt block")
	}

	if raw, present := root["exclude"]; present && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			logger.Warn("YAML prompt config has a non-list exclude field, ignoring it")
		}
		overrides.Exclude = make([]string, 0, len(list))
		for _, item := range list {
			if pattern, ok := item.(string); ok {
				overrides.Exclude = append(overrides.Exclude, pattern)
			}
		}
	}

	return overrides.Merge(core.DefaultPromptConfig())
}

// ParseMarkdown reads the heading format:
//
//	# System Prompt
//	...
//
//	# User Prompt Template
//	...
//
// A section runs until the next line starting with "# " or the end of input,
// so a body line starting with "# " ends the section early.
func ParseMarkdown(content string, logger *slog.Logger) core.PromptConfig {
	if logger == nil {
		logger = slog.Default()
	}

	var overrides core.PromptOverrides
	overrides.SystemPrompt = markdownSection(content, systemPromptHeading, "System Prompt", logger)
	overrides.UserPromptTemplate = markdownSection(content, userPromptHeading, "User Prompt Template", logger)
	return overrides.Merge(core.DefaultPromptConfig())
}

func markdownSection(content string, heading *regexp.Regexp, name string, logger *slog.Logger) *string {
	body, ok := section(content, heading)
	switch {
	case !ok:
		logger.Warn("markdown prompt config is missing a section, using default", "section", name)
		return nil
	case body == "":
		logger.Warn("markdown prompt config has an empty section, using default", "section", name)
		return nil
	}
	return &body
}

func section(content string, heading *regexp.Regexp) (string, bool) {
	loc := heading.FindStringIndex(content)
	if loc == nil {
		return "", false
	}
	body := content[loc[1]:]
	if strings.HasPrefix(body, nextHeading[1:]) {
		// The heading is directly followed by another one.
		return "", true
	}
	if end := strings.Index(body, nextHeading); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body), true
}

func stringField(m map[string]any, key string, logger *slog.Logger) *string {
	raw, present := m[key]
	if !present || raw == nil {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		logger.Warn("YAML prompt config field has the wrong type, using default", "field", "prompt."+key)
		return nil
	}
	s = strings.TrimSpace(s)
	return &s
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}
