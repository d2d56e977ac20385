package core

import "slices"

// Built-in prompts used whenever a configuration file does not provide them.
const (
	DefaultSystemPrompt       = "You are a helpful assistant that generates clear and concise git commit messages. Follow conventional commits format. Disable markdown in the response."
	DefaultUserPromptTemplate = "Please generate a commit message for the following git diff:\n\n{{diff}}"
)

// PromptConfig represents the structure of the .aicommit.yml / .aicommit.md file
// after resolution. SystemPrompt and UserPromptTemplate are never empty.
type PromptConfig struct {
	// System message sent to the language model.
	SystemPrompt string

	// User message template. {{diff}} is replaced by the scoped staged diff.
	UserPromptTemplate string

	// Glob-like patterns of staged files to leave out of the diff.
	// Example: ["package-lock.json", "**/node_modules/**", "dist/**"]
	Exclude []string
}

// DefaultPromptConfig returns a config with default values.
func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		SystemPrompt:       DefaultSystemPrompt,
		UserPromptTemplate: DefaultUserPromptTemplate,
		Exclude:            []string{},
	}
}

// PromptOverrides holds the fields a parser managed to read. A nil field means
// the source did not provide a usable value.
type PromptOverrides struct {
	SystemPrompt       *string
	UserPromptTemplate *string
	Exclude            []string
}

// Merge lays the overrides over base and returns a new config. base is not modified.
func (o PromptOverrides) Merge(base PromptConfig) PromptConfig {
	merged := PromptConfig{
		SystemPrompt:       base.SystemPrompt,
		UserPromptTemplate: base.UserPromptTemplate,
		Exclude:            slices.Clone(base.Exclude),
	}
	if o.SystemPrompt != nil && *o.SystemPrompt != "" {
		merged.SystemPrompt = *o.SystemPrompt
	}
	if o.UserPromptTemplate != nil && *o.UserPromptTemplate != "" {
		merged.UserPromptTemplate = *o.UserPromptTemplate
	}
	if o.Exclude != nil {
		merged.Exclude = slices.Clone(o.Exclude)
	}
	if merged.Exclude == nil {
		merged.Exclude = []string{}
	}
	return merged
}

// ConfigFormat identifies which on-disk shape a prompt config file uses.
type ConfigFormat int

const (
	// FormatStructured is the YAML shape with a nested prompt block.
	FormatStructured ConfigFormat = iota
	// FormatHeadingText is the markdown shape with "# System Prompt" and
	// "# User Prompt Template" sections.
	FormatHeadingText
)

func (f ConfigFormat) String() string {
	switch f {
	case FormatStructured:
		return "yaml"
	case FormatHeadingText:
		return "markdown"
	default:
		return "unknown"
	}
}
