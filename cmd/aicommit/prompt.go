package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/aicommit/internal/config"
	"github.com/sevigo/aicommit/internal/core"
	"github.com/sevigo/aicommit/internal/wire"
)

var (
	initGlobal bool
	initFormat string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Manage prompt configurations",
}

var promptInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a prompt configuration file with the default prompts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := parseFormat(initFormat)
		if err != nil {
			return err
		}

		dir := runCfg.WorkDir
		if initGlobal {
			dir = runCfg.GlobalDir
		}

		path, err := config.WriteScaffold(dir, format)
		if errors.Is(err, config.ErrPromptConfigExists) {
			warnColor.Fprintf(cmd.OutOrStdout(), "Prompt configuration already exists at %s\n", path)
			return nil
		}
		if err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "✓ Created prompt configuration at %s\n", path)
		return nil
	},
}

var promptShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the prompt configuration in effect here",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		resolver := wire.InitializeResolver(runCfg, appLogger)
		promptCfg, source := resolver.ResolveWithSource(runCfg.PromptConfigPath)

		titleColor.Fprintln(out, "Current aicommit configuration")
		dimColor.Fprintf(out, "Source: %s\n", source)

		boldColor.Fprintln(out, "\nSystem Prompt:")
		fmt.Fprintln(out, promptCfg.SystemPrompt)

		boldColor.Fprintln(out, "\nUser Prompt Template:")
		fmt.Fprintln(out, promptCfg.UserPromptTemplate)

		boldColor.Fprintln(out, "\nExclude:")
		if len(promptCfg.Exclude) == 0 {
			dimColor.Fprintln(out, "(none)")
		}
		for _, pattern := range promptCfg.Exclude {
			fmt.Fprintf(out, "  - %s\n", pattern)
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	promptInitCmd.Flags().BoolVarP(&initGlobal, "global", "g", false, "Create in the global config directory instead of the current one")
	promptInitCmd.Flags().StringVarP(&initFormat, "format", "f", "yaml", "File format (yaml, md)")

	promptCmd.AddCommand(promptInitCmd, promptShowCmd)
	rootCmd.AddCommand(promptCmd)
}

func parseFormat(name string) (core.ConfigFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "yaml", "yml":
		return core.FormatStructured, nil
	case "md", "markdown":
		return core.FormatHeadingText, nil
	default:
		return core.FormatStructured, fmt.Errorf("unknown format %q, use yaml or md", name)
	}
}
