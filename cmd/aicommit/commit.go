package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/sevigo/aicommit/internal/app"
	"github.com/sevigo/aicommit/internal/wire"
)

var (
	dryRun     bool
	assumeYes  bool
	copyResult bool
)

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the message without committing")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Commit without asking for confirmation")
	rootCmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the message to the clipboard")
}

func runCommit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	committer, err := wire.InitializeCommitter(runCfg, appLogger)
	if err != nil {
		return err
	}

	genCtx, cancel := context.WithTimeout(cmd.Context(), runCfg.Timeout)
	defer cancel()

	dimColor.Fprintln(out, "Generating commit message...")
	draft, err := committer.Prepare(genCtx, app.Options{ConfigPath: runCfg.PromptConfigPath})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("no response within %s, retry or raise --timeout: %w", runCfg.Timeout, err)
		}
		return err
	}

	printDraft(out, draft)

	if copyResult {
		if err := clipboard.WriteAll(draft.Message); err != nil {
			warnColor.Fprintf(cmd.ErrOrStderr(), "Could not copy to clipboard: %v\n", err)
		} else {
			successColor.Fprintln(out, "✓ Copied to clipboard")
		}
	}

	if dryRun {
		dimColor.Fprintln(out, "Dry run, nothing committed.")
		return nil
	}

	if !assumeYes {
		confirmed, err := confirmCommit()
		if err != nil {
			return err
		}
		if !confirmed {
			warnColor.Fprintln(out, "Commit cancelled")
			return nil
		}
	}

	if err := committer.Commit(cmd.Context(), draft.Message); err != nil {
		return err
	}
	successColor.Fprintln(out, "✓ Successfully created commit")
	return nil
}

func printDraft(out io.Writer, draft *app.Draft) {
	fmt.Fprintln(out)
	if draft.Branch != "" {
		titleColor.Fprintf(out, "Commit message for %s:\n", draft.Branch)
	} else {
		titleColor.Fprintln(out, "Commit message:")
	}
	boldColor.Fprintln(out, draft.Message)
	fmt.Fprintln(out)
	dimColor.Fprintf(out, "Prompt config: %s\n", draft.Source)
}

func confirmCommit() (bool, error) {
	confirmed := true
	err := huh.NewConfirm().
		Title("Commit with this message?").
		Affirmative("Commit").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return confirmed, nil
}
