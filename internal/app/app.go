// Package app orchestrates one aicommit run: it resolves the prompt config,
// reads the staged diff, asks the model for a message and commits it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sevigo/aicommit/internal/config"
	"github.com/sevigo/aicommit/internal/gitutil"
	"github.com/sevigo/aicommit/internal/llm"
)

var ErrNoStagedChanges = errors.New("no staged changes, use 'git add' first")

// Options are the per-run inputs of Prepare.
type Options struct {
	// ConfigPath is an explicit prompt config file to try first.
	ConfigPath string
}

// Draft is a generated commit message that has not been committed yet.
type Draft struct {
	Message string
	Branch  string
	Source  config.Source
}

// Committer holds the collaborators needed to turn staged changes into a commit.
type Committer struct {
	resolver *config.Resolver
	git      *gitutil.Client
	gen      llm.Generator
	logger   *slog.Logger
}

// NewCommitter creates a Committer.
func NewCommitter(resolver *config.Resolver, git *gitutil.Client, gen llm.Generator, logger *slog.Logger) *Committer {
	return &Committer{
		resolver: resolver,
		git:      git,
		gen:      gen,
		logger:   logger,
	}
}

// Prepare generates a commit message for the staged changes.
func (c *Committer) Prepare(ctx context.Context, opts Options) (*Draft, error) {
	if _, err := c.git.Open(); err != nil {
		return nil, err
	}

	promptCfg, source := c.resolver.ResolveWithSource(opts.ConfigPath)
	c.logger.Debug("resolved prompt config", "source", source.String(), "exclude", len(promptCfg.Exclude))

	diff, err := c.git.StagedDiff(ctx, promptCfg.Exclude)
	if err != nil {
		if errors.Is(err, gitutil.ErrAllFilesExcluded) {
			return nil, fmt.Errorf("%w: check the exclude list in %s", err, source)
		}
		return nil, fmt.Errorf("failed to read staged changes: %w", err)
	}
	if strings.TrimSpace(diff) == "" {
		return nil, ErrNoStagedChanges
	}

	branch := c.git.CurrentBranch()
	c.logger.Info("generating commit message", "branch", branch, "diff_bytes", len(diff))

	msg, err := llm.CommitMessage(ctx, c.gen, promptCfg, diff)
	if err != nil {
		return nil, err
	}

	return &Draft{Message: msg, Branch: branch, Source: source}, nil
}

// Commit records the staged changes with message.
func (c *Committer) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return llm.ErrEmptyMessage
	}
	if err := c.git.Commit(ctx, message); err != nil {
		return err
	}
	c.logger.Info("committed staged changes")
	return nil
}
