// Package gitutil provides a client for the staged state of a local Git repository.
package gitutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/sevigo/aicommit/internal/filepattern"
)

var (
	ErrNotRepository    = errors.New("not a git repository")
	ErrAllFilesExcluded = errors.New("all staged files are excluded")
)

// Client handles interacting with the Git repository containing Dir.
type Client struct {
	Logger *slog.Logger
	Dir    string
}

// NewClient returns a new Client instance working in dir.
func NewClient(logger *slog.Logger, dir string) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{Logger: logger, Dir: dir}
}

// Open opens the repository containing Dir, searching parent directories.
func (c *Client) Open() (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(c.Dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, c.Dir)
		}
		return nil, fmt.Errorf("failed to open repository at %s: %w", c.Dir, err)
	}
	return repo, nil
}

// CurrentBranch returns the short name of the checked out branch. It returns
// an empty string on a detached HEAD or a repository without commits.
func (c *Client) CurrentBranch() string {
	repo, err := c.Open()
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		c.Logger.Debug("could not resolve HEAD", "error", err)
		return ""
	}
	if !head.Name().IsBranch() {
		return ""
	}
	return head.Name().Short()
}

// StagedFiles lists the paths with staged changes, relative to the repository root.
func (c *Client) StagedFiles(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, nil, "diff", "--staged", "--name-only", "-z")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, name := range strings.Split(out, "\x00") {
		if name != "" {
			files = append(files, name)
		}
	}
	return files, nil
}

// StagedDiff returns the staged diff without the files matched by excludes.
func (c *Client) StagedDiff(ctx context.Context, excludes []string) (string, error) {
	if len(excludes) == 0 {
		return c.RunDiffCommand(ctx, filepattern.BaseDiffCommand)
	}

	staged, err := c.StagedFiles(ctx)
	if err != nil {
		return "", err
	}
	included := filepattern.FilterExcluded(staged, excludes)
	if len(staged) > 0 && len(included) == 0 {
		return "", fmt.Errorf("%w (%d files)", ErrAllFilesExcluded, len(staged))
	}
	if skipped := len(staged) - len(included); skipped > 0 {
		c.Logger.InfoContext(ctx, "excluded staged files from diff", "excluded", skipped, "included", len(included))
	}

	return c.RunDiffCommand(ctx, filepattern.DiffCommand(included))
}

// RunDiffCommand runs a shell command built by filepattern.DiffCommand from
// the repository root.
func (c *Client) RunDiffCommand(ctx context.Context, command string) (string, error) {
	root, err := c.root(ctx)
	if err != nil {
		return "", err
	}

	c.Logger.DebugContext(ctx, "running diff", "command", command)
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = root
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git diff failed: %s: %w", strings.TrimSpace(stderr.String()), err)
	}
	return string(out), nil
}

// Commit records the staged changes with message. The message is passed on
// stdin so it needs no quoting.
func (c *Client) Commit(ctx context.Context, message string) error {
	c.Logger.InfoContext(ctx, "creating commit")
	if _, err := c.run(ctx, strings.NewReader(message), "commit", "-F", "-"); err != nil {
		return err
	}
	return nil
}

func (c *Client) root(ctx context.Context) (string, error) {
	out, err := c.run(ctx, nil, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotRepository, err)
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) run(ctx context.Context, stdin *strings.Reader, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.Dir
	if stdin != nil {
		cmd.Stdin = stdin
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %s: %w", args[0], strings.TrimSpace(stderr.String()), err)
	}
	return string(out), nil
}
