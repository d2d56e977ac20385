package gitutil

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates a repository with one commit on branch main and
// returns its path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	runTestGit(t, dir, "init")
	runTestGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	runTestGit(t, dir, "config", "user.email", "test@example.com")
	runTestGit(t, dir, "config", "user.name", "Test User")
	runTestGit(t, dir, "config", "commit.gpgsign", "false")

	writeTestFile(t, filepath.Join(dir, "README.md"), "# Test Repo\n")
	runTestGit(t, dir, "add", ".")
	runTestGit(t, dir, "commit", "-m", "initial commit")
	return dir
}

func runTestGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, string(output))
	return string(output)
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func stageFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		writeTestFile(t, filepath.Join(dir, name), content)
	}
	runTestGit(t, dir, "add", "-A")
}

func TestClient_OpenAndBranch(t *testing.T) {
	dir := setupTestRepo(t)
	sub := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0755))

	c := NewClient(nil, sub)
	_, err := c.Open()
	require.NoError(t, err)
	assert.Equal(t, "main", c.CurrentBranch())

	_, err = NewClient(nil, t.TempDir()).Open()
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestClient_StagedFiles(t *testing.T) {
	dir := setupTestRepo(t)
	stageFiles(t, dir, map[string]string{
		"src/main.go":         "package main\n",
		"file with spaces.ts": "x\n",
		"it's.js":             "y\n",
	})
	// Unstaged change is not listed.
	writeTestFile(t, filepath.Join(dir, "README.md"), "changed\n")

	files, err := NewClient(nil, dir).StagedFiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"src/main.go", "file with spaces.ts", "it's.js"}, files)
}

func TestClient_StagedDiff(t *testing.T) {
	dir := setupTestRepo(t)
	stageFiles(t, dir, map[string]string{
		"src/main.go":       "package main\n",
		"package-lock.json": "{}\n",
		"it's quoted.go":    "package quoted\n",
	})
	c := NewClient(nil, filepath.Join(dir, "src"))
	ctx := context.Background()

	t.Run("No excludes", func(t *testing.T) {
		diff, err := c.StagedDiff(ctx, nil)
		require.NoError(t, err)
		assert.Contains(t, diff, "src/main.go")
		assert.Contains(t, diff, "package-lock.json")
	})

	t.Run("With excludes", func(t *testing.T) {
		diff, err := c.StagedDiff(ctx, []string{"*.json"})
		require.NoError(t, err)
		assert.Contains(t, diff, "src/main.go")
		assert.Contains(t, diff, "it's quoted.go")
		assert.NotContains(t, diff, "package-lock.json")
	})

	t.Run("Everything excluded", func(t *testing.T) {
		_, err := c.StagedDiff(ctx, []string{"**/*.*", "*.json", "*.go"})
		assert.ErrorIs(t, err, ErrAllFilesExcluded)
	})
}

func TestClient_Commit(t *testing.T) {
	dir := setupTestRepo(t)
	stageFiles(t, dir, map[string]string{"a.go": "package a\n"})

	message := "feat: add \"a\" package\n\nUses `backticks` and $VARS safely."
	require.NoError(t, NewClient(nil, dir).Commit(context.Background(), message))

	logged := runTestGit(t, dir, "log", "-1", "--format=%B")
	assert.Equal(t, message, strings.TrimSpace(logged))
}
