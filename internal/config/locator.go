package config

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/sevigo/aicommit/internal/core"
)

// Source is a located prompt config file. The zero value means none was found.
type Source struct {
	Path   string
	Format core.ConfigFormat
}

// Found reports whether the source points at a file.
func (s Source) Found() bool {
	return s.Path != ""
}

func (s Source) String() string {
	if !s.Found() {
		return "built-in defaults"
	}
	return s.Path
}

// Locator searches the custom path, the working directory and the global
// directory for a prompt config file. It only checks for existence.
type Locator struct {
	WorkDir   string
	GlobalDir string
	exists    func(path string) bool
}

// NewLocator returns a Locator over workDir and globalDir.
func NewLocator(workDir, globalDir string) *Locator {
	return &Locator{
		WorkDir:   workDir,
		GlobalDir: globalDir,
		exists:    fileExists,
	}
}

// Candidates yields, in priority order, every path that Locate checks. The
// sequence is lazy; nothing touches the filesystem.
func (l *Locator) Candidates(customPath string) iter.Seq[Source] {
	return func(yield func(Source) bool) {
		if customPath != "" {
			if !yield(Source{Path: customPath, Format: FormatForPath(customPath)}) {
				return
			}
		}
		for _, dir := range []string{l.WorkDir, l.GlobalDir} {
			if dir == "" {
				continue
			}
			for _, name := range PromptFilenames {
				path := filepath.Join(dir, name)
				if !yield(Source{Path: path, Format: FormatForPath(name)}) {
					return
				}
			}
		}
	}
}

// Locate returns the first existing candidate, or the zero Source.
func (l *Locator) Locate(customPath string) Source {
	for candidate := range l.Candidates(customPath) {
		if l.exists(candidate.Path) {
			return candidate
		}
	}
	return Source{}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
