// Package filepattern decides which staged files take part in the diff sent to
// the language model. Patterns are glob-like strings; every string is a valid
// pattern, so nothing in this package can fail.
package filepattern

import (
	"regexp"
	"strings"
)

const (
	recursivePrefix = "**/"
	recursiveSuffix = "/**"
)

type kind int

const (
	kindBracket     kind = iota // **/X/**
	kindMixed                   // prefix/**/sub*pattern
	kindRecursive               // **/suffix
	kindInfix                   // prefix/**/suffix
	kindDirectory               // prefix/**
	kindExtension               // *.ext
	kindWildcard                // a*b
	kindLiteral                 // exact path
)

// Pattern is a compiled exclusion pattern. The branch used for matching is
// chosen from the shape of the pattern text alone, once, at compile time.
type Pattern struct {
	raw    string
	kind   kind
	prefix string
	suffix string
	re     *regexp.Regexp
}

// Compile classifies pattern. It never fails.
func Compile(pattern string) Pattern {
	p := Pattern{raw: pattern}

	switch {
	case len(pattern) >= len(recursivePrefix)+len(recursiveSuffix) &&
		strings.HasPrefix(pattern, recursivePrefix) && strings.HasSuffix(pattern, recursiveSuffix):
		p.kind = kindBracket
		p.suffix = pattern[len(recursivePrefix) : len(pattern)-len(recursiveSuffix)]

	case strings.Contains(pattern, recursivePrefix) && hasBareStar(pattern) && !strings.HasSuffix(pattern, recursivePrefix):
		p.kind = kindMixed
		p.prefix, p.suffix, _ = strings.Cut(pattern, recursivePrefix)
		p.re = regexp.MustCompile("(?:" + wildcardExpr(p.suffix) + ")$")

	case strings.HasPrefix(pattern, recursivePrefix):
		p.kind = kindRecursive
		p.suffix = strings.TrimPrefix(pattern, recursivePrefix)

	case strings.Contains(pattern, recursivePrefix):
		p.kind = kindInfix
		p.prefix, p.suffix, _ = strings.Cut(pattern, recursivePrefix)

	case strings.HasSuffix(pattern, recursiveSuffix):
		p.kind = kindDirectory
		p.prefix = strings.TrimSuffix(pattern, recursiveSuffix)

	case strings.HasPrefix(pattern, "*.") && !strings.Contains(pattern[1:], "*"):
		p.kind = kindExtension
		p.suffix = pattern[1:]

	case strings.Contains(pattern, "*"):
		p.kind = kindWildcard
		p.re = regexp.MustCompile("^" + wildcardExpr(pattern) + "$")

	default:
		p.kind = kindLiteral
	}
	return p
}

// String returns the pattern as written.
func (p Pattern) String() string {
	return p.raw
}

// Match reports whether path is selected by the pattern.
func (p Pattern) Match(path string) bool {
	switch p.kind {
	case kindBracket:
		return strings.Contains(path, "/"+p.suffix+"/") || strings.HasPrefix(path, p.suffix+"/")
	case kindMixed:
		return strings.HasPrefix(path, p.prefix) && p.re.MatchString(path)
	case kindRecursive:
		return strings.HasSuffix(path, p.suffix) || strings.Contains(path, "/"+p.suffix)
	case kindInfix:
		return (p.prefix == "" || strings.HasPrefix(path, p.prefix)) &&
			(p.suffix == "" || strings.HasSuffix(path, p.suffix))
	case kindDirectory:
		return path == p.prefix || strings.HasPrefix(path, p.prefix+"/")
	case kindExtension:
		// A bare *.ext only looks at files in the repository root.
		if strings.Contains(path, "/") {
			return false
		}
		return strings.HasSuffix(path, p.suffix)
	case kindWildcard:
		return p.re.MatchString(path)
	default:
		return path == p.raw
	}
}

// Match reports whether path matches pattern.
func Match(path, pattern string) bool {
	return Compile(pattern).Match(path)
}

// hasBareStar reports whether s holds a '*' that is not part of a "**".
func hasBareStar(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '*' {
			continue
		}
		if (i > 0 && s[i-1] == '*') || (i+1 < len(s) && s[i+1] == '*') {
			continue
		}
		return true
	}
	return false
}

// wildcardExpr turns glob text into a regular expression body where '*' means
// any run of characters and everything else is literal.
func wildcardExpr(glob string) string {
	parts := strings.Split(glob, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return strings.Join(parts, ".*")
}
