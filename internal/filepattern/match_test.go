package filepattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		pattern string
		want    bool
	}{
		{name: "Exact match", path: "package-lock.json", pattern: "package-lock.json", want: true},
		{name: "Exact does not match nested file", path: "src/package-lock.json", pattern: "package-lock.json", want: false},
		{name: "Exact does not match other file", path: "package.json", pattern: "package-lock.json", want: false},

		{name: "Extension matches root file", path: "package.json", pattern: "*.json", want: true},
		{name: "Extension matches other root file", path: "package-lock.json", pattern: "*.json", want: true},
		{name: "Extension skips subdirectory", path: "src/config.json", pattern: "*.json", want: false},
		{name: "Extension skips other extension", path: "src/config.js", pattern: "*.json", want: false},
		{name: "Any extension skips subdirectory", path: "docs/readme.md", pattern: "*.md", want: false},

		{name: "Recursive prefix at root", path: "package-lock.json", pattern: "**/package-lock.json", want: true},
		{name: "Recursive prefix nested", path: "src/package-lock.json", pattern: "**/package-lock.json", want: true},
		{name: "Recursive prefix deeply nested", path: "src/nested/deep/package-lock.json", pattern: "**/package-lock.json", want: true},
		{name: "Recursive prefix other file", path: "package.json", pattern: "**/package-lock.json", want: false},

		{name: "Infix direct child", path: "src/test.js", pattern: "src/**/test.js", want: true},
		{name: "Infix nested", path: "src/nested/test.js", pattern: "src/**/test.js", want: true},
		{name: "Infix deeply nested", path: "src/nested/deep/test.js", pattern: "src/**/test.js", want: true},
		{name: "Infix wrong root", path: "lib/test.js", pattern: "src/**/test.js", want: false},
		{name: "Infix trailing recursive", path: "src/a/b.go", pattern: "src/**/", want: true},

		{name: "Mixed one level", path: "src/components/Button.tsx", pattern: "src/**/*.tsx", want: true},
		{name: "Mixed two levels", path: "src/a/b/Button.tsx", pattern: "src/**/*.tsx", want: true},
		{name: "Mixed wrong extension", path: "src/Button.jsx", pattern: "src/**/*.tsx", want: false},
		{name: "Mixed wrong prefix", path: "lib/components/Button.tsx", pattern: "src/**/*.tsx", want: false},
		{name: "Mixed dot is literal", path: "src/a/Buttonxtsx", pattern: "src/**/*.tsx", want: false},
		{name: "Mixed empty prefix", path: "a/b/c.min.js", pattern: "**/*.min.js", want: true},

		{name: "Bracket at root", path: "node_modules/lodash/index.js", pattern: "**/node_modules/**", want: true},
		{name: "Bracket nested", path: "web/node_modules/lodash/index.js", pattern: "**/node_modules/**", want: true},
		{name: "Bracket segment only", path: "src/my_node_modules/index.js", pattern: "**/node_modules/**", want: false},
		{name: "Bracket bare file name", path: "node_modules", pattern: "**/node_modules/**", want: false},

		{name: "Directory itself", path: "dist", pattern: "dist/**", want: true},
		{name: "Directory child", path: "dist/index.js", pattern: "dist/**", want: true},
		{name: "Directory sibling prefix", path: "distribution/index.js", pattern: "dist/**", want: false},

		{name: "Wildcard anchored", path: "src/generated_api.go", pattern: "src/generated_*.go", want: true},
		{name: "Wildcard spans slashes", path: "src/a/generated_b.go", pattern: "src/*.go", want: true},
		{name: "Wildcard anchored at start", path: "x/src/generated_api.go", pattern: "src/generated_*.go", want: false},
		{name: "Wildcard dot is literal", path: "fooxgo", pattern: "foo*.go", want: false},

		{name: "Regex metacharacters are literal", path: "a+b(1).txt", pattern: "a+b(*).txt", want: true},
		{name: "Unbalanced bracket literal", path: "[weird", pattern: "[weird", want: true},
		{name: "Empty pattern matches only empty path", path: "a", pattern: "", want: false},
		{name: "Degenerate recursive pattern", path: "x/**", pattern: "**/**", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.path, tt.pattern), "Match(%q, %q)", tt.path, tt.pattern)
		})
	}
}

func TestMatch_BracketLaw(t *testing.T) {
	paths := []string{
		"x/a.go", "a/x/b.go", "ax/b.go", "a/xx/b.go", "x", "a/x", "xy/x/z", "/x/",
	}
	for _, p := range paths {
		want := containsSegment(p, "x")
		assert.Equal(t, want, Match(p, "**/x/**"), "path %q", p)
	}
}

func containsSegment(path, seg string) bool {
	return strings.HasPrefix(path, seg+"/") || strings.Contains(path, "/"+seg+"/")
}

func TestCompile_ShapeSelectsBranch(t *testing.T) {
	// "**/lib/**" is a bracket pattern even though "**/" prefix rules would also apply.
	p := Compile("**/lib/**")
	assert.Equal(t, kindBracket, p.kind)
	assert.False(t, p.Match("mylib/x"))

	assert.Equal(t, kindMixed, Compile("src/**/*.tsx").kind)
	assert.Equal(t, kindRecursive, Compile("**/go.sum").kind)
	assert.Equal(t, kindInfix, Compile("src/**/main.go").kind)
	assert.Equal(t, kindDirectory, Compile("vendor/**").kind)
	assert.Equal(t, kindExtension, Compile("*.lock").kind)
	assert.Equal(t, kindWildcard, Compile("*.test.*").kind)
	assert.Equal(t, kindLiteral, Compile("go.sum").kind)
	assert.Equal(t, "go.sum", Compile("go.sum").String())
}
