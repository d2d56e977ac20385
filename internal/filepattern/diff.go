package filepattern

import "strings"

// BaseDiffCommand is the unscoped staged diff invocation.
const BaseDiffCommand = "git diff --staged"

// DiffCommand builds a shell command that shows the staged diff restricted to
// paths. An empty list yields the unscoped command.
func DiffCommand(paths []string) string {
	if len(paths) == 0 {
		return BaseDiffCommand
	}

	var b strings.Builder
	b.WriteString(BaseDiffCommand)
	b.WriteString(" --")
	for _, p := range paths {
		b.WriteByte(' ')
		b.WriteString(ShellQuote(p))
	}
	return b.String()
}

// ShellQuote wraps s in single quotes, writing embedded quotes as '\''.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
