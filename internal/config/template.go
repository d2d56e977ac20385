package config

import (
	"maps"
	"slices"
	"strings"
)

// ApplyTemplate replaces every {{name}} in template with vars[name].
// Placeholders without a matching key are left as they are.
func ApplyTemplate(template string, vars map[string]string) string {
	result := template
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		result = strings.ReplaceAll(result, "{{"+key+"}}", vars[key])
	}
	return result
}
