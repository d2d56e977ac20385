package filepattern

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the number of paths above which matching is spread
// over several goroutines.
const parallelThreshold = 256

// FilterExcluded returns the paths that match none of the exclude patterns, in
// their original order. With no patterns the input slice is returned as is.
// Duplicate paths are kept.
func FilterExcluded(paths, excludes []string) []string {
	if len(excludes) == 0 {
		return paths
	}

	patterns := make([]Pattern, len(excludes))
	for i, e := range excludes {
		patterns[i] = Compile(e)
	}

	excluded := make([]bool, len(paths))
	if len(paths) < parallelThreshold {
		markExcluded(paths, patterns, excluded)
	} else {
		workers := runtime.GOMAXPROCS(0)
		chunk := (len(paths) + workers - 1) / workers

		var g errgroup.Group
		for start := 0; start < len(paths); start += chunk {
			end := min(start+chunk, len(paths))
			g.Go(func() error {
				markExcluded(paths[start:end], patterns, excluded[start:end])
				return nil
			})
		}
		_ = g.Wait()
	}

	kept := make([]string, 0, len(paths))
	for i, path := range paths {
		if !excluded[i] {
			kept = append(kept, path)
		}
	}
	return kept
}

func markExcluded(paths []string, patterns []Pattern, out []bool) {
	for i, path := range paths {
		for _, p := range patterns {
			if p.Match(path) {
				out[i] = true
				break
			}
		}
	}
}
