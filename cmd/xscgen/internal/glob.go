package internal

import (
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

const globMeta = "*?[{"

// ExpandPatterns expands file globs. Each pattern contributes its matches in sorted
// order, and patterns are kept in argument order. Patterns without glob syntax,
// invalid patterns and patterns without matches are passed through unchanged.
// Duplicates are kept and nothing is checked for existence.
func ExpandPatterns(patterns []string) []string {
	results := make([][]string, len(patterns))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pattern := range patterns {
		g.Go(func() error {
			results[i] = expandPattern(pattern)
			return nil
		})
	}
	// Workers never fail.
	_ = g.Wait()

	var files []string
	for _, matches := range results {
		files = append(files, matches...)
	}
	return files
}

func expandPattern(pattern string) []string {
	if !strings.ContainsAny(pattern, globMeta) {
		return []string{pattern}
	}

	matches, err := doublestar.FilepathGlob(filepath.FromSlash(pattern))
	if err != nil || len(matches) == 0 {
		return []string{pattern}
	}

	slices.Sort(matches)
	return matches
}
