package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"logpanel/internal/app/errors"
)

// Matcher selects followed files by include and ignore patterns
type Matcher interface {
	Match(path string) bool
	MatchDir(dirPath string) bool
}

type matcher struct {
	includes []glob.Glob
	ignores  []glob.Glob
}

// NewMatcher compiles include and ignore patterns; "**/" patterns also match at the root
func NewMatcher(includes, ignores []string) (Matcher, error) {
	inc, err := compile(includes)
	if err != nil {
		return nil, err
	}

	ign, err := compile(ignores)
	if err != nil {
		return nil, err
	}

	return &matcher{includes: inc, ignores: ign}, nil
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns)*2)

	for _, pattern := range patterns {
		variants := []string{pattern}
		if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
			variants = append(variants, rest)
		}

		for _, v := range variants {
			g, err := glob.Compile(v, '/')
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", errors.ErrInvalidGlobPattern, pattern, err)
			}

			globs = append(globs, g)
		}
	}

	return globs, nil
}

// Match reports whether a relative path is included and not ignored
func (m *matcher) Match(path string) bool {
	path = normalizePath(path)

	for _, ignore := range m.ignores {
		if ignore.Match(path) {
			return false
		}
	}

	for _, include := range m.includes {
		if include.Match(path) {
			return true
		}
	}

	return false
}

// MatchDir reports whether everything under a directory is ignored
func (m *matcher) MatchDir(dirPath string) bool {
	sample := normalizePath(dirPath + "/_sample")

	for _, ignore := range m.ignores {
		if ignore.Match(sample) {
			return true
		}
	}

	return false
}

func normalizePath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}
