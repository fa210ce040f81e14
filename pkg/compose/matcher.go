package compose

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var errEmptyPattern = errors.New("empty pattern")

// matcher decides whether a layer applies to a path. An empty files list
// accepts every path; ignores always win over files.
type matcher struct {
	files   []string
	ignores []string
}

// compileMatcher validates every pattern of a layer and returns all failures.
func compileMatcher(layer int, name string, files, ignores []string) (matcher, []error) {
	var errs []error
	m := matcher{
		files:   make([]string, 0, len(files)),
		ignores: make([]string, 0, len(ignores)),
	}
	check := func(pattern string) (string, bool) {
		p := normalizePath(pattern)
		if p == "" {
			errs = append(errs, &InvalidMatcherError{Layer: layer, Name: name, Pattern: pattern, Err: errEmptyPattern})
			return "", false
		}
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, &InvalidMatcherError{Layer: layer, Name: name, Pattern: pattern, Err: doublestar.ErrBadPattern})
			return "", false
		}
		return p, true
	}
	for _, f := range files {
		if p, ok := check(f); ok {
			m.files = append(m.files, p)
		}
	}
	for _, ig := range ignores {
		if p, ok := check(ig); ok {
			m.ignores = append(m.ignores, p)
		}
	}
	return m, errs
}

// Match reports whether path is in scope. The path must already be normalized.
func (m matcher) Match(path string) bool {
	for _, ig := range m.ignores {
		if doublestar.MatchUnvalidated(ig, path) {
			return false
		}
	}
	if len(m.files) == 0 {
		return true
	}
	for _, f := range m.files {
		if doublestar.MatchUnvalidated(f, path) {
			return true
		}
	}
	return false
}

// normalizePath converts to forward slashes and drops a leading "./".
func normalizePath(p string) string {
	p = filepath.ToSlash(strings.TrimSpace(p))
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}
