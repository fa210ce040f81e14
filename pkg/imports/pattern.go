package imports

import (
	"errors"
	"regexp"
	"strings"
)

// sideEffectMarker prefixes side-effect specifiers so groups such as
// `^\u0000` can select them.
const sideEffectMarker = "\x00"

// Pattern is a compiled bucket pattern.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// CompilePattern compiles a bucket pattern. JavaScript code point escapes
// (\uXXXX and \u{X...}) are accepted and translated.
func CompilePattern(source string) (Pattern, error) {
	re, err := regexp.Compile(translateEscapes(source))
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{source: source, re: re}, nil
}

// String returns the pattern as authored.
func (p Pattern) String() string {
	return p.source
}

// matches reports whether the pattern selects the statement. Side-effect
// statements are tried with and without the marker prefix, so a pattern
// like `^[^.]` matches "\x00./styles.css" and can pull a relative
// side-effect import into an earlier bucket than its raw specifier reaches.
func (p Pattern) matches(s Statement) bool {
	if p.re == nil {
		return false
	}
	if p.re.MatchString(s.Specifier) {
		return true
	}
	return s.SideEffect && p.re.MatchString(sideEffectMarker+s.Specifier)
}

// Bucket is one ordered set of patterns.
type Bucket []Pattern

// Groups is an ordered sequence of buckets. Statements matching no bucket
// fall into an implicit catch-all bucket at index len(groups).
type Groups []Bucket

// NewGroups compiles a group definition. Every invalid pattern is
// reported, joined, as *InvalidGroupPatternError.
func NewGroups(spec [][]string) (Groups, error) {
	groups, errs := NewGroupsSkipping(spec)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return groups, nil
}

// NewGroupsSkipping compiles a group definition, dropping invalid
// patterns. Buckets are kept even when emptied so indices stay stable.
func NewGroupsSkipping(spec [][]string) (Groups, []error) {
	var errs []error
	groups := make(Groups, len(spec))
	for b, patterns := range spec {
		bucket := make(Bucket, 0, len(patterns))
		for i, src := range patterns {
			p, err := CompilePattern(src)
			if err != nil {
				errs = append(errs, &InvalidGroupPatternError{Bucket: b, Index: i, Pattern: src, Err: err})
				continue
			}
			bucket = append(bucket, p)
		}
		groups[b] = bucket
	}
	return groups, errs
}

// MustGroups is like NewGroups but panics on error. For static tables.
func MustGroups(spec [][]string) Groups {
	g, err := NewGroups(spec)
	if err != nil {
		panic(err)
	}
	return g
}

// DefaultGroups returns the stock grouping: side-effect imports, node:
// builtins, packages, other non-relative imports, then relative imports.
// Buckets are first-match, so the non-relative bucket excludes a leading dot.
func DefaultGroups() Groups {
	return MustGroups([][]string{
		{`^\u0000`},
		{`^node:`},
		{`^@?\w`},
		{`^[^.]`},
		{`^\.`},
	})
}

// Spec returns the authored form of the groups.
func (g Groups) Spec() [][]string {
	out := make([][]string, len(g))
	for i, bucket := range g {
		out[i] = make([]string, len(bucket))
		for j, p := range bucket {
			out[i][j] = p.source
		}
	}
	return out
}

// CatchAll returns the index of the implicit last bucket.
func (g Groups) CatchAll() int {
	return len(g)
}

// Assign returns the index of the first bucket with a pattern matching the
// statement, or CatchAll when none does.
func (g Groups) Assign(s Statement) int {
	for i, bucket := range g {
		for _, p := range bucket {
			if p.matches(s) {
				return i
			}
		}
	}
	return g.CatchAll()
}

// translateEscapes rewrites \uXXXX and \u{X...} into RE2's \x{...} form.
// Escaped backslashes are copied through untouched.
func translateEscapes(src string) string {
	if !strings.Contains(src, `\u`) {
		return src
	}
	var b strings.Builder
	b.Grow(len(src) + 4)
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c != '\\' || i+1 >= len(src) {
			b.WriteByte(c)
			continue
		}
		next := src[i+1]
		if next != 'u' {
			b.WriteByte(c)
			b.WriteByte(next)
			i++
			continue
		}
		rest := src[i+2:]
		if strings.HasPrefix(rest, "{") {
			if end := strings.IndexByte(rest, '}'); end > 1 && isHex(rest[1:end]) {
				b.WriteString(`\x{` + rest[1:end] + `}`)
				i += 2 + end
				continue
			}
		} else if len(rest) >= 4 && isHex(rest[:4]) {
			b.WriteString(`\x{` + rest[:4] + `}`)
			i += 5
			continue
		}
		// Not a code point escape; leave it for the compiler to reject.
		b.WriteByte(c)
		b.WriteByte(next)
		i++
	}
	return b.String()
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
