package imports

import (
	"regexp"
	"strings"
)

// Kind distinguishes imports from re-exports.
type Kind int

// Statement kinds.
const (
	KindImport Kind = iota
	KindExport
)

func (k Kind) String() string {
	if k == KindExport {
		return "export"
	}
	return "import"
}

// Statement is one import or re-export statement of a file.
type Statement struct {
	// Text is the statement source, including attached leading comments.
	Text string

	// Specifier is the module path being imported or re-exported.
	Specifier string

	// Kind is KindImport or KindExport.
	Kind Kind

	// SideEffect marks imports that bind no names (import "polyfill").
	SideEffect bool

	// Valid is false when no specifier could be resolved.
	Valid bool
}

var (
	// import "x"   import 'x';
	sideEffectRe = regexp.MustCompile(`^import\s*(['"])([^'"\n]*)(['"])\s*` + attrs + `;?$`)
	// ... from "x"
	fromRe = regexp.MustCompile(`\bfrom\s*(['"])([^'"\n]*)(['"])\s*` + attrs + `;?$`)
	// import x, {y} from / import type {T} from / import * as ns from
	importHeadRe = regexp.MustCompile(`^import(\s+type)?[\s{*]`)
	// export * from / export * as ns from / export {a} from / export type {T} from
	exportHeadRe = regexp.MustCompile(`^export(\s+type)?\s*[{*]`)
)

// attrs matches optional import attributes: with { type: "json" }.
const attrs = `(?:(?:with|assert)\s*\{[^}]*\}\s*)?`

// Parse derives a Statement from the text of one import or re-export
// statement. Statements whose specifier cannot be resolved are returned with
// Valid false; Text is always preserved.
func Parse(text string) Statement {
	s := Statement{Text: text}
	code := strings.TrimSpace(stripComments(text))
	if strings.HasPrefix(code, "export") {
		s.Kind = KindExport
	}

	switch s.Kind {
	case KindImport:
		if !strings.HasPrefix(code, "import") {
			return s
		}
		if m := sideEffectRe.FindStringSubmatch(code); m != nil && m[1] == m[3] {
			s.Specifier, s.SideEffect, s.Valid = m[2], true, true
			return s
		}
		if !importHeadRe.MatchString(code) {
			return s
		}
	case KindExport:
		if !exportHeadRe.MatchString(code) {
			return s
		}
	}

	if m := fromRe.FindStringSubmatch(code); m != nil && m[1] == m[3] {
		s.Specifier, s.Valid = m[2], true
	}
	return s
}

// stripComments removes // and /* */ comments outside string literals.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	var quote byte
	for i := 0; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			b.WriteByte(c)
			switch {
			case c == '\\' && i+1 < len(src):
				i++
				b.WriteByte(src[i])
			case c == quote:
				quote = 0
			}
			continue
		}
		switch {
		case c == '\'' || c == '"' || c == '`':
			quote = c
			b.WriteByte(c)
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				b.WriteByte('\n')
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return b.String()
			}
			i += end + 3
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
