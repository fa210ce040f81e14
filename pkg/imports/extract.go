package imports

import (
	"strings"
)

// Header is a source file split around its leading import/export section.
type Header struct {
	// Prefix holds lines before the first statement: shebang, directives
	// and comments separated from the first statement by a blank line.
	Prefix []string

	// Statements are the header statements in source order. Comment lines
	// directly above a statement are part of its Text.
	Statements []Statement

	// Body holds every line after the last statement, blank lines and
	// trailing comments included.
	Body []string

	lines []string
	spans []lineSpan
}

// lineSpan is the half-open line range a statement and its leading
// comments occupy.
type lineSpan struct {
	start, end int
}

// Extract splits source into prefix, header statements and body. The header
// ends at the first line that is neither blank, a comment, an import nor a
// re-export. A file with no header has everything in Body.
func Extract(source string) Header {
	lines := strings.Split(source, "\n")

	var (
		h            Header
		pending      []string
		pendingStart int
		found        bool
		i            int
	)

scan:
	for i < len(lines) {
		t := strings.TrimSpace(lines[i])
		switch {
		case t == "":
			if !found {
				h.Prefix = append(h.Prefix, pending...)
				h.Prefix = append(h.Prefix, lines[i])
				pending = nil
			}
			i++

		case isCommentLine(t):
			n := commentSpan(lines, i)
			if len(pending) == 0 {
				pendingStart = i
			}
			pending = append(pending, lines[i:i+n]...)
			i += n

		case startsStatement(t):
			n := statementSpan(lines, i)
			text := strings.Join(lines[i:i+n], "\n")
			st := Parse(text)
			if st.Kind == KindExport && !st.Valid {
				// A local export ends the header.
				break scan
			}
			start := i
			if len(pending) > 0 {
				st = Parse(strings.Join(pending, "\n") + "\n" + text)
				start = pendingStart
			}
			h.Statements = append(h.Statements, st)
			h.spans = append(h.spans, lineSpan{start: start, end: i + n})
			pending = nil
			found = true
			i += n

		case !found && isPreamble(t):
			h.Prefix = append(h.Prefix, pending...)
			h.Prefix = append(h.Prefix, lines[i])
			pending = nil
			i++

		default:
			break scan
		}
	}

	if !found {
		return Header{Body: lines}
	}
	h.lines = lines
	h.Body = lines[h.spans[len(h.spans)-1].end:]
	return h
}

// SortSource rewrites the header of source with imports and re-exports
// sorted into groups. It is SortKinds with both kinds enabled.
func SortSource(source string, groups Groups) (string, []error) {
	return SortKinds(source, groups, KindImport, KindExport)
}

// SortKinds rewrites the header of source, sorting only runs of the given
// kinds. Imports and exports are separate passes: each run of same-kind
// statements is classified on its own, and runs of other kinds are kept
// verbatim. A CRLF source keeps CRLF line endings. The returned errors are
// advisories for statements left in place.
func SortKinds(source string, groups Groups, kinds ...Kind) (string, []error) {
	original := source
	crlf := strings.Contains(source, "\r\n")
	if crlf {
		source = strings.ReplaceAll(source, "\r\n", "\n")
	}

	h := Extract(source)
	if len(h.Statements) == 0 || len(kinds) == 0 {
		return original, nil
	}

	var advisories []error
	var chunks []string
	offset := 0
	for _, run := range splitByKind(h.Statements) {
		if !containsKind(kinds, h.Statements[run.first].Kind) {
			kept := h.lines[h.spans[run.first].start:h.spans[run.last].end]
			chunks = append(chunks, strings.Join(trimBlank(kept, false), "\n"))
			offset += run.last - run.first + 1
			continue
		}
		res := Classify(h.Statements[run.first:run.last+1], groups)
		for _, adv := range res.Advisories {
			if u, ok := adv.(*UnclassifiableStatementError); ok {
				advisories = append(advisories, &UnclassifiableStatementError{Index: u.Index + offset, Text: u.Text})
			}
		}
		chunks = append(chunks, res.String())
		offset += run.last - run.first + 1
	}

	var sections []string
	if prefix := trimBlank(h.Prefix, false); len(prefix) > 0 {
		sections = append(sections, strings.Join(prefix, "\n"))
	}
	sections = append(sections, strings.Join(chunks, "\n\n"))
	if body := trimBlank(h.Body, true); len(body) > 0 {
		sections = append(sections, strings.Join(body, "\n"))
	}

	out := strings.Join(sections, "\n\n")
	if strings.HasSuffix(source, "\n") && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return restoreEndings(out, crlf), advisories
}

func restoreEndings(s string, crlf bool) string {
	if !crlf {
		return s
	}
	return strings.ReplaceAll(s, "\n", "\r\n")
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

// IsSorted reports whether SortSource would leave source unchanged.
func IsSorted(source string, groups Groups) bool {
	out, _ := SortSource(source, groups)
	return out == source
}

// kindRun is an inclusive index range of same-kind statements.
type kindRun struct {
	first, last int
}

func splitByKind(stmts []Statement) []kindRun {
	var runs []kindRun
	start := 0
	for i := 1; i <= len(stmts); i++ {
		if i == len(stmts) || stmts[i].Kind != stmts[start].Kind {
			runs = append(runs, kindRun{first: start, last: i - 1})
			start = i
		}
	}
	return runs
}

// trimBlank drops blank lines from the end (head false) or start (head true).
func trimBlank(lines []string, head bool) []string {
	if head {
		for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
			lines = lines[1:]
		}
		return lines
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isCommentLine(t string) bool {
	return strings.HasPrefix(t, "//") ||
		(strings.HasPrefix(t, "/*") && strings.TrimSpace(stripComments(t)) == "") ||
		(strings.HasPrefix(t, "/*") && !strings.Contains(t, "*/"))
}

// commentSpan returns the number of lines a comment starting at lines[i]
// occupies.
func commentSpan(lines []string, i int) int {
	t := strings.TrimSpace(lines[i])
	if !strings.HasPrefix(t, "/*") || strings.Contains(t[2:], "*/") {
		return 1
	}
	for j := i + 1; j < len(lines); j++ {
		if strings.Contains(lines[j], "*/") {
			return j - i + 1
		}
	}
	return len(lines) - i
}

func isPreamble(t string) bool {
	if strings.HasPrefix(t, "#!") {
		return true
	}
	return strings.HasPrefix(t, `"use `) || strings.HasPrefix(t, `'use `)
}

// startsStatement reports whether a trimmed line begins a static import or
// an export that may be a re-export.
func startsStatement(t string) bool {
	for _, kw := range []string{"import", "export"} {
		if !strings.HasPrefix(t, kw) {
			continue
		}
		if len(t) == len(kw) {
			return true
		}
		switch t[len(kw)] {
		case ' ', '\t', '{', '*', '"', '\'':
			return true
		}
	}
	return false
}

// statementSpan returns how many lines the statement starting at lines[i]
// occupies. It stops once a specifier closes the statement, at a semicolon,
// or before a blank line or the start of another statement.
func statementSpan(lines []string, i int) int {
	for j := i; j < len(lines); j++ {
		code := strings.TrimSpace(stripComments(strings.Join(lines[i:j+1], "\n")))
		if complete(code) || strings.HasSuffix(code, ";") {
			return j - i + 1
		}
		if j+1 < len(lines) {
			next := strings.TrimSpace(lines[j+1])
			if next == "" || startsStatement(next) {
				return j - i + 1
			}
		}
	}
	return len(lines) - i
}

func complete(code string) bool {
	if m := sideEffectRe.FindStringSubmatch(code); m != nil && m[1] == m[3] {
		return true
	}
	m := fromRe.FindStringSubmatch(code)
	return m != nil && m[1] == m[3]
}
