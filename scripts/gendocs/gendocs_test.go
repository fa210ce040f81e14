package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarkdownWriter_Table(t *testing.T) {
	w := NewMarkdownWriter()
	w.Table([]string{"Rule", "Options"}, [][]string{{"a|b", "x"}})

	want := "| Rule | Options |\n| --- | --- |\n| a\\|b | x |\n\n"
	if got := string(w.Bytes()); got != want {
		t.Errorf("Table() =\n%q\nwant\n%q", got, want)
	}
}

func TestAnchorAndPageName(t *testing.T) {
	if got := anchor("next/core-web-vitals"); got != "next-core-web-vitals" {
		t.Errorf("anchor() = %q", got)
	}
	if got := pageName("@next/next"); got != "next-next" {
		t.Errorf("pageName() = %q", got)
	}
}

func TestGenerators(t *testing.T) {
	for _, g := range generators {
		t.Run(g.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := g.run(dir); err != nil {
				t.Fatalf("generate %s: %v", g.name, err)
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) == 0 {
				t.Fatal("no pages generated")
			}
			data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), generatedHeader) {
				t.Errorf("%s lacks the generated marker", entries[0].Name())
			}
		})
	}
}

func TestPresetDocs_ListsBuiltins(t *testing.T) {
	dir := t.TempDir()
	if err := generatePresetDocs(dir); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"## next/core-web-vitals", "**Extends**: `next/recommended`"} {
		if !strings.Contains(out, want) {
			t.Errorf("preset docs missing %q", want)
		}
	}
}

func TestDedent(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"shared indent", "  # a\n  layerlint x\n", "# a\nlayerlint x"},
		{"nested", "  a\n    b\n\n  c", "a\n  b\n\nc"},
		{"flush", "a\n  b", "a\n  b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedent(tt.in); got != tt.want {
				t.Errorf("dedent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCLIDocs_GlobalOptionsListEnvironment(t *testing.T) {
	dir := t.TempDir()
	if err := generateCLIDocs(dir); err != nil {
		t.Fatal(err)
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"`LAYERLINT_JOBS`", "`LAYERLINT_POLICY`", "[`sort-imports`](/cli/sort-imports)"} {
		if !strings.Contains(string(index), want) {
			t.Errorf("index missing %q", want)
		}
	}
	if strings.Contains(string(index), "LAYERLINT_CONFIG") {
		t.Error("config flag has no environment override")
	}

	page, err := os.ReadFile(filepath.Join(dir, "sort-imports.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "`--write`") {
		t.Error("sort-imports page lacks its --write option")
	}
}
