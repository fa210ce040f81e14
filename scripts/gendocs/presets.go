package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/leapstack-labs/layerlint/internal/dag"
	"github.com/leapstack-labs/layerlint/pkg/bundle"
	"gopkg.in/yaml.v3"
)

// generatePresetDocs generates the built-in preset reference.
func generatePresetDocs(outDir string) error {
	log.Printf("Generating preset docs to %s", outDir)

	presets := bundle.Presets()
	g := dag.FromPresets(presets)

	order, err := g.TopologicalSort()
	if err != nil {
		return err
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Presets", "Built-in layer presets")
	w.GeneratedMarker()

	w.Header(1, "Presets")
	w.Paragraph("A layer of the form `preset: <name>` is replaced by the layers of that preset. Presets are listed with the presets they build on first.")
	w.CodeBlock("yaml", `layers:
  - preset: next/core-web-vitals
  - files: ["src/**/*.tsx"]
    rules:
      react/jsx-key: error`)

	var rows [][]string
	for _, name := range order {
		if _, ok := bundle.LookupPreset(name); !ok {
			continue
		}
		link := fmt.Sprintf("[%s](#%s)", InlineCode(name), anchor(name))
		rows = append(rows, []string{link, codeList(g.Parents(name))})
	}
	w.Table([]string{"Preset", "Extends"}, rows)

	for _, name := range order {
		p, ok := bundle.LookupPreset(name)
		if !ok {
			continue
		}
		w.Header(2, name)
		if p.Description != "" {
			w.Paragraph(p.Description)
		}
		if up := g.Upstream(name); len(up) > 0 {
			w.Paragraph(Bold("Extends") + ": " + codeList(up))
		}
		if down := g.Downstream(name); len(down) > 0 {
			w.Paragraph(Bold("Used by") + ": " + codeList(down))
		}
		data, err := yaml.Marshal(map[string]any{"layers": p.Layers})
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		w.CodeBlock("yaml", string(data))
	}

	return writePage(outDir, "index.md", w)
}

func codeList(names []string) string {
	if len(names) == 0 {
		return ""
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = InlineCode(n)
	}
	return strings.Join(out, ", ")
}
