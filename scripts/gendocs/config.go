package main

import (
	"fmt"
	"log"
	"strings"

	sharedcfg "github.com/leapstack-labs/layerlint/internal/config"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Category    string // "settings" or "layer"
}

// getConfigSchema returns the configuration schema definition.
// This is based on internal/cli/config.Config and bundle.Spec.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "output", Type: "string", Default: sharedcfg.DefaultOutput, Description: "Output format: " + strings.Join(sharedcfg.ValidOutputs, ", "), Category: "settings"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Log debug output to stderr", Category: "settings"},
		{Name: "jobs", Type: "int", Default: fmt.Sprintf("%d", sharedcfg.DefaultJobs), Description: "Files composed concurrently", Category: "settings"},
		{Name: "policy", Type: "string", Default: sharedcfg.DefaultPolicy, Description: "Invalid layer handling: strict fails, skip drops the layer with a warning", Category: "settings"},
		{Name: "layers", Type: "list", Description: "Ordered configuration layers; later layers win", Category: "settings"},

		{Name: "preset", Type: "string", Description: "Replace this entry with the layers of a built-in preset; no other field may be set", Category: "layer"},
		{Name: "name", Type: "string", Description: "Label shown by layers, check and warnings", Category: "layer"},
		{Name: "files", Type: "[]string", Description: "Globs the layer applies to; empty applies to every file", Category: "layer"},
		{Name: "ignores", Type: "[]string", Description: "Globs excluded from the layer; alone, excluded from every layer", Category: "layer"},
		{Name: "plugins", Type: "[]string", Description: "Plugins brought into scope", Category: "layer"},
		{Name: "rulesFrom", Type: "[]string", Description: "Presets whose rules are merged under this layer's rules", Category: "layer"},
		{Name: "rules", Type: "map", Description: "Rule settings keyed by rule name", Category: "layer"},
		{Name: "settings", Type: "map", Description: "Shared plugin settings, deep merged", Category: "layer"},
		{Name: "languageOptions", Type: "map", Description: "Parser and language options, deep merged", Category: "layer"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "layerlint configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("layerlint reads %s from the current directory or the nearest parent. Settings can be overridden by `LAYERLINT_*` environment variables and by command-line flags.", InlineCode(sharedcfg.ConfigFileName)))

	w.Header(2, "Settings")
	writeFieldTable(w, "settings")

	w.Header(2, "Layer Fields")
	writeFieldTable(w, "layer")

	w.Header(2, "Example")
	w.CodeBlock("yaml", `policy: strict
layers:
  - preset: next/core-web-vitals
  - name: app
    files: ["src/**/*.{ts,tsx}"]
    plugins: [simple-import-sort]
    rules:
      simple-import-sort/imports: [error, {groups: [["^react"], ["^@?\\w"], ["^\\."]]}]
  - ignores: ["dist/**"]`)

	return writePage(outDir, "configuration.md", w)
}

func writeFieldTable(w *MarkdownWriter, category string) {
	var rows [][]string
	for _, f := range getConfigSchema() {
		if f.Category != category {
			continue
		}
		def := f.Default
		if def != "" {
			def = InlineCode(def)
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, def, f.Description})
	}
	w.Table([]string{"Field", "Type", "Default", "Description"}, rows)
}
