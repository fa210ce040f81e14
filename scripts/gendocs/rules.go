package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/leapstack-labs/layerlint/pkg/lint"
)

// generateRuleDocs generates the rule catalog: an index plus one page per
// registered plugin.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	plugins := lint.Plugins()

	if err := generateRulesIndex(outDir, plugins); err != nil {
		return err
	}
	for _, p := range plugins {
		if err := generatePluginPage(outDir, p); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", p.Name(), err)
		}
	}
	return nil
}

// generateRulesIndex generates the rule catalog overview page.
func generateRulesIndex(outDir string, plugins []lint.Plugin) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Rule namespaces known to layerlint")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("layerlint knows **%d plugins** and **%d rules**. A layer enables a plugin's rules by listing the plugin under `plugins` and setting rules under `rules` with the `plugin/rule` key.", len(plugins), lint.Count()))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Aliases", "Description"},
		[][]string{
			{InlineCode("off"), InlineCode("0"), "Rule disabled"},
			{InlineCode("warn"), InlineCode("1"), "Reported without failing"},
			{InlineCode("error"), InlineCode("2"), "Reported as a failure"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("A rule setting is a severity, or a list whose first element is the severity and whose remaining elements are the rule options:")
	w.CodeBlock("yaml", `layers:
  - plugins: [react-hooks]
    rules:
      react-hooks/rules-of-hooks: error
      react/jsx-key: [warn, {checkFragmentShorthand: true}]`)

	w.Header(2, "Plugins")
	var rows [][]string
	for _, p := range plugins {
		link := fmt.Sprintf("[%s](/rules/%s)", InlineCode(p.Name()), pageName(p.Name()))
		rows = append(rows, []string{link, fmt.Sprintf("%d", len(p.Rules()))})
	}
	w.Table([]string{"Plugin", "Rules"}, rows)

	return writePage(outDir, "index.md", w)
}

// generatePluginPage documents every rule of one plugin, grouped by category.
func generatePluginPage(outDir string, p lint.Plugin) error {
	w := NewMarkdownWriter()

	w.Frontmatter(p.Name(), fmt.Sprintf("Rules of the %s plugin", p.Name()))
	w.GeneratedMarker()

	w.Header(1, p.Name())

	groups := groupRulesByCategory(p.Rules())
	categories := make([]string, 0, len(groups))
	for c := range groups {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, c := range categories {
		w.Header(2, capitalizeFirst(c))
		for _, r := range groups[c] {
			writeRuleDoc(w, p, r)
		}
	}

	return writePage(outDir, pageName(p.Name())+".md", w)
}

func groupRulesByCategory(rules []lint.RuleInfo) map[string][]lint.RuleInfo {
	groups := make(map[string][]lint.RuleInfo)
	for _, r := range rules {
		c := r.Category
		if c == "" {
			c = "general"
		}
		groups[c] = append(groups[c], r)
	}
	for _, rs := range groups {
		sort.Slice(rs, func(i, j int) bool { return rs[i].Name < rs[j].Name })
	}
	return groups
}

func writeRuleDoc(w *MarkdownWriter, p lint.Plugin, r lint.RuleInfo) {
	key := p.Name() + "/" + r.Name
	w.Header(3, InlineCode(key))
	w.Paragraph(r.Description)

	var facts []string
	if r.Fixable {
		facts = append(facts, Bold("Fixable"))
	}
	if len(r.ConfigKeys) > 0 {
		keys := make([]string, len(r.ConfigKeys))
		for i, k := range r.ConfigKeys {
			keys[i] = InlineCode(k)
		}
		facts = append(facts, Bold("Options")+": "+strings.Join(keys, ", "))
	}
	if url := p.DocURL(r.Name); url != "" {
		facts = append(facts, fmt.Sprintf("[Upstream documentation](%s)", url))
	}
	if len(facts) > 0 {
		w.BulletList(facts)
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// pageName turns a plugin name such as @typescript-eslint into a file name.
func pageName(plugin string) string {
	return strings.TrimPrefix(strings.ReplaceAll(plugin, "/", "-"), "@")
}
