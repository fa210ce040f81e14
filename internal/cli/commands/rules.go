package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/layerlint/internal/cli/output"
	"github.com/leapstack-labs/layerlint/pkg/compose"
	"github.com/leapstack-labs/layerlint/pkg/core"
	"github.com/leapstack-labs/layerlint/pkg/lint"
	"github.com/spf13/cobra"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Plugin string // Filter by plugin namespace
	All    bool   // Include rules turned off
}

// ruleRow is one rule in effective or catalog listings.
type ruleRow struct {
	Key         string   `json:"key" yaml:"key"`
	Severity    string   `json:"severity,omitempty" yaml:"severity,omitempty"`
	Options     []any    `json:"options,omitempty" yaml:"options,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	ConfigKeys  []string `json:"configKeys,omitempty" yaml:"configKeys,omitempty"`
	Fixable     bool     `json:"fixable,omitempty" yaml:"fixable,omitempty"`
	DocURL      string   `json:"docUrl,omitempty" yaml:"docUrl,omitempty"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [file]",
		Short: "List rules known to plugins or in effect for a file",
		Long: `Without a file, list every rule of the registered plugins.

With a file, list the rules in effect for it after composing all applicable
layers, with severity and options. Rules turned off are hidden unless --all
is given.

Output adapts to environment:
  - Terminal: Styled table with colored severities
  - Piped/Scripted: Markdown table
  - JSON/YAML: Machine-readable format`,
		Example: `  # Rule catalog
  layerlint rules

  # Catalog of one plugin
  layerlint rules --plugin react-hooks

  # Rules in effect for a file
  layerlint rules src/app/page.tsx

  # Include rules turned off
  layerlint rules --all src/app/page.tsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return effectiveRules(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Plugin, "plugin", "p", "", "Filter by plugin namespace")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Include rules turned off")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	if opts.Plugin != "" {
		if _, ok := lint.LookupPlugin(opts.Plugin); !ok {
			return &lint.UnknownPluginError{Name: opts.Plugin}
		}
	}

	var rows []ruleRow
	for _, p := range lint.Plugins() {
		if opts.Plugin != "" && p.Name() != opts.Plugin {
			continue
		}
		for _, info := range p.Rules() {
			key := p.Name() + "/" + info.Name
			rows = append(rows, ruleRow{
				Key:         key,
				Description: info.Description,
				Category:    info.Category,
				ConfigKeys:  info.ConfigKeys,
				Fixable:     info.Fixable,
				DocURL:      lint.BuildDocURL(key),
			})
		}
	}

	if handled, err := r.Data(rows); handled {
		return err
	}

	title := fmt.Sprintf("Rules (%d)", len(rows))
	printTitle(r, title)

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		fix := ""
		if row.Fixable {
			fix = "yes"
		}
		table = append(table, []string{row.Key, row.Category, row.Description, fix})
	}
	r.Table([]string{"Rule", "Category", "Description", "Fixable"}, table)
	return nil
}

func effectiveRules(cmd *cobra.Command, file string, opts *RulesOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	stack, err := cmdCtx.Stack()
	if err != nil {
		return err
	}

	path := cmdCtx.Cfg.RelPath(file)
	cfg := stack.Compose(path)
	rows := effectiveRows(cfg, opts)

	r := cmdCtx.Renderer
	if handled, err := r.Data(rows); handled {
		return err
	}

	printTitle(r, fmt.Sprintf("%s (%d rules)", path, len(rows)))
	if len(rows) == 0 {
		r.Println("No rules in effect.")
		return nil
	}

	styles := r.Styles()
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		sev, _ := core.ParseSeverity(row.Severity)
		opt := "-"
		if len(row.Options) > 0 {
			opt = core.RuleSetting{Severity: sev, Options: row.Options}.String()
			opt = strings.TrimPrefix(opt, sev.String()+" ")
		}
		table = append(table, []string{
			row.Key,
			styles.Severity(sev).Render(row.Severity),
			opt,
			row.DocURL,
		})
	}
	r.Table([]string{"Rule", "Severity", "Options", "Docs"}, table)

	if missing := cfg.MissingPlugins(); len(missing) > 0 {
		r.Warn("enabled rules without a declared plugin: " + strings.Join(missing, ", "))
	}
	return nil
}

func effectiveRows(cfg *compose.Config, opts *RulesOptions) []ruleRow {
	rows := []ruleRow{}
	for _, key := range cfg.RuleKeys() {
		rs := cfg.Rules[key]
		if !opts.All && !rs.Severity.Enabled() {
			continue
		}
		ns, _ := core.SplitRuleKey(key)
		if opts.Plugin != "" && ns != opts.Plugin {
			continue
		}
		row := ruleRow{
			Key:      key,
			Severity: rs.Severity.String(),
			Options:  rs.Options,
			DocURL:   lint.BuildDocURL(key),
		}
		if info, ok := lint.LookupRule(key); ok {
			row.Description = info.Description
			row.Category = info.Category
			row.Fixable = info.Fixable
		}
		rows = append(rows, row)
	}
	return rows
}

func printTitle(r *output.Renderer, title string) {
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, title))
		r.Println("")
		return
	}
	r.Println(r.Styles().Header1.Render(title))
	r.Println("")
}
