package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/leapstack-labs/layerlint/internal/cli/output"
	"github.com/leapstack-labs/layerlint/pkg/compose"
	"github.com/spf13/cobra"
)

// layerRow describes one resolved layer, optionally against a file.
type layerRow struct {
	Index   int      `json:"index" yaml:"index"`
	Name    string   `json:"name" yaml:"name"`
	Files   []string `json:"files,omitempty" yaml:"files,omitempty"`
	Ignores []string `json:"ignores,omitempty" yaml:"ignores,omitempty"`
	Plugins []string `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	Rules   int      `json:"rules" yaml:"rules"`
	Applied *bool    `json:"applied,omitempty" yaml:"applied,omitempty"`
	Reason  string   `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// NewLayersCommand creates the layers command.
func NewLayersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layers [file]",
		Short: "List the resolved layer stack",
		Long: `List the layers of the configuration in order, after preset references
are expanded.

With a file, also show whether each layer applies to it and why: "all
files" for layers without file globs, "files" for a glob match, "ignored" when an
ignore pattern excludes it and "no match" otherwise.`,
		Example: `  # Layer stack
  layerlint layers

  # Which layers apply to a file
  layerlint layers src/app/page.tsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return runLayers(cmd, file)
		},
	}
	return cmd
}

func runLayers(cmd *cobra.Command, file string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	layers, err := cmdCtx.Layers()
	if err != nil {
		return err
	}

	rows := make([]layerRow, len(layers))
	for i, l := range layers {
		rows[i] = newLayerRow(i, l)
	}

	path := ""
	if file != "" {
		stack, err := cmdCtx.stackFor(layers)
		if err != nil {
			return err
		}
		path = cmdCtx.Cfg.RelPath(file)
		for _, m := range stack.Explain(path) {
			applied := m.Applied
			rows[m.Index].Applied = &applied
			rows[m.Index].Reason = m.Reason
		}
	}

	r := cmdCtx.Renderer
	if handled, err := r.Data(rows); handled {
		return err
	}

	title := fmt.Sprintf("Layers (%d)", len(rows))
	if path != "" {
		title = fmt.Sprintf("Layers for %s", path)
	}
	printTitle(r, title)

	styles := r.Styles()
	headers := []string{"#", "Name", "Files", "Ignores", "Plugins", "Rules"}
	if path != "" {
		headers = append(headers, "Applies")
	}
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := []string{
			strconv.Itoa(row.Index),
			row.Name,
			output.FormatList(row.Files),
			output.FormatList(row.Ignores),
			output.FormatList(row.Plugins),
			strconv.Itoa(row.Rules),
		}
		if path != "" {
			cells = append(cells, applyCell(styles, row))
		}
		table = append(table, cells)
	}
	r.Table(headers, table)
	return nil
}

func newLayerRow(i int, l compose.Layer) layerRow {
	row := layerRow{
		Index:   i,
		Name:    l.Name,
		Files:   l.Files,
		Ignores: l.Ignores,
		Rules:   len(l.Rules),
	}
	if row.Name == "" {
		row.Name = "(unnamed)"
	}
	for name := range l.Plugins {
		row.Plugins = append(row.Plugins, name)
	}
	sort.Strings(row.Plugins)
	return row
}

func applyCell(styles output.Styles, row layerRow) string {
	switch {
	case row.Applied == nil:
		// Dropped under the skip policy.
		return styles.Muted.Render("skipped")
	case *row.Applied:
		return styles.Success.Render("yes (" + row.Reason + ")")
	default:
		return styles.Muted.Render("no (" + row.Reason + ")")
	}
}
