package commands

import (
	"strconv"

	"github.com/leapstack-labs/layerlint/internal/cli/output"
	"github.com/leapstack-labs/layerlint/internal/dag"
	"github.com/leapstack-labs/layerlint/pkg/bundle"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// presetRow summarizes one preset and its place in the reference graph.
type presetRow struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Layers      int      `json:"layers" yaml:"layers"`
	Extends     []string `json:"extends,omitempty" yaml:"extends,omitempty"`
	UsedBy      []string `json:"usedBy,omitempty" yaml:"usedBy,omitempty"`
}

// NewPresetsCommand creates the presets command.
func NewPresetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "List built-in presets or show one",
		Long: `List the presets that layers can reference with "preset: <name>".

With a name, print the layers of that preset as authored. Nested preset
references are shown unexpanded.`,
		Example: `  # All presets
  layerlint presets

  # Layers of one preset
  layerlint presets next/core-web-vitals`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, p := range bundle.Presets() {
				names = append(names, p.Name)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showPreset(cmd, args[0])
			}
			return listPresets(cmd)
		},
	}
	return cmd
}

func listPresets(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer
	presets := bundle.Presets()
	g := dag.FromPresets(presets)

	rows := make([]presetRow, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, presetRow{
			Name:        p.Name,
			Description: p.Description,
			Layers:      len(p.Layers),
			Extends:     g.Parents(p.Name),
			UsedBy:      g.Children(p.Name),
		})
	}

	if handled, err := r.Data(rows); handled {
		return err
	}

	printTitle(r, "Presets ("+strconv.Itoa(len(rows))+")")
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{row.Name, strconv.Itoa(row.Layers), output.FormatList(row.Extends), row.Description})
	}
	r.Table([]string{"Name", "Layers", "Extends", "Description"}, table)
	return nil
}

func showPreset(cmd *cobra.Command, name string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	p, ok := bundle.LookupPreset(name)
	if !ok {
		return &bundle.UnknownPresetError{Name: name}
	}

	r := cmdCtx.Renderer
	if handled, err := r.Data(p); handled {
		return err
	}

	g := dag.FromPresets(bundle.Presets())
	extends := output.FormatList(g.Upstream(p.Name))
	usedBy := output.FormatList(g.Downstream(p.Name))

	body, err := yaml.Marshal(p.Layers)
	if err != nil {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, p.Name))
		r.Println("")
		if p.Description != "" {
			r.Println(p.Description)
			r.Println("")
		}
		r.Println(output.FormatKeyValue("Extends", extends, true))
		r.Println(output.FormatKeyValue("Used by", usedBy, true))
		r.Println("")
		r.Println("```yaml")
		r.Printf("%s", body)
		r.Println("```")
		return nil
	}

	styles := r.Styles()
	r.Println(styles.Header1.Render(p.Name))
	if p.Description != "" {
		r.Println(styles.Muted.Render(p.Description))
	}
	r.Println(output.FormatKeyValue("Extends", extends, false))
	r.Println(output.FormatKeyValue("Used by", usedBy, false))
	r.Println("")
	r.Printf("%s", body)
	return nil
}
