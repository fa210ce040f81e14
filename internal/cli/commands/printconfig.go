package commands

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/layerlint/internal/cli/config"
	"github.com/leapstack-labs/layerlint/internal/cli/output"
	"github.com/leapstack-labs/layerlint/pkg/compose"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// PrintConfigOptions holds options for the print-config command.
type PrintConfigOptions struct {
	Watch bool
	Get   string
	Flat  bool
}

// NewPrintConfigCommand creates the print-config command.
func NewPrintConfigCommand() *cobra.Command {
	opts := &PrintConfigOptions{}
	cmd := &cobra.Command{
		Use:   "print-config <file>...",
		Short: "Print the effective configuration for files",
		Long: `Compose every layer that applies to each file and print the result:
the plugins, rules, settings and language options the file is linted with.

Paths are matched relative to the project root (the directory holding
layerlint.yaml).`,
		Example: `  # Effective config for one file
  layerlint print-config src/app/page.tsx

  # Several files as JSON
  layerlint print-config -o json src/a.ts src/b.tsx

  # One value by dotted path
  layerlint print-config --get settings.react.version src/app/page.tsx

  # Every rule, setting and option as a dotted key
  layerlint print-config --flat src/app/page.tsx

  # Reprint whenever layerlint.yaml changes
  layerlint print-config --watch src/app/page.tsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Get != "" && opts.Flat {
				return fmt.Errorf("--get and --flat are mutually exclusive")
			}
			if err := printConfig(cmd, args, opts); err != nil {
				return err
			}
			if !opts.Watch {
				return nil
			}
			return watchConfig(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Reprint when the config file changes")
	cmd.Flags().StringVar(&opts.Get, "get", "", "Print one value by dotted path (plugins, rules.<key>, settings.<path>, languageOptions.<path>)")
	cmd.Flags().BoolVar(&opts.Flat, "flat", false, "Print every rule, setting and option as a dotted key")

	return cmd
}

func printConfig(cmd *cobra.Command, args []string, opts *PrintConfigOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	stack, err := cmdCtx.Stack()
	if err != nil {
		return err
	}

	paths := cmdCtx.RelPaths(args)
	configs, err := stack.ComposeAll(contextOf(cmd), paths)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	for _, p := range paths {
		for _, m := range configs[p].MissingPlugins() {
			r.Warn(fmt.Sprintf("%s: rules of %q are enabled but no layer declares the plugin", p, m))
		}
	}

	switch {
	case opts.Get != "":
		return printValues(r, paths, configs, opts.Get)
	case opts.Flat:
		return printFlat(r, paths, configs)
	}

	var data any = configs
	if len(paths) == 1 {
		data = configs[paths[0]]
	}
	if handled, err := r.Data(data); handled {
		return err
	}

	for i, p := range paths {
		if i > 0 {
			r.Println("")
		}
		if err := printConfigHuman(r, p, configs[p]); err != nil {
			return err
		}
	}
	return nil
}

func printConfigHuman(r *output.Renderer, path string, cfg *compose.Config) error {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config for %s: %w", path, err)
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(2, path))
		r.Println("")
		r.Println("```yaml")
		r.Printf("%s", body)
		r.Println("```")
		return nil
	}

	styles := r.Styles()
	r.Println(styles.Header1.Render(path))
	r.Printf("%s", body)
	return nil
}

// printValues prints the value at path for each file.
func printValues(r *output.Renderer, paths []string, configs map[string]*compose.Config, path string) error {
	values := make(map[string]any, len(paths))
	for _, p := range paths {
		v, ok := configs[p].Get(path)
		if !ok {
			return fmt.Errorf("%s: %q is not set", p, path)
		}
		values[p] = v
	}

	var data any = values
	if len(paths) == 1 {
		data = values[paths[0]]
	}
	if handled, err := r.Data(data); handled {
		return err
	}

	for _, p := range paths {
		body, err := yaml.Marshal(values[p])
		if err != nil {
			return fmt.Errorf("encode %s for %s: %w", path, p, err)
		}
		if len(paths) > 1 {
			r.Printf("%s: ", p)
		}
		r.Printf("%s", body)
	}
	return nil
}

// printFlat prints each file's configuration as sorted "key = value" lines.
func printFlat(r *output.Renderer, paths []string, configs map[string]*compose.Config) error {
	flat := make(map[string]map[string]any, len(paths))
	for _, p := range paths {
		flat[p] = configs[p].Flatten()
	}

	var data any = flat
	if len(paths) == 1 {
		data = flat[paths[0]]
	}
	if handled, err := r.Data(data); handled {
		return err
	}

	for i, p := range paths {
		if i > 0 {
			r.Println("")
		}
		if len(paths) > 1 {
			r.Println(p)
		}
		keys := make([]string, 0, len(flat[p]))
		for k := range flat[p] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			r.Printf("%s = %v\n", k, flat[p][k])
		}
	}
	return nil
}

func watchConfig(cmd *cobra.Command, args []string, opts *PrintConfigOptions) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	if cfg.ConfigFile == "" {
		return fmt.Errorf("--watch needs a config file; none found")
	}

	logger := config.GetLogger(contextOf(cmd))
	path := cfg.ConfigFile
	return watchFile(contextOf(cmd), path, logger, func() error {
		if _, err := config.LoadConfig(path, flagsOf(cmd)); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		return printConfig(cmd, args, opts)
	})
}
