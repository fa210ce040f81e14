package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/leapstack-labs/layerlint/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const envPrefix = "LAYERLINT_"

// generateCLIDocs writes the CLI reference: one index page plus a page per
// documented command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	root := cli.NewRootCmd()
	if err := writePage(outDir, "index.md", cliIndexPage(root)); err != nil {
		return err
	}
	for _, cmd := range documentedCommands(root) {
		if err := writePage(outDir, cmd.Name()+".md", commandPage(cmd)); err != nil {
			return fmt.Errorf("command %s: %w", cmd.Name(), err)
		}
	}
	return nil
}

// documentedCommands returns the visible subcommands of root in
// registration order.
func documentedCommands(root *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || strings.HasPrefix(cmd.Name(), "__") {
			continue
		}
		out = append(out, cmd)
	}
	return out
}

// envVar returns the environment override for a persistent flag, matching
// the key transform of the config loader. The config flag has none.
func envVar(f *pflag.Flag) string {
	if f.Name == "config" {
		return ""
	}
	return envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
}

func cliIndexPage(root *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for layerlint")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph("layerlint composes layered lint configuration into the effective configuration for each file, explains which layers apply, and sorts import statements into groups.")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/layerlint/cmd/layerlint@latest")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documentedCommands(root) {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			InlineCode(usageLine(cmd)),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Usage", "Description"}, rows)

	w.Header(2, "Global Options")
	w.Paragraph("Every command accepts these flags. Settings are read from defaults, then " +
		InlineCode("layerlint.yaml") + ", then " + InlineCode(envPrefix+"*") +
		" variables, then flags; later sources win.")
	var globals [][]string
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		env := envVar(f)
		if env != "" {
			env = InlineCode(env)
		}
		globals = append(globals, []string{flagName(f), defaultValue(f), env, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Flag", "Default", "Environment", "Description"}, globals)

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Success"},
		{InlineCode("1"), "Invalid configuration, unsorted files under " + InlineCode("--check") + ", or a failed " + InlineCode("check")},
	})
	return w
}

func commandPage(cmd *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	w.Paragraph(desc)
	w.CodeBlock("bash", usageLine(cmd))

	if len(cmd.Aliases) > 0 {
		aliases := make([]string, len(cmd.Aliases))
		for i, a := range cmd.Aliases {
			aliases[i] = InlineCode(a)
		}
		w.Paragraph(Bold("Aliases") + ": " + strings.Join(aliases, ", "))
	}

	if cmd.HasAvailableSubCommands() {
		w.Header(2, "Subcommands")
		var rows [][]string
		for _, sub := range cmd.Commands() {
			if !sub.IsAvailableCommand() {
				continue
			}
			rows = append(rows, []string{InlineCode(sub.Name()), cleanDescription(sub.Short)})
		}
		w.Table([]string{"Subcommand", "Description"}, rows)
	}

	if cmd.HasAvailableLocalFlags() {
		w.Header(2, "Options")
		var rows [][]string
		cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
			if f.Hidden {
				return
			}
			rows = append(rows, []string{flagName(f), defaultValue(f), cleanDescription(f.Usage)})
		})
		w.Table([]string{"Flag", "Default", "Description"}, rows)
	}
	w.Paragraph("Global options are listed in the [CLI reference](/cli/#global-options).")

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}
	return w
}

func usageLine(cmd *cobra.Command) string {
	if cmd.HasAvailableSubCommands() {
		return cmd.CommandPath() + " <subcommand>"
	}
	return cmd.UseLine()
}

func flagName(f *pflag.Flag) string {
	name := InlineCode("--" + f.Name)
	if f.Shorthand != "" {
		name = InlineCode("-"+f.Shorthand) + ", " + name
	}
	return name
}

// defaultValue renders a flag default; zero values render empty.
func defaultValue(f *pflag.Flag) string {
	switch f.DefValue {
	case "", "0", "false", "[]":
		return ""
	}
	return InlineCode(f.DefValue)
}

// dedent strips the indentation shared by every non-blank line.
func dedent(text string) string {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	prefix, seen := "", false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !seen || len(indent) < len(prefix) {
			prefix, seen = indent, true
		}
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}
