package commands

import (
	"errors"
	"fmt"
	"sort"

	"github.com/leapstack-labs/layerlint/internal/cli/output"
	"github.com/leapstack-labs/layerlint/internal/dag"
	"github.com/leapstack-labs/layerlint/pkg/bundle"
	"github.com/leapstack-labs/layerlint/pkg/compose"
	"github.com/leapstack-labs/layerlint/pkg/core"
	"github.com/leapstack-labs/layerlint/pkg/lint"
	"github.com/leapstack-labs/layerlint/pkg/lint/plugins/importsort"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned when check finds at least one error.
var ErrCheckFailed = errors.New("configuration check failed")

// Problem levels reported by check.
const (
	levelError   = "error"
	levelWarning = "warning"
)

// problem is one finding of the check command.
type problem struct {
	Level   string `json:"level" yaml:"level"`
	Message string `json:"message" yaml:"message"`
}

// checkReport is the machine-readable result of check.
type checkReport struct {
	OK       bool      `json:"ok" yaml:"ok"`
	Layers   int       `json:"layers" yaml:"layers"`
	Problems []problem `json:"problems" yaml:"problems"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]...",
		Short: "Validate the layer configuration",
		Long: `Validate every layer of the configuration and report all problems at
once instead of stopping at the first:

  - registered presets that reference unknown presets or form a cycle
  - preset references that are unknown, cyclic or carry extra fields
  - plugins that are not registered
  - file and ignore globs that do not compile
  - rule settings with an unknown severity or shape
  - simple-import-sort group patterns that are not valid expressions
  - enabled rules whose plugin no layer declares
  - rules a registered plugin does not define (warning)

Checks always run strictly, whatever the configured policy. With files,
also report rules enabled for each file whose plugin is not in scope.`,
		Example: `  # Validate the configuration
  layerlint check

  # Also check what applies to specific files
  layerlint check src/app/page.tsx src/lib/api.ts`,
		RunE: runCheck,
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	report := checkReport{Problems: []problem{}}
	add := func(level string, err error) {
		report.Problems = append(report.Problems, problem{Level: level, Message: err.Error()})
	}

	for _, e := range checkPresets() {
		add(levelError, e)
	}

	layers, err := bundle.Resolve(cmdCtx.Cfg.Layers)
	if err != nil {
		for _, e := range unjoin(err) {
			add(levelError, e)
		}
		return finishCheck(cmdCtx.Renderer, report)
	}
	report.Layers = len(layers)

	stack, err := compose.NewStack(layers, compose.Options{Logger: cmdCtx.Logger})
	for _, e := range unjoin(err) {
		add(levelError, e)
	}
	for _, e := range checkGroups(layers) {
		add(levelError, e)
	}
	for _, e := range checkPlugins(layers) {
		add(levelError, e)
	}
	for _, e := range checkRuleNames(layers) {
		add(levelWarning, e)
	}

	if stack != nil && len(args) > 0 {
		paths := cmdCtx.RelPaths(args)
		configs, err := stack.ComposeAll(contextOf(cmd), paths)
		if err != nil {
			return err
		}
		for _, p := range paths {
			for _, ns := range configs[p].MissingPlugins() {
				add(levelError, fmt.Errorf("%s: rules of %q are enabled but the plugin is not in scope", p, ns))
			}
		}
	}

	return finishCheck(cmdCtx.Renderer, report)
}

// checkPresets validates the reference graph of the registered presets.
func checkPresets() []error {
	g := dag.FromPresets(bundle.Presets())
	var errs []error
	if hasCycle, path := g.HasCycle(); hasCycle {
		errs = append(errs, fmt.Errorf("presets: %w: %v", bundle.ErrPresetCycle, path))
	}
	for _, name := range g.Missing() {
		errs = append(errs, fmt.Errorf("presets: %q is referenced by %v: %w", name, g.Children(name), bundle.ErrUnknownPreset))
	}
	return errs
}

// checkGroups validates the simple-import-sort groups of every layer.
func checkGroups(layers []compose.Layer) []error {
	var errs []error
	for i, l := range layers {
		raw, ok := l.Rules[importsort.ImportsKey]
		if !ok {
			continue
		}
		rs, err := core.ParseRuleSetting(raw)
		if err != nil {
			// Reported by NewStack.
			continue
		}
		if _, err := importsort.GroupsFromSetting(rs); err != nil {
			errs = append(errs, fmt.Errorf("layer %d (%s): %w", i, layerName(l), err))
		}
	}
	return errs
}

// checkPlugins reports enabled rule namespaces that no layer declares.
func checkPlugins(layers []compose.Layer) []error {
	declared := make(map[string]bool)
	for _, l := range layers {
		for name := range l.Plugins {
			declared[name] = true
		}
	}

	var errs []error
	for i, l := range layers {
		seen := make(map[string]bool)
		for _, key := range sortedRuleKeys(l) {
			ns, _ := core.SplitRuleKey(key)
			if ns == "" || declared[ns] || seen[ns] {
				continue
			}
			rs, err := core.ParseRuleSetting(l.Rules[key])
			if err != nil || !rs.Severity.Enabled() {
				continue
			}
			seen[ns] = true
			errs = append(errs, fmt.Errorf("layer %d (%s): rules of %q are enabled but no layer declares the plugin", i, layerName(l), ns))
		}
	}
	return errs
}

// checkRuleNames reports rule keys a registered plugin does not define.
func checkRuleNames(layers []compose.Layer) []error {
	var errs []error
	for i, l := range layers {
		for _, key := range sortedRuleKeys(l) {
			ns, _ := core.SplitRuleKey(key)
			if ns == "" {
				continue
			}
			if _, ok := lint.LookupPlugin(ns); !ok {
				continue
			}
			if _, ok := lint.LookupRule(key); !ok {
				errs = append(errs, fmt.Errorf("layer %d (%s): plugin %q has no rule %q", i, layerName(l), ns, key))
			}
		}
	}
	return errs
}

func finishCheck(r *output.Renderer, report checkReport) error {
	errCount := 0
	for _, p := range report.Problems {
		if p.Level == levelError {
			errCount++
		}
	}
	report.OK = errCount == 0

	handled, err := r.Data(report)
	if err != nil {
		return err
	}
	if !handled {
		styles := r.Styles()
		for _, p := range report.Problems {
			style := styles.Warning
			if p.Level == levelError {
				style = styles.Error
			}
			r.Println(style.Render(p.Level+":") + " " + p.Message)
		}
		if report.OK {
			r.Println(styles.Success.Render(fmt.Sprintf("%d layers OK", report.Layers)))
		}
	}

	if !report.OK {
		return fmt.Errorf("%d error(s): %w", errCount, ErrCheckFailed)
	}
	return nil
}

// unjoin splits an errors.Join result into its parts.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

func layerName(l compose.Layer) string {
	if l.Name == "" {
		return "unnamed"
	}
	return l.Name
}

func sortedRuleKeys(l compose.Layer) []string {
	keys := make([]string, 0, len(l.Rules))
	for k := range l.Rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
