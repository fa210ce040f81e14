// Package importsort is the simple-import-sort plugin: the one rule namespace
// this tool executes itself, by sorting import and export headers.
package importsort

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/layerlint/pkg/compose"
	"github.com/leapstack-labs/layerlint/pkg/core"
	"github.com/leapstack-labs/layerlint/pkg/imports"
	"github.com/leapstack-labs/layerlint/pkg/lint"
)

// Plugin and rule names.
const (
	Name        = "simple-import-sort"
	RuleImports = "imports"
	RuleExports = "exports"

	// ImportsKey and ExportsKey are the namespaced rule keys.
	ImportsKey = Name + "/" + RuleImports
	ExportsKey = Name + "/" + RuleExports
)

// ErrMalformedGroups is returned when the groups option is not a list of
// string lists.
var ErrMalformedGroups = errors.New("groups must be a list of lists of strings")

// Plugin is the registered handle.
var Plugin = &lint.Descriptor{
	PluginName: Name,
	DocsURL:    "https://github.com/lydell/eslint-plugin-simple-import-sort#sort-order",
	RuleSet: []lint.RuleInfo{
		{Name: RuleImports, Description: "Sort imports into configured groups", Category: "imports", ConfigKeys: []string{"groups"}, Fixable: true},
		{Name: RuleExports, Description: "Sort re-exports", Category: "imports", Fixable: true},
	},
}

func init() {
	lint.RegisterPlugin(Plugin)
}

// GroupsFromSetting decodes the groups payload of an imports rule setting.
// A setting without a groups option uses imports.DefaultGroups.
func GroupsFromSetting(rs core.RuleSetting) (imports.Groups, error) {
	spec, ok := lint.GetStringMatrixOption(lint.Options(rs), "groups")
	if !ok {
		return nil, fmt.Errorf("%s: %w", ImportsKey, ErrMalformedGroups)
	}
	if spec == nil {
		return imports.DefaultGroups(), nil
	}
	groups, err := imports.NewGroups(spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ImportsKey, err)
	}
	return groups, nil
}

// GroupsFor returns the groups of a file's effective configuration.
func GroupsFor(cfg *compose.Config) (imports.Groups, error) {
	rs, ok := cfg.Rule(ImportsKey)
	if !ok {
		return imports.DefaultGroups(), nil
	}
	return GroupsFromSetting(rs)
}

// Enabled reports whether either sorting rule is on for the configuration.
func Enabled(cfg *compose.Config) bool {
	return len(Kinds(cfg)) > 0
}

// Kinds returns the statement kinds whose rule is on: imports for
// simple-import-sort/imports, exports for simple-import-sort/exports.
func Kinds(cfg *compose.Config) []imports.Kind {
	var kinds []imports.Kind
	if cfg.Enabled(ImportsKey) {
		kinds = append(kinds, imports.KindImport)
	}
	if cfg.Enabled(ExportsKey) {
		kinds = append(kinds, imports.KindExport)
	}
	return kinds
}

// Sort sorts the header of source with the groups of cfg. Only statements of
// a kind whose rule is on are reordered.
func Sort(source string, cfg *compose.Config) (string, []error, error) {
	groups, err := GroupsFor(cfg)
	if err != nil {
		return "", nil, err
	}
	out, advisories := imports.SortKinds(source, groups, Kinds(cfg)...)
	return out, advisories, nil
}
