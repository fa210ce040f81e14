// Package lint holds the plugin registry and rule metadata shared by the
// composer, the presets and the CLI.
//
// # Plugin Registration
//
// Plugins register themselves via init() when their packages are imported:
//
//	import _ "github.com/leapstack-labs/layerlint/pkg/lint/plugins"
//
// Built-in plugins:
//   - simple-import-sort: import and export ordering, run by this tool
//   - react, react-hooks, @next/next, @typescript-eslint, @tanstack/query,
//     prettier: rule namespaces whose checks run in the external linter;
//     registered so layers can enable them and tooling can describe them
//
// # Using the Registry
//
//	p, ok := lint.LookupPlugin("react-hooks")
//	handles, err := lint.ResolvePlugins([]string{"react", "prettier"})
//	info, ok := lint.LookupRule("react-hooks/rules-of-hooks")
//	url := lint.BuildDocURL("no-console")
//
// # Rule Options
//
// Helpers read typed values out of a rule setting's object payload:
//
//	opts := lint.Options(setting)
//	exts := lint.GetStringSliceOption(opts, "extensions", []string{".jsx"})
//	groups, ok := lint.GetStringMatrixOption(opts, "groups")
package lint
