// Package builtin registers metadata for the rule namespaces whose checks
// run in the external linter: react, react-hooks, @next/next,
// @typescript-eslint, @tanstack/query and prettier.
package builtin
