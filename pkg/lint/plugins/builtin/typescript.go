package builtin

import "github.com/leapstack-labs/layerlint/pkg/lint"

// TypeScript describes typescript-eslint.
var TypeScript = &lint.Descriptor{
	PluginName: "@typescript-eslint",
	DocsURL:    "https://typescript-eslint.io/rules/%s",
	RuleSet: []lint.RuleInfo{
		rule("types", "ban-ts-comment", "Disallow @ts-<directive> comments", "ts-expect-error", "ts-ignore", "minimumDescriptionLength"),
		fixable(rule("types", "no-array-constructor", "Disallow generic Array constructors")),
		rule("types", "no-duplicate-enum-values", "Disallow duplicate enum member values"),
		rule("types", "no-empty-object-type", "Disallow the {} type", "allowInterfaces", "allowObjectTypes"),
		rule("types", "no-explicit-any", "Disallow the any type", "fixToUnknown", "ignoreRestArgs"),
		fixable(rule("types", "no-extra-non-null-assertion", "Disallow extra non-null assertions")),
		rule("types", "no-misused-new", "Enforce valid definition of new and constructor"),
		rule("types", "no-namespace", "Disallow TypeScript namespaces", "allowDeclarations", "allowDefinitionFiles"),
		rule("types", "no-non-null-asserted-optional-chain", "Disallow non-null assertions after optional chains"),
		rule("types", "no-require-imports", "Disallow require() imports", "allow"),
		rule("types", "no-this-alias", "Disallow aliasing this", "allowDestructuring", "allowedNames"),
		fixable(rule("types", "no-unnecessary-type-constraint", "Disallow constraints to any or unknown")),
		rule("types", "no-unsafe-declaration-merging", "Disallow unsafe declaration merging"),
		rule("types", "no-unsafe-function-type", "Disallow the Function type"),
		rule("types", "no-unused-expressions", "Disallow unused expressions", "allowShortCircuit", "allowTernary"),
		rule("types", "no-unused-vars", "Disallow unused variables", "vars", "args", "ignoreRestSiblings", "argsIgnorePattern"),
		fixable(rule("types", "no-wrapper-object-types", "Disallow wrapper object types")),
		fixable(rule("types", "prefer-as-const", "Enforce as const over literal types")),
		fixable(rule("types", "prefer-namespace-keyword", "Require namespace over module for custom modules")),
		rule("types", "triple-slash-reference", "Disallow certain triple slash directives", "lib", "path", "types"),
	},
}

// Query describes @tanstack/eslint-plugin-query.
var Query = &lint.Descriptor{
	PluginName: "@tanstack/query",
	DocsURL:    "https://tanstack.com/query/latest/docs/eslint/%s",
	RuleSet: []lint.RuleInfo{
		fixable(rule("query", "exhaustive-deps", "Require all query function dependencies in the query key", "allowlist")),
		rule("query", "no-rest-destructuring", "Disallow rest destructuring in queries"),
		fixable(rule("query", "stable-query-client", "Require a stable QueryClient")),
		rule("query", "no-unstable-deps", "Disallow putting query results in dependency arrays"),
		fixable(rule("query", "infinite-query-property-order", "Ensure infinite query property order")),
		rule("query", "no-void-query-fn", "Disallow query functions that return nothing"),
		fixable(rule("query", "mutation-property-order", "Ensure mutation property order")),
	},
}

// Prettier describes eslint-plugin-prettier.
var Prettier = &lint.Descriptor{
	PluginName: "prettier",
	DocsURL:    "https://github.com/prettier/eslint-plugin-prettier",
	RuleSet: []lint.RuleInfo{
		fixable(rule("formatting", "prettier", "Report differences from Prettier formatting", "endOfLine", "usePrettierrc", "fileInfoOptions")),
	},
}
