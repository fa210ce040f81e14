package builtin

import "github.com/leapstack-labs/layerlint/pkg/lint"

// React describes eslint-plugin-react.
var React = &lint.Descriptor{
	PluginName: "react",
	DocsURL:    "https://github.com/jsx-eslint/eslint-plugin-react/blob/master/docs/rules/%s.md",
	RuleSet: []lint.RuleInfo{
		rule("components", "display-name", "Require a displayName on components", "ignoreTranspilerName", "checkContextObjects"),
		rule("components", "function-component-definition", "Enforce a function kind for function components", "namedComponents", "unnamedComponents"),
		rule("components", "no-array-index-key", "Disallow array indexes as keys"),
		rule("components", "no-danger-with-children", "Disallow children together with dangerouslySetInnerHTML"),
		rule("components", "no-deprecated", "Disallow deprecated React APIs"),
		rule("components", "no-direct-mutation-state", "Disallow direct mutation of this.state"),
		rule("components", "no-find-dom-node", "Disallow findDOMNode"),
		rule("components", "no-is-mounted", "Disallow isMounted"),
		rule("components", "no-render-return-value", "Disallow using the return value of ReactDOM.render"),
		rule("components", "no-string-refs", "Disallow string refs", "noTemplateLiterals"),
		rule("components", "no-unescaped-entities", "Disallow unescaped HTML entities in JSX text", "forbid"),
		rule("components", "no-unknown-property", "Disallow unknown DOM properties", "ignore", "requireDataLowercase"),
		rule("components", "no-unsafe", "Disallow UNSAFE_ lifecycle methods", "checkAliases"),
		rule("components", "prop-types", "Require prop-types declarations", "ignore", "customValidators", "skipUndeclared"),
		rule("components", "require-default-props", "Require defaultProps for optional props", "forbidDefaultForRequired", "functions"),
		rule("components", "require-render-return", "Require render methods to return a value"),
		rule("components", "state-in-constructor", "Enforce where component state is initialized"),
		fixable(rule("jsx", "jsx-curly-newline", "Enforce consistent linebreaks in JSX curly braces")),
		fixable(rule("jsx", "jsx-filename-extension", "Restrict file extensions that may contain JSX", "allow", "extensions")),
		fixable(rule("jsx", "jsx-indent", "Enforce JSX indentation", "checkAttributes", "indentLogicalExpressions")),
		fixable(rule("jsx", "jsx-key", "Require key props in iterators", "checkFragmentShorthand", "checkKeyMustBeforeSpread")),
		rule("jsx", "jsx-no-comment-textnodes", "Disallow comments inserted as text nodes"),
		rule("jsx", "jsx-no-duplicate-props", "Disallow duplicate props", "ignoreCase"),
		fixable(rule("jsx", "jsx-no-target-blank", "Disallow target=\"_blank\" without rel=\"noreferrer\"", "allowReferrer", "enforceDynamicLinks")),
		rule("jsx", "jsx-no-undef", "Disallow undeclared variables in JSX", "allowGlobals"),
		fixable(rule("jsx", "jsx-one-expression-per-line", "Require one JSX expression per line", "allow")),
		rule("jsx", "jsx-props-no-spreading", "Disallow JSX prop spreading", "html", "custom", "exceptions"),
		rule("jsx", "jsx-uses-react", "Mark React as used when JSX is present"),
		rule("jsx", "jsx-uses-vars", "Mark variables used in JSX as used"),
		fixable(rule("jsx", "jsx-wrap-multilines", "Require parentheses around multiline JSX")),
		rule("jsx", "no-children-prop", "Disallow passing children as a prop"),
		rule("jsx", "react-in-jsx-scope", "Require React in scope when using JSX"),
		fixable(rule("jsx", "self-closing-comp", "Require self-closing tags for elements without children", "component", "html")),
	},
}

// ReactHooks describes eslint-plugin-react-hooks.
var ReactHooks = &lint.Descriptor{
	PluginName: "react-hooks",
	DocsURL:    "https://react.dev/reference/rules/rules-of-hooks",
	RuleSet: []lint.RuleInfo{
		rule("hooks", "rules-of-hooks", "Enforce the Rules of Hooks"),
		rule("hooks", "exhaustive-deps", "Verify the dependency lists of effect hooks", "additionalHooks", "enableDangerousAutofixThisMayCauseInfiniteLoops"),
	},
}
