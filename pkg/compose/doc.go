// Package compose folds an ordered list of configuration layers into the
// effective configuration for a single file path.
//
// # Layers
//
// Each Layer is scoped by glob patterns (Files, Ignores) and contributes
// plugins, rule settings, shared settings and language options. A layer with
// no patterns applies to every path.
//
// # Precedence
//
// Layers in scope are applied in list order:
//
//   - Plugins and Rules are merged key by key; a later entry replaces the
//     earlier one whole, so ["error", {...}] followed by "warn" yields a bare
//     "warn" with no options.
//   - Settings and LanguageOptions are merged recursively; sibling keys from
//     different layers coexist and later leaves win.
//
// # Usage
//
//	stack, err := compose.NewStack(layers, compose.Options{Policy: core.PolicyStrict})
//	if err != nil {
//		return err // *InvalidMatcherError / *InvalidRuleSettingError, joined
//	}
//	cfg := stack.Compose("src/app/page.tsx")
//	rs, ok := cfg.Rule("no-console")
//
// Composition is pure: layers are copied at construction, nothing is cached
// between calls, and a Stack may be shared across goroutines.
package compose
