package compose

import (
	"sort"

	"github.com/leapstack-labs/layerlint/pkg/core"
)

// Layer is one ordered, file-scoped contribution to the composed configuration.
type Layer struct {
	// Name labels the layer in errors and listings (e.g. "js/recommended").
	Name string

	// Files are glob patterns selecting the paths the layer applies to.
	// Empty means every path.
	Files []string

	// Ignores are glob patterns excluding paths even when Files match.
	Ignores []string

	// Plugins maps a plugin name to its handle.
	Plugins map[string]core.Plugin

	// Rules maps a rule key to its authored setting: a severity token or
	// ordinal, a [severity, options...] list, or a core.RuleSetting.
	Rules map[string]any

	// Settings holds shared cross-rule values, merged recursively.
	Settings map[string]any

	// LanguageOptions holds parser/runtime flags, merged recursively.
	LanguageOptions map[string]any
}

// compiledLayer is a validated, privately owned copy of a Layer.
type compiledLayer struct {
	index           int
	name            string
	matcher         matcher
	plugins         map[string]core.Plugin
	rules           map[string]core.RuleSetting
	settings        map[string]any
	languageOptions map[string]any

	// ruleErrs holds rules dropped under PolicySkip.
	ruleErrs []error
}

// compileLayer validates l and copies everything it owns. Matcher errors and
// rule errors are returned separately so the caller can apply its policy.
func compileLayer(index int, l Layer) (*compiledLayer, []error, []error) {
	m, matchErrs := compileMatcher(index, l.Name, l.Files, l.Ignores)

	cl := &compiledLayer{
		index:           index,
		name:            l.Name,
		matcher:         m,
		plugins:         make(map[string]core.Plugin, len(l.Plugins)),
		rules:           make(map[string]core.RuleSetting, len(l.Rules)),
		settings:        core.CloneMap(l.Settings),
		languageOptions: core.CloneMap(l.LanguageOptions),
	}
	for name, p := range l.Plugins {
		cl.plugins[name] = p
	}

	// Sorted so error order is stable across runs.
	keys := make([]string, 0, len(l.Rules))
	for k := range l.Rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var ruleErrs []error
	for _, key := range keys {
		raw := l.Rules[key]
		rs, err := core.ParseRuleSetting(raw)
		if err != nil {
			ruleErrs = append(ruleErrs, &InvalidRuleSettingError{
				Layer: index,
				Name:  l.Name,
				Key:   key,
				Value: raw,
				Err:   err,
			})
			continue
		}
		cl.rules[key] = rs
	}
	return cl, matchErrs, ruleErrs
}
