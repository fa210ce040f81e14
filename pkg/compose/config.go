package compose

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/leapstack-labs/layerlint/pkg/core"
)

// Config is the effective configuration for one file path: every in-scope
// layer folded in order.
type Config struct {
	Plugins         map[string]core.Plugin
	Rules           map[string]core.RuleSetting
	Settings        map[string]any
	LanguageOptions map[string]any

	// Layers lists the indices of the layers that were applied, in order.
	Layers []int

	// Skipped holds errors for layers and rules dropped under PolicySkip.
	Skipped []error
}

func newConfig() *Config {
	return &Config{
		Plugins:         make(map[string]core.Plugin),
		Rules:           make(map[string]core.RuleSetting),
		Settings:        make(map[string]any),
		LanguageOptions: make(map[string]any),
		Layers:          []int{},
	}
}

// Rule returns the setting for a rule key.
func (c *Config) Rule(key string) (core.RuleSetting, bool) {
	rs, ok := c.Rules[key]
	return rs, ok
}

// Enabled reports whether the rule is configured at warn or error.
func (c *Config) Enabled(key string) bool {
	rs, ok := c.Rules[key]
	return ok && rs.Severity.Enabled()
}

// RuleKeys returns the configured rule keys in sorted order.
func (c *Config) RuleKeys() []string {
	return sortedKeys(c.Rules)
}

// PluginNames returns the registered plugin names in sorted order.
func (c *Config) PluginNames() []string {
	return sortedKeys(c.Plugins)
}

// Get returns a value of the configuration by dotted path: "plugins",
// "rules.<key>", "settings.<path>" or "languageOptions.<path>". Rule keys are
// taken whole since they may contain dots.
func (c *Config) Get(path string) (any, bool) {
	section, rest, _ := strings.Cut(path, ".")
	switch section {
	case "plugins":
		if rest != "" {
			return nil, false
		}
		return c.PluginNames(), true
	case "rules":
		if rest == "" {
			return c.Rules, true
		}
		rs, ok := c.Rules[rest]
		return rs, ok
	case "settings":
		if rest == "" {
			return c.Settings, true
		}
		return GetByPath(c.Settings, rest)
	case "languageOptions":
		if rest == "" {
			return c.LanguageOptions, true
		}
		return GetByPath(c.LanguageOptions, rest)
	}
	return nil, false
}

// Flatten returns every rule, setting and language option as one dotted key
// per leaf, addressable by Get.
func (c *Config) Flatten() map[string]any {
	out := make(map[string]any, len(c.Rules))
	for k, rs := range c.Rules {
		out["rules."+k] = rs
	}
	for k, v := range FlattenMap(c.Settings) {
		out["settings."+k] = v
	}
	for k, v := range FlattenMap(c.LanguageOptions) {
		out["languageOptions."+k] = v
	}
	return out
}

// MissingPlugins returns the namespaces of enabled rules that have no plugin
// registered under that name, sorted and deduplicated.
func (c *Config) MissingPlugins() []string {
	seen := make(map[string]bool)
	var missing []string
	for _, key := range c.RuleKeys() {
		ns, _ := core.SplitRuleKey(key)
		if ns == "" || seen[ns] || !c.Rules[key].Severity.Enabled() {
			continue
		}
		seen[ns] = true
		if _, ok := c.Plugins[ns]; !ok {
			missing = append(missing, ns)
		}
	}
	return missing
}

// configDoc is the serialized form of Config. Plugins are reduced to names
// since handles are opaque.
type configDoc struct {
	Plugins         []string                    `json:"plugins" yaml:"plugins"`
	Rules           map[string]core.RuleSetting `json:"rules" yaml:"rules"`
	Settings        map[string]any              `json:"settings" yaml:"settings"`
	LanguageOptions map[string]any              `json:"languageOptions" yaml:"languageOptions"`
	Layers          []int                       `json:"layers" yaml:"layers"`
}

func (c *Config) doc() configDoc {
	plugins := c.PluginNames()
	if plugins == nil {
		plugins = []string{}
	}
	return configDoc{
		Plugins:         plugins,
		Rules:           c.Rules,
		Settings:        c.Settings,
		LanguageOptions: c.LanguageOptions,
		Layers:          c.Layers,
	}
}

// MarshalJSON encodes the configuration with sorted keys.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.doc())
}

// MarshalYAML encodes the configuration for yaml.v3.
func (c *Config) MarshalYAML() (any, error) {
	return c.doc(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
