package lint

import (
	"github.com/leapstack-labs/layerlint/pkg/core"
)

// Plugin is a named rule namespace a layer can register.
type Plugin interface {
	core.Plugin

	// Rules describes the rules the plugin provides.
	Rules() []RuleInfo

	// DocURL returns the documentation page for one of its rules.
	DocURL(rule string) string
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	ConfigKeys  []string `json:"config_keys,omitempty"`
	Fixable     bool     `json:"fixable,omitempty"`
}

// Descriptor is a data-driven Plugin for namespaces whose rules run outside
// this tool. Plugin packages declare one and register it from init().
type Descriptor struct {
	PluginName string     // Registered name, e.g. "react-hooks"
	DocsURL    string     // fmt pattern taking the rule name; empty for none
	RuleSet    []RuleInfo // Rules in the namespace
}

// Name implements core.Plugin.
func (d *Descriptor) Name() string { return d.PluginName }

// Rules implements Plugin.
func (d *Descriptor) Rules() []RuleInfo { return d.RuleSet }

// DocURL implements Plugin.
func (d *Descriptor) DocURL(rule string) string {
	return formatDocURL(d.DocsURL, rule)
}

// Rule returns the metadata for a rule by its short name.
func (d *Descriptor) Rule(name string) (RuleInfo, bool) {
	for _, r := range d.RuleSet {
		if r.Name == name {
			return r, true
		}
	}
	return RuleInfo{}, false
}
