package bundle

// Spec is the authored form of one layer, as it appears in a config file or
// a preset. A Spec either references a preset by name or describes a layer.
type Spec struct {
	// Preset expands, in place, into the layers of the named preset.
	// Only Files and Ignores may accompany it.
	Preset string `yaml:"preset,omitempty" json:"preset,omitempty"`

	Name    string   `yaml:"name,omitempty" json:"name,omitempty"`
	Files   []string `yaml:"files,omitempty" json:"files,omitempty"`
	Ignores []string `yaml:"ignores,omitempty" json:"ignores,omitempty"`

	// Plugins are registered plugin names.
	Plugins []string `yaml:"plugins,omitempty" json:"plugins,omitempty"`

	// RulesFrom copies the rule tables of the named presets into this
	// layer, in order, beneath Rules.
	RulesFrom []string `yaml:"rulesFrom,omitempty" json:"rulesFrom,omitempty"`

	Rules           map[string]any `yaml:"rules,omitempty" json:"rules,omitempty"`
	Settings        map[string]any `yaml:"settings,omitempty" json:"settings,omitempty"`
	LanguageOptions map[string]any `yaml:"languageOptions,omitempty" json:"languageOptions,omitempty"`
}

// IsReference reports whether the layer only points at a preset.
func (s Spec) IsReference() bool {
	return s.Preset != ""
}

// label names the layer in error messages.
func (s Spec) label() string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Preset != "":
		return "preset " + s.Preset
	default:
		return "unnamed"
	}
}
