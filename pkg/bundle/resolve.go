package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/leapstack-labs/layerlint/pkg/compose"
	"github.com/leapstack-labs/layerlint/pkg/lint"
	"gopkg.in/yaml.v3"
)

// DecodeLayers reads the top-level "layers" list of a YAML document. Other
// top-level keys are ignored; unknown keys inside a layer are rejected.
func DecodeLayers(data []byte) ([]Spec, error) {
	var doc struct {
		Layers []Spec         `yaml:"layers"`
		Rest   map[string]any `yaml:",inline"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode layers: %w", err)
	}
	return doc.Layers, nil
}

// Resolve turns authored specs into composer layers: preset references are
// expanded in place, RulesFrom tables are folded beneath each layer's own
// rules and plugin names are resolved against the lint registry. Every
// failure is reported, wrapped in *SpecError.
func Resolve(specs []Spec) ([]compose.Layer, error) {
	var (
		layers []compose.Layer
		errs   []error
	)
	for i, s := range specs {
		expanded, err := expand(s, nil)
		if err != nil {
			errs = append(errs, &SpecError{Index: i, Label: s.label(), Err: err})
			continue
		}
		for _, e := range expanded {
			l, err := toLayer(e)
			if err != nil {
				errs = append(errs, &SpecError{Index: i, Label: s.label(), Err: err})
				continue
			}
			layers = append(layers, l)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return layers, nil
}

// expand flattens preset references. seen holds the presets being expanded.
func expand(s Spec, seen []string) ([]Spec, error) {
	if !s.IsReference() {
		return []Spec{s}, nil
	}
	if s.Name != "" || len(s.Plugins) > 0 || len(s.RulesFrom) > 0 ||
		len(s.Rules) > 0 || len(s.Settings) > 0 || len(s.LanguageOptions) > 0 {
		return nil, fmt.Errorf("%s: %w", s.Preset, ErrPresetReference)
	}
	for _, name := range seen {
		if name == s.Preset {
			return nil, fmt.Errorf("%w: %v -> %s", ErrPresetCycle, seen, s.Preset)
		}
	}
	p, ok := LookupPreset(s.Preset)
	if !ok {
		return nil, &UnknownPresetError{Name: s.Preset}
	}

	seen = append(seen, s.Preset)
	var out []Spec
	for _, child := range p.Layers {
		expanded, err := expand(child, seen)
		if err != nil {
			return nil, err
		}
		for _, e := range expanded {
			if e.Name == "" {
				e.Name = p.Name
			}
			if len(s.Files) > 0 && len(e.Files) == 0 {
				e.Files = s.Files
			}
			e.Ignores = append(append([]string(nil), e.Ignores...), s.Ignores...)
			out = append(out, e)
		}
	}
	return out, nil
}

func toLayer(s Spec) (compose.Layer, error) {
	plugins, err := lint.ResolvePlugins(s.Plugins)
	if err != nil {
		return compose.Layer{}, err
	}

	rules := make(map[string]any)
	for _, name := range s.RulesFrom {
		from, err := PresetRules(name)
		if err != nil {
			return compose.Layer{}, fmt.Errorf("rulesFrom: %w", err)
		}
		for k, v := range from {
			rules[k] = v
		}
	}
	for k, v := range s.Rules {
		rules[k] = v
	}

	return compose.Layer{
		Name:            s.Name,
		Files:           s.Files,
		Ignores:         s.Ignores,
		Plugins:         plugins,
		Rules:           rules,
		Settings:        s.Settings,
		LanguageOptions: s.LanguageOptions,
	}, nil
}

// PresetRules folds the rule tables of every layer the preset expands to,
// in order.
func PresetRules(name string) (map[string]any, error) {
	specs, err := expand(Spec{Preset: name}, nil)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	for _, s := range specs {
		for k, v := range s.Rules {
			out[k] = v
		}
	}
	return out, nil
}
