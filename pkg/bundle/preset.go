package bundle

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// Preset is a named, reusable list of layers.
type Preset struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Layers      []Spec `yaml:"layers" json:"layers"`
}

var (
	presetsMu sync.RWMutex
	presets   = make(map[string]*Preset)
)

func init() {
	if err := loadPresets(presetFS); err != nil {
		panic(err)
	}
}

// ParsePreset decodes one preset document. Unknown fields are rejected.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := decodeStrict(data, &p); err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, fmt.Errorf("preset: missing name")
	}
	return &p, nil
}

func loadPresets(fsys fs.FS) error {
	paths, err := fs.Glob(fsys, "presets/*.yaml")
	if err != nil {
		return err
	}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		p, err := ParsePreset(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		RegisterPreset(p)
	}
	return nil
}

// RegisterPreset adds or replaces a preset.
func RegisterPreset(p *Preset) {
	presetsMu.Lock()
	defer presetsMu.Unlock()
	presets[p.Name] = p
}

// LookupPreset returns a preset by name.
func LookupPreset(name string) (*Preset, bool) {
	presetsMu.RLock()
	defer presetsMu.RUnlock()
	p, ok := presets[name]
	return p, ok
}

// Presets returns all registered presets sorted by name.
func Presets() []*Preset {
	presetsMu.RLock()
	defer presetsMu.RUnlock()

	out := make([]*Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}
