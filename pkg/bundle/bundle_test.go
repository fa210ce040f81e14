package bundle

import (
	"errors"
	"os"
	"testing"

	"github.com/leapstack-labs/layerlint/pkg/compose"
	"github.com/leapstack-labs/layerlint/pkg/core"
	"github.com/leapstack-labs/layerlint/pkg/imports"
	"github.com/leapstack-labs/layerlint/pkg/lint"
	"github.com/leapstack-labs/layerlint/pkg/lint/plugins/importsort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/leapstack-labs/layerlint/pkg/lint/plugins"
)

func TestEmbeddedPresets(t *testing.T) {
	names := make([]string, 0)
	for _, p := range Presets() {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.Layers, p.Name)
	}
	assert.Equal(t, []string{
		"js/recommended",
		"next/core-web-vitals",
		"next/recommended",
		"prettier/recommended",
		"react-hooks/recommended",
		"react/jsx-runtime",
		"react/recommended",
		"typescript/recommended",
	}, names)
}

func TestEmbeddedPresets_Resolve(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Name, func(t *testing.T) {
			layers, err := Resolve([]Spec{{Preset: p.Name}})
			require.NoError(t, err)
			_, err = compose.NewStack(layers, compose.Options{})
			require.NoError(t, err, "every preset rule setting parses")
		})
	}
}

func TestPresetRules_FollowsReferences(t *testing.T) {
	rules, err := PresetRules("next/core-web-vitals")
	require.NoError(t, err)
	assert.Equal(t, "error", rules["@next/next/no-sync-scripts"])
	assert.Equal(t, "warn", rules["@next/next/no-img-element"])
}

func TestResolve_Layer(t *testing.T) {
	layers, err := Resolve([]Spec{{
		Name:      "app",
		Files:     []string{"**/*.tsx"},
		Plugins:   []string{"react"},
		RulesFrom: []string{"react/recommended", "react/jsx-runtime"},
		Rules:     map[string]any{"react/display-name": "off"},
	}})
	require.NoError(t, err)
	require.Len(t, layers, 1)

	l := layers[0]
	assert.Equal(t, "app", l.Name)
	assert.Contains(t, l.Plugins, "react")
	assert.Equal(t, "off", l.Rules["react/display-name"])
	assert.Equal(t, 0, l.Rules["react/react-in-jsx-scope"], "later rulesFrom entries win")
	assert.Equal(t, 2, l.Rules["react/jsx-key"])
}

func TestResolve_PresetScope(t *testing.T) {
	layers, err := Resolve([]Spec{{
		Preset:  "typescript/recommended",
		Files:   []string{"src/**"},
		Ignores: []string{"src/gen/**"},
	}})
	require.NoError(t, err)
	require.Len(t, layers, 3)

	assert.Equal(t, "typescript-eslint/base", layers[0].Name)
	assert.Equal(t, []string{"src/**"}, layers[0].Files)
	assert.Equal(t, []string{"**/*.ts", "**/*.tsx", "**/*.mts", "**/*.cts"}, layers[1].Files, "own files are kept")
	for _, l := range layers {
		assert.Equal(t, []string{"src/gen/**"}, l.Ignores)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr error
	}{
		{"unknown preset", Spec{Preset: "nope"}, ErrUnknownPreset},
		{"unknown rulesFrom", Spec{Name: "x", RulesFrom: []string{"nope"}}, ErrUnknownPreset},
		{"reference with rules", Spec{Preset: "js/recommended", Rules: map[string]any{"a": "off"}}, ErrPresetReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve([]Spec{{Name: "ok"}, tt.spec})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), err.Error())

			var se *SpecError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, 1, se.Index)
		})
	}

	_, err := Resolve([]Spec{{Name: "p", Plugins: []string{"missing"}}})
	var upe *lint.UnknownPluginError
	require.True(t, errors.As(err, &upe))
	assert.Equal(t, "missing", upe.Name)
}

func TestResolve_Cycle(t *testing.T) {
	RegisterPreset(&Preset{Name: "test/a", Layers: []Spec{{Preset: "test/b"}}})
	RegisterPreset(&Preset{Name: "test/b", Layers: []Spec{{Preset: "test/a"}}})
	t.Cleanup(func() {
		presetsMu.Lock()
		defer presetsMu.Unlock()
		delete(presets, "test/a")
		delete(presets, "test/b")
	})

	_, err := Resolve([]Spec{{Preset: "test/a"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPresetCycle))
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset([]byte("name: x\nlayers:\n  - rules: {a: warn}\n"))
	require.NoError(t, err)
	assert.Equal(t, "x", p.Name)

	_, err = ParsePreset([]byte("name: x\nlayers:\n  - rulez: {a: warn}\n"))
	assert.Error(t, err)

	_, err = ParsePreset([]byte("layers: []\n"))
	assert.Error(t, err)
}

func TestDecodeLayers(t *testing.T) {
	specs, err := DecodeLayers([]byte("output: json\nlayers:\n  - preset: js/recommended\n  - name: a\n    rules: {no-console: warn}\n"))
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "js/recommended", specs[0].Preset)
	assert.Equal(t, "warn", specs[1].Rules["no-console"])

	specs, err = DecodeLayers(nil)
	require.NoError(t, err)
	assert.Nil(t, specs)

	_, err = DecodeLayers([]byte("layers:\n  - nmae: typo\n"))
	assert.Error(t, err)
}

func loadNextApp(t *testing.T) *compose.Stack {
	t.Helper()
	data, err := os.ReadFile("testdata/nextjs.yaml")
	require.NoError(t, err)
	specs, err := DecodeLayers(data)
	require.NoError(t, err)
	layers, err := Resolve(specs)
	require.NoError(t, err)
	stack, err := compose.NewStack(layers, compose.Options{})
	require.NoError(t, err)
	return stack
}

func TestNextApp(t *testing.T) {
	stack := loadNextApp(t)
	cfg := stack.Compose("src/app/page.tsx")

	sev := func(key string) core.Severity {
		t.Helper()
		rs, ok := cfg.Rule(key)
		require.True(t, ok, key)
		return rs.Severity
	}

	assert.Equal(t, core.SeverityWarn, sev("no-console"))
	assert.Equal(t, core.SeverityOff, sev("react/react-in-jsx-scope"))
	assert.Equal(t, core.SeverityOff, sev("@typescript-eslint/no-explicit-any"))
	assert.Equal(t, core.SeverityError, sev("@next/next/no-sync-scripts"))
	assert.Equal(t, core.SeverityWarn, sev("react-hooks/exhaustive-deps"))
	assert.Equal(t, core.SeverityError, sev("no-var"), "typescript overrides apply to .tsx")

	ext, _ := cfg.Rule("react/jsx-filename-extension")
	assert.Equal(t, core.SeverityWarn, ext.Severity)
	assert.Equal(t, []string{".tsx", ".jsx"}, lint.GetStringSliceOption(ext.Option(), "extensions", nil))

	// prettier/recommended comes last: it switches formatting rules off and
	// replaces the endOfLine payload with a bare severity.
	assert.Equal(t, core.SeverityOff, sev("object-curly-spacing"))
	pp, _ := cfg.Rule("prettier/prettier")
	assert.Equal(t, core.SeverityError, pp.Severity)
	assert.False(t, pp.HasOptions())

	groups, err := importsort.GroupsFor(cfg)
	require.NoError(t, err)
	require.Len(t, groups, 6)
	assert.Equal(t, 0, groups.Assign(imports.Parse("import 'polyfill'")))
	assert.Equal(t, 4, groups.Assign(imports.Parse("import _ from 'lodash'")))

	assert.Empty(t, cfg.MissingPlugins())
	assert.Equal(t, "detect", cfg.Settings["react"].(map[string]any)["version"])
}

func TestNextApp_OutsideSources(t *testing.T) {
	stack := loadNextApp(t)

	md := stack.Compose("README.md")
	_, ok := md.Rule("no-console")
	assert.False(t, ok)
	assert.True(t, md.Enabled("no-debugger"))

	js := stack.Compose("src/util.js")
	_, ok = js.Rule("no-var")
	assert.False(t, ok, "typescript-only overrides skip .js")
}
