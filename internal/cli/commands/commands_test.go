package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/layerlint/internal/cli/config"
	"github.com/leapstack-labs/layerlint/internal/cli/output"
	clitestutil "github.com/leapstack-labs/layerlint/internal/cli/testutil"
	"github.com/leapstack-labs/layerlint/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/leapstack-labs/layerlint/pkg/lint/plugins" // register plugins
)

const projectConfig = `jobs: 2
layers:
  - preset: js/recommended
  - name: app
    files: ["src/**/*.{ts,tsx}"]
    plugins: [react-hooks, simple-import-sort]
    settings:
      react:
        version: detect
    rules:
      react-hooks/rules-of-hooks: error
      simple-import-sort/exports: warn
      simple-import-sort/imports:
        - warn
        - groups: [["^react"], ["^@?\\w"], ["^\\."]]
  - name: tests
    files: ["**/*.test.tsx"]
    rules:
      react-hooks/rules-of-hooks: off
      no-debugger: warn
`

const unsortedPage = `import { helper } from './helper'
import lodash from 'lodash'
import React from 'react'

export default function Page() {
  return null
}
`

const sortedPage = `import React from 'react'

import lodash from 'lodash'

import { helper } from './helper'

export default function Page() {
  return null
}
`

// setupProject writes files to a temp dir, makes it the working directory
// and clears any loaded config.
func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := testutil.WriteProject(t, files)
	t.Chdir(dir)
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	return dir
}

func runCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewPrintConfigCommand(), "print-config <file>...", []string{"watch", "get", "flat"}},
		{NewRulesCommand(), "rules [file]", []string{"plugin", "all"}},
		{NewLayersCommand(), "layers [file]", nil},
		{NewSortImportsCommand(), "sort-imports <file>...", []string{"write", "check"}},
		{NewCheckCommand(), "check [file]...", nil},
		{NewPresetsCommand(), "presets [name]", nil},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Example, "Example should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestPrintTitle(t *testing.T) {
	tr := clitestutil.NewTestRenderer(output.ModeMarkdown, false)
	printTitle(tr.Renderer, "Rules (2)")
	assert.Equal(t, "# Rules (2)\n\n", tr.Output())

	tr = clitestutil.NewTestRenderer(output.ModeText, false)
	printTitle(tr.Renderer, "Rules (2)")
	assert.Contains(t, tr.Output(), "Rules (2)")
	clitestutil.AssertNoANSI(t, tr.Output())
	assert.Empty(t, tr.ErrorOutput())
}

func TestPrintConfig_JSON(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": "output: json\n" + projectConfig})

	out, _, err := runCommand(NewPrintConfigCommand(), "src/app/page.test.tsx")
	require.NoError(t, err)

	var doc struct {
		Plugins  []string       `json:"plugins"`
		Rules    map[string]any `json:"rules"`
		Settings map[string]any `json:"settings"`
		Layers   []int          `json:"layers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, []int{0, 1, 2}, doc.Layers)
	assert.Equal(t, []string{"react-hooks", "simple-import-sort"}, doc.Plugins)
	assert.Equal(t, "off", doc.Rules["react-hooks/rules-of-hooks"])
	assert.Equal(t, "warn", doc.Rules["no-debugger"])
	assert.Equal(t, "error", doc.Rules["no-dupe-args"])
	assert.Equal(t, map[string]any{"version": "detect"}, doc.Settings["react"])
}

func TestPrintConfig_MultipleFiles(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": "output: json\n" + projectConfig})

	out, _, err := runCommand(NewPrintConfigCommand(), "src/app/page.tsx", "README.md")
	require.NoError(t, err)

	var docs map[string]struct {
		Layers []int `json:"layers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, []int{0, 1}, docs["src/app/page.tsx"].Layers)
	assert.Equal(t, []int{0}, docs["README.md"].Layers)
}

func TestPrintConfig_Markdown(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": projectConfig})

	out, _, err := runCommand(NewPrintConfigCommand(), "src/app/page.tsx")
	require.NoError(t, err)

	assert.Contains(t, out, "## src/app/page.tsx")
	assert.Contains(t, out, "```yaml")
	assert.Contains(t, out, "react-hooks/rules-of-hooks: error")
	clitestutil.AssertValidMarkdown(t, out)
	clitestutil.AssertNoANSI(t, out)
}

func TestPrintConfig_Get(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": projectConfig})

	out, _, err := runCommand(NewPrintConfigCommand(), "--get", "settings.react.version", "src/app/page.tsx")
	require.NoError(t, err)
	assert.Equal(t, "detect\n", out)

	out, _, err = runCommand(NewPrintConfigCommand(), "--get", "rules.react-hooks/rules-of-hooks", "src/app/page.tsx", "src/app/page.test.tsx")
	require.NoError(t, err)
	assert.Contains(t, out, "src/app/page.tsx: error")
	assert.Regexp(t, `src/app/page.test.tsx: "?off"?`, out)

	_, _, err = runCommand(NewPrintConfigCommand(), "--get", "settings.vue", "src/app/page.tsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not set")
}

func TestPrintConfig_Flat(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": projectConfig})

	out, _, err := runCommand(NewPrintConfigCommand(), "--flat", "src/app/page.tsx")
	require.NoError(t, err)
	assert.Contains(t, out, "rules.react-hooks/rules-of-hooks = error\n")
	assert.Contains(t, out, "settings.react.version = detect\n")

	_, _, err = runCommand(NewPrintConfigCommand(), "--flat", "--get", "plugins", "src/app/page.tsx")
	require.Error(t, err)
}

func TestPrintConfig_InvalidLayer(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": `layers:
  - name: broken
    files: ["src/[a"]
    rules:
      semi: loud
`})

	_, _, err := runCommand(NewPrintConfigCommand(), "src/a.ts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "src/[a")
	assert.Contains(t, err.Error(), "semi")
}

func TestPrintConfig_SkipPolicy(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": `output: json
policy: skip
layers:
  - name: broken
    files: ["src/[a"]
    rules:
      semi: error
  - name: ok
    rules:
      semi: warn
      quotes: loud
`})

	out, errOut, err := runCommand(NewPrintConfigCommand(), "src/a.ts")
	require.NoError(t, err)
	assert.Contains(t, errOut, "warning:")

	var doc struct {
		Rules  map[string]any `json:"rules"`
		Layers []int          `json:"layers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []int{1}, doc.Layers)
	assert.Equal(t, map[string]any{"semi": "warn"}, doc.Rules)
}

func TestRules_Effective(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": "output: json\n" + projectConfig})

	out, _, err := runCommand(NewRulesCommand(), "--plugin", "react-hooks", "src/app/page.tsx")
	require.NoError(t, err)

	var rows []ruleRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "react-hooks/rules-of-hooks", rows[0].Key)
	assert.Equal(t, "error", rows[0].Severity)
	assert.NotEmpty(t, rows[0].Description)
	assert.NotEmpty(t, rows[0].DocURL)
}

func TestRules_HidesOffUnlessAll(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": "output: json\n" + projectConfig})

	out, _, err := runCommand(NewRulesCommand(), "--plugin", "react-hooks", "src/app/page.test.tsx")
	require.NoError(t, err)
	var rows []ruleRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Empty(t, rows)

	out, _, err = runCommand(NewRulesCommand(), "--all", "--plugin", "react-hooks", "src/app/page.test.tsx")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "off", rows[0].Severity)
}

func TestRules_Catalog(t *testing.T) {
	setupProject(t, map[string]string{})

	out, _, err := runCommand(NewRulesCommand(), "--plugin", "simple-import-sort")
	require.NoError(t, err)
	assert.Contains(t, out, "# Rules (2)")
	assert.Contains(t, out, "simple-import-sort/imports")
	assert.Contains(t, out, "simple-import-sort/exports")

	_, _, err = runCommand(NewRulesCommand(), "--plugin", "nope")
	require.Error(t, err)
}

func TestLayers_Explain(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": "output: json\n" + projectConfig})

	out, _, err := runCommand(NewLayersCommand(), "src/app/page.tsx")
	require.NoError(t, err)

	var rows []layerRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)

	assert.Equal(t, "js/recommended", rows[0].Name)
	assert.Equal(t, "all files", rows[0].Reason)
	assert.Equal(t, "app", rows[1].Name)
	require.NotNil(t, rows[1].Applied)
	assert.True(t, *rows[1].Applied)
	assert.Equal(t, "files", rows[1].Reason)
	require.NotNil(t, rows[2].Applied)
	assert.False(t, *rows[2].Applied)
	assert.Equal(t, "no match", rows[2].Reason)
}

func TestLayers_Table(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": projectConfig})

	out, _, err := runCommand(NewLayersCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "# Layers (3)")
	assert.Contains(t, out, "| app ")
	assert.NotContains(t, out, "Applies")
	clitestutil.AssertValidMarkdown(t, out)
}

func TestSortImports_Print(t *testing.T) {
	setupProject(t, map[string]string{
		"layerlint.yaml":   projectConfig,
		"src/app/page.tsx": unsortedPage,
	})

	out, _, err := runCommand(NewSortImportsCommand(), "src/app/page.tsx")
	require.NoError(t, err)
	assert.Equal(t, sortedPage, out)
}

func TestSortImports_ExportsRuleOnly(t *testing.T) {
	setupProject(t, map[string]string{
		"layerlint.yaml": `layers:
  - plugins: [simple-import-sort]
    rules:
      simple-import-sort/imports: off
      simple-import-sort/exports: error
`,
		"src/index.ts": "import b from 'b'\nimport a from 'a'\n\nexport * from './z'\nexport * from './y'\n",
	})

	out, _, err := runCommand(NewSortImportsCommand(), "src/index.ts")
	require.NoError(t, err)
	assert.Equal(t, "import b from 'b'\nimport a from 'a'\n\nexport * from './y'\nexport * from './z'\n", out)
}

func TestSortImports_Write(t *testing.T) {
	dir := setupProject(t, map[string]string{
		"layerlint.yaml":   projectConfig,
		"src/app/page.tsx": unsortedPage,
		"lib/util.ts":      unsortedPage,
	})

	out, _, err := runCommand(NewSortImportsCommand(), "--write", "src/app/page.tsx", "lib/util.ts")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^sorted\s+src/app/page.tsx$`, out)
	assert.Regexp(t, `(?m)^skipped\s+lib/util.ts$`, out)

	assert.Equal(t, sortedPage, testutil.ReadFile(t, filepath.Join(dir, "src", "app", "page.tsx")))
	// Outside the app layer no sorting rule is enabled.
	assert.Equal(t, unsortedPage, testutil.ReadFile(t, filepath.Join(dir, "lib", "util.ts")))
}

func TestSortImports_Check(t *testing.T) {
	setupProject(t, map[string]string{
		"layerlint.yaml":  projectConfig,
		"src/unsorted.ts": unsortedPage,
		"src/sorted.ts":   sortedPage,
	})

	out, _, err := runCommand(NewSortImportsCommand(), "--check", "src/sorted.ts")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^ok\s+src/sorted.ts$`, out)

	out, _, err = runCommand(NewSortImportsCommand(), "--check", "src/sorted.ts", "src/unsorted.ts")
	require.ErrorIs(t, err, ErrUnsorted)
	assert.Regexp(t, `(?m)^unsorted\s+src/unsorted.ts$`, out)
	assert.Regexp(t, `(?m)^ok\s+src/sorted.ts$`, out)
}

func TestSortImports_FlagConflict(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": projectConfig, "src/a.ts": sortedPage})

	_, _, err := runCommand(NewSortImportsCommand(), "--check", "--write", "src/a.ts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestSortImports_Advisory(t *testing.T) {
	setupProject(t, map[string]string{
		"layerlint.yaml": projectConfig,
		"src/a.ts":       "import b from 'b'\nimport x\nimport a from 'a'\n",
	})

	_, errOut, err := runCommand(NewSortImportsCommand(), "src/a.ts")
	require.NoError(t, err)
	assert.Contains(t, errOut, "warning:")
	assert.Contains(t, errOut, "src/a.ts")
}

func TestCheck_OK(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": projectConfig})

	out, _, err := runCommand(NewCheckCommand(), "src/app/page.tsx")
	require.NoError(t, err)
	assert.Contains(t, out, "3 layers OK")
}

func TestCheck_ReportsEveryProblem(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": `output: json
policy: skip
layers:
  - name: globs
    files: ["src/[a", ""]
  - name: sorting
    plugins: [simple-import-sort, react]
    rules:
      semi: loud
      react/not-a-rule: warn
      simple-import-sort/imports: [error, {groups: [["^(unclosed"]]}]
  - name: undeclared
    rules:
      react-hooks/rules-of-hooks: error
`})

	out, _, err := runCommand(NewCheckCommand())
	require.ErrorIs(t, err, ErrCheckFailed)

	var report checkReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.OK)

	levels := map[string]int{}
	for _, p := range report.Problems {
		levels[p.Level]++
	}
	// Two bad globs, one bad severity, one bad group, one undeclared plugin.
	assert.Equal(t, 5, levels[levelError])
	assert.Equal(t, 1, levels[levelWarning])
}

func TestCheck_UnknownPreset(t *testing.T) {
	setupProject(t, map[string]string{"layerlint.yaml": `output: json
layers:
  - preset: nope/recommended
  - preset: js/recommended
    rules:
      semi: error
`})

	out, _, err := runCommand(NewCheckCommand())
	require.ErrorIs(t, err, ErrCheckFailed)

	var report checkReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report.Problems, 2)
}

func TestPresets(t *testing.T) {
	setupProject(t, map[string]string{})

	out, _, err := runCommand(NewPresetsCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "next/core-web-vitals")
	assert.Contains(t, out, "prettier/recommended")

	out, _, err = runCommand(NewPresetsCommand(), "next/core-web-vitals")
	require.NoError(t, err)
	assert.Contains(t, out, "# next/core-web-vitals")
	assert.Contains(t, out, "preset: next/recommended")
	assert.Contains(t, out, "**Extends:** next/recommended")
	clitestutil.AssertValidMarkdown(t, out)

	_, _, err = runCommand(NewPresetsCommand(), "nope")
	require.Error(t, err)
}
