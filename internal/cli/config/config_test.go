package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/layerlint/internal/testutil"
	"github.com/leapstack-labs/layerlint/pkg/core"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.IntP("jobs", "j", 0, "")
	fs.String("policy", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultJobs, cfg.Jobs)
	assert.Equal(t, core.PolicyStrict, cfg.PolicyValue())
	assert.Empty(t, cfg.ConfigFile)
	assert.Empty(t, cfg.Layers)
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := testutil.WriteProject(t, map[string]string{
		"layerlint.yaml": "output: json\njobs: 2\npolicy: skip\nlayers:\n  - name: base\n    rules: {no-console: warn}\n",
	})
	t.Chdir(dir)
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, core.PolicySkip, cfg.PolicyValue())
	require.Len(t, cfg.Layers, 1)
	assert.Equal(t, "base", cfg.Layers[0].Name)
	assert.Equal(t, GetConfigFileUsed(), cfg.ConfigFile)

	t.Setenv("LAYERLINT_JOBS", "8")
	cfg, err = LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Jobs, "env beats file")

	cfg, err = LoadConfig("", newFlags(t, "--jobs", "3", "-o", "yaml"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Jobs, "flags beat env")
	assert.Equal(t, "yaml", cfg.OutputFormat)
}

func TestLoadConfig_UpwardSearch(t *testing.T) {
	dir := testutil.WriteProject(t, map[string]string{
		"layerlint.yml": "verbose: true\n",
		"src/app/x.ts":  "",
	})
	t.Chdir(filepath.Join(dir, "src", "app"))
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)

	root, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(cfg.ProjectRoot)
	require.NoError(t, err)
	assert.Equal(t, root, got)
	assert.Equal(t, "src/app/x.ts", cfg.RelPath("x.ts"))
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := testutil.WriteProject(t, map[string]string{
		"conf/custom.yaml": "output: markdown\n",
	})
	t.Chdir(t.TempDir())
	t.Cleanup(ResetConfig)

	path := filepath.Join(dir, "conf", "custom.yaml")
	cfg, err := LoadConfig(path, newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, filepath.Join(dir, "conf"), cfg.ProjectRoot)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errSub  string
	}{
		{"unknown key", "colour: red\n", "colour"},
		{"bad output", "output: html\n", "unknown format"},
		{"bad policy", "policy: lenient\n", "unknown policy"},
		{"negative jobs", "jobs: -1\n", "must not be negative"},
		{"bad layer", "layers:\n  - nmae: x\n", "nmae"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.WriteProject(t, map[string]string{"layerlint.yaml": tt.content})
			t.Chdir(dir)
			t.Cleanup(ResetConfig)

			_, err := LoadConfig("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestRelPath(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{ProjectRoot: root}

	assert.Equal(t, "src/a.ts", cfg.RelPath(filepath.Join(root, "src", "a.ts")))
	outside := filepath.Join(filepath.Dir(root), "elsewhere.ts")
	assert.Equal(t, filepath.ToSlash(outside), cfg.RelPath(outside))
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := testutil.NewTestLogger(t)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
