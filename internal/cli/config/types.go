// Package config provides configuration management for the layerlint CLI.
//
// Scalar tool settings are loaded with koanf from defaults, the config file,
// LAYERLINT_ environment variables and flags. The layer list of the same
// file is read by the shared internal/config package.
package config

import (
	"path/filepath"
	"strings"

	sharedcfg "github.com/leapstack-labs/layerlint/internal/config"
	"github.com/leapstack-labs/layerlint/pkg/bundle"
)

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
	Jobs         int    `koanf:"jobs"`
	Policy       string `koanf:"policy"`

	// Layers is read separately from the config file.
	Layers []bundle.Spec `koanf:"-"`

	// ConfigFile is the file the config was read from, if any.
	ConfigFile string `koanf:"-"`

	// ProjectRoot anchors layer globs: file arguments are matched relative
	// to it.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultOutput = sharedcfg.DefaultOutput
	DefaultJobs   = sharedcfg.DefaultJobs
	DefaultPolicy = sharedcfg.DefaultPolicy
)

// RelPath returns path relative to the project root, slash separated, as
// layer globs expect. Paths outside the root are returned cleaned.
func (c *Config) RelPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil || c.ProjectRoot == "" {
		return filepath.ToSlash(filepath.Clean(path))
	}
	rel, err := filepath.Rel(c.ProjectRoot, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(filepath.Clean(path))
	}
	return filepath.ToSlash(rel)
}
