// Package config locates and reads project config files. It is decoupled
// from CLI concerns: the scalar tool settings are loaded by the CLI, while
// this package owns file discovery and the layer list.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/layerlint/pkg/bundle"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "layerlint.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "layerlint.yml"

// MaxUpwardSearchLevels limits how far up the directory tree to search for
// config files.
const MaxUpwardSearchLevels = 10

// FindConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func FindConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// FindProjectRoot walks up from startDir to the nearest directory holding a
// config file, at most MaxUpwardSearchLevels deep.
// Returns empty string if not found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for i := 0; i < MaxUpwardSearchLevels; i++ {
		if FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
	return ""
}

// ReadLayers reads the layer list of a config file. Layers are decoded with
// yaml.v3 rather than koanf: rule keys, globs and settings keys may contain
// the "." koanf uses as its path delimiter.
func ReadLayers(path string) ([]bundle.Spec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the user's config file
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	specs, err := bundle.DecodeLayers(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}
