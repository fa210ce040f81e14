// Package commands implements the layerlint subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/layerlint/internal/cli/config"
	"github.com/leapstack-labs/layerlint/internal/cli/output"
	"github.com/leapstack-labs/layerlint/pkg/bundle"
	"github.com/leapstack-labs/layerlint/pkg/compose"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext for cmd from the loaded config.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg, err := getConfig()
	if err != nil {
		return nil, err
	}
	logger := config.GetLogger(contextOf(cmd))
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}, nil
}

// Layers resolves the configured layer list, expanding preset references.
func (c *CommandContext) Layers() ([]compose.Layer, error) {
	layers, err := bundle.Resolve(c.Cfg.Layers)
	if err != nil {
		return nil, fmt.Errorf("resolve layers: %w", err)
	}
	return layers, nil
}

// Stack resolves the layers and builds a stack under the configured policy.
// Under the skip policy dropped layers and rules are reported as warnings.
func (c *CommandContext) Stack() (*compose.Stack, error) {
	layers, err := c.Layers()
	if err != nil {
		return nil, err
	}
	return c.stackFor(layers)
}

func (c *CommandContext) stackFor(layers []compose.Layer) (*compose.Stack, error) {
	stack, err := compose.NewStack(layers, compose.Options{
		Policy: c.Cfg.PolicyValue(),
		Jobs:   c.Cfg.Jobs,
		Logger: c.Logger,
	})
	if err != nil {
		return nil, err
	}
	for _, skipped := range stack.Skipped() {
		c.Renderer.Warn(skipped.Error())
	}
	c.Logger.Debug("layer stack ready",
		"config", c.Cfg.ConfigFile,
		"layers", stack.Len(),
		"policy", c.Cfg.Policy)
	return stack, nil
}

// RelPaths maps file arguments to project-relative paths.
func (c *CommandContext) RelPaths(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = c.Cfg.RelPath(a)
	}
	return out
}

// getConfig returns the current configuration, loading it from the working
// directory when the root command has not done so.
func getConfig() (*config.Config, error) {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg, nil
	}
	return config.LoadConfig("", nil)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
