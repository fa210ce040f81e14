package config

import (
	"errors"
	"fmt"
	"slices"

	sharedcfg "github.com/leapstack-labs/layerlint/internal/config"
	"github.com/leapstack-labs/layerlint/pkg/core"
)

// Validate checks the scalar settings.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(sharedcfg.ValidOutputs, c.OutputFormat) {
		errs = append(errs, fmt.Errorf("output: unknown format %q (want one of %v)", c.OutputFormat, sharedcfg.ValidOutputs))
	}
	if _, ok := core.ParsePolicy(c.Policy); !ok {
		errs = append(errs, fmt.Errorf("policy: unknown policy %q (want strict or skip)", c.Policy))
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs: must not be negative, got %d", c.Jobs))
	}
	return errors.Join(errs...)
}

// PolicyValue returns the parsed policy. Call after Validate.
func (c *Config) PolicyValue() core.Policy {
	p, _ := core.ParsePolicy(c.Policy)
	return p
}
