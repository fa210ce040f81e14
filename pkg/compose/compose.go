package compose

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/layerlint/pkg/core"
	"golang.org/x/sync/errgroup"
)

// Options configures a Stack.
type Options struct {
	// Policy selects strict-fail-all (default) or skip-and-record handling of
	// invalid matchers and rule settings.
	Policy core.Policy

	// Jobs bounds the concurrency of ComposeAll. Zero or less means unbounded.
	Jobs int

	// Logger receives skip warnings and debug traces. Nil discards.
	Logger *slog.Logger
}

// Stack is an ordered, validated list of layers. It is immutable after
// construction and safe for concurrent use.
type Stack struct {
	layers []*compiledLayer
	opts   Options
	logger *slog.Logger

	// skipped holds layers dropped entirely because of an invalid matcher.
	skipped []error
}

// NewStack validates and registers layers in order.
//
// Under PolicyStrict any invalid matcher or rule setting fails construction
// with all problems joined. Under PolicySkip an invalid matcher drops its
// layer and an invalid rule setting drops that rule; the errors are recorded
// and surface in Config.Skipped.
func NewStack(layers []Layer, opts Options) (*Stack, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Stack{
		layers: make([]*compiledLayer, 0, len(layers)),
		opts:   opts,
		logger: logger,
	}

	var errs []error
	for i, l := range layers {
		cl, matchErrs, ruleErrs := compileLayer(i, l)
		if opts.Policy == core.PolicyStrict {
			errs = append(errs, matchErrs...)
			errs = append(errs, ruleErrs...)
			s.layers = append(s.layers, cl)
			continue
		}

		if len(matchErrs) > 0 {
			for _, err := range matchErrs {
				logger.Warn("skipping layer", "layer", i, "name", l.Name, "error", err)
			}
			s.skipped = append(s.skipped, matchErrs...)
			continue
		}
		for _, err := range ruleErrs {
			logger.Warn("skipping rule", "layer", i, "name", l.Name, "error", err)
		}
		cl.ruleErrs = ruleErrs
		s.layers = append(s.layers, cl)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

// Len returns the number of registered layers, skipped ones excluded.
func (s *Stack) Len() int {
	return len(s.layers)
}

// Skipped returns the errors of layers dropped at construction.
func (s *Stack) Skipped() []error {
	return append([]error(nil), s.skipped...)
}

// Compose folds every layer in scope for filePath into one Config.
//
// Plugins and rules are merged key by key with later layers replacing
// earlier entries whole: a later bare severity drops an earlier options
// payload. Settings and language options are merged recursively.
func (s *Stack) Compose(filePath string) *Config {
	path := normalizePath(filePath)
	cfg := newConfig()
	cfg.Skipped = append(cfg.Skipped, s.skipped...)

	for _, l := range s.layers {
		if !l.matcher.Match(path) {
			continue
		}
		cfg.Layers = append(cfg.Layers, l.index)
		cfg.Skipped = append(cfg.Skipped, l.ruleErrs...)

		for name, p := range l.plugins {
			cfg.Plugins[name] = p
		}
		for key, rs := range l.rules {
			cfg.Rules[key] = rs.Clone()
		}
		cfg.Settings = DeepMerge(cfg.Settings, l.settings)
		cfg.LanguageOptions = DeepMerge(cfg.LanguageOptions, l.languageOptions)
	}

	s.logger.Debug("composed configuration",
		"path", path,
		"layers", len(cfg.Layers),
		"rules", len(cfg.Rules))
	return cfg
}

// ComposeAll composes every path concurrently, bounded by Options.Jobs.
// Each result is identical to a Compose call for that path. Cancelling ctx
// stops scheduling further paths.
func (s *Stack) ComposeAll(ctx context.Context, paths []string) (map[string]*Config, error) {
	results := make([]*Config, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if s.opts.Jobs > 0 {
		g.SetLimit(s.opts.Jobs)
	}
	for i, p := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Compose(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	out := make(map[string]*Config, len(paths))
	for i, p := range paths {
		out[p] = results[i]
	}
	return out, nil
}

// LayerMatch describes whether one layer applies to a path.
type LayerMatch struct {
	Index   int
	Name    string
	Applied bool
	Reason  string // "all files", "files", "ignored" or "no match"
}

// Explain reports, for each registered layer, whether it applies to filePath.
func (s *Stack) Explain(filePath string) []LayerMatch {
	path := normalizePath(filePath)
	out := make([]LayerMatch, 0, len(s.layers))
	for _, l := range s.layers {
		m := LayerMatch{Index: l.index, Name: l.name, Applied: l.matcher.Match(path)}
		switch {
		case m.Applied && len(l.matcher.files) == 0:
			m.Reason = "all files"
		case m.Applied:
			m.Reason = "files"
		case len(l.matcher.ignores) > 0 && (matcher{files: l.matcher.files}).Match(path):
			m.Reason = "ignored"
		default:
			m.Reason = "no match"
		}
		out = append(out, m)
	}
	return out
}

// Compose validates layers strictly and composes the configuration for one
// path. A path matching no layer yields an empty Config.
func Compose(layers []Layer, filePath string) (*Config, error) {
	s, err := NewStack(layers, Options{})
	if err != nil {
		return nil, err
	}
	return s.Compose(filePath), nil
}
