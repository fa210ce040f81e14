package compose

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrInvalidMatcher     = errors.New("invalid matcher")
	ErrInvalidRuleSetting = errors.New("invalid rule setting")
)

// InvalidMatcherError reports a file or ignore pattern that is not a valid glob.
type InvalidMatcherError struct {
	Layer   int    // Index of the layer in the supplied list
	Name    string // Layer name, if any
	Pattern string // Offending pattern
	Err     error  // Underlying cause, if any
}

func (e *InvalidMatcherError) Error() string {
	msg := fmt.Sprintf("%s: invalid matcher pattern %q", layerLabel(e.Layer, e.Name), e.Pattern)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches ErrInvalidMatcher.
func (e *InvalidMatcherError) Is(target error) bool { return target == ErrInvalidMatcher }

func (e *InvalidMatcherError) Unwrap() error { return e.Err }

// InvalidRuleSettingError reports a rule value that is neither a severity nor
// a [severity, options...] list.
type InvalidRuleSettingError struct {
	Layer int    // Index of the layer in the supplied list
	Name  string // Layer name, if any
	Key   string // Rule key
	Value any    // Value as authored
	Err   error  // Parse failure from core.ParseRuleSetting
}

func (e *InvalidRuleSettingError) Error() string {
	return fmt.Sprintf("%s: rule %q: %v", layerLabel(e.Layer, e.Name), e.Key, e.Err)
}

// Is matches ErrInvalidRuleSetting.
func (e *InvalidRuleSettingError) Is(target error) bool { return target == ErrInvalidRuleSetting }

func (e *InvalidRuleSettingError) Unwrap() error { return e.Err }

func layerLabel(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("layer %d", index)
	}
	return fmt.Sprintf("layer %d (%s)", index, name)
}
