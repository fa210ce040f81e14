package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// =============================================================================
// RuleSetting
// =============================================================================

// RuleSetting is the resolved configuration of one rule: a severity and the
// options payload that follows it in the authored list form. Options is nil
// for a bare severity.
type RuleSetting struct {
	Severity Severity
	Options  []any
}

// Errors returned by ParseRuleSetting.
var (
	ErrEmptySetting    = errors.New("empty rule setting list")
	ErrUnknownSeverity = errors.New("unknown severity")
	ErrUnsupportedForm = errors.New("rule setting must be a severity or a [severity, options...] list")
	ErrNilSetting      = errors.New("nil rule setting")
)

// HasOptions reports whether the setting carries an options payload.
func (r RuleSetting) HasOptions() bool {
	return len(r.Options) > 0
}

// Option returns the first options payload as a map, the shape nearly every
// rule uses. It returns nil when the first payload is not an object.
func (r RuleSetting) Option() map[string]any {
	if len(r.Options) == 0 {
		return nil
	}
	m, _ := r.Options[0].(map[string]any)
	return m
}

// Raw returns the authored form: the severity token alone, or a list of the
// token followed by the payload.
func (r RuleSetting) Raw() any {
	if len(r.Options) == 0 {
		return r.Severity.String()
	}
	out := make([]any, 0, len(r.Options)+1)
	out = append(out, r.Severity.String())
	return append(out, r.Options...)
}

// MarshalJSON encodes the authored form.
func (r RuleSetting) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Raw())
}

// MarshalYAML encodes the authored form.
func (r RuleSetting) MarshalYAML() (any, error) {
	return r.Raw(), nil
}

// String renders the setting for logs and text output.
func (r RuleSetting) String() string {
	if len(r.Options) == 0 {
		return r.Severity.String()
	}
	payload, err := json.Marshal(r.Options)
	if err != nil {
		return fmt.Sprintf("%s %v", r.Severity, r.Options)
	}
	return fmt.Sprintf("%s %s", r.Severity, payload)
}

// ParseRuleSetting converts an authored rule value into a RuleSetting.
//
// Accepted forms are a severity (token or ordinal), a list whose head is a
// severity and whose tail is the options payload, or an already typed
// RuleSetting or Severity. Lists may be []any or any other slice kind as
// produced by decoders.
func ParseRuleSetting(v any) (RuleSetting, error) {
	switch s := v.(type) {
	case nil:
		return RuleSetting{}, ErrNilSetting
	case RuleSetting:
		if !s.Severity.Valid() {
			return RuleSetting{}, fmt.Errorf("%w: %d", ErrUnknownSeverity, int(s.Severity))
		}
		return s.Clone(), nil
	case *RuleSetting:
		if s == nil {
			return RuleSetting{}, ErrNilSetting
		}
		return ParseRuleSetting(*s)
	case []any:
		return parseList(s)
	}

	if sev, ok := SeverityOf(v); ok {
		return RuleSetting{Severity: sev}, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return parseList(items)
	}

	switch v.(type) {
	case string, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, Severity:
		return RuleSetting{}, fmt.Errorf("%w: %v", ErrUnknownSeverity, v)
	}
	return RuleSetting{}, fmt.Errorf("%w, got %T", ErrUnsupportedForm, v)
}

func parseList(items []any) (RuleSetting, error) {
	if len(items) == 0 {
		return RuleSetting{}, ErrEmptySetting
	}
	sev, ok := SeverityOf(items[0])
	if !ok {
		return RuleSetting{}, fmt.Errorf("%w: %v", ErrUnknownSeverity, items[0])
	}
	rs := RuleSetting{Severity: sev}
	if len(items) > 1 {
		rs.Options = make([]any, len(items)-1)
		for i, item := range items[1:] {
			rs.Options[i] = CloneValue(item)
		}
	}
	return rs, nil
}

// Clone returns a copy whose options payload shares no maps or slices with r.
func (r RuleSetting) Clone() RuleSetting {
	if r.Options == nil {
		return RuleSetting{Severity: r.Severity}
	}
	out := RuleSetting{Severity: r.Severity, Options: make([]any, len(r.Options))}
	for i, o := range r.Options {
		out.Options[i] = CloneValue(o)
	}
	return out
}
