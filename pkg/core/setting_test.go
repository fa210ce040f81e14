package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityOf(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Severity
		ok    bool
	}{
		{"off token", "off", SeverityOff, true},
		{"warn token", "warn", SeverityWarn, true},
		{"error token", "error", SeverityError, true},
		{"int ordinal", 2, SeverityError, true},
		{"int64 ordinal", int64(1), SeverityWarn, true},
		{"uint8 ordinal", uint8(0), SeverityOff, true},
		{"json float", float64(1), SeverityWarn, true},
		{"fractional float", 1.5, SeverityOff, false},
		{"out of range", 3, SeverityOff, false},
		{"negative", -1, SeverityOff, false},
		{"warning is not a token", "warning", SeverityOff, false},
		{"uppercase is not a token", "ERROR", SeverityOff, false},
		{"typed severity", SeverityWarn, SeverityWarn, true},
		{"bool", true, SeverityOff, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SeverityOf(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	sev, ok := ParseSeverity("2")
	require.True(t, ok)
	assert.Equal(t, SeverityError, sev)

	_, ok = ParseSeverity("fatal")
	assert.False(t, ok)
}

func TestSeverity_TextRoundTrip(t *testing.T) {
	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("warn")))
	assert.Equal(t, SeverityWarn, s)

	text, err := SeverityError.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "error", string(text))

	_, err = Severity(7).MarshalText()
	assert.Error(t, err)
}

func TestParseRuleSetting(t *testing.T) {
	t.Run("bare severity", func(t *testing.T) {
		rs, err := ParseRuleSetting("warn")
		require.NoError(t, err)
		assert.Equal(t, SeverityWarn, rs.Severity)
		assert.False(t, rs.HasOptions())
	})

	t.Run("ordinal with payload", func(t *testing.T) {
		rs, err := ParseRuleSetting([]any{1, map[string]any{"extensions": []any{".tsx", ".jsx"}}})
		require.NoError(t, err)
		assert.Equal(t, SeverityWarn, rs.Severity)
		require.True(t, rs.HasOptions())
		assert.Equal(t, []any{".tsx", ".jsx"}, rs.Option()["extensions"])
	})

	t.Run("string payload list", func(t *testing.T) {
		rs, err := ParseRuleSetting([]any{"error", "always"})
		require.NoError(t, err)
		assert.Equal(t, SeverityError, rs.Severity)
		assert.Equal(t, []any{"always"}, rs.Options)
		assert.Nil(t, rs.Option(), "first payload is not an object")
	})

	t.Run("typed string slice", func(t *testing.T) {
		rs, err := ParseRuleSetting([]string{"off"})
		require.NoError(t, err)
		assert.Equal(t, SeverityOff, rs.Severity)
		assert.Nil(t, rs.Options)
	})

	t.Run("payload is copied", func(t *testing.T) {
		payload := map[string]any{"component": true}
		rs, err := ParseRuleSetting([]any{"error", payload})
		require.NoError(t, err)
		payload["component"] = false
		assert.Equal(t, true, rs.Option()["component"])
	})

	errorCases := []struct {
		name  string
		input any
		want  error
	}{
		{"nil", nil, ErrNilSetting},
		{"empty list", []any{}, ErrEmptySetting},
		{"unknown token", "fatal", ErrUnknownSeverity},
		{"unknown ordinal", 5, ErrUnknownSeverity},
		{"bad list head", []any{"loud", map[string]any{}}, ErrUnknownSeverity},
		{"object", map[string]any{"severity": "error"}, ErrUnsupportedForm},
		{"bool", false, ErrUnsupportedForm},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRuleSetting(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRuleSetting_MarshalJSON(t *testing.T) {
	bare := RuleSetting{Severity: SeverityOff}
	data, err := json.Marshal(bare)
	require.NoError(t, err)
	assert.JSONEq(t, `"off"`, string(data))

	withOpts := RuleSetting{Severity: SeverityError, Options: []any{map[string]any{"allowGlobals": true}}}
	data, err = json.Marshal(withOpts)
	require.NoError(t, err)
	assert.JSONEq(t, `["error", {"allowGlobals": true}]`, string(data))
	assert.Equal(t, `error [{"allowGlobals":true}]`, withOpts.String())
}

func TestSplitRuleKey(t *testing.T) {
	tests := []struct {
		key, ns, name string
	}{
		{"no-console", "", "no-console"},
		{"react/display-name", "react", "display-name"},
		{"@typescript-eslint/no-explicit-any", "@typescript-eslint", "no-explicit-any"},
		{"@next/next/no-img-element", "@next/next", "no-img-element"},
	}
	for _, tt := range tests {
		ns, name := SplitRuleKey(tt.key)
		assert.Equal(t, tt.ns, ns, tt.key)
		assert.Equal(t, tt.name, name, tt.key)
	}
}

func TestParsePolicy(t *testing.T) {
	p, ok := ParsePolicy("Skip")
	require.True(t, ok)
	assert.Equal(t, PolicySkip, p)

	p, ok = ParsePolicy("")
	require.True(t, ok)
	assert.Equal(t, PolicyStrict, p)

	_, ok = ParsePolicy("lenient")
	assert.False(t, ok)
}
