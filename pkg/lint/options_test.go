package lint

import (
	"testing"

	"github.com/leapstack-labs/layerlint/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionHelpers(t *testing.T) {
	rs, err := core.ParseRuleSetting([]any{"error", map[string]any{
		"allowGlobals": true,
		"max":          3.0,
		"big":          int64(7),
		"mode":         "arrow-function",
		"extensions":   []any{".tsx", ".jsx"},
		"mixed":        []any{".tsx", 1},
		"groups":       []any{[]any{"^react"}, []any{"^@?\\w", "^@/"}},
	}})
	require.NoError(t, err)
	opts := Options(rs)

	assert.True(t, GetBoolOption(opts, "allowGlobals", false))
	assert.False(t, GetBoolOption(opts, "missing", false))
	assert.Equal(t, 3, GetIntOption(opts, "max", 0))
	assert.Equal(t, 7, GetIntOption(opts, "big", 0))
	assert.Equal(t, 9, GetIntOption(opts, "mode", 9))
	assert.Equal(t, "arrow-function", GetStringOption(opts, "mode", ""))
	assert.Equal(t, "x", GetStringOption(opts, "max", "x"))
	assert.Equal(t, []string{".tsx", ".jsx"}, GetStringSliceOption(opts, "extensions", nil))
	assert.Equal(t, []string{"d"}, GetStringSliceOption(opts, "mixed", []string{"d"}))
	assert.Equal(t, 3.0, GetOption(opts, "max", 0.0))

	groups, ok := GetStringMatrixOption(opts, "groups")
	require.True(t, ok)
	assert.Equal(t, [][]string{{"^react"}, {"^@?\\w", "^@/"}}, groups)

	groups, ok = GetStringMatrixOption(opts, "absent")
	assert.True(t, ok)
	assert.Nil(t, groups)

	_, ok = GetStringMatrixOption(opts, "extensions")
	assert.False(t, ok)
}

func TestOptions_NoPayload(t *testing.T) {
	rs, err := core.ParseRuleSetting("warn")
	require.NoError(t, err)
	assert.Nil(t, Options(rs))
	assert.Equal(t, 5, GetIntOption(Options(rs), "max", 5))
}
