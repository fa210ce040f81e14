// Package plugins imports every built-in plugin package so their init()
// functions register them.
package plugins

import (
	// Each package registers its plugin via init()
	_ "github.com/leapstack-labs/layerlint/pkg/lint/plugins/builtin"
	_ "github.com/leapstack-labs/layerlint/pkg/lint/plugins/importsort"
)
