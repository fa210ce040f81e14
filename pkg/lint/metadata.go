package lint

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/layerlint/pkg/core"
)

// DefaultDocsBaseURL documents rules without a namespace.
const DefaultDocsBaseURL = "https://eslint.org/docs/latest/rules"

// DocsBaseURL can be overridden via config for local/offline mode.
var DocsBaseURL = DefaultDocsBaseURL

// BuildDocURL constructs a documentation URL for a rule key. Namespaced keys
// go to their plugin; unknown plugins and plugins without docs yield "".
func BuildDocURL(key string) string {
	ns, name := core.SplitRuleKey(key)
	if ns == "" {
		return fmt.Sprintf("%s/%s", DocsBaseURL, name)
	}
	p, ok := LookupPlugin(ns)
	if !ok {
		return ""
	}
	return p.DocURL(name)
}

// SetDocsBaseURL overrides the default documentation base URL.
func SetDocsBaseURL(url string) {
	DocsBaseURL = strings.TrimSuffix(url, "/")
}

// ResetDocsBaseURL resets to the default documentation URL.
func ResetDocsBaseURL() {
	DocsBaseURL = DefaultDocsBaseURL
}

func formatDocURL(pattern, rule string) string {
	if pattern == "" {
		return ""
	}
	if !strings.Contains(pattern, "%s") {
		return pattern
	}
	return fmt.Sprintf(pattern, rule)
}
