package core

import "strings"

// =============================================================================
// Plugin
// =============================================================================

// Plugin is an opaque capability bundle registered by a layer under a name.
// The composer only moves handles around; it never calls into them.
type Plugin interface {
	// Name returns the canonical plugin name, e.g. "simple-import-sort".
	Name() string
}

// SplitRuleKey splits a rule key into its namespace and rule name.
// The namespace is everything before the last "/", so scoped plugins keep
// their scope: "@next/next/no-img-element" -> ("@next/next", "no-img-element").
// Bare keys have an empty namespace.
func SplitRuleKey(key string) (namespace, name string) {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return "", key
	}
	return key[:i], key[i+1:]
}

// =============================================================================
// Policy
// =============================================================================

// Policy decides what happens when a layer, rule or pattern fails validation.
type Policy int

const (
	// PolicyStrict fails the whole operation on the first invalid input.
	PolicyStrict Policy = iota
	// PolicySkip drops the invalid input, records the error and continues.
	PolicySkip
)

// String returns the config token for the policy.
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicySkip:
		return "skip"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a config token to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PolicyStrict, true
	case "skip":
		return PolicySkip, true
	default:
		return PolicyStrict, false
	}
}
