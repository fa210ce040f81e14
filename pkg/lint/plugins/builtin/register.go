package builtin

import "github.com/leapstack-labs/layerlint/pkg/lint"

func init() {
	lint.RegisterPlugin(React)
	lint.RegisterPlugin(ReactHooks)
	lint.RegisterPlugin(Next)
	lint.RegisterPlugin(TypeScript)
	lint.RegisterPlugin(Query)
	lint.RegisterPlugin(Prettier)
}

func rule(category, name, description string, configKeys ...string) lint.RuleInfo {
	return lint.RuleInfo{Name: name, Description: description, Category: category, ConfigKeys: configKeys}
}

func fixable(r lint.RuleInfo) lint.RuleInfo {
	r.Fixable = true
	return r
}
