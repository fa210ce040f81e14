package lint

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/leapstack-labs/layerlint/pkg/core"
)

// globalRegistry is the single global registry for plugins.
var globalRegistry = &Registry{
	plugins: make(map[string]Plugin),
}

// Registry stores registered plugins for lookup by name.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin // keyed by Name()
}

// UnknownPluginError reports a plugin name with no registration.
type UnknownPluginError struct {
	Name string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("unknown plugin %q", e.Name)
}

// RegisterPlugin adds a plugin to the global registry.
// Call this from init() functions in plugin packages.
func RegisterPlugin(p Plugin) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.plugins[p.Name()] = p
}

// LookupPlugin returns a plugin by name.
func LookupPlugin(name string) (Plugin, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	p, ok := globalRegistry.plugins[name]
	return p, ok
}

// Plugins returns all registered plugins sorted by name.
func Plugins() []Plugin {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	plugins := make([]Plugin, 0, len(globalRegistry.plugins))
	for _, p := range globalRegistry.plugins {
		plugins = append(plugins, p)
	}
	sort.Slice(plugins, func(i, j int) bool { return plugins[i].Name() < plugins[j].Name() })
	return plugins
}

// ResolvePlugins maps plugin names to registered handles. Every unknown
// name is reported.
func ResolvePlugins(names []string) (map[string]core.Plugin, error) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	out := make(map[string]core.Plugin, len(names))
	var errs []error
	for _, name := range names {
		p, ok := globalRegistry.plugins[name]
		if !ok {
			errs = append(errs, &UnknownPluginError{Name: name})
			continue
		}
		out[name] = p
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// LookupRule returns the metadata of a namespaced rule key such as
// "react-hooks/rules-of-hooks". Bare keys are never found.
func LookupRule(key string) (RuleInfo, bool) {
	ns, name := core.SplitRuleKey(key)
	if ns == "" {
		return RuleInfo{}, false
	}
	p, ok := LookupPlugin(ns)
	if !ok {
		return RuleInfo{}, false
	}
	for _, r := range p.Rules() {
		if r.Name == name {
			return r, true
		}
	}
	return RuleInfo{}, false
}

// Count returns the number of registered plugins.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.plugins)
}

// Clear removes all registered plugins. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.plugins = make(map[string]Plugin)
}
