// Package dag models preset references as a directed graph. An edge runs
// from a referenced preset to the preset that references it, so parents are
// what a preset extends and children are the presets built on it.
package dag

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/layerlint/pkg/bundle"
)

// Graph is a directed graph of preset names.
type Graph struct {
	nodes   map[string]bool     // name -> registered
	edges   map[string][]string // referenced -> referencing
	parents map[string][]string // referencing -> referenced
}

// NewGraph creates a new empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]bool),
		edges:   make(map[string][]string),
		parents: make(map[string][]string),
	}
}

// FromPresets builds the reference graph of presets. References to presets
// not in the list become unregistered nodes, reported by Missing.
func FromPresets(presets []*bundle.Preset) *Graph {
	g := NewGraph()
	for _, p := range presets {
		g.AddNode(p.Name, true)
	}
	for _, p := range presets {
		for _, l := range p.Layers {
			if l.IsReference() {
				g.AddEdge(l.Preset, p.Name)
			}
		}
	}
	return g
}

// AddNode adds a node. A node first seen as an edge endpoint is
// unregistered until added with registered set.
func (g *Graph) AddNode(id string, registered bool) {
	if _, exists := g.nodes[id]; !exists {
		g.edges[id] = []string{}
		g.parents[id] = []string{}
	}
	g.nodes[id] = g.nodes[id] || registered
}

// AddEdge records that child references parent. Missing endpoints are added
// unregistered; a self reference is kept so HasCycle reports it.
func (g *Graph) AddEdge(parentID, childID string) {
	g.AddNode(parentID, false)
	g.AddNode(childID, false)
	if !contains(g.edges[parentID], childID) {
		g.edges[parentID] = append(g.edges[parentID], childID)
	}
	if !contains(g.parents[childID], parentID) {
		g.parents[childID] = append(g.parents[childID], parentID)
	}
}

// Parents returns the presets id references directly, sorted.
func (g *Graph) Parents(id string) []string {
	return sorted(g.parents[id])
}

// Children returns the presets referencing id directly, sorted.
func (g *Graph) Children(id string) []string {
	return sorted(g.edges[id])
}

// Nodes returns every node name, sorted.
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, children := range g.edges {
		count += len(children)
	}
	return count
}

// Missing returns referenced presets that were never registered, sorted.
func (g *Graph) Missing() []string {
	var out []string
	for _, id := range g.Nodes() {
		if !g.nodes[id] {
			out = append(out, id)
		}
	}
	return out
}

// HasCycle reports whether any preset reaches itself, with the cycle as a
// path that starts and ends on the same preset.
func (g *Graph) HasCycle() (bool, []string) {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	var stack []string
	var cycle []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		visited[id] = true
		onStack[id] = true
		stack = append(stack, id)

		for _, child := range g.Children(id) {
			if onStack[child] {
				for i, s := range stack {
					if s == child {
						cycle = append(append([]string{}, stack[i:]...), child)
						break
					}
				}
				return true
			}
			if !visited[child] && dfs(child) {
				return true
			}
		}

		stack = stack[:len(stack)-1]
		onStack[id] = false
		return false
	}

	for _, id := range g.Nodes() {
		if !visited[id] && dfs(id) {
			return true, cycle
		}
	}
	return false, nil
}

// TopologicalSort returns names with every preset after the presets it
// references. Ties are broken by name.
func (g *Graph) TopologicalSort() ([]string, error) {
	if hasCycle, path := g.HasCycle(); hasCycle {
		return nil, fmt.Errorf("%w: %v", bundle.ErrPresetCycle, path)
	}

	visited := make(map[string]bool)
	var result []string

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, parent := range g.Parents(id) {
			visit(parent)
		}
		result = append(result, id)
	}

	for _, id := range g.Nodes() {
		visit(id)
	}
	return result, nil
}

// Upstream returns every preset id extends, directly or transitively.
func (g *Graph) Upstream(id string) []string {
	return g.walk(id, g.parents)
}

// Downstream returns every preset built on id, directly or transitively.
func (g *Graph) Downstream(id string) []string {
	return g.walk(id, g.edges)
}

func (g *Graph) walk(id string, next map[string][]string) []string {
	seen := make(map[string]bool)
	var visit func(string)
	visit = func(n string) {
		for _, m := range next[n] {
			if !seen[m] {
				seen[m] = true
				visit(m)
			}
		}
	}
	visit(id)
	delete(seen, id)

	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func sorted(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

// contains checks if a slice contains a string.
func contains(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}
