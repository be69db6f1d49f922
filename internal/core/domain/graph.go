package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// DependencyGraph maps a project name to the names of the projects it depends on.
// Edges are a best-effort under-approximation: a missing edge only weakens ordering.
type DependencyGraph struct {
	edges map[InternedString]map[InternedString]struct{}
}

// NewDependencyGraph creates an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		edges: make(map[InternedString]map[InternedString]struct{}),
	}
}

// AddEdge records that from depends on to. Repeated edges are collapsed.
func (g *DependencyGraph) AddEdge(from, to string) {
	key := NewInternedString(from)
	deps, ok := g.edges[key]
	if !ok {
		deps = make(map[InternedString]struct{})
		g.edges[key] = deps
	}
	deps[NewInternedString(to)] = struct{}{}
}

// Dependencies returns the dependency names of a project in sorted order.
func (g *DependencyGraph) Dependencies(name string) []string {
	deps := g.edges[NewInternedString(name)]
	out := make([]string, 0, len(deps))
	for d := range deps {
		out = append(out, d.String())
	}
	slices.Sort(out)
	return out
}

// Edges returns a copy of the graph as a plain map with sorted values.
func (g *DependencyGraph) Edges() map[string][]string {
	out := make(map[string][]string, len(g.edges))
	for from := range g.edges {
		out[from.String()] = g.Dependencies(from.String())
	}
	return out
}

// Len returns the number of edges.
func (g *DependencyGraph) Len() int {
	n := 0
	for _, deps := range g.edges {
		n += len(deps)
	}
	return n
}

// Order returns the projects in dependency order: for every edge A -> B, B precedes A.
// It is a depth-first post-order sort that walks projects in their given order.
// Cycles do not stop the sort. Each cycle yields one ErrCycleDetected diagnostic naming
// the re-entered project, and every project is still emitted exactly once.
// Dependencies that name no project are ignored.
func (g *DependencyGraph) Order(projects []*Project) ([]*Project, []error) {
	s := newTopoSort(g, projects)
	for _, p := range projects {
		s.visit(p)
	}
	return s.sorted, s.cycles
}

// topoSort carries the mutable state of one Order call.
// visiting and visited are keyed by canonical path so that projects sharing a
// name are still emitted individually.
type topoSort struct {
	graph    *DependencyGraph
	byName   map[string]*Project
	visiting map[string]struct{}
	visited  map[string]struct{}
	sorted   []*Project
	cycles   []error
}

func newTopoSort(g *DependencyGraph, projects []*Project) *topoSort {
	byName := make(map[string]*Project, len(projects))
	for _, p := range projects {
		// First project wins a name collision.
		if _, ok := byName[p.Name]; !ok {
			byName[p.Name] = p
		}
	}
	return &topoSort{
		graph:    g,
		byName:   byName,
		visiting: make(map[string]struct{}, len(projects)),
		visited:  make(map[string]struct{}, len(projects)),
		sorted:   make([]*Project, 0, len(projects)),
	}
}

func (s *topoSort) visit(p *Project) {
	if _, done := s.visited[p.Path]; done {
		return
	}
	if _, open := s.visiting[p.Path]; open {
		s.cycles = append(s.cycles, zerr.With(ErrCycleDetected, "project", p.Name))
		return
	}

	s.visiting[p.Path] = struct{}{}
	for _, name := range s.graph.Dependencies(p.Name) {
		if dep, ok := s.byName[name]; ok {
			s.visit(dep)
		}
	}
	delete(s.visiting, p.Path)

	s.visited[p.Path] = struct{}{}
	s.sorted = append(s.sorted, p)
}
