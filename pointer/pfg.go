// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointer

// FlowGraph is the pointer flow graph of spec §3/§4.5: a directed graph over
// Pointer whose edge set only grows. Self-edges are tolerated: AddEdge
// stores them like any other edge, and propagating along one never adds
// anything new. The solver produces one for a copy `x = x` or a recursive
// call that passes a parameter straight through.
type FlowGraph struct {
	succs map[Pointer]map[Pointer]bool
}

// NewFlowGraph returns an empty pointer flow graph.
func NewFlowGraph() *FlowGraph {
	return &FlowGraph{succs: make(map[Pointer]map[Pointer]bool)}
}

// AddEdge adds s -> t, reporting whether the edge was new (spec §4.5).
func (g *FlowGraph) AddEdge(s, t Pointer) bool {
	m, ok := g.succs[s]
	if !ok {
		m = make(map[Pointer]bool)
		g.succs[s] = m
	}
	if m[t] {
		return false
	}
	m[t] = true
	return true
}

// Succs returns n's PFG successors.
func (g *FlowGraph) Succs(n Pointer) []Pointer {
	m := g.succs[n]
	out := make([]Pointer, 0, len(m))
	for t := range m {
		out = append(out, t)
	}
	return out
}
