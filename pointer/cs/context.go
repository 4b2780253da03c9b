// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cs is the context-sensitive points-to analysis of spec §5/§8 (C7):
// the same worklist/PFG/on-the-fly-call-graph shape as package pointer, but
// every Var and every object is additionally qualified by a Context, so that
// id(new A()) and id(new B()) no longer collapse into one points-to set at
// a shared method.
package cs

import (
	"github.com/aspartame4990/whole-program-analysis/heap"
	"github.com/aspartame4990/whole-program-analysis/ir"
)

// Context is an opaque context token selected by a Selector. Concrete
// selector implementations (package contextselector) choose the
// representation; this package requires only that it be comparable, since
// it is embedded as a map-key field in CSVar/CSObj/CSMethod/CSCallSite.
type Context interface{}

// CSMethod is a method under a calling context: the context-sensitive
// analogue of a reachable ir.Method node in the call graph.
type CSMethod struct {
	Ctx Context
	M   ir.Method
}

// CSCallSite is a call site under the context of its enclosing method.
type CSCallSite struct {
	Ctx  Context
	Call ir.InvokeStmt
}

// CSObj is a heap object under a heap context (spec §5's "2nd-order"
// context that distinguishes allocations of the same site made from
// different calling contexts).
type CSObj struct {
	HeapCtx Context
	Obj     heap.Obj
}

// CSVar is a local variable under a calling context.
type CSVar struct {
	Ctx Context
	V   ir.Var
}

// Selector chooses contexts for the C7 extension of spec §5. Every method
// in this interface is pure: same inputs, same Context, every time, so the
// solver's worklist remains deterministic.
type Selector interface {
	// Empty is the context new reachable-from-nowhere methods run in
	// (conventionally just the entry method).
	Empty() Context

	// SelectHeapContext picks the heap context for an object allocated by
	// caller (already under its own context) — spec §5's "objects are
	// distinguished by the context of their allocating method".
	SelectHeapContext(caller CSMethod, obj heap.Obj) Context

	// SelectContext picks the context a static/special/non-virtual call's
	// callee runs under, given the call site's own context.
	SelectContext(site CSCallSite, callee ir.Method) Context

	// SelectInstanceContext is SelectContext's virtual/interface-dispatch
	// counterpart: it additionally sees the (context-qualified) receiver
	// object, since k-object sensitivity selects from the receiver's heap
	// context rather than the call site's calling context.
	SelectInstanceContext(site CSCallSite, recv CSObj, callee ir.Method) Context
}
