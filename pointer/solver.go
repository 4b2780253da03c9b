// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointer

import (
	"fmt"
	"io"

	"github.com/aspartame4990/whole-program-analysis/callgraph"
	"github.com/aspartame4990/whole-program-analysis/cha"
	"github.com/aspartame4990/whole-program-analysis/heap"
	"github.com/aspartame4990/whole-program-analysis/internal/fatal"
	"github.com/aspartame4990/whole-program-analysis/ir"
	"github.com/aspartame4990/whole-program-analysis/ptset"
)

// Config configures a context-insensitive points-to run. It follows the
// teacher's pointer.Config shape: a plain struct of fields passed to a
// constructor, no flags.
type Config struct {
	Entry ir.Method
	Heap  heap.Model
	Log   io.Writer
}

// Analysis is the context-insensitive solver of spec §4.6: a single-
// threaded worklist saturation that discovers the call graph and the
// pointer flow graph together.
type Analysis struct {
	cfg Config
	cg  *callgraph.Graph[ir.Method]
	pfg *FlowGraph
	wl  *Worklist
	pts map[Pointer]ptset.Set[heap.Obj]
}

// New constructs a solver ready to run.
func New(cfg Config) *Analysis {
	return &Analysis{
		cfg: cfg,
		cg:  callgraph.New[ir.Method](),
		pfg: NewFlowGraph(),
		wl:  NewWorklist(),
		pts: make(map[Pointer]ptset.Set[heap.Obj]),
	}
}

// Result is what Solve returns: the finished pointer flow graph and call
// graph, frozen once the worklist empties (spec §3 lifecycle, §6 output).
type Result struct {
	PFG *FlowGraph
	CG  *callgraph.Graph[ir.Method]
	pts map[Pointer]ptset.Set[heap.Obj]
}

// PointsTo returns p's points-to set (read-only; callers must not mutate
// the returned set).
func (r *Result) PointsTo(p Pointer) ptset.Set[heap.Obj] {
	if s, ok := r.pts[p]; ok {
		return s
	}
	return ptset.New[heap.Obj]()
}

// ReachableMethods returns every method the solver proved reachable, in the
// order it first discovered them.
func (r *Result) ReachableMethods() []ir.Method {
	return r.CG.ReachableNodes()
}

// Solve runs the fixpoint of spec §4.6 to completion and returns the frozen
// PFG and call graph.
func (a *Analysis) Solve() *Result {
	a.addReachable(a.cfg.Entry)

	for !a.wl.Empty() {
		n, pts, _ := a.wl.Pop()
		delta := a.propagate(n, pts)
		if len(delta) == 0 {
			continue
		}
		if n.Kind() == KindVar {
			for o := range delta {
				a.handleNewPointsTo(n.Var(), o)
			}
		}
	}

	return &Result{PFG: a.pfg, CG: a.cg, pts: a.pts}
}

// propagate implements spec §4.5's propagate(n, pts): grow pts(n) by
// pts\pts(n) and forward the delta along every PFG successor.
func (a *Analysis) propagate(n Pointer, pts ptset.Set[heap.Obj]) ptset.Set[heap.Obj] {
	cur, ok := a.pts[n]
	if !ok {
		cur = ptset.New[heap.Obj]()
		a.pts[n] = cur
	}
	delta := cur.Diff(pts)
	if len(delta) == 0 {
		return delta
	}
	cur.Merge(delta)
	for _, succ := range a.pfg.Succs(n) {
		a.wl.Add(succ, delta)
	}
	a.logf("propagate %s += %v\n", n, delta)
	return delta
}

// addPFGEdge adds s->t and, per spec §4.5's add_edge postcondition,
// immediately propagates pts(s) to t if the edge is new and pts(s) is
// already non-empty.
func (a *Analysis) addPFGEdge(s, t Pointer) {
	if !a.pfg.AddEdge(s, t) {
		return
	}
	if cur, ok := a.pts[s]; ok && len(cur) > 0 {
		a.wl.Add(t, cur)
	}
}

// addReachable implements spec §4.6's add_reachable(m): translate every
// statement whose effect does not depend on a receiver's points-to set.
func (a *Analysis) addReachable(m ir.Method) {
	if !a.cg.AddReachable(m) {
		return
	}
	a.logf("reachable: %s\n", m.Signature())

	for _, s := range m.Stmts() {
		switch s.Kind() {
		case ir.StmtNew:
			st := s.(ir.NewStmt)
			obj := a.cfg.Heap.Obj(st)
			a.wl.Add(VarPtr(st.LValue()), ptset.Of(obj))

		case ir.StmtCopy:
			st := s.(ir.CopyStmt)
			a.addPFGEdge(VarPtr(st.RValue()), VarPtr(st.LValue()))

		case ir.StmtLoadField:
			st := s.(ir.LoadFieldStmt)
			if _, ok := st.Base(); !ok {
				a.addPFGEdge(StaticFieldPtr(st.Field()), VarPtr(st.LValue()))
			}
			// instance loads are handled dynamically as the base's PTS grows.

		case ir.StmtStoreField:
			st := s.(ir.StoreFieldStmt)
			if _, ok := st.Base(); !ok {
				a.addPFGEdge(VarPtr(st.RValue()), StaticFieldPtr(st.Field()))
			}

		case ir.StmtInvoke:
			st := s.(ir.InvokeStmt)
			if st.MethodRef().Kind() == ir.CallStatic {
				a.resolveStatic(st)
			}
			// instance calls are handled dynamically via processCall.
		}
	}
}

// handleNewPointsTo implements the "for every new object o_i in delta"
// clause of spec §4.6's main loop: fire every store/load/call that
// textually uses x as a base, now that o has joined x's points-to set.
func (a *Analysis) handleNewPointsTo(x ir.Var, o heap.Obj) {
	for _, st := range x.StoreFields() {
		if a.cg.IsReachable(st.Method()) {
			a.addPFGEdge(VarPtr(st.RValue()), InstanceFieldPtr(o, st.Field()))
		}
	}
	for _, st := range x.LoadFields() {
		if a.cg.IsReachable(st.Method()) {
			a.addPFGEdge(InstanceFieldPtr(o, st.Field()), VarPtr(st.LValue()))
		}
	}
	for _, st := range x.StoreArrays() {
		if a.cg.IsReachable(st.Method()) {
			a.addPFGEdge(VarPtr(st.RValue()), ArrayIndexPtr(o))
		}
	}
	for _, st := range x.LoadArrays() {
		if a.cg.IsReachable(st.Method()) {
			a.addPFGEdge(ArrayIndexPtr(o), VarPtr(st.LValue()))
		}
	}
	for _, call := range x.Invokes() {
		if a.cg.IsReachable(call.Method()) {
			a.processCall(o, call)
		}
	}
}

// resolveStatic handles the one call shape that addReachable can resolve
// without waiting for a receiver's points-to set.
func (a *Analysis) resolveStatic(call ir.InvokeStmt) {
	ref := call.MethodRef()
	callee, ok := ref.DeclaringClass().DeclaredMethod(ref.Subsignature())
	if !ok {
		panic(fatal.Wrap("resolveStatic: static call target missing", fmt.Errorf("%s has no declared method %q", ref.DeclaringClass().Name(), ref.Subsignature())))
	}
	if a.cg.AddEdge(call.Method(), callgraph.Edge[ir.Method]{Kind: callgraph.Static, CallSite: call, Callee: callee}) {
		a.addReachable(callee)
		a.passArguments(call, callee)
	}
}

// processCall implements spec §4.6's process_call(x, o_i): dispatch and, on
// a new call-graph edge, bind `this` and pass arguments.
//
// Dispatch is specialized per spec §4.6: SPECIAL calls (private methods,
// constructors, super-calls) are still statically bound to the call site's
// declaring class regardless of the receiver's concrete type; VIRTUAL and
// INTERFACE calls collapse CHA's whole-hierarchy walk to a single upward
// dispatch starting at the concrete receiver type.
func (a *Analysis) processCall(o heap.Obj, call ir.InvokeStmt) {
	ref := call.MethodRef()
	var callee ir.Method
	var ok bool
	if ref.Kind() == ir.CallSpecial {
		callee, ok = cha.Dispatch(ref.DeclaringClass(), ref.Subsignature())
	} else {
		callee, ok = cha.Dispatch(o.Type(), ref.Subsignature())
	}
	if !ok {
		return
	}

	if recv, ok := callee.Receiver(); ok {
		a.wl.Add(VarPtr(recv), ptset.Of(o))
	}

	kind := callgraph.Virtual
	if ref.Kind() == ir.CallSpecial {
		kind = callgraph.Special
	} else if ref.Kind() == ir.CallInterface {
		kind = callgraph.Interface
	}

	if a.cg.AddEdge(call.Method(), callgraph.Edge[ir.Method]{Kind: kind, CallSite: call, Callee: callee}) {
		a.addReachable(callee)
		a.passArguments(call, callee)
	}
}

// passArguments implements spec §4.6's argument-passing rule.
func (a *Analysis) passArguments(call ir.InvokeStmt, callee ir.Method) {
	params := callee.Params()
	args := call.Args()
	for i := 0; i < len(params) && i < len(args); i++ {
		a.addPFGEdge(VarPtr(args[i]), VarPtr(params[i]))
	}
	if lhs, ok := call.LValue(); ok {
		for _, ret := range callee.Returns() {
			a.addPFGEdge(VarPtr(ret), VarPtr(lhs))
		}
	}
}

func (a *Analysis) logf(format string, args ...interface{}) {
	if a.cfg.Log != nil {
		fmt.Fprintf(a.cfg.Log, format, args...)
	}
}
