// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

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

// Config configures a context-sensitive run. It adds exactly one field over
// pointer.Config: the Selector that turns calling/allocation sites into
// Contexts (spec §5's C7 extension point).
type Config struct {
	Entry    ir.Method
	Heap     heap.Model
	Selector Selector
	Log      io.Writer
}

// Analysis is the context-sensitive solver: same worklist/PFG/on-the-fly
// call-graph shape as pointer.Analysis, but every node carries a Context
// chosen by Config.Selector.
type Analysis struct {
	cfg Config
	cg  *callgraph.Graph[CSMethod]
	pfg *FlowGraph
	wl  *Worklist
	pts map[Pointer]ptset.Set[CSObj]
}

// New constructs a solver ready to run.
func New(cfg Config) *Analysis {
	return &Analysis{
		cfg: cfg,
		cg:  callgraph.New[CSMethod](),
		pfg: NewFlowGraph(),
		wl:  NewWorklist(),
		pts: make(map[Pointer]ptset.Set[CSObj]),
	}
}

// Result is what Solve returns.
type Result struct {
	PFG *FlowGraph
	CG  *callgraph.Graph[CSMethod]
	pts map[Pointer]ptset.Set[CSObj]
}

// PointsTo returns p's points-to set (read-only).
func (r *Result) PointsTo(p Pointer) ptset.Set[CSObj] {
	if s, ok := r.pts[p]; ok {
		return s
	}
	return ptset.New[CSObj]()
}

// ReachableMethods returns every context-qualified method the solver proved
// reachable, in the order it first discovered them.
func (r *Result) ReachableMethods() []CSMethod {
	return r.CG.ReachableNodes()
}

// Solve runs the context-sensitive fixpoint to completion.
func (a *Analysis) Solve() *Result {
	entry := CSMethod{Ctx: a.cfg.Selector.Empty(), M: a.cfg.Entry}
	a.addReachable(entry)

	for !a.wl.Empty() {
		n, pts, _ := a.wl.Pop()
		delta := a.propagate(n, pts)
		if len(delta) == 0 {
			continue
		}
		if n.Kind() == KindVar {
			for o := range delta {
				a.handleNewPointsTo(n.CSVar(), o)
			}
		}
	}

	return &Result{PFG: a.pfg, CG: a.cg, pts: a.pts}
}

func (a *Analysis) propagate(n Pointer, pts ptset.Set[CSObj]) ptset.Set[CSObj] {
	cur, ok := a.pts[n]
	if !ok {
		cur = ptset.New[CSObj]()
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

func (a *Analysis) addPFGEdge(s, t Pointer) {
	if !a.pfg.AddEdge(s, t) {
		return
	}
	if cur, ok := a.pts[s]; ok && len(cur) > 0 {
		a.wl.Add(t, cur)
	}
}

// addReachable translates every statement of csm whose effect doesn't
// depend on a receiver's points-to set, same split as pointer.addReachable.
func (a *Analysis) addReachable(csm CSMethod) {
	if !a.cg.AddReachable(csm) {
		return
	}
	a.logf("reachable: %v:%s\n", csm.Ctx, csm.M.Signature())

	for _, s := range csm.M.Stmts() {
		switch s.Kind() {
		case ir.StmtNew:
			st := s.(ir.NewStmt)
			obj := a.cfg.Heap.Obj(st)
			heapCtx := a.cfg.Selector.SelectHeapContext(csm, obj)
			a.wl.Add(VarPtr(CSVar{csm.Ctx, st.LValue()}), ptset.Of(CSObj{HeapCtx: heapCtx, Obj: obj}))

		case ir.StmtCopy:
			st := s.(ir.CopyStmt)
			a.addPFGEdge(VarPtr(CSVar{csm.Ctx, st.RValue()}), VarPtr(CSVar{csm.Ctx, st.LValue()}))

		case ir.StmtLoadField:
			st := s.(ir.LoadFieldStmt)
			if _, ok := st.Base(); !ok {
				a.addPFGEdge(StaticFieldPtr(st.Field()), VarPtr(CSVar{csm.Ctx, st.LValue()}))
			}

		case ir.StmtStoreField:
			st := s.(ir.StoreFieldStmt)
			if _, ok := st.Base(); !ok {
				a.addPFGEdge(VarPtr(CSVar{csm.Ctx, st.RValue()}), StaticFieldPtr(st.Field()))
			}

		case ir.StmtInvoke:
			st := s.(ir.InvokeStmt)
			if st.MethodRef().Kind() == ir.CallStatic {
				a.resolveStatic(csm, st)
			}
		}
	}
}

// handleNewPointsTo fires every store/load/call that uses x as a base, now
// that o has joined x's points-to set (spec §5 lifted to contexts: every
// back-reference statement runs under x's own context, since it belongs to
// the same method activation x was declared in).
func (a *Analysis) handleNewPointsTo(x CSVar, o CSObj) {
	for _, st := range x.V.StoreFields() {
		if a.cg.IsReachable(CSMethod{x.Ctx, st.Method()}) {
			a.addPFGEdge(VarPtr(CSVar{x.Ctx, st.RValue()}), InstanceFieldPtr(o, st.Field()))
		}
	}
	for _, st := range x.V.LoadFields() {
		if a.cg.IsReachable(CSMethod{x.Ctx, st.Method()}) {
			a.addPFGEdge(InstanceFieldPtr(o, st.Field()), VarPtr(CSVar{x.Ctx, st.LValue()}))
		}
	}
	for _, st := range x.V.StoreArrays() {
		if a.cg.IsReachable(CSMethod{x.Ctx, st.Method()}) {
			a.addPFGEdge(VarPtr(CSVar{x.Ctx, st.RValue()}), ArrayIndexPtr(o))
		}
	}
	for _, st := range x.V.LoadArrays() {
		if a.cg.IsReachable(CSMethod{x.Ctx, st.Method()}) {
			a.addPFGEdge(ArrayIndexPtr(o), VarPtr(CSVar{x.Ctx, st.LValue()}))
		}
	}
	for _, call := range x.V.Invokes() {
		if a.cg.IsReachable(CSMethod{x.Ctx, call.Method()}) {
			a.processCall(x.Ctx, o, call)
		}
	}
}

// resolveStatic is the context-sensitive analogue of pointer.resolveStatic:
// a STATIC call's callee is known without waiting on any points-to set, but
// the callee's *context* still comes from the Selector.
func (a *Analysis) resolveStatic(csm CSMethod, call ir.InvokeStmt) {
	ref := call.MethodRef()
	callee, ok := ref.DeclaringClass().DeclaredMethod(ref.Subsignature())
	if !ok {
		panic(fatal.Wrap("resolveStatic: static call target missing", fmt.Errorf("%s has no declared method %q", ref.DeclaringClass().Name(), ref.Subsignature())))
	}
	site := CSCallSite{Ctx: csm.Ctx, Call: call}
	calleeCtx := a.cfg.Selector.SelectContext(site, callee)
	csCallee := CSMethod{Ctx: calleeCtx, M: callee}

	if a.cg.AddEdge(csm, callgraph.Edge[CSMethod]{Kind: callgraph.Static, CallSite: call, Callee: csCallee}) {
		a.addReachable(csCallee)
		a.passArguments(csm.Ctx, call, calleeCtx, callee)
	}
}

// processCall is the context-sensitive analogue of pointer.processCall.
// SPECIAL calls select their callee's context from the call site alone
// (SelectContext); VIRTUAL/INTERFACE calls additionally see the receiver
// object (SelectInstanceContext) — the input a k-object selector keys on.
// Calls that share one receiver object, such as id(new A()) and
// id(new B()) on a single Id instance, still get one context under
// k-object sensitivity; a k-call-site selector separates them by call site.
func (a *Analysis) processCall(callerCtx Context, o CSObj, call ir.InvokeStmt) {
	ref := call.MethodRef()
	var callee ir.Method
	var ok bool
	if ref.Kind() == ir.CallSpecial {
		callee, ok = cha.Dispatch(ref.DeclaringClass(), ref.Subsignature())
	} else {
		callee, ok = cha.Dispatch(o.Obj.Type(), ref.Subsignature())
	}
	if !ok {
		return
	}

	site := CSCallSite{Ctx: callerCtx, Call: call}
	var calleeCtx Context
	if ref.Kind() == ir.CallSpecial {
		calleeCtx = a.cfg.Selector.SelectContext(site, callee)
	} else {
		calleeCtx = a.cfg.Selector.SelectInstanceContext(site, o, callee)
	}
	csCallee := CSMethod{Ctx: calleeCtx, M: callee}

	if recv, ok := callee.Receiver(); ok {
		a.wl.Add(VarPtr(CSVar{calleeCtx, recv}), ptset.Of(o))
	}

	kind := callgraph.Virtual
	if ref.Kind() == ir.CallSpecial {
		kind = callgraph.Special
	} else if ref.Kind() == ir.CallInterface {
		kind = callgraph.Interface
	}

	caller := CSMethod{Ctx: callerCtx, M: call.Method()}
	if a.cg.AddEdge(caller, callgraph.Edge[CSMethod]{Kind: kind, CallSite: call, Callee: csCallee}) {
		a.addReachable(csCallee)
		a.passArguments(callerCtx, call, calleeCtx, callee)
	}
}

func (a *Analysis) passArguments(callerCtx Context, call ir.InvokeStmt, calleeCtx Context, callee ir.Method) {
	params := callee.Params()
	args := call.Args()
	for i := 0; i < len(params) && i < len(args); i++ {
		a.addPFGEdge(VarPtr(CSVar{callerCtx, args[i]}), VarPtr(CSVar{calleeCtx, params[i]}))
	}
	if lhs, ok := call.LValue(); ok {
		for _, ret := range callee.Returns() {
			a.addPFGEdge(VarPtr(CSVar{calleeCtx, ret}), VarPtr(CSVar{callerCtx, lhs}))
		}
	}
}

func (a *Analysis) logf(format string, args ...interface{}) {
	if a.cfg.Log != nil {
		fmt.Fprintf(a.cfg.Log, format, args...)
	}
}
