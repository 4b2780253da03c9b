// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deadcode fuses constant propagation, live-variable analysis and
// control-flow reachability into the dead-statement set of spec §4.3.
package deadcode

import (
	"sort"

	"github.com/aspartame4990/whole-program-analysis/cfg"
	"github.com/aspartame4990/whole-program-analysis/constprop"
	"github.com/aspartame4990/whole-program-analysis/internal/fatal"
	"github.com/aspartame4990/whole-program-analysis/ir"
	"github.com/aspartame4990/whole-program-analysis/live"
)

// CPFacts is the slice of the constant-propagation result deadcode needs:
// the IN fact of each branch/switch statement, used to prune infeasible
// successors.
type CPFacts interface {
	InFact(stmt ir.Stmt) *constprop.Fact
}

// Result is the sorted set of dead statements.
type Result struct {
	indices []int
	set     map[int]bool
}

// Statements returns the dead statement indices in ascending order.
func (r *Result) Statements() []int { return r.indices }

// Contains reports whether stmtIndex is in the dead set.
func (r *Result) Contains(stmtIndex int) bool { return r.set[stmtIndex] }

// Analyze computes the dead set for one method's CFG via a single
// depth-first walk from the entry that prunes infeasible branches using cp
// and records useless assignments using live (spec §4.3).
func Analyze(g cfg.Graph, cp CPFacts, lv live.Result) *Result {
	w := &walker{g: g, cp: cp, live: lv, reached: map[ir.Stmt]bool{}, useless: map[ir.Stmt]bool{}}
	w.visit(g.Entry())

	dead := map[int]bool{}
	entry, exit := g.Entry(), g.Exit()
	for _, s := range g.Nodes() {
		if s == entry || s == exit {
			continue
		}
		if !w.reached[s] {
			dead[s.Index()] = true
		}
	}
	for s := range w.useless {
		if s == entry || s == exit {
			continue
		}
		dead[s.Index()] = true
	}

	idxs := make([]int, 0, len(dead))
	for i := range dead {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	return &Result{indices: idxs, set: dead}
}

type walker struct {
	g       cfg.Graph
	cp      CPFacts
	live    live.Result
	reached map[ir.Stmt]bool
	useless map[ir.Stmt]bool
}

func (w *walker) visit(s ir.Stmt) {
	if w.reached[s] {
		return
	}
	w.reached[s] = true

	if def, ok := s.(ir.Definition); ok && isUseless(def, s, w.live) {
		w.useless[s] = true
	}

	switch s.Kind() {
	case ir.StmtIf:
		w.visitIf(s.(ir.IfStmt), s)
	case ir.StmtSwitch:
		w.visitSwitch(s.(ir.SwitchStmt), s)
	default:
		for _, succ := range w.g.Succs(s) {
			w.visit(succ)
		}
	}
}

func (w *walker) visitIf(ifs ir.IfStmt, s ir.Stmt) {
	succs := w.g.Succs(s)
	if len(succs) != 2 {
		panic(fatal.New("if statement must present exactly two CFG successors"))
	}
	taken, fallThrough := succs[0], succs[1]

	val := constprop.Evaluate(ifs.Condition(), w.cp.InFact(s))
	k, isConst := val.GetConst()
	switch {
	case isConst && k == 0:
		w.visit(fallThrough)
	case isConst && k == 1:
		w.visit(taken)
	default:
		w.visit(taken)
		w.visit(fallThrough)
	}
}

func (w *walker) visitSwitch(sw ir.SwitchStmt, s ir.Stmt) {
	val := constprop.Evaluate(sw.Selector(), w.cp.InFact(s))
	k, isConst := val.GetConst()
	if !isConst {
		for _, succ := range w.g.Succs(s) {
			w.visit(succ)
		}
		return
	}

	target := sw.DefaultTarget()
	for _, c := range sw.Cases() {
		if c.Value == k {
			target = c.Target
			break
		}
	}
	for _, succ := range w.g.Succs(s) {
		if succ.Index() == target {
			w.visit(succ)
			return
		}
	}
	panic(fatal.New("switch statement's resolved target is not among its CFG successors"))
}

// isUseless implements spec §4.3's useless-assignment rule: lv is a local
// variable (always true of a Definition's LValue in this IR), lv is not in
// the OUT live-set of stmt, and rhs has no observable side effect.
func isUseless(def ir.Definition, stmt ir.Stmt, lv live.Result) bool {
	out := lv.OutFact(stmt)
	if out.Contains(def.LValue()) {
		return false
	}
	return !hasSideEffect(def.RHS())
}

// hasSideEffect reports whether e may trap, allocate, or trigger class
// initialization — the exclusions spec §4.3 lists for "side-effect-free".
func hasSideEffect(e ir.Expr) bool {
	switch e.Kind() {
	case ir.ExprNew, ir.ExprCast, ir.ExprFieldAccess, ir.ExprArrayAccess:
		return true
	case ir.ExprArithmetic, ir.ExprCondition, ir.ExprShift, ir.ExprBitwise:
		op := e.(ir.BinaryExpr).Op()
		return op == ir.OpDiv || op == ir.OpRem
	default:
		return false
	}
}
