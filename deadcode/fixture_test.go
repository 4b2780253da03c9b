// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deadcode

import (
	"github.com/aspartame4990/whole-program-analysis/constprop"
	"github.com/aspartame4990/whole-program-analysis/ir"
	"github.com/aspartame4990/whole-program-analysis/lattice"
	"github.com/aspartame4990/whole-program-analysis/ptset"
)

type fxType struct{ kind ir.Kind }

func (t fxType) Kind() ir.Kind  { return t.kind }
func (t fxType) String() string { return "fxType" }

var intType = fxType{ir.KindInt}

type fxVar struct {
	name string
}

func (v *fxVar) Name() string                    { return v.name }
func (v *fxVar) Type() ir.Type                    { return intType }
func (v *fxVar) StoreFields() []ir.StoreFieldStmt { return nil }
func (v *fxVar) LoadFields() []ir.LoadFieldStmt   { return nil }
func (v *fxVar) StoreArrays() []ir.StoreArrayStmt { return nil }
func (v *fxVar) LoadArrays() []ir.LoadArrayStmt   { return nil }
func (v *fxVar) Invokes() []ir.InvokeStmt         { return nil }

func newVar(name string) *fxVar { return &fxVar{name: name} }

type fxIntLit int32

func (fxIntLit) Kind() ir.ExprKind { return ir.ExprIntLit }
func (l fxIntLit) Value() int32    { return int32(l) }

type fxVarExpr struct{ v ir.Var }

func (fxVarExpr) Kind() ir.ExprKind { return ir.ExprVar }
func (e fxVarExpr) Var() ir.Var     { return e.v }

type fxBinExpr struct {
	op   ir.BinOp
	kind ir.ExprKind
	x, y ir.Var
}

func (e fxBinExpr) Kind() ir.ExprKind { return e.kind }
func (e fxBinExpr) Op() ir.BinOp      { return e.op }
func (e fxBinExpr) X() ir.Var         { return e.x }
func (e fxBinExpr) Y() ir.Var         { return e.y }

func cond(op ir.BinOp, x, y ir.Var) fxBinExpr {
	return fxBinExpr{op: op, kind: ir.ExprCondition, x: x, y: y}
}

func arith(op ir.BinOp, x, y ir.Var) fxBinExpr {
	return fxBinExpr{op: op, kind: ir.ExprArithmetic, x: x, y: y}
}

type fxStmt struct {
	idx    int
	kind   ir.StmtKind
	method ir.Method
}

func (s *fxStmt) Index() int            { return s.idx }
func (s *fxStmt) Kind() ir.StmtKind     { return s.kind }
func (s *fxStmt) Method() ir.Method     { return s.method }
func (s *fxStmt) setMethod(m ir.Method) { s.method = m }

type methodSetter interface{ setMethod(ir.Method) }

type fxAssign struct {
	fxStmt
	lv  ir.Var
	rhs ir.Expr
}

func (s *fxAssign) LValue() ir.Var { return s.lv }
func (s *fxAssign) RHS() ir.Expr   { return s.rhs }

func assignStmt(idx int, lv ir.Var, rhs ir.Expr) *fxAssign {
	return &fxAssign{fxStmt: fxStmt{idx: idx, kind: ir.StmtAssign}, lv: lv, rhs: rhs}
}

type fxIf struct {
	fxStmt
	condExpr ir.Expr
}

func (s *fxIf) Condition() ir.Expr { return s.condExpr }

func ifStmt(idx int, condExpr ir.Expr) *fxIf {
	return &fxIf{fxStmt: fxStmt{idx: idx, kind: ir.StmtIf}, condExpr: condExpr}
}

type fxSwitch struct {
	fxStmt
	sel     ir.Expr
	cases   []ir.SwitchCase
	dfltIdx int
}

func (s *fxSwitch) Selector() ir.Expr         { return s.sel }
func (s *fxSwitch) Cases() []ir.SwitchCase    { return s.cases }
func (s *fxSwitch) DefaultTarget() int        { return s.dfltIdx }

func switchStmt(idx int, sel ir.Expr, dflt int, cases ...ir.SwitchCase) *fxSwitch {
	return &fxSwitch{fxStmt: fxStmt{idx: idx, kind: ir.StmtSwitch}, sel: sel, cases: cases, dfltIdx: dflt}
}

type fxOther struct{ fxStmt }

func otherStmt(idx int) *fxOther {
	return &fxOther{fxStmt{idx: idx, kind: ir.StmtOther}}
}

type fxInvoke struct {
	fxStmt
}

// fxCFG is a hand-built CFG fixture; see constprop's fixture for rationale.
type fxCFG struct {
	entry, exit ir.Stmt
	nodes       []ir.Stmt
	succs       map[ir.Stmt][]ir.Stmt
}

func (g *fxCFG) Entry() ir.Stmt            { return g.entry }
func (g *fxCFG) Exit() ir.Stmt             { return g.exit }
func (g *fxCFG) Nodes() []ir.Stmt          { return g.nodes }
func (g *fxCFG) Succs(s ir.Stmt) []ir.Stmt { return g.succs[s] }

func chain(stmts ...ir.Stmt) map[ir.Stmt][]ir.Stmt {
	succs := make(map[ir.Stmt][]ir.Stmt)
	for i := 0; i < len(stmts)-1; i++ {
		succs[stmts[i]] = []ir.Stmt{stmts[i+1]}
	}
	return succs
}

type fxMethod struct {
	sig   string
	stmts []ir.Stmt
}

func (m *fxMethod) Signature() string        { return m.sig }
func (m *fxMethod) DeclaringClass() ir.Class { return nil }
func (m *fxMethod) IsAbstract() bool         { return false }
func (m *fxMethod) Receiver() (ir.Var, bool) { return nil, false }
func (m *fxMethod) Params() []ir.Var         { return nil }
func (m *fxMethod) Returns() []ir.Var        { return nil }
func (m *fxMethod) Stmts() []ir.Stmt         { return m.stmts }

func wireMethod(stmts []ir.Stmt) *fxMethod {
	m := &fxMethod{stmts: stmts}
	for _, s := range stmts {
		s.(methodSetter).setMethod(m)
	}
	return m
}

// fxCP is a canned constprop.Result-equivalent: a fixed IN fact per stmt.
type fxCP struct {
	in map[ir.Stmt]*constprop.Fact
}

func (c *fxCP) InFact(s ir.Stmt) *constprop.Fact {
	if f, ok := c.in[s]; ok {
		return f
	}
	return constprop.NewFact()
}

func factOf(vals map[ir.Var]int32) *constprop.Fact {
	f := constprop.NewFact()
	for v, k := range vals {
		f.Set(v, lattice.Const(k))
	}
	return f
}

// fxLive is a canned live.Result: a fixed OUT live-set per stmt.
type fxLive struct {
	out map[ir.Stmt]ptset.Set[ir.Var]
}

func (l *fxLive) OutFact(s ir.Stmt) ptset.Set[ir.Var] {
	if s2, ok := l.out[s]; ok {
		return s2
	}
	return ptset.New[ir.Var]()
}
