// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constprop

import (
	"github.com/aspartame4990/whole-program-analysis/cfg"
	"github.com/aspartame4990/whole-program-analysis/ir"
)

// The fixtures below build tiny literal IR/CFG graphs by hand, in lieu of
// loading real source through a type-checker (this module never runs the Go
// toolchain, let alone a second language's compiler front end).

type fxType struct{ kind ir.Kind }

func (t fxType) Kind() ir.Kind  { return t.kind }
func (t fxType) String() string { return "fxType" }

var intType = fxType{ir.KindInt}
var refType = fxType{ir.KindReference}

type fxVar struct {
	name string
	typ  ir.Type
}

func (v *fxVar) Name() string                       { return v.name }
func (v *fxVar) Type() ir.Type                       { return v.typ }
func (v *fxVar) StoreFields() []ir.StoreFieldStmt    { return nil }
func (v *fxVar) LoadFields() []ir.LoadFieldStmt      { return nil }
func (v *fxVar) StoreArrays() []ir.StoreArrayStmt    { return nil }
func (v *fxVar) LoadArrays() []ir.LoadArrayStmt       { return nil }
func (v *fxVar) Invokes() []ir.InvokeStmt            { return nil }

func newVar(name string) *fxVar { return &fxVar{name: name, typ: intType} }

// --- expressions ---

type fxIntLit int32

func (fxIntLit) Kind() ir.ExprKind  { return ir.ExprIntLit }
func (l fxIntLit) Value() int32     { return int32(l) }

type fxVarExpr struct{ v ir.Var }

func (fxVarExpr) Kind() ir.ExprKind  { return ir.ExprVar }
func (e fxVarExpr) Var() ir.Var      { return e.v }

type fxBinExpr struct {
	op   ir.BinOp
	kind ir.ExprKind
	x, y ir.Var
}

func (e fxBinExpr) Kind() ir.ExprKind { return e.kind }
func (e fxBinExpr) Op() ir.BinOp      { return e.op }
func (e fxBinExpr) X() ir.Var         { return e.x }
func (e fxBinExpr) Y() ir.Var         { return e.y }

func arith(op ir.BinOp, x, y ir.Var) fxBinExpr {
	return fxBinExpr{op: op, kind: ir.ExprArithmetic, x: x, y: y}
}

func cond(op ir.BinOp, x, y ir.Var) fxBinExpr {
	return fxBinExpr{op: op, kind: ir.ExprCondition, x: x, y: y}
}

// --- statements ---

// fxStmt is a generic Definition/If/Other base that concrete fixture
// statements embed.
type fxStmt struct {
	idx    int
	kind   ir.StmtKind
	method ir.Method
}

func (s *fxStmt) Index() int            { return s.idx }
func (s *fxStmt) Kind() ir.StmtKind     { return s.kind }
func (s *fxStmt) Method() ir.Method     { return s.method }
func (s *fxStmt) setMethod(m ir.Method) { s.method = m }

// methodSetter lets fixtures wire up the owning-method back-reference after
// both the statements and the method value exist (they're mutually
// referential: a method lists its statements, a statement points back to
// its owning method for the O(1) reachability test, spec §4.6/§9).
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

type fxOther struct{ fxStmt }

func otherStmt(idx int) *fxOther {
	return &fxOther{fxStmt{idx: idx, kind: ir.StmtOther}}
}

// fxMethodRef is a minimal ir.MethodRef stand-in; fxInvoke never reaches
// cha.Resolve in these tests, so the Class it names is never dereferenced.
type fxMethodRef struct{ sub string }

func (r fxMethodRef) Subsignature() string   { return r.sub }
func (r fxMethodRef) DeclaringClass() ir.Class { return nil }
func (r fxMethodRef) Kind() ir.CallKind      { return ir.CallStatic }

type fxInvoke struct {
	fxStmt
	ref ir.MethodRef
	lv  ir.Var
}

func (s *fxInvoke) MethodRef() ir.MethodRef  { return s.ref }
func (s *fxInvoke) Receiver() (ir.Var, bool) { return nil, false }
func (s *fxInvoke) Args() []ir.Var           { return nil }
func (s *fxInvoke) LValue() (ir.Var, bool) {
	if s.lv == nil {
		return nil, false
	}
	return s.lv, true
}

// invokeStmt builds a call whose result is assigned to lv (nil for a
// discarded result).
func invokeStmt(idx int, lv ir.Var) *fxInvoke {
	return &fxInvoke{
		fxStmt: fxStmt{idx: idx, kind: ir.StmtInvoke},
		ref:    fxMethodRef{sub: "f()I"},
		lv:     lv,
	}
}

// --- CFG ---

type fxCFG struct {
	entry, exit ir.Stmt
	nodes       []ir.Stmt
	succs       map[ir.Stmt][]ir.Stmt
}

func (g *fxCFG) Entry() ir.Stmt            { return g.entry }
func (g *fxCFG) Exit() ir.Stmt             { return g.exit }
func (g *fxCFG) Nodes() []ir.Stmt          { return g.nodes }
func (g *fxCFG) Succs(s ir.Stmt) []ir.Stmt { return g.succs[s] }

var _ cfg.Graph = (*fxCFG)(nil)

type fxMethod struct {
	sig    string
	params []ir.Var
	stmts  []ir.Stmt
}

func (m *fxMethod) Signature() string              { return m.sig }
func (m *fxMethod) DeclaringClass() ir.Class       { return nil }
func (m *fxMethod) IsAbstract() bool               { return false }
func (m *fxMethod) Receiver() (ir.Var, bool)       { return nil, false }
func (m *fxMethod) Params() []ir.Var               { return m.params }
func (m *fxMethod) Returns() []ir.Var              { return nil }
func (m *fxMethod) Stmts() []ir.Stmt               { return m.stmts }

func chain(stmts ...ir.Stmt) map[ir.Stmt][]ir.Stmt {
	succs := make(map[ir.Stmt][]ir.Stmt)
	for i := 0; i < len(stmts)-1; i++ {
		succs[stmts[i]] = []ir.Stmt{stmts[i+1]}
	}
	return succs
}
