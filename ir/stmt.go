// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// StmtKind discriminates the statement shapes the core cares about
// (spec §6). Shapes it has no opinion about (returns, monitor ops, nops...)
// are folded into StmtOther and descended through unconditionally by both
// dead-code reachability and the points-to translators.
type StmtKind int

const (
	StmtNew StmtKind = iota
	StmtCopy
	StmtLoadField
	StmtStoreField
	StmtLoadArray
	StmtStoreArray
	StmtInvoke
	StmtAssign
	StmtIf
	StmtSwitch
	StmtOther
)

// Stmt is any IR statement, addressable by its source index (used for
// ordering the dead-statement set, spec §4.3) and owned by exactly one
// Method (used for the O(1) reachability test, spec §4.6/§9).
type Stmt interface {
	Index() int
	Kind() StmtKind
	Method() Method
}

// Definition is implemented by every statement that writes a local variable:
// New, Copy, LoadField, LoadArray and Assign. RHS normalizes the
// kind-specific right-hand side into a single Expr so constprop.Evaluate can
// be applied uniformly (spec §4.2: "set out[lv] = evaluate(rhs, in)").
type Definition interface {
	Stmt
	LValue() Var
	RHS() Expr
}

// NewStmt is `lv = new T`.
type NewStmt interface {
	Definition
	NewExpr() NewExpr
}

// CopyStmt is `lv = y`.
type CopyStmt interface {
	Definition
	RValue() Var
}

// AssignStmt is `lv = <arithmetic/condition/shift/bitwise expr>`.
type AssignStmt interface {
	Definition
}

// FieldAccessStmt is shared shape for field loads and stores.
type FieldAccessStmt interface {
	Stmt
	Field() Field
	// Base returns the receiver variable; ok is false for a static field.
	Base() (Var, bool)
}

// LoadFieldStmt is `lv = base.f` or `lv = C.f`.
type LoadFieldStmt interface {
	Definition
	FieldAccessStmt
}

// StoreFieldStmt is `base.f = y` or `C.f = y`.
type StoreFieldStmt interface {
	Stmt
	FieldAccessStmt
	RValue() Var
}

// ArrayAccessStmt is shared shape for array loads and stores.
type ArrayAccessStmt interface {
	Stmt
	Base() Var
}

// LoadArrayStmt is `lv = base[*]`.
type LoadArrayStmt interface {
	Definition
	ArrayAccessStmt
}

// StoreArrayStmt is `base[*] = y`.
type StoreArrayStmt interface {
	Stmt
	ArrayAccessStmt
	RValue() Var
}

// InvokeStmt is a call, static or instance. Receiver is absent for static
// calls; LValue is absent when the call's result is discarded.
type InvokeStmt interface {
	Stmt
	MethodRef() MethodRef
	Receiver() (Var, bool)
	Args() []Var
	LValue() (Var, bool)
}

// IfStmt has exactly two CFG successors: cfg.Graph.Succs returns
// [takenTarget, fallThroughTarget] for it (spec §4.3 invariant).
type IfStmt interface {
	Stmt
	Condition() Expr
}

// SwitchCase pairs a case constant with the index of its target statement.
type SwitchCase struct {
	Value  int32
	Target int
}

// SwitchStmt dispatches on an integer selector.
type SwitchStmt interface {
	Stmt
	Selector() Expr
	Cases() []SwitchCase
	DefaultTarget() int
}
