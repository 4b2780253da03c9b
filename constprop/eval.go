// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constprop

import (
	"github.com/aspartame4990/whole-program-analysis/ir"
	"github.com/aspartame4990/whole-program-analysis/lattice"
)

// Evaluate implements spec §4.2's evaluate(exp, in). Its one documented
// surprise (spec §9, Open Question): for CONST⊘UNDEF with a non-division
// operator, the result is UNDEF even when the CONST operand alone would
// determine an obviously-safe answer (e.g. 0*x). That is intentional — it
// is the behavior the source exhibits, it is sound for monotonicity, and we
// preserve it rather than special-case it away.
func Evaluate(e ir.Expr, in *Fact) lattice.Value {
	switch e.Kind() {
	case ir.ExprIntLit:
		return lattice.Const(e.(ir.IntLit).Value())
	case ir.ExprVar:
		return in.Get(e.(ir.VarExpr).Var())
	case ir.ExprArithmetic, ir.ExprCondition, ir.ExprShift, ir.ExprBitwise:
		return evaluateBinary(e.(ir.BinaryExpr), in)
	default:
		// NewExpr, CastExpr, FieldAccessExpr, ArrayAccessExpr and anything
		// else unmodeled: side-effecting or simply not tracked (spec §7).
		return lattice.Nac()
	}
}

func evaluateBinary(b ir.BinaryExpr, in *Fact) lattice.Value {
	a := in.Get(b.X())
	c := in.Get(b.Y())
	op := b.Op()

	// A CONST(0) divisor traps regardless of the dividend; the only useful
	// abstraction is UNDEF (spec §4.2).
	if (op == ir.OpDiv || op == ir.OpRem) && isZero(c) {
		return lattice.Undef()
	}

	if a.IsConst() && c.IsConst() {
		return evalConstConst(op, a.MustConst(), c.MustConst())
	}
	if a.IsNac() || c.IsNac() {
		return lattice.Nac()
	}
	return lattice.Undef()
}

func isZero(v lattice.Value) bool {
	k, ok := v.GetConst()
	return ok && k == 0
}

// evalConstConst computes x ⊗ y for two known operands under 32-bit
// two's-complement wraparound semantics (spec §4.2). Division/remainder by
// zero never reaches here: evaluateBinary already returned UNDEF for it.
func evalConstConst(op ir.BinOp, x, y int32) lattice.Value {
	switch op {
	case ir.OpAdd:
		return lattice.Const(x + y)
	case ir.OpSub:
		return lattice.Const(x - y)
	case ir.OpMul:
		return lattice.Const(x * y)
	case ir.OpDiv:
		return lattice.Const(x / y)
	case ir.OpRem:
		return lattice.Const(x % y)
	case ir.OpOr:
		return lattice.Const(x | y)
	case ir.OpAnd:
		return lattice.Const(x & y)
	case ir.OpXor:
		return lattice.Const(x ^ y)
	case ir.OpShl:
		return lattice.Const(x << (uint32(y) & 0x1f))
	case ir.OpShr:
		return lattice.Const(x >> (uint32(y) & 0x1f))
	case ir.OpUshr:
		return lattice.Const(int32(uint32(x) >> (uint32(y) & 0x1f)))
	case ir.OpEq:
		return boolConst(x == y)
	case ir.OpNe:
		return boolConst(x != y)
	case ir.OpLt:
		return boolConst(x < y)
	case ir.OpGt:
		return boolConst(x > y)
	case ir.OpLe:
		return boolConst(x <= y)
	case ir.OpGe:
		return boolConst(x >= y)
	default:
		return lattice.Nac()
	}
}

func boolConst(b bool) lattice.Value {
	if b {
		return lattice.Const(1)
	}
	return lattice.Const(0)
}
