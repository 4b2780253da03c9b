// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lattice is the abstract value lattice constant propagation runs
// over: the three-point {UNDEF, CONST(k), NAC} lattice of spec §3–§4.1.
package lattice

import "fmt"

type kind int

const (
	undef kind = iota
	constant
	nac
)

// Value is a point in the lattice. The zero Value is UNDEF.
type Value struct {
	k kind
	c int32
}

// Undef is the bottom of the lattice.
func Undef() Value { return Value{k: undef} }

// Nac ("not a constant") is the top of the lattice.
func Nac() Value { return Value{k: nac} }

// Const wraps a known 32-bit value.
func Const(v int32) Value { return Value{k: constant, c: v} }

func (v Value) IsUndef() bool { return v.k == undef }
func (v Value) IsNac() bool   { return v.k == nac }
func (v Value) IsConst() bool { return v.k == constant }

// GetConst returns the wrapped value and true iff v.IsConst(). Calling it on
// a non-CONST value returns (0, false) rather than the spec's "undefined
// behavior" — Go has no cheaper way to express a documented precondition
// than making the failure mode explicit and checkable.
func (v Value) GetConst() (int32, bool) {
	if v.k != constant {
		return 0, false
	}
	return v.c, true
}

// MustConst returns the wrapped constant, panicking if v is not CONST.
// Callers that have already checked IsConst should prefer it for brevity.
func (v Value) MustConst() int32 {
	if v.k != constant {
		panic(fmt.Sprintf("lattice: MustConst on non-constant value %v", v))
	}
	return v.c
}

// Equal is structural equality: two UNDEFs are equal, two NACs are equal,
// two CONSTs are equal iff their payloads match.
func (v Value) Equal(o Value) bool {
	if v.k != o.k {
		return false
	}
	return v.k != constant || v.c == o.c
}

// Meet computes a ∧ b per spec §3: NAC∧x=NAC; UNDEF∧x=x;
// CONST(a)∧CONST(b)=CONST(a) if a=b else NAC. It is commutative,
// associative and idempotent.
func Meet(a, b Value) Value {
	if a.IsNac() || b.IsNac() {
		return Nac()
	}
	if a.IsUndef() {
		return b
	}
	if b.IsUndef() {
		return a
	}
	// both CONST
	if a.c == b.c {
		return a
	}
	return Nac()
}

func (v Value) String() string {
	switch v.k {
	case undef:
		return "UNDEF"
	case nac:
		return "NAC"
	default:
		return fmt.Sprintf("CONST(%d)", v.c)
	}
}
