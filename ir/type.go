// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ir declares the contract the analyses in this module consume from
// the intermediate representation of the analyzed program. The IR itself —
// statements, expressions, the type system, parameter lists — is an external
// collaborator; this package only states what a conforming IR must expose.
package ir

// Kind classifies a Type for the purposes of constant propagation. Only the
// int-holder kinds participate in the constant-propagation lattice; every
// other kind (long, float, double, reference, ...) is opaque to it.
type Kind int

const (
	KindOther Kind = iota
	KindByte
	KindShort
	KindInt
	KindChar
	KindBoolean
	KindLong
	KindFloat
	KindDouble
	KindReference
)

// Type is a static type as seen by the analyses: just enough to classify
// int-holders and to stringify for tracing.
type Type interface {
	Kind() Kind
	String() string
}

// IsIntHolder reports whether t is one of byte, short, int, char, boolean —
// the domain of the constant-propagation lattice (spec §4.2).
func IsIntHolder(t Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case KindByte, KindShort, KindInt, KindChar, KindBoolean:
		return true
	}
	return false
}

// Class is a declared class or interface. Class identity is whatever the IR
// gives us; the analyses never construct a Class, only compare and walk them.
type Class interface {
	Name() string
	IsInterface() bool

	// SuperClass reports the direct superclass, if any. Interfaces and
	// java.lang.Object-equivalents have no superclass.
	SuperClass() (Class, bool)

	// DeclaredMethod looks up a method declared directly on this class
	// (not inherited) by subsignature.
	DeclaredMethod(subsignature string) (Method, bool)
}

// Var is a local variable or formal parameter. The back-reference accessors
// let the points-to solver find, in amortized O(1), every statement that
// uses a variable as a base pointer or receiver — the source maintains these
// tables at IR-construction time (spec §6, §9).
type Var interface {
	Name() string
	Type() Type

	StoreFields() []StoreFieldStmt
	LoadFields() []LoadFieldStmt
	StoreArrays() []StoreArrayStmt
	LoadArrays() []LoadArrayStmt
	Invokes() []InvokeStmt
}

// Field is a static or instance field.
type Field interface {
	Name() string
	IsStatic() bool
}

// CallKind is the dispatch discipline of a call site (spec §3, §4.4).
type CallKind int

const (
	CallStatic CallKind = iota
	CallSpecial
	CallVirtual
	CallInterface
)

func (k CallKind) String() string {
	switch k {
	case CallStatic:
		return "static"
	case CallSpecial:
		return "special"
	case CallVirtual:
		return "virtual"
	case CallInterface:
		return "interface"
	default:
		return "other"
	}
}

// MethodRef is the statically-declared reference at a call site, before
// dispatch resolves it to one or more concrete Methods.
type MethodRef interface {
	Subsignature() string
	DeclaringClass() Class
	Kind() CallKind
}

// Method is a declared method or constructor.
type Method interface {
	Signature() string
	DeclaringClass() Class
	IsAbstract() bool

	// Receiver is the implicit "this" variable; absent for static methods.
	Receiver() (Var, bool)
	Params() []Var
	Returns() []Var

	// Stmts lists every statement in the method body in source order,
	// including the CFG's synthetic entry/exit markers.
	Stmts() []Stmt
}
