// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cha

import (
	"testing"

	"github.com/aspartame4990/whole-program-analysis/ir"
)

type fxClass struct {
	name      string
	iface     bool
	super     ir.Class
	declared  map[string]ir.Method
	subs      []ir.Class
	subIfaces []ir.Class
	impls     []ir.Class
}

func (c *fxClass) Name() string     { return c.name }
func (c *fxClass) IsInterface() bool { return c.iface }
func (c *fxClass) SuperClass() (ir.Class, bool) {
	if c.super == nil {
		return nil, false
	}
	return c.super, true
}
func (c *fxClass) DeclaredMethod(subsig string) (ir.Method, bool) {
	m, ok := c.declared[subsig]
	return m, ok
}

type fxMethod struct {
	sig      string
	class    ir.Class
	abstract bool
}

func (m *fxMethod) Signature() string        { return m.sig }
func (m *fxMethod) DeclaringClass() ir.Class { return m.class }
func (m *fxMethod) IsAbstract() bool         { return m.abstract }
func (m *fxMethod) Receiver() (ir.Var, bool) { return nil, false }
func (m *fxMethod) Params() []ir.Var         { return nil }
func (m *fxMethod) Returns() []ir.Var        { return nil }
func (m *fxMethod) Stmts() []ir.Stmt         { return nil }

type fxHierarchy struct{}

func (fxHierarchy) DirectSubclasses(c ir.Class) []ir.Class    { return c.(*fxClass).subs }
func (fxHierarchy) DirectSubInterfaces(c ir.Class) []ir.Class { return c.(*fxClass).subIfaces }
func (fxHierarchy) DirectImplementors(c ir.Class) []ir.Class  { return c.(*fxClass).impls }

type fxMethodRef struct {
	kind  ir.CallKind
	class ir.Class
	sig   string
}

func (r fxMethodRef) Subsignature() string    { return r.sig }
func (r fxMethodRef) DeclaringClass() ir.Class { return r.class }
func (r fxMethodRef) Kind() ir.CallKind        { return r.kind }

// TestS4VirtualOverAbstract is spec §8 scenario S4:
//
//	class A { void f(){} }
//	abstract class B extends A { abstract void f(); }
//	class C extends B { void f(){} }
//	B b = new C(); b.f();
//
// resolve on the b.f() call site (declared class B) must return {C.f}: A.f
// is pruned because B redeclares f abstractly, and C.f is reached by the
// downward walk from B.
func TestS4VirtualOverAbstract(t *testing.T) {
	a := &fxClass{name: "A", declared: map[string]ir.Method{}}
	aF := &fxMethod{sig: "f", class: a}
	a.declared["f"] = aF

	b := &fxClass{name: "B", super: a, declared: map[string]ir.Method{}}
	bF := &fxMethod{sig: "f", class: b, abstract: true}
	b.declared["f"] = bF

	c := &fxClass{name: "C", super: b, declared: map[string]ir.Method{}}
	cF := &fxMethod{sig: "f", class: c}
	c.declared["f"] = cF

	a.subs = []ir.Class{b}
	b.subs = []ir.Class{c}

	h := fxHierarchy{}

	if _, ok := Dispatch(b, "f"); ok {
		t.Fatalf("Dispatch(B, f) should stop at B's abstract declaration, not fall through to A.f")
	}
	if got, ok := Dispatch(c, "f"); !ok || got != cF {
		t.Fatalf("Dispatch(C, f) = (%v, %v), want (C.f, true)", got, ok)
	}

	targets := Resolve(h, &fxInvokeStmt{ref: fxMethodRef{kind: ir.CallVirtual, class: b, sig: "f"}})
	if len(targets) != 1 || targets[0] != cF {
		t.Errorf("Resolve(virtual b.f()) = %v, want [C.f]", targets)
	}
}

type fxInvokeStmt struct {
	ref ir.MethodRef
}

func (s *fxInvokeStmt) Index() int            { return 0 }
func (s *fxInvokeStmt) Kind() ir.StmtKind     { return ir.StmtInvoke }
func (s *fxInvokeStmt) Method() ir.Method     { return nil }
func (s *fxInvokeStmt) MethodRef() ir.MethodRef { return s.ref }
func (s *fxInvokeStmt) Receiver() (ir.Var, bool) { return nil, true }
func (s *fxInvokeStmt) Args() []ir.Var        { return nil }
func (s *fxInvokeStmt) LValue() (ir.Var, bool) { return nil, false }
