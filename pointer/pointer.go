// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointer is the context-insensitive whole-program points-to
// analysis (spec §4.5–§4.6): the pointer flow graph, its worklist, and the
// on-the-fly call graph that emerges while solving.
package pointer

import (
	"github.com/aspartame4990/whole-program-analysis/heap"
	"github.com/aspartame4990/whole-program-analysis/ir"
)

// Kind discriminates the four pointer shapes of spec §3.
type Kind int

const (
	KindVar Kind = iota
	KindStaticField
	KindInstanceField
	KindArrayIndex
)

// Pointer is one of {VarPtr(var), StaticFieldPtr(field),
// InstanceFieldPtr(obj, field), ArrayIndexPtr(obj)} (spec §3). It is a
// plain comparable struct rather than an arena index (spec §9's suggested
// representation): Go's map already gives "same key ⇒ same identity" for
// free, so there is nothing an integer handle buys here that the struct
// itself doesn't already provide as a map key.
type Pointer struct {
	kind  Kind
	v     ir.Var
	field ir.Field
	obj   heap.Obj
}

func VarPtr(v ir.Var) Pointer { return Pointer{kind: KindVar, v: v} }

func StaticFieldPtr(f ir.Field) Pointer { return Pointer{kind: KindStaticField, field: f} }

func InstanceFieldPtr(o heap.Obj, f ir.Field) Pointer {
	return Pointer{kind: KindInstanceField, obj: o, field: f}
}

func ArrayIndexPtr(o heap.Obj) Pointer { return Pointer{kind: KindArrayIndex, obj: o} }

func (p Pointer) Kind() Kind { return p.kind }

// Var returns p's variable; only meaningful when p.Kind() == KindVar.
func (p Pointer) Var() ir.Var { return p.v }

// Field returns p's field; only meaningful for KindStaticField/KindInstanceField.
func (p Pointer) Field() ir.Field { return p.field }

// Obj returns p's base object; only meaningful for KindInstanceField/KindArrayIndex.
func (p Pointer) Obj() heap.Obj { return p.obj }

func (p Pointer) String() string {
	switch p.kind {
	case KindVar:
		return p.v.Name()
	case KindStaticField:
		return "static:" + p.field.Name()
	case KindInstanceField:
		return "field:" + p.field.Name()
	default:
		return "array-index"
	}
}
