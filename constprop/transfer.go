// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constprop

import (
	"github.com/aspartame4990/whole-program-analysis/ir"
	"github.com/aspartame4990/whole-program-analysis/lattice"
)

// Transfer implements spec §4.2's transfer(stmt, in, out): copy in into
// out, then, if stmt defines an int-holder variable, overwrite its binding
// with evaluate(rhs, in). It mutates out in place and reports whether out
// changed, the signal an outer worklist uses to decide whether to
// re-enqueue stmt's successors.
//
// ir.InvokeStmt is deliberately not an ir.Definition (a call's LValue is
// never itself evaluable), but an int-holder call result still needs a
// binding: left untouched, it would keep whatever constant the variable
// held before the call, which is unsound once the call can return anything.
// It gets the same NAC treatment as any other unmodeled expression
// (spec §4.2's "unmodeled ⇒ NAC" rule).
func Transfer(stmt ir.Stmt, in, out *Fact) bool {
	before := out.Copy()
	out.assign(in)

	switch s := stmt.(type) {
	case ir.Definition:
		lv := s.LValue()
		if ir.IsIntHolder(lv.Type()) {
			out.Set(lv, Evaluate(s.RHS(), in))
		}
	case ir.InvokeStmt:
		if lv, ok := s.LValue(); ok && ir.IsIntHolder(lv.Type()) {
			out.Set(lv, lattice.Nac())
		}
	}

	return !out.Equal(before)
}

// BoundaryFact implements spec §4.2's entry OUT boundary: every formal
// parameter (and the implicit receiver, which is a reference type and so
// never binds) whose static type is an int-holder starts at NAC; every
// other variable is absent (UNDEF).
func BoundaryFact(m ir.Method) *Fact {
	f := NewFact()
	for _, p := range m.Params() {
		if ir.IsIntHolder(p.Type()) {
			f.Set(p, lattice.Nac())
		}
	}
	return f
}
