// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constprop is the intraprocedural constant-propagation dataflow
// (spec §4.2): a forward monotone-framework analysis over lattice.Value,
// driven by whatever worklist/round-robin solver the caller chooses
// (AbstractDataflowAnalysis-equivalent, out of scope per spec §1/§9).
package constprop

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aspartame4990/whole-program-analysis/ir"
	"github.com/aspartame4990/whole-program-analysis/lattice"
)

// Fact maps variables to lattice values. A variable absent from the map is
// implicitly UNDEF (spec §3); Set canonicalizes by deleting UNDEF bindings
// so two Facts with the same observable content always compare map-equal.
type Fact struct {
	m map[ir.Var]lattice.Value
}

// NewFact returns the empty fact (every variable UNDEF).
func NewFact() *Fact {
	return &Fact{m: make(map[ir.Var]lattice.Value)}
}

// Get returns v's binding, or UNDEF if v is not present.
func (f *Fact) Get(v ir.Var) lattice.Value {
	if val, ok := f.m[v]; ok {
		return val
	}
	return lattice.Undef()
}

// Set binds v to val, or removes the binding if val is UNDEF.
func (f *Fact) Set(v ir.Var, val lattice.Value) {
	if val.IsUndef() {
		delete(f.m, v)
		return
	}
	f.m[v] = val
}

// Copy returns a deep copy (spec §3: "Copy is deep").
func (f *Fact) Copy() *Fact {
	cp := &Fact{m: make(map[ir.Var]lattice.Value, len(f.m))}
	for v, val := range f.m {
		cp.m[v] = val
	}
	return cp
}

// assign replaces f's bindings with other's, without allocating a new map
// header — used by Transfer to implement "copy in into out" in place.
func (f *Fact) assign(other *Fact) {
	for k := range f.m {
		delete(f.m, k)
	}
	for v, val := range other.m {
		f.m[v] = val
	}
}

// Equal implements spec §3's fact equality: equal iff, for every variable
// present in either fact, the retrieved value (UNDEF if absent) agrees.
// Because Set keeps the map canonical (no UNDEF entries), map equality
// suffices.
func (f *Fact) Equal(o *Fact) bool {
	if len(f.m) != len(o.m) {
		return false
	}
	for v, val := range f.m {
		ov, ok := o.m[v]
		if !ok || !val.Equal(ov) {
			return false
		}
	}
	return true
}

// MeetInto implements meet_into(src=f, dst): for every variable present in
// either fact, dst[v] is replaced by meet(f[v], dst[v]) (spec §4.2).
func (f *Fact) MeetInto(dst *Fact) {
	for v, val := range f.m {
		dst.Set(v, lattice.Meet(val, dst.Get(v)))
	}
}

// Vars returns the variables with a non-UNDEF binding, for tests and
// tracing only.
func (f *Fact) Vars() []ir.Var {
	out := make([]ir.Var, 0, len(f.m))
	for v := range f.m {
		out = append(out, v)
	}
	return out
}

// String is a debugging aid only; output order is sorted by name so traces
// are reproducible.
func (f *Fact) String() string {
	names := make([]string, 0, len(f.m))
	byName := make(map[string]lattice.Value, len(f.m))
	for v, val := range f.m {
		names = append(names, v.Name())
		byName[v.Name()] = val
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s=%v", n, byName[n])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
