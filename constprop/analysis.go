// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constprop

import (
	"fmt"
	"io"

	"github.com/aspartame4990/whole-program-analysis/cfg"
	"github.com/aspartame4990/whole-program-analysis/ir"
)

// Result is the per-statement IN/OUT facts produced by Analyze, the
// "DataflowResult" of spec §6.
type Result struct {
	in, out map[ir.Stmt]*Fact
}

// InFact returns the IN fact computed for stmt.
func (r *Result) InFact(stmt ir.Stmt) *Fact { return r.in[stmt] }

// OutFact returns the OUT fact computed for stmt.
func (r *Result) OutFact(stmt ir.Stmt) *Fact { return r.out[stmt] }

// Analysis runs the constant-propagation dataflow over one method's CFG.
// Spec §9 treats the worklist/round-robin driver as a pluggable detail
// ("AbstractDataflowAnalysis is not part of the core"); this is the
// module's reference driver (deadcode.Analyze takes whatever IN facts its
// caller supplies and does not run it itself), a plain chaotic-iteration
// solver with no ordering requirement beyond
// "IN-facts are recomputed from predecessors' OUTs until nothing changes".
type Analysis struct {
	Method ir.Method
	CFG    cfg.Graph
	Log    io.Writer
}

// Analyze computes the fixpoint and returns the IN/OUT facts for every
// statement in a.CFG, including its synthetic entry and exit.
func (a *Analysis) Analyze() *Result {
	nodes := a.CFG.Nodes()
	preds := predecessors(a.CFG, nodes)

	r := &Result{in: make(map[ir.Stmt]*Fact), out: make(map[ir.Stmt]*Fact)}
	for _, s := range nodes {
		r.in[s] = NewFact()
		r.out[s] = NewFact()
	}
	r.out[a.CFG.Entry()] = BoundaryFact(a.Method)

	changed := true
	for changed {
		changed = false
		for _, s := range nodes {
			if s == a.CFG.Entry() {
				continue
			}
			in := NewFact()
			for _, p := range preds[s] {
				r.out[p].MeetInto(in)
			}
			r.in[s] = in

			if Transfer(s, in, r.out[s]) {
				changed = true
			}
			if a.Log != nil {
				fmt.Fprintf(a.Log, "constprop: stmt#%d in=%v out=%v\n", s.Index(), in, r.out[s])
			}
		}
	}
	return r
}

func predecessors(g cfg.Graph, nodes []ir.Stmt) map[ir.Stmt][]ir.Stmt {
	preds := make(map[ir.Stmt][]ir.Stmt, len(nodes))
	for _, s := range nodes {
		for _, succ := range g.Succs(s) {
			preds[succ] = append(preds[succ], s)
		}
	}
	return preds
}
