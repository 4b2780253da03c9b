// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cfg states the contract the dead-code detector consumes from a
// per-method control-flow graph. The CFG builder itself is consumed as an
// already-computed result (spec §1, §6); this module never constructs one.
package cfg

import "github.com/aspartame4990/whole-program-analysis/ir"

// Graph is one method's control-flow graph.
type Graph interface {
	Entry() ir.Stmt
	Exit() ir.Stmt
	Nodes() []ir.Stmt

	// Succs returns s's successors. For an ir.IfStmt it is a precondition
	// of spec §4.3 that len(Succs(s)) == 2 and that the order is
	// [takenTarget, fallThroughTarget]; deadcode.Analyze treats any other
	// length as a malformed-CFG fatal error.
	Succs(s ir.Stmt) []ir.Stmt
}
