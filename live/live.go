// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package live states the contract the dead-code detector consumes from
// live-variable analysis. Live-variable analysis itself is consumed as an
// already-computed result (spec §1, §6); this module never computes one.
package live

import (
	"github.com/aspartame4990/whole-program-analysis/ir"
	"github.com/aspartame4990/whole-program-analysis/ptset"
)

// Result answers the OUT live-set query dead-code detection needs.
type Result interface {
	OutFact(stmt ir.Stmt) ptset.Set[ir.Var]
}
