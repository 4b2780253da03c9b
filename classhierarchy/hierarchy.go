// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classhierarchy states the contract the CHA resolver (cha) and the
// points-to solvers consume from the class hierarchy. The hierarchy itself —
// the subclass/sub-interface/implementor tables — is an external
// collaborator (spec §1); this package only says what it must answer.
package classhierarchy

import "github.com/aspartame4990/whole-program-analysis/ir"

// Hierarchy answers the structural queries CHA's downward-closure walks
// need. Direct-method-lookup and super_class live on ir.Class itself, since
// dispatch (spec §4.4) only ever walks one class's ancestor chain and never
// needs the whole-hierarchy view.
type Hierarchy interface {
	DirectSubclasses(c ir.Class) []ir.Class
	DirectSubInterfaces(i ir.Class) []ir.Class
	DirectImplementors(i ir.Class) []ir.Class
}
