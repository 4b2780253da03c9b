// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap states the contract the points-to solvers consume from the
// heap abstraction. The heap model itself — mapping allocation sites to
// abstract objects — is an external collaborator (spec §1, §6).
package heap

import "github.com/aspartame4990/whole-program-analysis/ir"

// Obj is an abstract object: the identity the heap model hands back for an
// allocation site. Obj equality is whatever the heap model's Go equality
// gives us (spec §3: "two obj identities are equal iff the heap model
// returned the same identity"), so concrete implementations should be
// comparable (a pointer, or a comparable struct of site + synthetic tag).
type Obj interface {
	// Type is the concrete class this object is an instance of; dispatch
	// against a receiver's points-to set resolves against this, not the
	// declared type of the variable holding it (spec §4.6).
	Type() ir.Class
}

// Model mints (or looks up) the Obj for an allocation site. It must be
// deterministic: the same New statement always yields the same Obj
// (spec §6).
type Model interface {
	Obj(site ir.NewStmt) Obj
}
