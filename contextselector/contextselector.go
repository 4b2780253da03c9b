// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contextselector provides the two context-selection strategies
// spec §5's C7 extension names: k-object sensitivity and k-call-site
// sensitivity. Both implement cs.Selector.
package contextselector

import (
	"fmt"
	"strings"

	"github.com/aspartame4990/whole-program-analysis/heap"
	"github.com/aspartame4990/whole-program-analysis/ir"
	"github.com/aspartame4990/whole-program-analysis/pointer/cs"
)

// maxChainLength bounds the representation below; a selector whose K is
// past it behaves as if K were maxChainLength (push clamps the depth).
// Four is generous — published object-sensitivity studies rarely benefit
// past k=2.
const maxChainLength = 4

// chain is a fixed-size, right-aligned, most-recent-last window of up to
// maxChainLength elements. It is a plain Go array (not a slice), so it is
// comparable and safe to store inside the cs.Context interface{} field that
// ends up embedded in map keys throughout the cs solver — exactly the
// property a linked-list or slice representation would not have given us
// for free.
type chain [maxChainLength]interface{}

func (c chain) String() string {
	var parts []string
	for _, e := range c {
		if e == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%v", e))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// push returns the chain obtained by appending elem and keeping only the
// most recent depth elements (depth is the selector's K).
func push(c chain, depth int, elem interface{}) chain {
	if depth <= 0 {
		return chain{}
	}
	if depth > maxChainLength {
		depth = maxChainLength
	}
	var out chain
	for i := 0; i < depth-1; i++ {
		out[i] = c[i+1]
	}
	out[depth-1] = elem
	return out
}

// KObjectSelector is k-object sensitivity: a method's context is the chain
// of the K most recent receiver objects through which it was reached, and a
// newly allocated object's heap context is simply its allocating method's
// own context (spec §5).
type KObjectSelector struct {
	K int
}

func (s KObjectSelector) Empty() cs.Context { return chain{} }

func (s KObjectSelector) SelectHeapContext(caller cs.CSMethod, obj heap.Obj) cs.Context {
	return caller.Ctx
}

// SelectContext leaves the context unchanged for calls that don't dispatch
// on a receiver object (static and special calls): object sensitivity only
// varies with receiver objects, never with call sites.
func (s KObjectSelector) SelectContext(site cs.CSCallSite, callee ir.Method) cs.Context {
	return site.Ctx
}

func (s KObjectSelector) SelectInstanceContext(site cs.CSCallSite, recv cs.CSObj, callee ir.Method) cs.Context {
	heapCtx, _ := recv.HeapCtx.(chain)
	return push(heapCtx, s.K, recv.Obj)
}

// KCallSiteSelector is k-call-site sensitivity: a method's context is the
// chain of the K most recent call sites on the path that reached it,
// regardless of receiver identity (spec §8 scenario S6 when K=1).
type KCallSiteSelector struct {
	K int
}

func (s KCallSiteSelector) Empty() cs.Context { return chain{} }

func (s KCallSiteSelector) SelectHeapContext(caller cs.CSMethod, obj heap.Obj) cs.Context {
	return caller.Ctx
}

func (s KCallSiteSelector) SelectContext(site cs.CSCallSite, callee ir.Method) cs.Context {
	callerCtx, _ := site.Ctx.(chain)
	return push(callerCtx, s.K, site.Call)
}

func (s KCallSiteSelector) SelectInstanceContext(site cs.CSCallSite, recv cs.CSObj, callee ir.Method) cs.Context {
	callerCtx, _ := site.Ctx.(chain)
	return push(callerCtx, s.K, site.Call)
}
