// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import "github.com/aspartame4990/whole-program-analysis/ptset"

type workEntry struct {
	ptr Pointer
	pts ptset.Set[CSObj]
}

// Worklist is package cs's FIFO queue of (pointer, pts-to-propagate) pairs.
type Worklist struct {
	q []workEntry
}

// NewWorklist returns an empty worklist.
func NewWorklist() *Worklist { return &Worklist{} }

// Add enqueues (ptr, pts); an empty pts is dropped.
func (w *Worklist) Add(ptr Pointer, pts ptset.Set[CSObj]) {
	if len(pts) == 0 {
		return
	}
	w.q = append(w.q, workEntry{ptr, pts})
}

// Pop removes and returns the oldest entry.
func (w *Worklist) Pop() (Pointer, ptset.Set[CSObj], bool) {
	if len(w.q) == 0 {
		return Pointer{}, nil, false
	}
	e := w.q[0]
	w.q = w.q[1:]
	return e.ptr, e.pts, true
}

// Empty reports whether the worklist has no pending entries.
func (w *Worklist) Empty() bool { return len(w.q) == 0 }
