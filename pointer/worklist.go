// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointer

import (
	"github.com/aspartame4990/whole-program-analysis/heap"
	"github.com/aspartame4990/whole-program-analysis/ptset"
)

type workEntry struct {
	ptr Pointer
	pts ptset.Set[heap.Obj]
}

// Worklist is the FIFO queue of (pointer, pts-to-propagate) pairs of
// spec §3/§5. Entries may be coalesced or duplicated; propagation is
// idempotent, so a plain FIFO slice is correct without any dedup logic.
type Worklist struct {
	q []workEntry
}

// NewWorklist returns an empty worklist.
func NewWorklist() *Worklist { return &Worklist{} }

// Add enqueues (ptr, pts); a nil/empty pts is dropped since it can never
// grow any PTS (keeps the queue from filling with no-op entries).
func (w *Worklist) Add(ptr Pointer, pts ptset.Set[heap.Obj]) {
	if len(pts) == 0 {
		return
	}
	w.q = append(w.q, workEntry{ptr, pts})
}

// Pop removes and returns the oldest entry.
func (w *Worklist) Pop() (Pointer, ptset.Set[heap.Obj], bool) {
	if len(w.q) == 0 {
		return Pointer{}, nil, false
	}
	e := w.q[0]
	w.q = w.q[1:]
	return e.ptr, e.pts, true
}

// Empty reports whether the worklist has no pending entries.
func (w *Worklist) Empty() bool { return len(w.q) == 0 }
