// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fatal holds the one error type every fixpoint in this module
// raises when a collaborator violates an invariant it was supposed to
// guarantee — a malformed CFG, a signature that should exist but doesn't.
// These are bugs in a collaborator, not in the program being analyzed, and
// are never recovered from inside a solve() loop (spec §7).
package fatal

import "golang.org/x/xerrors"

// Error is a fatal analysis exception: the cause is always a violated
// invariant the caller (a hierarchy, a CFG, an IR) was contractually bound
// to uphold.
type Error struct {
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// New reports a fatal condition with no underlying cause.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Wrap reports a fatal condition caused by err, preserving it for
// errors.As/errors.Is.
func Wrap(msg string, err error) *Error {
	return &Error{msg: msg, cause: xerrors.Errorf("%s: %w", msg, err)}
}
