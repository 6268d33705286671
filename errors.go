// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim

import (
	"errors"

	"code.hybscloud.com/iox"
)

// Usage errors raised synchronously at the call site. All are recoverable
// by the caller and are never silently discarded.
var (
	// ErrOutOfRange indicates an index beyond the container size or a
	// worker id outside the pool.
	ErrOutOfRange = errors.New("prim: index out of range")

	// ErrUnderflow indicates a remove operation on an empty container.
	ErrUnderflow = errors.New("prim: container underflow")

	// ErrInvalidArgument indicates the empty task sentinel was submitted.
	ErrInvalidArgument = errors.New("prim: invalid argument")

	// ErrPermissionDenied indicates an enqueue on a closed queue.
	// Only observable during pool teardown.
	ErrPermissionDenied = errors.New("prim: operation on closed queue")
)

// ErrWouldBlock indicates a non-blocking operation cannot proceed
// immediately (TaskQueue.TryDequeue on an empty open queue).
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry later (with backoff or yield) rather than propagating the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
