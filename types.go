// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim

// Task is an opaque deferred unit of work executed by a Pool worker.
//
// A nil Task is the empty sentinel. It is rejected by enqueue operations
// with ErrInvalidArgument, and returned by TaskQueue.Dequeue as the
// termination signal once the queue is closed and drained.
type Task func()

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
