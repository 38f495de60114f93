// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txqueue - a deadline-aware transmit queue for CAN style
// frames
//
// Frames are ordered by bus arbitration: the numerically lowest
// identifier transmits first, and frames with equal identifiers keep
// their insertion order.  The queue is backed by a fixed-capacity
// block pool so the worst case memory use is set once by the host
// and never exceeded; when the pool runs dry expired frames are
// dropped to make room before a push is rejected.
//
// Note: a queue is not thread safe; drivers normally run it from a
//
//	single transmit goroutine or under their own lock.
package txqueue
