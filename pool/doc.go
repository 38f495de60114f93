// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pool - a fixed-capacity allocator for fixed-size blocks
//
// The whole arena is reserved in one allocation when the pool is
// created and never grows afterwards, so the worst-case memory use of
// anything built on a pool is known up front.  Allocate and free are
// O(1) over a free list of block indices.  When every block is in use
// Allocate fails; there is deliberately no fallback to the runtime
// allocator.
//
// Blocks are addressed by stable Ref handles so that client data
// structures can be rebuilt or relinked without dangling pointers.
// Double free and use of a stale handle are caller bugs and are not
// detected.
//
// Note: an individual pool is not thread safe, so either access only
//
//	in a single go routine or use mutex/rwmutex to restrict
//	access.
package pool
