// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"github.com/quietbay/ordpool/fault"
)

// Ref - stable handle for one allocated block within its pool
type Ref int32

// marks the end of the free list and an unallocated handle
const nilRef Ref = -1

// Pool - holds the arena and the free list
//
// the block size is fixed by the type parameter and the block count is
// fixed at creation
type Pool[T any] struct {
	arena []T
	next  []Ref // free list links, parallel to arena
	free  Ref   // head of the free list
	used  int
}

// New - create a pool with a fixed number of blocks
//
// a capacity below one yields a pool that is permanently exhausted
func New[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool[T]{
		arena: make([]T, capacity),
		next:  make([]Ref, capacity),
		free:  nilRef,
		used:  0,
	}
	for i := capacity - 1; i >= 0; i -= 1 {
		p.next[i] = p.free
		p.free = Ref(i)
	}
	return p
}

// Allocate - pop one zeroed block from the free list
//
// returns fault.ErrPoolExhausted when all blocks are in use; the pool
// never grows to satisfy a request
func (p *Pool[T]) Allocate() (Ref, *T, error) {
	if nilRef == p.free {
		return nilRef, nil, fault.ErrPoolExhausted
	}
	r := p.free
	p.free = p.next[r]
	p.next[r] = nilRef
	p.used += 1
	return r, &p.arena[r], nil
}

// Get - access the block for a handle
//
// the arena never moves, so the returned pointer stays valid until the
// block is freed
func (p *Pool[T]) Get(r Ref) *T {
	return &p.arena[r]
}

// Free - clear a block and push it back onto the free list
func (p *Pool[T]) Free(r Ref) {
	var zero T
	p.arena[r] = zero
	p.next[r] = p.free
	p.free = r
	p.used -= 1
}

// Used - number of blocks currently allocated
func (p *Pool[T]) Used() int {
	return p.used
}

// Capacity - the fixed number of blocks in the arena
func (p *Pool[T]) Capacity() int {
	return len(p.arena)
}

// Available - number of blocks remaining on the free list
func (p *Pool[T]) Available() int {
	return len(p.arena) - p.used
}
