// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/quietbay/ordpool/pool"
)

// Item - an entry stored in a tree, owned by the caller
//
// Compare orders entries: negative when the receiver sorts before the
// argument, positive when after, zero when the keys are equal.
// Key-equal entries share one node in insertion order.  Removal and
// containment match by instance identity, so entries should be
// pointers and the same instance must not be inserted again while
// still present.  The tree never copies or frees entry memory.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - one pool block
//
// a block serves either as a structural node of the tree or as a link
// chaining one key-equal entry to its owning node; both uses draw from
// the same pool so exactly one block is consumed per live entry
type Node struct {
	left       *Node // left sub-tree
	right      *Node // right sub-tree
	up         *Node // points to parent node
	entry      Item  // primary entry, defines the node's key
	qhead      *Node // oldest queued key-equal entry
	qtail      *Node // newest queued key-equal entry
	qnext      *Node // chain link when this block is queued
	balance    int   // -1, 0, +1
	leftNodes  int
	rightNodes int
	ref        pool.Ref // owning pool slot, needed to free
}

// Pool - the fixed-capacity allocator backing one or more trees
//
// the capacity bounds the combined number of live entries across all
// trees sharing the pool
type Pool = pool.Pool[Node]

// NewPool - create a block pool sized for tree nodes
func NewPool(capacity int) *Pool {
	return pool.New[Node](capacity)
}

// allocate one block; the pool hands it out already cleared
func (tree *Tree) newNode(entry Item) (*Node, error) {
	ref, p, err := tree.pool.Allocate()
	if nil != err {
		return nil, err
	}
	p.entry = entry
	p.ref = ref
	return p, nil
}

// reclaim a block; the pool clears it for reuse
func (tree *Tree) freeNode(p *Node) {
	tree.pool.Free(p.ref)
}
