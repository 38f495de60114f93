// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int   // live entries, including queued key-equal ones
	nodes int   // structural nodes, one per distinct live key
	pool  *Pool // injected allocator, possibly shared between trees
	hint  int   // expected maximum entries, diagnostics only
}

// New - create an initially empty tree drawing its blocks from pool
func New(pool *Pool) *Tree {
	return &Tree{
		root:  nil,
		count: 0,
		pool:  pool,
	}
}

// NewWithHint - like New but record the expected maximum number of
// entries
//
// the hint is reported by diagnostics and never enforced
func NewWithHint(pool *Pool, hint int) *Tree {
	tree := New(pool)
	tree.hint = hint
	return tree
}

// IsEmpty - true if tree contains no entries
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of live entries currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Nodes - number of structural nodes currently in the tree
func (tree *Tree) Nodes() int {
	return tree.nodes
}

// Hint - the expected maximum entry count, zero when not set
func (tree *Tree) Hint() int {
	return tree.hint
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Item - read the primary entry from a node
func (p *Node) Item() Item {
	return p.entry
}

// QueueLength - number of additional key-equal entries queued on a node
func (p *Node) QueueLength() int {
	n := 0
	for link := p.qhead; nil != link; link = link.qnext {
		n += 1
	}
	return n
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
