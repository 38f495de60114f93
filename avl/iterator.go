// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Min - the primary entry of the lowest key, nil when the tree is empty
func (tree *Tree) Min() Item {
	p := tree.root.first()
	if nil == p {
		return nil
	}
	return p.entry
}

// Max - the primary entry of the highest key, nil when the tree is empty
//
// when several entries share the highest key the oldest inserted one
// is returned, so callers get a stable FIFO tie-break
func (tree *Tree) Max() Item {
	p := tree.root.last()
	if nil == p {
		return nil
	}
	return p.entry
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	if tree.right == nil {
		entry := tree.entry
		for {
			tree = tree.up
			if tree == nil {
				return nil
			}
			if tree.entry.Compare(entry) == 1 { // tree.entry > entry
				return tree
			}
		}
	}
	return tree.right.first()
}

// Prev - given a node, return the node with the next lowest key value
// or nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left == nil {
		entry := tree.entry
		for {
			tree = tree.up
			if tree == nil {
				return nil
			}
			if -1 == tree.entry.Compare(entry) { // tree.entry < entry
				return tree
			}
		}
	}
	return tree.left.last()
}
