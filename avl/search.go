// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node matching a key
//
// also returns the zero-based rank of the key over the distinct keys
// currently in the tree, or -1 when the key is absent.  any key-equal
// item can be used as the probe
func (tree *Tree) Search(key Item) (*Node, int) {
	return search(key, tree.root, 0)
}

func search(key Item, tree *Node, index int) (*Node, int) {
	if nil == tree {
		return nil, -1
	}

	switch tree.entry.Compare(key) {
	case +1: // tree.entry > key
		return search(key, tree.left, index)
	case -1: // tree.entry < key
		return search(key, tree.right, index+tree.leftNodes+1)
	default:
		return tree, index + tree.leftNodes
	}
}

// Contains - true iff this specific entry instance is in the tree
//
// descends by key then matches by identity against the node's primary
// entry and its queue; a value-equal but distinct instance is not a
// match
func (tree *Tree) Contains(entry Item) bool {
	p := tree.root
	for nil != p {
		switch p.entry.Compare(entry) {
		case +1:
			p = p.left
		case -1:
			p = p.right
		default:
			if p.entry == entry {
				return true
			}
			for link := p.qhead; nil != link; link = link.qnext {
				if link.entry == entry {
					return true
				}
			}
			return false
		}
	}
	return false
}
