// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add an entry to the tree
//
// a new leaf node is created when the key is not already present,
// otherwise the entry is appended to the owning node's queue and the
// tree shape is untouched.  either path consumes exactly one pool
// block; when the pool is exhausted the error is returned and the
// tree is left exactly as it was
func (tree *Tree) Insert(entry Item) error {
	root, added, _, err := tree.insert(entry, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	tree.count += 1
	if added {
		tree.nodes += 1
	}
	return nil
}

// internal routine for insert
//
// the block allocation is the first mutating step on every path, so a
// pool failure propagates up before anything has been relinked
func (tree *Tree) insert(entry Item, p *Node) (*Node, bool, bool, error) {
	if nil == p { // insert new node
		q, err := tree.newNode(entry)
		if nil != err {
			return nil, false, false, err
		}
		return q, true, true, nil
	}
	added := false
	h := false
	switch p.entry.Compare(entry) {
	case +1: // p.entry > entry
		q, a, grown, err := tree.insert(entry, p.left)
		if nil != err {
			return p, false, false, err
		}
		p.left = q
		added = a
		h = grown
		if added {
			p.leftNodes += 1
		}
		if h {
			if nil != p.left {
				p.left.up = p
			}

			// left branch has grown
			if 1 == p.balance {
				p.balance = 0
				h = false
			} else if 0 == p.balance {
				p.balance = -1
			} else { // balance == -1, rebalance
				p1 := p.left
				if -1 == p1.balance {
					// single LL rotation
					p.left = p1.right
					p1.right = p

					p.balance = 0

					nn := 1 + p1.rightNodes + p.rightNodes
					p.leftNodes = p1.rightNodes
					p1.rightNodes = nn

					p1.up = p.up
					p.up = p1
					if nil != p.left {
						p.left.up = p
					}

					p = p1
				} else {
					// double LR rotation
					p2 := p1.right
					p1.right = p2.left
					p2.left = p1
					p.left = p2.right
					p2.right = p
					if -1 == p2.balance {
						p.balance = 1
					} else {
						p.balance = 0
					}
					if +1 == p2.balance {
						p1.balance = -1
					} else {
						p1.balance = 0
					}

					nl := 1 + p1.leftNodes + p2.leftNodes
					nr := 1 + p2.rightNodes + p.rightNodes

					p1.rightNodes = p2.leftNodes
					p.leftNodes = p2.rightNodes

					p2.leftNodes = nl
					p2.rightNodes = nr

					if nil != p.left {
						p.left.up = p
					}
					if nil != p1.right {
						p1.right.up = p1
					}
					p2.up = p.up
					p.up = p2
					p1.up = p2

					p = p2
				}
				p.balance = 0
				h = false
			}
		}
	case -1: // p.entry < entry
		q, a, grown, err := tree.insert(entry, p.right)
		if nil != err {
			return p, false, false, err
		}
		p.right = q
		added = a
		h = grown
		if added {
			p.rightNodes += 1
		}
		if h {
			if nil != p.right {
				p.right.up = p
			}

			// right branch has grown
			if -1 == p.balance {
				p.balance = 0
				h = false
			} else if 0 == p.balance {
				p.balance = 1
			} else { // balance = +1, rebalance
				p1 := p.right
				if 1 == p1.balance {
					// single RR rotation
					p.right = p1.left
					p1.left = p

					p.balance = 0

					nn := 1 + p.leftNodes + p1.leftNodes
					p.rightNodes = p1.leftNodes
					p1.leftNodes = nn

					p1.up = p.up
					p.up = p1
					if nil != p.right {
						p.right.up = p
					}

					p = p1
				} else {
					// double RL rotation
					p2 := p1.left
					p1.left = p2.right
					p2.right = p1
					p.right = p2.left
					p2.left = p
					if +1 == p2.balance {
						p.balance = -1
					} else {
						p.balance = 0
					}
					if -1 == p2.balance {
						p1.balance = 1
					} else {
						p1.balance = 0
					}

					nl := 1 + p.leftNodes + p2.leftNodes
					nr := 1 + p2.rightNodes + p1.rightNodes

					p.rightNodes = p2.leftNodes
					p1.leftNodes = p2.rightNodes

					p2.leftNodes = nl
					p2.rightNodes = nr

					if nil != p.right {
						p.right.up = p
					}
					if nil != p1.left {
						p1.left.up = p1
					}
					p2.up = p.up
					p.up = p2
					p1.up = p2

					p = p2
				}
				p.balance = 0
				h = false
			}
		}
	default: // key already present: append to this node's queue
		link, err := tree.newNode(entry)
		if nil != err {
			return p, false, false, err
		}
		if nil == p.qtail {
			p.qhead = link
		} else {
			p.qtail.qnext = link
		}
		p.qtail = link
	}
	return p, added, h, nil
}
