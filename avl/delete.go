// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// delete: tree balancer
func balanceLeft(pp **Node) bool {
	h := true
	p := *pp
	// h; left branch has shrunk
	if -1 == p.balance {
		p.balance = 0
	} else if 0 == p.balance {
		p.balance = 1
		h = false
	} else { // balance = 1, rebalance
		p1 := p.right
		if p1.balance >= 0 {
			// single RR rotation
			p.right = p1.left
			p1.left = p
			if 0 == p1.balance {
				p.balance = 1
				p1.balance = -1
				h = false
			} else {
				p.balance = 0
				p1.balance = 0
			}

			nn := 1 + p.leftNodes + p1.leftNodes
			p.rightNodes = p1.leftNodes
			p1.leftNodes = nn

			p1.up = p.up
			p.up = p1
			if nil != p.right {
				p.right.up = p
			}

			*pp = p1
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
			p2.balance = 0

			nl := 1 + p.leftNodes + p2.leftNodes
			nr := 1 + p2.rightNodes + p1.rightNodes

			p.rightNodes = p2.leftNodes
			p1.leftNodes = p2.rightNodes

			p2.leftNodes = nl
			p2.rightNodes = nr

			p2.up = p.up
			if nil != p.right {
				p.right.up = p
			}
			if nil != p1.left {
				p1.left.up = p1
			}
			p.up = p2
			p1.up = p2

			*pp = p2
		}
	}
	return h
}

// delete: tree balancer
func balanceRight(pp **Node) bool {
	h := true
	p := *pp
	// h; right branch has shrunk
	if 1 == p.balance {
		p.balance = 0
	} else if 0 == p.balance {
		p.balance = -1
		h = false
	} else { // balance = -1, rebalance
		p1 := p.left
		if p1.balance <= 0 {
			// single LL rotation
			p.left = p1.right
			p1.right = p
			if 0 == p1.balance {
				p.balance = -1
				p1.balance = 1
				h = false
			} else {
				p.balance = 0
				p1.balance = 0
			}

			nn := 1 + p1.rightNodes + p.rightNodes
			p.leftNodes = p1.rightNodes
			p1.rightNodes = nn

			p1.up = p.up
			p.up = p1
			if nil != p.left {
				p.left.up = p
			}

			*pp = p1
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
			p2.balance = 0

			nl := 1 + p1.leftNodes + p2.leftNodes
			nr := 1 + p2.rightNodes + p.rightNodes

			p1.rightNodes = p2.leftNodes
			p.leftNodes = p2.rightNodes

			p2.leftNodes = nl
			p2.rightNodes = nr

			p2.up = p.up
			if nil != p.left {
				p.left.up = p
			}
			if nil != p1.right {
				p1.right.up = p1
			}
			p.up = p2
			p1.up = p2

			*pp = p2
		}
	}
	return h
}

// delete: replace a two-child node by the rightmost node of its left
// sub-tree
//
// the replacement node is relinked, not copied, so its entry and its
// queue of key-equal entries travel with it and entry identity is
// preserved across the deletion
func del(qq **Node, rr **Node) bool {
	h := false
	if nil != (*rr).right {
		h = del(qq, &(*rr).right)
		(*rr).rightNodes -= 1
		if h {
			h = balanceRight(rr)
		}
	} else {
		q := *qq
		r := *rr
		rl := r.left
		if nil != rl {
			rl.up = r.up
		}

		if r != q.left {
			r.left = q.left
			r.leftNodes = q.leftNodes - 1
		}
		r.right = q.right
		r.up = q.up
		r.balance = q.balance
		r.rightNodes = q.rightNodes

		if nil != r.right {
			r.right.up = r
		}
		if nil != r.left {
			r.left.up = r
		}

		*qq = r
		*rr = rl

		h = true
	}
	return h
}

// Remove - remove one specific entry from the tree
//
// the entry is located by key order and matched by instance identity,
// either as a node's primary entry or within that node's queue.
// removing an entry that is not present is a silent no-op.  returns
// true when an entry was removed
func (tree *Tree) Remove(entry Item) bool {
	removed, structural, _ := tree.remove(entry, &tree.root)
	if removed {
		tree.count -= 1
	}
	if structural {
		tree.nodes -= 1
	}
	return removed
}

// internal remove routine
//
// second result reports whether a structural node was deleted, as
// opposed to a queue link being spliced out or a primary promotion
func (tree *Tree) remove(entry Item, pp **Node) (bool, bool, bool) {
	if nil == *pp { // entry not in tree
		return false, false, false
	}
	removed := false
	structural := false
	h := false
	switch (*pp).entry.Compare(entry) {
	case +1: // (*pp).entry > entry
		removed, structural, h = tree.remove(entry, &(*pp).left)
		if structural {
			(*pp).leftNodes -= 1
		}
		if h {
			h = balanceLeft(pp)
		}
	case -1: // (*pp).entry < entry
		removed, structural, h = tree.remove(entry, &(*pp).right)
		if structural {
			(*pp).rightNodes -= 1
		}
		if h {
			h = balanceRight(pp)
		}
	default: // matching key: resolve by identity
		q := *pp
		if q.entry == entry {
			if nil != q.qhead {
				// promote the oldest queued entry to primary;
				// the shape is untouched so no rebalancing
				link := q.qhead
				q.entry = link.entry
				q.qhead = link.qnext
				if nil == q.qhead {
					q.qtail = nil
				}
				tree.freeNode(link)
				return true, false, false
			}

			// last entry on this key: delete the node itself
			if nil == q.right {
				if nil != q.left {
					q.left.up = q.up
				}
				*pp = q.left
				h = true
			} else if nil == q.left {
				q.right.up = q.up
				*pp = q.right
				h = true
			} else {
				h = del(pp, &q.left)
				(*pp).left = q.left // p has changed, but q.left has left link value
				if h {
					h = balanceLeft(pp)
				}
			}
			tree.freeNode(q) // return deleted node to pool
			removed = true
			structural = true
		} else {
			// not the primary: splice the instance out of the queue
			var prev *Node
			for link := q.qhead; nil != link; link = link.qnext {
				if link.entry == entry {
					if nil == prev {
						q.qhead = link.qnext
					} else {
						prev.qnext = link.qnext
					}
					if q.qtail == link {
						q.qtail = prev
					}
					tree.freeNode(link)
					removed = true
					break
				}
				prev = link
			}
		}
	}
	return removed, structural, h
}
