// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   up pointer: %v  expected: %v\n",
			p.entry, nodeEntry(p.up), nodeEntry(up))
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// internal: nil-safe entry extraction for diagnostics
func nodeEntry(p *Node) Item {
	if nil == p {
		return nil
	}
	return p.entry
}

// CheckCounts - verify the cached sub-tree node counts and the entry
// and node totals
func (tree *Tree) CheckCounts() bool {
	nodes, entries, ok := checkcounts(tree.root)
	if !ok {
		return false
	}
	if nodes != tree.nodes {
		fmt.Printf("node count: actual: %d  cached: %d\n", nodes, tree.nodes)
		return false
	}
	if entries != tree.count {
		fmt.Printf("entry count: actual: %d  cached: %d\n", entries, tree.count)
		return false
	}
	return true
}

// internal: recount nodes and entries, verifying per-node counters
func checkcounts(p *Node) (int, int, bool) {
	if nil == p {
		return 0, 0, true
	}
	ln, le, ok := checkcounts(p.left)
	if !ok {
		return 0, 0, false
	}
	rn, re, ok := checkcounts(p.right)
	if !ok {
		return 0, 0, false
	}
	if ln != p.leftNodes || rn != p.rightNodes {
		fmt.Printf("fail at node: %v   counts: [%d,%d]  expected: [%d,%d]\n",
			p.entry, p.leftNodes, p.rightNodes, ln, rn)
		return 0, 0, false
	}
	return ln + rn + 1, le + re + 1 + p.QueueLength(), true
}

// CheckBalance - verify the AVL balance condition at every node
//
// recomputes sub-tree heights and checks that each cached balance
// factor matches and stays in {-1, 0, +1}
func (tree *Tree) CheckBalance() bool {
	_, ok := checkbalance(tree.root)
	return ok
}

// internal: returns sub-tree height
func checkbalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, ok := checkbalance(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkbalance(p.right)
	if !ok {
		return 0, false
	}
	b := hr - hl
	if b < -1 || b > 1 || b != p.balance {
		fmt.Printf("fail at node: %v   balance: %d  cached: %d\n", p.entry, b, p.balance)
		return 0, false
	}
	h := hl
	if hr > hl {
		h = hr
	}
	return h + 1, true
}
