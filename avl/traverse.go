// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// WalkPostOrder - visit every structural node in left sub-tree, right
// sub-tree, node order and pass its primary entry to the visitor
//
// queued key-equal entries are invisible to this walk and do not
// affect the order.  the visitor may inspect or mutate entry payloads
// but must not insert into or remove from the tree while the walk is
// in progress
func (tree *Tree) WalkPostOrder(visit func(Item)) {
	postorder(tree.root, visit)
}

func postorder(p *Node, visit func(Item)) {
	if nil == p {
		return
	}
	postorder(p.left, visit)
	postorder(p.right, visit)
	visit(p.entry)
}
