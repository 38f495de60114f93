// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"strconv"
	"testing"

	"github.com/quietbay/ordpool/avl"
)

type intEntry struct {
	key     int
	payload int
}

func (e *intEntry) String() string {
	return strconv.Itoa(e.key)
}

func (e *intEntry) Compare(x interface{}) int {
	q := x.(*intEntry)
	switch {
	case e.key < q.key:
		return -1
	case e.key > q.key:
		return +1
	default:
		return 0
	}
}

// collect the post-order sequence and match it by identity
func matchPostOrder(t *testing.T, tag string, tree *avl.Tree, expected ...*intEntry) {
	t.Helper()

	actual := []avl.Item(nil)
	tree.WalkPostOrder(func(item avl.Item) {
		actual = append(actual, item)
	})

	if len(actual) != len(expected) {
		t.Fatalf("%s: post-order length: actual: %d  expected: %d", tag, len(actual), len(expected))
	}
	for i, e := range expected {
		if avl.Item(e) != actual[i] {
			t.Fatalf("%s: post-order[%d]: actual: %v  expected: %v", tag, i, actual[i], e)
		}
	}
	checkInvariants(t, tag, tree)
}

func insertAll(t *testing.T, tree *avl.Tree, entries ...*intEntry) {
	t.Helper()
	for _, e := range entries {
		if err := tree.Insert(e); nil != err {
			t.Fatalf("insert %v failed: %s", e, err)
		}
	}
}

func removeAll(t *testing.T, tree *avl.Tree, entries ...*intEntry) {
	t.Helper()
	for _, e := range entries {
		if !tree.Remove(e) {
			t.Fatalf("remove %v failed", e)
		}
	}
}

func expectDrained(t *testing.T, tree *avl.Tree, p *avl.Pool) {
	t.Helper()
	if !tree.IsEmpty() {
		t.Fatal("tree not empty")
	}
	if 0 != p.Used() {
		t.Fatalf("pool not drained: %d blocks still in use", p.Used())
	}
}

// twelve distinct-key entries a(1) … l(12)
func alphabet() []*intEntry {
	entries := make([]*intEntry, 12)
	for i := range entries {
		entries[i] = &intEntry{key: i + 1, payload: i + 1}
	}
	return entries
}

// the four insertion-driven rotation cases; each fires exactly one
// single or double rotation at the root of the grown sub-tree
func TestInsertRotations(t *testing.T) {
	e := alphabet()
	a, b, c := e[0], e[1], e[2]

	p := avl.NewPool(12)
	tree := avl.New(p)

	// a                   b
	//   \                 / \
	//    b   == RR ==>   a   c
	//     \
	//      c
	insertAll(t, tree, a, b, c)
	matchPostOrder(t, "RR", tree, a, c, b)
	removeAll(t, tree, a, b, c)
	expectDrained(t, tree, p)

	//      c               b
	//     /               / \
	//    b   == LL ==>   a   c
	//   /
	//  a
	insertAll(t, tree, c, b, a)
	matchPostOrder(t, "LL", tree, a, c, b)
	removeAll(t, tree, c, b, a)
	expectDrained(t, tree, p)

	// a                  b
	//   \                / \
	//    c   == RL ==>  a   c
	//   /
	//  b
	insertAll(t, tree, a, c, b)
	matchPostOrder(t, "RL", tree, a, c, b)
	removeAll(t, tree, a, c, b)
	expectDrained(t, tree, p)

	//    c                b
	//   /                / \
	//  a     == LR ==>  a   c
	//   \
	//    b
	insertAll(t, tree, c, a, b)
	matchPostOrder(t, "LR", tree, a, c, b)
	removeAll(t, tree, c, a, b)
	expectDrained(t, tree, p)
}

// the four deletion-driven rotation cases on minimal four node trees
func TestDeleteRotations(t *testing.T) {
	e := alphabet()
	a, b, c, d := e[0], e[1], e[2], e[3]

	p := avl.NewPool(12)
	tree := avl.New(p)

	//    b                   c
	//   x \                 / \
	//  a   c   == RR ==>   b   d
	//       \
	//        d
	insertAll(t, tree, b, a, c, d)
	matchPostOrder(t, "pre RR", tree, a, d, c, b)
	removeAll(t, tree, a)
	matchPostOrder(t, "post RR", tree, b, d, c)
	removeAll(t, tree, b, c, d)
	expectDrained(t, tree, p)

	//      c                  b
	//     / x                / \
	//    b   d  == LL ==>   a   c
	//   /
	//  a
	insertAll(t, tree, c, d, b, a)
	matchPostOrder(t, "pre LL", tree, a, b, d, c)
	removeAll(t, tree, d)
	matchPostOrder(t, "post LL", tree, a, c, b)
	removeAll(t, tree, c, b, a)
	expectDrained(t, tree, p)

	//    b                  c
	//   x \                / \
	//  a   d   == RL ==>  b   d
	//     /
	//    c
	insertAll(t, tree, b, a, d, c)
	matchPostOrder(t, "pre RL", tree, a, c, d, b)
	removeAll(t, tree, a)
	matchPostOrder(t, "post RL", tree, b, d, c)
	removeAll(t, tree, b, d, c)
	expectDrained(t, tree, p)

	//    c                  b
	//   / x                / \
	//  a   d   == LR ==>  a   c
	//   \
	//    b
	insertAll(t, tree, c, d, a, b)
	matchPostOrder(t, "pre LR", tree, b, a, d, c)
	removeAll(t, tree, d)
	matchPostOrder(t, "post LR", tree, a, c, b)
	removeAll(t, tree, c, a, b)
	expectDrained(t, tree, p)
}

// deletion cases where the rotation happens above the deleted leaf or
// cascades through more than one level
func TestDeleteRotationsDeep(t *testing.T) {
	e := alphabet()
	a, b, c, d := e[0], e[1], e[2], e[3]
	f, g, h, i := e[5], e[6], e[7], e[8]
	ee := e[4]
	j, k, l := e[9], e[10], e[11]

	p := avl.NewPool(12)
	tree := avl.New(p)

	//        c                 e
	//       / \               / \
	//      b   e  == RR ==>  c   f
	//     x   / \           / \   \
	//    a   d   f         b   d   g
	//             \
	//              g
	insertAll(t, tree, c, b, ee, a, d, f, g)
	matchPostOrder(t, "pre deep single", tree, a, b, d, g, f, ee, c)
	removeAll(t, tree, a)
	matchPostOrder(t, "post deep single", tree, b, d, c, g, f, ee)
	removeAll(t, tree, c, b, ee, d, f, g)
	expectDrained(t, tree, p)

	//        - e -                 c
	//       /     \               / \
	//      c       f  == LL ==>  b   e
	//     / \     x             /   / \
	//    b   d   g             a   d   f
	//   /
	//  a
	insertAll(t, tree, ee, c, f, b, d, g, a)
	matchPostOrder(t, "pre root single", tree, a, b, d, c, g, f, ee)
	removeAll(t, tree, g)
	matchPostOrder(t, "post root single", tree, a, b, d, f, ee, c)
	removeAll(t, tree, ee, c, f, b, d, a)
	expectDrained(t, tree, p)

	//      - e -                       -- h --
	//     /     \                     /       \
	//    c       j                   - e-      j
	//   / \     / \   == RL ==>     /    \    / \
	//  a   d   h   k               c      g  i   k
	//   x     / \   \             / \    /        \
	//    b   g   i   l           a   d  f          l
	//       /
	//      f
	insertAll(t, tree, ee, c, j, a, d, h, k, b, g, i, l, f)
	matchPostOrder(t, "pre deep double RL", tree, b, a, d, c, f, g, i, h, l, k, j, ee)
	removeAll(t, tree, b)
	matchPostOrder(t, "post deep double RL", tree, a, d, c, f, g, ee, i, l, k, j, h)
	removeAll(t, tree, ee, c, j, a, d, h, k, g, i, l, f)
	expectDrained(t, tree, p)

	//        - h -                    - e -
	//       /     \                  /     \
	//      c       k                c       - h -
	//     / \     / \  == LR ==>   / \     /     \
	//    b   e   i   l            b   d   f       k
	//   /   / \   x              /         \     / \
	//  a   d   f   j            a           g   i   l
	//           \
	//            g
	insertAll(t, tree, h, c, k, b, ee, i, l, a, d, f, j, g)
	matchPostOrder(t, "pre deep double LR", tree, a, b, d, g, f, ee, c, j, i, l, k, h)
	removeAll(t, tree, j)
	matchPostOrder(t, "post deep double LR", tree, a, b, d, c, g, f, i, l, k, h, ee)
	removeAll(t, tree, h, c, k, b, ee, i, l, a, d, f, g)
	expectDrained(t, tree, p)
}
