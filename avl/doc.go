// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree over caller-owned entries with
// the addition of parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//
//	in a single go routine or use mutex/rwmutex to restrict
//	access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// This version keys nodes by the entries themselves and chains
// key-equal entries on their owning node in insertion order, so
// inserting an equal key never changes the tree shape.  Entries are
// matched for removal by instance identity, never by value.  All
// bookkeeping blocks come from a fixed-capacity pool injected at
// construction: exactly one block per live entry, and an exhausted
// pool fails an insert without touching the existing structure.
package avl
