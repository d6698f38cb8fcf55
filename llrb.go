// Copyright 2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package llrb implements an in-memory left-leaning red-black tree.
//
// llrb implements a left-leaning red-black tree (LLRB) for use as an ordered
// data structure.  It is not meant for persistent storage solutions.
//
// An LLRB is a binary search tree that encodes a 2-3-4 tree: every black node
// together with its red children forms one node of the 2-3-4 tree.  Red links
// always lean left, so a 3-node is a black node with a red left child, and a
// 4-node (a black node with two red children) only ever exists transiently
// while an operation is rebalancing.  See
//
//	http://www.cs.princeton.edu/~rs/talks/LLRB/LLRB.pdf
//
// Each operation descends recursively from the root and restores the
// invariants with rotations and color flips on the way back up, so the height
// of a tree holding n items never exceeds 2*log2(n+1).
//
// The API loosely follows github.com/google/btree and gollrb.LLRB
// (http://github.com/petar/gollrb): items are ordered by a caller supplied
// CompareFunc, and inserting an item that compares equal to a stored one
// replaces it, so the tree never holds two equivalent items.
//
// A Tree is not safe for concurrent use.  Wrap it in a Locked, or guard it with
// your own mutex held for the whole of each operation.
package llrb

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// CompareFunc determines how to order a type 'T'.  It must implement a total
// order and return a negative number when a < b, zero when a == b and a
// positive number when a > b.
type CompareFunc[T any] func(a, b T) int

// Compare returns a default CompareFunc that uses the '<' operator for types
// that support it.
func Compare[T constraints.Ordered]() CompareFunc[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		}
		return 0
	}
}

// ItemIterator allows callers of Ascend to iterate in-order over the tree.
// When this function returns false, iteration will stop and Ascend will
// immediately return.
type ItemIterator[T any] func(item T) bool

// node is a single vertex of the tree.  red is the color of the link from the
// parent to this node.
type node[T any] struct {
	item        T
	red         bool
	left, right *node[T]
}

// Tree is a left-leaning red-black tree.
//
// Tree stores items of type T in an ordered structure, allowing easy
// insertion, removal, and iteration.
//
// Neither reads nor writes are safe for concurrent use with writes.
type Tree[T any] struct {
	root     *node[T]
	length   int
	compare  CompareFunc[T]
	freelist *FreeList[T]
}

// New creates a new, empty tree ordered by compare.
func New[T any](compare CompareFunc[T]) *Tree[T] {
	return NewWithFreeList(compare, NewFreeList[T](DefaultFreeListSize))
}

// NewOrdered creates a new tree for ordered types.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(Compare[T]())
}

// NewWithFreeList creates a new tree that recycles nodes through the given
// free list.
func NewWithFreeList[T any](compare CompareFunc[T], f *FreeList[T]) *Tree[T] {
	if compare == nil {
		panic("llrb: nil compare func")
	}
	if f == nil {
		f = NewFreeList[T](0)
	}
	return &Tree[T]{
		compare:  compare,
		freelist: f,
	}
}

func (t *Tree[T]) newNode(item T) *node[T] {
	n := t.freelist.newNode()
	n.item = item
	n.red = true
	return n
}

func (t *Tree[T]) freeNode(n *node[T]) bool {
	*n = node[T]{}
	return t.freelist.freeNode(n)
}

// isNil reports whether v is the absent state of a nillable type.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Len returns the number of items currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if r > l {
		l = r
	}
	return l + 1
}

// search returns the node holding an item equal to key, or nil.
func (t *Tree[T]) search(key T) *node[T] {
	n := t.root
	for n != nil {
		switch c := t.compare(key, n.item); {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// Get looks for the key item in the tree, returning it.  It returns
// (zeroValue, false) if unable to find that item.
func (t *Tree[T]) Get(key T) (_ T, _ bool) {
	if n := t.search(key); n != nil {
		return n.item, true
	}
	return
}

// Has returns true if the given key is in the tree.
func (t *Tree[T]) Has(key T) bool {
	return t.search(key) != nil
}

// Contains is an alias for Has.
func (t *Tree[T]) Contains(key T) bool {
	return t.Has(key)
}

// Min returns the smallest item in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Min() (_ T, _ bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.left != nil {
		n = n.left
	}
	return n.item, true
}

// Max returns the largest item in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Max() (_ T, _ bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.right != nil {
		n = n.right
	}
	return n.item, true
}

// Insert adds the given item to the tree.  If an item in the tree already
// equals the given one, it is overwritten and Len does not change.
//
// A nil pointer, interface, map, slice, func or chan cannot be added to the
// tree; Insert returns an error wrapping ErrInvalidArgument and leaves the tree
// untouched.
func (t *Tree[T]) Insert(item T) error {
	if isNil(item) {
		return t.reject("insert", invalidArgument("insert", "nil item"))
	}
	var added bool
	t.root, added = t.insert(t.root, item)
	t.root.red = false
	if added {
		t.length++
	}
	return nil
}

func (t *Tree[T]) insert(h *node[T], item T) (_ *node[T], added bool) {
	if h == nil {
		return t.newNode(item), true
	}
	switch c := t.compare(item, h.item); {
	case c < 0:
		h.left, added = t.insert(h.left, item)
	case c > 0:
		h.right, added = t.insert(h.right, item)
	default:
		h.item = item
	}
	// The order of these three fix-ups matters.
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	return h, added
}

// InsertAll inserts each of items in order.  Every item is checked before the
// first one is inserted, so a nil item leaves the tree untouched.
func (t *Tree[T]) InsertAll(items ...T) error {
	for i, item := range items {
		if isNil(item) {
			return t.reject("insert all", invalidArgumentf("insert all", "nil item at index %d", i))
		}
	}
	for _, item := range items {
		if err := t.Insert(item); err != nil {
			return err
		}
	}
	return nil
}

// borrowRed colors the root red when both its children are black, so that
// the deletion descent has a red link to push down.
func (t *Tree[T]) borrowRed() {
	if !isRed(t.root.left) && !isRed(t.root.right) {
		t.root.red = true
	}
}

func (t *Tree[T]) settle() {
	if t.root != nil {
		t.root.red = false
	}
	t.length--
}

// DeleteMin removes the smallest item in the tree and returns it.
// It returns an error wrapping ErrEmptyCollection if the tree is empty.
func (t *Tree[T]) DeleteMin() (_ T, err error) {
	if t.root == nil {
		return t.emptyErr("delete min")
	}
	t.borrowRed()
	var out T
	t.root, out = t.deleteMin(t.root)
	t.settle()
	return out, nil
}

func (t *Tree[T]) deleteMin(h *node[T]) (*node[T], T) {
	if h.left == nil {
		// An LLRB node without a left child has no right child either.
		out := h.item
		t.freeNode(h)
		return nil, out
	}
	if !isRed(h.left) && !isRed(h.left.left) {
		h = moveRedLeft(h)
	}
	var out T
	h.left, out = t.deleteMin(h.left)
	return balance(h), out
}

// DeleteMax removes the largest item in the tree and returns it.
// It returns an error wrapping ErrEmptyCollection if the tree is empty.
func (t *Tree[T]) DeleteMax() (_ T, err error) {
	if t.root == nil {
		return t.emptyErr("delete max")
	}
	t.borrowRed()
	var out T
	t.root, out = t.deleteMax(t.root)
	t.settle()
	return out, nil
}

func (t *Tree[T]) deleteMax(h *node[T]) (*node[T], T) {
	if isRed(h.left) {
		h = rotateRight(h)
	}
	if h.right == nil {
		out := h.item
		t.freeNode(h)
		return nil, out
	}
	if !isRed(h.right) && !isRed(h.right.left) {
		h = moveRedRight(h)
	}
	var out T
	h.right, out = t.deleteMax(h.right)
	return balance(h), out
}

// Delete removes an item equal to the passed in item from the tree, returning
// the stored item and true.  If no such item exists, the tree is not modified
// and Delete returns (zeroValue, false, nil).
//
// A nil item returns an error wrapping ErrInvalidArgument.
func (t *Tree[T]) Delete(item T) (_ T, _ bool, err error) {
	if isNil(item) {
		err = t.reject("delete", invalidArgument("delete", "nil item"))
		return
	}
	// Only descend to mutate once the item is known to be present; the
	// rebalancing on the way down is not undone for a miss.
	if !t.Has(item) {
		return
	}
	t.borrowRed()
	var out T
	t.root, out = t.delete(t.root, item)
	t.settle()
	return out, true, nil
}

func (t *Tree[T]) delete(h *node[T], item T) (*node[T], T) {
	var out T
	if t.compare(item, h.item) < 0 {
		if h.left != nil && !isRed(h.left) && !isRed(h.left.left) {
			h = moveRedLeft(h)
		}
		h.left, out = t.delete(h.left, item)
		return balance(h), out
	}
	if isRed(h.left) {
		h = rotateRight(h)
	}
	if t.compare(item, h.item) == 0 && h.right == nil {
		out = h.item
		t.freeNode(h)
		return nil, out
	}
	if h.right != nil && !isRed(h.right) && !isRed(h.right.left) {
		h = moveRedRight(h)
	}
	// h may have changed above, so compare again.
	if t.compare(item, h.item) == 0 {
		out = h.item
		h.right, h.item = t.deleteMin(h.right)
	} else {
		h.right, out = t.delete(h.right, item)
	}
	return balance(h), out
}

// Clear removes all items from the tree.  If addNodesToFreelist is true,
// t's nodes are added to its freelist as part of this call, until the freelist
// is full.  Otherwise, the root node is simply dereferenced and the subtree
// left to Go's normal GC processes.
func (t *Tree[T]) Clear(addNodesToFreelist bool) {
	if addNodesToFreelist && t.root != nil {
		t.reset(t.root)
	}
	t.root, t.length = nil, 0
}

// reset returns the subtree to the freelist, stopping once the list is full.
func (t *Tree[T]) reset(n *node[T]) bool {
	if n.left != nil && !t.reset(n.left) {
		return false
	}
	if n.right != nil && !t.reset(n.right) {
		return false
	}
	return t.freeNode(n)
}
