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

package llrb

// isRed returns the color of the link into n.  A nil node is black.
func isRed[T any](n *node[T]) bool {
	return n != nil && n.red
}

// rotateLeft turns a right-leaning link into a left-leaning one.
//
//	(a,(b,c)y)x  ->  ((a,b)x,c)y
func rotateLeft[T any](h *node[T]) *node[T] {
	x := h.right
	h.right = x.left
	x.left = h
	x.red = h.red
	h.red = true
	return x
}

// rotateRight turns a left-leaning link into a right-leaning one.
//
//	((a,b)x,c)y  ->  (a,(b,c)y)x
func rotateRight[T any](h *node[T]) *node[T] {
	x := h.left
	h.left = x.right
	x.right = h
	x.red = h.red
	h.red = true
	return x
}

// flipColors splits a 4-node into two 2-nodes, or merges two 2-nodes and
// their parent's key back into a 4-node.  h must have two children.
func flipColors[T any](h *node[T]) {
	h.red = !h.red
	h.left.red = !h.left.red
	h.right.red = !h.right.red
}

// moveRedLeft makes h.left or one of its children red, assuming h is red and
// both h.left and h.left.left are black.
func moveRedLeft[T any](h *node[T]) *node[T] {
	flipColors(h)
	if isRed(h.right.left) {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flipColors(h)
	}
	return h
}

// moveRedRight makes h.right or one of its children red, assuming h is red
// and both h.right and h.right.left are black.  It may leave a red right link
// behind for balance to fix.
func moveRedRight[T any](h *node[T]) *node[T] {
	flipColors(h)
	if isRed(h.left.left) {
		h = rotateRight(h)
		flipColors(h)
	}
	return h
}

// balance restores the invariants at h on the way back up from a deletion:
// no right-leaning red links, no two reds in a row, no 4-nodes.
func balance[T any](h *node[T]) *node[T] {
	if isRed(h.right) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	return h
}
