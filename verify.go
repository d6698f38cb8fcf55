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

// Verify checks the tree against the invariants every public operation
// preserves.  It returns nil for a well-formed tree, and otherwise an error
// wrapping ErrCorrupt that describes the first violation found.
//
// Verify walks the whole tree; it is meant for tests and soak runs.
func (t *Tree[T]) Verify() error {
	if isRed(t.root) {
		return corruptf("root link is red")
	}
	count, _, err := t.verify(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.length {
		return corruptf("length is %d but the tree holds %d nodes", t.length, count)
	}
	return nil
}

// verify checks the subtree at n, whose items must lie strictly between lo
// and hi when those are set.  It returns the subtree's node count and black
// height.
func (t *Tree[T]) verify(n *node[T], lo, hi *T) (count, black int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && t.compare(n.item, *lo) <= 0 {
		return 0, 0, corruptf("%v is out of order after %v", n.item, *lo)
	}
	if hi != nil && t.compare(n.item, *hi) >= 0 {
		return 0, 0, corruptf("%v is out of order before %v", n.item, *hi)
	}
	if isRed(n.right) {
		return 0, 0, corruptf("red link leans right below %v", n.item)
	}
	if isRed(n) && isRed(n.left) {
		return 0, 0, corruptf("two red links in a row below %v", n.item)
	}
	lc, lb, err := t.verify(n.left, lo, &n.item)
	if err != nil {
		return 0, 0, err
	}
	rc, rb, err := t.verify(n.right, &n.item, hi)
	if err != nil {
		return 0, 0, err
	}
	if lb != rb {
		return 0, 0, corruptf("black height below %v is %d on the left and %d on the right", n.item, lb, rb)
	}
	if !n.red {
		lb++
	}
	return lc + rc + 1, lb, nil
}
