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

// Visitor is called once for each item during a traversal.  It must not
// modify the tree it is visiting.
type Visitor[T any] func(item T)

// PreOrder visits each node before its left and right subtrees.
func (t *Tree[T]) PreOrder(visit Visitor[T]) error {
	if visit == nil {
		return t.reject("preorder", invalidArgument("preorder", "nil visitor"))
	}
	preOrder(t.root, visit)
	return nil
}

func preOrder[T any](n *node[T], visit Visitor[T]) {
	if n == nil {
		return
	}
	visit(n.item)
	preOrder(n.left, visit)
	preOrder(n.right, visit)
}

// InOrder visits every item in ascending order.
func (t *Tree[T]) InOrder(visit Visitor[T]) error {
	if visit == nil {
		return t.reject("inorder", invalidArgument("inorder", "nil visitor"))
	}
	inOrder(t.root, visit)
	return nil
}

func inOrder[T any](n *node[T], visit Visitor[T]) {
	if n == nil {
		return
	}
	inOrder(n.left, visit)
	visit(n.item)
	inOrder(n.right, visit)
}

// PostOrder visits each node after its left and right subtrees.
func (t *Tree[T]) PostOrder(visit Visitor[T]) error {
	if visit == nil {
		return t.reject("postorder", invalidArgument("postorder", "nil visitor"))
	}
	postOrder(t.root, visit)
	return nil
}

func postOrder[T any](n *node[T], visit Visitor[T]) {
	if n == nil {
		return
	}
	postOrder(n.left, visit)
	postOrder(n.right, visit)
	visit(n.item)
}

// LevelOrder visits the tree breadth first, left to right within a level.
func (t *Tree[T]) LevelOrder(visit Visitor[T]) error {
	if visit == nil {
		return t.reject("levelorder", invalidArgument("levelorder", "nil visitor"))
	}
	// Missing children are queued as nil and skipped; they never queue more.
	queue := []*node[T]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue[0] = nil
		queue = queue[1:]
		if n == nil {
			continue
		}
		visit(n.item)
		queue = append(queue, n.left, n.right)
	}
	return nil
}

// Ascend calls the iterator for every value in the tree in ascending order,
// until iterator returns false.
func (t *Tree[T]) Ascend(iterator ItemIterator[T]) {
	ascend(t.root, iterator)
}

func ascend[T any](n *node[T], iter ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, iter) || !iter(n.item) {
		return false
	}
	return ascend(n.right, iter)
}
