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

import (
	"sync"
)

// Locked wraps a Tree with a read-write mutex held for the duration of each
// operation, for callers that share one tree between goroutines.
//
// Visitors and iterators run with the read lock held and must not call back
// into the Locked.  Anything not wrapped here, such as Verify or Ascend, goes
// through View or Update.
type Locked[T any] struct {
	mu   sync.RWMutex
	tree *Tree[T]
}

// NewLocked wraps tree.  The caller must not use tree directly afterwards.
func NewLocked[T any](tree *Tree[T]) *Locked[T] {
	return &Locked[T]{tree: tree}
}

// Update runs fn with the write lock held, so that several operations on the
// tree happen as one.
func (l *Locked[T]) Update(fn func(*Tree[T]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.tree)
}

// View runs fn with the read lock held.  fn must not modify the tree.
func (l *Locked[T]) View(fn func(*Tree[T]) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return fn(l.tree)
}

// Len returns the number of items in the tree.
func (l *Locked[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// Has returns true if the given key is in the tree.
func (l *Locked[T]) Has(key T) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Has(key)
}

// Get looks for the key item in the tree, returning it.
func (l *Locked[T]) Get(key T) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Get(key)
}

// Insert adds item to the tree under the write lock.  See Tree.Insert.
func (l *Locked[T]) Insert(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Insert(item)
}

// InsertAll inserts all of items under a single write lock.
func (l *Locked[T]) InsertAll(items ...T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.InsertAll(items...)
}

// Delete removes an item equal to item.  See Tree.Delete.
func (l *Locked[T]) Delete(item T) (T, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Delete(item)
}

// DeleteMin removes and returns the smallest item.
func (l *Locked[T]) DeleteMin() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.DeleteMin()
}

// DeleteMax removes and returns the largest item.
func (l *Locked[T]) DeleteMax() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.DeleteMax()
}

// InOrder visits every item in ascending order under the read lock.
func (l *Locked[T]) InOrder(visit Visitor[T]) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.InOrder(visit)
}

// PreOrder visits the tree in pre-order under the read lock.
func (l *Locked[T]) PreOrder(visit Visitor[T]) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.PreOrder(visit)
}

// PostOrder visits the tree in post-order under the read lock.
func (l *Locked[T]) PostOrder(visit Visitor[T]) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.PostOrder(visit)
}

// LevelOrder visits the tree breadth first under the read lock.
func (l *Locked[T]) LevelOrder(visit Visitor[T]) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.LevelOrder(visit)
}

// Min returns the smallest item in the tree, or (zeroValue, false) if it is empty.
func (l *Locked[T]) Min() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Min()
}

// Max returns the largest item in the tree, or (zeroValue, false) if it is empty.
func (l *Locked[T]) Max() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Max()
}

// Clear removes all items from the tree.  See Tree.Clear.
func (l *Locked[T]) Clear(addNodesToFreelist bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tree.Clear(addNodesToFreelist)
}
