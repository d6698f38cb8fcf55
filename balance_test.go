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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRedNil(t *testing.T) {
	assert.False(t, isRed[int](nil))
	assert.False(t, isRed(&node[int]{}))
	assert.True(t, isRed(&node[int]{red: true}))
}

func TestRotations(t *testing.T) {
	a, b, c := &node[int]{item: 1}, &node[int]{item: 3}, &node[int]{item: 5}
	y := &node[int]{item: 4, red: true, left: b, right: c}
	x := &node[int]{item: 2, left: a, right: y}

	root := rotateLeft(x)
	assert.Same(t, y, root)
	assert.False(t, root.red, "new root inherits the old root's color")
	assert.True(t, x.red)
	assert.Same(t, x, root.left)
	assert.Same(t, a, x.left)
	assert.Same(t, b, x.right)
	assert.Same(t, c, root.right)

	back := rotateRight(root)
	assert.Same(t, x, back)
	assert.False(t, back.red)
	assert.True(t, y.red)
	assert.Same(t, y, back.right)
	assert.Same(t, b, y.left)
}

func TestFlipColors(t *testing.T) {
	h := &node[int]{
		item:  2,
		left:  &node[int]{item: 1, red: true},
		right: &node[int]{item: 3, red: true},
	}
	flipColors(h)
	assert.True(t, h.red)
	assert.False(t, h.left.red)
	assert.False(t, h.right.red)
	flipColors(h)
	assert.False(t, h.red)
	assert.True(t, h.left.red)
	assert.True(t, h.right.red)
}

func TestBalanceSplitsFourNode(t *testing.T) {
	// A right-leaning red link with a red left sibling: rotate, rotate back,
	// then split.
	h := &node[int]{
		item:  2,
		left:  &node[int]{item: 1, red: true},
		right: &node[int]{item: 3, red: true},
	}
	h = balance(h)
	assert.Equal(t, 2, h.item)
	assert.True(t, h.red)
	assert.False(t, h.left.red)
	assert.False(t, h.right.red)
}

func TestMoveRedLeft(t *testing.T) {
	// h is red with two black 2-node children; the right child has a red
	// left child to lend.
	h := &node[int]{
		item: 20,
		red:  true,
		left: &node[int]{item: 10},
		right: &node[int]{
			item: 40,
			left: &node[int]{item: 30, red: true},
		},
	}
	h = moveRedLeft(h)
	assert.Equal(t, 30, h.item)
	assert.True(t, h.red)
	assert.Equal(t, 20, h.left.item)
	assert.False(t, h.left.red)
	assert.True(t, h.left.left.red, "the left child now has a red link to descend")
	assert.Equal(t, 40, h.right.item)
	assert.False(t, h.right.red)
}

func TestMoveRedRight(t *testing.T) {
	h := &node[int]{
		item: 30,
		red:  true,
		left: &node[int]{
			item: 20,
			left: &node[int]{item: 10, red: true},
		},
		right: &node[int]{item: 40},
	}
	h = moveRedRight(h)
	assert.Equal(t, 20, h.item)
	assert.True(t, h.red)
	assert.False(t, h.left.red)
	assert.Equal(t, 30, h.right.item)
	assert.False(t, h.right.red)
	assert.True(t, h.right.right.red)
}
