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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockedConcurrent(t *testing.T) {
	l := NewLocked(NewOrdered[int]())
	const workers, perWorker = 8, 500
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				k := w*perWorker + i
				assert.NoError(t, l.Insert(k))
				assert.True(t, l.Has(k))
			}
			for i := 0; i < perWorker; i += 2 {
				_, ok, err := l.Delete(w*perWorker + i)
				assert.NoError(t, err)
				assert.True(t, ok)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker/2, l.Len())
	require.NoError(t, l.View(func(tr *Tree[int]) error {
		return tr.Verify()
	}))
	var odd int
	require.NoError(t, l.InOrder(func(i int) {
		if i%2 == 1 {
			odd++
		}
	}))
	assert.Equal(t, l.Len(), odd)
}

func TestLockedUpdate(t *testing.T) {
	l := NewLocked(NewOrdered[int]())
	require.NoError(t, l.InsertAll(3, 1, 2))
	err := l.Update(func(tr *Tree[int]) error {
		min, err := tr.DeleteMin()
		if err != nil {
			return err
		}
		return tr.Insert(min + 10)
	})
	require.NoError(t, err)
	v, ok := l.Get(11)
	assert.True(t, ok)
	assert.Equal(t, 11, v)

	max, err := l.DeleteMax()
	require.NoError(t, err)
	assert.Equal(t, 11, max)
	min, err := l.DeleteMin()
	require.NoError(t, err)
	assert.Equal(t, 2, min)
	assert.Equal(t, 1, l.Len())
}

func TestLockedWalksAndBounds(t *testing.T) {
	l := NewLocked(NewOrdered[int]())
	require.NoError(t, l.InsertAll(10, 20, 5, 6, 15))

	collect := func(walk func(Visitor[int]) error) (out []int) {
		require.NoError(t, walk(func(i int) { out = append(out, i) }))
		return
	}
	assert.Equal(t, []int{10, 6, 5, 20, 15}, collect(l.PreOrder))
	assert.Equal(t, []int{5, 6, 15, 20, 10}, collect(l.PostOrder))
	assert.Equal(t, []int{10, 6, 20, 5, 15}, collect(l.LevelOrder))
	assert.ErrorIs(t, l.PreOrder(nil), ErrInvalidArgument)

	min, ok := l.Min()
	assert.True(t, ok)
	assert.Equal(t, 5, min)
	max, ok := l.Max()
	assert.True(t, ok)
	assert.Equal(t, 20, max)

	l.Clear(true)
	assert.Zero(t, l.Len())
	_, ok = l.Min()
	assert.False(t, ok)
	_, ok = l.Max()
	assert.False(t, ok)
}
