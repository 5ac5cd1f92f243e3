// Copyright 2014 Google Inc.
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

package btree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemRange(s int) (out []Item) {
	for i := 0; i < s; i++ {
		out = append(out, Int(i))
	}
	return
}

func allItems(t *BTree) (out []Item) {
	t.Ascend(func(a Item) bool {
		out = append(out, a)
		return true
	})
	return
}

func TestBTreeItems(t *testing.T) {
	tr, err := New(Order(4), WithInvariantChecks())
	require.NoError(t, err)
	assert.Nil(t, tr.Min())
	assert.Nil(t, tr.Max())
	assert.Nil(t, tr.Delete(Int(1)))

	for _, v := range rand.Perm(100) {
		tr.Insert(Int(v))
	}
	assert.Equal(t, 100, tr.Len())
	assert.Equal(t, itemRange(100), allItems(tr))
	assert.Equal(t, Int(0), tr.Min())
	assert.Equal(t, Int(99), tr.Max())
	assert.Equal(t, Int(42), tr.Get(Int(42)))
	assert.Nil(t, tr.Get(Int(100)))
	assert.True(t, tr.Has(Int(7)))

	assert.Equal(t, Int(0), tr.DeleteMin())
	assert.Equal(t, Int(99), tr.DeleteMax())
	assert.Equal(t, Int(50), tr.Delete(Int(50)))
	assert.Nil(t, tr.Delete(Int(50)))
	assert.Equal(t, 97, tr.Len())
	require.NoError(t, tr.Check())

	var desc []Item
	tr.Descend(func(a Item) bool {
		desc = append(desc, a)
		return len(desc) < 3
	})
	assert.Equal(t, []Item{Int(98), Int(97), Int(96)}, desc)

	cp := tr.Clone()
	tr.Clear()
	assert.Zero(t, tr.Len())
	assert.Equal(t, 97, cp.Len())
	assert.Greater(t, cp.Height(), 1)
}

func TestBTreeInsertNilPanics(t *testing.T) {
	tr, err := New(Degree(2))
	require.NoError(t, err)
	assert.Panics(t, func() { tr.Insert(nil) })
}

func TestBTreeTraverse(t *testing.T) {
	tr, err := New(Degree(2))
	require.NoError(t, err)
	for i := 1; i <= 7; i++ {
		tr.Insert(Int(i))
	}
	var lines []string
	for depth, keys := range tr.Traverse() {
		lines = append(lines, fmt.Sprintf("%d:%v", depth, keys))
	}
	assert.Equal(t, []string{"0:[2 4]", "1:[1]", "1:[3]", "1:[5 6 7]"}, lines)

	visited := 0
	tr.Walk(func(depth int, items []Item) bool {
		visited++
		return true
	})
	assert.Equal(t, 4, visited)
}
