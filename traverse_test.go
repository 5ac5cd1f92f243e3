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
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// preorder renders the traversal as "depth:[keys]" lines.
func preorder(tr *BTreeG[int]) (out []string) {
	for depth, keys := range tr.Traverse() {
		out = append(out, fmt.Sprintf("%d:%v", depth, keys))
	}
	return
}

func TestTraverseDegreeTwo(t *testing.T) {
	tr := newIntTree(t, Degree(2), WithInvariantChecks())
	for i := 1; i <= 7; i++ {
		tr.Insert(i)
	}
	assert.Equal(t, []string{"0:[2 4]", "1:[1]", "1:[3]", "1:[5 6 7]"}, preorder(tr))

	// 4 is replaced by its predecessor 3; the emptied leaf borrows from
	// its right sibling through the parent.
	v, ok := tr.Delete(4)
	require.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, []string{"0:[2 5]", "1:[1]", "1:[3]", "1:[6 7]"}, preorder(tr))

	_, ok = tr.Delete(100)
	assert.False(t, ok)
	assert.Equal(t, []string{"0:[2 5]", "1:[1]", "1:[3]", "1:[6 7]"}, preorder(tr))
}

func TestTraverseOrderThree(t *testing.T) {
	tr := newIntTree(t, Order(3), WithInvariantChecks())
	for _, k := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tr.Insert(k)
	}
	assert.Equal(t, []string{
		"0:[10]",
		"1:[6]",
		"2:[5]",
		"2:[7]",
		"1:[20]",
		"2:[12 17]",
		"2:[30]",
	}, preorder(tr))
	assert.Equal(t, 3, tr.Height())
}

func TestTraverseEmpty(t *testing.T) {
	tr := newIntTree(t, Order(4))
	assert.Empty(t, preorder(tr))

	tr.Insert(1)
	tr.Insert(2)
	tr.Delete(1)
	tr.Delete(2)
	assert.Empty(t, preorder(tr))
}

func TestTraverseIsRestartable(t *testing.T) {
	tr := newIntTree(t, Degree(3))
	for i := 0; i < 40; i++ {
		tr.Insert(i)
	}
	seq := tr.Traverse()
	var first, second []string
	for depth, keys := range seq {
		first = append(first, fmt.Sprint(depth, keys))
	}
	for depth, keys := range seq {
		second = append(second, fmt.Sprint(depth, keys))
	}
	assert.Equal(t, first, second)

	// The sequence reflects the tree at the time it is ranged over.
	tr.Insert(40)
	var third []string
	for depth, keys := range seq {
		third = append(third, fmt.Sprint(depth, keys))
	}
	assert.NotEqual(t, first, third)
}

func TestTraverseYieldsCopies(t *testing.T) {
	tr := newIntTree(t, Degree(2))
	for i := 1; i <= 7; i++ {
		tr.Insert(i)
	}
	for _, keys := range tr.Traverse() {
		for i := range keys {
			keys[i] = -1
		}
	}
	require.NoError(t, tr.Check())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, all(tr))
}

func TestTraverseEarlyStop(t *testing.T) {
	tr := newIntTree(t, Degree(2))
	for i := 1; i <= 7; i++ {
		tr.Insert(i)
	}
	var depths []int
	for depth := range tr.Traverse() {
		depths = append(depths, depth)
		if len(depths) == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, depths)

	visited := 0
	tr.Walk(func(depth int, items []int) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestAscendDescendStop(t *testing.T) {
	tr := newIntTree(t, Order(5))
	for i := 0; i < 50; i++ {
		tr.Insert(i)
	}
	var got []int
	tr.Ascend(func(i int) bool {
		got = append(got, i)
		return i < 9
	})
	assert.Equal(t, intRange(10, false), got)

	got = got[:0]
	tr.Descend(func(i int) bool {
		got = append(got, i)
		return i > 45
	})
	assert.Equal(t, []int{49, 48, 47, 46, 45}, got)
}

func TestFprint(t *testing.T) {
	tr := newIntTree(t, Order(3))
	for _, k := range []int{10, 20, 5} {
		tr.Insert(k)
	}
	var buf bytes.Buffer
	tr.Fprint(&buf)
	assert.Equal(t, "NODE:[10]\n  NODE:[5]\n  NODE:[20]\n", buf.String())
}
