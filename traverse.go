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
	"io"
	"iter"
	"slices"
	"strings"
)

// NodeVisitorG is called once per node by Walk with the node's depth (0 for
// the root) and a copy of its items in ascending order. Returning false
// stops the walk.
type NodeVisitorG[T any] func(depth int, items []T) bool

// walk visits n before its children, left to right.
func (n *node[T]) walk(depth int, visit NodeVisitorG[T]) bool {
	if !visit(depth, slices.Clone(n.items)) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(depth+1, visit) {
			return false
		}
	}
	return true
}

func (n *node[T]) ascend(fn ItemIteratorG[T]) bool {
	for i, item := range n.items {
		if len(n.children) > 0 && !n.children[i].ascend(fn) {
			return false
		}
		if !fn(item) {
			return false
		}
	}
	if len(n.children) > 0 {
		return n.children[len(n.children)-1].ascend(fn)
	}
	return true
}

func (n *node[T]) descend(fn ItemIteratorG[T]) bool {
	if len(n.children) > 0 && !n.children[len(n.children)-1].descend(fn) {
		return false
	}
	for i := len(n.items) - 1; i >= 0; i-- {
		if !fn(n.items[i]) {
			return false
		}
		if len(n.children) > 0 && !n.children[i].descend(fn) {
			return false
		}
	}
	return true
}

// Walk calls visit for every node in pre-order: a node first, then its
// children from left to right. It never modifies the tree.
func (t *BTreeG[T]) Walk(visit NodeVisitorG[T]) {
	if t.root == nil {
		return
	}
	t.root.walk(0, visit)
}

// Traverse returns the pre-order sequence of (depth, items) pairs that Walk
// produces. The sequence is lazy and can be ranged over any number of
// times; each pass reflects the tree as it is at that moment.
func (t *BTreeG[T]) Traverse() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		t.Walk(yield)
	}
}

// Ascend calls the iterator for every value in the tree within the range
// [first, last], until iterator returns false.
func (t *BTreeG[T]) Ascend(iterator ItemIteratorG[T]) {
	if t.root == nil {
		return
	}
	t.root.ascend(iterator)
}

// Descend calls the iterator for every value in the tree within the range
// [last, first], until iterator returns false.
func (t *BTreeG[T]) Descend(iterator ItemIteratorG[T]) {
	if t.root == nil {
		return
	}
	t.root.descend(iterator)
}

// Fprint writes one line per node in pre-order, indented by depth. It is
// used for testing/debugging purposes.
func (t *BTreeG[T]) Fprint(w io.Writer) {
	t.Walk(func(depth int, items []T) bool {
		fmt.Fprintf(w, "%sNODE:%v\n", strings.Repeat("  ", depth), items)
		return true
	})
}
