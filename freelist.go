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

// freeList holds nodes destroyed by merges and root collapses so later
// splits can reuse them. Each tree owns its own list; nothing is shared
// between trees, so no locking is needed.
type freeList[T any] struct {
	nodes []*node[T]
}

func newFreeList[T any](size int) *freeList[T] {
	return &freeList[T]{nodes: make([]*node[T], 0, size)}
}

func (f *freeList[T]) newNode() (n *node[T]) {
	index := len(f.nodes) - 1
	if index < 0 {
		return new(node[T])
	}
	n = f.nodes[index]
	f.nodes[index] = nil
	f.nodes = f.nodes[:index]
	return
}

func (f *freeList[T]) freeNode(n *node[T]) (out bool) {
	if len(f.nodes) < cap(f.nodes) {
		f.nodes = append(f.nodes, n)
		out = true
	}
	return
}
