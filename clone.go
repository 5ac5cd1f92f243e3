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

func (n *node[T]) deepCopy(t *BTreeG[T]) *node[T] {
	n2 := t.newNode()
	n2.items = append(n2.items, n.items...)
	for _, c := range n.children {
		n2.children = append(n2.children, c.deepCopy(t))
	}
	return n2
}

// Clone returns an independent copy of the tree with the same capacity and
// options. Items are copied by value; nodes are never shared, so either
// tree can be modified without affecting the other.
func (t *BTreeG[T]) Clone() *BTreeG[T] {
	t2 := newTree(t.capacity, t.less, t.opts)
	t2.length = t.length
	if t.root != nil {
		t2.root = t.root.deepCopy(t2)
	}
	return t2
}
