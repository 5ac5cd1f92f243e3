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

import "iter"

// BTree is an implementation of a balanced multiway tree over the Item
// interface. It is a BTreeG[Item] ordered by Item.Less.
//
// BTree stores Item instances in an ordered structure, allowing easy insertion,
// removal, and iteration.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines.
type BTree BTreeG[Item]

// ItemIterator allows callers of Ascend and Descend to iterate in-order
// over the tree. When this function returns false, iteration will stop and
// the associated function will immediately return.
type ItemIterator ItemIteratorG[Item]

var itemLess LessFunc[Item] = func(a, b Item) bool {
	return a.Less(b)
}

// New creates a new tree of Items with the given capacity.
//
// New(Order(3)), for example, will create a 2-3 tree (each node contains
// 1-2 items and 2-3 children).
func New(c Capacity, opts ...Option) (*BTree, error) {
	t, err := NewG[Item](c, itemLess, opts...)
	if err != nil {
		return nil, err
	}
	return (*BTree)(t), nil
}

func (t *BTree) generic() *BTreeG[Item] {
	return (*BTreeG[Item])(t)
}

// Insert adds the given item to the tree. Items equal to ones already in the
// tree are stored as well.
//
// nil cannot be added to the tree (will panic).
func (t *BTree) Insert(item Item) {
	if item == nil {
		panic("nil item being added to BTree")
	}
	t.generic().Insert(item)
}

// Delete removes an item equal to the passed in item from the tree, returning
// it.  If no such item exists, returns nil.
func (t *BTree) Delete(item Item) Item {
	i, _ := t.generic().Delete(item)
	return i
}

// DeleteMin removes the smallest item in the tree and returns it.
// If no such item exists, returns nil.
func (t *BTree) DeleteMin() Item {
	i, _ := t.generic().DeleteMin()
	return i
}

// DeleteMax removes the largest item in the tree and returns it.
// If no such item exists, returns nil.
func (t *BTree) DeleteMax() Item {
	i, _ := t.generic().DeleteMax()
	return i
}

// Get looks for the key item in the tree, returning it.  It returns nil if
// unable to find that item.
func (t *BTree) Get(key Item) Item {
	i, _ := t.generic().Get(key)
	return i
}

// Min returns the smallest item in the tree, or nil if the tree is empty.
func (t *BTree) Min() Item {
	i, _ := t.generic().Min()
	return i
}

// Max returns the largest item in the tree, or nil if the tree is empty.
func (t *BTree) Max() Item {
	i, _ := t.generic().Max()
	return i
}

// Has returns true if the given key is in the tree.
func (t *BTree) Has(key Item) bool {
	return t.generic().Has(key)
}

// Len returns the number of items currently in the tree.
func (t *BTree) Len() int {
	return t.generic().Len()
}

// Height returns the number of levels in the tree.
func (t *BTree) Height() int {
	return t.generic().Height()
}

// Ascend calls the iterator for every value in the tree within the range
// [first, last], until iterator returns false.
func (t *BTree) Ascend(iterator ItemIterator) {
	t.generic().Ascend(ItemIteratorG[Item](iterator))
}

// Descend calls the iterator for every value in the tree within the range
// [last, first], until iterator returns false.
func (t *BTree) Descend(iterator ItemIterator) {
	t.generic().Descend(ItemIteratorG[Item](iterator))
}

// Walk calls visit for every node in pre-order with its depth and items.
func (t *BTree) Walk(visit func(depth int, items []Item) bool) {
	t.generic().Walk(visit)
}

// Traverse returns the lazy pre-order sequence of (depth, items) pairs.
func (t *BTree) Traverse() iter.Seq2[int, []Item] {
	return t.generic().Traverse()
}

// Check validates the structural invariants of the tree.
func (t *BTree) Check() error {
	return t.generic().Check()
}

// Clone returns an independent copy of the tree.
func (t *BTree) Clone() *BTree {
	return (*BTree)(t.generic().Clone())
}

// Clear removes all items from the tree.
func (t *BTree) Clear() {
	t.generic().Clear()
}
