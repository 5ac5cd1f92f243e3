// Copyright 2014-2022 Google Inc.
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

// Package btree implements in-memory balanced multiway search trees.
//
// A tree keeps its items sorted inside nodes of bounded size and guarantees
// that every leaf sits at the same depth. Node size is described by a
// Capacity, which covers both common ways of parameterizing such a tree:
//
//   - Order(m): an m-way search tree, at most m children per node.
//   - Degree(t): a B-Tree of minimum degree t, between t and 2t children
//     per internal node.
//
// Both flavours share one engine; they differ only in how the minimum and
// maximum number of items per node derive from the configured parameter.
//
// Inserting splits nodes that overflow on the way back up from the leaf, so
// the height of the tree grows only when the root splits. Deleting repairs
// underflow on the way back up as well, either by borrowing an item through
// the parent from a sibling that can spare one or by merging two siblings;
// the height shrinks only when the root runs out of items. A key held by an
// internal node is replaced by its predecessor.
//
// Equal items may be stored more than once; Delete removes one of them.
//
// Within this tree, each node contains a slice of items and a (possibly nil)
// slice of children. The tree is not meant for persistent storage
// solutions, and write operations are not safe for concurrent use; see
// SyncBTreeG for a wrapper that serializes access.
//
// There are two implementations; those suffixed with 'G' are generics, usable
// for any type, and require a passed-in "less" function to define their ordering.
// Those without this suffix are specific to the 'Item' interface, and use
// its 'Less' function for ordering.
package btree

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// ItemIteratorG allows callers of Ascend and Descend to iterate in-order
// over the tree. When this function returns false, iteration will stop and
// the associated function will immediately return.
type ItemIteratorG[T any] func(item T) bool

// Ordered represents the set of types for which the '<' operator work.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// Less[T] returns a default LessFunc that uses the '<' operator for types that support it.
func Less[T Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// NewOrderedG creates a new tree for ordered types.
func NewOrderedG[T Ordered](c Capacity, opts ...Option) (*BTreeG[T], error) {
	return NewG[T](c, Less[T](), opts...)
}

// NewG creates a new tree with the given capacity.
//
// NewG(Degree(2), less), for example, will create a 2-3-4 tree (each node
// contains 1-3 items and 2-4 children).
//
// The passed-in LessFunc determines how objects of type T are ordered. An
// invalid capacity is reported as ErrInvalidCapacity before anything is
// allocated.
func NewG[T any](c Capacity, less LessFunc[T], opts ...Option) (*BTreeG[T], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newTree(c, less, o), nil
}

func newTree[T any](c Capacity, less LessFunc[T], o Options) *BTreeG[T] {
	return &BTreeG[T]{
		capacity: c,
		maxItems: c.MaxItems(),
		minItems: c.MinItems(),
		splitAt:  c.splitIndex(),
		freelist: newFreeList[T](o.freeListSize),
		less:     less,
		log:      o.logger,
		opts:     o,
	}
}

// items stores items in a node.
type items[T any] []T

// insertAt inserts a value into the given index, pushing all subsequent values
// forward.
func (s *items[T]) insertAt(index int, item T) {
	var zero T
	*s = append(*s, zero)
	if index < len(*s) {
		copy((*s)[index+1:], (*s)[index:])
	}
	(*s)[index] = item
}

// removeAt removes a value at a given index, pulling all subsequent values
// back.
func (s *items[T]) removeAt(index int) T {
	item := (*s)[index]
	copy((*s)[index:], (*s)[index+1:])
	var zero T
	(*s)[len(*s)-1] = zero
	*s = (*s)[:len(*s)-1]
	return item
}

// pop removes and returns the last element in the list.
func (s *items[T]) pop() (out T) {
	index := len(*s) - 1
	out = (*s)[index]
	var zero T
	(*s)[index] = zero
	*s = (*s)[:index]
	return
}

// truncate truncates this instance at index so that it contains only the
// first index items. index must be less than or equal to length.
func (s *items[T]) truncate(index int) {
	var toClear items[T]
	*s, toClear = (*s)[:index], (*s)[index:]
	var zero T
	for i := 0; i < len(toClear); i++ {
		toClear[i] = zero
	}
}

// upperBound returns the index of the first item greater than item. Inserts
// land there, after any equal items.
func (s items[T]) upperBound(item T, less LessFunc[T]) int {
	return sort.Search(len(s), func(i int) bool {
		return less(item, s[i])
	})
}

// lowerBound returns the index of the first item not less than item, and
// whether the item found there equals it.
func (s items[T]) lowerBound(item T, less LessFunc[T]) (index int, found bool) {
	i := sort.Search(len(s), func(i int) bool {
		return !less(s[i], item)
	})
	return i, i < len(s) && !less(item, s[i])
}

// node is an internal node in a tree.
//
// It must at all times maintain the invariant that either
//   - len(children) == 0, len(items) unconstrained
//   - len(children) == len(items) + 1
type node[T any] struct {
	items    items[T]
	children items[*node[T]]
	t        *BTreeG[T]
}

func (n *node[T]) isLeaf() bool {
	return len(n.children) == 0
}

// split splits the given node at the given index.  The current node shrinks,
// and this function returns the item that existed at that index and a new node
// containing all items/children after it.
func (n *node[T]) split(i int) (T, *node[T]) {
	item := n.items[i]
	next := n.t.newNode()
	next.items = append(next.items, n.items[i+1:]...)
	n.items.truncate(i)
	if len(n.children) > 0 {
		next.children = append(next.children, n.children[i+1:]...)
		n.children.truncate(i + 1)
	}
	return item, next
}

// splitChild splits the overflowed child i around the median picked by the
// tree's capacity. The median moves up into n at i, and the new sibling
// becomes child i+1.
func (n *node[T]) splitChild(i int) {
	left := n.children[i]
	item, right := left.split(n.t.splitAt)
	n.items.insertAt(i, item)
	n.children.insertAt(i+1, right)
	if n.t.tracing() {
		n.t.trace("split", logrus.Fields{
			"index":  i,
			"median": item,
			"left":   len(left.items),
			"right":  len(right.items),
		})
	}
}

// insert inserts an item into the subtree rooted at this node. A child that
// ends up with more than maxItems items is split before returning, so only
// n itself may be left overflowing.
func (n *node[T]) insert(item T) {
	i := n.items.upperBound(item, n.t.less)
	if n.isLeaf() {
		n.items.insertAt(i, item)
		return
	}
	child := n.children[i]
	child.insert(item)
	if len(child.items) > n.t.maxItems {
		n.splitChild(i)
	}
}

// get finds the given key in the subtree and returns it.
func (n *node[T]) get(key T) (_ T, _ bool) {
	i, found := n.items.lowerBound(key, n.t.less)
	if found {
		return n.items[i], true
	} else if len(n.children) > 0 {
		return n.children[i].get(key)
	}
	return
}

// first returns the first item in the subtree: the first item of its
// leftmost leaf. Only trees of order 2 have empty leaves, in which case the
// nearest separator on the way down is used instead.
func first[T any](n *node[T]) (_ T, found bool) {
	if n == nil {
		return
	}
	if len(n.children) > 0 {
		if out, ok := first(n.children[0]); ok {
			return out, true
		}
	}
	if len(n.items) == 0 {
		return
	}
	return n.items[0], true
}

// last returns the last item in the subtree, the mirror image of first.
func last[T any](n *node[T]) (_ T, found bool) {
	if n == nil {
		return
	}
	if len(n.children) > 0 {
		if out, ok := last(n.children[len(n.children)-1]); ok {
			return out, true
		}
	}
	if len(n.items) == 0 {
		return
	}
	return n.items[len(n.items)-1], true
}

// predecessor returns the largest item below the separator items[i].
func (n *node[T]) predecessor(i int) (T, bool) {
	return last(n.children[i])
}

// successor returns the smallest item above the separator items[i].
func (n *node[T]) successor(i int) (T, bool) {
	return first(n.children[i+1])
}

// remove removes one item equal to key from the subtree rooted at this
// node. A child left with fewer than minItems items is repaired before
// returning, so only n itself may end up short; its parent, or Delete for
// the root, takes care of that.
func (n *node[T]) remove(key T) (_ T, _ bool) {
	i, found := n.items.lowerBound(key, n.t.less)
	if n.isLeaf() {
		if found {
			return n.items.removeAt(i), true
		}
		return
	}
	var (
		out T
		ok  bool
		j   = i // the child that lost an item
	)
	if !found {
		out, ok = n.children[i].remove(key)
	} else {
		out, ok = n.items[i], true
		if pred, has := n.predecessor(i); has {
			// Replace the item with its predecessor, the rightmost item of our
			// immediate left child, and remove that one further down instead.
			n.items[i] = pred
			n.children[i].remove(pred)
		} else if succ, has := n.successor(i); has {
			// Only trees of order 2 have empty subtrees.
			n.items[i] = succ
			n.children[i+1].remove(succ)
			j = i + 1
		} else {
			n.items.removeAt(i)
			n.t.freeNode(n.children.removeAt(i + 1))
			return out, ok
		}
	}
	if ok && len(n.children[j].items) < n.t.minItems {
		n.fill(j)
	}
	return out, ok
}

// fill repairs child i, which has dropped to minItems-1 items. In order of
// preference it
//
//	a) steals from the left sibling, if that one has an item to spare
//	b) steals from the right sibling, if that one has an item to spare
//	c) merges with its right sibling, or its left one if i is the last child
//
// A merge takes one separator away from n, which may leave n short in turn.
func (n *node[T]) fill(i int) {
	minItems := n.t.minItems
	switch {
	case i > 0 && len(n.children[i-1].items) > minItems:
		n.stealLeft(i)
	case i < len(n.items) && len(n.children[i+1].items) > minItems:
		n.stealRight(i)
	case i < len(n.items):
		n.merge(i)
	default:
		n.merge(i - 1)
	}
}

// stealLeft moves the separator before child i down as the child's first
// item and the left sibling's last item up as the new separator. If the
// sibling has children, its last child moves along.
func (n *node[T]) stealLeft(i int) {
	child := n.children[i]
	stealFrom := n.children[i-1]
	stolenItem := stealFrom.items.pop()
	child.items.insertAt(0, n.items[i-1])
	n.items[i-1] = stolenItem
	if len(stealFrom.children) > 0 {
		child.children.insertAt(0, stealFrom.children.pop())
	}
	if n.t.tracing() {
		n.t.trace("borrow-left", logrus.Fields{"index": i, "separator": stolenItem})
	}
}

// stealRight is the mirror image of stealLeft.
func (n *node[T]) stealRight(i int) {
	child := n.children[i]
	stealFrom := n.children[i+1]
	stolenItem := stealFrom.items.removeAt(0)
	child.items = append(child.items, n.items[i])
	n.items[i] = stolenItem
	if len(stealFrom.children) > 0 {
		child.children = append(child.children, stealFrom.children.removeAt(0))
	}
	if n.t.tracing() {
		n.t.trace("borrow-right", logrus.Fields{"index": i, "separator": stolenItem})
	}
}

// merge pulls separator i and everything in child i+1 into child i, then
// destroys child i+1.
func (n *node[T]) merge(i int) {
	child := n.children[i]
	mergeItem := n.items.removeAt(i)
	mergeChild := n.children.removeAt(i + 1)
	child.items = append(child.items, mergeItem)
	child.items = append(child.items, mergeChild.items...)
	child.children = append(child.children, mergeChild.children...)
	n.t.freeNode(mergeChild)
	if n.t.tracing() {
		n.t.trace("merge", logrus.Fields{"index": i, "separator": mergeItem, "items": len(child.items)})
	}
}

// BTreeG is a generic implementation of a balanced multiway search tree.
//
// BTreeG stores items of type T in an ordered structure, allowing easy insertion,
// removal, and iteration.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, and must not run concurrently with reads either.
type BTreeG[T any] struct {
	capacity Capacity
	maxItems int
	minItems int
	splitAt  int
	length   int
	root     *node[T]
	freelist *freeList[T]
	less     LessFunc[T]
	log      *logrus.Logger
	opts     Options
}

// LessFunc[T] determines how to order a type 'T'.  It should implement a strict
// ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[T any] func(a, b T) bool

func (t *BTreeG[T]) newNode() (n *node[T]) {
	n = t.freelist.newNode()
	n.t = t
	return
}

func (t *BTreeG[T]) freeNode(n *node[T]) {
	// clear to allow GC
	n.items.truncate(0)
	n.children.truncate(0)
	n.t = nil // clear to allow GC
	t.freelist.freeNode(n)
}

// Insert adds the given item to the tree. An item equal to ones already in
// the tree is stored as well, after them. Insert never fails.
func (t *BTreeG[T]) Insert(item T) {
	if t.root == nil {
		t.root = t.newNode()
		t.root.items = append(t.root.items, item)
	} else {
		t.root.insert(item)
		if len(t.root.items) > t.maxItems {
			oldroot := t.root
			t.root = t.newNode()
			t.root.children = append(t.root.children, oldroot)
			t.root.splitChild(0)
			if t.tracing() {
				t.trace("grow", logrus.Fields{"height": t.Height()})
			}
		}
	}
	t.length++
	t.verify("insert")
}

// Delete removes one item equal to the passed in item from the tree,
// returning it. If no such item exists, returns (zeroValue, false) and the
// tree is left untouched.
func (t *BTreeG[T]) Delete(item T) (_ T, _ bool) {
	if t.root == nil {
		return
	}
	out, ok := t.root.remove(item)
	if !ok {
		return
	}
	t.length--
	if t.length == 0 {
		if t.root.isLeaf() {
			t.freeNode(t.root)
		}
		t.root = nil
	} else {
		for len(t.root.items) == 0 && len(t.root.children) > 0 {
			oldroot := t.root
			t.root = oldroot.children[0]
			t.freeNode(oldroot)
			if t.tracing() {
				t.trace("shrink", logrus.Fields{"height": t.Height()})
			}
		}
	}
	t.verify("delete")
	return out, true
}

// DeleteMin removes the smallest item in the tree and returns it.
// If no such item exists, returns (zeroValue, false).
func (t *BTreeG[T]) DeleteMin() (T, bool) {
	item, ok := t.Min()
	if !ok {
		return item, false
	}
	return t.Delete(item)
}

// DeleteMax removes the largest item in the tree and returns it.
// If no such item exists, returns (zeroValue, false).
func (t *BTreeG[T]) DeleteMax() (T, bool) {
	item, ok := t.Max()
	if !ok {
		return item, false
	}
	return t.Delete(item)
}

// Get looks for the key item in the tree, returning it.  It returns
// (zeroValue, false) if unable to find that item.
func (t *BTreeG[T]) Get(key T) (_ T, _ bool) {
	if t.root == nil {
		return
	}
	return t.root.get(key)
}

// Min returns the smallest item in the tree, or (zeroValue, false) if the tree is empty.
func (t *BTreeG[T]) Min() (_ T, _ bool) {
	return first(t.root)
}

// Max returns the largest item in the tree, or (zeroValue, false) if the tree is empty.
func (t *BTreeG[T]) Max() (_ T, _ bool) {
	return last(t.root)
}

// Has returns true if the given key is in the tree.
func (t *BTreeG[T]) Has(key T) bool {
	_, ok := t.Get(key)
	return ok
}

// Len returns the number of items currently in the tree.
func (t *BTreeG[T]) Len() int {
	return t.length
}

// IsEmpty reports whether the tree holds no items. An empty tree has no
// root node.
func (t *BTreeG[T]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the number of levels in the tree: 0 when empty, 1 when
// the root is a leaf.
func (t *BTreeG[T]) Height() int {
	if t.root == nil {
		return 0
	}
	h := 1
	for n := t.root; !n.isLeaf(); n = n.children[0] {
		h++
	}
	return h
}

// Capacity returns the capacity the tree was created with.
func (t *BTreeG[T]) Capacity() Capacity {
	return t.capacity
}

// Clear removes all items from the tree. The nodes are left to Go's normal
// GC processes.
func (t *BTreeG[T]) Clear() {
	t.root, t.length = nil, 0
}

func (t *BTreeG[T]) verify(op string) {
	if !t.opts.checkInvariants {
		return
	}
	if err := t.Check(); err != nil {
		abort(op, err)
	}
}
