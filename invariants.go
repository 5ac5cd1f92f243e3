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

// Check validates the structural invariants of the tree and returns an
// error wrapping ErrInvariant describing the first violation found:
//   - no node holds more than MaxItems items, no non-root node fewer than
//     MinItems,
//   - a node either has no children or exactly one more child than items,
//     none of them nil,
//   - all leaves are at the same depth,
//   - every separator lies between its predecessor and successor, and an
//     in-order walk never decreases,
//   - Len matches the number of items stored.
func (t *BTreeG[T]) Check() error {
	if t.root == nil {
		if t.length != 0 {
			return invariantf("empty tree reports %d items", t.length)
		}
		return nil
	}
	leafDepth := -1
	count, err := t.checkNode(t.root, 0, &leafDepth)
	if err != nil {
		return err
	}
	if count != t.length {
		return invariantf("counted %d items, Len reports %d", count, t.length)
	}
	var (
		prev     T
		started  bool
		orderErr error
	)
	t.Ascend(func(item T) bool {
		if started && t.less(item, prev) {
			orderErr = invariantf("in-order walk decreases: %v after %v", item, prev)
			return false
		}
		prev, started = item, true
		return true
	})
	return orderErr
}

func (t *BTreeG[T]) checkNode(n *node[T], depth int, leafDepth *int) (int, error) {
	if n.t != t {
		return 0, invariantf("node at depth %d is not owned by this tree", depth)
	}
	if len(n.items) > t.maxItems {
		return 0, invariantf("node at depth %d holds %d items, max is %d", depth, len(n.items), t.maxItems)
	}
	if depth > 0 && len(n.items) < t.minItems {
		return 0, invariantf("node at depth %d holds %d items, min is %d", depth, len(n.items), t.minItems)
	}
	if n.isLeaf() {
		if *leafDepth < 0 {
			*leafDepth = depth
		} else if *leafDepth != depth {
			return 0, invariantf("leaf at depth %d, other leaves at depth %d", depth, *leafDepth)
		}
		return len(n.items), nil
	}
	if len(n.children) != len(n.items)+1 {
		return 0, invariantf("node at depth %d has %d items but %d children", depth, len(n.items), len(n.children))
	}
	count := len(n.items)
	for i, c := range n.children {
		if c == nil {
			return 0, invariantf("nil child %d at depth %d", i, depth)
		}
		sub, err := t.checkNode(c, depth+1, leafDepth)
		if err != nil {
			return 0, err
		}
		count += sub
	}
	for i, item := range n.items {
		if pred, ok := n.predecessor(i); ok && t.less(item, pred) {
			return 0, invariantf("separator %v at depth %d is less than its predecessor %v", item, depth, pred)
		}
		if succ, ok := n.successor(i); ok && t.less(succ, item) {
			return 0, invariantf("separator %v at depth %d is greater than its successor %v", item, depth, succ)
		}
	}
	return count, nil
}
