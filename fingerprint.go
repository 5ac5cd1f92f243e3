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

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the shape of the tree: every node's depth and items in
// pre-order, formatted with %v. Two trees built by the same sequence of
// operations under the same capacity have the same fingerprint.
func (t *BTreeG[T]) Fingerprint() uint64 {
	d := xxhash.New()
	t.Walk(func(depth int, items []T) bool {
		fmt.Fprintf(d, "%d:%v\n", depth, items)
		return true
	})
	return d.Sum64()
}
