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

	"github.com/cockroachdb/errors"
)

// Policy selects how a Capacity parameter is interpreted.
type Policy int

const (
	// PolicyOrder treats the parameter as the order m of an m-way tree: the
	// maximum number of children per node.
	PolicyOrder Policy = iota + 1
	// PolicyDegree treats the parameter as the minimum degree t of a B-Tree.
	PolicyDegree
)

func (p Policy) String() string {
	switch p {
	case PolicyOrder:
		return "order"
	case PolicyDegree:
		return "degree"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Capacity derives the occupancy bounds of every node from a single
// configured parameter.
//
//	policy      maxItems  minItems     split index
//	Order(m)    m-1       ceil(m/2)-1  (m-1)/2
//	Degree(t)   2t-1      t-1          t-1
//
// Degree(2), for example, describes a 2-3-4 tree (each node contains 1-3
// items and 2-4 children), as does Order(4).
type Capacity struct {
	Policy Policy
	N      int
}

// Order returns the capacity of an m-way tree of order m.
func Order(m int) Capacity {
	return Capacity{Policy: PolicyOrder, N: m}
}

// Degree returns the capacity of a B-Tree of minimum degree t.
func Degree(t int) Capacity {
	return Capacity{Policy: PolicyDegree, N: t}
}

// Validate reports whether a tree can be built with c.
func (c Capacity) Validate() error {
	switch c.Policy {
	case PolicyOrder, PolicyDegree:
	default:
		return errors.Wrapf(ErrInvalidCapacity, "unknown policy %d", int(c.Policy))
	}
	if c.N < 2 {
		return errors.Wrapf(ErrInvalidCapacity, "%s must be at least 2, got %d", c.Policy, c.N)
	}
	return nil
}

// MaxItems returns the max number of items to allow per node.
func (c Capacity) MaxItems() int {
	if c.Policy == PolicyDegree {
		return 2*c.N - 1
	}
	return c.N - 1
}

// MinItems returns the min number of items to allow per node (ignored for
// the root node).
func (c Capacity) MinItems() int {
	if c.Policy == PolicyDegree {
		return c.N - 1
	}
	return (c.N+1)/2 - 1
}

// splitIndex is the position of the median in a node that overflowed to
// MaxItems()+1 items. Items before it stay, items after it move to the new
// sibling.
func (c Capacity) splitIndex() int {
	if c.Policy == PolicyDegree {
		return c.N - 1
	}
	return (c.N - 1) / 2
}

func (c Capacity) String() string {
	return fmt.Sprintf("%s=%d", c.Policy, c.N)
}
