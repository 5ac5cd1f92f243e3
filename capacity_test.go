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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityBounds(t *testing.T) {
	for _, tc := range []struct {
		c          Capacity
		max, min   int
		splitIndex int
	}{
		{Order(2), 1, 0, 0},
		{Order(3), 2, 1, 1},
		{Order(4), 3, 1, 1},
		{Order(5), 4, 2, 2},
		{Order(6), 5, 2, 2},
		{Order(7), 6, 3, 3},
		{Degree(2), 3, 1, 1},
		{Degree(3), 5, 2, 2},
		{Degree(32), 63, 31, 31},
	} {
		t.Run(tc.c.String(), func(t *testing.T) {
			require.NoError(t, tc.c.Validate())
			assert.Equal(t, tc.max, tc.c.MaxItems())
			assert.Equal(t, tc.min, tc.c.MinItems())
			assert.Equal(t, tc.splitIndex, tc.c.splitIndex())

			// Splitting an overflowed node must leave both halves legal,
			// and merging an underflowed node with a minimal sibling must
			// not overflow.
			overflow := tc.c.MaxItems() + 1
			left := tc.splitIndex
			right := overflow - left - 1
			assert.GreaterOrEqual(t, left, tc.c.MinItems())
			assert.GreaterOrEqual(t, right, tc.c.MinItems())
			if tc.c.MinItems() > 0 {
				assert.LessOrEqual(t, 2*tc.c.MinItems(), tc.c.MaxItems())
			}
		})
	}
}

func TestCapacityValidate(t *testing.T) {
	for _, c := range []Capacity{
		Order(1),
		Order(0),
		Degree(1),
		Degree(-3),
		{},
		{Policy: Policy(7), N: 3},
	} {
		t.Run(c.String(), func(t *testing.T) {
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCapacity))

			tr, err := NewOrderedG[int](c)
			assert.Nil(t, tr)
			assert.True(t, errors.Is(err, ErrInvalidCapacity))

			bt, err := New(c)
			assert.Nil(t, bt)
			assert.True(t, errors.Is(err, ErrInvalidCapacity))
		})
	}
}

func TestCapacityString(t *testing.T) {
	assert.Equal(t, "order=3", Order(3).String())
	assert.Equal(t, "degree=2", Degree(2).String())
	assert.Equal(t, "Policy(9)", Policy(9).String())

	tr := newIntTree(t, Order(5))
	assert.Equal(t, Order(5), tr.Capacity())
}
