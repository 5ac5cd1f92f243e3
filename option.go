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

import "github.com/sirupsen/logrus"

const (
	DefaultFreeListSize = 32
)

// Options configures tree behavior that is independent of its capacity.
type Options struct {
	logger          *logrus.Logger
	checkInvariants bool // run Check after every mutation
	freeListSize    int  // destroyed nodes kept for reuse
}

// DefaultOptions returns the configuration used when no Option is passed.
func DefaultOptions() Options {
	return Options{
		logger:       discardLogger(),
		freeListSize: DefaultFreeListSize,
	}
}

// Option configures tree options using the functional options pattern.
type Option func(*Options)

// WithLogger routes structural events (root growth, splits, borrows,
// merges) to l at Debug level.
func WithLogger(l *logrus.Logger) Option {
	return func(opts *Options) {
		if l != nil {
			opts.logger = l
		}
	}
}

// WithInvariantChecks verifies the whole tree after every Insert and
// Delete and panics if a mutation broke an invariant. Every mutation
// becomes O(n); meant for tests and debugging sessions.
func WithInvariantChecks() Option {
	return func(opts *Options) {
		opts.checkInvariants = true
	}
}

// WithFreeListSize sets how many destroyed nodes a tree keeps for reuse.
// Zero disables recycling.
func WithFreeListSize(n int) Option {
	return func(opts *Options) {
		if n >= 0 {
			opts.freeListSize = n
		}
	}
}
