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

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidCapacity signals a capacity parameter the tree cannot be
	// built with. It is returned before any node is allocated.
	ErrInvalidCapacity = errors.New("btree: invalid capacity")
	// ErrInvariant signals a structural inconsistency found by Check.
	ErrInvariant = errors.New("btree: invariant violation")
)

// invariantf wraps ErrInvariant with details about the offending node.
func invariantf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvariant, format, args...)
}

// abort panics with an assertion failure wrapping err. It is used when a
// mutation leaves the tree in a state Check rejects; continuing would only
// spread the corruption.
func abort(op string, err error) {
	panic(errors.NewAssertionErrorWithWrappedErrf(err, "btree: %s left tree inconsistent", op))
}
