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
	"iter"
	"sync"
)

// SyncBTreeG serializes access to a BTreeG for use from multiple
// goroutines. Insert and Delete take an exclusive lock, since splits and
// merges rewrite parent and child nodes in several steps; reads share a
// read lock and may run concurrently with each other.
type SyncBTreeG[T any] struct {
	mu   sync.RWMutex
	tree *BTreeG[T]
}

// NewSync wraps tree. The caller must not use tree directly afterwards.
func NewSync[T any](tree *BTreeG[T]) *SyncBTreeG[T] {
	return &SyncBTreeG[T]{tree: tree}
}

func (s *SyncBTreeG[T]) Insert(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Insert(item)
}

func (s *SyncBTreeG[T]) Delete(item T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Delete(item)
}

func (s *SyncBTreeG[T]) Get(key T) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Get(key)
}

func (s *SyncBTreeG[T]) Has(key T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Has(key)
}

func (s *SyncBTreeG[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

func (s *SyncBTreeG[T]) Check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Check()
}

func (s *SyncBTreeG[T]) Ascend(iterator ItemIteratorG[T]) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.tree.Ascend(iterator)
}

// Walk holds the read lock for the whole walk; visit must not call back
// into Insert or Delete.
func (s *SyncBTreeG[T]) Walk(visit NodeVisitorG[T]) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.tree.Walk(visit)
}

// Traverse holds the read lock while the sequence is being ranged over.
func (s *SyncBTreeG[T]) Traverse() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		s.Walk(yield)
	}
}
