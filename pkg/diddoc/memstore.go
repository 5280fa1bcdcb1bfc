/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package diddoc

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// MemStore is an in-memory EntryStore. It has no eviction.
type MemStore struct {
	mutex   sync.RWMutex
	entries map[string]*Entry
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{entries: map[string]*Entry{}}
}

func (s *MemStore) Get(_ context.Context, did string) (*Entry, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, ok := s.entries[did]

	return entry, ok, nil
}

func (s *MemStore) Put(_ context.Context, did string, entry *Entry) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.entries[did] = entry

	return nil
}

func (s *MemStore) DIDs(_ context.Context) ([]string, error) {
	s.mutex.RLock()
	dids := lo.Keys(s.entries)
	s.mutex.RUnlock()

	sort.Strings(dids)

	return dids, nil
}
