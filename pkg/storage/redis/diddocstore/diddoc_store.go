/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package diddocstore shares the DID document cache between verifier instances through redis.
package diddocstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/trustbloc/did-verifier/pkg/diddoc"
	"github.com/trustbloc/did-verifier/pkg/storage/redis"
)

const (
	docKey   = "diddoc"
	indexKey = "diddoc-index"
)

// Store is a diddoc.EntryStore backed by redis. Entries do not expire; the cache refresh
// replaces them.
type Store struct {
	redisClient *redis.Client
}

// New creates Store.
func New(redisClient *redis.Client) *Store {
	return &Store{redisClient: redisClient}
}

func (s *Store) Get(ctx context.Context, did string) (*diddoc.Entry, bool, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	b, err := s.redisClient.API().Get(ctxWithTimeout, s.redisClient.Key(docKey, did)).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("diddoc get: %w", err)
	}

	entry := &diddoc.Entry{}
	if err = json.Unmarshal(b, entry); err != nil {
		return nil, false, fmt.Errorf("diddoc decode: %w", err)
	}

	return entry, true, nil
}

func (s *Store) Put(ctx context.Context, did string, entry *diddoc.Entry) error {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	b, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("diddoc encode: %w", err)
	}

	_, err = s.redisClient.API().Pipelined(ctxWithTimeout, func(pipe redisapi.Pipeliner) error {
		pipe.Set(ctxWithTimeout, s.redisClient.Key(docKey, did), b, 0)
		pipe.SAdd(ctxWithTimeout, s.redisClient.Key(indexKey), did)

		return nil
	})
	if err != nil {
		return fmt.Errorf("diddoc set: %w", err)
	}

	return nil
}

func (s *Store) DIDs(ctx context.Context) ([]string, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	dids, err := s.redisClient.API().SMembers(ctxWithTimeout, s.redisClient.Key(indexKey)).Result()
	if err != nil {
		return nil, fmt.Errorf("diddoc list: %w", err)
	}

	sort.Strings(dids)

	return dids, nil
}
