/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package storage holds what the repository implementations share.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrDataNotFound is returned by repositories when no row matches.
var ErrDataNotFound = errors.New("data not found")

// ErrDataAlreadyExists is returned by write-once repositories when the row is already stored.
var ErrDataAlreadyExists = errors.New("data already exists")

// TxFunc is one unit of work. Repository calls made with ctx take part in it.
type TxFunc func(ctx context.Context) error

// Audit holds the bookkeeping timestamps every persisted row carries.
type Audit struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Touch sets UpdatedAt, and CreatedAt on first use.
func (a *Audit) Touch(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}

	a.UpdatedAt = now
}
