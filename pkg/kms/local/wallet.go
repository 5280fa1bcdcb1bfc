/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package local keeps signing keys in a wallet file on local disk.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/crypto"
	"github.com/trustbloc/did-verifier/pkg/multibase"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

var logger = log.New("kms-local")

type metricsProvider interface {
	SignTime(value time.Duration)
}

// KeyEntry is one key of the wallet file.
type KeyEntry struct {
	ID         string       `json:"id"`
	Curve      crypto.Curve `json:"curve"`
	PrivateKey string       `json:"privateKey"`
}

type walletFile struct {
	Keys []KeyEntry `json:"keys"`
}

type key struct {
	curve   crypto.Curve
	private []byte
	public  []byte
}

// Wallet signs with keys loaded from a wallet file.
type Wallet struct {
	keys    map[string]*key
	metrics metricsProvider
}

// Open loads the wallet file at path.
func Open(path string, metrics metricsProvider) (*Wallet, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, resterr.New(resterr.FailedToGetFileWalletManager, fmt.Errorf("read wallet: %w", err)).
			WithComponent(resterr.KMSComponent)
	}

	var f walletFile

	if err = json.Unmarshal(raw, &f); err != nil {
		return nil, resterr.New(resterr.FailedToGetFileWalletManager, fmt.Errorf("parse wallet: %w", err)).
			WithComponent(resterr.KMSComponent)
	}

	w, err := New(f.Keys, metrics)
	if err != nil {
		return nil, err
	}

	logger.Info("Opened file wallet", log.WithPath(path), log.WithCount(len(w.keys)))

	return w, nil
}

// New returns a wallet holding the given keys.
func New(entries []KeyEntry, metrics metricsProvider) (*Wallet, error) {
	w := &Wallet{keys: make(map[string]*key, len(entries)), metrics: metrics}

	for _, e := range entries {
		priv, err := multibase.Decode(e.PrivateKey)
		if err != nil {
			return nil, resterr.New(resterr.FailedToGetFileWalletManager,
				fmt.Errorf("decode key %s: %w", e.ID, err)).WithComponent(resterr.KMSComponent)
		}

		pub, err := crypto.CompressPublicKey(priv, e.Curve)
		if err != nil {
			return nil, resterr.New(resterr.FailedToGetFileWalletManager,
				fmt.Errorf("key %s: %w", e.ID, err)).WithComponent(resterr.KMSComponent)
		}

		w.keys[e.ID] = &key{curve: e.Curve, private: priv, public: pub}
	}

	return w, nil
}

// Sign hashes message and signs the digest with the key.
func (w *Wallet) Sign(_ context.Context, keyID string, message []byte) ([]byte, error) {
	startTime := time.Now()

	defer func() {
		if w.metrics != nil {
			w.metrics.SignTime(time.Since(startTime))
		}
	}()

	k, ok := w.keys[keyID]
	if !ok {
		return nil, resterr.Newf(resterr.WalletSignatureGenerationFailed, "key %q not in wallet", keyID).
			WithComponent(resterr.KMSComponent)
	}

	sig, err := crypto.SignCompact(k.private, crypto.Digest(message), k.curve)
	if err != nil {
		return nil, err
	}

	logger.Debug("Signed with wallet key", log.WithKeyID(keyID))

	return sig, nil
}

// PublicKey returns the compressed public key of the key.
func (w *Wallet) PublicKey(keyID string) ([]byte, crypto.Curve, error) {
	k, ok := w.keys[keyID]
	if !ok {
		return nil, "", resterr.Newf(resterr.WalletConnectionFailed, "key %q not in wallet", keyID).
			WithComponent(resterr.KMSComponent)
	}

	return k.public, k.curve, nil
}
