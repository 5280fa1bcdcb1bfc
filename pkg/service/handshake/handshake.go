/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination handshake_mocks_test.go -self_package mocks -package handshake_test -source=handshake.go -mock_names proofService=MockProofService

// Package handshake negotiates the ECDH session keys that protect payloads exchanged with the
// enrollment authority and with holder wallets.
package handshake

import (
	"context"
	"fmt"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/crypto"
	"github.com/trustbloc/did-verifier/pkg/doc/did"
	"github.com/trustbloc/did-verifier/pkg/doc/e2e"
	"github.com/trustbloc/did-verifier/pkg/doc/profile"
	"github.com/trustbloc/did-verifier/pkg/doc/vc"
	"github.com/trustbloc/did-verifier/pkg/multibase"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
	"github.com/trustbloc/did-verifier/pkg/storage"
)

var logger = log.New("handshake")

type proofService interface {
	PreProof(doc *did.Document, purpose vc.ProofPurpose) (*vc.Proof, error)
	Sign(ctx context.Context, message interface{}, p *vc.Proof, enc multibase.Encoding) error
}

// E2E is the verifier side of one end-to-end session. SessionKey is the ephemeral private key
// whose public half was sent to the holder; the shared secret is derived again on every use.
type E2E struct {
	TxID       string
	SessionKey string
	Nonce      string
	Curve      crypto.Curve
	Cipher     crypto.Cipher
	Padding    crypto.Padding
	storage.Audit
}

// Initiation is the state an initiator keeps between sending ReqEcdh and receiving AccEcdh.
type Initiation struct {
	KeyPair     *crypto.KeyPair
	ClientNonce []byte
	Request     *e2e.ReqEcdh
}

// Engine runs both sides of the key agreement.
type Engine struct {
	proofs proofService
}

// New returns a handshake engine that signs requests with proofs.
func New(proofs proofService) *Engine {
	return &Engine{proofs: proofs}
}

// Initiate generates an ephemeral key pair and a client nonce on curve and returns a ReqEcdh
// signed with the keyAgreement key of self.
func (e *Engine) Initiate(ctx context.Context, curve crypto.Curve, self *did.Document) (*Initiation, error) {
	kp, err := crypto.GenerateKeyPair(curve)
	if err != nil {
		return nil, err
	}

	nonce, err := crypto.GenerateNonce(crypto.NonceSize)
	if err != nil {
		return nil, err
	}

	req := &e2e.ReqEcdh{
		Client:      self.ID,
		ClientNonce: multibase.MustEncode(nonce, multibase.Base64),
		Curve:       curve,
		PublicKey:   multibase.MustEncode(kp.PublicKey, multibase.Base58BTC),
		Candidate:   &e2e.Candidate{Ciphers: crypto.Ciphers()},
	}

	req.Proof, err = e.proofs.PreProof(self, vc.KeyAgreement)
	if err != nil {
		return nil, err
	}

	if err = e.proofs.Sign(ctx, req, req.Proof, multibase.Base64); err != nil {
		return nil, err
	}

	return &Initiation{KeyPair: kp, ClientNonce: nonce, Request: req}, nil
}

// CompleteAsInitiator derives the session key from the responder's answer.
func (e *Engine) CompleteAsInitiator(in *Initiation, acc *e2e.AccEcdh) (*Key, error) {
	peer, err := multibase.Decode(acc.PublicKey)
	if err != nil {
		return nil, err
	}

	serverNonce, err := multibase.Decode(acc.ServerNonce)
	if err != nil {
		return nil, err
	}

	secret, err := crypto.DeriveSharedSecret(peer, in.KeyPair.PrivateKey, in.KeyPair.Curve)
	if err != nil {
		return nil, err
	}

	nonce, err := crypto.MergeNonces(in.ClientNonce, serverNonce)
	if err != nil {
		return nil, err
	}

	return newKey(secret, nonce, acc.Cipher, acc.Padding)
}

// Offer fills the verifier half of req (curve, cipher and padding already set) with a fresh
// public key and nonce, and returns the session to keep for txID.
func (e *Engine) Offer(txID string, req *profile.ReqE2e) (*E2E, error) {
	if err := req.Curve.Valid(); err != nil {
		return nil, err
	}

	if _, err := req.Cipher.KeySize(); err != nil {
		return nil, err
	}

	if _, err := crypto.ParsePadding(string(req.Padding)); err != nil {
		return nil, err
	}

	kp, err := crypto.GenerateKeyPair(req.Curve)
	if err != nil {
		return nil, err
	}

	nonce, err := crypto.GenerateNonce(crypto.NonceSize)
	if err != nil {
		return nil, err
	}

	req.PublicKey = multibase.MustEncode(kp.PublicKey, multibase.Base58BTC)
	req.Nonce = multibase.MustEncode(nonce, multibase.Base64)

	logger.Debug("E2E session offered", log.WithTxID(txID))

	return &E2E{
		TxID:       txID,
		SessionKey: multibase.MustEncode(kp.PrivateKey, multibase.Base64),
		Nonce:      req.Nonce,
		Curve:      req.Curve,
		Cipher:     req.Cipher,
		Padding:    req.Padding,
	}, nil
}

// CompleteAsResponder derives the session key for the holder's public key. The verifier nonce
// is mixed in without merging since the holder contributes no nonce.
func (e *Engine) CompleteAsResponder(session *E2E, peerPublicKey, verifierNonce string) (*Key, error) {
	peer, err := multibase.Decode(peerPublicKey)
	if err != nil {
		return nil, err
	}

	priv, err := multibase.Decode(session.SessionKey)
	if err != nil {
		return nil, err
	}

	nonce, err := multibase.Decode(verifierNonce)
	if err != nil {
		return nil, err
	}

	secret, err := crypto.DeriveSharedSecret(peer, priv, session.Curve)
	if err != nil {
		return nil, err
	}

	return newKey(secret, nonce, session.Cipher, session.Padding)
}

// Key is a derived symmetric session key.
type Key struct {
	Secret  []byte
	Cipher  crypto.Cipher
	Padding crypto.Padding
}

func newKey(secret, nonce []byte, c crypto.Cipher, p crypto.Padding) (*Key, error) {
	k, err := crypto.MixSecretAndNonce(secret, nonce, c)
	if err != nil {
		return nil, err
	}

	return &Key{Secret: k, Cipher: c, Padding: p}, nil
}

// Decrypt decrypts the multibase ciphertext with the multibase iv.
func (k *Key) Decrypt(data, iv string) ([]byte, error) {
	ciphertext, err := multibase.Decode(data)
	if err != nil {
		return nil, err
	}

	rawIV, err := multibase.Decode(iv)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.Decrypt(ciphertext, k.Secret, rawIV, k.Cipher, k.Padding)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	return plaintext, nil
}

// Encrypt encrypts plaintext under a fresh iv. Both results are base64 multibase.
func (k *Key) Encrypt(plaintext []byte) (string, string, error) {
	iv, err := crypto.GenerateNonce(crypto.NonceSize)
	if err != nil {
		return "", "", err
	}

	ciphertext, err := crypto.Encrypt(plaintext, k.Secret, iv, k.Cipher, k.Padding)
	if err != nil {
		return "", "", resterr.Wrap(fmt.Errorf("encrypt: %w", err), resterr.CryptoError)
	}

	return multibase.MustEncode(ciphertext, multibase.Base64), multibase.MustEncode(iv, multibase.Base64), nil
}
