/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

// Encrypt encrypts data with AES in the cipher's mode. The iv is ignored for ECB.
func Encrypt(data, key, iv []byte, c Cipher, p Padding) ([]byte, error) {
	block, err := newBlock(key, iv, c)
	if err != nil {
		return nil, err
	}

	switch p {
	case PKCS5:
		data = pkcs5Pad(data, aes.BlockSize)
	case NoPad:
		if len(data) == 0 || len(data)%aes.BlockSize != 0 {
			return nil, resterr.Newf(resterr.CryptoError, "data length %d is not a multiple of the block size", len(data))
		}
	default:
		return nil, resterr.Newf(resterr.InvalidSymmetricPaddingType, "unsupported padding %q", p)
	}

	out := make([]byte, len(data))

	if c.cbc() {
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, data)
	} else {
		for i := 0; i < len(data); i += aes.BlockSize {
			block.Encrypt(out[i:i+aes.BlockSize], data[i:i+aes.BlockSize])
		}
	}

	return out, nil
}

// Decrypt reverses Encrypt.
func Decrypt(data, key, iv []byte, c Cipher, p Padding) ([]byte, error) {
	block, err := newBlock(key, iv, c)
	if err != nil {
		return nil, err
	}

	if p != PKCS5 && p != NoPad {
		return nil, resterr.Newf(resterr.InvalidSymmetricPaddingType, "unsupported padding %q", p)
	}

	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, resterr.Newf(resterr.CryptoDecryptionFailed,
			"ciphertext length %d is not a multiple of the block size", len(data))
	}

	out := make([]byte, len(data))

	if c.cbc() {
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	} else {
		for i := 0; i < len(data); i += aes.BlockSize {
			block.Decrypt(out[i:i+aes.BlockSize], data[i:i+aes.BlockSize])
		}
	}

	if p == PKCS5 {
		out, err = pkcs5Unpad(out, aes.BlockSize)
		if err != nil {
			return nil, resterr.New(resterr.CryptoDecryptionFailed, err)
		}
	}

	return out, nil
}

func newBlock(key, iv []byte, c Cipher) (cipher.Block, error) {
	size, err := c.KeySize()
	if err != nil {
		return nil, err
	}

	if len(key) != size {
		return nil, resterr.Newf(resterr.CryptoError, "%s needs a %d byte key, got %d", c, size, len(key))
	}

	if c.cbc() && len(iv) != aes.BlockSize {
		return nil, resterr.Newf(resterr.CryptoError, "invalid iv length %d", len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, resterr.New(resterr.CryptoError, err)
	}

	return block, nil
}

func pkcs5Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize

	return append(append([]byte{}, data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs5Unpad(data []byte, blockSize int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("invalid padding")
	}

	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}

	return data[:len(data)-n], nil
}
