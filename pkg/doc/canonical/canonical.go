/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package canonical serializes JSON documents into the form that proofs are computed over:
// object keys sorted lexicographically, null members omitted, no insignificant whitespace.
// Signing and verification both go through this package so they see the same bytes.
package canonical

import (
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/valyala/fastjson"
)

var parserPool fastjson.ParserPool //nolint:gochecknoglobals

type options struct {
	excluded [][]string
}

// Option customizes canonicalization.
type Option func(o *options)

// Without drops the member at the given object path before serializing.
func Without(path ...string) Option {
	return func(o *options) {
		o.excluded = append(o.excluded, path)
	}
}

// WithoutProofValue drops the signature values of the top level proof.
func WithoutProofValue() Option {
	return func(o *options) {
		o.excluded = append(o.excluded,
			[]string{"proof", "proofValue"},
			[]string{"proof", "proofValueList"},
		)
	}
}

// Marshal encodes v with encoding/json and canonicalizes the result.
func Marshal(v interface{}, opts ...Option) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	return Canonicalize(raw, opts...)
}

// Canonicalize returns the canonical form of a JSON document.
func Canonicalize(raw []byte, opts ...Option) ([]byte, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	for _, path := range o.excluded {
		if len(path) == 0 {
			continue
		}

		parent := v.Get(path[:len(path)-1]...)
		if parent != nil && parent.Type() == fastjson.TypeObject {
			parent.Del(path[len(path)-1])
		}
	}

	return Encode(nil, v), nil
}

// Encode appends the canonical form of v to dst.
func Encode(dst []byte, v *fastjson.Value) []byte {
	switch v.Type() {
	case fastjson.TypeObject:
		return encodeObject(dst, v.GetObject())
	case fastjson.TypeArray:
		dst = append(dst, '[')

		for i, item := range v.GetArray() {
			if i > 0 {
				dst = append(dst, ',')
			}

			dst = Encode(dst, item)
		}

		return append(dst, ']')
	case fastjson.TypeString:
		return appendString(dst, string(v.GetStringBytes()))
	default:
		// numbers keep their original text; true, false and null are literals
		return v.MarshalTo(dst)
	}
}

func encodeObject(dst []byte, o *fastjson.Object) []byte {
	type member struct {
		key string
		val *fastjson.Value
	}

	members := make([]member, 0, o.Len())

	o.Visit(func(key []byte, v *fastjson.Value) {
		if v.Type() == fastjson.TypeNull {
			return
		}

		members = append(members, member{key: string(key), val: v})
	})

	sort.Slice(members, func(i, j int) bool {
		return members[i].key < members[j].key
	})

	dst = append(dst, '{')

	for i, m := range members {
		if i > 0 {
			dst = append(dst, ',')
		}

		dst = appendString(dst, m.key)
		dst = append(dst, ':')
		dst = Encode(dst, m.val)
	}

	return append(dst, '}')
}

const hex = "0123456789abcdef"

// appendString writes a JSON string literal. Only the characters JSON requires are escaped.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')

	for i := 0; i < len(s); {
		c := s[i]

		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				dst = append(dst, "\ufffd"...)
			} else {
				dst = append(dst, s[i:i+size]...)
			}

			i += size

			continue
		}

		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
			} else {
				dst = append(dst, c)
			}
		}

		i++
	}

	return append(dst, '"')
}
