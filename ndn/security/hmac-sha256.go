/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import (
	"crypto/hmac"
	"crypto/sha256"
)

// HmacSha256 represents a signer that computes an HMAC over the packet using a shared key.
type HmacSha256 struct {
	key []byte
}

// NewHmacSha256Signer creates a new HmacSha256 signer using the provided key.
func NewHmacSha256Signer(key []byte) *HmacSha256 {
	s := new(HmacSha256)
	s.key = make([]byte, len(key))
	copy(s.key, key)
	return s
}

// Type returns the signature type produced by HmacSha256.
func (s *HmacSha256) Type() SignatureType {
	return SignatureHmacWithSha256Type
}

// Sign signs a buffer using HmacWithSha256.
func (s *HmacSha256) Sign(buf []byte) ([]byte, error) {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(buf)
	return mac.Sum(nil), nil
}

// Validate returns whether the provided signature is valid for the provided buffer.
func (s *HmacSha256) Validate(buf []byte, signature []byte) bool {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(buf)
	return hmac.Equal(mac.Sum(nil), signature)
}
