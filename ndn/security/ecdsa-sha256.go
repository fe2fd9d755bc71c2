/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"errors"
)

// EcdsaSha256 represents a signer that produces an ECDSA signature over the SHA-256 digest of the packet.
type EcdsaSha256 struct {
	privateKey *ecdsa.PrivateKey
}

// NewEcdsaSha256Signer creates a new EcdsaSha256 signer using the provided private key.
func NewEcdsaSha256Signer(privateKey *ecdsa.PrivateKey) *EcdsaSha256 {
	s := new(EcdsaSha256)
	s.privateKey = privateKey
	return s
}

// Type returns the signature type produced by EcdsaSha256.
func (s *EcdsaSha256) Type() SignatureType {
	return SignatureSha256WithEcdsaType
}

// Sign signs a buffer using SignatureSha256WithEcdsa.
func (s *EcdsaSha256) Sign(buf []byte) ([]byte, error) {
	if s.privateKey == nil {
		return nil, errors.New("no private key set")
	}
	digest := sha256.Sum256(buf)
	return ecdsa.SignASN1(rand.Reader, s.privateKey, digest[:])
}

// Validate returns whether the provided signature is valid for the provided buffer.
func (s *EcdsaSha256) Validate(buf []byte, signature []byte) bool {
	if s.privateKey == nil {
		return false
	}
	digest := sha256.Sum256(buf)
	return ecdsa.VerifyASN1(&s.privateKey.PublicKey, digest[:], signature)
}
