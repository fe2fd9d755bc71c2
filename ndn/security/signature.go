/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import (
	"errors"
)

// SignatureType represents the type of a signature.
type SignatureType uint64

// The various possible values of SignatureType.
const (
	DigestSha256Type             SignatureType = 0
	SignatureSha256WithRsaType   SignatureType = 1
	SignatureSha256WithEcdsaType SignatureType = 3
	SignatureHmacWithSha256Type  SignatureType = 4
)

// Signer represents an implementation of a signature type. The buffer passed
// to Sign and Validate is the unsigned portion of a packet.
type Signer interface {
	Type() SignatureType
	Sign(buffer []byte) ([]byte, error)
	Validate(buffer []byte, signature []byte) bool
}

// Sign signs the provided buffer using the appropriate keyless signer.
func Sign(signatureType SignatureType, buffer []byte) ([]byte, error) {
	switch signatureType {
	case DigestSha256Type:
		var signer DigestSha256
		return signer.Sign(buffer)
	case SignatureSha256WithRsaType, SignatureSha256WithEcdsaType, SignatureHmacWithSha256Type:
		return nil, errors.New("signature type requires a keyed signer")
	default:
		return nil, errors.New("unknown SignatureType")
	}
}

// Verify verifies the provided signature against the provided buffer using the appropriate keyless signer.
func Verify(signatureType SignatureType, buffer []byte, signature []byte) (bool, error) {
	switch signatureType {
	case DigestSha256Type:
		var signer DigestSha256
		return signer.Validate(buffer, signature), nil
	case SignatureSha256WithRsaType, SignatureSha256WithEcdsaType, SignatureHmacWithSha256Type:
		return false, errors.New("signature type requires a keyed signer")
	default:
		return false, errors.New("unknown SignatureType")
	}
}
