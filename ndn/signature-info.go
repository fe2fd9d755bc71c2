/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"errors"
	"strconv"

	"github.com/named-data/ndn-packet/ndn/security"
	"github.com/named-data/ndn-packet/ndn/tlv"
	"github.com/named-data/ndn-packet/ndn/util"
)

// SignatureInfo represents the SignatureInfo block in a Data packet.
type SignatureInfo struct {
	signatureType security.SignatureType
	keyLocator    *tlv.Block
	wire          *tlv.Block
}

// NewSignatureInfo creates a new SignatureInfo of the specified type.
func NewSignatureInfo(signatureType security.SignatureType) *SignatureInfo {
	s := new(SignatureInfo)
	s.signatureType = signatureType
	return s
}

// DecodeSignatureInfo decodes a SignatureInfo from the wire.
func DecodeSignatureInfo(wire *tlv.Block) (*SignatureInfo, error) {
	if wire == nil {
		return nil, util.ErrNonExistent
	}

	if wire.Type() != tlv.SignatureInfo {
		return nil, errors.New("block must be SignatureInfo")
	}

	s := new(SignatureInfo)
	s.wire = wire.DeepCopy()
	if !s.wire.Parse() {
		return nil, errors.New("error parsing SignatureInfo value")
	}
	hasSignatureType := false
	mostRecentElem := 0
	for _, elem := range s.wire.Subelements() {
		switch elem.Type() {
		case tlv.SignatureType:
			if mostRecentElem >= 1 {
				return nil, errors.New("SignatureType is duplicate or out-of-order")
			}
			mostRecentElem = 1
			signatureType, err := tlv.DecodeNNIBlock(elem)
			if err != nil {
				return nil, errors.New("error decoding SignatureType")
			}
			s.signatureType = security.SignatureType(signatureType)
			hasSignatureType = true
		case tlv.KeyLocator:
			if mostRecentElem >= 2 {
				return nil, errors.New("KeyLocator is duplicate or out-of-order")
			}
			mostRecentElem = 2
			s.keyLocator = elem.DeepCopy()
		case tlv.SignatureNonce, tlv.SignatureTime, tlv.SignatureSeqNum:
			return nil, errors.New("Interest signature element cannot be present in SignatureInfo for Data")
		default:
			if tlv.IsCritical(elem.Type()) {
				return nil, tlv.ErrUnrecognizedCritical
			}
			// If non-critical, ignore
		}
	}

	if !hasSignatureType {
		return nil, errors.New("SignatureInfo must contain a SignatureType")
	}
	return s, nil
}

func (s *SignatureInfo) String() string {
	str := "SignatureInfo(SignatureType=" + strconv.FormatUint(uint64(s.signatureType), 10)
	if s.keyLocator != nil {
		str += ", KeyLocator"
	}
	str += ")"
	return str
}

// DeepCopy creates a deep copy of the SignatureInfo.
func (s *SignatureInfo) DeepCopy() *SignatureInfo {
	copyS := new(SignatureInfo)
	copyS.signatureType = s.signatureType
	if s.keyLocator != nil {
		copyS.keyLocator = s.keyLocator.DeepCopy()
	}
	return copyS
}

// Equals returns whether the specified SignatureInfo matches this one.
func (s *SignatureInfo) Equals(other *SignatureInfo) bool {
	if other == nil || s.signatureType != other.signatureType {
		return false
	}
	if (s.keyLocator == nil) != (other.keyLocator == nil) {
		return false
	}
	if s.keyLocator != nil {
		thisWire, thisErr := s.keyLocator.Wire()
		otherWire, otherErr := other.keyLocator.Wire()
		if thisErr != nil || otherErr != nil || len(thisWire) != len(otherWire) {
			return false
		}
		for i := range thisWire {
			if thisWire[i] != otherWire[i] {
				return false
			}
		}
	}
	return true
}

// Type returns the type of the signature.
func (s *SignatureInfo) Type() security.SignatureType {
	return s.signatureType
}

// SetType sets the type of the signature.
func (s *SignatureInfo) SetType(signatureType security.SignatureType) {
	s.signatureType = signatureType
	s.wire = nil
}

// KeyLocator returns the KeyLocator of the signature.
func (s *SignatureInfo) KeyLocator() *tlv.Block {
	if s.keyLocator == nil {
		return nil
	}
	return s.keyLocator.DeepCopy()
}

// SetKeyLocator sets the KeyLocator of the signature.
func (s *SignatureInfo) SetKeyLocator(keyLocator *tlv.Block) {
	s.wire = nil
	if keyLocator == nil {
		s.keyLocator = nil
		return
	}
	s.keyLocator = keyLocator.DeepCopy()
}

// UnsetKeyLocator unsets the KeyLocator of the signature.
func (s *SignatureInfo) UnsetKeyLocator() {
	s.keyLocator = nil
	s.wire = nil
}

// EncodeInto prepends the wire encoding of the SignatureInfo to an encoder and returns the encoded size.
func (s *SignatureInfo) EncodeInto(encoder tlv.Encoder) (int, error) {
	valueLen := 0

	// KeyLocator
	if s.keyLocator != nil {
		keyLocatorWire, err := s.keyLocator.Wire()
		if err != nil {
			return 0, errors.New("unable to encode KeyLocator")
		}
		valueLen += encoder.PrependBytes(keyLocatorWire)
	}

	// SignatureType
	valueLen += tlv.PrependNNIBlock(encoder, tlv.SignatureType, uint64(s.signatureType))

	return valueLen + tlv.PrependTL(encoder, tlv.SignatureInfo, valueLen), nil
}

// Encode encodes the SignatureInfo into a block.
func (s *SignatureInfo) Encode() (*tlv.Block, error) {
	if s.wire == nil {
		estimator := new(tlv.Estimator)
		if _, err := s.EncodeInto(estimator); err != nil {
			return nil, err
		}
		buffer := tlv.NewEncodingBuffer(estimator.Size())
		if _, err := s.EncodeInto(buffer); err != nil {
			return nil, err
		}

		wire, _, err := tlv.DecodeBlock(buffer.Bytes())
		if err != nil {
			return nil, err
		}
		s.wire = wire
	}
	return s.wire.DeepCopy(), nil
}

// HasWire returns whether a valid up-to-date wire encoding exists for the SignatureInfo.
func (s *SignatureInfo) HasWire() bool {
	return s.wire != nil
}
