/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn_test

import (
	"testing"

	"github.com/named-data/ndn-packet/ndn"
	"github.com/named-data/ndn-packet/ndn/security"
	"github.com/named-data/ndn-packet/ndn/tlv"
	"github.com/stretchr/testify/assert"
)

func TestSignatureInfoEncode(t *testing.T) {
	s := ndn.NewSignatureInfo(security.DigestSha256Type)
	assert.Equal(t, security.DigestSha256Type, s.Type())
	block, err := s.Encode()
	assert.NoError(t, err)
	wire, err := block.Wire()
	assert.NoError(t, err)
	assert.Equal(t, []byte{tlv.SignatureInfo, 0x03, tlv.SignatureType, 0x01, 0x00}, wire)
}

func TestSignatureInfoKeyLocator(t *testing.T) {
	s := ndn.NewSignatureInfo(security.SignatureHmacWithSha256Type)
	keyName, err := ndn.NameFromString("/key/1")
	assert.NoError(t, err)
	keyNameWire, err := keyName.Encode().Wire()
	assert.NoError(t, err)
	s.SetKeyLocator(tlv.NewBlock(tlv.KeyLocator, keyNameWire))
	assert.NotNil(t, s.KeyLocator())

	block, err := s.Encode()
	assert.NoError(t, err)
	decoded, err := ndn.DecodeSignatureInfo(block)
	assert.NoError(t, err)
	assert.Equal(t, security.SignatureHmacWithSha256Type, decoded.Type())
	assert.NotNil(t, decoded.KeyLocator())
	assert.True(t, s.Equals(decoded))

	s.UnsetKeyLocator()
	assert.Nil(t, s.KeyLocator())
	assert.False(t, s.Equals(decoded))
}

func TestSignatureInfoDecode(t *testing.T) {
	b := tlv.NewBlock(tlv.SignatureInfo, []byte{tlv.SignatureType, 0x01, 0x04})
	s, err := ndn.DecodeSignatureInfo(b)
	assert.NoError(t, err)
	assert.Equal(t, security.SignatureHmacWithSha256Type, s.Type())

	// Missing SignatureType
	b = tlv.NewBlock(tlv.SignatureInfo, []byte{})
	_, err = ndn.DecodeSignatureInfo(b)
	assert.Error(t, err)

	// Wrong element type
	b = tlv.NewBlock(tlv.Content, []byte{})
	_, err = ndn.DecodeSignatureInfo(b)
	assert.Error(t, err)
}

func TestSignatureInfoDecodeRejectsInterestElements(t *testing.T) {
	// SignatureNonce is only valid in InterestSignatureInfo
	b := tlv.NewBlock(tlv.SignatureInfo, []byte{
		tlv.SignatureType, 0x01, 0x00,
		tlv.SignatureNonce, 0x02, 0xAB, 0xCD})
	_, err := ndn.DecodeSignatureInfo(b)
	assert.Error(t, err)

	b = tlv.NewBlock(tlv.SignatureInfo, []byte{
		tlv.SignatureType, 0x01, 0x00,
		tlv.SignatureSeqNum, 0x01, 0x01})
	_, err = ndn.DecodeSignatureInfo(b)
	assert.Error(t, err)
}

func TestSignatureInfoDecodeOrdering(t *testing.T) {
	// KeyLocator before SignatureType
	b := tlv.NewBlock(tlv.SignatureInfo, []byte{
		tlv.KeyLocator, 0x00,
		tlv.SignatureType, 0x01, 0x00})
	_, err := ndn.DecodeSignatureInfo(b)
	assert.Error(t, err)
}
