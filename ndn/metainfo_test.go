/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn_test

import (
	"testing"
	"time"

	"github.com/named-data/ndn-packet/ndn"
	"github.com/named-data/ndn-packet/ndn/tlv"
	"github.com/stretchr/testify/assert"
)

func TestMetaInfoNew(t *testing.T) {
	m := ndn.NewMetaInfo()
	assert.NotNil(t, m)
	assert.Nil(t, m.ContentType())
	assert.Nil(t, m.FreshnessPeriod())
	assert.Nil(t, m.FinalBlockID())
	assert.False(t, m.MobilityFlag())
	assert.False(t, m.HasHopLimit())
	assert.False(t, m.TimeStamp().IsZero())
	assert.False(t, m.HasWire())
}

func TestMetaInfoEncode(t *testing.T) {
	m := ndn.NewMetaInfo()
	m.SetContentType(4)
	m.SetFreshnessPeriod(5000 * time.Millisecond)
	m.SetFinalBlockID(ndn.NewGenericNameComponent([]byte("ndn")))
	m.SetMobilityFlag(true)
	m.SetHopLimit(5)
	m.SetTimeStamp(time.UnixMilli(1234))

	block, err := m.Encode()
	assert.NoError(t, err)
	wire, err := block.Wire()
	assert.NoError(t, err)
	assert.Equal(t, []byte{
		tlv.MetaInfo, 0x18,
		tlv.ContentType, 0x01, 0x04,
		tlv.FreshnessPeriod, 0x02, 0x13, 0x88,
		tlv.FinalBlockID, 0x05, tlv.GenericNameComponent, 0x03, 0x6e, 0x64, 0x6e,
		tlv.MobilityFlag, 0x01, 0x01,
		tlv.HopLimit, 0x01, 0x05,
		tlv.TimeStamp, 0x02, 0x04, 0xD2}, wire)
	assert.True(t, m.HasWire())
}

func TestMetaInfoEncodeMinimal(t *testing.T) {
	// TimeStamp is always emitted
	m := ndn.NewMetaInfo()
	m.SetTimeStamp(time.UnixMilli(1000))
	block, err := m.Encode()
	assert.NoError(t, err)
	wire, err := block.Wire()
	assert.NoError(t, err)
	assert.Equal(t, []byte{tlv.MetaInfo, 0x04, tlv.TimeStamp, 0x02, 0x03, 0xE8}, wire)
}

func TestMetaInfoHopLimitZeroOmitted(t *testing.T) {
	m := ndn.NewMetaInfo()
	m.SetTimeStamp(time.UnixMilli(1000))
	m.SetHopLimit(5)
	m.SetHopLimit(0)
	assert.False(t, m.HasHopLimit())

	block, err := m.Encode()
	assert.NoError(t, err)
	wire, err := block.Wire()
	assert.NoError(t, err)
	assert.Equal(t, []byte{tlv.MetaInfo, 0x04, tlv.TimeStamp, 0x02, 0x03, 0xE8}, wire)
}

func TestMetaInfoDecode(t *testing.T) {
	b := tlv.NewBlock(tlv.MetaInfo, []byte{
		tlv.ContentType, 0x01, 0x04,
		tlv.FreshnessPeriod, 0x02, 0x13, 0x88,
		tlv.FinalBlockID, 0x05, tlv.GenericNameComponent, 0x03, 0x6e, 0x64, 0x6e,
		tlv.MobilityFlag, 0x01, 0x01,
		tlv.HopLimit, 0x01, 0x05,
		tlv.TimeStamp, 0x02, 0x04, 0xD2})
	m, err := ndn.DecodeMetaInfo(b)
	assert.NoError(t, err)
	assert.NotNil(t, m)
	assert.NotNil(t, m.ContentType())
	assert.Equal(t, uint64(4), *m.ContentType())
	assert.NotNil(t, m.FreshnessPeriod())
	assert.Equal(t, 5000*time.Millisecond, *m.FreshnessPeriod())
	assert.NotNil(t, m.FinalBlockID())
	assert.Equal(t, "ndn", m.FinalBlockID().String())
	assert.True(t, m.MobilityFlag())
	assert.True(t, m.HasHopLimit())
	assert.Equal(t, uint8(5), m.HopLimit())
	assert.Equal(t, int64(1234), m.TimeStamp().UnixMilli())
	assert.True(t, m.HasWire())
}

func TestMetaInfoDecodeOrdering(t *testing.T) {
	// FreshnessPeriod before ContentType
	b := tlv.NewBlock(tlv.MetaInfo, []byte{
		tlv.FreshnessPeriod, 0x02, 0x13, 0x88,
		tlv.ContentType, 0x01, 0x04})
	_, err := ndn.DecodeMetaInfo(b)
	assert.Error(t, err)

	// Duplicate HopLimit
	b = tlv.NewBlock(tlv.MetaInfo, []byte{
		tlv.HopLimit, 0x01, 0x05,
		tlv.HopLimit, 0x01, 0x06})
	_, err = ndn.DecodeMetaInfo(b)
	assert.Error(t, err)
}

func TestMetaInfoDecodeUnknownElements(t *testing.T) {
	// Unrecognized critical element
	b := tlv.NewBlock(tlv.MetaInfo, []byte{0x1F, 0x00})
	_, err := ndn.DecodeMetaInfo(b)
	assert.ErrorIs(t, err, tlv.ErrUnrecognizedCritical)

	// Unrecognized non-critical element is skipped
	b = tlv.NewBlock(tlv.MetaInfo, []byte{0x34, 0x00, tlv.TimeStamp, 0x02, 0x03, 0xE8})
	m, err := ndn.DecodeMetaInfo(b)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), m.TimeStamp().UnixMilli())
}

func TestMetaInfoDecodeMalformedValue(t *testing.T) {
	// Trailing type byte with no length
	b := tlv.NewBlock(tlv.MetaInfo, []byte{tlv.TimeStamp, 0x02, 0x03, 0xE8, 0x01})
	_, err := ndn.DecodeMetaInfo(b)
	assert.Error(t, err)
}

func TestMetaInfoDecodeMobilityFlag(t *testing.T) {
	// Presence of the MobilityFlag element signals true
	b := tlv.NewBlock(tlv.MetaInfo, []byte{
		tlv.MobilityFlag, 0x01, 0x01,
		tlv.TimeStamp, 0x02, 0x03, 0xE8})
	m, err := ndn.DecodeMetaInfo(b)
	assert.NoError(t, err)
	assert.True(t, m.MobilityFlag())
}

func TestMetaInfoDecodeBadExtensions(t *testing.T) {
	// Empty MobilityFlag
	b := tlv.NewBlock(tlv.MetaInfo, []byte{tlv.MobilityFlag, 0x00})
	_, err := ndn.DecodeMetaInfo(b)
	assert.Error(t, err)

	// Multi-octet HopLimit
	b = tlv.NewBlock(tlv.MetaInfo, []byte{tlv.HopLimit, 0x02, 0x00, 0x05})
	_, err = ndn.DecodeMetaInfo(b)
	assert.Error(t, err)
}

func TestMetaInfoRoundTrip(t *testing.T) {
	m := ndn.NewMetaInfo()
	m.SetMobilityFlag(true)
	m.SetHopLimit(5)
	m.SetTimeStamp(time.UnixMilli(987654321))

	block, err := m.Encode()
	assert.NoError(t, err)
	decoded, err := ndn.DecodeMetaInfo(block)
	assert.NoError(t, err)
	assert.True(t, m.Equals(decoded))
}

func TestMetaInfoEquals(t *testing.T) {
	a := ndn.NewMetaInfo()
	a.SetTimeStamp(time.UnixMilli(1000))
	b := ndn.NewMetaInfo()
	b.SetTimeStamp(time.UnixMilli(1000))
	assert.True(t, a.Equals(b))

	b.SetHopLimit(1)
	assert.False(t, a.Equals(b))
	b.SetHopLimit(0)
	b.SetMobilityFlag(true)
	assert.False(t, a.Equals(b))
}
