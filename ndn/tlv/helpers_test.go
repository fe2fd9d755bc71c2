/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv_test

import (
	"testing"

	"github.com/named-data/ndn-packet/ndn/tlv"
	"github.com/named-data/ndn-packet/ndn/util"
	"github.com/stretchr/testify/assert"
)

func TestVarNumSize(t *testing.T) {
	assert.Equal(t, 1, tlv.VarNumSize(0x00))
	assert.Equal(t, 1, tlv.VarNumSize(0xFC))
	assert.Equal(t, 3, tlv.VarNumSize(0xFD))
	assert.Equal(t, 3, tlv.VarNumSize(0xFFFF))
	assert.Equal(t, 5, tlv.VarNumSize(0x10000))
	assert.Equal(t, 5, tlv.VarNumSize(0xFFFFFFFF))
	assert.Equal(t, 9, tlv.VarNumSize(0x100000000))
}

func TestEncodeVarNum(t *testing.T) {
	assert.Equal(t, []byte{0x00}, tlv.EncodeVarNum(0x00))
	assert.Equal(t, []byte{0xFC}, tlv.EncodeVarNum(0xFC))
	assert.Equal(t, []byte{0xFD, 0x00, 0xFD}, tlv.EncodeVarNum(0xFD))
	assert.Equal(t, []byte{0xFD, 0xFF, 0xFF}, tlv.EncodeVarNum(0xFFFF))
	assert.Equal(t, []byte{0xFE, 0x00, 0x01, 0x00, 0x00}, tlv.EncodeVarNum(0x10000))
	assert.Equal(t, []byte{0xFF, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, tlv.EncodeVarNum(0x100000000))
}

func TestDecodeVarNum(t *testing.T) {
	value, size, err := tlv.DecodeVarNum([]byte{0x42})
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x42), value)
	assert.Equal(t, 1, size)

	value, size, err = tlv.DecodeVarNum([]byte{0xFD, 0x01, 0x00})
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x100), value)
	assert.Equal(t, 3, size)

	value, size, err = tlv.DecodeVarNum([]byte{0xFE, 0x00, 0x01, 0x00, 0x00})
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x10000), value)
	assert.Equal(t, 5, size)

	value, size, err = tlv.DecodeVarNum([]byte{0xFF, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00})
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x100000000), value)
	assert.Equal(t, 9, size)

	_, _, err = tlv.DecodeVarNum([]byte{})
	assert.ErrorIs(t, err, util.ErrTooShort)
	_, _, err = tlv.DecodeVarNum([]byte{0xFD, 0x01})
	assert.ErrorIs(t, err, util.ErrTooShort)
	_, _, err = tlv.DecodeVarNum([]byte{0xFE, 0x00, 0x01, 0x00})
	assert.ErrorIs(t, err, util.ErrTooShort)
	_, _, err = tlv.DecodeVarNum([]byte{0xFF, 0x00, 0x00, 0x00, 0x01})
	assert.ErrorIs(t, err, util.ErrTooShort)
}

func TestEncodeNNI(t *testing.T) {
	assert.Equal(t, []byte{0x00}, tlv.EncodeNNI(0x00))
	assert.Equal(t, []byte{0xFF}, tlv.EncodeNNI(0xFF))
	assert.Equal(t, []byte{0x01, 0x00}, tlv.EncodeNNI(0x100))
	assert.Equal(t, []byte{0xFF, 0xFF}, tlv.EncodeNNI(0xFFFF))
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x00}, tlv.EncodeNNI(0x10000))
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, tlv.EncodeNNI(0x100000000))
}

func TestDecodeNNI(t *testing.T) {
	value, err := tlv.DecodeNNI([]byte{0x2A})
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x2A), value)

	value, err = tlv.DecodeNNI([]byte{0x13, 0x88})
	assert.NoError(t, err)
	assert.Equal(t, uint64(5000), value)

	value, err = tlv.DecodeNNI([]byte{0x00, 0x01, 0x00, 0x00})
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x10000), value)

	// Non-minimal encodings within a valid width are accepted
	value, err = tlv.DecodeNNI([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04})
	assert.NoError(t, err)
	assert.Equal(t, uint64(4), value)

	// Widths other than 1, 2, 4, and 8 are rejected
	_, err = tlv.DecodeNNI([]byte{0x00, 0x00, 0x04})
	assert.ErrorIs(t, err, util.ErrOutOfRange)
	_, err = tlv.DecodeNNI([]byte{0x00, 0x00, 0x00, 0x00, 0x04})
	assert.ErrorIs(t, err, util.ErrOutOfRange)

	_, err = tlv.DecodeNNI([]byte{})
	assert.ErrorIs(t, err, util.ErrTooShort)
	_, err = tlv.DecodeNNI(make([]byte, 9))
	assert.ErrorIs(t, err, util.ErrTooLong)
}

func TestNNIBlock(t *testing.T) {
	b := tlv.EncodeNNIBlock(tlv.FreshnessPeriod, 5000)
	assert.NotNil(t, b)
	assert.Equal(t, uint32(tlv.FreshnessPeriod), b.Type())
	assert.Equal(t, []byte{0x13, 0x88}, b.Value())

	value, err := tlv.DecodeNNIBlock(b)
	assert.NoError(t, err)
	assert.Equal(t, uint64(5000), value)

	_, err = tlv.DecodeNNIBlock(nil)
	assert.ErrorIs(t, err, util.ErrNonExistent)
}

func TestDecodeTypeLength(t *testing.T) {
	tlvType, tlvLength, size, err := tlv.DecodeTypeLength([]byte{0x06, 0x03, 0x01, 0x02, 0x03})
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x06), tlvType)
	assert.Equal(t, 3, tlvLength)
	assert.Equal(t, 5, size)

	tlvType, tlvLength, size, err = tlv.DecodeTypeLength([]byte{0xFD, 0x01, 0x00, 0x00})
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x100), tlvType)
	assert.Equal(t, 0, tlvLength)
	assert.Equal(t, 4, size)

	_, _, _, err = tlv.DecodeTypeLength([]byte{})
	assert.Error(t, err)
	_, _, _, err = tlv.DecodeTypeLength([]byte{0x06})
	assert.Error(t, err)
}

func TestIsCritical(t *testing.T) {
	assert.True(t, tlv.IsCritical(0x01))
	assert.True(t, tlv.IsCritical(0x1F))
	assert.True(t, tlv.IsCritical(0x21))
	assert.False(t, tlv.IsCritical(0x20))
	assert.False(t, tlv.IsCritical(0x30))
	assert.False(t, tlv.IsCritical(0x32))
}
