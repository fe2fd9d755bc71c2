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
	"github.com/stretchr/testify/assert"
)

func TestBlockCreateAndEncode(t *testing.T) {
	block := tlv.NewBlock(0x28, []byte{0x01, 0x02, 0x03, 0x04})
	assert.NotNil(t, block)
	assert.Equal(t, uint32(0x28), block.Type())
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, block.Value())
	assert.False(t, block.HasWire())
	encoded, err := block.Wire()
	assert.NoError(t, err)
	assert.Equal(t, 6, block.Size())
	assert.Equal(t, []byte{0x28, 0x04, 0x01, 0x02, 0x03, 0x04}, encoded)
	assert.True(t, block.HasWire())

	block = tlv.NewEmptyBlock(0x28)
	assert.NotNil(t, block)
	assert.Equal(t, uint32(0x28), block.Type())
	assert.Equal(t, 0, len(block.Value()))
	assert.False(t, block.HasWire())
	encoded, err = block.Wire()
	assert.NoError(t, err)
	assert.Equal(t, 2, block.Size())
	assert.Equal(t, []byte{0x28, 0x00}, encoded)

	assert.True(t, block.HasWire())
	block.Reset()
	assert.False(t, block.HasWire())
}

func TestBlockDecode(t *testing.T) {
	block, blockSize, err := tlv.DecodeBlock([]byte{0x28, 0x04, 0x01, 0x02, 0x03, 0x04})
	assert.NotNil(t, block)
	assert.Equal(t, uint64(6), blockSize)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x28), block.Type())
	assert.True(t, block.HasWire())
	assert.Equal(t, 6, block.Size())
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, block.Value())

	// Trailing bytes are not consumed
	block, blockSize, err = tlv.DecodeBlock([]byte{0x28, 0x01, 0xFF, 0x28, 0x00})
	assert.NotNil(t, block)
	assert.Equal(t, uint64(3), blockSize)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xFF}, block.Value())

	_, _, err = tlv.DecodeBlock([]byte{0x28})
	assert.ErrorIs(t, err, tlv.ErrMissingLength)
	_, _, err = tlv.DecodeBlock([]byte{0x28, 0x04, 0x01})
	assert.ErrorIs(t, err, tlv.ErrBufferTooShort)
}

func TestBlockParse(t *testing.T) {
	block := tlv.NewBlock(0x28, []byte{0x29, 0x01, 0xAA, 0x2A, 0x02, 0xBB, 0xCC})
	assert.NotNil(t, block)
	assert.True(t, block.Parse())
	assert.Equal(t, 2, len(block.Subelements()))
	assert.Equal(t, uint32(0x29), block.Subelements()[0].Type())
	assert.Equal(t, []byte{0xAA}, block.Subelements()[0].Value())
	assert.Equal(t, uint32(0x2A), block.Subelements()[1].Type())
	assert.Equal(t, []byte{0xBB, 0xCC}, block.Subelements()[1].Value())

	found := block.Find(0x2A)
	assert.NotNil(t, found)
	assert.Equal(t, uint32(0x2A), found.Type())
	assert.Nil(t, block.Find(0x2B))

	// Unparseable values are left alone
	block = tlv.NewBlock(0x28, []byte{0x29, 0x05, 0xAA})
	assert.False(t, block.Parse())
}

func TestBlockSubelements(t *testing.T) {
	block := tlv.NewEmptyBlock(0x28)
	block.Append(tlv.NewBlock(0x29, []byte{0xAA}))
	block.Append(tlv.NewBlock(0x2A, []byte{0xBB, 0xCC}))
	encoded, err := block.Wire()
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x28, 0x07, 0x29, 0x01, 0xAA, 0x2A, 0x02, 0xBB, 0xCC}, encoded)

	block.Clear()
	assert.Equal(t, 0, len(block.Subelements()))
	assert.False(t, block.HasWire())
}

func TestBlockDeepCopy(t *testing.T) {
	block := tlv.NewEmptyBlock(0x28)
	block.Append(tlv.NewBlock(0x29, []byte{0xAA}))
	copied := block.DeepCopy()
	assert.NotSame(t, block, copied)

	copied.Subelements()[0].SetValue([]byte{0xBB})
	assert.Equal(t, []byte{0xAA}, block.Subelements()[0].Value())
}
