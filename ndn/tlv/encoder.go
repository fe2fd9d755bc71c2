/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// Encoder is the appender capability consumed by structural encoding passes.
// TLV buffers are built back-to-front, so producers prepend the last element
// of a container first. The same traversal runs against an Estimator to
// measure the encoding and against an EncodingBuffer to emit it; both must
// report identical sizes.
type Encoder interface {
	PrependBytes(b []byte) int
	PrependVarNum(v uint64) int
	Size() int
}

// Estimator is a counting Encoder. It computes the total encoded length of a
// traversal without producing any bytes.
type Estimator struct {
	size int
}

// PrependBytes adds the length of the slice to the estimate.
func (e *Estimator) PrependBytes(b []byte) int {
	e.size += len(b)
	return len(b)
}

// PrependVarNum adds the encoded length of a variable-size number to the estimate.
func (e *Estimator) PrependVarNum(v uint64) int {
	size := VarNumSize(v)
	e.size += size
	return size
}

// Size returns the number of bytes counted so far.
func (e *Estimator) Size() int {
	return e.size
}

// EncodingBuffer is a byte-emitting Encoder over a growable buffer. Bytes are
// prepended toward the front of the buffer; the finalize step of split
// signing may also append to the back.
type EncodingBuffer struct {
	buf   []byte
	start int
	end   int
}

// NewEncodingBuffer creates an encoding buffer with the specified amount of headroom.
// Running an Estimator pass first and sizing the buffer from it avoids reallocation.
func NewEncodingBuffer(capacity int) *EncodingBuffer {
	e := new(EncodingBuffer)
	e.buf = make([]byte, capacity)
	e.start = capacity
	e.end = capacity
	return e
}

func (e *EncodingBuffer) growFront(size int) {
	if e.start >= size {
		return
	}
	headroom := len(e.buf)
	if headroom < size {
		headroom = size
	}
	buf := make([]byte, headroom+len(e.buf))
	copy(buf[headroom+e.start:], e.buf[e.start:e.end])
	e.start += headroom
	e.end += headroom
	e.buf = buf
}

func (e *EncodingBuffer) growBack(size int) {
	if len(e.buf)-e.end >= size {
		return
	}
	tailroom := len(e.buf)
	if tailroom < size {
		tailroom = size
	}
	buf := make([]byte, len(e.buf)+tailroom)
	copy(buf[e.start:], e.buf[e.start:e.end])
	e.buf = buf
}

// PrependBytes copies the slice in front of the current buffer contents.
func (e *EncodingBuffer) PrependBytes(b []byte) int {
	e.growFront(len(b))
	e.start -= len(b)
	copy(e.buf[e.start:], b)
	return len(b)
}

// PrependVarNum prepends a variable-size number to the buffer.
func (e *EncodingBuffer) PrependVarNum(v uint64) int {
	return e.PrependBytes(EncodeVarNum(v))
}

// AppendBytes copies the slice after the current buffer contents.
func (e *EncodingBuffer) AppendBytes(b []byte) int {
	e.growBack(len(b))
	copy(e.buf[e.end:], b)
	e.end += len(b)
	return len(b)
}

// AppendVarNum appends a variable-size number to the buffer.
func (e *EncodingBuffer) AppendVarNum(v uint64) int {
	return e.AppendBytes(EncodeVarNum(v))
}

// Size returns the number of bytes emitted so far.
func (e *EncodingBuffer) Size() int {
	return e.end - e.start
}

// Bytes returns the emitted bytes. The slice aliases the buffer and is
// invalidated by further prepends or appends.
func (e *EncodingBuffer) Bytes() []byte {
	return e.buf[e.start:e.end]
}

// PrependTL prepends the TLV type and length of an element whose value of the
// specified length has already been prepended.
func PrependTL(e Encoder, tlvType uint32, length int) int {
	size := e.PrependVarNum(uint64(length))
	size += e.PrependVarNum(uint64(tlvType))
	return size
}

// PrependNNIBlock prepends a whole TLV element of the specified type holding a
// non-negative integer in the smallest fixed-width representation.
func PrependNNIBlock(e Encoder, tlvType uint32, v uint64) int {
	value := EncodeNNI(v)
	size := e.PrependBytes(value)
	size += PrependTL(e, tlvType, len(value))
	return size
}
