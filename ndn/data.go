/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"strconv"

	"github.com/named-data/ndn-packet/ndn/security"
	"github.com/named-data/ndn-packet/ndn/tlv"
	"github.com/named-data/ndn-packet/ndn/util"
)

// Data represents an NDN Data packet.
type Data struct {
	name       *Name
	metaInfo   *MetaInfo
	content    []byte
	hasContent bool
	sigInfo    *SignatureInfo
	sigValue   []byte
	wire       *tlv.Block
	fullName   *Name
}

// NewData creates a new Data packet with the given name and content. A nil
// content yields a packet without a Content element; an empty non-nil content
// yields an empty Content element.
func NewData(name *Name, content []byte) *Data {
	if name == nil {
		return nil
	}

	d := new(Data)
	d.name = name
	d.metaInfo = NewMetaInfo()
	if content != nil {
		d.content = make([]byte, len(content))
		copy(d.content, content)
		d.hasContent = true
	}
	d.sigInfo = NewSignatureInfo(security.DigestSha256Type)
	return d
}

// DecodeData decodes a Data packet from the wire. Elements must appear in the
// canonical order and unrecognized elements are rejected.
func DecodeData(wire *tlv.Block) (*Data, error) {
	if wire == nil {
		return nil, util.ErrNonExistent
	}
	if wire.Type() != tlv.Data {
		return nil, tlv.ErrUnexpected
	}

	d := new(Data)
	d.wire = wire
	if len(d.wire.Subelements()) == 0 && !d.wire.Parse() {
		return nil, errors.New("error parsing Data value")
	}
	mostRecentElem := 0
	var err error
	for _, elem := range d.wire.Subelements() {
		switch elem.Type() {
		case tlv.Name:
			if mostRecentElem >= 1 {
				return nil, errors.New("Name is duplicate or out-of-order")
			}
			mostRecentElem = 1
			d.name, err = DecodeName(elem)
			if err != nil {
				return nil, errors.New("error decoding Name")
			}
		case tlv.MetaInfo:
			if mostRecentElem >= 2 {
				return nil, errors.New("MetaInfo is duplicate or out-of-order")
			}
			mostRecentElem = 2
			d.metaInfo, err = DecodeMetaInfo(elem)
			if err != nil {
				return nil, err
			}
		case tlv.Content:
			if mostRecentElem >= 3 {
				return nil, errors.New("Content is duplicate or out-of-order")
			}
			mostRecentElem = 3
			d.content = make([]byte, len(elem.Value()))
			copy(d.content, elem.Value())
			d.hasContent = true
		case tlv.SignatureInfo:
			if mostRecentElem >= 4 {
				return nil, errors.New("SignatureInfo is duplicate or out-of-order")
			}
			mostRecentElem = 4
			d.sigInfo, err = DecodeSignatureInfo(elem)
			if err != nil {
				return nil, err
			}
		case tlv.SignatureValue:
			if mostRecentElem >= 5 {
				return nil, errors.New("SignatureValue is duplicate or out-of-order")
			}
			mostRecentElem = 5
			d.sigValue = make([]byte, len(elem.Value()))
			copy(d.sigValue, elem.Value())
		default:
			return nil, tlv.ErrUnexpected
		}
	}

	// An absent SignatureValue is legal: it denotes an as-yet-unsigned packet.
	if d.name == nil || d.metaInfo == nil || d.sigInfo == nil {
		return nil, ErrIncompleteStructure
	}

	return d, nil
}

func (d *Data) String() string {
	str := "Data(" + d.name.String()
	if d.metaInfo != nil {
		str += ", " + d.metaInfo.String()
	}
	if d.hasContent {
		str += ", ContentLen=" + strconv.FormatInt(int64(len(d.content)), 10)
	}
	str += ")"
	return str
}

// resetWire invalidates the cached wire encoding and full name. The
// SignatureValue is retained until the packet is re-signed.
func (d *Data) resetWire() {
	d.wire = nil
	d.fullName = nil
}

// Name returns the name of the Data packet.
func (d *Data) Name() *Name {
	return d.name
}

// SetName sets the name of the Data packet.
func (d *Data) SetName(name *Name) {
	d.name = name
	d.resetWire()
}

// MetaInfo returns the MetaInfo of the Data packet.
func (d *Data) MetaInfo() *MetaInfo {
	return d.metaInfo
}

// SetMetaInfo sets the MetaInfo of the Data packet.
func (d *Data) SetMetaInfo(metaInfo *MetaInfo) {
	d.metaInfo = metaInfo
	d.resetWire()
}

// HasContent returns whether the Data packet carries a Content element. An
// empty Content element is distinct from an absent one.
func (d *Data) HasContent() bool {
	return d.hasContent
}

// Content returns the content in the Data packet.
func (d *Data) Content() []byte {
	return d.content
}

// SetContent sets the content of the Data packet.
func (d *Data) SetContent(content []byte) {
	d.content = make([]byte, len(content))
	copy(d.content, content)
	d.hasContent = true
	d.resetWire()
}

// SetContentElement sets the content of the Data packet from a TLV element. An
// element already of type Content supplies its value directly; any other
// element is wrapped whole inside the Content.
func (d *Data) SetContentElement(content *tlv.Block) error {
	if content == nil {
		return util.ErrNonExistent
	}

	if content.Type() == tlv.Content {
		d.SetContent(content.Value())
		return nil
	}
	wire, err := content.Wire()
	if err != nil {
		return err
	}
	d.SetContent(wire)
	return nil
}

// UnsetContent removes the Content element from the Data packet.
func (d *Data) UnsetContent() {
	d.content = nil
	d.hasContent = false
	d.resetWire()
}

// SignatureInfo returns the SignatureInfo in the Data packet.
func (d *Data) SignatureInfo() *SignatureInfo {
	return d.sigInfo
}

// SetSignatureInfo sets the SignatureInfo in the Data packet.
func (d *Data) SetSignatureInfo(sigInfo *SignatureInfo) {
	d.sigInfo = sigInfo
	d.resetWire()
}

// SignatureValue returns the SignatureValue in the Data packet, if present.
func (d *Data) SignatureValue() []byte {
	return d.sigValue
}

// SetSignatureValue sets the SignatureValue in the Data packet, as produced by an external signer.
func (d *Data) SetSignatureValue(sigValue []byte) {
	d.sigValue = make([]byte, len(sigValue))
	copy(d.sigValue, sigValue)
	d.resetWire()
}

// Equals returns whether the specified Data packet matches this one, ignoring wire state.
func (d *Data) Equals(other *Data) bool {
	if other == nil {
		return false
	}
	if !d.name.Equals(other.name) {
		return false
	}
	if (d.metaInfo == nil) != (other.metaInfo == nil) {
		return false
	}
	if d.metaInfo != nil && !d.metaInfo.Equals(other.metaInfo) {
		return false
	}
	if d.hasContent != other.hasContent || !bytes.Equal(d.content, other.content) {
		return false
	}
	if (d.sigInfo == nil) != (other.sigInfo == nil) {
		return false
	}
	if d.sigInfo != nil && !d.sigInfo.Equals(other.sigInfo) {
		return false
	}
	return bytes.Equal(d.sigValue, other.sigValue)
}

// EncodeInto prepends the wire encoding of the Data packet to an encoder and
// returns the encoded size. If wantUnsignedPortionOnly is set, the
// SignatureValue and the outer type and length are omitted, yielding the exact
// byte range covered by the signature.
func (d *Data) EncodeInto(encoder tlv.Encoder, wantUnsignedPortionOnly bool) (int, error) {
	if d.name == nil || d.name.Size() == 0 {
		return 0, ErrIncompleteStructure
	}
	if d.metaInfo == nil || d.sigInfo == nil {
		return 0, ErrIncompleteStructure
	}

	valueLen := 0

	// SignatureValue
	if !wantUnsignedPortionOnly {
		if len(d.sigValue) == 0 {
			return 0, ErrMissingSignature
		}
		sigValueLen := encoder.PrependBytes(d.sigValue)
		valueLen += sigValueLen + tlv.PrependTL(encoder, tlv.SignatureValue, sigValueLen)
	}

	// SignatureInfo
	sigInfoLen, err := d.sigInfo.EncodeInto(encoder)
	if err != nil {
		return 0, err
	}
	valueLen += sigInfoLen

	// Content
	if d.hasContent {
		contentLen := encoder.PrependBytes(d.content)
		valueLen += contentLen + tlv.PrependTL(encoder, tlv.Content, contentLen)
	}

	// MetaInfo
	metaInfoLen, err := d.metaInfo.EncodeInto(encoder)
	if err != nil {
		return 0, err
	}
	valueLen += metaInfoLen

	// Name
	nameLen, err := d.name.EncodeInto(encoder)
	if err != nil {
		return 0, err
	}
	valueLen += nameLen

	if wantUnsignedPortionOnly {
		return valueLen, nil
	}
	return valueLen + tlv.PrependTL(encoder, tlv.Data, valueLen), nil
}

// EncodeUnsignedPortion encodes the portion of the Data packet covered by the
// signature: the Name through the SignatureInfo, without the outer type and
// length. The result is the input to an external signer.
func (d *Data) EncodeUnsignedPortion() ([]byte, error) {
	estimator := new(tlv.Estimator)
	if _, err := d.EncodeInto(estimator, true); err != nil {
		return nil, err
	}
	buffer := tlv.NewEncodingBuffer(estimator.Size())
	if _, err := d.EncodeInto(buffer, true); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// FinalizeEncode completes a two-phase encode: it stores the externally
// produced signature, appends the SignatureValue element to the unsigned
// portion, and prepends the outer type and length. The resulting wire encoding
// is cached.
func (d *Data) FinalizeEncode(signature []byte) (*tlv.Block, error) {
	estimator := new(tlv.Estimator)
	unsignedLen, err := d.EncodeInto(estimator, true)
	if err != nil {
		return nil, err
	}

	sigValueLen := tlv.VarNumSize(tlv.SignatureValue) + tlv.VarNumSize(uint64(len(signature))) + len(signature)
	totalLen := unsignedLen + sigValueLen
	outerTL := tlv.VarNumSize(tlv.Data) + tlv.VarNumSize(uint64(totalLen))

	buffer := tlv.NewEncodingBuffer(outerTL + totalLen)
	if _, err := d.EncodeInto(buffer, true); err != nil {
		return nil, err
	}
	buffer.AppendVarNum(tlv.SignatureValue)
	buffer.AppendVarNum(uint64(len(signature)))
	buffer.AppendBytes(signature)
	tlv.PrependTL(buffer, tlv.Data, totalLen)

	d.sigValue = make([]byte, len(signature))
	copy(d.sigValue, signature)
	d.fullName = nil

	wire, _, err := tlv.DecodeBlock(buffer.Bytes())
	if err != nil {
		return nil, err
	}
	d.wire = wire
	return d.wire, nil
}

// Encode encodes the Data packet into a block. The SignatureValue must already
// be present; use EncodeUnsignedPortion and FinalizeEncode (or Sign) to produce
// one.
func (d *Data) Encode() (*tlv.Block, error) {
	if d.wire != nil {
		return d.wire, nil
	}

	estimator := new(tlv.Estimator)
	if _, err := d.EncodeInto(estimator, false); err != nil {
		return nil, err
	}
	buffer := tlv.NewEncodingBuffer(estimator.Size())
	if _, err := d.EncodeInto(buffer, false); err != nil {
		return nil, err
	}

	wire, _, err := tlv.DecodeBlock(buffer.Bytes())
	if err != nil {
		return nil, err
	}
	d.wire = wire
	return d.wire, nil
}

// HasWire returns whether the Data packet has an existing valid wire encoding.
func (d *Data) HasWire() bool {
	return d.wire != nil
}

// FullName returns the full name of the Data packet: its name with the SHA-256
// digest of the complete wire encoding appended as an
// ImplicitSha256DigestComponent. The Data must have a wire encoding.
func (d *Data) FullName() (*Name, error) {
	if d.fullName != nil {
		return d.fullName, nil
	}
	if d.wire == nil {
		return nil, ErrNoWire
	}

	wire, err := d.wire.Wire()
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(wire)

	fullName := d.name.DeepCopy()
	fullName.Append(NewImplicitSha256DigestComponent(digest[:]))
	d.fullName = fullName
	return d.fullName, nil
}

// ExtractSignedRanges returns the subslices of the wire encoding covered by
// the signature: the Name through the SignatureInfo. The Data is encoded first
// if it has no wire encoding.
func (d *Data) ExtractSignedRanges() ([][]byte, error) {
	if d.wire == nil {
		if _, err := d.Encode(); err != nil {
			return nil, err
		}
	}

	if len(d.wire.Subelements()) == 0 && !d.wire.Parse() {
		return nil, ErrIncompleteStructure
	}
	ranges := make([][]byte, 0, 4)
	for _, elem := range d.wire.Subelements() {
		if elem.Type() == tlv.SignatureValue {
			break
		}
		elemWire, err := elem.Wire()
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, elemWire)
	}

	if len(ranges) == 0 {
		return nil, ErrIncompleteStructure
	}
	return ranges, nil
}

// Sign signs the Data packet with the specified signer, setting the
// SignatureType, computing the SignatureValue over the unsigned portion, and
// caching the complete wire encoding.
func (d *Data) Sign(signer security.Signer) error {
	if d.sigInfo == nil {
		d.sigInfo = NewSignatureInfo(signer.Type())
	} else {
		d.sigInfo.SetType(signer.Type())
	}
	d.resetWire()

	unsigned, err := d.EncodeUnsignedPortion()
	if err != nil {
		return err
	}
	signature, err := signer.Sign(unsigned)
	if err != nil {
		return err
	}

	_, err = d.FinalizeEncode(signature)
	return err
}

// VerifySignature verifies the SignatureValue of the Data packet against the
// signed ranges of its wire encoding using the specified signer.
func (d *Data) VerifySignature(signer security.Signer) (bool, error) {
	if len(d.sigValue) == 0 {
		return false, ErrMissingSignature
	}

	ranges, err := d.ExtractSignedRanges()
	if err != nil {
		return false, err
	}
	buffer := make([]byte, 0)
	for _, r := range ranges {
		buffer = append(buffer, r...)
	}

	return signer.Validate(buffer, d.sigValue), nil
}
