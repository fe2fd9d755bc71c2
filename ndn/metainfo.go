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
	"time"

	"github.com/named-data/ndn-packet/ndn/tlv"
	"github.com/named-data/ndn-packet/ndn/util"
)

// MetaInfo represents the MetaInfo in a Data packet.
type MetaInfo struct {
	contentType     *uint64
	freshnessPeriod *time.Duration
	finalBlockID    NameComponent
	mobilityFlag    bool
	hopLimit        uint8
	timeStamp       time.Time
	wire            *tlv.Block
}

// NewMetaInfo creates a new MetaInfo structure. The TimeStamp is initialized to the current time.
func NewMetaInfo() *MetaInfo {
	m := new(MetaInfo)
	m.timeStamp = time.Now()
	return m
}

// DecodeMetaInfo decodes a MetaInfo from a block.
func DecodeMetaInfo(wire *tlv.Block) (*MetaInfo, error) {
	if wire == nil {
		return nil, util.ErrNonExistent
	}
	if len(wire.Subelements()) == 0 && !wire.Parse() {
		return nil, errors.New("error parsing MetaInfo value")
	}

	m := new(MetaInfo)
	m.wire = wire
	mostRecentElem := 0
	var err error
	for _, elem := range wire.Subelements() {
		switch elem.Type() {
		case tlv.ContentType:
			if mostRecentElem >= 1 {
				return nil, errors.New("ContentType is duplicate or out-of-order")
			}
			mostRecentElem = 1
			m.contentType = new(uint64)
			*m.contentType, err = tlv.DecodeNNIBlock(elem)
			if err != nil {
				return nil, errors.New("error decoding ContentType")
			}
		case tlv.FreshnessPeriod:
			if mostRecentElem >= 2 {
				return nil, errors.New("FreshnessPeriod is duplicate or out-of-order")
			}
			mostRecentElem = 2
			freshnessPeriod, err := tlv.DecodeNNIBlock(elem)
			if err != nil {
				return nil, errors.New("error decoding FreshnessPeriod")
			}
			m.freshnessPeriod = new(time.Duration)
			*m.freshnessPeriod = time.Duration(freshnessPeriod) * time.Millisecond
		case tlv.FinalBlockID:
			if mostRecentElem >= 3 {
				return nil, errors.New("FinalBlockId is duplicate or out-of-order")
			}
			mostRecentElem = 3
			if len(elem.Subelements()) == 0 && !elem.Parse() {
				return nil, errors.New("error decoding FinalBlockId")
			}
			if len(elem.Subelements()) != 1 {
				return nil, errors.New("FinalBlockId must contain exactly one name component")
			}
			m.finalBlockID, err = DecodeNameComponent(elem.Subelements()[0])
			if err != nil {
				return nil, errors.New("error decoding FinalBlockId")
			}
		case tlv.MobilityFlag:
			if mostRecentElem >= 4 {
				return nil, errors.New("MobilityFlag is duplicate or out-of-order")
			}
			mostRecentElem = 4
			if err = m.decodeExtension(elem); err != nil {
				return nil, err
			}
		case tlv.HopLimit:
			if mostRecentElem >= 5 {
				return nil, errors.New("HopLimit is duplicate or out-of-order")
			}
			mostRecentElem = 5
			if err = m.decodeExtension(elem); err != nil {
				return nil, err
			}
		case tlv.TimeStamp:
			if mostRecentElem >= 6 {
				return nil, errors.New("TimeStamp is duplicate or out-of-order")
			}
			mostRecentElem = 6
			if err = m.decodeExtension(elem); err != nil {
				return nil, err
			}
		default:
			if tlv.IsCritical(elem.Type()) {
				return nil, tlv.ErrUnrecognizedCritical
			}
			// If non-critical, ignore
		}
	}
	return m, nil
}

// decodeExtension decodes a single mobility extension sub-element. Each
// extension appears at most once per MetaInfo; ordering is enforced by the
// caller.
func (m *MetaInfo) decodeExtension(elem *tlv.Block) error {
	switch elem.Type() {
	case tlv.MobilityFlag:
		// Presence alone signals true; the nonnegative-integer value is
		// validated but otherwise ignored.
		if _, err := tlv.DecodeNNIBlock(elem); err != nil {
			return errors.New("error decoding MobilityFlag")
		}
		m.mobilityFlag = true
	case tlv.HopLimit:
		if len(elem.Value()) != 1 {
			return errors.New("HopLimit must be one octet")
		}
		m.hopLimit = elem.Value()[0]
	case tlv.TimeStamp:
		millis, err := tlv.DecodeNNIBlock(elem)
		if err != nil {
			return errors.New("error decoding TimeStamp")
		}
		m.timeStamp = time.UnixMilli(int64(millis))
	default:
		return tlv.ErrUnexpected
	}
	return nil
}

func (m *MetaInfo) String() string {
	str := "MetaInfo("

	isFirst := true
	if m.contentType != nil {
		str += "ContentType=" + strconv.FormatUint(*m.contentType, 10)
		isFirst = false
	}
	if m.freshnessPeriod != nil {
		if !isFirst {
			str += ", "
		}
		str += "FreshnessPeriod=" + strconv.FormatInt(m.freshnessPeriod.Milliseconds(), 10) + "ms"
		isFirst = false
	}
	if m.finalBlockID != nil {
		if !isFirst {
			str += ", "
		}
		str += "FinalBlockId=" + m.finalBlockID.String()
		isFirst = false
	}
	if m.mobilityFlag {
		if !isFirst {
			str += ", "
		}
		str += "MobilityFlag"
		isFirst = false
	}
	if m.hopLimit > 0 {
		if !isFirst {
			str += ", "
		}
		str += "HopLimit=" + strconv.FormatUint(uint64(m.hopLimit), 10)
		isFirst = false
	}
	if !isFirst {
		str += ", "
	}
	str += "TimeStamp=" + strconv.FormatInt(m.timeStamp.UnixMilli(), 10)

	str += ")"
	return str
}

// ContentType returns the ContentType set in the MetaInfo.
func (m *MetaInfo) ContentType() *uint64 {
	return m.contentType
}

// SetContentType sets the ContentType in the MetaInfo.
func (m *MetaInfo) SetContentType(contentType uint64) {
	m.contentType = new(uint64)
	*m.contentType = contentType
	m.wire = nil
}

// UnsetContentType unsets the ContentType in the MetaInfo.
func (m *MetaInfo) UnsetContentType() {
	m.contentType = nil
	m.wire = nil
}

// FreshnessPeriod returns the FreshnessPeriod set in the MetaInfo.
func (m *MetaInfo) FreshnessPeriod() *time.Duration {
	return m.freshnessPeriod
}

// SetFreshnessPeriod sets the FreshnessPeriod in the MetaInfo.
func (m *MetaInfo) SetFreshnessPeriod(freshnessPeriod time.Duration) {
	m.freshnessPeriod = new(time.Duration)
	*m.freshnessPeriod = freshnessPeriod
	m.wire = nil
}

// UnsetFreshnessPeriod unsets the FreshnessPeriod in the MetaInfo.
func (m *MetaInfo) UnsetFreshnessPeriod() {
	m.freshnessPeriod = nil
	m.wire = nil
}

// FinalBlockID returns the FinalBlockId set in the MetaInfo.
func (m *MetaInfo) FinalBlockID() NameComponent {
	return m.finalBlockID
}

// SetFinalBlockID sets the FinalBlockId in the MetaInfo.
func (m *MetaInfo) SetFinalBlockID(finalBlockID NameComponent) {
	m.finalBlockID = finalBlockID
	m.wire = nil
}

// UnsetFinalBlockID unsets the FinalBlockId in the MetaInfo.
func (m *MetaInfo) UnsetFinalBlockID() {
	m.finalBlockID = nil
	m.wire = nil
}

// MobilityFlag returns whether the MobilityFlag is set in the MetaInfo.
func (m *MetaInfo) MobilityFlag() bool {
	return m.mobilityFlag
}

// SetMobilityFlag sets or clears the MobilityFlag in the MetaInfo.
func (m *MetaInfo) SetMobilityFlag(mobilityFlag bool) {
	m.mobilityFlag = mobilityFlag
	m.wire = nil
}

// HasHopLimit returns whether a HopLimit is set in the MetaInfo.
func (m *MetaInfo) HasHopLimit() bool {
	return m.hopLimit > 0
}

// HopLimit returns the HopLimit set in the MetaInfo. A HopLimit of 0 indicates that none is set.
func (m *MetaInfo) HopLimit() uint8 {
	return m.hopLimit
}

// SetHopLimit sets the HopLimit in the MetaInfo. Setting a HopLimit of 0 unsets it.
func (m *MetaInfo) SetHopLimit(hopLimit uint8) {
	m.hopLimit = hopLimit
	m.wire = nil
}

// TimeStamp returns the TimeStamp set in the MetaInfo.
func (m *MetaInfo) TimeStamp() time.Time {
	return m.timeStamp
}

// SetTimeStamp sets the TimeStamp in the MetaInfo.
func (m *MetaInfo) SetTimeStamp(timeStamp time.Time) {
	m.timeStamp = timeStamp
	m.wire = nil
}

// Equals returns whether the specified MetaInfo matches this one. TimeStamps are compared at millisecond granularity.
func (m *MetaInfo) Equals(other *MetaInfo) bool {
	if other == nil {
		return false
	}
	if (m.contentType == nil) != (other.contentType == nil) {
		return false
	}
	if m.contentType != nil && *m.contentType != *other.contentType {
		return false
	}
	if (m.freshnessPeriod == nil) != (other.freshnessPeriod == nil) {
		return false
	}
	if m.freshnessPeriod != nil && *m.freshnessPeriod != *other.freshnessPeriod {
		return false
	}
	if (m.finalBlockID == nil) != (other.finalBlockID == nil) {
		return false
	}
	if m.finalBlockID != nil && !m.finalBlockID.Equals(other.finalBlockID) {
		return false
	}
	return m.mobilityFlag == other.mobilityFlag &&
		m.hopLimit == other.hopLimit &&
		m.timeStamp.UnixMilli() == other.timeStamp.UnixMilli()
}

// EncodeInto prepends the wire encoding of the MetaInfo to an encoder and returns the encoded size.
func (m *MetaInfo) EncodeInto(encoder tlv.Encoder) (int, error) {
	valueLen := 0

	// TimeStamp (always present)
	valueLen += tlv.PrependNNIBlock(encoder, tlv.TimeStamp, uint64(m.timeStamp.UnixMilli()))

	// HopLimit
	if m.hopLimit > 0 {
		valueLen += encoder.PrependBytes([]byte{m.hopLimit})
		valueLen += tlv.PrependTL(encoder, tlv.HopLimit, 1)
	}

	// MobilityFlag
	if m.mobilityFlag {
		valueLen += tlv.PrependNNIBlock(encoder, tlv.MobilityFlag, 1)
	}

	// FinalBlockId
	if m.finalBlockID != nil {
		encodedComponent, err := m.finalBlockID.Encode().Wire()
		if err != nil {
			return 0, errors.New("unable to encode FinalBlockId")
		}
		componentLen := encoder.PrependBytes(encodedComponent)
		valueLen += componentLen + tlv.PrependTL(encoder, tlv.FinalBlockID, componentLen)
	}

	// FreshnessPeriod
	if m.freshnessPeriod != nil {
		valueLen += tlv.PrependNNIBlock(encoder, tlv.FreshnessPeriod, uint64(m.freshnessPeriod.Milliseconds()))
	}

	// ContentType
	if m.contentType != nil {
		valueLen += tlv.PrependNNIBlock(encoder, tlv.ContentType, *m.contentType)
	}

	return valueLen + tlv.PrependTL(encoder, tlv.MetaInfo, valueLen), nil
}

// Encode encodes the MetaInfo into a block.
func (m *MetaInfo) Encode() (*tlv.Block, error) {
	if m.wire != nil {
		return m.wire, nil
	}

	estimator := new(tlv.Estimator)
	if _, err := m.EncodeInto(estimator); err != nil {
		return nil, err
	}
	buffer := tlv.NewEncodingBuffer(estimator.Size())
	if _, err := m.EncodeInto(buffer); err != nil {
		return nil, err
	}

	wire, _, err := tlv.DecodeBlock(buffer.Bytes())
	if err != nil {
		return nil, err
	}
	m.wire = wire
	return m.wire, nil
}

// HasWire returns whether the MetaInfo has an existing valid wire encoding.
func (m *MetaInfo) HasWire() bool {
	return m.wire != nil
}
