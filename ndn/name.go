/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"bytes"
	"encoding/hex"
	"errors"
	"hash"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/named-data/ndn-packet/ndn/tlv"
	"github.com/named-data/ndn-packet/ndn/util"
	"golang.org/x/exp/slices"
)

// NameComponent represents an NDN name component.
type NameComponent interface {
	String() string
	DeepCopy() NameComponent
	Type() uint16
	Value() []byte
	Equals(other NameComponent) bool
	Encode() *tlv.Block
}

// DecodeNameComponent decodes a name component from the wire.
func DecodeNameComponent(wire *tlv.Block) (NameComponent, error) {
	if wire == nil {
		return nil, util.ErrNonExistent
	}

	var n NameComponent
	var err error
	switch wire.Type() {
	case tlv.ImplicitSha256DigestComponent:
		n = NewImplicitSha256DigestComponent(wire.Value())
	case tlv.ParametersSha256DigestComponent:
		n = NewParametersSha256DigestComponent(wire.Value())
	case tlv.GenericNameComponent:
		n = NewGenericNameComponent(wire.Value())
	case tlv.KeywordNameComponent:
		n = NewKeywordNameComponent(wire.Value())
	case tlv.SegmentNameComponent:
		n = DecodeSegmentNameComponent(wire.Value())
	case tlv.ByteOffsetNameComponent:
		n = DecodeByteOffsetNameComponent(wire.Value())
	case tlv.VersionNameComponent:
		n = DecodeVersionNameComponent(wire.Value())
	case tlv.TimestampNameComponent:
		n = DecodeTimestampNameComponent(wire.Value())
	case tlv.SequenceNumNameComponent:
		n = DecodeSequenceNumNameComponent(wire.Value())
	default:
		if wire.Type() > math.MaxUint16 {
			return nil, util.ErrOutOfRange
		}
		n = NewBaseNameComponent(uint16(wire.Type()), wire.Value())
	}

	if n == nil {
		err = util.ErrDecodeNameComponent
	}
	return n, err
}

// BaseNameComponent represents a name component without a specialized type.
type BaseNameComponent struct {
	tlvType uint16
	value   []byte
	wire    *tlv.Block
}

// NewBaseNameComponent creates a name component of an arbitrary type.
func NewBaseNameComponent(tlvType uint16, value []byte) *BaseNameComponent {
	n := new(BaseNameComponent)
	n.tlvType = tlvType
	n.value = value
	return n
}

func (n *BaseNameComponent) String() string {
	return strconv.FormatUint(uint64(n.tlvType), 10) + "=" + escapeComponent(n.value)
}

// DeepCopy makes a deep copy of the name component.
func (n *BaseNameComponent) DeepCopy() NameComponent {
	return &BaseNameComponent{tlvType: n.tlvType, value: copyBytes(n.value)}
}

// Type returns the TLV type of the name component.
func (n *BaseNameComponent) Type() uint16 {
	return n.tlvType
}

// Value returns the TLV value of the name component.
func (n *BaseNameComponent) Value() []byte {
	return n.value
}

// Equals returns whether the two name components match.
func (n *BaseNameComponent) Equals(other NameComponent) bool {
	return n.tlvType == other.Type() && bytes.Equal(n.value, other.Value())
}

// Encode encodes the name component into a block.
func (n *BaseNameComponent) Encode() *tlv.Block {
	if n.wire == nil {
		n.wire = tlv.NewBlock(uint32(n.tlvType), n.value)
		n.wire.Wire()
	}
	return n.wire
}

func copyBytes(value []byte) []byte {
	out := make([]byte, len(value))
	copy(out, value)
	return out
}

// ImplicitSha256DigestComponent represents an implicit SHA-256 digest component.
type ImplicitSha256DigestComponent struct {
	BaseNameComponent
}

// NewImplicitSha256DigestComponent creates a new ImplicitSha256DigestComponent.
func NewImplicitSha256DigestComponent(value []byte) *ImplicitSha256DigestComponent {
	if len(value) != 32 {
		return nil
	}

	n := new(ImplicitSha256DigestComponent)
	n.tlvType = tlv.ImplicitSha256DigestComponent
	n.value = value
	return n
}

func (n *ImplicitSha256DigestComponent) String() string {
	return "sha256digest=" + hex.EncodeToString(n.value)
}

// DeepCopy creates a deep copy of the name component.
func (n *ImplicitSha256DigestComponent) DeepCopy() NameComponent {
	return &ImplicitSha256DigestComponent{BaseNameComponent: *n.BaseNameComponent.DeepCopy().(*BaseNameComponent)}
}

// SetValue sets the value of an ImplicitSha256DigestComponent.
func (n *ImplicitSha256DigestComponent) SetValue(value []byte) error {
	if len(value) != 32 {
		return util.ErrOutOfRange
	}
	n.value = value
	n.wire = nil
	return nil
}

// ParametersSha256DigestComponent represents a component containing the SHA-256 digest of the Interest parameters.
type ParametersSha256DigestComponent struct {
	BaseNameComponent
}

// NewParametersSha256DigestComponent creates a new ParametersSha256DigestComponent.
func NewParametersSha256DigestComponent(value []byte) *ParametersSha256DigestComponent {
	if len(value) != 32 {
		return nil
	}

	n := new(ParametersSha256DigestComponent)
	n.tlvType = tlv.ParametersSha256DigestComponent
	n.value = value
	return n
}

func (n *ParametersSha256DigestComponent) String() string {
	return "params-sha256=" + hex.EncodeToString(n.value)
}

// DeepCopy creates a deep copy of the name component.
func (n *ParametersSha256DigestComponent) DeepCopy() NameComponent {
	return &ParametersSha256DigestComponent{BaseNameComponent: *n.BaseNameComponent.DeepCopy().(*BaseNameComponent)}
}

// SetValue sets the value of a ParametersSha256DigestComponent.
func (n *ParametersSha256DigestComponent) SetValue(value []byte) error {
	if len(value) != 32 {
		return util.ErrOutOfRange
	}
	n.value = value
	n.wire = nil
	return nil
}

// GenericNameComponent represents a generic NDN name component.
type GenericNameComponent struct {
	BaseNameComponent
}

// NewGenericNameComponent creates a new GenericNameComponent.
func NewGenericNameComponent(value []byte) *GenericNameComponent {
	n := new(GenericNameComponent)
	n.tlvType = tlv.GenericNameComponent
	n.value = value
	return n
}

func (n *GenericNameComponent) String() string {
	return escapeComponent(n.value)
}

// DeepCopy creates a deep copy of the name component.
func (n *GenericNameComponent) DeepCopy() NameComponent {
	return &GenericNameComponent{BaseNameComponent: *n.BaseNameComponent.DeepCopy().(*BaseNameComponent)}
}

// SetValue sets the value of a GenericNameComponent.
func (n *GenericNameComponent) SetValue(value []byte) {
	n.value = value
	n.wire = nil
}

// KeywordNameComponent is a component containing a well-known keyword.
type KeywordNameComponent struct {
	BaseNameComponent
}

// NewKeywordNameComponent creates a new KeywordNameComponent.
func NewKeywordNameComponent(value []byte) *KeywordNameComponent {
	n := new(KeywordNameComponent)
	n.tlvType = tlv.KeywordNameComponent
	n.value = value
	return n
}

func (n *KeywordNameComponent) String() string {
	return escapeComponent(n.value)
}

// DeepCopy creates a deep copy of the name component.
func (n *KeywordNameComponent) DeepCopy() NameComponent {
	return &KeywordNameComponent{BaseNameComponent: *n.BaseNameComponent.DeepCopy().(*BaseNameComponent)}
}

// SetValue sets the value of a KeywordNameComponent.
func (n *KeywordNameComponent) SetValue(value []byte) {
	n.value = value
	n.wire = nil
}

// nniNameComponent is the shared base of the name component types whose value
// is a non-negative integer.
type nniNameComponent struct {
	BaseNameComponent
	rawValue uint64
}

func makeNNINameComponent(tlvType uint16, value uint64) nniNameComponent {
	return nniNameComponent{
		BaseNameComponent: BaseNameComponent{tlvType: tlvType, value: tlv.EncodeNNI(value)},
		rawValue:          value,
	}
}

func decodeNNINameComponent(tlvType uint16, value []byte) (nniNameComponent, bool) {
	rawValue, err := tlv.DecodeNNI(value)
	if err != nil {
		return nniNameComponent{}, false
	}
	return nniNameComponent{
		BaseNameComponent: BaseNameComponent{tlvType: tlvType, value: value},
		rawValue:          rawValue,
	}, true
}

func (n *nniNameComponent) setNNI(value uint64) {
	n.rawValue = value
	n.value = tlv.EncodeNNI(value)
	n.wire = nil
}

// Integer returns the integer contained in the name component.
func (n *nniNameComponent) Integer() uint64 {
	return n.rawValue
}

// SegmentNameComponent is a component containing a segment number.
type SegmentNameComponent struct {
	nniNameComponent
}

// NewSegmentNameComponent creates a new SegmentNameComponent.
func NewSegmentNameComponent(value uint64) *SegmentNameComponent {
	return &SegmentNameComponent{makeNNINameComponent(tlv.SegmentNameComponent, value)}
}

// DecodeSegmentNameComponent decodes a SegmentNameComponent from a TLV wire value.
func DecodeSegmentNameComponent(value []byte) *SegmentNameComponent {
	c, ok := decodeNNINameComponent(tlv.SegmentNameComponent, value)
	if !ok {
		return nil
	}
	return &SegmentNameComponent{c}
}

func (n *SegmentNameComponent) String() string {
	return "seg=" + strconv.FormatUint(n.rawValue, 10)
}

// DeepCopy creates a deep copy of the name component.
func (n *SegmentNameComponent) DeepCopy() NameComponent {
	return NewSegmentNameComponent(n.rawValue)
}

// SetValue sets the value of a SegmentNameComponent.
func (n *SegmentNameComponent) SetValue(value uint64) {
	n.setNNI(value)
}

// ByteOffsetNameComponent is a component containing a byte offset.
type ByteOffsetNameComponent struct {
	nniNameComponent
}

// NewByteOffsetNameComponent creates a new ByteOffsetNameComponent.
func NewByteOffsetNameComponent(value uint64) *ByteOffsetNameComponent {
	return &ByteOffsetNameComponent{makeNNINameComponent(tlv.ByteOffsetNameComponent, value)}
}

// DecodeByteOffsetNameComponent decodes a ByteOffsetNameComponent from a TLV wire value.
func DecodeByteOffsetNameComponent(value []byte) *ByteOffsetNameComponent {
	c, ok := decodeNNINameComponent(tlv.ByteOffsetNameComponent, value)
	if !ok {
		return nil
	}
	return &ByteOffsetNameComponent{c}
}

func (n *ByteOffsetNameComponent) String() string {
	return "off=" + strconv.FormatUint(n.rawValue, 10)
}

// DeepCopy creates a deep copy of the name component.
func (n *ByteOffsetNameComponent) DeepCopy() NameComponent {
	return NewByteOffsetNameComponent(n.rawValue)
}

// SetValue sets the value of a ByteOffsetNameComponent.
func (n *ByteOffsetNameComponent) SetValue(value uint64) {
	n.setNNI(value)
}

// VersionNameComponent is a component containing a version number.
type VersionNameComponent struct {
	nniNameComponent
}

// NewVersionNameComponent creates a new VersionNameComponent.
func NewVersionNameComponent(value uint64) *VersionNameComponent {
	return &VersionNameComponent{makeNNINameComponent(tlv.VersionNameComponent, value)}
}

// DecodeVersionNameComponent decodes a VersionNameComponent from a TLV wire value.
func DecodeVersionNameComponent(value []byte) *VersionNameComponent {
	c, ok := decodeNNINameComponent(tlv.VersionNameComponent, value)
	if !ok {
		return nil
	}
	return &VersionNameComponent{c}
}

func (n *VersionNameComponent) String() string {
	return "v=" + strconv.FormatUint(n.rawValue, 10)
}

// DeepCopy creates a deep copy of the name component.
func (n *VersionNameComponent) DeepCopy() NameComponent {
	return NewVersionNameComponent(n.rawValue)
}

// SetValue sets the value of a VersionNameComponent.
func (n *VersionNameComponent) SetValue(value uint64) {
	n.setNNI(value)
}

// Version returns the version contained in the name component.
func (n *VersionNameComponent) Version() uint64 {
	return n.rawValue
}

// TimestampNameComponent is a component containing a Unix timestamp (in microseconds).
type TimestampNameComponent struct {
	nniNameComponent
}

// NewTimestampNameComponent creates a new TimestampNameComponent.
func NewTimestampNameComponent(value uint64) *TimestampNameComponent {
	return &TimestampNameComponent{makeNNINameComponent(tlv.TimestampNameComponent, value)}
}

// DecodeTimestampNameComponent decodes a TimestampNameComponent from a TLV wire value.
func DecodeTimestampNameComponent(value []byte) *TimestampNameComponent {
	c, ok := decodeNNINameComponent(tlv.TimestampNameComponent, value)
	if !ok {
		return nil
	}
	return &TimestampNameComponent{c}
}

func (n *TimestampNameComponent) String() string {
	return "t=" + strconv.FormatUint(n.rawValue, 10)
}

// DeepCopy creates a deep copy of the name component.
func (n *TimestampNameComponent) DeepCopy() NameComponent {
	return NewTimestampNameComponent(n.rawValue)
}

// SetValue sets the value of a TimestampNameComponent.
func (n *TimestampNameComponent) SetValue(value uint64) {
	n.setNNI(value)
}

// SequenceNumNameComponent is a component containing a sequence number.
type SequenceNumNameComponent struct {
	nniNameComponent
}

// NewSequenceNumNameComponent creates a new SequenceNumNameComponent.
func NewSequenceNumNameComponent(value uint64) *SequenceNumNameComponent {
	return &SequenceNumNameComponent{makeNNINameComponent(tlv.SequenceNumNameComponent, value)}
}

// DecodeSequenceNumNameComponent decodes a SequenceNumNameComponent from a TLV wire value.
func DecodeSequenceNumNameComponent(value []byte) *SequenceNumNameComponent {
	c, ok := decodeNNINameComponent(tlv.SequenceNumNameComponent, value)
	if !ok {
		return nil
	}
	return &SequenceNumNameComponent{c}
}

func (n *SequenceNumNameComponent) String() string {
	return "seq=" + strconv.FormatUint(n.rawValue, 10)
}

// DeepCopy creates a deep copy of the name component.
func (n *SequenceNumNameComponent) DeepCopy() NameComponent {
	return NewSequenceNumNameComponent(n.rawValue)
}

// SetValue sets the value of a SequenceNumNameComponent.
func (n *SequenceNumNameComponent) SetValue(value uint64) {
	n.setNNI(value)
}

// Name represents an NDN name.
type Name struct {
	components   []NameComponent
	wire         *tlv.Block
	cachedString string
}

// NewName constructs an empty name.
func NewName() *Name {
	return new(Name)
}

// NameFromString decodes a name from a URI string.
func NameFromString(str string) (*Name, error) {
	n := new(Name)

	if len(str) == 0 {
		// Empty name
		return n, nil
	}

	components := strings.Split(str, "/")[1:] // Skip first since empty
	if len(components[0]) == 0 {
		// Empty name
		return n, nil
	}
	for _, component := range components {
		c, err := componentFromString(component)
		if err != nil {
			return nil, err
		}
		n.Append(c)
	}

	return n, nil
}

func componentFromString(component string) (NameComponent, error) {
	if !strings.Contains(component, "=") {
		// Treat as GenericNameComponent
		unescaped, err := unescapeComponent(component)
		if err != nil {
			return nil, errors.New("error unescaping component value")
		}
		return NewGenericNameComponent([]byte(unescaped)), nil
	}

	componentSplit := strings.Split(component, "=")
	if len(componentSplit) != 2 {
		return nil, errors.New("name component has extraneous =")
	}

	unescapedValue, err := unescapeComponent(componentSplit[1])
	if err != nil {
		return nil, errors.New("error unescaping component value")
	}

	switch componentSplit[0] {
	case "sha256digest":
		digest, err := hex.DecodeString(unescapedValue)
		if err != nil {
			return nil, errors.New("ImplicitSha256DigestComponent is not a hex string")
		}
		if c := NewImplicitSha256DigestComponent(digest); c != nil {
			return c, nil
		}
		return nil, util.ErrDecodeNameComponent
	case "params-sha256":
		digest, err := hex.DecodeString(unescapedValue)
		if err != nil {
			return nil, errors.New("ParametersSha256DigestComponent is not a hex string")
		}
		if c := NewParametersSha256DigestComponent(digest); c != nil {
			return c, nil
		}
		return nil, util.ErrDecodeNameComponent
	case "8":
		return NewGenericNameComponent([]byte(unescapedValue)), nil
	case "seg", "off", "v", "t", "seq":
		value, err := strconv.ParseUint(unescapedValue, 10, 64)
		if err != nil {
			return nil, errors.New("numeric name component is not a decimal string")
		}
		switch componentSplit[0] {
		case "seg":
			return NewSegmentNameComponent(value), nil
		case "off":
			return NewByteOffsetNameComponent(value), nil
		case "v":
			return NewVersionNameComponent(value), nil
		case "t":
			return NewTimestampNameComponent(value), nil
		default:
			return NewSequenceNumNameComponent(value), nil
		}
	default:
		t, err := strconv.ParseUint(componentSplit[0], 10, 16)
		if err != nil {
			return nil, errors.New("unable to decode component type \"" + componentSplit[0] + "\"")
		}
		return NewBaseNameComponent(uint16(t), []byte(unescapedValue)), nil
	}
}

func escapeComponent(in []byte) string {
	out := make([]byte, 0, 3*len(in)) // Capacity of 3 * len is worst case if every character has to be escaped
	nPeriods := 0
	for _, b := range in {
		switch {
		case b == '.':
			nPeriods++
			fallthrough
		case (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '-' || b == '_' || b == '~':
			out = append(out, b)
		default:
			out = append(out, '%', 0, 0)
			hex.Encode(out[len(out)-2:], []byte{b})
		}
	}
	if nPeriods == len(in) {
		out = append(out, '.', '.', '.')
	}
	return string(out)
}

func unescapeComponent(in string) (string, error) {
	out := make([]byte, 0, len(in)) // Capacity is worst case if nothing to be unescaped
	for i := 0; i < len(in); i++ {
		if in[i] == '%' {
			// Unescape
			if len(in) <= i+2 {
				return "", errors.New("incomplete escape sequence")
			}
			unescaped, err := hex.DecodeString(in[i+1 : i+3])
			if err != nil {
				return "", errors.New("could not decode escape sequence")
			}
			out = append(out, unescaped...)
			i += 2
		} else {
			out = append(out, in[i])
		}
	}
	return string(out), nil
}

// DecodeName decodes a name from wire encoding.
func DecodeName(b *tlv.Block) (*Name, error) {
	if b == nil {
		return nil, util.ErrNonExistent
	}
	if _, err := b.Wire(); err != nil {
		return nil, err
	}
	if b.Type() != tlv.Name {
		return nil, tlv.ErrUnexpected
	}

	if len(b.Subelements()) == 0 && !b.Parse() {
		return nil, errors.New("error parsing Name value")
	}
	n := new(Name)
	n.components = make([]NameComponent, len(b.Subelements()))
	for i, elem := range b.Subelements() {
		component, err := DecodeNameComponent(elem)
		if err != nil {
			return nil, err
		}
		n.components[i] = component
		n.cachedString += "/" + component.String()
	}
	n.wire = b
	return n, nil
}

func (n *Name) String() string {
	if len(n.cachedString) > 0 {
		return n.cachedString
	}

	if n.Size() == 0 {
		return "/"
	}

	var out string
	for _, component := range n.components {
		out += "/" + component.String()
	}
	n.cachedString = out
	return out
}

// Append adds the specified name component to the end of the name.
func (n *Name) Append(component NameComponent) *Name {
	n.components = append(n.components, component)
	n.wire = nil
	n.cachedString += "/" + component.String()
	return n
}

// At returns the name component at the specified index. If out of range, nil is returned.
func (n *Name) At(index int) NameComponent {
	if index < -len(n.components) || index >= len(n.components) {
		return nil
	}

	if index < 0 {
		return n.components[len(n.components)+index]
	}
	return n.components[index]
}

// Clear erases all components from the name.
func (n *Name) Clear() {
	if len(n.components) > 0 {
		n.components = make([]NameComponent, 0)
		n.wire = nil
		n.cachedString = ""
	}
}

// Compare returns the canonical order of this name against the specified other name.
func (n *Name) Compare(other *Name) int {
	for i := 0; i < n.Size() && i < other.Size(); i++ {
		if n.At(i).Type() != other.At(i).Type() {
			if n.At(i).Type() < other.At(i).Type() {
				return -1
			}
			return 1
		}
		if len(n.At(i).Value()) != len(other.At(i).Value()) {
			if len(n.At(i).Value()) < len(other.At(i).Value()) {
				return -1
			}
			return 1
		}
		if cmp := bytes.Compare(n.At(i).Value(), other.At(i).Value()); cmp != 0 {
			return cmp
		}
	}

	// A proper prefix precedes the longer name.
	if n.Size() != other.Size() {
		if n.Size() < other.Size() {
			return -1
		}
		return 1
	}
	return 0
}

// DeepCopy returns a deep copy of the name.
func (n *Name) DeepCopy() *Name {
	name := new(Name)
	name.components = make([]NameComponent, 0, len(n.components))
	for _, component := range n.components {
		name.components = append(name.components, component.DeepCopy())
	}
	return name
}

// Equals returns whether the specified name is equal to this name.
func (n *Name) Equals(other *Name) bool {
	if n.Size() != other.Size() {
		return false
	}

	for i := 0; i < n.Size(); i++ {
		if !n.At(i).Equals(other.At(i)) {
			return false
		}
	}

	return true
}

// Erase erases the name component at the specified index.
func (n *Name) Erase(index int) error {
	if index < 0 || index >= len(n.components) {
		return util.ErrOutOfRange
	}

	n.components = slices.Delete(n.components, index, index+1)
	n.wire = nil
	n.cachedString = ""
	return nil
}

// Find returns the first name component with the specified type, as well as its index.
func (n *Name) Find(tlvType uint16) (int, NameComponent) {
	index := slices.IndexFunc(n.components, func(c NameComponent) bool {
		return c.Type() == tlvType
	})
	if index == -1 {
		return -1, nil
	}
	return index, n.components[index]
}

// HasWire returns whether the name has a wire encoding.
func (n *Name) HasWire() bool {
	return n.wire != nil
}

// Prefix returns a name prefix of the specified number of components. If greater than or equal to the size of the name, this returns a copy of the name.
func (n *Name) Prefix(size int) *Name {
	if size >= n.Size() {
		return n.DeepCopy()
	}

	prefix := new(Name)
	prefix.components = make([]NameComponent, 0, size)
	for i := 0; i < size; i++ {
		prefix.components = append(prefix.components, n.components[i].DeepCopy())
	}
	return prefix
}

// PrefixOf returns whether this name is a prefix of the specified name.
func (n *Name) PrefixOf(other *Name) bool {
	if other == nil || n.Size() > other.Size() {
		return false
	}

	for i := 0; i < n.Size(); i++ {
		if !n.At(i).Equals(other.At(i)) {
			return false
		}
	}

	return true
}

// Size returns the number of components in the name.
func (n *Name) Size() int {
	return len(n.components)
}

// Encode encodes the name into a block.
func (n *Name) Encode() *tlv.Block {
	if n.wire == nil {
		n.wire = new(tlv.Block)
		n.wire.SetType(tlv.Name)

		for _, component := range n.components {
			n.wire.Append(component.Encode())
		}

		n.wire.Wire()
	}
	return n.wire
}

// EncodeInto prepends the wire encoding of the name to an encoder and returns the encoded size.
func (n *Name) EncodeInto(encoder tlv.Encoder) (int, error) {
	valueLen := 0
	for i := len(n.components) - 1; i >= 0; i-- {
		wire, err := n.components[i].Encode().Wire()
		if err != nil {
			return 0, err
		}
		valueLen += encoder.PrependBytes(wire)
	}
	return valueLen + tlv.PrependTL(encoder, tlv.Name, valueLen), nil
}

var nameHashPool = sync.Pool{
	New: func() interface{} { return xxhash.New() },
}

// Hash returns a 64-bit hash of the name's wire encoding, suitable for use as a table key.
func (n *Name) Hash() uint64 {
	h := nameHashPool.Get().(hash.Hash64)
	h.Reset()
	for _, component := range n.components {
		if wire, err := component.Encode().Wire(); err == nil {
			h.Write(wire)
		}
	}
	sum := h.Sum64()
	nameHashPool.Put(h)
	return sum
}
