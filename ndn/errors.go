/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import "errors"

// Packet-level errors.
var (
	// ErrIncompleteStructure indicates that a packet is missing a required element.
	ErrIncompleteStructure = errors.New("packet structure is incomplete")
	// ErrMissingSignature indicates that a Data packet lacks a SignatureValue.
	ErrMissingSignature = errors.New("data lacks a SignatureValue")
	// ErrNoWire indicates that an operation requiring an existing wire encoding was called on a packet without one.
	ErrNoWire = errors.New("packet has no wire encoding")
)
