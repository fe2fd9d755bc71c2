/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/named-data/ndn-packet/core"
	"github.com/named-data/ndn-packet/ndn"
	"github.com/named-data/ndn-packet/ndn/security"
	"github.com/named-data/ndn-packet/ndn/tlv"
)

// Version of ndnpkt.
var Version string

func main() {
	// Provide metadata to other threads.
	core.Version = Version
	core.StartTimestamp = time.Now()

	// Parse command line options
	var shouldPrintVersion bool
	flag.BoolVar(&shouldPrintVersion, "version", false, "Print version and exit")
	var configFileName string
	flag.StringVar(&configFileName, "config", "", "Configuration file location")
	var logFile string
	flag.StringVar(&logFile, "log-file", "", "Write logs to the specified file instead of stdout")
	var decodeFileName string
	flag.StringVar(&decodeFileName, "decode", "", "Decode the Data packet in the specified file and print its contents")
	var makeName string
	flag.StringVar(&makeName, "make", "", "Construct and sign a Data packet with the specified name")
	var contentHex string
	flag.StringVar(&contentHex, "content", "", "Content of the constructed Data packet (hex)")
	var hmacKey string
	flag.StringVar(&hmacKey, "hmac-key", "", "Sign the constructed Data packet with HMAC-SHA256 using the specified key")
	var hopLimit uint
	flag.UintVar(&hopLimit, "hop-limit", 0, "HopLimit of the constructed Data packet (0 to omit)")
	var mobilityFlag bool
	flag.BoolVar(&mobilityFlag, "mobility", false, "Set the MobilityFlag in the constructed Data packet")
	flag.Parse()

	if shouldPrintVersion {
		fmt.Println("ndnpkt: NDN packet wire codec tool")
		fmt.Println("Version " + core.Version)
		fmt.Println("Copyright (C) 2020-2022 Eric Newberry")
		fmt.Println("Released under the terms of the MIT License")
		return
	}

	// Initialize config file
	if configFileName != "" {
		core.LoadConfig(configFileName)
	}
	core.InitializeLogger(logFile)
	defer core.ShutdownLogger()

	switch {
	case decodeFileName != "":
		decodePacket(decodeFileName)
	case makeName != "":
		makePacket(makeName, contentHex, hmacKey, uint8(hopLimit), mobilityFlag)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func decodePacket(fileName string) {
	wireBytes, err := os.ReadFile(fileName)
	if err != nil {
		core.LogFatal("Main", "Unable to read packet file: ", err)
	}

	block, blockLen, err := tlv.DecodeBlock(wireBytes)
	if err != nil {
		core.LogFatal("Main", "Unable to decode block: ", err)
	}
	if int(blockLen) != len(wireBytes) {
		core.LogWarn("Main", "Trailing bytes after Data packet: ", len(wireBytes)-int(blockLen))
	}

	data, err := ndn.DecodeData(block)
	if err != nil {
		core.LogFatal("Main", "Unable to decode Data: ", err)
	}

	fmt.Println(data.String())
	fmt.Println("SignatureType:", data.SignatureInfo().Type())
	if data.HasContent() {
		fmt.Println("Content:", hex.EncodeToString(data.Content()))
	}

	fullName, err := data.FullName()
	if err != nil {
		core.LogFatal("Main", "Unable to compute full name: ", err)
	}
	fmt.Println("FullName:", fullName.String())

	if data.SignatureInfo().Type() == security.DigestSha256Type {
		valid, err := data.VerifySignature(new(security.DigestSha256))
		if err != nil {
			core.LogFatal("Main", "Unable to verify signature: ", err)
		}
		fmt.Println("DigestSha256 valid:", valid)
	}
}

func makePacket(name string, contentHex string, hmacKey string, hopLimit uint8, mobilityFlag bool) {
	dataName, err := ndn.NameFromString(name)
	if err != nil {
		core.LogFatal("Main", "Unable to parse name: ", err)
	}

	var content []byte
	if contentHex != "" {
		content, err = hex.DecodeString(contentHex)
		if err != nil {
			core.LogFatal("Main", "Unable to parse content: ", err)
		}
	}

	data := ndn.NewData(dataName, content)
	data.MetaInfo().SetMobilityFlag(mobilityFlag)
	if hopLimit > 0 {
		data.MetaInfo().SetHopLimit(hopLimit)
	}

	var signer security.Signer
	if hmacKey != "" {
		signer = security.NewHmacSha256Signer([]byte(hmacKey))
	} else {
		signer = new(security.DigestSha256)
	}
	if err := data.Sign(signer); err != nil {
		core.LogFatal("Main", "Unable to sign Data: ", err)
	}

	wire, err := data.Encode()
	if err != nil {
		core.LogFatal("Main", "Unable to encode Data: ", err)
	}
	wireBytes, err := wire.Wire()
	if err != nil {
		core.LogFatal("Main", "Unable to encode Data: ", err)
	}

	core.LogInfo("Main", "Encoded Data of ", len(wireBytes), " bytes")
	fmt.Println(hex.EncodeToString(wireBytes))
}
