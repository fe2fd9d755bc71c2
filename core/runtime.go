/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import "time"

// Version of ndn-packet.
var Version string

// StartTimestamp is the time the tool was started.
var StartTimestamp time.Time
