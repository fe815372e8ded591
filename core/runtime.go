/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import "time"

// Version of pngmsg.
var Version string

// BuildTime contains the timestamp of when the version of pngmsg was built.
var BuildTime string

// StartTimestamp is the time the current command was started.
var StartTimestamp time.Time
