/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import "errors"

// Error definitions
var (
	ErrUnknownConfigFormat = errors.New("configuration file must end in .toml, .yml or .yaml")
	ErrInvalidConfig       = errors.New("invalid configuration value")
)
