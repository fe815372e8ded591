/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package png

import "errors"

// PNG errors. Errors returned by this package wrap exactly one of these, so callers can
// branch on the kind with errors.Is.
var (
	ErrInvalidTagBytes  = errors.New("chunk type bytes are not ASCII letters")
	ErrInvalidTagLength = errors.New("chunk type is not 4 ASCII characters")
	ErrBadSignature     = errors.New("PNG signature mismatch")
	ErrUnexpectedEOF    = errors.New("chunk extends past end of buffer")
	ErrCrcMismatch      = errors.New("chunk CRC mismatch")
	ErrTrailingGarbage  = errors.New("trailing bytes after last chunk")
	ErrChunkNotFound    = errors.New("chunk not found")
	ErrInvalidUTF8      = errors.New("value is not valid UTF-8")
)
