/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package png

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ChunkTypeSize is the size of a chunk type on the wire.
const ChunkTypeSize = 4

// ChunkType is the 4-letter code naming the kind of a chunk.
// The case of each letter carries one property bit.
type ChunkType [ChunkTypeSize]byte

// Well-known chunk types.
var (
	ChunkTypeIHDR = ChunkType{'I', 'H', 'D', 'R'}
	ChunkTypeIDAT = ChunkType{'I', 'D', 'A', 'T'}
	ChunkTypeIEND = ChunkType{'I', 'E', 'N', 'D'}
)

///////////////
// Constructors
///////////////

// ChunkTypeFromBytes creates a chunk type from its wire bytes. Case is preserved.
func ChunkTypeFromBytes(b [ChunkTypeSize]byte) (ChunkType, error) {
	for i, c := range b {
		if !isASCIILetter(c) {
			return ChunkType{}, errors.Wrapf(ErrInvalidTagBytes, "byte %d is 0x%02x", i, c)
		}
	}
	return ChunkType(b), nil
}

// ParseChunkType creates a chunk type from its textual form, e.g. "ruSt".
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != ChunkTypeSize || !isASCII(s) {
		return ChunkType{}, errors.Wrapf(ErrInvalidTagLength, "%q", s)
	}
	var b [ChunkTypeSize]byte
	copy(b[:], s)
	return ChunkTypeFromBytes(b)
}

/////////////
// Properties
/////////////

// IsCritical returns whether decoders must understand the chunk to display the image.
func (t ChunkType) IsCritical() bool {
	return isASCIIUpper(t[0])
}

// IsPublic returns whether the chunk type is part of the PNG specification.
func (t ChunkType) IsPublic() bool {
	return isASCIIUpper(t[1])
}

// IsReservedBitValid returns whether the reserved bit (case of the third letter) is unset.
func (t ChunkType) IsReservedBitValid() bool {
	return isASCIIUpper(t[2])
}

// IsSafeToCopy returns whether editors unaware of the chunk may copy it to a modified file.
func (t ChunkType) IsSafeToCopy() bool {
	return isASCIILower(t[3])
}

// IsValid returns whether the chunk type conforms to the current PNG specification.
func (t ChunkType) IsValid() bool {
	return t.IsReservedBitValid()
}

/////////////
// Conversion
/////////////

// Bytes returns the 4 bytes of the chunk type.
func (t ChunkType) Bytes() [ChunkTypeSize]byte {
	return t
}

// Text returns the chunk type as a string.
func (t ChunkType) Text() (string, error) {
	if !utf8.Valid(t[:]) {
		return "", errors.Wrapf(ErrInvalidUTF8, "chunk type % x", t[:])
	}
	return string(t[:]), nil
}

func (t ChunkType) String() string {
	return string(t[:])
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isASCIIUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isASCIILower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isASCIILetter(c byte) bool {
	return isASCIIUpper(c) || isASCIILower(c)
}
