/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package png

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Chunk framing sizes.
const (
	chunkLengthSize = 4
	chunkCrcSize    = 4
	// ChunkOverhead is the number of bytes a chunk occupies on the wire besides its data.
	ChunkOverhead = chunkLengthSize + ChunkTypeSize + chunkCrcSize
)

// Chunk is a single length-prefixed, typed and checksummed record of a PNG file.
type Chunk struct {
	chunkType ChunkType
	data      []byte
	crc       uint32
}

///////////////
// Constructors
///////////////

// NewChunk creates a chunk of the specified type containing a copy of data.
func NewChunk(chunkType ChunkType, data []byte) Chunk {
	c := Chunk{
		chunkType: chunkType,
		data:      make([]byte, len(data)),
	}
	copy(c.data, data)
	c.crc = checksum(chunkType, c.data)
	return c
}

// DecodeChunk decodes the chunk at the start of buf and returns it with the number of bytes it occupied.
func DecodeChunk(buf []byte) (Chunk, int, error) {
	if len(buf) < ChunkOverhead {
		return Chunk{}, 0, errors.Wrapf(ErrUnexpectedEOF, "need %d bytes for chunk framing, have %d",
			ChunkOverhead, len(buf))
	}

	length := binary.BigEndian.Uint32(buf)
	size := uint64(length) + ChunkOverhead
	if size > uint64(len(buf)) {
		return Chunk{}, 0, errors.Wrapf(ErrUnexpectedEOF, "chunk declares %d data bytes, only %d available",
			length, len(buf)-ChunkOverhead)
	}

	var typeBytes [ChunkTypeSize]byte
	copy(typeBytes[:], buf[chunkLengthSize:])
	chunkType, err := ChunkTypeFromBytes(typeBytes)
	if err != nil {
		return Chunk{}, 0, err
	}

	dataEnd := chunkLengthSize + ChunkTypeSize + int(length)
	stored := binary.BigEndian.Uint32(buf[dataEnd:])
	computed := crc32.ChecksumIEEE(buf[chunkLengthSize:dataEnd])
	if stored != computed {
		return Chunk{}, 0, errors.Wrapf(ErrCrcMismatch, "%s: stored %08x, computed %08x",
			chunkType, stored, computed)
	}

	c := Chunk{
		chunkType: chunkType,
		data:      make([]byte, length),
		crc:       stored,
	}
	copy(c.data, buf[chunkLengthSize+ChunkTypeSize:dataEnd])
	return c, int(size), nil
}

//////////
// Getters
//////////

// Length returns the number of data bytes in the chunk.
func (c Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// Type returns the type of the chunk.
func (c Chunk) Type() ChunkType {
	return c.chunkType
}

// Data returns a copy of the chunk data.
func (c Chunk) Data() []byte {
	data := make([]byte, len(c.data))
	copy(data, c.data)
	return data
}

// CRC returns the CRC-32 of the chunk type and data.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// DataString returns the chunk data interpreted as UTF-8 text.
func (c Chunk) DataString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", errors.Wrapf(ErrInvalidUTF8, "data of %s chunk", c.chunkType)
	}
	return string(c.data), nil
}

///////////
// Encoding
///////////

// Size returns the size of the chunk on the wire.
func (c Chunk) Size() int {
	return len(c.data) + ChunkOverhead
}

// Bytes returns the wire encoding of the chunk.
func (c Chunk) Bytes() []byte {
	return c.appendTo(make([]byte, 0, c.Size()))
}

func (c Chunk) appendTo(wire []byte) []byte {
	wire = binary.BigEndian.AppendUint32(wire, uint32(len(c.data)))
	wire = append(wire, c.chunkType[:]...)
	wire = append(wire, c.data...)
	return binary.BigEndian.AppendUint32(wire, c.crc)
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s length=%d crc=%08x", c.chunkType, len(c.data), c.crc)
}

func checksum(chunkType ChunkType, data []byte) uint32 {
	crc := crc32.ChecksumIEEE(chunkType[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}
