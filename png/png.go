/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package png

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// SignatureSize is the size of the PNG file signature.
const SignatureSize = 8

// Signature is the fixed header that opens every PNG file.
var Signature = [SignatureSize]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Container is a PNG file: the signature followed by an ordered list of chunks.
// The container does not require an IHDR first or an IEND last.
type Container struct {
	chunks []Chunk
}

///////////////
// Constructors
///////////////

// NewContainer creates a container holding the specified chunks in order.
func NewContainer(chunks []Chunk) *Container {
	p := &Container{}
	p.chunks = append(p.chunks, chunks...)
	return p
}

// Decode parses a whole PNG file. The first chunk that fails to decode aborts the whole file.
func Decode(buf []byte) (*Container, error) {
	if len(buf) < SignatureSize || !bytes.Equal(buf[:SignatureSize], Signature[:]) {
		return nil, ErrBadSignature
	}

	p := &Container{}
	pos := SignatureSize
	for pos < len(buf) {
		if len(buf)-pos < chunkLengthSize+ChunkTypeSize {
			return nil, errors.Wrapf(ErrTrailingGarbage, "%d bytes at offset %d", len(buf)-pos, pos)
		}
		chunk, chunkSize, err := DecodeChunk(buf[pos:])
		if err != nil {
			return nil, errors.Wrapf(err, "chunk %d at offset %d", len(p.chunks), pos)
		}
		p.chunks = append(p.chunks, chunk)
		pos += chunkSize
	}
	return p, nil
}

//////////
// Getters
//////////

// Header returns the PNG signature.
func (p *Container) Header() [SignatureSize]byte {
	return Signature
}

// Chunks returns the chunks of the file in order. Modifying the returned slice does not affect the container.
func (p *Container) Chunks() []Chunk {
	return slices.Clone(p.chunks)
}

// ChunkByType returns the first chunk whose type is the specified text.
func (p *Container) ChunkByType(chunkType string) (Chunk, bool) {
	i := p.index(chunkType)
	if i == -1 {
		return Chunk{}, false
	}
	return p.chunks[i], true
}

///////////
// Mutation
///////////

// AppendChunk adds a chunk to the end of the file, after any IEND.
func (p *Container) AppendChunk(chunk Chunk) {
	p.chunks = append(p.chunks, chunk)
}

// InsertChunkBefore inserts a chunk before the first chunk whose type is the specified text.
func (p *Container) InsertChunkBefore(chunk Chunk, chunkType string) error {
	i := p.index(chunkType)
	if i == -1 {
		return errors.Wrap(ErrChunkNotFound, chunkType)
	}
	p.chunks = slices.Insert(p.chunks, i, chunk)
	return nil
}

// RemoveChunk removes the first chunk whose type is the specified text and returns it.
// When several chunks share the type, only the earliest one is removed.
func (p *Container) RemoveChunk(chunkType string) (Chunk, error) {
	i := p.index(chunkType)
	if i == -1 {
		return Chunk{}, errors.Wrap(ErrChunkNotFound, chunkType)
	}
	removed := p.chunks[i]
	p.chunks = slices.Delete(p.chunks, i, i+1)
	return removed, nil
}

///////////
// Encoding
///////////

// Size returns the size of the encoded file.
func (p *Container) Size() int {
	size := SignatureSize
	for _, c := range p.chunks {
		size += c.Size()
	}
	return size
}

// Bytes returns the encoded file.
func (p *Container) Bytes() []byte {
	wire := make([]byte, 0, p.Size())
	wire = append(wire, Signature[:]...)
	for _, c := range p.chunks {
		wire = c.appendTo(wire)
	}
	return wire
}

func (p *Container) String() string {
	var sb strings.Builder
	sb.WriteString("PNG with " + strconv.Itoa(len(p.chunks)) + " chunks\n")
	for i, c := range p.chunks {
		sb.WriteString("  [" + strconv.Itoa(i) + "] " + c.String() + "\n")
	}
	return sb.String()
}

func (p *Container) index(chunkType string) int {
	return slices.IndexFunc(p.chunks, func(c Chunk) bool {
		return c.chunkType.String() == chunkType
	})
}
