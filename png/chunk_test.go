/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package png_test

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
	"testing"

	"github.com/named-data/pngmsg/png"
	tu "github.com/named-data/pngmsg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretMessage = "This is where your secret message will be!"

func testChunkWire(chunkType string, data []byte, crc uint32) []byte {
	wire := binary.BigEndian.AppendUint32(nil, uint32(len(data)))
	wire = append(wire, chunkType...)
	wire = append(wire, data...)
	return binary.BigEndian.AppendUint32(wire, crc)
}

func TestChunkCreate(t *testing.T) {
	tu.SetTestingT(t)

	chunkType := tu.WithoutErr(png.ParseChunkType("RuSt"))
	chunk := png.NewChunk(chunkType, []byte(secretMessage))
	assert.Equal(t, uint32(42), chunk.Length())
	assert.Equal(t, chunkType, chunk.Type())
	assert.Equal(t, []byte(secretMessage), chunk.Data())
	assert.Equal(t, uint32(2882656334), chunk.CRC())
	assert.Equal(t, secretMessage, tu.WithoutErr(chunk.DataString()))
	assert.Equal(t, 54, chunk.Size())
	assert.Equal(t, testChunkWire("RuSt", []byte(secretMessage), 2882656334), chunk.Bytes())
}

func TestChunkCopiesData(t *testing.T) {
	data := []byte("abc")
	chunk := png.NewChunk(png.ChunkTypeIDAT, data)
	data[0] = 'x'
	assert.Equal(t, []byte("abc"), chunk.Data())

	out := chunk.Data()
	out[1] = 'y'
	assert.Equal(t, []byte("abc"), chunk.Data())
}

func TestChunkEmpty(t *testing.T) {
	chunk := png.NewChunk(png.ChunkTypeIEND, nil)
	assert.Equal(t, uint32(0), chunk.Length())
	assert.Equal(t, uint32(0xAE426082), chunk.CRC())
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x00,
		0x49, 0x45, 0x4E, 0x44,
		0xAE, 0x42, 0x60, 0x82,
	}, chunk.Bytes())
}

func TestChunkDecode(t *testing.T) {
	tu.SetTestingT(t)

	wire := testChunkWire("RuSt", []byte(secretMessage), 2882656334)
	wire = append(wire, 0xDE, 0xAD)
	chunk, size, err := png.DecodeChunk(wire)
	require.NoError(t, err)
	assert.Equal(t, 54, size)
	assert.Equal(t, "RuSt", chunk.Type().String())
	assert.Equal(t, uint32(42), chunk.Length())
	assert.Equal(t, uint32(2882656334), chunk.CRC())
	assert.Equal(t, secretMessage, tu.WithoutErr(chunk.DataString()))
	assert.Equal(t, wire[:size], chunk.Bytes())

	expected := png.NewChunk(tu.WithoutErr(png.ParseChunkType("RuSt")), []byte(secretMessage))
	assert.Equal(t, expected, chunk)
}

func TestChunkDecodeCrcMismatch(t *testing.T) {
	wire := testChunkWire("RuSt", []byte(secretMessage), 2882656333)
	_, _, err := png.DecodeChunk(wire)
	assert.True(t, errors.Is(err, png.ErrCrcMismatch))

	// Corrupting any single data byte must be detected
	good := png.NewChunk(png.ChunkTypeIDAT, []byte(secretMessage)).Bytes()
	for i := 8; i < len(good)-4; i++ {
		corrupt := append([]byte(nil), good...)
		corrupt[i] ^= 0x01
		_, _, err := png.DecodeChunk(corrupt)
		assert.True(t, errors.Is(err, png.ErrCrcMismatch), "byte %d", i)
	}
}

func TestChunkDecodeTruncated(t *testing.T) {
	_, _, err := png.DecodeChunk([]byte{0x00, 0x00, 0x00, 0x00, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60})
	assert.True(t, errors.Is(err, png.ErrUnexpectedEOF))

	_, _, err = png.DecodeChunk(nil)
	assert.True(t, errors.Is(err, png.ErrUnexpectedEOF))

	wire := testChunkWire("RuSt", make([]byte, 100), 0)
	_, _, err = png.DecodeChunk(wire[:60])
	assert.True(t, errors.Is(err, png.ErrUnexpectedEOF))

	// Declared length close to the uint32 limit
	huge := []byte{0xFF, 0xFF, 0xFF, 0xFF, 'R', 'u', 'S', 't', 0, 0, 0, 0}
	_, _, err = png.DecodeChunk(huge)
	assert.True(t, errors.Is(err, png.ErrUnexpectedEOF))
}

func TestChunkDecodeInvalidType(t *testing.T) {
	data := []byte("x")
	crc := crc32.ChecksumIEEE(append([]byte("Ru1t"), data...))
	_, _, err := png.DecodeChunk(testChunkWire("Ru1t", data, crc))
	assert.True(t, errors.Is(err, png.ErrInvalidTagBytes))
}

func TestChunkCrcInvariant(t *testing.T) {
	payloads := [][]byte{nil, {0x00}, []byte(secretMessage), make([]byte, 4096)}
	for _, data := range payloads {
		chunk := png.NewChunk(png.ChunkTypeIDAT, data)
		typeBytes := chunk.Type().Bytes()
		expected := crc32.ChecksumIEEE(append(typeBytes[:], chunk.Data()...))
		assert.Equal(t, expected, chunk.CRC())
	}
}

func TestChunkDataStringInvalid(t *testing.T) {
	chunk := png.NewChunk(png.ChunkTypeIDAT, []byte{0xFF, 0xFE, 0xFD})
	_, err := chunk.DataString()
	assert.True(t, errors.Is(err, png.ErrInvalidUTF8))
}

func TestChunkString(t *testing.T) {
	chunk := png.NewChunk(png.ChunkTypeIEND, nil)
	assert.Equal(t, "IEND length=0 crc=ae426082", chunk.String())
}
