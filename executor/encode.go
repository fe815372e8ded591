/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"errors"

	"github.com/named-data/pngmsg/core"
	"github.com/named-data/pngmsg/png"
)

// ErrReservedChunkType is returned when a chunk type with the reserved bit set is rejected.
var ErrReservedChunkType = errors.New("chunk type has the reserved bit set (third letter must be uppercase)")

// EncodeOptions are the options of the encode command.
type EncodeOptions struct {
	// File is the PNG file to read.
	File string
	// ChunkType is the type of the chunk carrying the message.
	ChunkType string
	// Message is the chunk payload.
	Message string
	// Output is the file to write. The input file is overwritten when empty.
	Output string
	// BeforeIEND inserts the chunk before IEND instead of appending it.
	BeforeIEND bool
	// RequireValidType rejects chunk types whose reserved bit is set.
	RequireValidType bool
}

// RunEncode is the entry point of the encode command.
func RunEncode(args []string) {
	cmd := newCommand(args, "<file> <chunk-type> <message> [output]")
	var beforeIEND bool
	cmd.flagset.BoolVar(&beforeIEND, "before-iend", false, "Insert the chunk before IEND instead of appending it")
	pos := cmd.parse(args, 3, 4)
	cmd.start()

	config := core.GetConfig()
	opts := EncodeOptions{
		File:             pos[0],
		ChunkType:        pos[1],
		Message:          pos[2],
		BeforeIEND:       config.Encode.BeforeIEND,
		RequireValidType: config.Encode.RequireValidType,
	}
	if len(pos) > 3 {
		opts.Output = pos[3]
	}
	if cmd.flagset.Changed("before-iend") {
		opts.BeforeIEND = beforeIEND
	}

	cmd.finish(Encode(opts))
}

// Encode hides a message in a new chunk of a PNG file.
func Encode(opts EncodeOptions) error {
	p, err := readContainer(opts.File)
	if err != nil {
		return err
	}

	chunkType, err := png.ParseChunkType(opts.ChunkType)
	if err != nil {
		return err
	}
	if !chunkType.IsValid() {
		if opts.RequireValidType {
			return ErrReservedChunkType
		}
		core.LogWarn("Encode", "Chunk type ", chunkType, " has the reserved bit set, some decoders may reject it")
	}
	if chunkType.IsCritical() {
		core.LogWarn("Encode", "Chunk type ", chunkType, " is critical, viewers that do not know it will refuse the image")
	}

	chunk := png.NewChunk(chunkType, []byte(opts.Message))
	if opts.BeforeIEND {
		err = p.InsertChunkBefore(chunk, png.ChunkTypeIEND.String())
		if errors.Is(err, png.ErrChunkNotFound) {
			core.LogWarn("Encode", "No IEND chunk in ", opts.File, ", appending instead")
			p.AppendChunk(chunk)
		}
	} else {
		p.AppendChunk(chunk)
	}

	output := opts.Output
	if output == "" {
		output = opts.File
	}
	if err = writeContainer(output, p); err != nil {
		return err
	}
	core.LogInfo("Encode", "Wrote ", chunk, " to ", output)
	return nil
}
