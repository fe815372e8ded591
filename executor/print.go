/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/named-data/pngmsg/core"
	"github.com/named-data/pngmsg/png"
	"github.com/named-data/pngmsg/utils/comparison"
)

// PrintOptions are the options of the print command.
type PrintOptions struct {
	// PreviewBytes is the number of data bytes shown for each chunk. Zero disables the preview.
	PreviewBytes int
	// ShowDigest shows the xxHash64 of each chunk's data.
	ShowDigest bool
}

// RunPrint is the entry point of the print command.
func RunPrint(args []string) {
	cmd := newCommand(args, "<file>")
	pos := cmd.parse(args, 1, 1)
	cmd.start()

	config := core.GetConfig()
	opts := PrintOptions{
		PreviewBytes: config.Print.PreviewBytes,
		ShowDigest:   config.Print.ShowDigest,
	}
	cmd.finish(Print(pos[0], opts, os.Stdout))
}

// Print lists every chunk of a PNG file.
func Print(file string, opts PrintOptions, out io.Writer) error {
	p, err := readContainer(file)
	if err != nil {
		return err
	}

	chunks := p.Chunks()
	if _, err = fmt.Fprintf(out, "%s: %d bytes, %d chunks\n", file, p.Size(), len(chunks)); err != nil {
		return err
	}
	for i, chunk := range chunks {
		if _, err = fmt.Fprintf(out, "[%d] %s\n", i, formatChunk(chunk, opts)); err != nil {
			return err
		}
	}
	return nil
}

func formatChunk(chunk png.Chunk, opts PrintOptions) string {
	chunkType := chunk.Type()

	var sb strings.Builder
	sb.WriteString(chunk.String())
	sb.WriteString(" ")
	sb.WriteString(propertyFlags(chunkType))
	if opts.ShowDigest {
		sb.WriteString(fmt.Sprintf(" xxh64=%016x", xxhash.Sum64(chunk.Data())))
	}
	if opts.PreviewBytes > 0 && chunk.Length() > 0 {
		preview, cut := comparison.Prefix(chunk.Data(), opts.PreviewBytes)
		sb.WriteString(" data=")
		sb.WriteString(hex.EncodeToString(preview))
		if cut {
			sb.WriteString("...")
		}
	}
	return sb.String()
}

// propertyFlags renders the four property bits of a chunk type, uppercase meaning set.
// For example "CPR-" is a critical, public, valid, unsafe-to-copy chunk type.
func propertyFlags(chunkType png.ChunkType) string {
	flags := []byte("----")
	if chunkType.IsCritical() {
		flags[0] = 'C'
	}
	if chunkType.IsPublic() {
		flags[1] = 'P'
	}
	if chunkType.IsReservedBitValid() {
		flags[2] = 'R'
	}
	if chunkType.IsSafeToCopy() {
		flags[3] = 'S'
	}
	return string(flags)
}
