/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"fmt"
	"io"
	"os"

	"github.com/named-data/pngmsg/core"
	"github.com/named-data/pngmsg/png"
	"github.com/pkg/errors"
)

// RunDecode is the entry point of the decode command.
func RunDecode(args []string) {
	cmd := newCommand(args, "<file> <chunk-type>")
	pos := cmd.parse(args, 2, 2)
	cmd.start()
	cmd.finish(Decode(pos[0], pos[1], os.Stdout))
}

// Decode writes the message hidden in the first chunk of the specified type to out.
func Decode(file string, chunkType string, out io.Writer) error {
	p, err := readContainer(file)
	if err != nil {
		return err
	}

	chunk, ok := p.ChunkByType(chunkType)
	if !ok {
		return errors.Wrapf(png.ErrChunkNotFound, "no %s chunk in %s", chunkType, file)
	}
	core.LogDebug("Decode", "Found ", chunk)

	message, err := chunk.DataString()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, message)
	return err
}
