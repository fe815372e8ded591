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
)

// RunRemove is the entry point of the remove command.
func RunRemove(args []string) {
	cmd := newCommand(args, "<file> <chunk-type>")
	pos := cmd.parse(args, 2, 2)
	cmd.start()
	cmd.finish(Remove(pos[0], pos[1], os.Stdout))
}

// Remove deletes the first chunk of the specified type from a PNG file, rewriting it in place.
func Remove(file string, chunkType string, out io.Writer) error {
	p, err := readContainer(file)
	if err != nil {
		return err
	}

	removed, err := p.RemoveChunk(chunkType)
	if err != nil {
		return err
	}
	if err = writeContainer(file, p); err != nil {
		return err
	}
	core.LogInfo("Remove", "Removed ", removed, " from ", file)
	_, err = fmt.Fprintln(out, "Removed "+removed.String())
	return err
}
