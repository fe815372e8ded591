package executor

import (
	"fmt"
	"os"

	"github.com/named-data/pngmsg/core"
)

// RunVersion prints version information.
func RunVersion(args []string) {
	fmt.Fprintln(os.Stdout, "pngmsg: Hide messages inside PNG chunks")
	fmt.Fprintln(os.Stdout, "Version "+core.Version+" (Built "+core.BuildTime+")")
	fmt.Fprintln(os.Stdout, "Released under the terms of the MIT License")
}
