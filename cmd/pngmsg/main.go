package main

import (
	"os"

	"github.com/named-data/pngmsg/cmd"
	"github.com/named-data/pngmsg/core"
	"github.com/named-data/pngmsg/executor"
)

// Version of pngmsg.
var Version string

// BuildTime contains the timestamp of when the version of pngmsg was built.
var BuildTime string

func main() {
	core.Version = Version
	core.BuildTime = BuildTime

	// create a command tree
	tree := cmd.CmdTree{
		Name: "pngmsg",
		Help: "Hide messages inside PNG chunks",
		Sub: []*cmd.CmdTree{{
			Name: "encode",
			Help: "Encode a message into a PNG file",
			Fun:  executor.RunEncode,
		}, {
			Name: "decode",
			Help: "Print the message hidden in a chunk",
			Fun:  executor.RunDecode,
		}, {
			Name: "remove",
			Help: "Remove a chunk from a PNG file",
			Fun:  executor.RunRemove,
		}, {
			Name: "print",
			Help: "List all chunks of a PNG file",
			Fun:  executor.RunPrint,
		}, {
			// separator
		}, {
			Name: "version",
			Help: "Print version and exit",
			Fun:  executor.RunVersion,
		}},
	}

	// Parse the command line arguments
	args := os.Args
	args[0] = tree.Name
	tree.Execute(args)
}
