package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const banner = `
  _ __  _ __   __ _ _ __ ___  ___  __ _
 | '_ \| '_ \ / _' | '_ ' _ \/ __|/ _' |
 | |_) | | | | (_| | | | | | \__ \ (_| |
 | .__/|_| |_|\__, |_| |_| |_|___/\__, |
 |_|          |___/               |___/
`

// CmdTree is a node of the command line: either a leaf with a function or a group of subcommands.
type CmdTree struct {
	Name string
	Help string
	Sub  []*CmdTree
	Fun  func([]string)
}

// Output is where usage is printed.
var Output io.Writer = os.Stderr

// Exit terminates the program after usage has been printed.
var Exit = os.Exit

func (c *CmdTree) Usage(args []string) {
	fmt.Fprintln(Output, banner[1:])
	fmt.Fprintf(Output, "%s (%s)\n\n", c.Help, c.Name)
	fmt.Fprintf(Output, "Usage: %s [command]\n", args[0])
	for _, sub := range c.Sub {
		if sub.Name == "" {
			fmt.Fprintln(Output)
			continue
		}
		spaces := strings.Repeat(" ", max(1, 12-len(sub.Name)))
		fmt.Fprintf(Output, "  %s%s%s\n", sub.Name, spaces, sub.Help)
	}
	fmt.Fprintln(Output)
	Exit(2)
}

func (c *CmdTree) Execute(args []string) {
	// eagerly execute command if found
	if c.Fun != nil {
		c.Fun(args)
		return
	}

	if len(args) <= 1 {
		c.Usage(args)
		return
	}

	// recursively search for subcommand
	for _, sub := range c.Sub {
		if len(sub.Name) > 0 && args[1] == sub.Name {
			name := args[0] + " " + args[1]
			sargs := append([]string{name}, args[2:]...)
			sub.Execute(sargs)
			return
		}
	}

	// command not found
	c.Usage(args)
}
