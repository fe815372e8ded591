/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"fmt"
	"os"
	"time"

	"github.com/named-data/pngmsg/core"
	"github.com/named-data/pngmsg/png"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
	ExitConfig  = 3
)

// command holds the state shared by every subcommand run.
type command struct {
	name       string
	positional string
	flagset    *pflag.FlagSet
	configFile string
	profiler   *Profiler
}

func newCommand(args []string, positional string) *command {
	c := &command{name: args[0], positional: positional}
	c.flagset = pflag.NewFlagSet(c.name, pflag.ContinueOnError)
	c.flagset.StringVarP(&c.configFile, "config", "c", "", "Configuration file (.toml, .yml or .yaml)")
	c.flagset.Usage = c.usage
	return c
}

func (c *command) usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] %s\n", c.name, c.positional)
	c.flagset.PrintDefaults()
}

// parse parses the command line, exiting if it is malformed or the positional argument count is out of range.
func (c *command) parse(args []string, minArgs int, maxArgs int) []string {
	if err := c.flagset.Parse(args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}
	if c.flagset.NArg() < minArgs || c.flagset.NArg() > maxArgs {
		c.usage()
		os.Exit(ExitUsage)
	}
	return c.flagset.Args()
}

// start loads the configuration, then starts logging and profiling.
func (c *command) start() {
	core.StartTimestamp = time.Now()
	if c.configFile != "" {
		if err := core.LoadConfig(c.configFile); err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load configuration file: "+err.Error())
			os.Exit(ExitConfig)
		}
	}
	if err := core.InitializeLogger(); err != nil {
		fmt.Fprintln(os.Stderr, "Unable to open log file: "+err.Error())
		os.Exit(ExitConfig)
	}

	c.profiler = NewProfiler(core.GetConfig())
	if err := c.profiler.Start(); err != nil {
		core.LogError("Main", "Unable to start profiler: ", err)
		os.Exit(ExitConfig)
	}
	core.LogDebug("Main", "Running ", c.name)
}

// finish stops profiling and exits with a status reflecting err.
func (c *command) finish(err error) {
	c.profiler.Stop()
	core.LogDebug("Main", c.name, " finished in ", time.Since(core.StartTimestamp))
	if err != nil {
		core.LogError("Main", err)
		core.ShutdownLogger()
		os.Exit(ExitFailure)
	}
	core.ShutdownLogger()
}

func readContainer(file string) (*png.Container, error) {
	buf, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read input file")
	}
	p, err := png.Decode(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", file)
	}
	core.LogDebug("File", "Read ", file, ": ", len(buf), " bytes, ", len(p.Chunks()), " chunks")
	return p, nil
}

func writeContainer(file string, p *png.Container) error {
	wire := p.Bytes()
	if err := os.WriteFile(file, wire, 0o644); err != nil {
		return errors.Wrap(err, "unable to write output file")
	}
	core.LogDebug("File", "Wrote ", file, ": ", len(wire), " bytes")
	return nil
}
