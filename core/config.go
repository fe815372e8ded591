/* pngmsg - Hide messages inside PNG chunks
 *
 * Copyright (C) 2026 The pngmsg Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Config is the pngmsg configuration.
type Config struct {
	Core struct {
		// Log level: TRACE, DEBUG, INFO, WARN, ERROR, FATAL
		LogLevel string `yaml:"log_level"`
		// Log file; logs go to stderr when empty
		LogFile string `yaml:"log_file"`
	} `yaml:"core"`

	Encode struct {
		// Insert new chunks before IEND instead of appending them
		BeforeIEND bool `yaml:"before_iend"`
		// Reject chunk types whose reserved bit is set
		RequireValidType bool `yaml:"require_valid_type"`
	} `yaml:"encode"`

	Print struct {
		// Number of data bytes shown for each chunk
		PreviewBytes int `yaml:"preview_bytes"`
		// Show a digest of each chunk's data
		ShowDigest bool `yaml:"show_digest"`
	} `yaml:"print"`

	Profile struct {
		Cpu   string `yaml:"cpu"`
		Mem   string `yaml:"mem"`
		Block string `yaml:"block"`
	} `yaml:"profile"`
}

var config = DefaultConfig()

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	c := &Config{}
	c.Core.LogLevel = "INFO"
	c.Core.LogFile = ""
	c.Encode.BeforeIEND = false
	c.Encode.RequireValidType = false
	c.Print.PreviewBytes = 16
	c.Print.ShowDigest = true
	return c
}

// GetConfig returns the current configuration.
func GetConfig() *Config {
	return config
}

// SetConfig replaces the current configuration.
func SetConfig(c *Config) {
	config = c
}

// LoadConfig loads the configuration from the specified file and makes it current.
// The format is picked from the file extension.
func LoadConfig(file string) error {
	var c *Config
	var err error
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		c, err = loadTomlConfig(file)
	case ".yml", ".yaml":
		c, err = loadYamlConfig(file)
	default:
		return errors.Wrap(ErrUnknownConfigFormat, file)
	}
	if err != nil {
		return err
	}
	if err = c.Validate(); err != nil {
		return err
	}
	config = c
	return nil
}

// Validate checks that configuration values are within range.
func (c *Config) Validate() error {
	if c.Print.PreviewBytes < 0 {
		return errors.Wrapf(ErrInvalidConfig, "print.preview_bytes must not be negative, got %d", c.Print.PreviewBytes)
	}
	return nil
}

func loadTomlConfig(file string) (*Config, error) {
	tree, err := toml.LoadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load configuration file")
	}

	c := DefaultConfig()
	c.Core.LogLevel = getStringDefault(tree, "core.log_level", c.Core.LogLevel)
	c.Core.LogFile = getStringDefault(tree, "core.log_file", c.Core.LogFile)
	c.Encode.BeforeIEND = getBoolDefault(tree, "encode.before_iend", c.Encode.BeforeIEND)
	c.Encode.RequireValidType = getBoolDefault(tree, "encode.require_valid_type", c.Encode.RequireValidType)
	c.Print.PreviewBytes = getIntDefault(tree, "print.preview_bytes", c.Print.PreviewBytes)
	c.Print.ShowDigest = getBoolDefault(tree, "print.show_digest", c.Print.ShowDigest)
	c.Profile.Cpu = getStringDefault(tree, "profile.cpu", c.Profile.Cpu)
	c.Profile.Mem = getStringDefault(tree, "profile.mem", c.Profile.Mem)
	c.Profile.Block = getStringDefault(tree, "profile.block", c.Profile.Block)
	return c, nil
}

func loadYamlConfig(file string) (*Config, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open configuration file")
	}
	defer f.Close()

	c := DefaultConfig()
	dec := yaml.NewDecoder(f, yaml.Strict())
	if err = dec.Decode(c); err != nil {
		return nil, errors.Wrap(err, "unable to parse configuration file")
	}
	return c, nil
}

// getIntDefault returns the integer value at the specified key or the specified default value if it does not exist.
func getIntDefault(tree *toml.Tree, key string, def int) int {
	valRaw := tree.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(int64)
	if ok && val >= math.MinInt32 && val <= math.MaxInt32 {
		return int(val)
	}
	return def
}

// getStringDefault returns the string value at the specified key or the specified default value if it does not exist.
func getStringDefault(tree *toml.Tree, key string, def string) string {
	valRaw := tree.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(string)
	if ok {
		return val
	}
	return def
}

// getBoolDefault returns the boolean value at the specified key or the specified default value if it does not exist.
func getBoolDefault(tree *toml.Tree, key string, def bool) bool {
	valRaw := tree.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(bool)
	if ok {
		return val
	}
	return def
}
