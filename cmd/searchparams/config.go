package main

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/lomik/zapwriter"
)

type outputConfig struct {
	Pretty bool `toml:"pretty"`
}

type filterConfig struct {
	Strict bool `toml:"strict"`
}

// Config of the searchparams filter
type Config struct {
	Output  outputConfig     `toml:"output"`
	Filter  filterConfig     `toml:"filter"`
	Logging zapwriter.Config `toml:"logging"`
}

// NewConfig returns the default config
func NewConfig() *Config {
	logging := zapwriter.NewConfig()
	logging.File = "stderr"

	cfg := &Config{
		Output: outputConfig{
			Pretty: false,
		},
		Filter: filterConfig{
			Strict: true,
		},
		Logging: logging,
	}

	return cfg
}

// PrintConfig dumps the config in TOML to stdout
func PrintConfig(cfg *Config) error {
	buf := new(bytes.Buffer)

	encoder := toml.NewEncoder(buf)
	encoder.Indent = ""

	if err := encoder.Encode(cfg); err != nil {
		return err
	}

	fmt.Print(buf.String())
	return nil
}

// ParseConfig reads the file over the defaults already in cfg
func ParseConfig(filename string, cfg *Config) error {
	if filename != "" {
		if _, err := toml.DecodeFile(filename, cfg); err != nil {
			return err
		}
	}

	return nil
}
