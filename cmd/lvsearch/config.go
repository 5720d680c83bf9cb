package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the --config file. Sections are named after subcommands and keys
// after their long flags; every key is optional.
type Config struct {
	Log      logConfig      `yaml:"log"`
	Search   searchConfig   `yaml:"search"`
	Serve    serveConfig    `yaml:"serve"`
	Generate generateConfig `yaml:"generate"`
}

type logConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

type searchConfig struct {
	File      *string `yaml:"file"`
	Start     *uint32 `yaml:"start"`
	Goal      *uint32 `yaml:"goal"`
	Algorithm *string `yaml:"algorithm"`
	All       *bool   `yaml:"all"`
	Limit     *int    `yaml:"limit"`
	Path      *bool   `yaml:"path"`
}

type serveConfig struct {
	File     *string `yaml:"file"`
	Addr     *string `yaml:"addr"`
	MaxLimit *int    `yaml:"max-limit"`
}

type generateConfig struct {
	Topology *string  `yaml:"topology"`
	N        *int     `yaml:"n"`
	Rows     *int     `yaml:"rows"`
	Cols     *int     `yaml:"cols"`
	P        *float64 `yaml:"p"`
	Seed     *int64   `yaml:"seed"`
	Kind     *string  `yaml:"kind"`
	MaxCost  *int     `yaml:"max-cost"`
	Out      *string  `yaml:"out"`
}

// loadConfig reads and strictly decodes the YAML file at path; unknown keys
// are errors. An empty file yields the zero Config.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// flagValues returns the keys set in the section of command, rendered the way
// pflag parses them.
func (c Config) flagValues(command string) map[string]string {
	m := make(map[string]string)
	switch command {
	case "search":
		put(m, "file", c.Search.File)
		put(m, "start", c.Search.Start)
		put(m, "goal", c.Search.Goal)
		put(m, "algorithm", c.Search.Algorithm)
		put(m, "all", c.Search.All)
		put(m, "limit", c.Search.Limit)
		put(m, "path", c.Search.Path)
	case "serve":
		put(m, "file", c.Serve.File)
		put(m, "addr", c.Serve.Addr)
		put(m, "max-limit", c.Serve.MaxLimit)
	case "generate":
		put(m, "topology", c.Generate.Topology)
		put(m, "n", c.Generate.N)
		put(m, "rows", c.Generate.Rows)
		put(m, "cols", c.Generate.Cols)
		put(m, "p", c.Generate.P)
		put(m, "seed", c.Generate.Seed)
		put(m, "kind", c.Generate.Kind)
		put(m, "max-cost", c.Generate.MaxCost)
		put(m, "out", c.Generate.Out)
	}
	return m
}

func put[T any](m map[string]string, name string, v *T) {
	if v != nil {
		m[name] = fmt.Sprint(*v)
	}
}

// applyConfig sets every flag of cmd named in values unless the flag was given
// on the command line.
func applyConfig(cmd *cobra.Command, values map[string]string) error {
	flags := cmd.Flags()
	for name, v := range values {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("config %s.%s: %w", cmd.Name(), name, err)
		}
	}
	return nil
}
