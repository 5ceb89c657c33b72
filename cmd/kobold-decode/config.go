// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/blinklabs-io/gokobold/objectproperty"
	"github.com/blinklabs-io/gokobold/typelist"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// config holds the decoder settings. It can be loaded from a YAML file, and
// command line flags override the values from the file.
type config struct {
	Types          string `yaml:"types"`
	Identity       string `yaml:"identity"`
	Flags          string `yaml:"flags"`
	Mask           string `yaml:"mask"`
	Shallow        bool   `yaml:"shallow"`
	Manual         bool   `yaml:"manualCompression"`
	RecursionLimit uint8  `yaml:"recursionLimit"`
	Format         string `yaml:"format"`
	Hex            bool   `yaml:"hex"`
	LogLevel       string `yaml:"logLevel"`
}

func defaultConfig() config {
	opts := objectproperty.DefaultDeserializerOptions()
	return config{
		Identity:       "PropertyClass",
		Mask:           opts.PropertyMask.String(),
		Shallow:        opts.Shallow,
		RecursionLimit: opts.RecursionLimit,
		Format:         "json",
		LogLevel:       "info",
	}
}

// loadConfigFile merges the YAML file at path into cfg
func loadConfigFile(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

type cmdFlags struct {
	flagSet    *pflag.FlagSet
	configFile string
	compileOut string
	cfg        config
}

func newCmdFlags(name string) *cmdFlags {
	f := &cmdFlags{
		flagSet: pflag.NewFlagSet(name, pflag.ContinueOnError),
		cfg:     defaultConfig(),
	}
	f.flagSet.StringVarP(
		&f.configFile,
		"config",
		"c",
		"",
		"YAML config file, overridden by command line flags",
	)
	f.flagSet.StringVarP(
		&f.cfg.Types,
		"types",
		"t",
		f.cfg.Types,
		"type list file (.json, .jsonc, .yaml, .yml or a compiled .bin snapshot)",
	)
	f.flagSet.StringVar(
		&f.cfg.Identity,
		"identity",
		f.cfg.Identity,
		"object identity encoding: PropertyClass or CoreObject",
	)
	f.flagSet.StringVar(
		&f.cfg.Flags,
		"flags",
		f.cfg.Flags,
		"serializer flags, e.g. STATEFUL_FLAGS|COMPACT_LENGTH_PREFIXES",
	)
	f.flagSet.StringVar(
		&f.cfg.Mask,
		"mask",
		f.cfg.Mask,
		"property mask as flag names or a number",
	)
	f.flagSet.BoolVar(
		&f.cfg.Shallow,
		"shallow",
		f.cfg.Shallow,
		"use the shallow encoding instead of size-framed objects",
	)
	f.flagSet.BoolVar(
		&f.cfg.Manual,
		"manual-compression",
		f.cfg.Manual,
		"input always starts with a size-prefixed zlib payload",
	)
	f.flagSet.Uint8Var(
		&f.cfg.RecursionLimit,
		"recursion-limit",
		f.cfg.RecursionLimit,
		"maximum object nesting",
	)
	f.flagSet.StringVarP(
		&f.cfg.Format,
		"format",
		"f",
		f.cfg.Format,
		"output format: json, cbor or dump",
	)
	f.flagSet.BoolVar(
		&f.cfg.Hex,
		"hex",
		f.cfg.Hex,
		"input files contain hex text instead of raw bytes",
	)
	f.flagSet.StringVar(
		&f.cfg.LogLevel,
		"log-level",
		f.cfg.LogLevel,
		"log level: debug, info, warn or error",
	)
	f.flagSet.StringVar(
		&f.compileOut,
		"compile",
		"",
		"write the type list as a compiled snapshot to this file and exit",
	)
	return f
}

// parse parses args and applies the config file underneath any flags that
// were set explicitly
func (f *cmdFlags) parse(args []string) error {
	if err := f.flagSet.Parse(args); err != nil {
		return err
	}
	if f.configFile == "" {
		return nil
	}
	fileCfg := defaultConfig()
	if err := loadConfigFile(f.configFile, &fileCfg); err != nil {
		return err
	}
	overrides := map[string]func(){
		"types":              func() { fileCfg.Types = f.cfg.Types },
		"identity":           func() { fileCfg.Identity = f.cfg.Identity },
		"flags":              func() { fileCfg.Flags = f.cfg.Flags },
		"mask":               func() { fileCfg.Mask = f.cfg.Mask },
		"shallow":            func() { fileCfg.Shallow = f.cfg.Shallow },
		"manual-compression": func() { fileCfg.Manual = f.cfg.Manual },
		"recursion-limit":    func() { fileCfg.RecursionLimit = f.cfg.RecursionLimit },
		"format":             func() { fileCfg.Format = f.cfg.Format },
		"hex":                func() { fileCfg.Hex = f.cfg.Hex },
		"log-level":          func() { fileCfg.LogLevel = f.cfg.LogLevel },
	}
	for name, override := range overrides {
		if f.flagSet.Changed(name) {
			override()
		}
	}
	f.cfg = fileCfg
	return nil
}

// deserializerOptions converts the config into decoder options
func (c *config) deserializerOptions() (objectproperty.DeserializerOptions, error) {
	opts := objectproperty.DefaultDeserializerOptions()
	flags, err := objectproperty.ParseSerializerFlags(c.Flags)
	if err != nil {
		return opts, err
	}
	mask, err := typelist.ParsePropertyFlags(c.Mask)
	if err != nil {
		return opts, err
	}
	opts.Flags = flags
	opts.PropertyMask = mask
	opts.Shallow = c.Shallow
	opts.ManualCompression = c.Manual
	opts.RecursionLimit = c.RecursionLimit
	return opts, nil
}

func (c *config) identity() (objectproperty.Identity, error) {
	switch strings.ToLower(c.Identity) {
	case "", "propertyclass", "binary":
		return objectproperty.PropertyClass{}, nil
	case "coreobject", "core":
		return objectproperty.CoreObject{}, nil
	default:
		return nil, fmt.Errorf("unknown identity encoding: %s", c.Identity)
	}
}

func (c *config) logLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, err
	}
	return level, nil
}
