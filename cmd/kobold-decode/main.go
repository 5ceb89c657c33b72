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

// kobold-decode decodes ObjectProperty data using a type list and prints the
// resulting value tree
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/blinklabs-io/gokobold/cbor"
	"github.com/blinklabs-io/gokobold/objectproperty"
	"github.com/blinklabs-io/gokobold/typelist"
	"github.com/blinklabs-io/gokobold/utils"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	f := newCmdFlags("kobold-decode")
	f.flagSet.SetOutput(stderr)
	f.flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: kobold-decode --types <file> [flags] [input ...]\n\n")
		fmt.Fprintf(stderr, "Reads standard input when no input file or \"-\" is given.\n\nFlags:\n")
		f.flagSet.PrintDefaults()
	}
	if err := f.parse(args); err != nil {
		return err
	}
	cfg := f.cfg
	level, err := cfg.logLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cfg.Types == "" {
		return errors.New("no type list specified, use --types")
	}
	types, err := loadTypeList(cfg.Types)
	if err != nil {
		return fmt.Errorf("loading type list %s: %w", cfg.Types, err)
	}
	fingerprint, err := types.Fingerprint()
	if err != nil {
		return err
	}
	logger.Info(
		"loaded type list",
		"path",
		cfg.Types,
		"classes",
		types.Len(),
		"fingerprint",
		fingerprint,
	)
	if f.compileOut != "" {
		data, err := types.Compile()
		if err != nil {
			return err
		}
		// #nosec G306 -- compiled type lists are not sensitive
		return os.WriteFile(f.compileOut, data, 0o644)
	}

	identity, err := cfg.identity()
	if err != nil {
		return err
	}
	opts, err := cfg.deserializerOptions()
	if err != nil {
		return err
	}
	logger.Debug(
		"decoder options",
		"identity",
		identity.String(),
		"flags",
		opts.Flags.String(),
		"mask",
		opts.PropertyMask.String(),
		"shallow",
		opts.Shallow,
	)
	d := objectproperty.NewDeserializer(
		identity,
		opts,
		types,
		objectproperty.WithLogger(logger),
	)

	inputs := f.flagSet.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, input := range inputs {
		data, err := readInput(input, stdin, cfg.Hex)
		if err != nil {
			return err
		}
		value, err := d.Deserialize(data)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", input, err)
		}
		if err := writeValue(stdout, value, cfg.Format); err != nil {
			return err
		}
	}
	return nil
}

// loadTypeList picks the parser from the file extension
func loadTypeList(path string) (*typelist.TypeList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return typelist.FromYAML(data)
	case ".bin", ".cbor":
		return typelist.Load(data)
	default:
		return typelist.FromString(string(data))
	}
}

func readInput(name string, stdin io.Reader, isHex bool) ([]byte, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	if !isHex {
		return data, nil
	}
	ret, err := hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, fmt.Errorf("decoding hex input %s: %w", name, err)
	}
	return ret, nil
}

func writeValue(w io.Writer, value objectproperty.Value, format string) error {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", "  "); err != nil {
			return err
		}
		out.WriteByte('\n')
		_, err = w.Write(out.Bytes())
		return err
	case "cbor":
		data, err := cbor.Encode(value)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "dump":
		_, err := io.WriteString(w, utils.DumpValue(value, ""))
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
