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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTypeList = `{
	// comments are allowed
	"version": 2,
	"classes": {
		"4096": {
			"name": "class Node",
			"properties": {
				"m_child": {"type": "class Node*", "id": 0, "flags": 8, "hash": 1},
				"m_value": {"type": "unsigned char", "id": 1, "flags": 8, "hash": 2},
			},
		},
	},
}`

func writeTemp(t *testing.T, name string, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestRunJSON(t *testing.T) {
	types := writeTemp(t, "types.jsonc", testTypeList)
	var stdout, stderr bytes.Buffer
	err := run(
		[]string{"--types", types, "--hex", "--shallow"},
		bytes.NewBufferString("00100000 00000000 07\n"),
		&stdout,
		&stderr,
	)
	require.NoError(t, err, stderr.String())
	assert.JSONEq(
		t,
		`{"__type":"class Node","m_child":null,"m_value":7}`,
		stdout.String(),
	)
	assert.Contains(t, stderr.String(), "fingerprint=")
}

func TestRunConfigFile(t *testing.T) {
	types := writeTemp(t, "types.jsonc", testTypeList)
	cfg := writeTemp(t, "config.yaml", "types: "+types+"\nformat: dump\nhex: true\nshallow: true\nlogLevel: warn\n")
	input := writeTemp(t, "input.hex", "0010000000000000ff")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-c", cfg, input}, nil, &stdout, &stderr))
	assert.Equal(t, "class Node (0x00001000) {\n  m_child: null,\n  m_value: 0xff (255),\n},\n", stdout.String())
	assert.Empty(t, stderr.String())

	// Flags take precedence over the config file
	stdout.Reset()
	require.NoError(t, run([]string{"-c", cfg, "--format", "json", input}, nil, &stdout, &stderr))
	assert.JSONEq(t, `{"__type":"class Node","m_child":null,"m_value":255}`, stdout.String())
}

func TestRunCompile(t *testing.T) {
	types := writeTemp(t, "types.jsonc", testTypeList)
	compiled := filepath.Join(t.TempDir(), "types.bin")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-t", types, "--compile", compiled}, nil, &stdout, &stderr))

	// The snapshot decodes the same data
	stdout.Reset()
	err := run(
		[]string{"-t", compiled, "--hex", "--shallow", "--format", "dump"},
		bytes.NewBufferString("0010000000000000 01"),
		&stdout,
		&stderr,
	)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "m_value: 0x1 (1)")
}

func TestRunDefaultsToSizeFramedObjects(t *testing.T) {
	types := writeTemp(t, "types.jsonc", testTypeList)
	var stdout, stderr bytes.Buffer
	// Node object of 104 bits holding m_value as [size 72][hash 2][u8]
	err := run(
		[]string{"-t", types, "--hex"},
		bytes.NewBufferString("00100000 68000000 48000000 02000000 2a"),
		&stdout,
		&stderr,
	)
	require.NoError(t, err, stderr.String())
	assert.JSONEq(t, `{"__type":"class Node","m_value":42}`, stdout.String())
}

func TestRunErrors(t *testing.T) {
	types := writeTemp(t, "types.jsonc", testTypeList)
	var stdout, stderr bytes.Buffer
	err := run([]string{"--hex"}, bytes.NewBufferString("00"), &stdout, &stderr)
	require.ErrorContains(t, err, "no type list")

	err = run([]string{"-t", types, "--identity", "bogus"}, bytes.NewBufferString(""), &stdout, &stderr)
	require.ErrorContains(t, err, "unknown identity")

	err = run([]string{"-t", types, "--flags", "BOGUS"}, bytes.NewBufferString(""), &stdout, &stderr)
	require.ErrorContains(t, err, "BOGUS")

	err = run([]string{"-t", types, "--hex"}, bytes.NewBufferString("0010"), &stdout, &stderr)
	require.ErrorContains(t, err, "decoding -")

	err = run([]string{"-t", types, "--hex", "--format", "xml"}, bytes.NewBufferString("00000000"), &stdout, &stderr)
	require.ErrorContains(t, err, "unknown output format")
}
