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

package objectproperty_test

import (
	"testing"

	"github.com/blinklabs-io/gokobold/objectproperty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializerFlagsFromBits(t *testing.T) {
	assert.Equal(
		t,
		objectproperty.FlagStatefulFlags|objectproperty.FlagForbidDeltaEncode,
		objectproperty.SerializerFlagsFromBits(0xffff0011),
	)
	assert.Equal(t, objectproperty.SerializerFlags(0x1f), objectproperty.SerializerFlagsFromBits(0xffffffff))
}

func TestSerializerFlagsString(t *testing.T) {
	testDefs := []struct {
		flags    objectproperty.SerializerFlags
		expected string
	}{
		{0, "0"},
		{objectproperty.FlagWithCompression, "WITH_COMPRESSION"},
		{
			objectproperty.FlagStatefulFlags | objectproperty.FlagCompactLengthPrefixes,
			"STATEFUL_FLAGS|COMPACT_LENGTH_PREFIXES",
		},
		{objectproperty.FlagHumanReadableEnums | 0x100, "HUMAN_READABLE_ENUMS|0x100"},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, testDef.flags.String())
	}
}

func TestParseSerializerFlags(t *testing.T) {
	testDefs := []struct {
		input    string
		expected objectproperty.SerializerFlags
	}{
		{"", 0},
		{"0", 0},
		{"stateful", objectproperty.FlagStatefulFlags},
		{"COMPACT | human_readable_enums", objectproperty.FlagCompactLengthPrefixes | objectproperty.FlagHumanReadableEnums},
		{"compression,FORBID_DELTA_ENCODE", objectproperty.FlagWithCompression | objectproperty.FlagForbidDeltaEncode},
		{"STATEFUL_FLAGS|COMPACT_LENGTHS", objectproperty.FlagStatefulFlags | objectproperty.FlagCompactLengthPrefixes},
	}
	for _, testDef := range testDefs {
		flags, err := objectproperty.ParseSerializerFlags(testDef.input)
		require.NoError(t, err, testDef.input)
		assert.Equal(t, testDef.expected, flags, testDef.input)
		// String output parses back to the same flags
		if flags != 0 {
			reparsed, err := objectproperty.ParseSerializerFlags(flags.String())
			require.NoError(t, err)
			assert.Equal(t, flags, reparsed)
		}
	}
	_, err := objectproperty.ParseSerializerFlags("STATEFUL|BOGUS")
	require.ErrorContains(t, err, "BOGUS")
}

func TestSerializerFlagsContains(t *testing.T) {
	flags := objectproperty.FlagStatefulFlags | objectproperty.FlagWithCompression
	assert.True(t, flags.Contains(objectproperty.FlagWithCompression))
	assert.True(t, flags.Contains(flags))
	assert.False(t, flags.Contains(objectproperty.FlagWithCompression|objectproperty.FlagForbidDeltaEncode))
}
