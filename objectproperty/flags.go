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

package objectproperty

import (
	"fmt"
	"strconv"
	"strings"
)

// SerializerFlags are stream-level encoding switches
type SerializerFlags uint32

const (
	// The flags are part of the stream and override the configured ones
	FlagStatefulFlags SerializerFlags = 1 << 0
	// Length prefixes use the compact 7/31 bit encoding
	FlagCompactLengthPrefixes SerializerFlags = 1 << 1
	// Enums are encoded as strings instead of integers
	FlagHumanReadableEnums SerializerFlags = 1 << 2
	// The payload may be zlib-compressed, see FeedData
	FlagWithCompression SerializerFlags = 1 << 3
	// Properties with DELTA_ENCODE always carry their value
	FlagForbidDeltaEncode SerializerFlags = 1 << 4

	allSerializerFlags = FlagStatefulFlags |
		FlagCompactLengthPrefixes |
		FlagHumanReadableEnums |
		FlagWithCompression |
		FlagForbidDeltaEncode
)

var serializerFlagNames = []struct {
	flag SerializerFlags
	name string
}{
	{FlagStatefulFlags, "STATEFUL_FLAGS"},
	{FlagCompactLengthPrefixes, "COMPACT_LENGTH_PREFIXES"},
	{FlagHumanReadableEnums, "HUMAN_READABLE_ENUMS"},
	{FlagWithCompression, "WITH_COMPRESSION"},
	{FlagForbidDeltaEncode, "FORBID_DELTA_ENCODE"},
}

// SerializerFlagsFromBits converts a raw flags word, dropping unknown bits
func SerializerFlagsFromBits(bits uint32) SerializerFlags {
	return SerializerFlags(bits) & allSerializerFlags
}

// Contains reports whether all bits of other are set
func (f SerializerFlags) Contains(other SerializerFlags) bool {
	return f&other == other
}

func (f SerializerFlags) String() string {
	if f == 0 {
		return "0"
	}
	var names []string
	for _, tmp := range serializerFlagNames {
		if f&tmp.flag != 0 {
			names = append(names, tmp.name)
		}
	}
	if rest := f &^ allSerializerFlags; rest != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(names, "|")
}

// ParseSerializerFlags parses a "|" or "," separated list of flag names.
// Short names without the _FLAGS/_PREFIXES suffix are accepted as well.
func ParseSerializerFlags(s string) (SerializerFlags, error) {
	var ret SerializerFlags
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ','
	})
	for _, field := range fields {
		field = strings.ToUpper(strings.TrimSpace(field))
		switch field {
		case "", "0":
			continue
		case "STATEFUL":
			field = "STATEFUL_FLAGS"
		case "COMPACT", "COMPACT_LENGTHS":
			field = "COMPACT_LENGTH_PREFIXES"
		case "COMPRESSION":
			field = "WITH_COMPRESSION"
		}
		found := false
		for _, tmp := range serializerFlagNames {
			if field == tmp.name {
				ret |= tmp.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown serializer flag: %q", field)
		}
	}
	return ret, nil
}
