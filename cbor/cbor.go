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

package cbor

import (
	"encoding/binary"
)

const (
	CBOR_TYPE_BYTE_STRING uint8 = 0x40
	CBOR_TYPE_TEXT_STRING uint8 = 0x60
	CBOR_TYPE_ARRAY       uint8 = 0x80
	CBOR_TYPE_MAP         uint8 = 0xa0

	// Max value able to be stored in a single byte without type prefix
	CBOR_MAX_UINT_SIMPLE uint8 = 0x17
)

// Useful for embedding and easier to remember
type StructAsArray struct {
	// Tells the CBOR decoder to convert to/from a struct and a CBOR array
	_ struct{} `cbor:",toarray"`
}

// AppendHeader appends a definite-length item header for the given major type
// and argument
func AppendHeader(dst []byte, majorType uint8, arg uint64) []byte {
	switch {
	case arg <= uint64(CBOR_MAX_UINT_SIMPLE):
		return append(dst, majorType|uint8(arg))
	case arg <= 0xff:
		return append(dst, majorType|0x18, uint8(arg))
	case arg <= 0xffff:
		return binary.BigEndian.AppendUint16(append(dst, majorType|0x19), uint16(arg))
	case arg <= 0xffffffff:
		return binary.BigEndian.AppendUint32(append(dst, majorType|0x1a), uint32(arg))
	default:
		return binary.BigEndian.AppendUint64(append(dst, majorType|0x1b), arg)
	}
}
