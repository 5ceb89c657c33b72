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

	"github.com/blinklabs-io/gokobold/bitreader"
)

// readCompactLengthPrefix reads a length stored as a flag bit followed by
// either 7 or 31 value bits
func (d *Deserializer) readCompactLengthPrefix() (int, error) {
	isLarge, err := d.reader.ReadBit()
	if err != nil {
		return 0, err
	}
	bits := 7
	if isLarge {
		bits = 31
	}
	v, err := d.reader.ReadValueBits(bits)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// readLength reads a byte-aligned length prefix, which is compact when
// enabled in the stream flags and fixedBits wide otherwise
func (d *Deserializer) readLength(fixedBits int) (int, error) {
	d.reader.RealignToByte()
	if d.options.Flags.Contains(FlagCompactLengthPrefixes) {
		return d.readCompactLengthPrefix()
	}
	v, err := d.reader.ReadValueBits(fixedBits)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// Strings carry a 16-bit length
func (d *Deserializer) readStrLen() (int, error) {
	return d.readLength(16)
}

// Sequences carry a 32-bit length
func (d *Deserializer) readSeqLen() (int, error) {
	return d.readLength(32)
}

func (d *Deserializer) readStr() (Bytes, error) {
	length, err := d.readStrLen()
	if err != nil {
		return nil, err
	}
	data, err := d.reader.ReadBytes(length)
	if err != nil {
		return nil, err
	}
	return Bytes(data), nil
}

// readWStr reads a length-prefixed string of UTF-16 code units, loading each
// unit individually
func (d *Deserializer) readWStr() (WString, error) {
	length, err := d.readStrLen()
	if err != nil {
		return nil, err
	}
	ret := make(WString, 0, min(length, d.reader.Remaining()/16))
	for range length {
		unit, err := d.reader.U16()
		if err != nil {
			return nil, err
		}
		ret = append(ret, unit)
	}
	return ret, nil
}

func (d *Deserializer) deserializeUnsignedBits(n int) (uint64, error) {
	return d.reader.ReadValueBits(n)
}

func (d *Deserializer) deserializeSignedBits(n int) (int64, error) {
	v, err := d.deserializeUnsignedBits(n)
	if err != nil {
		return 0, err
	}
	return signExtend(v, n), nil
}

// signExtend interprets the low n bits of v as a two's complement number
func signExtend(v uint64, n int) int64 {
	if n < 64 && v&(1<<(n-1)) != 0 {
		return int64(v) | (-1 << n)
	}
	return int64(v)
}

// elementDecoder decodes a single element of a property
type elementDecoder func(d *Deserializer) (Value, error)

func fixed[T bitreader.Fixed](wrap func(T) Value) elementDecoder {
	return func(d *Deserializer) (Value, error) {
		v, err := bitreader.Load[T](d.reader)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	}
}

func float32Decoder(d *Deserializer) (Value, error) {
	v, err := d.reader.F32()
	if err != nil {
		return nil, err
	}
	return Float32(v), nil
}

func float64Decoder(d *Deserializer) (Value, error) {
	v, err := d.reader.F64()
	if err != nil {
		return nil, err
	}
	return Float64(v), nil
}

func boolDecoder(d *Deserializer) (Value, error) {
	v, err := d.reader.ReadBit()
	if err != nil {
		return nil, err
	}
	return Bool(v), nil
}

func strDecoder(d *Deserializer) (Value, error) {
	return d.readStr()
}

func wstrDecoder(d *Deserializer) (Value, error) {
	return d.readWStr()
}

func unsignedBitsDecoder(n int) elementDecoder {
	return func(d *Deserializer) (Value, error) {
		v, err := d.deserializeUnsignedBits(n)
		if err != nil {
			return nil, err
		}
		switch {
		case n <= 8:
			return Uint8(v), nil
		case n <= 16:
			return Uint16(v), nil
		case n <= 32:
			return Uint32(v), nil
		default:
			return Uint64(v), nil
		}
	}
}

func signedBitsDecoder(n int) elementDecoder {
	return func(d *Deserializer) (Value, error) {
		v, err := d.deserializeSignedBits(n)
		if err != nil {
			return nil, err
		}
		switch {
		case n <= 8:
			return Int8(v), nil
		case n <= 16:
			return Int16(v), nil
		case n <= 32:
			return Int32(v), nil
		default:
			return Int64(v), nil
		}
	}
}

// primitiveDecoders maps type names from the type dump to their decoders
var primitiveDecoders = map[string]elementDecoder{
	"bool":               boolDecoder,
	"char":               fixed(func(v int8) Value { return Int8(v) }),
	"signed char":        fixed(func(v int8) Value { return Int8(v) }),
	"unsigned char":      fixed(func(v uint8) Value { return Uint8(v) }),
	"short":              fixed(func(v int16) Value { return Int16(v) }),
	"unsigned short":     fixed(func(v uint16) Value { return Uint16(v) }),
	"wchar_t":            fixed(func(v uint16) Value { return Uint16(v) }),
	"int":                fixed(func(v int32) Value { return Int32(v) }),
	"long":               fixed(func(v int32) Value { return Int32(v) }),
	"unsigned int":       fixed(func(v uint32) Value { return Uint32(v) }),
	"unsigned long":      fixed(func(v uint32) Value { return Uint32(v) }),
	"__int64":            fixed(func(v int64) Value { return Int64(v) }),
	"unsigned __int64":   fixed(func(v uint64) Value { return Uint64(v) }),
	"gid":                fixed(func(v uint64) Value { return Uint64(v) }),
	"float":              float32Decoder,
	"double":             float64Decoder,
	"std::string":        strDecoder,
	"char*":              strDecoder,
	"std::wstring":       wstrDecoder,
	"wchar_t*":           wstrDecoder,
	"s24":                signedBitsDecoder(24),
	"u24":                unsignedBitsDecoder(24),
	"class std::string":  strDecoder,
	"class std::wstring": wstrDecoder,
}

func init() {
	for n := 1; n <= 7; n++ {
		primitiveDecoders[fmt.Sprintf("bi%d", n)] = signedBitsDecoder(n)
		primitiveDecoders[fmt.Sprintf("bui%d", n)] = unsignedBitsDecoder(n)
	}
}
