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
	"bytes"
	"encoding/json"
	"math"

	"github.com/blinklabs-io/gokobold/cbor"
)

// TypeKey is the key holding the class name when objects are exported as
// JSON, CBOR or native maps. A field with the same name is left out of those
// exports; it is still available through Object.Get.
const TypeKey = "__type"

// cborNull is the CBOR encoding of null
var cborNull = []byte{0xf6}

func (Empty) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (Empty) MarshalCBOR() ([]byte, error) {
	return cborNull, nil
}

// JSON has no representation for NaN and infinities, so they are encoded as
// the strings "NaN", "Infinity" and "-Infinity"
func marshalJSONFloat(v float64, bitSize int) ([]byte, error) {
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	if bitSize == 32 {
		return json.Marshal(float32(v))
	}
	return json.Marshal(v)
}

func (f Float32) MarshalJSON() ([]byte, error) {
	return marshalJSONFloat(float64(f), 32)
}

func (f Float64) MarshalJSON() ([]byte, error) {
	return marshalJSONFloat(float64(f), 64)
}

func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (w WString) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w WString) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(w.String())
}

// MarshalJSON encodes the object as a JSON object with keys in wire order
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeJSONMember(&buf, TypeKey, o.Name); err != nil {
		return nil, err
	}
	for _, field := range o.Fields {
		if field.Name == TypeKey {
			continue
		}
		buf.WriteByte(',')
		if err := writeJSONMember(&buf, field.Name, field.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONMember(buf *bytes.Buffer, key string, value any) error {
	keyData, err := json.Marshal(key)
	if err != nil {
		return err
	}
	valueData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(keyData)
	buf.WriteByte(':')
	buf.Write(valueData)
	return nil
}

// MarshalCBOR encodes the object as a definite-length CBOR map with keys in
// wire order
func (o *Object) MarshalCBOR() ([]byte, error) {
	count := 1
	for _, field := range o.Fields {
		if field.Name != TypeKey {
			count++
		}
	}
	ret := cbor.AppendHeader(
		nil,
		cbor.CBOR_TYPE_MAP,
		uint64(count),
	)
	ret, err := appendCBORMember(ret, TypeKey, o.Name)
	if err != nil {
		return nil, err
	}
	for _, field := range o.Fields {
		if field.Name == TypeKey {
			continue
		}
		ret, err = appendCBORMember(ret, field.Name, field.Value)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func appendCBORMember(dst []byte, key string, value any) ([]byte, error) {
	keyData, err := cbor.Encode(key)
	if err != nil {
		return nil, err
	}
	valueData, err := cbor.Encode(value)
	if err != nil {
		return nil, err
	}
	dst = append(dst, keyData...)
	return append(dst, valueData...), nil
}
