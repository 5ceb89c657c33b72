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
	"encoding/hex"
	"encoding/json"
	"math"
	"testing"

	"github.com/blinklabs-io/gokobold/cbor"
	"github.com/blinklabs-io/gokobold/objectproperty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testObject() *objectproperty.Object {
	return &objectproperty.Object{
		Name: "class A",
		Hash: 0x1234,
		Fields: []objectproperty.Field{
			{Name: "m_z", Value: objectproperty.Empty{}},
			{Name: "m_a", Value: objectproperty.Uint8(1)},
		},
	}
}

func TestObjectMarshalJSON(t *testing.T) {
	obj := &objectproperty.Object{
		Name: "class Player",
		Fields: []objectproperty.Field{
			{Name: "m_name", Value: objectproperty.Bytes("Hero")},
			{Name: "m_title", Value: objectproperty.WString{'h', 'i'}},
			{Name: "m_list", Value: objectproperty.List{objectproperty.Int16(-1), objectproperty.Float32(0.5)}},
			{Name: "m_child", Value: testObject()},
		},
	}
	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(
		t,
		`{"__type":"class Player","m_name":"Hero","m_title":"hi","m_list":[-1,0.5],"m_child":{"__type":"class A","m_z":null,"m_a":1}}`,
		string(data),
	)
}

func TestObjectMarshalCBOR(t *testing.T) {
	data, err := cbor.Encode(testObject())
	require.NoError(t, err)
	// Keys stay in wire order rather than the sorted order of the encoder
	assert.Equal(
		t,
		"a3665f5f7479706567636c6173732041636d5f7af6636d5f6101",
		hex.EncodeToString(data),
	)
	var decoded map[string]any
	_, err = cbor.Decode(data, &decoded)
	require.NoError(t, err)
	assert.Equal(
		t,
		map[string]any{
			objectproperty.TypeKey: "class A",
			"m_z":                  nil,
			"m_a":                  uint64(1),
		},
		decoded,
	)
}

func TestWStringMarshalCBOR(t *testing.T) {
	data, err := cbor.Encode(objectproperty.List{objectproperty.WString{'o', 'k'}, objectproperty.Bytes("ok")})
	require.NoError(t, err)
	// Wide strings become text, narrow strings stay byte strings
	assert.Equal(t, "82626f6b426f6b", hex.EncodeToString(data))
}

func TestWStringSurrogates(t *testing.T) {
	assert.Equal(t, "\U0001F600", objectproperty.WString{0xd83d, 0xde00}.String())
}

func TestToNative(t *testing.T) {
	obj := &objectproperty.Object{
		Name: "class Player",
		Fields: []objectproperty.Field{
			{Name: "m_name", Value: objectproperty.Bytes("Hero")},
			{Name: "m_scores", Value: objectproperty.List{objectproperty.Uint16(1), objectproperty.Empty{}}},
			{Name: "m_child", Value: testObject()},
			{Name: "m_gold", Value: objectproperty.Int64(-7)},
		},
	}
	assert.Equal(
		t,
		map[string]any{
			"__type":   "class Player",
			"m_name":   "Hero",
			"m_scores": []any{uint16(1), nil},
			"m_child": map[string]any{
				"__type": "class A",
				"m_z":    nil,
				"m_a":    uint8(1),
			},
			"m_gold": int64(-7),
		},
		objectproperty.ToNative(obj),
	)
	assert.Nil(t, objectproperty.ToNative(objectproperty.Empty{}))
	assert.Nil(t, objectproperty.ToNative(nil))
}

func TestObjectGet(t *testing.T) {
	obj := testObject()
	v, ok := obj.Get("m_a")
	assert.True(t, ok)
	assert.Equal(t, objectproperty.Uint8(1), v)
	assert.True(t, obj.Has("m_z"))
	assert.False(t, obj.Has("m_missing"))
	_, ok = obj.Get("m_missing")
	assert.False(t, ok)
}

func TestFloatMarshalJSON(t *testing.T) {
	obj := &objectproperty.Object{
		Name: "class Motion",
		Fields: []objectproperty.Field{
			{Name: "m_nan", Value: objectproperty.Float32(float32(math.NaN()))},
			{Name: "m_inf", Value: objectproperty.Float64(math.Inf(1))},
			{Name: "m_neg", Value: objectproperty.Float32(float32(math.Inf(-1)))},
			{Name: "m_small", Value: objectproperty.Float32(0.1)},
			{Name: "m_big", Value: objectproperty.Float64(1e21)},
		},
	}
	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(
		t,
		`{"__type":"class Motion","m_nan":"NaN","m_inf":"Infinity","m_neg":"-Infinity","m_small":0.1,"m_big":1e+21}`,
		string(data),
	)
}

func TestTypeKeyFieldCollision(t *testing.T) {
	obj := &objectproperty.Object{
		Name: "class A",
		Fields: []objectproperty.Field{
			{Name: objectproperty.TypeKey, Value: objectproperty.Uint8(9)},
			{Name: "m_a", Value: objectproperty.Uint8(1)},
		},
	}
	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"__type":"class A","m_a":1}`, string(data))

	data, err = cbor.Encode(obj)
	require.NoError(t, err)
	var decoded map[string]any
	_, err = cbor.Decode(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{objectproperty.TypeKey: "class A", "m_a": uint64(1)}, decoded)
	// Exactly two map entries
	assert.Equal(t, byte(0xa2), data[0])

	native := objectproperty.ToNative(obj).(map[string]any)
	assert.Equal(t, "class A", native[objectproperty.TypeKey])
	v, ok := obj.Get(objectproperty.TypeKey)
	assert.True(t, ok)
	assert.Equal(t, objectproperty.Uint8(9), v)
}
