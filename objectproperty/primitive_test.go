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
	"testing"

	"github.com/blinklabs-io/gokobold/bitreader"
	"github.com/blinklabs-io/gokobold/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeserializer(flags SerializerFlags, data []byte) *Deserializer {
	opts := DefaultDeserializerOptions()
	opts.Flags = flags
	d := NewBinaryDeserializer(opts, nil)
	d.reader = bitreader.New(data)
	return d
}

func TestSignExtend(t *testing.T) {
	testDefs := []struct {
		raw      uint64
		bits     int
		expected int64
	}{
		{0xff, 8, -1},
		{0x8, 4, -8},
		{0x7, 4, 7},
		{0x0, 1, 0},
		{0x1, 1, -1},
		{0x800000, 24, -8388608},
		{0x7fffff, 24, 8388607},
		{0xffffffffffffffff, 64, -1},
	}
	for _, testDef := range testDefs {
		assert.Equal(
			t,
			testDef.expected,
			signExtend(testDef.raw, testDef.bits),
			"raw 0x%x, %d bits",
			testDef.raw,
			testDef.bits,
		)
	}
}

func TestDeserializeSignedBits(t *testing.T) {
	data := test.NewBitWriter().WriteBits(0x8, 4).WriteBits(0x7, 4).WriteBits(0xff, 8).Bytes()
	d := newTestDeserializer(0, data)
	for _, testDef := range []struct {
		bits     int
		expected int64
	}{{4, -8}, {4, 7}, {8, -1}} {
		v, err := d.deserializeSignedBits(testDef.bits)
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, v)
	}
	_, err := d.deserializeSignedBits(1)
	require.ErrorIs(t, err, bitreader.ErrTruncated)
}

func TestCompactLengthPrefix(t *testing.T) {
	for _, length := range []uint64{0, 1, 127, 128, 300, 1<<31 - 1} {
		w := test.NewBitWriter()
		// Leave the cursor unaligned so the prefix has to realign first
		w.WriteBit(true).Align()
		if length < 128 {
			w.WriteBit(false).WriteBits(length, 7)
		} else {
			w.WriteBit(true).WriteBits(length, 31)
		}
		d := newTestDeserializer(FlagCompactLengthPrefixes, w.Bytes())
		_, err := d.reader.ReadBit()
		require.NoError(t, err)
		got, err := d.readSeqLen()
		require.NoError(t, err)
		assert.Equal(t, int(length), got)
		expectedBits := 8
		if length >= 128 {
			expectedBits = 32
		}
		assert.Equal(t, 8+expectedBits, d.reader.Position(), "length %d", length)
	}
}

func TestFixedLengthPrefixes(t *testing.T) {
	data := test.NewBitWriter().
		WriteBit(true).
		U16(0x1234).
		U32(0x89abcdef).
		Bytes()
	d := newTestDeserializer(0, data)
	_, err := d.reader.ReadBit()
	require.NoError(t, err)
	strLen, err := d.readStrLen()
	require.NoError(t, err)
	assert.Equal(t, 0x1234, strLen)
	assert.Equal(t, 24, d.reader.Position())
	seqLen, err := d.readSeqLen()
	require.NoError(t, err)
	assert.Equal(t, 0x89abcdef, seqLen)
	assert.Equal(t, 56, d.reader.Position())
}

func TestReadStrings(t *testing.T) {
	data := test.NewBitWriter().
		WriteBit(false).WriteBits(5, 7).Raw([]byte("hello")).
		WriteBit(false).WriteBits(2, 7).U16(0x48).U16(0x4e2d).
		Bytes()
	d := newTestDeserializer(FlagCompactLengthPrefixes, data)
	s, err := d.readStr()
	require.NoError(t, err)
	assert.Equal(t, "hello", s.String())
	w, err := d.readWStr()
	require.NoError(t, err)
	assert.Equal(t, WString{0x48, 0x4e2d}, w)
	assert.Equal(t, "H中", w.String())
	_, err = d.readStr()
	require.ErrorIs(t, err, bitreader.ErrTruncated)
}

func TestReadWStrTruncated(t *testing.T) {
	// Declares far more code units than present
	data := test.NewBitWriter().U16(0xffff).U16(0x41).Bytes()
	d := newTestDeserializer(0, data)
	_, err := d.readWStr()
	require.ErrorIs(t, err, bitreader.ErrTruncated)
}
