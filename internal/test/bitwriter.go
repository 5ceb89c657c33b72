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

package test

import (
	"bytes"
	"encoding/binary"

	"github.com/klauspost/compress/zlib"
)

// BitWriter builds ObjectProperty fixtures for tests. Bits are packed least
// significant first, matching the decoder.
type BitWriter struct {
	buf []byte
	// 0-7: index of the next free bit in the last byte of buf
	bit uint
}

func NewBitWriter() *BitWriter {
	return &BitWriter{}
}

func (w *BitWriter) WriteBit(v bool) *BitWriter {
	if w.bit == 0 {
		w.buf = append(w.buf, 0)
	}
	if v {
		w.buf[len(w.buf)-1] |= 1 << w.bit
	}
	w.bit = (w.bit + 1) % 8
	return w
}

// WriteBits writes the low n bits of v
func (w *BitWriter) WriteBits(v uint64, n int) *BitWriter {
	for i := range n {
		w.WriteBit((v>>i)&1 == 1)
	}
	return w
}

// Align pads the current byte with zero bits
func (w *BitWriter) Align() *BitWriter {
	w.bit = 0
	return w
}

func (w *BitWriter) Raw(data []byte) *BitWriter {
	w.Align()
	w.buf = append(w.buf, data...)
	return w
}

func (w *BitWriter) U8(v uint8) *BitWriter {
	return w.Raw([]byte{v})
}

func (w *BitWriter) U16(v uint16) *BitWriter {
	return w.Raw(binary.LittleEndian.AppendUint16(nil, v))
}

func (w *BitWriter) U32(v uint32) *BitWriter {
	return w.Raw(binary.LittleEndian.AppendUint32(nil, v))
}

func (w *BitWriter) U64(v uint64) *BitWriter {
	return w.Raw(binary.LittleEndian.AppendUint64(nil, v))
}

// SetBits overwrites n bits starting at bit position pos with the low n
// bits of v. It is used to patch size fields once their content is known.
func (w *BitWriter) SetBits(pos int, v uint64, n int) *BitWriter {
	for i := range n {
		idx := pos + i
		mask := byte(1) << (idx % 8)
		if (v>>i)&1 == 1 {
			w.buf[idx/8] |= mask
		} else {
			w.buf[idx/8] &^= mask
		}
	}
	return w
}

// Len returns the number of bits written so far
func (w *BitWriter) Len() int {
	if w.bit == 0 {
		return len(w.buf) * 8
	}
	return (len(w.buf)-1)*8 + int(w.bit)
}

func (w *BitWriter) Bytes() []byte {
	return w.buf
}

// ZlibFrame returns payload compressed with zlib and prefixed with the given
// little-endian decompressed size
func ZlibFrame(payload []byte, size uint32) []byte {
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(payload); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	ret := binary.LittleEndian.AppendUint32(nil, size)
	return append(ret, compressed.Bytes()...)
}
