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

package bitreader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	ErrTruncated       = errors.New("bitreader: truncated data")
	ErrInvalidBitCount = errors.New("bitreader: invalid bit count")
)

// Fixed is the set of fixed-width integer types that can be loaded from
// byte-aligned positions
type Fixed interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

type Reader struct {
	data []byte
	// index of the byte holding the next unread bit
	pos int
	// 0-7: index of the next unread bit within data[pos]
	bit uint
}

// New returns a Reader positioned at the first bit of data
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the number of bits consumed so far
func (r *Reader) Position() int {
	return r.pos*8 + int(r.bit)
}

// Remaining returns the number of unread bits
func (r *Reader) Remaining() int {
	return (len(r.data)-r.pos)*8 - int(r.bit)
}

// Aligned reports whether the next read starts on a byte boundary
func (r *Reader) Aligned() bool {
	return r.bit == 0
}

func (r *Reader) advance(bits int) {
	total := int(r.bit) + bits
	r.pos += total / 8
	r.bit = uint(total % 8)
}

// ReadBit consumes a single bit
func (r *Reader) ReadBit() (bool, error) {
	if r.Remaining() < 1 {
		return false, ErrTruncated
	}
	v := (r.data[r.pos] >> r.bit) & 1
	r.advance(1)
	return v == 1, nil
}

// ReadValueBits consumes n bits (1 <= n <= 64) and assembles them into an
// unsigned integer, with the first bit read as the least significant bit of
// the result. Nothing is consumed when there is not enough input.
func (r *Reader) ReadValueBits(n int) (uint64, error) {
	if n < 1 || n > 64 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBitCount, n)
	}
	if r.Remaining() < n {
		return 0, ErrTruncated
	}
	var ret uint64
	for shift := 0; shift < n; {
		take := min(8-int(r.bit), n-shift)
		chunk := uint64(r.data[r.pos]>>r.bit) & (1<<take - 1)
		ret |= chunk << shift
		shift += take
		r.advance(take)
	}
	return ret, nil
}

// SkipBits discards the next n bits
func (r *Reader) SkipBits(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBitCount, n)
	}
	if r.Remaining() < n {
		return ErrTruncated
	}
	r.advance(n)
	return nil
}

// RealignToByte discards the unread bits of a partially consumed byte. It is
// a no-op when the cursor is already byte-aligned.
func (r *Reader) RealignToByte() {
	if r.bit != 0 {
		r.bit = 0
		r.pos++
	}
}

// ReadBytes returns a copy of the next n bytes after realigning
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("bitreader: invalid byte count: %d", n)
	}
	r.RealignToByte()
	if len(r.data)-r.pos < n {
		return nil, ErrTruncated
	}
	ret := make([]byte, n)
	copy(ret, r.data[r.pos:r.pos+n])
	r.pos += n
	return ret, nil
}

// Load reads a little-endian fixed-width integer of type T after realigning
// the cursor to a byte boundary
func Load[T Fixed](r *Reader) (T, error) {
	var zero T
	size := binary.Size(zero)
	r.RealignToByte()
	if len(r.data)-r.pos < size {
		return zero, ErrTruncated
	}
	b := r.data[r.pos : r.pos+size]
	var raw uint64
	switch size {
	case 1:
		raw = uint64(b[0])
	case 2:
		raw = uint64(binary.LittleEndian.Uint16(b))
	case 4:
		raw = uint64(binary.LittleEndian.Uint32(b))
	case 8:
		raw = binary.LittleEndian.Uint64(b)
	}
	r.pos += size
	return T(raw), nil
}

func (r *Reader) U8() (uint8, error)   { return Load[uint8](r) }
func (r *Reader) U16() (uint16, error) { return Load[uint16](r) }
func (r *Reader) U32() (uint32, error) { return Load[uint32](r) }
func (r *Reader) U64() (uint64, error) { return Load[uint64](r) }
func (r *Reader) I8() (int8, error)    { return Load[int8](r) }
func (r *Reader) I16() (int16, error)  { return Load[int16](r) }
func (r *Reader) I32() (int32, error)  { return Load[int32](r) }
func (r *Reader) I64() (int64, error)  { return Load[int64](r) }

func (r *Reader) F32() (float32, error) {
	v, err := Load[uint32](r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *Reader) F64() (float64, error) {
	v, err := Load[uint64](r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
