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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/blinklabs-io/gokobold/bitreader"
	"github.com/klauspost/compress/zlib"
)

// maxPreallocSize caps how much of a declared decompressed size is reserved
// up front, so a forged size cannot force a huge allocation
const maxPreallocSize = 16 * 1024 * 1024

// decompress inflates a [u32 size][zlib payload] frame into scratch, which is
// overwritten, and returns the decompressed bytes. A nil scratch gets a fresh
// buffer.
func decompress(data []byte, scratch *[]byte) ([]byte, error) {
	if scratch == nil {
		scratch = new([]byte)
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("reading compressed size: %w", bitreader.ErrTruncated)
	}
	size := binary.LittleEndian.Uint32(data)
	zr, err := zlib.NewReader(bytes.NewReader(data[4:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrZlib, err)
	}
	defer zr.Close()
	buf := (*scratch)[:0]
	if prealloc := min(int(size), maxPreallocSize); cap(buf) < prealloc {
		buf = make([]byte, 0, prealloc)
	}
	out := bytes.NewBuffer(buf)
	// Read at most one byte past the declared size to detect oversized payloads
	if _, err := io.Copy(out, io.LimitReader(zr, int64(size)+1)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrZlib, err)
	}
	*scratch = out.Bytes()
	if len(*scratch) != int(size) {
		return nil, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrCompressionSizeMismatch,
			size,
			len(*scratch),
		)
	}
	return *scratch, nil
}
