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

// Package bitreader implements a forward-only cursor over a byte slice with
// both bit-granular and byte-aligned little-endian reads.
//
// Bits are consumed least significant first within each byte. Byte-aligned
// loads discard any partially consumed byte before reading. The cursor
// borrows the slice it was created with and never copies or mutates it; the
// caller must keep the backing buffer alive and unmodified for as long as the
// Reader is in use.
package bitreader
