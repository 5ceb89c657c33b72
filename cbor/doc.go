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

// Package cbor provides the CBOR encoding used for compiled type list
// snapshots and for exporting decoded values.
//
// Encode and Decode wrap github.com/fxamacker/cbor/v2 with cached modes.
// Encoding is deterministic (sorted map keys), so a snapshot of the same type
// list always produces the same bytes and the same fingerprint.
//
// Embed StructAsArray to encode a struct as a CBOR array instead of a map:
//
//	type entry struct {
//	    cbor.StructAsArray
//	    Name string
//	    Hash uint32
//	}
//
// Types that need a specific key order, such as decoded objects, build their
// own map header with AppendHeader and append the encoded members.
package cbor
