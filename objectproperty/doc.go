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

// Package objectproperty decodes the ObjectProperty binary format.
//
// ObjectProperty data is a bit-packed, little-endian encoding of object
// graphs whose layout is described by a typelist.TypeList. A Deserializer is
// configured once with DeserializerOptions and an identity encoding, then fed
// any number of buffers:
//
//	types, err := typelist.FromString(dump)
//	if err != nil {
//	    return err
//	}
//	d := objectproperty.NewBinaryDeserializer(objectproperty.DefaultDeserializerOptions(), types)
//	value, err := d.Deserialize(data)
//
// # Framing
//
// With FlagStatefulFlags set, the first 4 bytes of the data replace the
// configured flags. With FlagWithCompression set, the next byte tells whether
// the rest is a [u32 size][zlib payload] frame or raw object data. With
// ManualCompression, the data always starts with such a frame and stateful
// flags are read from the inflated payload instead.
//
// # Objects
//
// Each object starts with an identity (PropertyClass: u32 class hash,
// CoreObject: block and type bytes). An unknown or null identity decodes to
// Empty. In shallow mode, properties follow in declared order; properties
// outside the property mask are not encoded, and properties flagged
// DELTA_ENCODE are preceded by a presence bit unless FlagForbidDeltaEncode
// is set. Otherwise the object carries its size in bits followed by
// [size][hash][value] property records.
//
// Nesting is bounded by RecursionLimit. Decoding errors abort the whole call;
// partial objects are never returned.
package objectproperty
