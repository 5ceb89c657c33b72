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
	"log/slog"
	"math"

	"github.com/blinklabs-io/gokobold/typelist"
)

// DefaultRecursionLimit bounds object nesting well below the goroutine stack limit
const DefaultRecursionLimit uint8 = math.MaxUint8 / 2

// DefaultPropertyMask selects the properties that are sent over the network
const DefaultPropertyMask = typelist.PropertyTransmit | typelist.PropertyPrivilegedTransmit

// DeserializerOptions configure a Deserializer
type DeserializerOptions struct {
	// Stream encoding flags. With FlagStatefulFlags set, FeedData replaces
	// them with the flags stored in the stream.
	Flags SerializerFlags
	// Properties whose flags do not intersect the mask are not part of the stream
	PropertyMask typelist.PropertyFlags
	// Shallow selects the declared-order encoding with delta presence bits
	// instead of the size and hash framed encoding
	Shallow bool
	// The data always starts with a size-prefixed zlib payload
	ManualCompression bool
	// Decoding fails once this many objects are nested
	RecursionLimit uint8
}

// DefaultDeserializerOptions returns the options used by game clients for
// network messages
func DefaultDeserializerOptions() DeserializerOptions {
	return DeserializerOptions{
		PropertyMask:   DefaultPropertyMask,
		RecursionLimit: DefaultRecursionLimit,
	}
}

type DeserializerOptionFunc func(*Deserializer)

// WithLogger specifies the logger used for debug output while priming
func WithLogger(logger *slog.Logger) DeserializerOptionFunc {
	return func(d *Deserializer) {
		d.logger = logger
	}
}
