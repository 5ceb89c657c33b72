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
	"encoding/binary"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blinklabs-io/gokobold/bitreader"
	"github.com/blinklabs-io/gokobold/typelist"
)

// Deserializer decodes ObjectProperty data into Value trees.
//
// A Deserializer is not safe for concurrent use. The TypeList it was created
// with is only read and may be shared between deserializers.
type Deserializer struct {
	identity Identity
	options  DeserializerOptions
	types    *typelist.TypeList
	logger   *slog.Logger
	reader   *bitreader.Reader
	// scratch is the decompression buffer used by Deserialize
	scratch []byte
	// remaining recursion budget, restored on return from each object
	budget uint8
}

// NewDeserializer creates a deserializer for the given identity encoding.
//
// No data has been loaded at this point. Either call FeedData followed by
// Decode, or call Deserialize.
func NewDeserializer(
	identity Identity,
	options DeserializerOptions,
	types *typelist.TypeList,
	opts ...DeserializerOptionFunc,
) *Deserializer {
	if identity == nil {
		identity = PropertyClass{}
	}
	if types == nil {
		types = typelist.New()
	}
	d := &Deserializer{
		identity: identity,
		options:  options,
		types:    types,
		budget:   options.RecursionLimit,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// NewBinaryDeserializer creates a deserializer for PropertyClass objects
func NewBinaryDeserializer(
	options DeserializerOptions,
	types *typelist.TypeList,
	opts ...DeserializerOptionFunc,
) *Deserializer {
	return NewDeserializer(PropertyClass{}, options, types, opts...)
}

// NewCoreObjectDeserializer creates a deserializer for CoreObject objects
func NewCoreObjectDeserializer(
	options DeserializerOptions,
	types *typelist.TypeList,
	opts ...DeserializerOptionFunc,
) *Deserializer {
	return NewDeserializer(CoreObject{}, options, types, opts...)
}

// Options returns the current options. The flags reflect any override read
// from stateful data.
func (d *Deserializer) Options() DeserializerOptions {
	return d.options
}

// RecursionBudget returns the remaining recursion budget. Outside of a
// Decode call it is always equal to the configured recursion limit.
func (d *Deserializer) RecursionBudget() uint8 {
	return d.budget
}

// Identity returns the identity encoding used by the deserializer
func (d *Deserializer) Identity() Identity {
	return d.identity
}

// FeedData loads data for the next Decode call, replacing any previously
// loaded data.
//
// When the data is compressed it is inflated into scratch, which is
// overwritten. The deserializer then reads from scratch instead of data, so
// scratch must not be modified until decoding has finished. Whichever buffer
// is used must outlive the following Decode call. With a nil scratch, a new
// buffer is allocated for each compressed payload.
func (d *Deserializer) FeedData(data []byte, scratch *[]byte) error {
	d.reader = nil
	if d.options.ManualCompression {
		decompressed, err := decompress(data, scratch)
		if err != nil {
			return err
		}
		d.logger.Debug(
			"decompressed object data",
			"compressed_size",
			len(data),
			"size",
			len(decompressed),
		)
		reader := bitreader.New(decompressed)
		if d.options.Flags.Contains(FlagStatefulFlags) {
			bits, err := reader.U32()
			if err != nil {
				return fmt.Errorf("reading stateful flags: %w", err)
			}
			d.setStatefulFlags(bits)
		}
		d.reader = reader
		return nil
	}
	if d.options.Flags.Contains(FlagStatefulFlags) {
		if len(data) < 4 {
			return fmt.Errorf("reading stateful flags: %w", bitreader.ErrTruncated)
		}
		d.setStatefulFlags(binary.LittleEndian.Uint32(data))
		data = data[4:]
	}
	if d.options.Flags.Contains(FlagWithCompression) {
		if len(data) < 1 {
			return fmt.Errorf("reading compression indicator: %w", bitreader.ErrTruncated)
		}
		compressed := data[0] != 0
		data = data[1:]
		if compressed {
			decompressed, err := decompress(data, scratch)
			if err != nil {
				return err
			}
			d.logger.Debug(
				"decompressed object data",
				"compressed_size",
				len(data),
				"size",
				len(decompressed),
			)
			data = decompressed
		}
	}
	d.reader = bitreader.New(data)
	return nil
}

func (d *Deserializer) setStatefulFlags(bits uint32) {
	d.options.Flags = SerializerFlagsFromBits(bits)
	d.logger.Debug(
		"using serializer flags from data",
		"flags",
		d.options.Flags.String(),
	)
}

// Decode decodes one object from the data loaded by FeedData
func (d *Deserializer) Decode() (Value, error) {
	if d.reader == nil {
		return nil, ErrNoData
	}
	return d.deserializeObject()
}

// Deserialize loads data and decodes one object from it. Compressed data is
// inflated into a buffer owned by the deserializer.
func (d *Deserializer) Deserialize(data []byte) (Value, error) {
	if err := d.FeedData(data, &d.scratch); err != nil {
		return nil, err
	}
	return d.Decode()
}

func (d *Deserializer) deserializeObject() (Value, error) {
	if d.budget <= 1 {
		return nil, ErrRecursionLimitExceeded
	}
	d.budget--
	defer func() {
		d.budget++
	}()
	typeDef, err := d.identity.objectIdentity(d.reader, d.types)
	if err != nil {
		return nil, fmt.Errorf("reading %s identity: %w", d.identity, err)
	}
	if typeDef == nil {
		return Empty{}, nil
	}
	obj := &Object{
		Name: typeDef.Name,
		Hash: typeDef.Hash,
	}
	if d.options.Shallow {
		err = d.deserializeShallowProperties(typeDef, obj)
	} else {
		err = d.deserializeDeepProperties(typeDef, obj)
	}
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// deserializeShallowProperties reads the masked-in properties in declared
// order. Delta-encoded properties are preceded by a presence bit.
func (d *Deserializer) deserializeShallowProperties(typeDef *typelist.TypeDef, obj *Object) error {
	skipDelta := d.options.Flags.Contains(FlagForbidDeltaEncode)
	for i := range typeDef.Properties {
		prop := &typeDef.Properties[i]
		if !prop.Flags.Intersects(d.options.PropertyMask) {
			continue
		}
		if !skipDelta && prop.Flags.Contains(typelist.PropertyDeltaEncode) {
			present, err := d.reader.ReadBit()
			if err != nil {
				return fmt.Errorf("%s.%s: %w", typeDef.Name, prop.Name, err)
			}
			if !present {
				continue
			}
		}
		value, err := d.deserializeProperty(prop)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", typeDef.Name, prop.Name, err)
		}
		obj.Fields = append(obj.Fields, Field{Name: prop.Name, Value: value})
	}
	return nil
}

// deserializeDeepProperties reads a size-prefixed object made of
// [size][hash][value] property records. Sizes are in bits and include the
// size field itself.
func (d *Deserializer) deserializeDeepProperties(typeDef *typelist.TypeDef, obj *Object) error {
	start := d.reader.Position()
	objectSize, err := d.reader.ReadValueBits(32)
	if err != nil {
		return fmt.Errorf("%s: reading object size: %w", typeDef.Name, err)
	}
	if objectSize < 32 {
		return fmt.Errorf("%w: %s object size %d", ErrSizeMismatch, typeDef.Name, objectSize)
	}
	if int(objectSize)-32 > d.reader.Remaining() {
		return fmt.Errorf("%s: object body: %w", typeDef.Name, bitreader.ErrTruncated)
	}
	end := start + int(objectSize)
	for d.reader.Position() < end {
		propStart := d.reader.Position()
		propSize, err := d.reader.ReadValueBits(32)
		if err != nil {
			return fmt.Errorf("%s: reading property size: %w", typeDef.Name, err)
		}
		hash, err := d.reader.ReadValueBits(32)
		if err != nil {
			return fmt.Errorf("%s: reading property hash: %w", typeDef.Name, err)
		}
		propEnd := propStart + int(propSize)
		if propSize < 64 || propEnd > end {
			return fmt.Errorf(
				"%w: %s property 0x%08x size %d",
				ErrSizeMismatch,
				typeDef.Name,
				hash,
				propSize,
			)
		}
		prop := typeDef.PropertyByHash(uint32(hash))
		if prop == nil {
			return fmt.Errorf("%w: %s has no property with hash 0x%08x", ErrUnknownProperty, typeDef.Name, hash)
		}
		if !prop.Flags.Intersects(d.options.PropertyMask) {
			if err := d.reader.SkipBits(propEnd - d.reader.Position()); err != nil {
				return fmt.Errorf("%s.%s: %w", typeDef.Name, prop.Name, err)
			}
			continue
		}
		value, err := d.deserializeProperty(prop)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", typeDef.Name, prop.Name, err)
		}
		if d.reader.Position() != propEnd {
			return fmt.Errorf(
				"%w: %s.%s declared %d bits, read %d",
				ErrSizeMismatch,
				typeDef.Name,
				prop.Name,
				propSize,
				d.reader.Position()-propStart,
			)
		}
		obj.Fields = append(obj.Fields, Field{Name: prop.Name, Value: value})
	}
	return nil
}

func (d *Deserializer) deserializeProperty(prop *typelist.Property) (Value, error) {
	decode, err := d.elementDecoder(prop)
	if err != nil {
		return nil, err
	}
	if !prop.IsSequence() {
		return decode(d)
	}
	length, err := d.readSeqLen()
	if err != nil {
		return nil, err
	}
	// Every element takes at least one bit, which bounds the preallocation
	ret := make(List, 0, min(length, d.reader.Remaining()))
	for range length {
		v, err := decode(d)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// elementDecoder selects the decoder for a single element of a property
// based on its type name
func (d *Deserializer) elementDecoder(prop *typelist.Property) (elementDecoder, error) {
	if decode, ok := primitiveDecoders[prop.Type]; ok {
		return decode, nil
	}
	if strings.HasPrefix(prop.Type, "enum ") || prop.Flags.Contains(typelist.PropertyEnum) {
		return enumDecoder, nil
	}
	if compound, ok := compoundTypes[prop.Type]; ok {
		name := prop.Type
		return func(d *Deserializer) (Value, error) {
			return compound.decode(d, name)
		}, nil
	}
	if strings.HasPrefix(prop.Type, "class ") || strings.HasPrefix(prop.Type, "struct ") {
		return objectDecoder, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, prop.Type)
}

func enumDecoder(d *Deserializer) (Value, error) {
	if d.options.Flags.Contains(FlagHumanReadableEnums) {
		return d.readStr()
	}
	v, err := d.reader.U32()
	if err != nil {
		return nil, err
	}
	return Uint32(v), nil
}

// objectDecoder decodes an embedded or referenced object, including its own
// identity
func objectDecoder(d *Deserializer) (Value, error) {
	return d.deserializeObject()
}
