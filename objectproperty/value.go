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
	"unicode/utf16"
)

// Value is a node of a decoded value tree. It is implemented only by the
// types in this package.
type Value interface {
	isValue()
}

// Empty is the result of decoding an object without a known type
type Empty struct{}

type (
	Bool    bool
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	// Bytes is a narrow string. It is not guaranteed to be valid UTF-8.
	Bytes []byte
	// WString is a wide string as UTF-16 code units
	WString []uint16
	List    []Value
)

// Field is a named value of an Object
type Field struct {
	Name  string
	Value Value
}

// Object is a decoded class instance. Fields are in wire order. Properties
// that were masked out or delta-omitted are absent.
type Object struct {
	Name   string
	Hash   uint32
	Fields []Field
}

func (Empty) isValue()   {}
func (Bool) isValue()    {}
func (Uint8) isValue()   {}
func (Uint16) isValue()  {}
func (Uint32) isValue()  {}
func (Uint64) isValue()  {}
func (Int8) isValue()    {}
func (Int16) isValue()   {}
func (Int32) isValue()   {}
func (Int64) isValue()   {}
func (Float32) isValue() {}
func (Float64) isValue() {}
func (Bytes) isValue()   {}
func (WString) isValue() {}
func (List) isValue()    {}
func (*Object) isValue() {}

func (b Bytes) String() string {
	return string(b)
}

func (w WString) String() string {
	return string(utf16.Decode(w))
}

// Get returns the value of the named field
func (o *Object) Get(name string) (Value, bool) {
	for _, field := range o.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

// Has reports whether the named field is present
func (o *Object) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// ToNative converts a value tree into plain Go values. Objects become
// map[string]any with an additional "__type" key holding the class name, which
// takes precedence over a field of the same name,
// lists become []any, strings become string and Empty becomes nil.
func ToNative(v Value) any {
	switch v := v.(type) {
	case nil, Empty:
		return nil
	case Bool:
		return bool(v)
	case Uint8:
		return uint8(v)
	case Uint16:
		return uint16(v)
	case Uint32:
		return uint32(v)
	case Uint64:
		return uint64(v)
	case Int8:
		return int8(v)
	case Int16:
		return int16(v)
	case Int32:
		return int32(v)
	case Int64:
		return int64(v)
	case Float32:
		return float32(v)
	case Float64:
		return float64(v)
	case Bytes:
		return v.String()
	case WString:
		return v.String()
	case List:
		ret := make([]any, 0, len(v))
		for _, item := range v {
			ret = append(ret, ToNative(item))
		}
		return ret
	case *Object:
		ret := make(map[string]any, len(v.Fields)+1)
		for _, field := range v.Fields {
			ret[field.Name] = ToNative(field.Value)
		}
		ret[TypeKey] = v.Name
		return ret
	default:
		return nil
	}
}
