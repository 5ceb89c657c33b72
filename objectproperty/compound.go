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

// compoundType is a fixed-layout value type that is encoded inline without
// an identity
type compoundType struct {
	fields  []string
	element elementDecoder
}

func (c compoundType) decode(d *Deserializer, name string) (Value, error) {
	obj := &Object{
		Name:   name,
		Fields: make([]Field, 0, len(c.fields)),
	}
	for _, fieldName := range c.fields {
		v, err := c.element(d)
		if err != nil {
			return nil, err
		}
		obj.Fields = append(obj.Fields, Field{Name: fieldName, Value: v})
	}
	return obj, nil
}

var (
	decodeI32 = primitiveDecoders["int"]
	decodeU8  = primitiveDecoders["unsigned char"]
)

var compoundTypes = map[string]compoundType{
	"class Color":                {[]string{"b", "g", "r", "a"}, decodeU8},
	"class Vector3D":             {[]string{"x", "y", "z"}, float32Decoder},
	"class Euler":                {[]string{"pitch", "roll", "yaw"}, float32Decoder},
	"class Quaternion":           {[]string{"x", "y", "z", "w"}, float32Decoder},
	"class Point<int>":           {[]string{"x", "y"}, decodeI32},
	"class Point<float>":         {[]string{"x", "y"}, float32Decoder},
	"class Point<unsigned char>": {[]string{"x", "y"}, decodeU8},
	"class Size<int>":            {[]string{"width", "height"}, decodeI32},
	"class Size<float>":          {[]string{"width", "height"}, float32Decoder},
	"class Rect<int>":            {[]string{"left", "top", "right", "bottom"}, decodeI32},
	"class Rect<float>":          {[]string{"left", "top", "right", "bottom"}, float32Decoder},
	"class Matrix3x3": {
		[]string{"i.x", "i.y", "i.z", "j.x", "j.y", "j.z", "k.x", "k.y", "k.z"},
		float32Decoder,
	},
}
