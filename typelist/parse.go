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

package typelist

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// TypeListVersion is the type dump format version understood by the parser
const TypeListVersion = 2

var ErrParse = errors.New("typelist: parse error")

type rawTypeList struct {
	Version     int                 `json:"version"      yaml:"version"`
	Classes     map[string]rawClass `json:"classes"      yaml:"classes"`
	CoreObjects []rawCoreObject     `json:"core_objects" yaml:"core_objects"`
}

type rawClass struct {
	Bases      []string               `json:"bases"      yaml:"bases"`
	Hash       uint32                 `json:"hash"       yaml:"hash"`
	Name       string                 `json:"name"       yaml:"name"`
	Properties map[string]rawProperty `json:"properties" yaml:"properties"`
}

type rawProperty struct {
	Type        string         `json:"type"         yaml:"type"`
	ID          uint32         `json:"id"           yaml:"id"`
	Offset      uint32         `json:"offset"       yaml:"offset"`
	Flags       uint32         `json:"flags"        yaml:"flags"`
	Container   string         `json:"container"    yaml:"container"`
	Dynamic     bool           `json:"dynamic"      yaml:"dynamic"`
	Hash        uint32         `json:"hash"         yaml:"hash"`
	EnumOptions map[string]any `json:"enum_options" yaml:"enum_options"`
}

type rawCoreObject struct {
	Block uint8  `json:"block" yaml:"block"`
	Type  uint8  `json:"type"  yaml:"type"`
	Class uint32 `json:"class" yaml:"class"`
}

// FromString parses a JSON type dump. Comments and trailing commas are
// accepted.
func FromString(data string) (*TypeList, error) {
	var raw rawTypeList
	if err := json.Unmarshal(jsonc.ToJSON([]byte(data)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return raw.build()
}

// FromYAML parses a type dump expressed as YAML
func FromYAML(data []byte) (*TypeList, error) {
	var raw rawTypeList
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return raw.build()
}

func (r *rawTypeList) build() (*TypeList, error) {
	if r.Version != 0 && r.Version != TypeListVersion {
		return nil, fmt.Errorf(
			"%w: unsupported type list version %d",
			ErrParse,
			r.Version,
		)
	}
	ret := New()
	for key, class := range r.Classes {
		hash := class.Hash
		if hash == 0 {
			tmpHash, err := strconv.ParseUint(key, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid class hash %q", ErrParse, key)
			}
			hash = uint32(tmpHash)
		}
		def := &TypeDef{
			Name:       class.Name,
			Hash:       hash,
			Bases:      class.Bases,
			Properties: make([]Property, 0, len(class.Properties)),
		}
		for name, prop := range class.Properties {
			def.Properties = append(def.Properties, Property{
				Name:        name,
				Type:        prop.Type,
				ID:          prop.ID,
				Offset:      prop.Offset,
				Flags:       PropertyFlags(prop.Flags),
				Container:   prop.Container,
				Dynamic:     prop.Dynamic,
				Hash:        prop.Hash,
				EnumOptions: enumOptions(prop.EnumOptions),
			})
		}
		// Map order is random, so properties sharing an ID are ordered by name
		slices.SortFunc(def.Properties, func(a, b Property) int {
			return strings.Compare(a.Name, b.Name)
		})
		ret.add(def)
	}
	for _, obj := range r.CoreObjects {
		ret.RegisterCoreObject(obj.Block, obj.Type, obj.Class)
	}
	return ret, nil
}

// enumOptions keeps the numeric options of an enum. Dumps also carry string
// entries such as "__DEFAULT", which are not values.
func enumOptions(raw map[string]any) map[string]int64 {
	if len(raw) == 0 {
		return nil
	}
	ret := make(map[string]int64, len(raw))
	for name, value := range raw {
		switch v := value.(type) {
		case float64:
			ret[name] = int64(v)
		case int:
			ret[name] = int64(v)
		case int64:
			ret[name] = v
		case uint64:
			// #nosec G115 -- enum values in type dumps fit in int64
			ret[name] = int64(v)
		}
	}
	return ret
}
