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
	"cmp"
	"slices"
)

// Container kinds used by the type dump
const (
	ContainerStatic = "Static"
	ContainerVector = "Vector"
	ContainerList   = "List"
)

// Property describes a single field of a class
type Property struct {
	Name string
	// Type is the C++ type name from the dump, e.g. "unsigned int" or "class SharedPointer<class Foo>"
	Type      string
	ID        uint32
	Offset    uint32
	Flags     PropertyFlags
	Container string
	Dynamic   bool
	Hash      uint32
	// EnumOptions maps option names to their integer values
	EnumOptions map[string]int64
}

// IsSequence reports whether the property holds a length-prefixed list of
// elements rather than a single element
func (p *Property) IsSequence() bool {
	return p.Dynamic || p.Container == ContainerVector || p.Container == ContainerList
}

// TypeDef is a class definition. Properties are kept in wire order.
type TypeDef struct {
	Name       string
	Hash       uint32
	Bases      []string
	Properties []Property
}

// PropertyByHash returns the property with the given hash, or nil
func (t *TypeDef) PropertyByHash(hash uint32) *Property {
	for i := range t.Properties {
		if t.Properties[i].Hash == hash {
			return &t.Properties[i]
		}
	}
	return nil
}

// PropertyByName returns the property with the given name, or nil
func (t *TypeDef) PropertyByName(name string) *Property {
	for i := range t.Properties {
		if t.Properties[i].Name == name {
			return &t.Properties[i]
		}
	}
	return nil
}

type coreObjectKey struct {
	block uint8
	kind  uint8
}

// TypeList resolves class hashes to their definitions. A TypeList is not
// modified by decoding and may be shared by any number of deserializers once
// it has been built.
type TypeList struct {
	classes     map[uint32]*TypeDef
	coreObjects map[coreObjectKey]uint32
}

// New builds a TypeList from class definitions. The TypeList holds its own
// copy of each definition, with properties ordered by their ID and the given
// order kept for equal IDs. The passed definitions are not modified.
func New(defs ...*TypeDef) *TypeList {
	t := &TypeList{
		classes:     make(map[uint32]*TypeDef, len(defs)),
		coreObjects: make(map[coreObjectKey]uint32),
	}
	for _, def := range defs {
		t.add(def)
	}
	return t
}

func (t *TypeList) add(def *TypeDef) {
	tmp := *def
	tmp.Properties = slices.Clone(def.Properties)
	slices.SortStableFunc(tmp.Properties, func(a, b Property) int {
		return cmp.Compare(a.ID, b.ID)
	})
	t.classes[tmp.Hash] = &tmp
}

// RegisterCoreObject maps a core object block/type pair to a class hash
func (t *TypeList) RegisterCoreObject(block uint8, kind uint8, hash uint32) {
	t.coreObjects[coreObjectKey{block: block, kind: kind}] = hash
}

// Lookup returns the class with the given hash, or nil when it is unknown
func (t *TypeList) Lookup(hash uint32) *TypeDef {
	return t.classes[hash]
}

// LookupCoreObject returns the class registered for a core object block/type
// pair, or nil when there is none
func (t *TypeList) LookupCoreObject(block uint8, kind uint8) *TypeDef {
	hash, ok := t.coreObjects[coreObjectKey{block: block, kind: kind}]
	if !ok {
		return nil
	}
	return t.Lookup(hash)
}

// LookupName returns the class with the given name, or nil
func (t *TypeList) LookupName(name string) *TypeDef {
	for _, def := range t.classes {
		if def.Name == name {
			return def
		}
	}
	return nil
}

// Len returns the number of classes
func (t *TypeList) Len() int {
	return len(t.classes)
}

// Classes returns all classes ordered by hash
func (t *TypeList) Classes() []*TypeDef {
	ret := make([]*TypeDef, 0, len(t.classes))
	for _, def := range t.classes {
		ret = append(ret, def)
	}
	slices.SortFunc(ret, func(a, b *TypeDef) int {
		return cmp.Compare(a.Hash, b.Hash)
	})
	return ret
}
