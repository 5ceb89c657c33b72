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
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/blinklabs-io/gokobold/cbor"
	"github.com/jinzhu/copier"
	"golang.org/x/crypto/blake2b"
)

// SnapshotVersion identifies the layout of compiled type lists
const SnapshotVersion = 1

type snapshot struct {
	cbor.StructAsArray
	Version     uint
	Classes     []snapshotClass
	CoreObjects []snapshotCoreObject
}

type snapshotClass struct {
	cbor.StructAsArray
	Hash  uint32
	Name  string
	Bases []string
	// Converted element by element, see copyProperties
	Properties []snapshotProperty `copier:"-"`
}

type snapshotProperty struct {
	cbor.StructAsArray
	Name        string
	Type        string
	ID          uint32
	Offset      uint32
	Flags       uint32
	Container   string
	Dynamic     bool
	Hash        uint32
	EnumOptions map[string]int64
}

type snapshotCoreObject struct {
	cbor.StructAsArray
	Block uint8
	Type  uint8
	Class uint32
}

// Enum option maps and base lists are deep copied, so a snapshot never shares
// them with a live TypeList. Nil maps and slices stay nil, which keeps
// compiled output stable across a Compile/Load cycle.
var snapshotCopyOption = copier.Option{DeepCopy: true, IgnoreEmpty: true}

// copyProperties converts between Property and snapshotProperty, which share
// field names. Flags convert between PropertyFlags and uint32.
func copyProperties[T any, S any](src []S) ([]T, error) {
	ret := make([]T, len(src))
	for i := range src {
		if err := copier.CopyWithOption(&ret[i], &src[i], snapshotCopyOption); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// Compile returns a compact, deterministic CBOR encoding of the type list
// which can be turned back into a TypeList with Load
func (t *TypeList) Compile() ([]byte, error) {
	tmp := snapshot{Version: SnapshotVersion}
	for _, def := range t.Classes() {
		var class snapshotClass
		if err := copier.CopyWithOption(&class, def, snapshotCopyOption); err != nil {
			return nil, err
		}
		props, err := copyProperties[snapshotProperty](def.Properties)
		if err != nil {
			return nil, err
		}
		class.Properties = props
		tmp.Classes = append(tmp.Classes, class)
	}
	for key, hash := range t.coreObjects {
		tmp.CoreObjects = append(tmp.CoreObjects, snapshotCoreObject{
			Block: key.block,
			Type:  key.kind,
			Class: hash,
		})
	}
	slices.SortFunc(tmp.CoreObjects, func(a, b snapshotCoreObject) int {
		if c := cmp.Compare(a.Block, b.Block); c != 0 {
			return c
		}
		return cmp.Compare(a.Type, b.Type)
	})
	return cbor.Encode(&tmp)
}

// Load builds a TypeList from the output of Compile
func Load(data []byte) (*TypeList, error) {
	var tmp snapshot
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if tmp.Version != SnapshotVersion {
		return nil, fmt.Errorf(
			"%w: unsupported snapshot version %d",
			ErrParse,
			tmp.Version,
		)
	}
	ret := New()
	for _, class := range tmp.Classes {
		def := &TypeDef{}
		if err := copier.CopyWithOption(def, &class, snapshotCopyOption); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		props, err := copyProperties[Property](class.Properties)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		def.Properties = props
		ret.add(def)
	}
	for _, obj := range tmp.CoreObjects {
		ret.RegisterCoreObject(obj.Block, obj.Type, obj.Class)
	}
	return ret, nil
}

// Fingerprint returns the hex-encoded blake2b-256 digest of the compiled type
// list. Type lists with the same content have the same fingerprint.
func (t *TypeList) Fingerprint() (string, error) {
	data, err := t.Compile()
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
