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
	"github.com/blinklabs-io/gokobold/bitreader"
	"github.com/blinklabs-io/gokobold/typelist"
)

// Identity reads the type identity at the start of an object and resolves it
// against a TypeList. A nil TypeDef without error means the object has no
// known type and decodes to Empty. The only implementations are
// PropertyClass and CoreObject.
type Identity interface {
	objectIdentity(r *bitreader.Reader, types *typelist.TypeList) (*typelist.TypeDef, error)
	String() string
}

// PropertyClass identifies objects by a 32-bit class hash. A zero hash
// denotes a null object.
type PropertyClass struct{}

func (PropertyClass) objectIdentity(
	r *bitreader.Reader,
	types *typelist.TypeList,
) (*typelist.TypeDef, error) {
	hash, err := r.U32()
	if err != nil {
		return nil, err
	}
	if hash == 0 {
		return nil, nil
	}
	return types.Lookup(hash), nil
}

func (PropertyClass) String() string {
	return "PropertyClass"
}

// CoreObject identifies objects by a block id and a type id byte, which map
// to a class through the type list core object table. A zero pair denotes a
// null object.
type CoreObject struct{}

func (CoreObject) objectIdentity(
	r *bitreader.Reader,
	types *typelist.TypeList,
) (*typelist.TypeDef, error) {
	block, err := r.U8()
	if err != nil {
		return nil, err
	}
	kind, err := r.U8()
	if err != nil {
		return nil, err
	}
	if block == 0 && kind == 0 {
		return nil, nil
	}
	return types.LookupCoreObject(block, kind), nil
}

func (CoreObject) String() string {
	return "CoreObject"
}
