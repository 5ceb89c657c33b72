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

// Package typelist holds the class definitions that drive ObjectProperty
// decoding.
//
// A TypeList is normally parsed from a JSON type dump with FromString, or
// from YAML with FromYAML. Parsed lists can be compiled to a CBOR snapshot
// with Compile and restored with Load, which avoids re-parsing large dumps.
//
// The expected JSON shape is:
//
//	{
//	  "version": 2,
//	  "classes": {
//	    "<class hash>": {
//	      "name": "class Foo",
//	      "bases": ["class PropertyClass"],
//	      "properties": {
//	        "m_bar": {"type": "int", "id": 0, "flags": 8, "container": "Static", "hash": 123}
//	      }
//	    }
//	  },
//	  "core_objects": [{"block": 1, "type": 2, "class": 1234}]
//	}
//
// Properties are decoded in ascending "id" order.
package typelist
