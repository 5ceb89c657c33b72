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

// Package utils provides helpers for inspecting decoded values
package utils

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/blinklabs-io/gokobold/objectproperty"
)

// DumpValue renders a value tree in an indented, human-readable form. Each
// line starts with prefix.
func DumpValue(v objectproperty.Value, prefix string) string {
	var ret bytes.Buffer
	dumpValue(&ret, v, prefix, prefix)
	return ret.String()
}

func dumpValue(ret *bytes.Buffer, data objectproperty.Value, prefix string, linePrefix string) {
	// Add 2 more spaces for nested values
	newPrefix := "  " + prefix
	switch v := data.(type) {
	case objectproperty.Empty, nil:
		fmt.Fprintf(ret, "%snull,\n", linePrefix)
	case objectproperty.Bool:
		fmt.Fprintf(ret, "%s%t,\n", linePrefix, bool(v))
	case objectproperty.Uint8, objectproperty.Uint16, objectproperty.Uint32, objectproperty.Uint64:
		fmt.Fprintf(ret, "%s0x%x (%d),\n", linePrefix, v, v)
	case objectproperty.Int8, objectproperty.Int16, objectproperty.Int32, objectproperty.Int64:
		fmt.Fprintf(ret, "%s%d,\n", linePrefix, v)
	case objectproperty.Float32:
		fmt.Fprintf(ret, "%s%s,\n", linePrefix, strconv.FormatFloat(float64(v), 'g', -1, 32))
	case objectproperty.Float64:
		fmt.Fprintf(ret, "%s%s,\n", linePrefix, strconv.FormatFloat(float64(v), 'g', -1, 64))
	case objectproperty.Bytes:
		fmt.Fprintf(ret, "%s%q (length %d),\n", linePrefix, v.String(), len(v))
	case objectproperty.WString:
		fmt.Fprintf(ret, "%sL%q (length %d),\n", linePrefix, v.String(), len(v))
	case objectproperty.List:
		if len(v) == 0 {
			fmt.Fprintf(ret, "%s[],\n", linePrefix)
			return
		}
		fmt.Fprintf(ret, "%s[\n", linePrefix)
		for _, item := range v {
			dumpValue(ret, item, newPrefix, newPrefix)
		}
		fmt.Fprintf(ret, "%s],\n", prefix)
	case *objectproperty.Object:
		if v.Hash != 0 {
			fmt.Fprintf(ret, "%s%s (0x%08x) {\n", linePrefix, v.Name, v.Hash)
		} else {
			fmt.Fprintf(ret, "%s%s {\n", linePrefix, v.Name)
		}
		for _, field := range v.Fields {
			dumpValue(ret, field.Value, newPrefix, newPrefix+field.Name+": ")
		}
		fmt.Fprintf(ret, "%s},\n", prefix)
	default:
		fmt.Fprintf(ret, "%s%#v,\n", linePrefix, v)
	}
}
