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
	"fmt"
	"strconv"
	"strings"
)

// PropertyFlags describe how a property participates in serialization
type PropertyFlags uint32

const (
	PropertySave               PropertyFlags = 1 << 0
	PropertyCopy               PropertyFlags = 1 << 1
	PropertyPublic             PropertyFlags = 1 << 2
	PropertyTransmit           PropertyFlags = 1 << 3
	PropertyPrivilegedTransmit PropertyFlags = 1 << 5
	PropertyPersist            PropertyFlags = 1 << 8
	PropertyDeprecated         PropertyFlags = 1 << 9
	PropertyNoScript           PropertyFlags = 1 << 10
	PropertyDeltaEncode        PropertyFlags = 1 << 11
	PropertyBlob               PropertyFlags = 1 << 12
	PropertyNoEdit             PropertyFlags = 1 << 16
	PropertyFilename           PropertyFlags = 1 << 17
	PropertyColor              PropertyFlags = 1 << 18
	PropertyBits               PropertyFlags = 1 << 20
	PropertyEnum               PropertyFlags = 1 << 21
	PropertyLocalized          PropertyFlags = 1 << 22
	PropertyStringKey          PropertyFlags = 1 << 23
	PropertyObjectId           PropertyFlags = 1 << 24
	PropertyReferenceId        PropertyFlags = 1 << 25
	PropertyObjectName         PropertyFlags = 1 << 27
	PropertyHasBaseClass       PropertyFlags = 1 << 28
)

var propertyFlagNames = []struct {
	flag PropertyFlags
	name string
}{
	{PropertySave, "SAVE"},
	{PropertyCopy, "COPY"},
	{PropertyPublic, "PUBLIC"},
	{PropertyTransmit, "TRANSMIT"},
	{PropertyPrivilegedTransmit, "PRIVILEGED_TRANSMIT"},
	{PropertyPersist, "PERSIST"},
	{PropertyDeprecated, "DEPRECATED"},
	{PropertyNoScript, "NOSCRIPT"},
	{PropertyDeltaEncode, "DELTA_ENCODE"},
	{PropertyBlob, "BLOB"},
	{PropertyNoEdit, "NOEDIT"},
	{PropertyFilename, "FILENAME"},
	{PropertyColor, "COLOR"},
	{PropertyBits, "BITS"},
	{PropertyEnum, "ENUM"},
	{PropertyLocalized, "LOCALIZED"},
	{PropertyStringKey, "STRING_KEY"},
	{PropertyObjectId, "OBJECT_ID"},
	{PropertyReferenceId, "REFERENCE_ID"},
	{PropertyObjectName, "OBJECT_NAME"},
	{PropertyHasBaseClass, "HAS_BASECLASS"},
}

// Contains reports whether all bits of other are set
func (f PropertyFlags) Contains(other PropertyFlags) bool {
	return f&other == other
}

// Intersects reports whether any bit of other is set
func (f PropertyFlags) Intersects(other PropertyFlags) bool {
	return f&other != 0
}

func (f PropertyFlags) String() string {
	if f == 0 {
		return "0"
	}
	var names []string
	rest := f
	for _, tmp := range propertyFlagNames {
		if f&tmp.flag != 0 {
			names = append(names, tmp.name)
			rest &^= tmp.flag
		}
	}
	if rest != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(names, "|")
}

// ParsePropertyFlags parses a "|" separated list of flag names, as produced by
// String
func ParsePropertyFlags(s string) (PropertyFlags, error) {
	var ret PropertyFlags
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" || part == "0" {
			continue
		}
		found := false
		for _, tmp := range propertyFlagNames {
			if strings.EqualFold(part, tmp.name) {
				ret |= tmp.flag
				found = true
				break
			}
		}
		if found {
			continue
		}
		raw, err := strconv.ParseUint(part, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("unknown property flag: %q", part)
		}
		ret |= PropertyFlags(raw)
	}
	return ret, nil
}
