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
	"errors"
)

var (
	ErrNoData                  = errors.New("objectproperty: no data fed to deserializer")
	ErrCompressionSizeMismatch = errors.New("objectproperty: compression size mismatch")
	ErrZlib                    = errors.New("objectproperty: zlib error")
	ErrRecursionLimitExceeded  = errors.New("objectproperty: deserializer recursion limit exceeded")
	ErrUnknownProperty         = errors.New("objectproperty: unknown property")
	ErrSizeMismatch            = errors.New("objectproperty: encoded size mismatch")
	ErrUnsupportedType         = errors.New("objectproperty: unsupported property type")
)
