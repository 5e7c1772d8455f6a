// Copyright 2025 Blink Labs Software
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

package ledger

import (
	"errors"
	"fmt"
)

// ErrInvalidSignature is returned when a signature does not verify against its public key
var ErrInvalidSignature = errors.New("invalid signature")

// LengthError indicates a fixed-size field supplied with the wrong number of bytes
type LengthError struct {
	Field    string
	Expected int
	Actual   int
}

func (e LengthError) Error() string {
	return fmt.Sprintf(
		"invalid %s length: expected %d bytes, got %d",
		e.Field,
		e.Expected,
		e.Actual,
	)
}

// UnknownVariantError indicates an enum tag with no known variant
type UnknownVariantError struct {
	Type    string
	Variant uint32
}

func (e UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %d", e.Type, e.Variant)
}
