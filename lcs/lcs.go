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

package lcs

import (
	"errors"
	"fmt"
)

// Marshaler is implemented by types that can write their canonical encoding
type Marshaler interface {
	MarshalLCS(e *Encoder) error
}

// Unmarshaler is implemented by types that can populate themselves from a canonical encoding
type Unmarshaler interface {
	UnmarshalLCS(d *Decoder) error
}

// ErrDecode matches every error produced while decoding
var ErrDecode = errors.New("lcs: decode failure")

// DecodeError describes malformed input and the offset where it was detected
type DecodeError struct {
	Offset int
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("lcs: %s at offset %d", e.Msg, e.Offset)
}

func (*DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// EncodeError describes a value that cannot be represented in the canonical format
type EncodeError struct {
	Msg string
}

func (e *EncodeError) Error() string {
	return "lcs: " + e.Msg
}
