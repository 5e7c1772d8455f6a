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
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"slices"
)

// Encoder accumulates the canonical encoding of one or more values
type Encoder struct {
	buf bytes.Buffer
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded output
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *Encoder) WriteU8(v uint8) {
	e.buf.WriteByte(v)
}

func (e *Encoder) WriteBool(v bool) {
	if v {
		e.buf.WriteByte(1)
	} else {
		e.buf.WriteByte(0)
	}
}

func (e *Encoder) WriteU32(v uint32) {
	e.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
}

func (e *Encoder) WriteU64(v uint64) {
	e.buf.Write(binary.LittleEndian.AppendUint64(nil, v))
}

// WriteLength writes a sequence length prefix
func (e *Encoder) WriteLength(n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return &EncodeError{Msg: fmt.Sprintf("length %d does not fit in u32", n)}
	}
	e.WriteU32(uint32(n))
	return nil
}

// WriteVariant writes an enum variant tag
func (e *Encoder) WriteVariant(tag uint32) {
	e.WriteU32(tag)
}

// WriteBytes writes a length-prefixed byte array
func (e *Encoder) WriteBytes(b []byte) error {
	if err := e.WriteLength(len(b)); err != nil {
		return err
	}
	e.buf.Write(b)
	return nil
}

// WriteFixedBytes writes b with no length prefix
func (e *Encoder) WriteFixedBytes(b []byte) {
	e.buf.Write(b)
}

func (e *Encoder) WriteString(s string) error {
	return e.WriteBytes([]byte(s))
}

// WriteMap writes a canonical map, sorting entries by their encoded key
func (e *Encoder) WriteMap(entries map[string][]byte) error {
	if err := e.WriteLength(len(entries)); err != nil {
		return err
	}
	// Order is defined over the encoded key, which leads with its little-endian
	// length prefix, not over the raw key bytes
	type entry struct {
		encodedKey []byte
		value      []byte
	}
	sorted := make([]entry, 0, len(entries))
	for k, v := range entries {
		keyEnc := NewEncoder()
		if err := keyEnc.WriteString(k); err != nil {
			return err
		}
		sorted = append(sorted, entry{encodedKey: keyEnc.Bytes(), value: v})
	}
	slices.SortFunc(sorted, func(a, b entry) int {
		return bytes.Compare(a.encodedKey, b.encodedKey)
	})
	for _, ent := range sorted {
		e.WriteFixedBytes(ent.encodedKey)
		if err := e.WriteBytes(ent.value); err != nil {
			return err
		}
	}
	return nil
}

// Encode returns the canonical encoding of v
func Encode(v Marshaler) ([]byte, error) {
	e := NewEncoder()
	if err := v.MarshalLCS(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}
