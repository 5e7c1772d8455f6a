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
	"unicode/utf8"
)

// Decoder reads canonical values from a byte slice without copying it
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder returns a Decoder over data. The decoder never reads beyond len(data)
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Offset returns the number of bytes consumed so far
func (d *Decoder) Offset() int {
	return d.pos
}

// Remaining returns the number of unread bytes
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

func (d *Decoder) errorf(format string, args ...any) error {
	return &DecodeError{Offset: d.pos, Msg: fmt.Sprintf(format, args...)}
}

func (d *Decoder) next(n int) ([]byte, error) {
	if n < 0 || n > d.Remaining() {
		return nil, d.errorf(
			"unexpected end of input: need %d bytes, have %d",
			n,
			d.Remaining(),
		)
	}
	ret := d.data[d.pos : d.pos+n]
	d.pos += n
	return ret, nil
}

func (d *Decoder) ReadU8() (uint8, error) {
	b, err := d.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.next(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		d.pos--
		return false, d.errorf("invalid bool value 0x%02x", b[0])
	}
}

func (d *Decoder) ReadU32() (uint32, error) {
	b, err := d.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d *Decoder) ReadU64() (uint64, error) {
	b, err := d.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadLength reads a sequence length prefix. Every element occupies at least one
// byte, so a length larger than the remaining input is rejected up front
func (d *Decoder) ReadLength() (int, error) {
	start := d.pos
	n, err := d.ReadU32()
	if err != nil {
		return 0, err
	}
	if uint64(n) > uint64(d.Remaining()) {
		d.pos = start
		return 0, d.errorf(
			"length prefix %d exceeds remaining input of %d bytes",
			n,
			d.Remaining()-4,
		)
	}
	return int(n), nil
}

// ReadSequenceLength reads the element count of a sequence whose elements each
// encode to at least minElementSize bytes. A count that cannot fit in the
// remaining input is rejected, which bounds any allocation sized by it
func (d *Decoder) ReadSequenceLength(minElementSize int) (int, error) {
	if minElementSize < 1 {
		minElementSize = 1
	}
	start := d.pos
	n, err := d.ReadU32()
	if err != nil {
		return 0, err
	}
	if uint64(n)*uint64(minElementSize) > uint64(d.Remaining()) {
		d.pos = start
		return 0, d.errorf(
			"sequence of %d elements of at least %d bytes exceeds remaining input of %d bytes",
			n,
			minElementSize,
			d.Remaining()-4,
		)
	}
	return int(n), nil
}

// ReadVariant reads an enum variant tag
func (d *Decoder) ReadVariant() (uint32, error) {
	return d.ReadU32()
}

// ReadBytes reads a length-prefixed byte array. The returned slice is a copy
func (d *Decoder) ReadBytes() ([]byte, error) {
	n, err := d.ReadLength()
	if err != nil {
		return nil, err
	}
	b, err := d.next(n)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b), nil
}

// ReadFixedBytes reads exactly len(dest) bytes with no length prefix
func (d *Decoder) ReadFixedBytes(dest []byte) error {
	b, err := d.next(len(dest))
	if err != nil {
		return err
	}
	copy(dest, b)
	return nil
}

// ReadString reads a length-prefixed UTF-8 string
func (d *Decoder) ReadString() (string, error) {
	start := d.pos
	b, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		d.pos = start
		return "", d.errorf("string is not valid UTF-8")
	}
	return string(b), nil
}

// ReadMap reads a canonical map, invoking fn for each entry in wire order.
// Keys must be strictly increasing by their encoded bytes
func (d *Decoder) ReadMap(fn func(key []byte, value []byte) error) error {
	count, err := d.ReadLength()
	if err != nil {
		return err
	}
	var prevKey []byte
	for i := range count {
		keyStart := d.pos
		key, err := d.ReadBytes()
		if err != nil {
			return err
		}
		encodedKey := d.data[keyStart:d.pos]
		if i > 0 && bytes.Compare(prevKey, encodedKey) >= 0 {
			d.pos = keyStart
			return d.errorf("map keys are not in canonical order")
		}
		prevKey = encodedKey
		value, err := d.ReadBytes()
		if err != nil {
			return err
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Finish returns an error if any input remains unread
func (d *Decoder) Finish() error {
	if d.Remaining() != 0 {
		return d.errorf("%d trailing bytes", d.Remaining())
	}
	return nil
}

// Decode populates dest from data, requiring that all of data is consumed
func Decode(data []byte, dest Unmarshaler) error {
	d := NewDecoder(data)
	if err := dest.UnmarshalLCS(d); err != nil {
		return err
	}
	return d.Finish()
}

// DecodeRecord decodes data as a value of type T
func DecodeRecord[T any, PT interface {
	*T
	Unmarshaler
}](data []byte) (T, error) {
	var ret T
	if err := Decode(data, PT(&ret)); err != nil {
		var zero T
		return zero, err
	}
	return ret, nil
}
