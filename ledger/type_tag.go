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
	"fmt"
	"strings"

	"github.com/blinklabs-io/golibra/lcs"
)

type TypeTagKind uint32

const (
	TypeTagBool      TypeTagKind = 0
	TypeTagU64       TypeTagKind = 1
	TypeTagByteArray TypeTagKind = 2
	TypeTagAddress   TypeTagKind = 3
	TypeTagStruct    TypeTagKind = 4
)

// MaxTypeTagDepth bounds struct tag nesting accepted by the decoder
const MaxTypeTagDepth = 16

func (k TypeTagKind) String() string {
	switch k {
	case TypeTagBool:
		return "bool"
	case TypeTagU64:
		return "u64"
	case TypeTagByteArray:
		return "bytearray"
	case TypeTagAddress:
		return "address"
	case TypeTagStruct:
		return "struct"
	default:
		return fmt.Sprintf("TypeTagKind(%d)", uint32(k))
	}
}

// TypeTag describes the Move type of a value. Struct is set only for TypeTagStruct
type TypeTag struct {
	Kind   TypeTagKind
	Struct *StructTag
}

// StructTag names a Move struct type
type StructTag struct {
	Address    AccountAddress
	Module     string
	Name       string
	TypeParams []TypeTag
}

func NewStructTypeTag(tag StructTag) TypeTag {
	return TypeTag{Kind: TypeTagStruct, Struct: &tag}
}

func (t TypeTag) String() string {
	if t.Kind == TypeTagStruct && t.Struct != nil {
		return t.Struct.String()
	}
	return t.Kind.String()
}

func (s *StructTag) String() string {
	ret := fmt.Sprintf("0x%s::%s::%s", s.Address, s.Module, s.Name)
	if len(s.TypeParams) > 0 {
		params := make([]string, 0, len(s.TypeParams))
		for _, p := range s.TypeParams {
			params = append(params, p.String())
		}
		ret += "<" + strings.Join(params, ", ") + ">"
	}
	return ret
}

func (t *TypeTag) MarshalLCS(e *lcs.Encoder) error {
	e.WriteVariant(uint32(t.Kind))
	if t.Kind != TypeTagStruct {
		return nil
	}
	if t.Struct == nil {
		return &lcs.EncodeError{Msg: "struct type tag without struct"}
	}
	return t.Struct.MarshalLCS(e)
}

func (t *TypeTag) UnmarshalLCS(d *lcs.Decoder) error {
	return t.unmarshal(d, 0)
}

func (t *TypeTag) unmarshal(d *lcs.Decoder, depth int) error {
	start := d.Offset()
	variant, err := d.ReadVariant()
	if err != nil {
		return err
	}
	kind := TypeTagKind(variant)
	switch kind {
	case TypeTagBool, TypeTagU64, TypeTagByteArray, TypeTagAddress:
		*t = TypeTag{Kind: kind}
		return nil
	case TypeTagStruct:
		if depth >= MaxTypeTagDepth {
			return &lcs.DecodeError{
				Offset: start,
				Msg:    fmt.Sprintf("type tag nesting exceeds %d", MaxTypeTagDepth),
			}
		}
		var s StructTag
		if err := s.unmarshal(d, depth+1); err != nil {
			return err
		}
		*t = TypeTag{Kind: kind, Struct: &s}
		return nil
	default:
		return &lcs.DecodeError{
			Offset: start,
			Msg:    UnknownVariantError{Type: "type tag", Variant: variant}.Error(),
		}
	}
}

func (s *StructTag) MarshalLCS(e *lcs.Encoder) error {
	if err := s.Address.MarshalLCS(e); err != nil {
		return err
	}
	if err := e.WriteString(s.Module); err != nil {
		return err
	}
	if err := e.WriteString(s.Name); err != nil {
		return err
	}
	if err := e.WriteLength(len(s.TypeParams)); err != nil {
		return err
	}
	for i := range s.TypeParams {
		if err := s.TypeParams[i].MarshalLCS(e); err != nil {
			return err
		}
	}
	return nil
}

func (s *StructTag) UnmarshalLCS(d *lcs.Decoder) error {
	return s.unmarshal(d, 1)
}

func (s *StructTag) unmarshal(d *lcs.Decoder, depth int) error {
	var err error
	if err := s.Address.UnmarshalLCS(d); err != nil {
		return err
	}
	if s.Module, err = d.ReadString(); err != nil {
		return err
	}
	if s.Name, err = d.ReadString(); err != nil {
		return err
	}
	count, err := d.ReadSequenceLength(4)
	if err != nil {
		return err
	}
	s.TypeParams = nil
	for range count {
		var param TypeTag
		if err := param.unmarshal(d, depth); err != nil {
			return err
		}
		s.TypeParams = append(s.TypeParams, param)
	}
	return nil
}
