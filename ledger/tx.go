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
	"crypto/ed25519"
	"fmt"

	"github.com/blinklabs-io/golibra/lcs"
)

const (
	TransactionArgumentU64       uint32 = 0
	TransactionArgumentAddress   uint32 = 1
	TransactionArgumentString    uint32 = 2
	TransactionArgumentByteArray uint32 = 3
)

const (
	TransactionPayloadProgram  uint32 = 0
	TransactionPayloadWriteSet uint32 = 1
	TransactionPayloadScript   uint32 = 2
	TransactionPayloadModule   uint32 = 3
)

// Smallest encodings of sequence elements, used to bound decoded counts
const (
	minArgumentSize = 4 + 4
	minModuleSize   = 4
	minWriteOpSize  = 4 + AddressLength + 4 + 4
)

// TransactionArgument is one of U64Argument, AddressArgument, StringArgument or ByteArrayArgument
type TransactionArgument interface {
	lcs.Marshaler
	Variant() uint32
}

type U64Argument uint64

func (U64Argument) Variant() uint32 { return TransactionArgumentU64 }

func (a U64Argument) MarshalLCS(e *lcs.Encoder) error {
	e.WriteVariant(TransactionArgumentU64)
	e.WriteU64(uint64(a))
	return nil
}

type AddressArgument AccountAddress

func (AddressArgument) Variant() uint32 { return TransactionArgumentAddress }

func (a AddressArgument) MarshalLCS(e *lcs.Encoder) error {
	e.WriteVariant(TransactionArgumentAddress)
	return AccountAddress(a).MarshalLCS(e)
}

type StringArgument string

func (StringArgument) Variant() uint32 { return TransactionArgumentString }

func (a StringArgument) MarshalLCS(e *lcs.Encoder) error {
	e.WriteVariant(TransactionArgumentString)
	return e.WriteString(string(a))
}

type ByteArrayArgument []byte

func (ByteArrayArgument) Variant() uint32 { return TransactionArgumentByteArray }

func (a ByteArrayArgument) MarshalLCS(e *lcs.Encoder) error {
	e.WriteVariant(TransactionArgumentByteArray)
	return e.WriteBytes(a)
}

func decodeTransactionArgument(d *lcs.Decoder) (TransactionArgument, error) {
	start := d.Offset()
	variant, err := d.ReadVariant()
	if err != nil {
		return nil, err
	}
	switch variant {
	case TransactionArgumentU64:
		v, err := d.ReadU64()
		return U64Argument(v), err
	case TransactionArgumentAddress:
		var addr AccountAddress
		err := addr.UnmarshalLCS(d)
		return AddressArgument(addr), err
	case TransactionArgumentString:
		v, err := d.ReadString()
		return StringArgument(v), err
	case TransactionArgumentByteArray:
		v, err := d.ReadBytes()
		return ByteArrayArgument(v), err
	default:
		return nil, &lcs.DecodeError{
			Offset: start,
			Msg:    UnknownVariantError{Type: "transaction argument", Variant: variant}.Error(),
		}
	}
}

func encodeArguments(e *lcs.Encoder, args []TransactionArgument) error {
	if err := e.WriteLength(len(args)); err != nil {
		return err
	}
	for _, arg := range args {
		if err := arg.MarshalLCS(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeArguments(d *lcs.Decoder) ([]TransactionArgument, error) {
	count, err := d.ReadSequenceLength(minArgumentSize)
	if err != nil {
		return nil, err
	}
	ret := make([]TransactionArgument, 0, count)
	for range count {
		arg, err := decodeTransactionArgument(d)
		if err != nil {
			return nil, err
		}
		ret = append(ret, arg)
	}
	return ret, nil
}

// TransactionPayload is one of ProgramPayload, WriteSetPayload, ScriptPayload or ModulePayload
type TransactionPayload interface {
	lcs.Marshaler
	Variant() uint32
}

// ProgramPayload is the legacy program payload: code, arguments and modules to publish
type ProgramPayload struct {
	Code    []byte
	Args    []TransactionArgument
	Modules [][]byte
}

func (*ProgramPayload) Variant() uint32 { return TransactionPayloadProgram }

func (p *ProgramPayload) MarshalLCS(e *lcs.Encoder) error {
	e.WriteVariant(TransactionPayloadProgram)
	if err := e.WriteBytes(p.Code); err != nil {
		return err
	}
	if err := encodeArguments(e, p.Args); err != nil {
		return err
	}
	if err := e.WriteLength(len(p.Modules)); err != nil {
		return err
	}
	for _, m := range p.Modules {
		if err := e.WriteBytes(m); err != nil {
			return err
		}
	}
	return nil
}

func (p *ProgramPayload) unmarshal(d *lcs.Decoder) error {
	var err error
	if p.Code, err = d.ReadBytes(); err != nil {
		return err
	}
	if p.Args, err = decodeArguments(d); err != nil {
		return err
	}
	count, err := d.ReadSequenceLength(minModuleSize)
	if err != nil {
		return err
	}
	p.Modules = make([][]byte, 0, count)
	for range count {
		m, err := d.ReadBytes()
		if err != nil {
			return err
		}
		p.Modules = append(p.Modules, m)
	}
	return nil
}

type WriteOpKind uint32

const (
	WriteOpDeletion WriteOpKind = 0
	WriteOpValue    WriteOpKind = 1
)

// AccessPath locates a resource under an account
type AccessPath struct {
	Address AccountAddress
	Path    []byte
}

// WriteOp deletes or sets the value at an access path
type WriteOp struct {
	AccessPath AccessPath
	Kind       WriteOpKind
	Value      []byte
}

// WriteSetPayload applies a direct set of writes to the ledger
type WriteSetPayload struct {
	Ops []WriteOp
}

func (*WriteSetPayload) Variant() uint32 { return TransactionPayloadWriteSet }

func (w *WriteSetPayload) MarshalLCS(e *lcs.Encoder) error {
	e.WriteVariant(TransactionPayloadWriteSet)
	if err := e.WriteLength(len(w.Ops)); err != nil {
		return err
	}
	for _, op := range w.Ops {
		if err := op.AccessPath.Address.MarshalLCS(e); err != nil {
			return err
		}
		if err := e.WriteBytes(op.AccessPath.Path); err != nil {
			return err
		}
		e.WriteVariant(uint32(op.Kind))
		if op.Kind == WriteOpValue {
			if err := e.WriteBytes(op.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *WriteSetPayload) unmarshal(d *lcs.Decoder) error {
	count, err := d.ReadSequenceLength(minWriteOpSize)
	if err != nil {
		return err
	}
	w.Ops = make([]WriteOp, 0, count)
	for range count {
		var op WriteOp
		if err := op.AccessPath.Address.UnmarshalLCS(d); err != nil {
			return err
		}
		if op.AccessPath.Path, err = d.ReadBytes(); err != nil {
			return err
		}
		start := d.Offset()
		kind, err := d.ReadVariant()
		if err != nil {
			return err
		}
		op.Kind = WriteOpKind(kind)
		switch op.Kind {
		case WriteOpDeletion:
		case WriteOpValue:
			if op.Value, err = d.ReadBytes(); err != nil {
				return err
			}
		default:
			return &lcs.DecodeError{
				Offset: start,
				Msg:    UnknownVariantError{Type: "write op", Variant: kind}.Error(),
			}
		}
		w.Ops = append(w.Ops, op)
	}
	return nil
}

// ScriptPayload runs a transaction script with arguments
type ScriptPayload struct {
	Code []byte
	Args []TransactionArgument
}

func (*ScriptPayload) Variant() uint32 { return TransactionPayloadScript }

func (s *ScriptPayload) MarshalLCS(e *lcs.Encoder) error {
	e.WriteVariant(TransactionPayloadScript)
	if err := e.WriteBytes(s.Code); err != nil {
		return err
	}
	return encodeArguments(e, s.Args)
}

func (s *ScriptPayload) unmarshal(d *lcs.Decoder) error {
	var err error
	if s.Code, err = d.ReadBytes(); err != nil {
		return err
	}
	s.Args, err = decodeArguments(d)
	return err
}

// ModulePayload publishes a module
type ModulePayload struct {
	Code []byte
}

func (*ModulePayload) Variant() uint32 { return TransactionPayloadModule }

func (m *ModulePayload) MarshalLCS(e *lcs.Encoder) error {
	e.WriteVariant(TransactionPayloadModule)
	return e.WriteBytes(m.Code)
}

func decodeTransactionPayload(d *lcs.Decoder) (TransactionPayload, error) {
	start := d.Offset()
	variant, err := d.ReadVariant()
	if err != nil {
		return nil, err
	}
	switch variant {
	case TransactionPayloadProgram:
		ret := &ProgramPayload{}
		return ret, ret.unmarshal(d)
	case TransactionPayloadWriteSet:
		ret := &WriteSetPayload{}
		return ret, ret.unmarshal(d)
	case TransactionPayloadScript:
		ret := &ScriptPayload{}
		return ret, ret.unmarshal(d)
	case TransactionPayloadModule:
		code, err := d.ReadBytes()
		return &ModulePayload{Code: code}, err
	default:
		return nil, &lcs.DecodeError{
			Offset: start,
			Msg:    UnknownVariantError{Type: "transaction payload", Variant: variant}.Error(),
		}
	}
}

// RawTransaction is an unsigned transaction. ExpirationTime is an absolute Unix
// timestamp in seconds
type RawTransaction struct {
	Sender         AccountAddress
	SequenceNumber uint64
	Payload        TransactionPayload
	MaxGasAmount   uint64
	GasUnitPrice   uint64
	ExpirationTime uint64
}

func (r *RawTransaction) MarshalLCS(e *lcs.Encoder) error {
	if err := r.Sender.MarshalLCS(e); err != nil {
		return err
	}
	e.WriteU64(r.SequenceNumber)
	if r.Payload == nil {
		return &lcs.EncodeError{Msg: "raw transaction has no payload"}
	}
	if err := r.Payload.MarshalLCS(e); err != nil {
		return err
	}
	e.WriteU64(r.MaxGasAmount)
	e.WriteU64(r.GasUnitPrice)
	e.WriteU64(r.ExpirationTime)
	return nil
}

func (r *RawTransaction) UnmarshalLCS(d *lcs.Decoder) error {
	var err error
	if err := r.Sender.UnmarshalLCS(d); err != nil {
		return err
	}
	if r.SequenceNumber, err = d.ReadU64(); err != nil {
		return err
	}
	if r.Payload, err = decodeTransactionPayload(d); err != nil {
		return err
	}
	if r.MaxGasAmount, err = d.ReadU64(); err != nil {
		return err
	}
	if r.GasUnitPrice, err = d.ReadU64(); err != nil {
		return err
	}
	r.ExpirationTime, err = d.ReadU64()
	return err
}

// SignedTransaction is a raw transaction with the sender's public key and signature
type SignedTransaction struct {
	RawTxn    RawTransaction
	PublicKey ed25519.PublicKey
	Signature []byte
}

func (s *SignedTransaction) MarshalLCS(e *lcs.Encoder) error {
	if err := s.RawTxn.MarshalLCS(e); err != nil {
		return err
	}
	if err := e.WriteBytes(s.PublicKey); err != nil {
		return err
	}
	return e.WriteBytes(s.Signature)
}

func (s *SignedTransaction) UnmarshalLCS(d *lcs.Decoder) error {
	if err := s.RawTxn.UnmarshalLCS(d); err != nil {
		return err
	}
	pub, err := d.ReadBytes()
	if err != nil {
		return err
	}
	if len(pub) != ed25519.PublicKeySize {
		return &lcs.DecodeError{
			Offset: d.Offset(),
			Msg: LengthError{
				Field:    "public key",
				Expected: ed25519.PublicKeySize,
				Actual:   len(pub),
			}.Error(),
		}
	}
	sig, err := d.ReadBytes()
	if err != nil {
		return err
	}
	if len(sig) != ed25519.SignatureSize {
		return &lcs.DecodeError{
			Offset: d.Offset(),
			Msg: LengthError{
				Field:    "signature",
				Expected: ed25519.SignatureSize,
				Actual:   len(sig),
			}.Error(),
		}
	}
	s.PublicKey = ed25519.PublicKey(pub)
	s.Signature = sig
	return nil
}

// PayloadKindString returns a short human readable name for the payload kind
func PayloadKindString(p TransactionPayload) string {
	switch p.(type) {
	case *ProgramPayload:
		return "program"
	case *WriteSetPayload:
		return "write set"
	case *ScriptPayload:
		return "script"
	case *ModulePayload:
		return "module"
	default:
		return fmt.Sprintf("%T", p)
	}
}
