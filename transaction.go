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

package libra

import (
	"fmt"

	"github.com/blinklabs-io/golibra/lcs"
	"github.com/blinklabs-io/golibra/ledger"
)

type TransactionType int32

const (
	TransactionTypePeerToPeer TransactionType = 0
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypePeerToPeer:
		return "PeerToPeer"
	default:
		return fmt.Sprintf("TransactionType(%d)", int32(t))
	}
}

type P2PTransferArgument struct {
	Value   uint64
	Address [ledger.AddressLength]byte
}

type TransactionPayload struct {
	Type TransactionType
	Args P2PTransferArgument
}

// RawTransaction is the fixed-layout view of an unsigned transfer
type RawTransaction struct {
	Sender             [ledger.AddressLength]byte
	SequenceNumber     uint64
	Payload            TransactionPayload
	MaxGasAmount       uint64
	GasUnitPrice       uint64
	ExpirationTimeSecs uint64
}

// SignedTransaction is the fixed-layout view of a signed transfer
type SignedTransaction struct {
	RawTxn    RawTransaction
	PublicKey [ledger.PublicKeyLength]byte
	Signature [ledger.SignatureLength]byte
}

// TransferParams describes a peer-to-peer transfer. ExpirationTimeSecs is an
// absolute Unix timestamp in seconds
type TransferParams struct {
	Sender             []byte
	Receiver           []byte
	SequenceNumber     uint64
	Amount             uint64
	MaxGasAmount       uint64
	GasUnitPrice       uint64
	ExpirationTimeSecs uint64
}

func (p TransferParams) rawTransaction() (*ledger.RawTransaction, error) {
	sender, err := ledger.NewAccountAddress(p.Sender)
	if err != nil {
		return nil, invalidArgument("sender: %w", err)
	}
	receiver, err := ledger.NewAccountAddress(p.Receiver)
	if err != nil {
		return nil, invalidArgument("receiver: %w", err)
	}
	return ledger.NewTransferTransaction(
		sender,
		receiver,
		p.SequenceNumber,
		p.Amount,
		p.MaxGasAmount,
		p.GasUnitPrice,
		p.ExpirationTimeSecs,
	), nil
}

// BuildSignedTransaction builds the transfer described by params, signs it with
// privateKey and returns the encoded signed transaction
func BuildSignedTransaction(params TransferParams, privateKey []byte) ([]byte, error) {
	raw, err := params.rawTransaction()
	if err != nil {
		return nil, err
	}
	kp, err := ledger.NewKeyPair(privateKey)
	if err != nil {
		return nil, invalidArgument("%w", err)
	}
	signed, err := raw.Sign(kp)
	if err != nil {
		return nil, internalError("%w", err)
	}
	ret, err := lcs.Encode(signed)
	if err != nil {
		return nil, internalError("encode signed transaction: %w", err)
	}
	return ret, nil
}

// RawTransactionBytesFrom builds the transfer described by params and returns
// the encoded unsigned transaction
func RawTransactionBytesFrom(params TransferParams) ([]byte, error) {
	raw, err := params.rawTransaction()
	if err != nil {
		return nil, err
	}
	ret, err := lcs.Encode(raw)
	if err != nil {
		return nil, internalError("encode raw transaction: %w", err)
	}
	return ret, nil
}

// SignRawTransaction attaches an externally produced signature to an encoded
// raw transaction and returns the encoded signed transaction. The signature
// must verify against publicKey
func SignRawTransaction(rawTxn []byte, publicKey []byte, signature []byte) ([]byte, error) {
	if len(rawTxn) == 0 {
		return nil, invalidArgument("raw transaction is empty")
	}
	raw, err := lcs.DecodeRecord[ledger.RawTransaction](rawTxn)
	if err != nil {
		return nil, invalidArgument("decode raw transaction: %w", err)
	}
	signed := &ledger.SignedTransaction{
		RawTxn:    raw,
		PublicKey: publicKey,
		Signature: signature,
	}
	if err := signed.VerifySignature(); err != nil {
		return nil, invalidArgument("%w", err)
	}
	ret, err := lcs.Encode(signed)
	if err != nil {
		return nil, internalError("encode signed transaction: %w", err)
	}
	return ret, nil
}

// SignedTransactionFrom decodes an encoded signed transfer. The payload must be
// a script with exactly one u64 argument and exactly one address argument;
// arguments of other kinds are ignored
func SignedTransactionFrom(buf []byte) (SignedTransaction, error) {
	if len(buf) == 0 {
		return SignedTransaction{}, invalidArgument("signed transaction is empty")
	}
	signed, err := lcs.DecodeRecord[ledger.SignedTransaction](buf)
	if err != nil {
		return SignedTransaction{}, invalidArgument("decode signed transaction: %w", err)
	}
	payload, err := transferPayloadFrom(signed.RawTxn.Payload)
	if err != nil {
		return SignedTransaction{}, err
	}
	ret := SignedTransaction{
		RawTxn: RawTransaction{
			Sender:             signed.RawTxn.Sender,
			SequenceNumber:     signed.RawTxn.SequenceNumber,
			Payload:            payload,
			MaxGasAmount:       signed.RawTxn.MaxGasAmount,
			GasUnitPrice:       signed.RawTxn.GasUnitPrice,
			ExpirationTimeSecs: signed.RawTxn.ExpirationTime,
		},
	}
	if err := copyFixed(ret.PublicKey[:], signed.PublicKey, "public key"); err != nil {
		return SignedTransaction{}, err
	}
	if err := copyFixed(ret.Signature[:], signed.Signature, "signature"); err != nil {
		return SignedTransaction{}, err
	}
	return ret, nil
}

func transferPayloadFrom(p ledger.TransactionPayload) (TransactionPayload, error) {
	script, ok := p.(*ledger.ScriptPayload)
	if !ok {
		return TransactionPayload{}, invalidArgument(
			"unsupported %s payload, expected a transfer script",
			ledger.PayloadKindString(p),
		)
	}
	var amount *uint64
	var receiver *ledger.AccountAddress
	for _, arg := range script.Args {
		switch v := arg.(type) {
		case ledger.U64Argument:
			if amount != nil {
				return TransactionPayload{}, invalidArgument("transfer script has more than one u64 argument")
			}
			tmp := uint64(v)
			amount = &tmp
		case ledger.AddressArgument:
			if receiver != nil {
				return TransactionPayload{}, invalidArgument("transfer script has more than one address argument")
			}
			tmp := ledger.AccountAddress(v)
			receiver = &tmp
		}
	}
	if amount == nil {
		return TransactionPayload{}, invalidArgument("transfer script has no u64 argument")
	}
	if receiver == nil {
		return TransactionPayload{}, invalidArgument("transfer script has no address argument")
	}
	return TransactionPayload{
		Type: TransactionTypePeerToPeer,
		Args: P2PTransferArgument{Value: *amount, Address: *receiver},
	}, nil
}
