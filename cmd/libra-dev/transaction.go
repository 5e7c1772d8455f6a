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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"time"

	libra "github.com/blinklabs-io/golibra"
)

type buildTransactionFlags struct {
	flagset    *flag.FlagSet
	sender     string
	receiver   string
	sequence   uint64
	amount     uint64
	maxGas     uint64
	gasPrice   uint64
	expiration uint64
	ttl        time.Duration
	privateKey string
}

func newBuildTransactionFlags() *buildTransactionFlags {
	f := &buildTransactionFlags{
		flagset: flag.NewFlagSet("build-txn", flag.ContinueOnError),
	}
	f.flagset.StringVar(&f.sender, "sender", "", "sender address hex")
	f.flagset.StringVar(&f.receiver, "receiver", "", "receiver address hex")
	f.flagset.Uint64Var(&f.sequence, "sequence", 0, "sender sequence number")
	f.flagset.Uint64Var(&f.amount, "amount", 0, "amount to transfer in microlibra")
	f.flagset.Uint64Var(&f.maxGas, "max-gas", 140000, "maximum gas amount")
	f.flagset.Uint64Var(&f.gasPrice, "gas-price", 0, "gas unit price")
	f.flagset.Uint64Var(
		&f.expiration,
		"expiration",
		0,
		"expiration time as a Unix timestamp in seconds. this overrides the -ttl option",
	)
	f.flagset.DurationVar(&f.ttl, "ttl", 10*time.Minute, "time until the transaction expires")
	f.flagset.StringVar(
		&f.privateKey,
		"private-key",
		"",
		"sender private key hex. the transaction is left unsigned when omitted",
	)
	return f
}

type buildTransactionResult struct {
	Signed      bool   `json:"signed"`
	Transaction string `json:"transaction"`
}

type transactionResult struct {
	Sender             string `json:"sender"`
	SequenceNumber     uint64 `json:"sequence_number"`
	TxnType            string `json:"txn_type"`
	Receiver           string `json:"receiver"`
	Amount             uint64 `json:"amount"`
	MaxGasAmount       uint64 `json:"max_gas_amount"`
	GasUnitPrice       uint64 `json:"gas_unit_price"`
	ExpirationTimeSecs uint64 `json:"expiration_time_secs"`
	PublicKey          string `json:"public_key"`
	Signature          string `json:"signature"`
}

func runBuildTransaction(args []string) (any, error) {
	f := newBuildTransactionFlags()
	if err := f.flagset.Parse(args); err != nil {
		return nil, err
	}
	sender, err := decodeHexArg("sender", f.sender)
	if err != nil {
		return nil, err
	}
	receiver, err := decodeHexArg("receiver", f.receiver)
	if err != nil {
		return nil, err
	}
	expiration := f.expiration
	if expiration == 0 {
		expiration = uint64(time.Now().Add(f.ttl).Unix())
	}
	params := libra.TransferParams{
		Sender:             sender,
		Receiver:           receiver,
		SequenceNumber:     f.sequence,
		Amount:             f.amount,
		MaxGasAmount:       f.maxGas,
		GasUnitPrice:       f.gasPrice,
		ExpirationTimeSecs: expiration,
	}
	slog.Debug(
		"building transfer",
		"sequence", params.SequenceNumber,
		"amount", params.Amount,
		"expiration", params.ExpirationTimeSecs,
	)
	if f.privateKey == "" {
		raw, err := libra.RawTransactionBytesFrom(params)
		if err != nil {
			return nil, err
		}
		return buildTransactionResult{Transaction: hex.EncodeToString(raw)}, nil
	}
	key, err := decodeHexArg("private key", f.privateKey)
	if err != nil {
		return nil, err
	}
	signed, err := libra.BuildSignedTransaction(params, key)
	if err != nil {
		return nil, err
	}
	return buildTransactionResult{Signed: true, Transaction: hex.EncodeToString(signed)}, nil
}

func runDecodeTransaction(args []string) (any, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%w: signed transaction hex", errMissingArgument)
	}
	buf, err := decodeHexArg("signed transaction", args[0])
	if err != nil {
		return nil, err
	}
	signed, err := libra.SignedTransactionFrom(buf)
	if err != nil {
		return nil, err
	}
	raw := &signed.RawTxn
	return transactionResult{
		Sender:             hex.EncodeToString(raw.Sender[:]),
		SequenceNumber:     raw.SequenceNumber,
		TxnType:            raw.Payload.Type.String(),
		Receiver:           hex.EncodeToString(raw.Payload.Args.Address[:]),
		Amount:             raw.Payload.Args.Value,
		MaxGasAmount:       raw.MaxGasAmount,
		GasUnitPrice:       raw.GasUnitPrice,
		ExpirationTimeSecs: raw.ExpirationTimeSecs,
		PublicKey:          hex.EncodeToString(signed.PublicKey[:]),
		Signature:          hex.EncodeToString(signed.Signature[:]),
	}, nil
}

func decodeHexArg(name string, value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: %s", errMissingArgument, name)
	}
	ret, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return ret, nil
}
