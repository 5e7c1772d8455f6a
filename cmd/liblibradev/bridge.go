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

/*
#define LIBRADEV_NO_PROTOTYPES
#include "libradev.h"
#include <stdlib.h>
*/
import "C"

import (
	"bytes"
	"unsafe"

	libra "github.com/blinklabs-io/golibra"
)

// The helpers below drive the exported functions with Go values the way a C
// caller would, since test files cannot use cgo

// cBytes returns a malloc'd copy of b, or NULL for a nil b
func cBytes(b []byte) *C.uint8_t {
	if b == nil {
		return nil
	}
	return (*C.uint8_t)(C.CBytes(b))
}

func freeC(p *C.uint8_t) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

func goArray(p *C.uint8_t, n int) []byte {
	return C.GoBytes(unsafe.Pointer(p), C.int(n))
}

// takeBuffer copies a buffer returned by the library and releases it
func takeBuffer(buf *C.uint8_t, length C.size_t) []byte {
	if buf == nil {
		return nil
	}
	ret := C.GoBytes(unsafe.Pointer(buf), C.int(length))
	libra_free_bytes_buffer(buf)
	return ret
}

func eventHandleFromC(c *C.struct_LibraEventHandle) libra.EventHandle {
	ret := libra.EventHandle{Count: uint64(c.count)}
	copy(ret.Key[:], goArray(&c.key[0], len(ret.Key)))
	return ret
}

func accountResourceFromC(c *C.struct_LibraAccountResource) libra.AccountResource {
	ret := libra.AccountResource{
		Balance:                        uint64(c.balance),
		Sequence:                       uint64(c.sequence),
		DelegatedKeyRotationCapability: bool(c.delegated_key_rotation_capability),
		DelegatedWithdrawalCapability:  bool(c.delegated_withdrawal_capability),
		SentEvents:                     eventHandleFromC(&c.sent_events),
		ReceivedEvents:                 eventHandleFromC(&c.received_events),
	}
	copy(ret.AuthenticationKey[:], goArray(&c.authentication_key[0], len(ret.AuthenticationKey)))
	return ret
}

func eventFromC(c *C.struct_LibraEvent) libra.Event {
	ret := libra.Event{Kind: libra.EventKind(c.event_type)}
	p := &c.payment_event
	copy(ret.Payment.SenderAddress[:], goArray(&p.sender_address[0], len(ret.Payment.SenderAddress)))
	copy(ret.Payment.ReceiverAddress[:], goArray(&p.receiver_address[0], len(ret.Payment.ReceiverAddress)))
	ret.Payment.Amount = uint64(p.amount)
	copy(ret.Payment.Module[:], goArray(&p.module[0], len(ret.Payment.Module)))
	return ret
}

func signedTransactionFromC(c *C.struct_LibraSignedTransaction) libra.SignedTransaction {
	r := &c.raw_txn
	ret := libra.SignedTransaction{
		RawTxn: libra.RawTransaction{
			SequenceNumber: uint64(r.sequence_number),
			Payload: libra.TransactionPayload{
				Type: libra.TransactionType(r.payload.txn_type),
				Args: libra.P2PTransferArgument{Value: uint64(r.payload.args.value)},
			},
			MaxGasAmount:       uint64(r.max_gas_amount),
			GasUnitPrice:       uint64(r.gas_unit_price),
			ExpirationTimeSecs: uint64(r.expiration_time_secs),
		},
	}
	copy(ret.RawTxn.Sender[:], goArray(&r.sender[0], len(ret.RawTxn.Sender)))
	copy(ret.RawTxn.Payload.Args.Address[:], goArray(&r.payload.args.address[0], len(ret.RawTxn.Payload.Args.Address)))
	copy(ret.PublicKey[:], goArray(&c.public_key[0], len(ret.PublicKey)))
	copy(ret.Signature[:], goArray(&c.signature[0], len(ret.Signature)))
	return ret
}

func accountKeyFromC(c *C.struct_LibraAccountKey) libra.AccountKey {
	var ret libra.AccountKey
	copy(ret.Address[:], goArray(&c.address[0], len(ret.Address)))
	copy(ret.PrivateKey[:], goArray(&c.private_key[0], len(ret.PrivateKey)))
	copy(ret.PublicKey[:], goArray(&c.public_key[0], len(ret.PublicKey)))
	return ret
}

// callAccountResourceFrom passes the first length bytes of buf. A nil buf is
// passed as NULL
func callAccountResourceFrom(buf []byte, length int) (libra.AccountResource, libra.Status) {
	p := cBytes(buf)
	defer freeC(p)
	var out C.struct_LibraAccountResource
	status := libra_LibraAccountResource_from(p, C.size_t(length), &out)
	return accountResourceFromC(&out), libra.Status(status)
}

func callAccountResourceFromNilOut(buf []byte) libra.Status {
	p := cBytes(buf)
	defer freeC(p)
	return libra.Status(libra_LibraAccountResource_from(p, C.size_t(len(buf)), nil))
}

func callEventFrom(key []byte, data []byte, typeTag []byte) (libra.Event, libra.Status) {
	pKey, pData, pTag := cBytes(key), cBytes(data), cBytes(typeTag)
	defer freeC(pKey)
	defer freeC(pData)
	defer freeC(pTag)
	var out C.struct_LibraEvent
	status := libra_LibraEvent_from(
		pKey, C.size_t(len(key)),
		pData, C.size_t(len(data)),
		pTag, C.size_t(len(typeTag)),
		&out,
	)
	return eventFromC(&out), libra.Status(status)
}

// callSignedTransactionBytesFrom expects Sender, Receiver and privateKey to be
// nil or of their fixed C array size
func callSignedTransactionBytesFrom(p libra.TransferParams, privateKey []byte) ([]byte, libra.Status) {
	sender, receiver, key := cBytes(p.Sender), cBytes(p.Receiver), cBytes(privateKey)
	defer freeC(sender)
	defer freeC(receiver)
	defer freeC(key)
	var buf *C.uint8_t
	var length C.size_t
	status := libra_SignedTransactionBytes_from(
		sender,
		receiver,
		C.uint64_t(p.SequenceNumber),
		C.uint64_t(p.Amount),
		C.uint64_t(p.MaxGasAmount),
		C.uint64_t(p.GasUnitPrice),
		C.uint64_t(p.ExpirationTimeSecs),
		key,
		&buf,
		&length,
	)
	return takeBuffer(buf, length), libra.Status(status)
}

func callRawTransactionBytesFrom(p libra.TransferParams) ([]byte, libra.Status) {
	sender, receiver := cBytes(p.Sender), cBytes(p.Receiver)
	defer freeC(sender)
	defer freeC(receiver)
	var buf *C.uint8_t
	var length C.size_t
	status := libra_RawTransactionBytes_from(
		sender,
		receiver,
		C.uint64_t(p.SequenceNumber),
		C.uint64_t(p.Amount),
		C.uint64_t(p.MaxGasAmount),
		C.uint64_t(p.GasUnitPrice),
		C.uint64_t(p.ExpirationTimeSecs),
		&buf,
		&length,
	)
	return takeBuffer(buf, length), libra.Status(status)
}

func callRawTransactionSign(raw []byte, publicKey []byte, signature []byte) ([]byte, libra.Status) {
	pRaw, pPub, pSig := cBytes(raw), cBytes(publicKey), cBytes(signature)
	defer freeC(pRaw)
	defer freeC(pPub)
	defer freeC(pSig)
	var buf *C.uint8_t
	var length C.size_t
	status := libra_RawTransaction_sign(
		pRaw, C.size_t(len(raw)),
		pPub, C.size_t(len(publicKey)),
		pSig, C.size_t(len(signature)),
		&buf,
		&length,
	)
	return takeBuffer(buf, length), libra.Status(status)
}

func callSignedTransactionFrom(buf []byte, length int) (libra.SignedTransaction, libra.Status) {
	p := cBytes(buf)
	defer freeC(p)
	var out C.struct_LibraSignedTransaction
	status := libra_LibraSignedTransaction_from(p, C.size_t(length), &out)
	return signedTransactionFromC(&out), libra.Status(status)
}

func callAccountFrom(privateKey []byte) (libra.AccountKey, libra.Status) {
	p := cBytes(privateKey)
	defer freeC(p)
	var out C.struct_LibraAccountKey
	status := libra_LibraAccount_from(p, &out)
	return accountKeyFromC(&out), libra.Status(status)
}

func callFreeBytesBuffer(b []byte) {
	libra_free_bytes_buffer(cBytes(b))
}

func callLastErrorLength() int32 {
	return int32(libra_last_error_length())
}

// callFetchLastError fetches into a buffer of capacity bytes prefilled with
// 0xff, or NULL when capacity is negative. It returns the result, the message
// up to its terminator and whether the buffer was left untouched
func callFetchLastError(capacity int) (int32, string, bool) {
	if capacity < 0 {
		return int32(libra_fetch_last_error(nil, C.int32_t(-capacity))), "", true
	}
	fill := bytes.Repeat([]byte{0xff}, capacity)
	buf := (*C.char)(C.CBytes(fill))
	defer C.free(unsafe.Pointer(buf))
	ret := int32(libra_fetch_last_error(buf, C.int32_t(capacity)))
	out := C.GoBytes(unsafe.Pointer(buf), C.int(capacity))
	msg := out
	if i := bytes.IndexByte(out, 0); i >= 0 {
		msg = out[:i]
	}
	return ret, string(msg), bytes.Equal(out, fill)
}

func callGuard(fn func() error) libra.Status {
	return libra.Status(guard("test", fn))
}
