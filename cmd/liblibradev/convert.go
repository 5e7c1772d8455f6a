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
	"math"
	"unsafe"

	libra "github.com/blinklabs-io/golibra"
)

// goBytes returns a view of length bytes at ptr. The view is only valid for the
// duration of the call that received ptr
func goBytes(name string, ptr *C.uint8_t, length C.size_t) ([]byte, error) {
	if length == 0 {
		return nil, nil
	}
	if ptr == nil {
		return nil, invalidArgument("%s is NULL with length %d", name, uint64(length))
	}
	if uint64(length) > math.MaxInt32 {
		return nil, invalidArgument("%s length %d is too large", name, uint64(length))
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(length)), nil
}

// fixedBytes returns a view of a fixed-size C array argument
func fixedBytes(name string, ptr *C.uint8_t, length int) ([]byte, error) {
	if ptr == nil {
		return nil, invalidArgument("%s is NULL", name)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length), nil
}

// copyToC copies src into the C array starting at dst
func copyToC(dst *C.uint8_t, src []byte) {
	copy(unsafe.Slice((*byte)(unsafe.Pointer(dst)), len(src)), src)
}

// outputBuffer copies data into a malloc'd buffer owned by the caller
func outputBuffer(data []byte, buf **C.uint8_t, length *C.size_t) error {
	if buf == nil || length == nil {
		return invalidArgument("output buffer pointer is NULL")
	}
	*buf = (*C.uint8_t)(C.CBytes(data))
	*length = C.size_t(len(data))
	return nil
}

func eventHandleToC(h *libra.EventHandle) C.struct_LibraEventHandle {
	var ret C.struct_LibraEventHandle
	ret.count = C.uint64_t(h.Count)
	copyToC(&ret.key[0], h.Key[:])
	return ret
}

func accountResourceToC(r *libra.AccountResource) C.struct_LibraAccountResource {
	var ret C.struct_LibraAccountResource
	ret.balance = C.uint64_t(r.Balance)
	ret.sequence = C.uint64_t(r.Sequence)
	copyToC(&ret.authentication_key[0], r.AuthenticationKey[:])
	ret.delegated_key_rotation_capability = C.bool(r.DelegatedKeyRotationCapability)
	ret.delegated_withdrawal_capability = C.bool(r.DelegatedWithdrawalCapability)
	ret.sent_events = eventHandleToC(&r.SentEvents)
	ret.received_events = eventHandleToC(&r.ReceivedEvents)
	return ret
}

func eventToC(e *libra.Event) C.struct_LibraEvent {
	var ret C.struct_LibraEvent
	ret.event_type = C.int32_t(e.Kind)
	p := &ret.payment_event
	copyToC(&p.sender_address[0], e.Payment.SenderAddress[:])
	copyToC(&p.receiver_address[0], e.Payment.ReceiverAddress[:])
	p.amount = C.uint64_t(e.Payment.Amount)
	copyToC(&p.module[0], e.Payment.Module[:])
	return ret
}

func rawTransactionToC(r *libra.RawTransaction) C.struct_LibraRawTransaction {
	var ret C.struct_LibraRawTransaction
	copyToC(&ret.sender[0], r.Sender[:])
	ret.sequence_number = C.uint64_t(r.SequenceNumber)
	ret.payload.txn_type = C.int32_t(r.Payload.Type)
	ret.payload.args.value = C.uint64_t(r.Payload.Args.Value)
	copyToC(&ret.payload.args.address[0], r.Payload.Args.Address[:])
	ret.max_gas_amount = C.uint64_t(r.MaxGasAmount)
	ret.gas_unit_price = C.uint64_t(r.GasUnitPrice)
	ret.expiration_time_secs = C.uint64_t(r.ExpirationTimeSecs)
	return ret
}

func signedTransactionToC(s *libra.SignedTransaction) C.struct_LibraSignedTransaction {
	var ret C.struct_LibraSignedTransaction
	ret.raw_txn = rawTransactionToC(&s.RawTxn)
	copyToC(&ret.public_key[0], s.PublicKey[:])
	copyToC(&ret.signature[0], s.Signature[:])
	return ret
}

func accountKeyToC(k *libra.AccountKey) C.struct_LibraAccountKey {
	var ret C.struct_LibraAccountKey
	copyToC(&ret.address[0], k.Address[:])
	copyToC(&ret.private_key[0], k.PrivateKey[:])
	copyToC(&ret.public_key[0], k.PublicKey[:])
	return ret
}
