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
	"unsafe"

	libra "github.com/blinklabs-io/golibra"
	"github.com/blinklabs-io/golibra/ledger"
)

//export libra_LibraAccountResource_from
func libra_LibraAccountResource_from(
	buf *C.uint8_t,
	length C.size_t,
	out *C.struct_LibraAccountResource,
) C.int32_t {
	return guard("libra_LibraAccountResource_from", func() error {
		if out == nil {
			return invalidArgument("out is NULL")
		}
		blob, err := goBytes("buf", buf, length)
		if err != nil {
			return err
		}
		res, err := libra.AccountResourceFrom(blob)
		if err != nil {
			return err
		}
		*out = accountResourceToC(&res)
		return nil
	})
}

//export libra_LibraEvent_from
func libra_LibraEvent_from(
	bufKey *C.uint8_t,
	lenKey C.size_t,
	bufData *C.uint8_t,
	lenData C.size_t,
	bufTypeTag *C.uint8_t,
	lenTypeTag C.size_t,
	out *C.struct_LibraEvent,
) C.int32_t {
	return guard("libra_LibraEvent_from", func() error {
		if out == nil {
			return invalidArgument("out is NULL")
		}
		key, err := goBytes("key", bufKey, lenKey)
		if err != nil {
			return err
		}
		data, err := goBytes("data", bufData, lenData)
		if err != nil {
			return err
		}
		typeTag, err := goBytes("type tag", bufTypeTag, lenTypeTag)
		if err != nil {
			return err
		}
		ev, err := libra.EventFrom(key, data, typeTag)
		if err != nil {
			return err
		}
		*out = eventToC(&ev)
		return nil
	})
}

func transferParams(
	sender *C.uint8_t,
	receiver *C.uint8_t,
	sequence C.uint64_t,
	amount C.uint64_t,
	maxGasAmount C.uint64_t,
	gasUnitPrice C.uint64_t,
	expirationTimeSecs C.uint64_t,
) (libra.TransferParams, error) {
	senderBytes, err := fixedBytes("sender", sender, ledger.AddressLength)
	if err != nil {
		return libra.TransferParams{}, err
	}
	receiverBytes, err := fixedBytes("receiver", receiver, ledger.AddressLength)
	if err != nil {
		return libra.TransferParams{}, err
	}
	return libra.TransferParams{
		Sender:             senderBytes,
		Receiver:           receiverBytes,
		SequenceNumber:     uint64(sequence),
		Amount:             uint64(amount),
		MaxGasAmount:       uint64(maxGasAmount),
		GasUnitPrice:       uint64(gasUnitPrice),
		ExpirationTimeSecs: uint64(expirationTimeSecs),
	}, nil
}

//export libra_SignedTransactionBytes_from
func libra_SignedTransactionBytes_from(
	sender *C.uint8_t,
	receiver *C.uint8_t,
	sequence C.uint64_t,
	amount C.uint64_t,
	maxGasAmount C.uint64_t,
	gasUnitPrice C.uint64_t,
	expirationTimeSecs C.uint64_t,
	privateKey *C.uint8_t,
	buf **C.uint8_t,
	length *C.size_t,
) C.int32_t {
	return guard("libra_SignedTransactionBytes_from", func() error {
		params, err := transferParams(
			sender,
			receiver,
			sequence,
			amount,
			maxGasAmount,
			gasUnitPrice,
			expirationTimeSecs,
		)
		if err != nil {
			return err
		}
		key, err := fixedBytes("private key", privateKey, ledger.PrivateKeyLength)
		if err != nil {
			return err
		}
		if buf == nil || length == nil {
			return invalidArgument("output buffer pointer is NULL")
		}
		signed, err := libra.BuildSignedTransaction(params, key)
		if err != nil {
			return err
		}
		return outputBuffer(signed, buf, length)
	})
}

//export libra_RawTransactionBytes_from
func libra_RawTransactionBytes_from(
	sender *C.uint8_t,
	receiver *C.uint8_t,
	sequence C.uint64_t,
	amount C.uint64_t,
	maxGasAmount C.uint64_t,
	gasUnitPrice C.uint64_t,
	expirationTimeSecs C.uint64_t,
	buf **C.uint8_t,
	length *C.size_t,
) C.int32_t {
	return guard("libra_RawTransactionBytes_from", func() error {
		params, err := transferParams(
			sender,
			receiver,
			sequence,
			amount,
			maxGasAmount,
			gasUnitPrice,
			expirationTimeSecs,
		)
		if err != nil {
			return err
		}
		if buf == nil || length == nil {
			return invalidArgument("output buffer pointer is NULL")
		}
		raw, err := libra.RawTransactionBytesFrom(params)
		if err != nil {
			return err
		}
		return outputBuffer(raw, buf, length)
	})
}

//export libra_RawTransaction_sign
func libra_RawTransaction_sign(
	bufRawTxn *C.uint8_t,
	lenRawTxn C.size_t,
	bufPublicKey *C.uint8_t,
	lenPublicKey C.size_t,
	bufSignature *C.uint8_t,
	lenSignature C.size_t,
	bufResult **C.uint8_t,
	lenResult *C.size_t,
) C.int32_t {
	return guard("libra_RawTransaction_sign", func() error {
		raw, err := goBytes("raw transaction", bufRawTxn, lenRawTxn)
		if err != nil {
			return err
		}
		pub, err := goBytes("public key", bufPublicKey, lenPublicKey)
		if err != nil {
			return err
		}
		sig, err := goBytes("signature", bufSignature, lenSignature)
		if err != nil {
			return err
		}
		if bufResult == nil || lenResult == nil {
			return invalidArgument("output buffer pointer is NULL")
		}
		signed, err := libra.SignRawTransaction(raw, pub, sig)
		if err != nil {
			return err
		}
		return outputBuffer(signed, bufResult, lenResult)
	})
}

//export libra_free_bytes_buffer
func libra_free_bytes_buffer(buf *C.uint8_t) {
	if buf == nil {
		return
	}
	C.free(unsafe.Pointer(buf))
}

//export libra_LibraSignedTransaction_from
func libra_LibraSignedTransaction_from(
	buf *C.uint8_t,
	length C.size_t,
	out *C.struct_LibraSignedTransaction,
) C.int32_t {
	return guard("libra_LibraSignedTransaction_from", func() error {
		if out == nil {
			return invalidArgument("out is NULL")
		}
		data, err := goBytes("buf", buf, length)
		if err != nil {
			return err
		}
		signed, err := libra.SignedTransactionFrom(data)
		if err != nil {
			return err
		}
		*out = signedTransactionToC(&signed)
		return nil
	})
}

//export libra_LibraAccount_from
func libra_LibraAccount_from(
	privateKey *C.uint8_t,
	out *C.struct_LibraAccountKey,
) C.int32_t {
	return guard("libra_LibraAccount_from", func() error {
		if out == nil {
			return invalidArgument("out is NULL")
		}
		key, err := fixedBytes("private key", privateKey, ledger.PrivateKeyLength)
		if err != nil {
			return err
		}
		account, err := libra.AccountKeyFrom(key)
		if err != nil {
			return err
		}
		*out = accountKeyToC(&account)
		return nil
	})
}

//export libra_last_error_length
func libra_last_error_length() C.int32_t {
	return C.int32_t(currentSlot().Len())
}

//export libra_fetch_last_error
func libra_fetch_last_error(buf *C.char, capacity C.int32_t) C.int32_t {
	slot := currentSlot()
	if buf == nil || capacity <= 0 {
		return C.int32_t(slot.Fetch(nil))
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(capacity))
	return C.int32_t(slot.Fetch(dst))
}
