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
	"testing"

	"github.com/blinklabs-io/golibra/internal/test"
	"github.com/blinklabs-io/golibra/lcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventKey(t *testing.T) {
	addr, err := NewAccountAddress(test.FilledBytes(0xaa, AddressLength))
	require.NoError(t, err)
	key := NewEventKeyFromAddress(addr, 0x0102)
	assert.Equal(t, [EventKeySaltLength]byte{0x02, 0x01}, key.Salt())
	assert.Equal(t, addr, key.Address())

	parsed, err := NewEventKey(key[:])
	require.NoError(t, err)
	assert.Equal(t, key, parsed)

	_, err = NewEventKey(key[:EventKeyLength-1])
	require.Error(t, err)
}

func paymentTag(name string) *StructTag {
	return &StructTag{Module: "LibraAccount", Name: name}
}

func TestDecodePaymentEvents(t *testing.T) {
	payee, err := NewAccountAddress(test.FilledBytes(0xbb, AddressLength))
	require.NoError(t, err)
	data, err := lcs.Encode(&PaymentEvent{Amount: 50000000, Counterparty: payee})
	require.NoError(t, err)

	sent, err := DecodeSentPaymentEvent(paymentTag(SentPaymentEventName), data)
	require.NoError(t, err)
	assert.Equal(t, uint64(50000000), sent.Amount)
	assert.Equal(t, payee, sent.Counterparty)

	_, err = DecodeSentPaymentEvent(paymentTag(ReceivedPaymentEventName), data)
	require.Error(t, err)

	received, err := DecodeReceivedPaymentEvent(paymentTag(ReceivedPaymentEventName), data)
	require.NoError(t, err)
	assert.Equal(t, payee, received.Counterparty)

	_, err = DecodeReceivedPaymentEvent(paymentTag(ReceivedPaymentEventName), data[:len(data)-1])
	require.Error(t, err)
}

func TestContractEventRoundTrip(t *testing.T) {
	addr, err := NewAccountAddress(test.FilledBytes(0xcc, AddressLength))
	require.NoError(t, err)
	ev := ContractEvent{
		Key:            NewEventKeyFromAddress(addr, 0),
		SequenceNumber: 7,
		TypeTag:        NewStructTypeTag(*paymentTag(SentPaymentEventName)),
		EventData:      []byte{0x01, 0x02},
	}
	data, err := lcs.Encode(&ev)
	require.NoError(t, err)
	decoded, err := lcs.DecodeRecord[ContractEvent](data)
	require.NoError(t, err)
	assert.Equal(t, ev.Key, decoded.Key)
	assert.Equal(t, ev.SequenceNumber, decoded.SequenceNumber)
	assert.Equal(t, ev.TypeTag.String(), decoded.TypeTag.String())
	assert.Equal(t, ev.EventData, decoded.EventData)
}
