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

package libra_test

import (
	"strings"
	"testing"

	libra "github.com/blinklabs-io/golibra"
	"github.com/blinklabs-io/golibra/internal/test"
	"github.com/blinklabs-io/golibra/lcs"
	"github.com/blinklabs-io/golibra/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventFixture struct {
	key     []byte
	data    []byte
	typeTag []byte
	owner   ledger.AccountAddress
	payee   ledger.AccountAddress
}

func newEventFixture(t *testing.T, module string, name string) eventFixture {
	t.Helper()
	owner, err := ledger.NewAccountAddress(test.FilledBytes(0xaa, ledger.AddressLength))
	require.NoError(t, err)
	payee, err := ledger.NewAccountAddress(test.FilledBytes(0xbb, ledger.AddressLength))
	require.NoError(t, err)
	key := ledger.NewEventKeyFromAddress(owner, 1)
	data, err := lcs.Encode(&ledger.PaymentEvent{
		Amount:       100000000,
		Counterparty: payee,
		Metadata:     []byte("memo"),
	})
	require.NoError(t, err)
	tag := ledger.NewStructTypeTag(ledger.StructTag{Module: module, Name: name})
	typeTag, err := lcs.Encode(&tag)
	require.NoError(t, err)
	return eventFixture{
		key:     key[:],
		data:    data,
		typeTag: typeTag,
		owner:   owner,
		payee:   payee,
	}
}

func TestEventFromSentPayment(t *testing.T) {
	f := newEventFixture(t, "LibraAccount", ledger.SentPaymentEventName)
	ev, err := libra.EventFrom(f.key, f.data, f.typeTag)
	require.NoError(t, err)
	assert.Equal(t, libra.EventKindSentPayment, ev.Kind)
	assert.Equal(t, f.owner[:], ev.Payment.SenderAddress[:])
	assert.Equal(t, f.payee[:], ev.Payment.ReceiverAddress[:])
	assert.Equal(t, uint64(100000000), ev.Payment.Amount)
	assert.Equal(t, "LibraAccount", ev.Payment.ModuleName())
}

func TestEventFromReceivedPayment(t *testing.T) {
	f := newEventFixture(t, "LibraAccount", ledger.ReceivedPaymentEventName)
	ev, err := libra.EventFrom(f.key, f.data, f.typeTag)
	require.NoError(t, err)
	assert.Equal(t, libra.EventKindReceivedPayment, ev.Kind)
	assert.Equal(t, f.payee[:], ev.Payment.SenderAddress[:])
	assert.Equal(t, f.owner[:], ev.Payment.ReceiverAddress[:])
	assert.Equal(t, uint64(100000000), ev.Payment.Amount)
}

func TestEventFromModuleName(t *testing.T) {
	testDefs := []struct {
		name    string
		module  string
		success bool
	}{
		{name: "fits with terminator", module: strings.Repeat("m", libra.ModuleNameCapacity-1), success: true},
		{name: "no room for terminator", module: strings.Repeat("m", libra.ModuleNameCapacity)},
		{name: "overflow", module: strings.Repeat("m", libra.ModuleNameCapacity+10)},
		{name: "interior NUL", module: "Libra\x00Account"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			f := newEventFixture(t, testDef.module, ledger.SentPaymentEventName)
			ev, err := libra.EventFrom(f.key, f.data, f.typeTag)
			if !testDef.success {
				require.Error(t, err)
				assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testDef.module, ev.Payment.ModuleName())
			assert.Equal(t, byte(0), ev.Payment.Module[libra.ModuleNameCapacity-1])
		})
	}
}

func TestEventFromInvalid(t *testing.T) {
	f := newEventFixture(t, "LibraAccount", ledger.SentPaymentEventName)
	u64Tag, err := lcs.Encode(&ledger.TypeTag{Kind: ledger.TypeTagU64})
	require.NoError(t, err)
	unknown := newEventFixture(t, "LibraAccount", "MintEvent")
	testDefs := []struct {
		name    string
		key     []byte
		data    []byte
		typeTag []byte
	}{
		{name: "short key", key: f.key[:ledger.EventKeyLength-1], data: f.data, typeTag: f.typeTag},
		{name: "long key", key: append(append([]byte{}, f.key...), 0x00), data: f.data, typeTag: f.typeTag},
		{name: "address sized key", key: f.owner[:], data: f.data, typeTag: f.typeTag},
		{name: "non-struct tag", key: f.key, data: f.data, typeTag: u64Tag},
		{name: "truncated tag", key: f.key, data: f.data, typeTag: f.typeTag[:len(f.typeTag)-1]},
		{name: "truncated data", key: f.key, data: f.data[:len(f.data)-1], typeTag: f.typeTag},
		{name: "trailing data", key: f.key, data: append(append([]byte{}, f.data...), 0x00), typeTag: f.typeTag},
		{name: "unknown event", key: unknown.key, data: unknown.data, typeTag: unknown.typeTag},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			ev, err := libra.EventFrom(testDef.key, testDef.data, testDef.typeTag)
			require.Error(t, err)
			assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err))
			assert.Equal(t, libra.Event{}, ev)
		})
	}
}

func TestEventFromUnknownNameIsQuoted(t *testing.T) {
	f := newEventFixture(t, "LibraAccount", "Sent\x00PaymentEvent")
	_, err := libra.EventFrom(f.key, f.data, f.typeTag)
	require.Error(t, err)
	assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err))
	assert.NotContains(t, err.Error(), "\x00")
	assert.Contains(t, err.Error(), `Sent\x00PaymentEvent`)
}

func TestEventKindValues(t *testing.T) {
	// values are shared with the LibraEventType enum of the C header
	assert.Equal(t, libra.EventKind(1), libra.EventKindSentPayment)
	assert.Equal(t, libra.EventKind(2), libra.EventKindReceivedPayment)
	assert.Equal(t, libra.EventKind(-1), libra.EventKindUndefined)
	assert.Equal(t, "Undefined", libra.EventKindUndefined.String())
}
