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
	"bytes"
	"errors"
	"strings"

	"github.com/blinklabs-io/golibra/lcs"
	"github.com/blinklabs-io/golibra/ledger"
)

type EventKind int32

const (
	EventKindSentPayment     EventKind = 1
	EventKindReceivedPayment EventKind = 2

	// EventKindUndefined mirrors LIBRA_EVENT_UNDEFINED in the C header. EventFrom
	// never returns it; events that match no payment schema fail instead
	EventKindUndefined EventKind = -1
)

func (k EventKind) String() string {
	switch k {
	case EventKindSentPayment:
		return "SentPayment"
	case EventKindReceivedPayment:
		return "ReceivedPayment"
	default:
		return "Undefined"
	}
}

// ModuleNameCapacity is the size of the NUL terminated module name field
const ModuleNameCapacity = 255

// PaymentEvent is the fixed-layout view of a payment event
type PaymentEvent struct {
	SenderAddress   [ledger.AddressLength]byte
	ReceiverAddress [ledger.AddressLength]byte
	Amount          uint64
	Module          [ModuleNameCapacity]byte
}

// ModuleName returns the module name up to its NUL terminator
func (p *PaymentEvent) ModuleName() string {
	if i := bytes.IndexByte(p.Module[:], 0); i >= 0 {
		return string(p.Module[:i])
	}
	return string(p.Module[:])
}

type Event struct {
	Kind    EventKind
	Payment PaymentEvent
}

var errNoEventMatch = errors.New("event data matches no known payment event")

// paymentResolver interprets event data as one payment event schema. It
// returns the counterparty recorded in the event and the amount
type paymentResolver struct {
	kind    EventKind
	resolve func(tag *ledger.StructTag, data []byte) (ledger.AccountAddress, uint64, error)
}

// paymentResolvers are tried in order and the first match wins
var paymentResolvers = []paymentResolver{
	{
		kind: EventKindSentPayment,
		resolve: func(tag *ledger.StructTag, data []byte) (ledger.AccountAddress, uint64, error) {
			ev, err := ledger.DecodeSentPaymentEvent(tag, data)
			if err != nil {
				return ledger.AccountAddress{}, 0, err
			}
			return ev.Counterparty, ev.Amount, nil
		},
	},
	{
		kind: EventKindReceivedPayment,
		resolve: func(tag *ledger.StructTag, data []byte) (ledger.AccountAddress, uint64, error) {
			ev, err := ledger.DecodeReceivedPaymentEvent(tag, data)
			if err != nil {
				return ledger.AccountAddress{}, 0, err
			}
			return ev.Counterparty, ev.Amount, nil
		},
	},
}

// EventFrom resolves an event from its 40-byte key, its data and its encoded
// type tag. For a sent payment the key owner is the sender; for a received
// payment the key owner is the receiver
func EventFrom(key []byte, data []byte, typeTag []byte) (Event, error) {
	eventKey, err := ledger.NewEventKey(key)
	if err != nil {
		return Event{}, invalidArgument("%w", err)
	}
	tag, err := lcs.DecodeRecord[ledger.TypeTag](typeTag)
	if err != nil {
		return Event{}, invalidArgument("decode event type tag: %w", err)
	}
	if tag.Kind != ledger.TypeTagStruct || tag.Struct == nil {
		return Event{}, invalidArgument("event type tag is %s, not a struct", tag.Kind)
	}
	var ret Event
	if err := setModuleName(&ret.Payment, tag.Struct.Module); err != nil {
		return Event{}, err
	}
	owner := eventKey.Address()
	for _, r := range paymentResolvers {
		counterparty, amount, err := r.resolve(tag.Struct, data)
		if err != nil {
			continue
		}
		ret.Kind = r.kind
		ret.Payment.Amount = amount
		switch r.kind {
		case EventKindSentPayment:
			ret.Payment.SenderAddress = owner
			ret.Payment.ReceiverAddress = counterparty
		case EventKindReceivedPayment:
			ret.Payment.SenderAddress = counterparty
			ret.Payment.ReceiverAddress = owner
		}
		return ret, nil
	}
	return Event{}, invalidArgument("%w: %q", errNoEventMatch, tag.Struct.String())
}

func setModuleName(p *PaymentEvent, module string) error {
	if strings.IndexByte(module, 0) >= 0 {
		return invalidArgument("module name contains a NUL byte")
	}
	if len(module)+1 > ModuleNameCapacity {
		return invalidArgument(
			"module name of %d bytes does not fit in %d bytes with its terminator",
			len(module),
			ModuleNameCapacity,
		)
	}
	n := copy(p.Module[:], module)
	p.Module[n] = 0
	return nil
}
