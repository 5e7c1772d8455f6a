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
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/golibra/lcs"
)

const (
	EventKeySaltLength = 8
	EventKeyLength     = EventKeySaltLength + AddressLength
)

// Struct names that identify payment event schemas in an event type tag
const (
	SentPaymentEventName     = "SentPaymentEvent"
	ReceivedPaymentEventName = "ReceivedPaymentEvent"
)

// EventKey identifies an event stream. It is a salt followed by the owning address
type EventKey [EventKeyLength]byte

func NewEventKey(b []byte) (EventKey, error) {
	var ret EventKey
	if len(b) != EventKeyLength {
		return ret, LengthError{
			Field:    "event key",
			Expected: EventKeyLength,
			Actual:   len(b),
		}
	}
	copy(ret[:], b)
	return ret, nil
}

// NewEventKeyFromAddress builds the key of the event stream with the given salt
func NewEventKeyFromAddress(addr AccountAddress, salt uint64) EventKey {
	var ret EventKey
	for i := range EventKeySaltLength {
		ret[i] = byte(salt >> (8 * i))
	}
	copy(ret[EventKeySaltLength:], addr[:])
	return ret
}

// Salt returns the leading salt bytes of the key
func (k EventKey) Salt() [EventKeySaltLength]byte {
	return [EventKeySaltLength]byte(k[:EventKeySaltLength])
}

// Address returns the address that owns the event stream
func (k EventKey) Address() AccountAddress {
	return AccountAddress(k[EventKeySaltLength:])
}

func (k EventKey) String() string {
	return hex.EncodeToString(k[:])
}

// EventHandle is a counter plus the key of an account's event stream
type EventHandle struct {
	Count uint64
	Key   []byte
}

func (h *EventHandle) MarshalLCS(e *lcs.Encoder) error {
	e.WriteU64(h.Count)
	return e.WriteBytes(h.Key)
}

func (h *EventHandle) UnmarshalLCS(d *lcs.Decoder) error {
	var err error
	if h.Count, err = d.ReadU64(); err != nil {
		return err
	}
	h.Key, err = d.ReadBytes()
	return err
}

// PaymentEvent is the body shared by sent and received payment events. Counterparty
// is the payee of a sent payment or the payer of a received one
type PaymentEvent struct {
	Amount       uint64
	Counterparty AccountAddress
	Metadata     []byte
}

func (p *PaymentEvent) MarshalLCS(e *lcs.Encoder) error {
	e.WriteU64(p.Amount)
	if err := p.Counterparty.MarshalLCS(e); err != nil {
		return err
	}
	return e.WriteBytes(p.Metadata)
}

func (p *PaymentEvent) UnmarshalLCS(d *lcs.Decoder) error {
	var err error
	if p.Amount, err = d.ReadU64(); err != nil {
		return err
	}
	if err := p.Counterparty.UnmarshalLCS(d); err != nil {
		return err
	}
	p.Metadata, err = d.ReadBytes()
	return err
}

// SentPaymentEvent is emitted on the sender's stream
type SentPaymentEvent struct {
	PaymentEvent
}

// ReceivedPaymentEvent is emitted on the receiver's stream
type ReceivedPaymentEvent struct {
	PaymentEvent
}

// DecodeSentPaymentEvent interprets data as a sent payment event. The type tag must
// name the sent payment schema
func DecodeSentPaymentEvent(tag *StructTag, data []byte) (*SentPaymentEvent, error) {
	if tag.Name != SentPaymentEventName {
		return nil, fmt.Errorf("type tag %s is not a sent payment event", tag)
	}
	var ret SentPaymentEvent
	if err := lcs.Decode(data, &ret.PaymentEvent); err != nil {
		return nil, err
	}
	return &ret, nil
}

// DecodeReceivedPaymentEvent interprets data as a received payment event. The type
// tag must name the received payment schema
func DecodeReceivedPaymentEvent(tag *StructTag, data []byte) (*ReceivedPaymentEvent, error) {
	if tag.Name != ReceivedPaymentEventName {
		return nil, fmt.Errorf("type tag %s is not a received payment event", tag)
	}
	var ret ReceivedPaymentEvent
	if err := lcs.Decode(data, &ret.PaymentEvent); err != nil {
		return nil, err
	}
	return &ret, nil
}

// ContractEvent is an event as stored on chain
type ContractEvent struct {
	Key            EventKey
	SequenceNumber uint64
	TypeTag        TypeTag
	EventData      []byte
}

func (c *ContractEvent) MarshalLCS(e *lcs.Encoder) error {
	if err := e.WriteBytes(c.Key[:]); err != nil {
		return err
	}
	e.WriteU64(c.SequenceNumber)
	if err := c.TypeTag.MarshalLCS(e); err != nil {
		return err
	}
	return e.WriteBytes(c.EventData)
}

func (c *ContractEvent) UnmarshalLCS(d *lcs.Decoder) error {
	keyBytes, err := d.ReadBytes()
	if err != nil {
		return err
	}
	if c.Key, err = NewEventKey(keyBytes); err != nil {
		return &lcs.DecodeError{Offset: d.Offset(), Msg: err.Error()}
	}
	if c.SequenceNumber, err = d.ReadU64(); err != nil {
		return err
	}
	if err := c.TypeTag.UnmarshalLCS(d); err != nil {
		return err
	}
	c.EventData, err = d.ReadBytes()
	return err
}
