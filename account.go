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
	"github.com/blinklabs-io/golibra/ledger"
)

const (
	AuthenticationKeyLength = ledger.AuthenticationKeyLength
	EventHandleKeyLength    = 32
)

type EventHandle struct {
	Count uint64
	Key   [EventHandleKeyLength]byte
}

// AccountResource is the fixed-layout view of an account resource
type AccountResource struct {
	Balance                        uint64
	Sequence                       uint64
	AuthenticationKey              [AuthenticationKeyLength]byte
	DelegatedKeyRotationCapability bool
	DelegatedWithdrawalCapability  bool
	SentEvents                     EventHandle
	ReceivedEvents                 EventHandle
}

// AccountResourceFrom decodes an account state blob and returns the view of its
// account resource. A blob without an account resource yields the default
// resource
func AccountResourceFrom(blob []byte) (AccountResource, error) {
	if len(blob) == 0 {
		return AccountResource{}, invalidArgument("account state blob is empty")
	}
	res, err := ledger.AccountStateBlob(blob).AccountResource()
	if err != nil {
		return AccountResource{}, invalidArgument("decode account state blob: %w", err)
	}
	ret := AccountResource{
		Balance:                        res.Balance,
		Sequence:                       res.SequenceNumber,
		DelegatedKeyRotationCapability: res.DelegatedKeyRotationCapability,
		DelegatedWithdrawalCapability:  res.DelegatedWithdrawalCapability,
	}
	if err := copyFixed(ret.AuthenticationKey[:], res.AuthenticationKey, "authentication key"); err != nil {
		return AccountResource{}, err
	}
	if ret.SentEvents, err = eventHandleFrom(res.SentEvents, "sent events"); err != nil {
		return AccountResource{}, err
	}
	if ret.ReceivedEvents, err = eventHandleFrom(res.ReceivedEvents, "received events"); err != nil {
		return AccountResource{}, err
	}
	return ret, nil
}

func eventHandleFrom(h ledger.EventHandle, field string) (EventHandle, error) {
	ret := EventHandle{Count: h.Count}
	if err := copyFixed(ret.Key[:], h.Key, field+" key"); err != nil {
		return EventHandle{}, err
	}
	return ret, nil
}

// copyFixed copies src into the fixed-size dest, failing unless the lengths match
func copyFixed(dest []byte, src []byte, field string) error {
	if len(src) != len(dest) {
		return invalidArgument(
			"%w",
			ledger.LengthError{Field: field, Expected: len(dest), Actual: len(src)},
		)
	}
	copy(dest, src)
	return nil
}
