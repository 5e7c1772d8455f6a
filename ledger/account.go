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

	"github.com/blinklabs-io/golibra/lcs"
)

const AuthenticationKeyLength = 32

// AccountResourcePath is the access path of the 0x0::LibraAccount::T resource
// inside an account state blob
var AccountResourcePath = mustDecodeHex(
	"01a208df134fefed8442b1f01fab59071898f5a1af5164e12c594de55a7004a91c",
)

// AccountResource is the on-chain record of an account. Field order follows the
// canonical layout of the Move resource
type AccountResource struct {
	AuthenticationKey              []byte
	Balance                        uint64
	DelegatedKeyRotationCapability bool
	DelegatedWithdrawalCapability  bool
	ReceivedEvents                 EventHandle
	SentEvents                     EventHandle
	SequenceNumber                 uint64
}

// DefaultAccountResource is returned for a blob that holds no account resource
func DefaultAccountResource() AccountResource {
	return AccountResource{
		AuthenticationKey: make([]byte, AuthenticationKeyLength),
		ReceivedEvents:    EventHandle{Key: make([]byte, AddressLength)},
		SentEvents:        EventHandle{Key: make([]byte, AddressLength)},
	}
}

func (r *AccountResource) MarshalLCS(e *lcs.Encoder) error {
	if err := e.WriteBytes(r.AuthenticationKey); err != nil {
		return err
	}
	e.WriteU64(r.Balance)
	e.WriteBool(r.DelegatedKeyRotationCapability)
	e.WriteBool(r.DelegatedWithdrawalCapability)
	if err := r.ReceivedEvents.MarshalLCS(e); err != nil {
		return err
	}
	if err := r.SentEvents.MarshalLCS(e); err != nil {
		return err
	}
	e.WriteU64(r.SequenceNumber)
	return nil
}

func (r *AccountResource) UnmarshalLCS(d *lcs.Decoder) error {
	var err error
	if r.AuthenticationKey, err = d.ReadBytes(); err != nil {
		return err
	}
	if r.Balance, err = d.ReadU64(); err != nil {
		return err
	}
	if r.DelegatedKeyRotationCapability, err = d.ReadBool(); err != nil {
		return err
	}
	if r.DelegatedWithdrawalCapability, err = d.ReadBool(); err != nil {
		return err
	}
	if err := r.ReceivedEvents.UnmarshalLCS(d); err != nil {
		return err
	}
	if err := r.SentEvents.UnmarshalLCS(d); err != nil {
		return err
	}
	r.SequenceNumber, err = d.ReadU64()
	return err
}

// AccountState is the decoded form of an account state blob: a map of access
// path to encoded resource
type AccountState map[string][]byte

func (s AccountState) MarshalLCS(e *lcs.Encoder) error {
	return e.WriteMap(s)
}

func (s *AccountState) UnmarshalLCS(d *lcs.Decoder) error {
	ret := AccountState{}
	err := d.ReadMap(func(key, value []byte) error {
		ret[string(key)] = value
		return nil
	})
	if err != nil {
		return err
	}
	*s = ret
	return nil
}

// AccountResource returns the account resource in the state, or the default
// resource when the state has none
func (s AccountState) AccountResource() (AccountResource, error) {
	data, ok := s[string(AccountResourcePath)]
	if !ok {
		return DefaultAccountResource(), nil
	}
	return lcs.DecodeRecord[AccountResource](data)
}

// SetAccountResource stores the encoded resource under its access path
func (s AccountState) SetAccountResource(r *AccountResource) error {
	data, err := lcs.Encode(r)
	if err != nil {
		return err
	}
	s[string(AccountResourcePath)] = data
	return nil
}

// AccountStateBlob is the canonical encoding of an AccountState
type AccountStateBlob []byte

// AccountResource decodes the blob and returns its account resource, or the
// default resource when the blob holds none
func (b AccountStateBlob) AccountResource() (AccountResource, error) {
	state, err := lcs.DecodeRecord[AccountState](b)
	if err != nil {
		return AccountResource{}, err
	}
	return state.AccountResource()
}

func mustDecodeHex(s string) []byte {
	ret, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return ret
}
