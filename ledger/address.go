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
	"crypto/ed25519"
	"encoding/hex"
	"strings"

	"github.com/blinklabs-io/golibra/lcs"
	"golang.org/x/crypto/sha3"
)

const AddressLength = 32

// AccountAddress identifies an account on the ledger
type AccountAddress [AddressLength]byte

// NewAccountAddress returns the address held in b, which must be exactly AddressLength bytes
func NewAccountAddress(b []byte) (AccountAddress, error) {
	var ret AccountAddress
	if len(b) != AddressLength {
		return ret, LengthError{
			Field:    "address",
			Expected: AddressLength,
			Actual:   len(b),
		}
	}
	copy(ret[:], b)
	return ret, nil
}

// NewAccountAddressFromHex parses a hex address with an optional 0x prefix
func NewAccountAddressFromHex(s string) (AccountAddress, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return AccountAddress{}, err
	}
	return NewAccountAddress(b)
}

// AccountAddressFromPublicKey derives the account address of an Ed25519 public key
func AccountAddressFromPublicKey(pub ed25519.PublicKey) AccountAddress {
	return AccountAddress(sha3.Sum256(pub))
}

func (a AccountAddress) Bytes() []byte {
	return a[:]
}

func (a AccountAddress) String() string {
	return hex.EncodeToString(a[:])
}

func (a AccountAddress) MarshalLCS(e *lcs.Encoder) error {
	return e.WriteBytes(a[:])
}

func (a *AccountAddress) UnmarshalLCS(d *lcs.Decoder) error {
	b, err := d.ReadBytes()
	if err != nil {
		return err
	}
	addr, err := NewAccountAddress(b)
	if err != nil {
		return &lcs.DecodeError{Offset: d.Offset(), Msg: err.Error()}
	}
	*a = addr
	return nil
}
