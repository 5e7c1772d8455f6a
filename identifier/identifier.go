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

// Package identifier implements LIP-5 style account identifiers and payment
// intent URIs. Identifiers carry the full 32-byte account address.
package identifier

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/blinklabs-io/golibra/ledger"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	MainnetHRP = "lbr"
	TestnetHRP = "tlb"

	// Version is the only identifier version understood
	Version byte = 1

	SubaddressLength = 8

	identifierLength = 1 + ledger.AddressLength + SubaddressLength
)

var (
	ErrUnknownHRP         = errors.New("unknown identifier prefix")
	ErrUnsupportedVersion = errors.New("unsupported identifier version")
)

// Subaddress distinguishes accounts that share an on-chain address. The zero
// value addresses the on-chain account itself
type Subaddress [SubaddressLength]byte

func NewSubaddress(b []byte) (Subaddress, error) {
	var ret Subaddress
	if len(b) != SubaddressLength {
		return ret, ledger.LengthError{
			Field:    "subaddress",
			Expected: SubaddressLength,
			Actual:   len(b),
		}
	}
	copy(ret[:], b)
	return ret, nil
}

func (s Subaddress) IsZero() bool {
	return s == Subaddress{}
}

func (s Subaddress) String() string {
	return hex.EncodeToString(s[:])
}

// AccountIdentifier names an account and an optional subaddress on one network
type AccountIdentifier struct {
	HRP        string
	Address    ledger.AccountAddress
	Subaddress Subaddress
}

func NewAccountIdentifier(
	hrp string,
	addr ledger.AccountAddress,
	sub Subaddress,
) (AccountIdentifier, error) {
	if err := checkHRP(hrp); err != nil {
		return AccountIdentifier{}, err
	}
	return AccountIdentifier{HRP: hrp, Address: addr, Subaddress: sub}, nil
}

// Encode returns the bech32 encoding of the identifier
func (a AccountIdentifier) Encode() (string, error) {
	if err := checkHRP(a.HRP); err != nil {
		return "", err
	}
	data := make([]byte, 0, identifierLength)
	data = append(data, Version)
	data = append(data, a.Address[:]...)
	data = append(data, a.Subaddress[:]...)
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert identifier to base32: %w", err)
	}
	return bech32.Encode(a.HRP, convData)
}

// String returns the bech32 encoding of the identifier, or an empty string if
// it has an unknown prefix
func (a AccountIdentifier) String() string {
	ret, err := a.Encode()
	if err != nil {
		return ""
	}
	return ret
}

// Decode parses a bech32 account identifier
func Decode(s string) (AccountIdentifier, error) {
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return AccountIdentifier{}, err
	}
	if err := checkHRP(hrp); err != nil {
		return AccountIdentifier{}, err
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return AccountIdentifier{}, err
	}
	if len(decoded) != identifierLength {
		return AccountIdentifier{}, ledger.LengthError{
			Field:    "account identifier",
			Expected: identifierLength,
			Actual:   len(decoded),
		}
	}
	if decoded[0] != Version {
		return AccountIdentifier{}, fmt.Errorf(
			"%w: %d",
			ErrUnsupportedVersion,
			decoded[0],
		)
	}
	ret := AccountIdentifier{HRP: hrp}
	copy(ret.Address[:], decoded[1:1+ledger.AddressLength])
	copy(ret.Subaddress[:], decoded[1+ledger.AddressLength:])
	return ret, nil
}

func checkHRP(hrp string) error {
	switch hrp {
	case MainnetHRP, TestnetHRP:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownHRP, hrp)
	}
}
