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

// Package textapi exposes account key derivation and account state decoding
// over hex and JSON strings.
package textapi

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	libra "github.com/blinklabs-io/golibra"
	"github.com/jinzhu/copier"
)

// AccountState is the JSON form of an account resource. Field order and names
// are part of the output format
type AccountState struct {
	Balance                        uint64                               `json:"balance"`
	Sequence                       uint64                               `json:"sequence"`
	AuthenticationKey              [libra.AuthenticationKeyLength]uint8 `json:"authentication_key"`
	DelegatedKeyRotationCapability bool                                 `json:"delegated_key_rotation_capability"`
	DelegatedWithdrawalCapability  bool                                 `json:"delegated_withdrawal_capability"`
}

// PublicKeyHex returns the hex public key for a hex private key
func PublicKeyHex(privateKeyHex string) (string, error) {
	key, err := accountKey(privateKeyHex)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key.PublicKey[:]), nil
}

// AddressHex returns the hex account address for a hex private key
func AddressHex(privateKeyHex string) (string, error) {
	key, err := accountKey(privateKeyHex)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key.Address[:]), nil
}

// AccountStateFrom decodes a hex account state blob
func AccountStateFrom(blobHex string) (AccountState, error) {
	blob, err := decodeHex(blobHex)
	if err != nil {
		return AccountState{}, err
	}
	res, err := libra.AccountResourceFrom(blob)
	if err != nil {
		return AccountState{}, err
	}
	var ret AccountState
	if err := copier.Copy(&ret, &res); err != nil {
		return AccountState{}, fmt.Errorf("copy account resource: %w", err)
	}
	return ret, nil
}

// AccountStateJSON decodes a hex account state blob and returns its account
// resource as JSON
func AccountStateJSON(blobHex string) (string, error) {
	state, err := AccountStateFrom(blobHex)
	if err != nil {
		return "", err
	}
	ret, err := json.Marshal(&state)
	if err != nil {
		return "", err
	}
	return string(ret), nil
}

func accountKey(privateKeyHex string) (libra.AccountKey, error) {
	privateKey, err := decodeHex(privateKeyHex)
	if err != nil {
		return libra.AccountKey{}, err
	}
	return libra.AccountKeyFrom(privateKey)
}

func decodeHex(s string) ([]byte, error) {
	ret, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, &libra.Error{
			Status: libra.StatusInvalidArgument,
			Err:    fmt.Errorf("decode hex: %w", err),
		}
	}
	return ret, nil
}
