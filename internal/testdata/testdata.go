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

// Package testdata provides shared canonical record fixtures for tests.
package testdata

import (
	_ "embed"
	"encoding/hex"
	"strings"
)

// Account state blob captured from testnet. It holds two resources; the account
// resource has balance 100000000000, sequence number 1, 2 received events and 1
// sent event
//
//go:embed account_state_blob.hex
var AccountStateBlobHex string

// Values held by the account resource in AccountStateBlobHex
const (
	AccountStateBalance           uint64 = 100000000000
	AccountStateSequence          uint64 = 1
	AccountStateAuthKeyHex               = "36ccb9ba8b4f0cd1f3e2d99338806893dff7478c69acee9b8e1247c053783a48"
	AccountStateReceivedCount     uint64 = 2
	AccountStateReceivedKeyHex           = "0b14ed4f5af8f8f077c7ec4313c6d395b9a7eb5f41eab9ec15367215ca9e420a"
	AccountStateSentCount         uint64 = 1
	AccountStateSentKeyHex               = "32f56f77b09773aa64c78ee39943da7ec73f91cd757e325098e11b3edc4eccb1"
)

// AccountStateBlob returns the decoded bytes of AccountStateBlobHex
func AccountStateBlob() []byte {
	ret, err := hex.DecodeString(strings.TrimSpace(AccountStateBlobHex))
	if err != nil {
		panic(err)
	}
	return ret
}
