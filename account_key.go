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

// AccountKey is an account address with the key pair that controls it
type AccountKey struct {
	Address    [ledger.AddressLength]byte
	PrivateKey [ledger.PrivateKeyLength]byte
	PublicKey  [ledger.PublicKeyLength]byte
}

// AccountKeyFrom derives the public key and address of a 32-byte private key
func AccountKeyFrom(privateKey []byte) (AccountKey, error) {
	kp, err := ledger.NewKeyPair(privateKey)
	if err != nil {
		return AccountKey{}, invalidArgument("%w", err)
	}
	var ret AccountKey
	ret.Address = kp.Address()
	copy(ret.PrivateKey[:], kp.PrivateKey())
	copy(ret.PublicKey[:], kp.PublicKey())
	return ret, nil
}
