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

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/golibra/identifier"
	"github.com/blinklabs-io/golibra/ledger"
	"github.com/blinklabs-io/golibra/textapi"
)

var errMissingArgument = errors.New("missing argument")

type publicKeyResult struct {
	PublicKey string `json:"public_key"`
}

type addressResult struct {
	Address    string `json:"address"`
	Identifier string `json:"identifier"`
}

func runAccountState(args []string) (any, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%w: account state blob hex", errMissingArgument)
	}
	state, err := textapi.AccountStateFrom(args[0])
	if err != nil {
		return nil, err
	}
	slog.Debug(
		"decoded account state",
		"balance", state.Balance,
		"sequence", state.Sequence,
	)
	return state, nil
}

func runPublicKey(args []string) (any, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%w: private key hex", errMissingArgument)
	}
	pub, err := textapi.PublicKeyHex(args[0])
	if err != nil {
		return nil, err
	}
	return publicKeyResult{PublicKey: pub}, nil
}

func runAddress(args []string) (any, error) {
	flagset := flag.NewFlagSet("address", flag.ContinueOnError)
	network := flagset.String("network", "mainnet", "network for the account identifier (mainnet or testnet)")
	if err := flagset.Parse(args); err != nil {
		return nil, err
	}
	if flagset.NArg() < 1 {
		return nil, fmt.Errorf("%w: private key hex", errMissingArgument)
	}
	hrp, err := networkHRP(*network)
	if err != nil {
		return nil, err
	}
	addrHex, err := textapi.AddressHex(flagset.Arg(0))
	if err != nil {
		return nil, err
	}
	addr, err := ledger.NewAccountAddressFromHex(addrHex)
	if err != nil {
		return nil, err
	}
	id, err := identifier.NewAccountIdentifier(hrp, addr, identifier.Subaddress{})
	if err != nil {
		return nil, err
	}
	encoded, err := id.Encode()
	if err != nil {
		return nil, err
	}
	return addressResult{Address: addrHex, Identifier: encoded}, nil
}
