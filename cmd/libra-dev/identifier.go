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
	"flag"
	"fmt"

	"github.com/blinklabs-io/golibra/identifier"
	"github.com/blinklabs-io/golibra/ledger"
)

type identifierResult struct {
	Identifier string  `json:"identifier"`
	Network    string  `json:"network"`
	Address    string  `json:"address"`
	Subaddress string  `json:"subaddress"`
	Currency   string  `json:"currency,omitempty"`
	Amount     *uint64 `json:"amount,omitempty"`
}

func networkHRP(network string) (string, error) {
	switch network {
	case "mainnet":
		return identifier.MainnetHRP, nil
	case "testnet":
		return identifier.TestnetHRP, nil
	default:
		return "", fmt.Errorf("unknown network: %s", network)
	}
}

func hrpNetwork(hrp string) string {
	if hrp == identifier.TestnetHRP {
		return "testnet"
	}
	return "mainnet"
}

func newIdentifierResult(id identifier.AccountIdentifier) (identifierResult, error) {
	encoded, err := id.Encode()
	if err != nil {
		return identifierResult{}, err
	}
	return identifierResult{
		Identifier: encoded,
		Network:    hrpNetwork(id.HRP),
		Address:    id.Address.String(),
		Subaddress: id.Subaddress.String(),
	}, nil
}

// runIdentifier decodes an account identifier, or encodes one from -address
func runIdentifier(args []string) (any, error) {
	flagset := flag.NewFlagSet("identifier", flag.ContinueOnError)
	network := flagset.String("network", "mainnet", "network to encode for (mainnet or testnet)")
	address := flagset.String("address", "", "account address hex to encode")
	subaddress := flagset.String("subaddress", "", "subaddress hex to encode")
	if err := flagset.Parse(args); err != nil {
		return nil, err
	}
	if *address == "" {
		if flagset.NArg() < 1 {
			return nil, fmt.Errorf("%w: account identifier or -address", errMissingArgument)
		}
		id, err := identifier.Decode(flagset.Arg(0))
		if err != nil {
			return nil, err
		}
		return newIdentifierResult(id)
	}
	hrp, err := networkHRP(*network)
	if err != nil {
		return nil, err
	}
	addr, err := ledger.NewAccountAddressFromHex(*address)
	if err != nil {
		return nil, err
	}
	var sub identifier.Subaddress
	if *subaddress != "" {
		subBytes, err := decodeHexArg("subaddress", *subaddress)
		if err != nil {
			return nil, err
		}
		if sub, err = identifier.NewSubaddress(subBytes); err != nil {
			return nil, err
		}
	}
	id, err := identifier.NewAccountIdentifier(hrp, addr, sub)
	if err != nil {
		return nil, err
	}
	return newIdentifierResult(id)
}

func runIntent(args []string) (any, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%w: intent URI", errMissingArgument)
	}
	intent, err := identifier.DecodeIntent(args[0])
	if err != nil {
		return nil, err
	}
	ret, err := newIdentifierResult(intent.Account)
	if err != nil {
		return nil, err
	}
	ret.Currency = intent.Currency
	ret.Amount = intent.Amount
	return ret, nil
}
