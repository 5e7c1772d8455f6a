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
	"encoding/hex"
	"flag"

	libra "github.com/blinklabs-io/golibra"
)

type eventResult struct {
	Kind     string `json:"kind"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
	Module   string `json:"module"`
}

func runEvent(args []string) (any, error) {
	flagset := flag.NewFlagSet("event", flag.ContinueOnError)
	keyHex := flagset.String("key", "", "event key hex")
	dataHex := flagset.String("data", "", "event data hex")
	typeTagHex := flagset.String("type-tag", "", "encoded event type tag hex")
	if err := flagset.Parse(args); err != nil {
		return nil, err
	}
	key, err := decodeHexArg("key", *keyHex)
	if err != nil {
		return nil, err
	}
	data, err := decodeHexArg("data", *dataHex)
	if err != nil {
		return nil, err
	}
	typeTag, err := decodeHexArg("type tag", *typeTagHex)
	if err != nil {
		return nil, err
	}
	ev, err := libra.EventFrom(key, data, typeTag)
	if err != nil {
		return nil, err
	}
	return eventResult{
		Kind:     ev.Kind.String(),
		Sender:   hex.EncodeToString(ev.Payment.SenderAddress[:]),
		Receiver: hex.EncodeToString(ev.Payment.ReceiverAddress[:]),
		Amount:   ev.Payment.Amount,
		Module:   ev.Payment.ModuleName(),
	}, nil
}
