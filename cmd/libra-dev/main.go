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
	"log/slog"
	"os"
)

type globalFlags struct {
	flagset *flag.FlagSet
	debug   bool
	output  string
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	f.flagset.StringVar(
		&f.output,
		"output",
		outputJSON,
		"output format (json or cbor)",
	)
	return f
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(f.debug))

	if len(f.flagset.Args()) == 0 {
		fmt.Printf(
			"You must specify a subcommand (account-state, pubkey, address, build-txn, decode-txn, event, identifier or intent)\n",
		)
		os.Exit(1)
	}
	args := f.flagset.Args()[1:]
	var result any
	switch f.flagset.Arg(0) {
	case "account-state":
		result, err = runAccountState(args)
	case "pubkey":
		result, err = runPublicKey(args)
	case "address":
		result, err = runAddress(args)
	case "build-txn":
		result, err = runBuildTransaction(args)
	case "decode-txn":
		result, err = runDecodeTransaction(args)
	case "event":
		result, err = runEvent(args)
	case "identifier":
		result, err = runIdentifier(args)
	case "intent":
		result, err = runIntent(args)
	default:
		fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if err := writeOutput(os.Stdout, f.output, result); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
}
