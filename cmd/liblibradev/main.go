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

// Command liblibradev builds the C ABI of the marshaling library.
//
//	go build -buildmode=c-shared -o liblibradev.so ./cmd/liblibradev
//
// The declarations callers compile against are in libradev.h.
package main

import "C"

import (
	"log/slog"
	"os"
	"strings"
)

const logLevelEnv = "LIBRADEV_LOG_LEVEL"

var logger = newLogger(os.Getenv(logLevelEnv))

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
	).With("component", "liblibradev")
}

func main() {}
