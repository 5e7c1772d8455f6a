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

/*
#define LIBRADEV_NO_PROTOTYPES
#include "libradev.h"
*/
import "C"

import (
	"fmt"

	libra "github.com/blinklabs-io/golibra"
)

func cStatus(s libra.Status) C.int32_t {
	return C.int32_t(s)
}

// guard runs fn for the exported function op and converts its result into a
// status. Failures and recovered panics are logged and stored as the last
// error of the calling thread
func guard(op string, fn func() error) (status C.int32_t) {
	defer func() {
		if r := recover(); r != nil {
			status = fail(op, &libra.Error{
				Status: libra.StatusInternalError,
				Err:    fmt.Errorf("panic: %v", r),
			})
		}
	}()
	if err := fn(); err != nil {
		return fail(op, err)
	}
	return cStatus(libra.StatusOK)
}

func fail(op string, err error) C.int32_t {
	status := libra.StatusOf(err)
	logger.Debug(
		"call failed",
		"op", op,
		"status", status.String(),
		"error", err,
	)
	currentSlot().Set(fmt.Sprintf("%s: %s", op, err))
	return cStatus(status)
}

func invalidArgument(format string, args ...any) error {
	return &libra.Error{Status: libra.StatusInvalidArgument, Err: fmt.Errorf(format, args...)}
}
