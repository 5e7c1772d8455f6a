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
#include <stdint.h>

static __thread uintptr_t libradev_last_error_slot;

uintptr_t libradev_get_last_error_slot(void) {
	return libradev_last_error_slot;
}

void libradev_set_last_error_slot(uintptr_t handle) {
	libradev_last_error_slot = handle;
}
*/
import "C"

import (
	"runtime/cgo"

	"github.com/blinklabs-io/golibra/lasterror"
)

// The thread-local definitions live here because a file with //export
// directives may only declare C functions in its preamble

// currentSlot returns the last error slot of the calling OS thread, creating it
// on first use. Calls from C run locked to the calling thread; Go callers must
// hold runtime.LockOSThread between setting and fetching an error
func currentSlot() *lasterror.Slot {
	if h := C.libradev_get_last_error_slot(); h != 0 {
		return cgo.Handle(h).Value().(*lasterror.Slot)
	}
	slot := lasterror.New()
	C.libradev_set_last_error_slot(C.uintptr_t(cgo.NewHandle(slot)))
	return slot
}
