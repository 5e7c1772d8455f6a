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
	"errors"
	"fmt"
)

// Status is the result code of every operation
type Status int32

const (
	StatusOK              Status = 0
	StatusInvalidArgument Status = -1
	StatusInternalError   Status = -255
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusInvalidArgument:
		return "InvalidArgument"
	case StatusInternalError:
		return "InternalError"
	default:
		return fmt.Sprintf("Status(%d)", int32(s))
	}
}

// Error is a failed operation and the status it reports
type Error struct {
	Status Status
	Err    error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusOf returns the status carried by err. A nil err is StatusOK and an
// error without a status is StatusInternalError
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return StatusInternalError
}

func invalidArgument(format string, args ...any) error {
	return &Error{Status: StatusInvalidArgument, Err: fmt.Errorf(format, args...)}
}

func internalError(format string, args ...any) error {
	return &Error{Status: StatusInternalError, Err: fmt.Errorf(format, args...)}
}
