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

// Package lasterror holds the pending error message reported across a foreign
// call boundary. A Slot holds at most one message: every failure overwrites it
// and a successful retrieval clears it.
//
// A Slot is not safe for concurrent use. Callers keep one Slot per calling
// thread.
package lasterror

// Slot holds at most one pending error message
type Slot struct {
	msg     string
	pending bool
}

func New() *Slot {
	return &Slot{}
}

// Set replaces any pending message with msg
func (s *Slot) Set(msg string) {
	s.msg = msg
	s.pending = true
}

// SetError replaces any pending message with the text of err. A nil err clears
// the slot
func (s *Slot) SetError(err error) {
	if err == nil {
		s.Clear()
		return
	}
	s.Set(err.Error())
}

func (s *Slot) Clear() {
	s.msg = ""
	s.pending = false
}

func (s *Slot) Pending() bool {
	return s.pending
}

// Len returns the number of bytes needed to fetch the pending message,
// including the NUL terminator, or 0 if nothing is pending
func (s *Slot) Len() int {
	if !s.pending {
		return 0
	}
	return len(s.msg) + 1
}

// Fetch copies the pending message and a NUL terminator into buf and clears
// the slot, returning the number of bytes written. It returns 0 if nothing is
// pending. If buf is too small it returns the negated required length, leaves
// buf untouched and keeps the message pending
func (s *Slot) Fetch(buf []byte) int {
	required := s.Len()
	if required == 0 {
		return 0
	}
	if len(buf) < required {
		return -required
	}
	n := copy(buf, s.msg)
	buf[n] = 0
	s.Clear()
	return required
}

// Take returns and clears the pending message
func (s *Slot) Take() (string, bool) {
	if !s.pending {
		return "", false
	}
	msg := s.msg
	s.Clear()
	return msg, true
}
