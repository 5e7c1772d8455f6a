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

// Package lcs implements the Libra Canonical Serialization format used by every
// ledger record handled by this module.
//
// # Wire format
//
// The encoding is deterministic and schema driven:
//   - u8, u32 and u64 are fixed width, little endian
//   - bool is a single byte, 0x00 or 0x01
//   - byte arrays, strings and sequences carry a u32 length prefix
//   - enum variants carry a u32 variant tag followed by the variant body
//   - maps are a u32 entry count followed by key/value pairs, ordered by the
//     encoded bytes of the key
//
// # Usage
//
// Types opt in by implementing Marshaler and Unmarshaler:
//
//	func (h *EventHandle) MarshalLCS(e *lcs.Encoder) error {
//	    e.WriteU64(h.Count)
//	    return e.WriteBytes(h.Key)
//	}
//
// Decode and DecodeRecord reject trailing bytes, so a buffer either describes
// exactly one value or fails with an error matching ErrDecode. The decoder never
// reads past the end of its input and checks every length prefix against the
// remaining input before allocating.
package lcs
