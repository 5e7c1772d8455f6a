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

// Package libra converts canonically encoded Libra records into fixed-layout
// views and builds signed peer-to-peer transfer transactions.
//
// Every operation returns a *Error carrying a Status on failure. Fixed-size
// fields such as addresses and keys are exposed as arrays so the views can be
// copied across a foreign call boundary unchanged.
package libra
