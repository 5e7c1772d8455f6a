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

package ledger

// PeerToPeerTransferCode is the compiled peer to peer transfer transaction script
var PeerToPeerTransferCode = []byte{
	0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00, 0x07, 0x01, 0x00, 0x02,
	0x02, 0x02, 0x04, 0x03, 0x06, 0x10, 0x04, 0x16, 0x02, 0x05, 0x18, 0x1d,
	0x07, 0x35, 0x61, 0x08, 0x96, 0x01, 0x10, 0x00, 0x00, 0x00, 0x01, 0x01,
	0x00, 0x00, 0x02, 0x00, 0x01, 0x00, 0x00, 0x03, 0x02, 0x03, 0x01, 0x01,
	0x00, 0x04, 0x01, 0x03, 0x00, 0x01, 0x05, 0x01, 0x06, 0x0c, 0x01, 0x08,
	0x00, 0x05, 0x06, 0x08, 0x00, 0x05, 0x03, 0x0a, 0x02, 0x0a, 0x02, 0x00,
	0x05, 0x06, 0x0c, 0x05, 0x03, 0x0a, 0x02, 0x0a, 0x02, 0x01, 0x09, 0x00,
	0x0c, 0x4c, 0x69, 0x62, 0x72, 0x61, 0x41, 0x63, 0x63, 0x6f, 0x75, 0x6e,
	0x74, 0x12, 0x57, 0x69, 0x74, 0x68, 0x64, 0x72, 0x61, 0x77, 0x43, 0x61,
	0x70, 0x61, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x1b, 0x65, 0x78, 0x74,
	0x72, 0x61, 0x63, 0x74, 0x5f, 0x77, 0x69, 0x74, 0x68, 0x64, 0x72, 0x61,
	0x77, 0x5f, 0x63, 0x61, 0x70, 0x61, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79,
	0x08, 0x70, 0x61, 0x79, 0x5f, 0x66, 0x72, 0x6f, 0x6d, 0x1b, 0x72, 0x65,
	0x73, 0x74, 0x6f, 0x72, 0x65, 0x5f, 0x77, 0x69, 0x74, 0x68, 0x64, 0x72,
	0x61, 0x77, 0x5f, 0x63, 0x61, 0x70, 0x61, 0x62, 0x69, 0x6c, 0x69, 0x74,
	0x79, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x01, 0x04, 0x01, 0x0c, 0x0b, 0x00,
	0x11, 0x00, 0x0c, 0x05, 0x0e, 0x05, 0x0a, 0x01, 0x0a, 0x02, 0x0b, 0x03,
	0x0b, 0x04, 0x38, 0x00, 0x0b, 0x05, 0x11, 0x02, 0x02,
}

// EncodeTransferScript returns the script that moves amount from the sender to receiver
func EncodeTransferScript(receiver AccountAddress, amount uint64) *ScriptPayload {
	return &ScriptPayload{
		Code: append([]byte(nil), PeerToPeerTransferCode...),
		Args: []TransactionArgument{
			AddressArgument(receiver),
			U64Argument(amount),
		},
	}
}

// NewTransferTransaction assembles an unsigned transfer from sender to receiver
func NewTransferTransaction(
	sender AccountAddress,
	receiver AccountAddress,
	sequenceNumber uint64,
	amount uint64,
	maxGasAmount uint64,
	gasUnitPrice uint64,
	expirationTimeSecs uint64,
) *RawTransaction {
	return &RawTransaction{
		Sender:         sender,
		SequenceNumber: sequenceNumber,
		Payload:        EncodeTransferScript(receiver, amount),
		MaxGasAmount:   maxGasAmount,
		GasUnitPrice:   gasUnitPrice,
		ExpirationTime: expirationTimeSecs,
	}
}
