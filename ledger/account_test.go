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

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/golibra/internal/test"
	"github.com/blinklabs-io/golibra/internal/testdata"
	"github.com/blinklabs-io/golibra/lcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStateBlobFixture(t *testing.T) {
	blob := AccountStateBlob(testdata.AccountStateBlob())
	ar, err := blob.AccountResource()
	require.NoError(t, err)
	assert.Equal(t, testdata.AccountStateBalance, ar.Balance)
	assert.Equal(t, testdata.AccountStateSequence, ar.SequenceNumber)
	assert.Equal(t, testdata.AccountStateAuthKeyHex, hex.EncodeToString(ar.AuthenticationKey))
	assert.False(t, ar.DelegatedKeyRotationCapability)
	assert.False(t, ar.DelegatedWithdrawalCapability)
	assert.Equal(t, testdata.AccountStateReceivedCount, ar.ReceivedEvents.Count)
	assert.Equal(t, testdata.AccountStateReceivedKeyHex, hex.EncodeToString(ar.ReceivedEvents.Key))
	assert.Equal(t, testdata.AccountStateSentCount, ar.SentEvents.Count)
	assert.Equal(t, testdata.AccountStateSentKeyHex, hex.EncodeToString(ar.SentEvents.Key))
}

func TestAccountStateRoundTrip(t *testing.T) {
	ar := AccountResource{
		AuthenticationKey:              test.FilledBytes(0x11, AuthenticationKeyLength),
		Balance:                        987654321,
		DelegatedKeyRotationCapability: true,
		ReceivedEvents:                 EventHandle{Count: 3, Key: test.FilledBytes(0x22, 32)},
		SentEvents:                     EventHandle{Count: 4, Key: test.FilledBytes(0x33, 32)},
		SequenceNumber:                 123456789,
	}
	state := AccountState{"other": {0x01}}
	require.NoError(t, state.SetAccountResource(&ar))
	data, err := lcs.Encode(state)
	require.NoError(t, err)

	decoded, err := AccountStateBlob(data).AccountResource()
	require.NoError(t, err)
	assert.Equal(t, ar, decoded)
}

func TestAccountStateMissingResource(t *testing.T) {
	data, err := lcs.Encode(AccountState{})
	require.NoError(t, err)
	ar, err := AccountStateBlob(data).AccountResource()
	require.NoError(t, err)
	assert.Equal(t, DefaultAccountResource(), ar)
}

func TestAccountStateBlobTruncated(t *testing.T) {
	blob := testdata.AccountStateBlob()
	_, err := AccountStateBlob(blob[:len(blob)-1]).AccountResource()
	require.Error(t, err)
}
