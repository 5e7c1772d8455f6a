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
	"github.com/blinklabs-io/golibra/lcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestRawTransactionHashPrefix(t *testing.T) {
	assert.Equal(
		t,
		"46f174df6ca8de5ad29745f91584bb913e7df8dd162e3e921a5c1d8637c88d16",
		hex.EncodeToString(rawTransactionHashPrefix[:]),
	)
}

func TestRawTransactionHash(t *testing.T) {
	raw := NewTransferTransaction(testAddress(t, 0x01), testAddress(t, 0x02), 0, 100, 140000, 0, 1)
	data, err := lcs.Encode(raw)
	require.NoError(t, err)
	expected := sha3.Sum256(append(rawTransactionHashPrefix[:], data...))
	hash, err := raw.Hash()
	require.NoError(t, err)
	assert.Equal(t, expected, hash)
}

func TestSignAndVerify(t *testing.T) {
	kp, err := NewKeyPair(test.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, test.PrivateKey, kp.PrivateKey())

	raw := NewTransferTransaction(kp.Address(), testAddress(t, 0x02), 1, 50, 140000, 0, 1700000000)
	signed, err := raw.Sign(kp)
	require.NoError(t, err)
	assert.Len(t, signed.Signature, SignatureLength)
	assert.Equal(t, kp.PublicKey(), signed.PublicKey)
	require.NoError(t, signed.VerifySignature())

	data, err := lcs.Encode(signed)
	require.NoError(t, err)
	decoded, err := lcs.DecodeRecord[SignedTransaction](data)
	require.NoError(t, err)
	require.NoError(t, decoded.VerifySignature())

	decoded.RawTxn.SequenceNumber++
	require.ErrorIs(t, decoded.VerifySignature(), ErrInvalidSignature)
}

func TestNewKeyPairLength(t *testing.T) {
	_, err := NewKeyPair(test.PrivateKey[:PrivateKeyLength-1])
	var lenErr LengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, PrivateKeyLength, lenErr.Expected)
}

func TestVerifyEd25519RejectsBadKeys(t *testing.T) {
	msg := []byte("message")
	sig := make([]byte, SignatureLength)
	// the identity point is of small order
	identity := make([]byte, PublicKeyLength)
	identity[0] = 0x01
	require.ErrorIs(t, VerifyEd25519(identity, sig, msg), ErrInvalidSignature)
	// y = 2 has no corresponding x on the curve
	notOnCurve := make([]byte, PublicKeyLength)
	notOnCurve[0] = 0x02
	require.ErrorIs(t, VerifyEd25519(notOnCurve, sig, msg), ErrInvalidSignature)

	var lenErr LengthError
	require.ErrorAs(t, VerifyEd25519(identity[:31], sig, msg), &lenErr)
	require.ErrorAs(t, VerifyEd25519(identity, sig[:63], msg), &lenErr)
}
