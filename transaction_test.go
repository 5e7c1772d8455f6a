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

package libra_test

import (
	"crypto/ed25519"
	"encoding/binary"
	"testing"

	libra "github.com/blinklabs-io/golibra"
	"github.com/blinklabs-io/golibra/internal/test"
	"github.com/blinklabs-io/golibra/lcs"
	"github.com/blinklabs-io/golibra/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleParams() libra.TransferParams {
	return libra.TransferParams{
		Sender:             test.FilledBytes(0xaa, ledger.AddressLength),
		Receiver:           test.FilledBytes(0xbb, ledger.AddressLength),
		SequenceNumber:     0,
		Amount:             100000000,
		MaxGasAmount:       1000,
		GasUnitPrice:       123,
		ExpirationTimeSecs: 0,
	}
}

func TestBuildSignedTransactionExample(t *testing.T) {
	buf, err := libra.BuildSignedTransaction(exampleParams(), test.PrivateKey)
	require.NoError(t, err)
	signed, err := libra.SignedTransactionFrom(buf)
	require.NoError(t, err)
	assert.Equal(t, libra.TransactionTypePeerToPeer, signed.RawTxn.Payload.Type)
	assert.Equal(t, uint64(100000000), signed.RawTxn.Payload.Args.Value)
	assert.Equal(t, test.FilledBytes(0xbb, ledger.AddressLength), signed.RawTxn.Payload.Args.Address[:])
}

func TestBuildSignedTransactionRoundTrip(t *testing.T) {
	testDefs := []libra.TransferParams{
		exampleParams(),
		{
			Sender:             test.FilledBytes(0x01, ledger.AddressLength),
			Receiver:           test.FilledBytes(0x02, ledger.AddressLength),
			SequenceNumber:     42,
			Amount:             1,
			MaxGasAmount:       140000,
			GasUnitPrice:       0,
			ExpirationTimeSecs: 1700000000,
		},
		{
			Sender:             test.FilledBytes(0xff, ledger.AddressLength),
			Receiver:           test.FilledBytes(0x00, ledger.AddressLength),
			SequenceNumber:     ^uint64(0),
			Amount:             ^uint64(0),
			MaxGasAmount:       ^uint64(0),
			GasUnitPrice:       ^uint64(0),
			ExpirationTimeSecs: ^uint64(0),
		},
	}
	key, err := libra.AccountKeyFrom(test.PrivateKey)
	require.NoError(t, err)
	for _, params := range testDefs {
		buf, err := libra.BuildSignedTransaction(params, test.PrivateKey)
		require.NoError(t, err)
		signed, err := libra.SignedTransactionFrom(buf)
		require.NoError(t, err)
		raw := signed.RawTxn
		assert.Equal(t, params.Sender, raw.Sender[:])
		assert.Equal(t, params.SequenceNumber, raw.SequenceNumber)
		assert.Equal(t, params.MaxGasAmount, raw.MaxGasAmount)
		assert.Equal(t, params.GasUnitPrice, raw.GasUnitPrice)
		assert.Equal(t, params.ExpirationTimeSecs, raw.ExpirationTimeSecs)
		assert.Equal(t, params.Amount, raw.Payload.Args.Value)
		assert.Equal(t, params.Receiver, raw.Payload.Args.Address[:])
		assert.Equal(t, key.PublicKey, signed.PublicKey)

		decoded, err := lcs.DecodeRecord[ledger.SignedTransaction](buf)
		require.NoError(t, err)
		require.NoError(t, decoded.VerifySignature())
	}
}

func TestBuildSignedTransactionExpirationSeconds(t *testing.T) {
	params := exampleParams()
	params.ExpirationTimeSecs = 1570000000
	buf, err := libra.RawTransactionBytesFrom(params)
	require.NoError(t, err)
	// expiration is the last field of the raw transaction, in seconds
	assert.Equal(t, params.ExpirationTimeSecs, binary.LittleEndian.Uint64(buf[len(buf)-8:]))

	signedBuf, err := libra.BuildSignedTransaction(params, test.PrivateKey)
	require.NoError(t, err)
	signed, err := libra.SignedTransactionFrom(signedBuf)
	require.NoError(t, err)
	assert.Equal(t, uint64(1570000000), signed.RawTxn.ExpirationTimeSecs)
}

func TestBuildSignedTransactionInvalid(t *testing.T) {
	for _, size := range []int{0, 1, 31, 33, 64} {
		params := exampleParams()
		params.Sender = make([]byte, size)
		_, err := libra.BuildSignedTransaction(params, test.PrivateKey)
		assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err), "sender size %d", size)

		params = exampleParams()
		params.Receiver = make([]byte, size)
		_, err = libra.BuildSignedTransaction(params, test.PrivateKey)
		assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err), "receiver size %d", size)

		_, err = libra.BuildSignedTransaction(exampleParams(), make([]byte, size))
		assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err), "key size %d", size)
	}
}

func TestSignedTransactionFromTruncated(t *testing.T) {
	buf, err := libra.BuildSignedTransaction(exampleParams(), test.PrivateKey)
	require.NoError(t, err)
	_, err = libra.SignedTransactionFrom(buf)
	require.NoError(t, err)
	for i := range len(buf) {
		_, err := libra.SignedTransactionFrom(buf[:i])
		require.Error(t, err, "length %d", i)
		assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err))
	}
	_, err = libra.SignedTransactionFrom(append(buf, 0x00))
	assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err))
}

// encodeSigned wraps payload in a transaction signed with the test key and encodes it
func encodeSigned(t *testing.T, payload ledger.TransactionPayload) []byte {
	t.Helper()
	kp, err := ledger.NewKeyPair(test.PrivateKey)
	require.NoError(t, err)
	raw := &ledger.RawTransaction{
		Sender:         kp.Address(),
		SequenceNumber: 3,
		Payload:        payload,
		MaxGasAmount:   1000,
		GasUnitPrice:   1,
		ExpirationTime: 1700000000,
	}
	signed, err := raw.Sign(kp)
	require.NoError(t, err)
	ret, err := lcs.Encode(signed)
	require.NoError(t, err)
	return ret
}

func TestSignedTransactionFromArguments(t *testing.T) {
	receiver, err := ledger.NewAccountAddress(test.FilledBytes(0xbb, ledger.AddressLength))
	require.NoError(t, err)
	other, err := ledger.NewAccountAddress(test.FilledBytes(0xcc, ledger.AddressLength))
	require.NoError(t, err)
	code := ledger.PeerToPeerTransferCode
	testDefs := []struct {
		name    string
		args    []ledger.TransactionArgument
		success bool
	}{
		{
			name:    "transfer",
			args:    []ledger.TransactionArgument{ledger.AddressArgument(receiver), ledger.U64Argument(7)},
			success: true,
		},
		{
			name:    "reversed order",
			args:    []ledger.TransactionArgument{ledger.U64Argument(7), ledger.AddressArgument(receiver)},
			success: true,
		},
		{
			name: "extra kinds ignored",
			args: []ledger.TransactionArgument{
				ledger.StringArgument("memo"),
				ledger.AddressArgument(receiver),
				ledger.ByteArrayArgument{0x01},
				ledger.U64Argument(7),
			},
			success: true,
		},
		{
			name: "missing amount",
			args: []ledger.TransactionArgument{ledger.AddressArgument(receiver)},
		},
		{
			name: "missing receiver",
			args: []ledger.TransactionArgument{ledger.U64Argument(7)},
		},
		{
			name: "no arguments",
		},
		{
			name: "duplicate amount",
			args: []ledger.TransactionArgument{
				ledger.AddressArgument(receiver),
				ledger.U64Argument(7),
				ledger.U64Argument(8),
			},
		},
		{
			name: "duplicate receiver",
			args: []ledger.TransactionArgument{
				ledger.AddressArgument(receiver),
				ledger.AddressArgument(other),
				ledger.U64Argument(7),
			},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			buf := encodeSigned(t, &ledger.ScriptPayload{Code: code, Args: testDef.args})
			signed, err := libra.SignedTransactionFrom(buf)
			if !testDef.success {
				require.Error(t, err)
				assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err))
				assert.Equal(t, libra.SignedTransaction{}, signed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(7), signed.RawTxn.Payload.Args.Value)
			assert.Equal(t, receiver[:], signed.RawTxn.Payload.Args.Address[:])
		})
	}
}

func TestSignedTransactionFromNonScript(t *testing.T) {
	testDefs := []ledger.TransactionPayload{
		&ledger.ProgramPayload{Code: []byte{0x01}},
		&ledger.WriteSetPayload{},
		&ledger.ModulePayload{Code: []byte{0x01}},
	}
	for _, payload := range testDefs {
		_, err := libra.SignedTransactionFrom(encodeSigned(t, payload))
		require.Error(t, err)
		assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err))
		assert.Contains(t, err.Error(), ledger.PayloadKindString(payload))
	}
}

func TestSignRawTransaction(t *testing.T) {
	params := exampleParams()
	kp, err := ledger.NewKeyPair(test.PrivateKey)
	require.NoError(t, err)
	params.Sender = kp.Address().Bytes()
	rawBuf, err := libra.RawTransactionBytesFrom(params)
	require.NoError(t, err)

	raw, err := lcs.DecodeRecord[ledger.RawTransaction](rawBuf)
	require.NoError(t, err)
	hash, err := raw.Hash()
	require.NoError(t, err)
	sig, err := kp.Sign(hash[:])
	require.NoError(t, err)

	signedBuf, err := libra.SignRawTransaction(rawBuf, kp.PublicKey(), sig)
	require.NoError(t, err)
	built, err := libra.BuildSignedTransaction(params, test.PrivateKey)
	require.NoError(t, err)
	// Ed25519 signatures are deterministic
	assert.Equal(t, built, signedBuf)

	badSig := append([]byte{}, sig...)
	badSig[0] ^= 0xff
	_, err = libra.SignRawTransaction(rawBuf, kp.PublicKey(), badSig)
	assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err))
	_, err = libra.SignRawTransaction(rawBuf, kp.PublicKey()[:ed25519.PublicKeySize-1], sig)
	assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err))
	_, err = libra.SignRawTransaction(rawBuf[:len(rawBuf)-1], kp.PublicKey(), sig)
	assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err))
	_, err = libra.SignRawTransaction(nil, kp.PublicKey(), sig)
	assert.Equal(t, libra.StatusInvalidArgument, libra.StatusOf(err))
}
