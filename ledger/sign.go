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
	"crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/golibra/lcs"
	"golang.org/x/crypto/sha3"
)

const (
	PrivateKeyLength = ed25519.SeedSize
	PublicKeyLength  = ed25519.PublicKeySize
	SignatureLength  = ed25519.SignatureSize

	hashSaltSuffix = "@@$$LIBRA$$@@"
)

var rawTransactionHashPrefix = hashPrefix("RawTransaction")

// hashPrefix returns the domain separator for hashing values of the named type
func hashPrefix(typeName string) [32]byte {
	return sha3.Sum256([]byte(typeName + hashSaltSuffix))
}

// Hash returns the signing message of the transaction: the SHA3-256 of the
// RawTransaction domain separator followed by the canonical encoding
func (r *RawTransaction) Hash() ([32]byte, error) {
	data, err := lcs.Encode(r)
	if err != nil {
		return [32]byte{}, err
	}
	h := sha3.New256()
	h.Write(rawTransactionHashPrefix[:])
	h.Write(data)
	var ret [32]byte
	copy(ret[:], h.Sum(nil))
	return ret, nil
}

// Signer produces signatures over transaction hashes
type Signer interface {
	PublicKey() ed25519.PublicKey
	Sign(message []byte) ([]byte, error)
}

// KeyPair is an Ed25519 key pair derived from a private key seed
type KeyPair struct {
	privateKey ed25519.PrivateKey
}

// NewKeyPair derives a key pair from a 32-byte private key
func NewKeyPair(privateKey []byte) (*KeyPair, error) {
	if len(privateKey) != PrivateKeyLength {
		return nil, LengthError{
			Field:    "private key",
			Expected: PrivateKeyLength,
			Actual:   len(privateKey),
		}
	}
	return &KeyPair{privateKey: ed25519.NewKeyFromSeed(privateKey)}, nil
}

// PrivateKey returns the 32-byte private key seed
func (k *KeyPair) PrivateKey() []byte {
	return k.privateKey.Seed()
}

func (k *KeyPair) PublicKey() ed25519.PublicKey {
	return k.privateKey.Public().(ed25519.PublicKey)
}

// Address returns the account address controlled by the key pair
func (k *KeyPair) Address() AccountAddress {
	return AccountAddressFromPublicKey(k.PublicKey())
}

func (k *KeyPair) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(k.privateKey, message), nil
}

// Sign hashes the transaction and signs it with signer
func (r *RawTransaction) Sign(signer Signer) (*SignedTransaction, error) {
	hash, err := r.Hash()
	if err != nil {
		return nil, fmt.Errorf("hash raw transaction: %w", err)
	}
	sig, err := signer.Sign(hash[:])
	if err != nil {
		return nil, fmt.Errorf("sign raw transaction: %w", err)
	}
	return &SignedTransaction{
		RawTxn:    *r,
		PublicKey: signer.PublicKey(),
		Signature: sig,
	}, nil
}

// VerifySignature checks the signature against the public key and the hash of
// the raw transaction
func (s *SignedTransaction) VerifySignature() error {
	hash, err := s.RawTxn.Hash()
	if err != nil {
		return err
	}
	return VerifyEd25519(s.PublicKey, s.Signature, hash[:])
}

// VerifyEd25519 verifies sig over msg. The public key must decode to a curve
// point that is not of small order
func VerifyEd25519(pub, sig, msg []byte) error {
	if len(pub) != PublicKeyLength {
		return LengthError{Field: "public key", Expected: PublicKeyLength, Actual: len(pub)}
	}
	if len(sig) != SignatureLength {
		return LengthError{Field: "signature", Expected: SignatureLength, Actual: len(sig)}
	}
	point, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		return fmt.Errorf("%w: public key is not a curve point", ErrInvalidSignature)
	}
	if new(edwards25519.Point).MultByCofactor(point).Equal(edwards25519.NewIdentityPoint()) == 1 {
		return fmt.Errorf("%w: public key is a small order point", ErrInvalidSignature)
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), msg, sig) {
		return ErrInvalidSignature
	}
	return nil
}
