/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwt

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

// AlgES256K is the only signing algorithm tenant keys use on the network.
const AlgES256K = "ES256K"

const componentLen = 32

// Signer signs compact JWTs with a tenant secp256k1 key. go-jose has no
// ES256K support, so serialization follows RFC 7515 directly; the header
// assembly mirrors what the verifier side of the network expects.
type Signer struct {
	privKey *btcec.PrivateKey
	keyID   string
}

// NewES256KSigner creates a Signer from a raw 32-byte secp256k1 private key.
func NewES256KSigner(privKeyBytes []byte, keyID string) (*Signer, error) {
	if len(privKeyBytes) != componentLen {
		return nil, fmt.Errorf("expected %d byte private key, got %d", componentLen, len(privKeyBytes))
	}

	privKey, _ := btcec.PrivKeyFromBytes(btcec.S256(), privKeyBytes)

	return &Signer{privKey: privKey, keyID: keyID}, nil
}

// KeyID returns the kid placed into signed headers.
func (s *Signer) KeyID() string {
	return s.keyID
}

// PublicKey returns the public half of the signing key.
func (s *Signer) PublicKey() *btcec.PublicKey {
	return s.privKey.PubKey()
}

// SignClaims serializes claims and returns a signed compact JWT with header
// {alg: ES256K, typ: JWT, kid}.
func (s *Signer) SignClaims(claims interface{}) (string, error) {
	headerJSON, err := json.Marshal(map[string]string{
		"alg": AlgES256K,
		"typ": "JWT",
		"kid": s.keyID,
	})
	if err != nil {
		return "", fmt.Errorf("marshal jws header: %w", err)
	}

	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal jwt claims: %w", err)
	}

	signingInput := base64.RawURLEncoding.EncodeToString(headerJSON) +
		"." + base64.RawURLEncoding.EncodeToString(payloadJSON)

	digest := sha256.Sum256([]byte(signingInput))

	signature, err := s.privKey.Sign(digest[:])
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}

	return signingInput + "." + base64.RawURLEncoding.EncodeToString(serializeCompact(signature)), nil
}

// VerifyES256K verifies a decoded token's signature against a secp256k1
// public key. The signature is the r||s form mandated for JOSE.
func VerifyES256K(token *Token, pubKey *btcec.PublicKey) error {
	if token.Header.Algorithm != AlgES256K {
		return fmt.Errorf("unexpected algorithm %q", token.Header.Algorithm)
	}

	if len(token.Signature) != 2*componentLen {
		return fmt.Errorf("expected %d byte signature, got %d", 2*componentLen, len(token.Signature))
	}

	signature := &btcec.Signature{
		R: new(big.Int).SetBytes(token.Signature[:componentLen]),
		S: new(big.Int).SetBytes(token.Signature[componentLen:]),
	}

	digest := sha256.Sum256(token.SigningInput())

	if !signature.Verify(digest[:], pubKey) {
		return fmt.Errorf("jwt signature verification failed")
	}

	return nil
}

// ParsePublicKey parses a compressed or uncompressed secp256k1 public key.
func ParsePublicKey(b []byte) (*btcec.PublicKey, error) {
	pubKey, err := btcec.ParsePubKey(b, btcec.S256())
	if err != nil {
		return nil, fmt.Errorf("parse secp256k1 public key: %w", err)
	}

	return pubKey, nil
}

func serializeCompact(signature *btcec.Signature) []byte {
	out := make([]byte, 2*componentLen)
	signature.R.FillBytes(out[:componentLen])
	signature.S.FillBytes(out[componentLen:])

	return out
}
