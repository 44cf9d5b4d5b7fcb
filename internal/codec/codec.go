// Package codec binds the external Mina cryptography used by the wallet.
// Keypair generation, public-key derivation, and address encode/parse are
// delegated to kryptology's Mina Schnorr package; the versioned Base58Check
// byte layouts for secret keys and addresses go through btcutil's base58.
// Nothing in this package implements curve or checksum math itself.
package codec

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/coinbase/kryptology/pkg/signatures/schnorr/mina"
)

// Base58Check version bytes of the Mina key formats.
// Secret keys render with an "EK" prefix, addresses with "B62q".
const (
	secretKeyVersion byte = 0x5A
	addressVersion   byte = 0xCB
)

const scalarLen = 32

// Keypair holds a secret/public key pair on the Pallas curve.
// The secret key stays in memory and is never exposed except through the
// explicit SecretHex/SecretBase58 exporters.
type Keypair struct {
	pub *mina.PublicKey
	sec *mina.SecretKey
}

// GenerateKeypair creates a new random keypair. Randomness comes from
// crypto/rand inside the signing library.
func GenerateKeypair() (*Keypair, error) {
	pub, sec, err := mina.NewKeys()
	if err != nil {
		return nil, fmt.Errorf("keypair generation: %w", err)
	}
	return &Keypair{pub: pub, sec: sec}, nil
}

// KeypairFromSecretHex parses a 64-character big-endian hex scalar and
// derives the matching public key.
func KeypairFromSecretHex(s string) (*Keypair, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("secret key is not valid hex: %w", err)
	}
	if len(raw) != scalarLen {
		return nil, fmt.Errorf("secret key must be %d hex chars, got %d", scalarLen*2, len(s))
	}
	return keypairFromScalarBytes(raw)
}

// KeypairFromSecretBase58 parses a Base58Check secret key (version byte 0x5A,
// payload 0x01 followed by the little-endian scalar) and derives the matching
// public key.
func KeypairFromSecretBase58(s string) (*Keypair, error) {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return nil, fmt.Errorf("secret key is not valid base58check: %w", err)
	}
	if version != secretKeyVersion {
		return nil, fmt.Errorf("wrong secret key version byte 0x%02X", version)
	}
	if len(payload) != scalarLen+1 || payload[0] != 0x01 {
		return nil, errors.New("malformed secret key payload")
	}
	// Payload scalar is little-endian; the signing library wants big-endian.
	return keypairFromScalarBytes(reverse(payload[1:]))
}

// keypairFromScalarBytes builds a keypair from big-endian scalar bytes.
// The signing library rejects scalars outside the Pallas scalar field.
func keypairFromScalarBytes(raw []byte) (*Keypair, error) {
	sec := new(mina.SecretKey)
	if err := sec.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("secret key out of range: %w", err)
	}
	pub := sec.GetPublicKey()
	if pub == nil {
		return nil, errors.New("public key derivation failed")
	}
	return &Keypair{pub: pub, sec: sec}, nil
}

// Address returns the Base58Check Mina address of the public key.
// Deterministic and independent of any network tag.
func (k *Keypair) Address() string {
	return k.pub.GenerateAddress()
}

// PublicKey returns the underlying public key.
func (k *Keypair) PublicKey() *mina.PublicKey {
	return k.pub
}

// SecretHex returns the secret key as 64 lower-case hex chars (big-endian).
// WARNING: this exposes the secret key. Only call when the caller explicitly
// asked for an export.
func (k *Keypair) SecretHex() (string, error) {
	raw, err := k.sec.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("secret key encoding: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// SecretBase58 returns the secret key in Mina's Base58Check form.
// WARNING: this exposes the secret key. Only call when the caller explicitly
// asked for an export.
func (k *Keypair) SecretBase58() (string, error) {
	raw, err := k.sec.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("secret key encoding: %w", err)
	}
	payload := make([]byte, 0, scalarLen+1)
	payload = append(payload, 0x01)
	payload = append(payload, reverse(raw)...)
	return base58.CheckEncode(payload, secretKeyVersion), nil
}

// ParseAddress decodes a Mina address into its public key. The signing
// library checks the checksum, the version bytes, and that the decompressed
// point lies on the curve.
func ParseAddress(address string) (*mina.PublicKey, error) {
	pub := new(mina.PublicKey)
	if err := pub.ParseAddress(address); err != nil {
		return nil, fmt.Errorf("parse address: %w", err)
	}
	return pub, nil
}

// ValidateAddress reports whether address is a well-formed Mina address.
// Accepts exactly the strings ParseAddress accepts.
func ValidateAddress(address string) error {
	_, err := ParseAddress(address)
	return err
}

// PubKeyComponents is the raw compressed-point form of a public key:
// the x-coordinate as little-endian hex plus the y parity bit.
type PubKeyComponents struct {
	X     string
	IsOdd bool
}

// AddressComponents parses a Mina address and extracts the compressed-point
// components from its checked payload. This is the only place the curve-point
// representation is exposed rather than the address encoding.
func AddressComponents(address string) (PubKeyComponents, error) {
	if err := ValidateAddress(address); err != nil {
		return PubKeyComponents{}, err
	}
	payload, version, err := base58.CheckDecode(address)
	if err != nil {
		return PubKeyComponents{}, fmt.Errorf("decode address: %w", err)
	}
	if version != addressVersion || len(payload) != scalarLen+3 {
		return PubKeyComponents{}, errors.New("malformed address payload")
	}
	return PubKeyComponents{
		X:     hex.EncodeToString(payload[2 : 2+scalarLen]),
		IsOdd: payload[2+scalarLen] == 0x01,
	}, nil
}

// reverse returns a copy of b in reverse byte order.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
