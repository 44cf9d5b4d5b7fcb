// Package wallet implements the Mina wallet core: an immutable keypair plus
// network tag, with validated construction paths and safe display behavior.
// All cryptography is delegated to the codec package.
package wallet

import (
	"fmt"
	"log/slog"

	"github.com/minaweb/mina-wallet/internal/codec"
)

// Wallet is a single keyholder identity bound to a network context.
// Immutable after construction; the public key is always the one derived
// from the secret key by the codec.
type Wallet struct {
	keypair   *codec.Keypair
	network   NetworkID
	address   string
	secretHex string
	secretB58 string
}

// New creates a wallet with a freshly generated random keypair.
func New(network NetworkID) (*Wallet, error) {
	kp, err := codec.GenerateKeypair()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeypairGenerationFailed, err)
	}
	return build(kp, network, ErrKeypairGenerationFailed)
}

// FromSecretKeyHex imports a wallet from a hex-encoded secret key.
// Deterministic: no randomness is consumed.
func FromSecretKeyHex(secretHex string, network NetworkID) (*Wallet, error) {
	kp, err := codec.KeypairFromSecretHex(secretHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretKey, err)
	}
	return build(kp, network, ErrInvalidSecretKey)
}

// FromSecretKeyBase58 imports a wallet from a Base58Check-encoded secret key.
// Deterministic: no randomness is consumed.
func FromSecretKeyBase58(secretB58 string, network NetworkID) (*Wallet, error) {
	kp, err := codec.KeypairFromSecretBase58(secretB58)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretKey, err)
	}
	return build(kp, network, ErrInvalidSecretKey)
}

// Import builds a wallet from a secret key in either encoding, trying hex
// first and Base58 second. First success wins; both constructors are free of
// side effects on failure, so sequential probing is safe.
func Import(secret string, network NetworkID) (*Wallet, error) {
	if w, err := FromSecretKeyHex(secret, network); err == nil {
		return w, nil
	}
	if w, err := FromSecretKeyBase58(secret, network); err == nil {
		return w, nil
	}
	return nil, fmt.Errorf("%w: expected hex (64 chars) or base58 (52 chars)", ErrInvalidSecretKey)
}

// build snapshots the exported forms once so every accessor stays pure.
func build(kp *codec.Keypair, network NetworkID, kind error) (*Wallet, error) {
	secretHex, err := kp.SecretHex()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kind, err)
	}
	secretB58, err := kp.SecretBase58()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kind, err)
	}
	return &Wallet{
		keypair:   kp,
		network:   network,
		address:   kp.Address(),
		secretHex: secretHex,
		secretB58: secretB58,
	}, nil
}

// Address returns the Mina address derived from the public key.
// Network-independent.
func (w *Wallet) Address() string { return w.address }

// SecretKeyHex returns the secret key as 64 hex chars.
// WARNING: exposes the secret key.
func (w *Wallet) SecretKeyHex() string { return w.secretHex }

// SecretKeyBase58 returns the secret key in Base58Check form.
// WARNING: exposes the secret key.
func (w *Wallet) SecretKeyBase58() string { return w.secretB58 }

// Network returns the wallet's network tag.
func (w *Wallet) Network() NetworkID { return w.network }

// Keypair returns the underlying keypair.
func (w *Wallet) Keypair() *codec.Keypair { return w.keypair }

// Info is the safely-shareable projection of a wallet. It has no field
// capable of holding a secret.
type Info struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

// Info redacts the wallet down to its shareable fields.
func (w *Wallet) Info() Info {
	return Info{Address: w.address, Network: w.network.Label()}
}

// String renders the wallet as its address. Secret keys never appear in
// String, LogValue, or Info output.
func (w *Wallet) String() string { return w.address }

// LogValue keeps slog output limited to address and network.
func (w *Wallet) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("address", w.address),
		slog.String("network", w.network.Label()),
	)
}

// ValidateAddress reports whether address is a well-formed Mina address.
// Pure; accepts exactly the strings the codec can parse into a public key.
func ValidateAddress(address string) error {
	if err := codec.ValidateAddress(address); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return nil
}
