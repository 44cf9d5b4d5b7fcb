// Package boundary is the embeddable surface of the wallet module. Every
// fallible call returns a uniform envelope instead of an error so a non-Go
// host (the js/wasm entry point in cmd/wasm) can inspect success before
// reading data.
package boundary

import (
	"github.com/minaweb/mina-wallet/internal/codec"
	"github.com/minaweb/mina-wallet/internal/wallet"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Result is the uniform call envelope: exactly one of Data and Error is
// set, and Success tells the host which.
type Result struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func ok(data any) Result {
	return Result{Success: true, Data: data}
}

func fail(msg string) Result {
	return Result{Success: false, Error: &msg}
}

// WalletData is a full wallet export, secret keys included.
type WalletData struct {
	Address         string `json:"address"`
	SecretKeyHex    string `json:"secret_key_hex"`
	SecretKeyBase58 string `json:"secret_key_base58"`
	Network         string `json:"network"`
}

// ValidationData reports an address validity check. Invalid addresses are a
// successful check with Valid=false, not an envelope failure.
type ValidationData struct {
	Valid bool    `json:"valid"`
	Error *string `json:"error"`
}

// PubKeyData is the compressed-point form of an address's public key.
type PubKeyData struct {
	X     string `json:"x"`
	IsOdd bool   `json:"is_odd"`
}

func walletData(w *wallet.Wallet) WalletData {
	return WalletData{
		Address:         w.Address(),
		SecretKeyHex:    w.SecretKeyHex(),
		SecretKeyBase58: w.SecretKeyBase58(),
		Network:         w.Network().Label(),
	}
}

// GenerateWallet creates a random wallet on the given network.
func GenerateWallet(network string) Result {
	net, err := wallet.ParseNetworkID(network)
	if err != nil {
		return fail(err.Error())
	}
	w, err := wallet.New(net)
	if err != nil {
		return fail("Failed to generate wallet: " + err.Error())
	}
	return ok(walletData(w))
}

// ImportWalletFromHex imports a wallet from a hex secret key.
func ImportWalletFromHex(secretHex, network string) Result {
	net, err := wallet.ParseNetworkID(network)
	if err != nil {
		return fail(err.Error())
	}
	w, err := wallet.FromSecretKeyHex(secretHex, net)
	if err != nil {
		return fail("Failed to import wallet: " + err.Error())
	}
	return ok(walletData(w))
}

// ImportWalletFromBase58 imports a wallet from a Base58 secret key.
func ImportWalletFromBase58(secretB58, network string) Result {
	net, err := wallet.ParseNetworkID(network)
	if err != nil {
		return fail(err.Error())
	}
	w, err := wallet.FromSecretKeyBase58(secretB58, net)
	if err != nil {
		return fail("Failed to import wallet: " + err.Error())
	}
	return ok(walletData(w))
}

// ValidateAddress checks whether address is a well-formed Mina address.
func ValidateAddress(address string) Result {
	if err := wallet.ValidateAddress(address); err != nil {
		msg := err.Error()
		return ok(ValidationData{Valid: false, Error: &msg})
	}
	return ok(ValidationData{Valid: true})
}

// AddressToPubKey parses an address into its public key's x-coordinate
// (little-endian hex) and parity bit.
func AddressToPubKey(address string) Result {
	comp, err := codec.AddressComponents(address)
	if err != nil {
		return fail("Invalid address: " + err.Error())
	}
	return ok(PubKeyData{X: comp.X, IsOdd: comp.IsOdd})
}
