// Package render formats wallets for the CLI. Adapters format only; they
// never alter or re-derive wallet data.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minaweb/mina-wallet/internal/wallet"
)

// Format selects a CLI output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// SafetyWarning is printed with every text report that contains a secret key.
const SafetyWarning = "WARNING: Store your secret key securely! Anyone with access to it can control your funds."

// Text renders the human-oriented multi-line wallet report, secret keys
// included.
func Text(w *wallet.Wallet) string {
	var b strings.Builder
	fmt.Fprintln(&b, "Wallet Generated Successfully!")
	fmt.Fprintln(&b, "==============================")
	fmt.Fprintf(&b, "Address:          %s\n", w.Address())
	fmt.Fprintf(&b, "Secret Key (Hex): %s\n", w.SecretKeyHex())
	fmt.Fprintf(&b, "Secret Key (B58): %s\n", w.SecretKeyBase58())
	fmt.Fprintf(&b, "Network:          %s\n", w.Network())
	fmt.Fprintln(&b)
	fmt.Fprint(&b, SafetyWarning)
	return b.String()
}

// walletJSON is the structured form of a full wallet export.
type walletJSON struct {
	Address         string `json:"address"`
	SecretKeyHex    string `json:"secret_key_hex"`
	SecretKeyBase58 string `json:"secret_key_base58"`
	Network         string `json:"network"`
}

// JSON renders the wallet as an indented JSON object. The network field is
// always the lower-case name.
func JSON(w *wallet.Wallet) (string, error) {
	data, err := json.MarshalIndent(walletJSON{
		Address:         w.Address(),
		SecretKeyHex:    w.SecretKeyHex(),
		SecretKeyBase58: w.SecretKeyBase58(),
		Network:         w.Network().Label(),
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Render formats the wallet per the selected format. An unrecognized
// selector falls back to the text form rather than erroring.
func Render(w *wallet.Wallet, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return JSON(w)
	default:
		return Text(w), nil
	}
}
