//go:build js && wasm

// Package main exposes the wallet boundary functions to a JavaScript host.
// Build with GOOS=js GOARCH=wasm; every registered function returns the
// uniform {success, data, error} envelope as a plain JS object.
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/minaweb/mina-wallet/internal/boundary"
)

// toJS marshals an envelope through JSON so the host sees a plain object
// with null for absent data/error, matching the envelope contract.
func toJS(r boundary.Result) js.Value {
	data, err := json.Marshal(r)
	if err != nil {
		return js.Null()
	}
	return js.Global().Get("JSON").Call("parse", string(data))
}

// arg returns the i-th call argument as a string, or "" if missing.
func arg(args []js.Value, i int) string {
	if i >= len(args) || args[i].Type() != js.TypeString {
		return ""
	}
	return args[i].String()
}

func main() {
	js.Global().Set("generate_wallet", js.FuncOf(func(this js.Value, args []js.Value) any {
		return toJS(boundary.GenerateWallet(arg(args, 0)))
	}))
	js.Global().Set("import_wallet_from_hex", js.FuncOf(func(this js.Value, args []js.Value) any {
		return toJS(boundary.ImportWalletFromHex(arg(args, 0), arg(args, 1)))
	}))
	js.Global().Set("import_wallet_from_base58", js.FuncOf(func(this js.Value, args []js.Value) any {
		return toJS(boundary.ImportWalletFromBase58(arg(args, 0), arg(args, 1)))
	}))
	js.Global().Set("validate_address", js.FuncOf(func(this js.Value, args []js.Value) any {
		return toJS(boundary.ValidateAddress(arg(args, 0)))
	}))
	js.Global().Set("address_to_pubkey_components", js.FuncOf(func(this js.Value, args []js.Value) any {
		return toJS(boundary.AddressToPubKey(arg(args, 0)))
	}))
	js.Global().Set("version", js.FuncOf(func(this js.Value, args []js.Value) any {
		return boundary.Version
	}))

	// Keep the runtime alive for host calls.
	select {}
}
