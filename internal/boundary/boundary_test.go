package boundary

import (
	"encoding/json"
	"strings"
	"testing"
)

// mustWalletData unwraps a successful envelope into WalletData.
func mustWalletData(t *testing.T, r Result) WalletData {
	t.Helper()
	if !r.Success {
		t.Fatalf("envelope failed: %v", *r.Error)
	}
	data, ok := r.Data.(WalletData)
	if !ok {
		t.Fatalf("envelope data is %T, want WalletData", r.Data)
	}
	return data
}

// TestGenerateWallet verifies generation and network normalization.
func TestGenerateWallet(t *testing.T) {
	testCases := []struct {
		name    string
		network string
		want    string
	}{
		{name: "mainnet", network: "mainnet", want: "mainnet"},
		{name: "testnet", network: "testnet", want: "testnet"},
		{name: "mixed case", network: "TestNet", want: "testnet"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := mustWalletData(t, GenerateWallet(tc.network))
			if data.Network != tc.want {
				t.Errorf("network = %q, want %q", data.Network, tc.want)
			}
			if !strings.HasPrefix(data.Address, "B62q") {
				t.Errorf("address %s does not start with B62q", data.Address)
			}
		})
	}
}

// TestGenerateWalletBadNetwork verifies the failure envelope shape.
func TestGenerateWalletBadNetwork(t *testing.T) {
	r := GenerateWallet("devnet")
	if r.Success {
		t.Fatal("GenerateWallet succeeded for unknown network")
	}
	if r.Data != nil {
		t.Errorf("failed envelope has data: %v", r.Data)
	}
	if r.Error == nil || *r.Error == "" {
		t.Error("failed envelope missing error string")
	}
}

// TestImportRoundTrip verifies both import paths reproduce the generated
// wallet.
func TestImportRoundTrip(t *testing.T) {
	generated := mustWalletData(t, GenerateWallet("mainnet"))

	t.Run("hex", func(t *testing.T) {
		data := mustWalletData(t, ImportWalletFromHex(generated.SecretKeyHex, "mainnet"))
		if data.Address != generated.Address {
			t.Errorf("address = %s, want %s", data.Address, generated.Address)
		}
	})

	t.Run("base58", func(t *testing.T) {
		data := mustWalletData(t, ImportWalletFromBase58(generated.SecretKeyBase58, "mainnet"))
		if data.Address != generated.Address {
			t.Errorf("address = %s, want %s", data.Address, generated.Address)
		}
	})

	t.Run("cross rejection", func(t *testing.T) {
		if r := ImportWalletFromHex(generated.SecretKeyBase58, "mainnet"); r.Success {
			t.Error("hex import accepted a base58 secret")
		}
		if r := ImportWalletFromBase58(generated.SecretKeyHex, "mainnet"); r.Success {
			t.Error("base58 import accepted a hex secret")
		}
	})
}

// TestValidateAddress verifies the validation envelope: invalid input is a
// successful check with valid=false.
func TestValidateAddress(t *testing.T) {
	generated := mustWalletData(t, GenerateWallet("mainnet"))

	r := ValidateAddress(generated.Address)
	if !r.Success {
		t.Fatalf("envelope failed: %v", *r.Error)
	}
	if data := r.Data.(ValidationData); !data.Valid {
		t.Error("generated address reported invalid")
	}

	r = ValidateAddress("not-an-address")
	if !r.Success {
		t.Fatal("validation of a bad address must still succeed as a check")
	}
	data := r.Data.(ValidationData)
	if data.Valid {
		t.Error("bad address reported valid")
	}
	if data.Error == nil {
		t.Error("invalid result missing detail")
	}
}

// TestAddressToPubKey verifies component extraction and its failure path.
func TestAddressToPubKey(t *testing.T) {
	generated := mustWalletData(t, GenerateWallet("mainnet"))

	r := AddressToPubKey(generated.Address)
	if !r.Success {
		t.Fatalf("envelope failed: %v", *r.Error)
	}
	data := r.Data.(PubKeyData)
	if len(data.X) != 64 {
		t.Errorf("x hex length = %d, want 64", len(data.X))
	}

	r = AddressToPubKey("garbage")
	if r.Success {
		t.Error("AddressToPubKey accepted garbage")
	}
	if r.Error == nil || !strings.HasPrefix(*r.Error, "Invalid address:") {
		t.Errorf("error = %v, want Invalid address prefix", r.Error)
	}
}

// TestEnvelopeJSONShape verifies the serialized envelope matches the host
// contract: success flag plus nullable data/error.
func TestEnvelopeJSONShape(t *testing.T) {
	raw, err := json.Marshal(GenerateWallet("nope"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *string         `json:"error"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Success {
		t.Error("success = true, want false")
	}
	if string(decoded.Data) != "null" {
		t.Errorf("data = %s, want null", decoded.Data)
	}
	if decoded.Error == nil {
		t.Error("error missing from failed envelope")
	}

	raw, err = json.Marshal(GenerateWallet("mainnet"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"secret_key_hex"`) {
		t.Errorf("wallet envelope missing secret_key_hex field: %s", raw)
	}
	if !strings.Contains(string(raw), `"error":null`) {
		t.Errorf("successful envelope must serialize error as null: %s", raw)
	}
}
