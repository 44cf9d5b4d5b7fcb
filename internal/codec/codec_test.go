package codec

import (
	"strings"
	"testing"
)

// TestSecretKeyRoundTrip verifies both secret key encodings survive a
// re-import to an address-identical keypair.
func TestSecretKeyRoundTrip(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair failed: %v", err)
	}

	secretHex, err := kp.SecretHex()
	if err != nil {
		t.Fatalf("SecretHex failed: %v", err)
	}
	secretB58, err := kp.SecretBase58()
	if err != nil {
		t.Fatalf("SecretBase58 failed: %v", err)
	}

	t.Run("hex", func(t *testing.T) {
		if len(secretHex) != 64 {
			t.Errorf("hex secret length = %d, want 64", len(secretHex))
		}
		imported, err := KeypairFromSecretHex(secretHex)
		if err != nil {
			t.Fatalf("KeypairFromSecretHex failed: %v", err)
		}
		if imported.Address() != kp.Address() {
			t.Errorf("address after hex round-trip = %s, want %s", imported.Address(), kp.Address())
		}
	})

	t.Run("base58", func(t *testing.T) {
		imported, err := KeypairFromSecretBase58(secretB58)
		if err != nil {
			t.Fatalf("KeypairFromSecretBase58 failed: %v", err)
		}
		if imported.Address() != kp.Address() {
			t.Errorf("address after base58 round-trip = %s, want %s", imported.Address(), kp.Address())
		}
	})
}

// TestFormatRejectionIndependence verifies neither constructor accepts the
// other encoding.
func TestFormatRejectionIndependence(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair failed: %v", err)
	}
	secretHex, _ := kp.SecretHex()
	secretB58, _ := kp.SecretBase58()

	if _, err := KeypairFromSecretBase58(secretHex); err == nil {
		t.Error("base58 constructor accepted a hex secret")
	}
	if _, err := KeypairFromSecretHex(secretB58); err == nil {
		t.Error("hex constructor accepted a base58 secret")
	}
}

// TestKeypairFromSecretHexRejects verifies malformed hex inputs fail.
func TestKeypairFromSecretHexRejects(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not hex", input: "not-a-key"},
		{name: "odd length", input: strings.Repeat("a", 63)},
		{name: "too short", input: strings.Repeat("ab", 16)},
		{name: "too long", input: strings.Repeat("ab", 40)},
		{name: "out of range", input: strings.Repeat("ff", 32)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := KeypairFromSecretHex(tc.input); err == nil {
				t.Errorf("KeypairFromSecretHex(%q) succeeded, want error", tc.input)
			}
		})
	}
}

// TestKeypairFromSecretBase58Rejects verifies malformed base58 inputs fail.
func TestKeypairFromSecretBase58Rejects(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair failed: %v", err)
	}
	secretB58, _ := kp.SecretBase58()

	// Corrupt the checksum by flipping the final character.
	corrupted := secretB58[:len(secretB58)-1]
	if strings.HasSuffix(secretB58, "1") {
		corrupted += "2"
	} else {
		corrupted += "1"
	}

	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "wrong alphabet", input: "0OIl0OIl0OIl"},
		{name: "truncated", input: secretB58[:len(secretB58)-4]},
		{name: "corrupted checksum", input: corrupted},
		{name: "address instead of secret", input: kp.Address()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := KeypairFromSecretBase58(tc.input); err == nil {
				t.Errorf("KeypairFromSecretBase58(%q) succeeded, want error", tc.input)
			}
		})
	}
}

// TestAddressParseRoundTrip verifies address generation and parsing are
// two-sided inverses.
func TestAddressParseRoundTrip(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair failed: %v", err)
	}
	address := kp.Address()

	if !strings.HasPrefix(address, "B62q") {
		t.Errorf("address %s does not start with B62q", address)
	}

	pub, err := ParseAddress(address)
	if err != nil {
		t.Fatalf("ParseAddress failed: %v", err)
	}
	if got := pub.GenerateAddress(); got != address {
		t.Errorf("re-encoded address = %s, want %s", got, address)
	}
}

// TestValidateAddress verifies validation accepts exactly what parsing
// accepts and is sensitive to single-character corruption.
func TestValidateAddress(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair failed: %v", err)
	}
	address := kp.Address()

	if err := ValidateAddress(address); err != nil {
		t.Fatalf("ValidateAddress(%s) failed: %v", address, err)
	}

	// Flip one character in the middle; the checksum must catch it.
	mid := len(address) / 2
	replacement := byte('7')
	if address[mid] == replacement {
		replacement = '8'
	}
	corrupted := address[:mid] + string(replacement) + address[mid+1:]
	if err := ValidateAddress(corrupted); err == nil {
		t.Errorf("ValidateAddress accepted corrupted address %s", corrupted)
	}

	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "truncated", input: address[:20]},
		{name: "wrong alphabet", input: strings.Repeat("0", len(address))},
		{name: "secret instead of address", input: mustSecretB58(t, kp)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateAddress(tc.input); err == nil {
				t.Errorf("ValidateAddress(%q) succeeded, want error", tc.input)
			}
		})
	}
}

// TestValidateAddressKnownVector checks a known mainnet address accepted by
// the Mina network.
func TestValidateAddressKnownVector(t *testing.T) {
	const address = "B62qiy32p8kAKnny8ZFwoMhYpBppM1DWVCqAPBYNcXnsAHhnfAAuXgg"

	if err := ValidateAddress(address); err != nil {
		t.Fatalf("ValidateAddress(%s) failed: %v", address, err)
	}
	pub, err := ParseAddress(address)
	if err != nil {
		t.Fatalf("ParseAddress failed: %v", err)
	}
	if got := pub.GenerateAddress(); got != address {
		t.Errorf("re-encoded address = %s, want %s", got, address)
	}
}

// TestAddressComponents verifies component extraction matches the parsed key.
func TestAddressComponents(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair failed: %v", err)
	}

	comp, err := AddressComponents(kp.Address())
	if err != nil {
		t.Fatalf("AddressComponents failed: %v", err)
	}
	if len(comp.X) != 64 {
		t.Errorf("x hex length = %d, want 64", len(comp.X))
	}

	if _, err := AddressComponents("not-an-address"); err == nil {
		t.Error("AddressComponents accepted a malformed address")
	}
}

func mustSecretB58(t *testing.T, kp *Keypair) string {
	t.Helper()
	s, err := kp.SecretBase58()
	if err != nil {
		t.Fatalf("SecretBase58 failed: %v", err)
	}
	return s
}
