package wallet

import (
	"fmt"
	"strings"
)

// NetworkID tags a wallet with the network it is meant for. The tag is a
// display/context label only; it carries no cryptographic meaning and does
// not change key or address derivation.
type NetworkID string

const (
	Mainnet NetworkID = "Mainnet"
	Testnet NetworkID = "Testnet"
)

// ParseNetworkID parses a network name case-insensitively.
func ParseNetworkID(s string) (NetworkID, error) {
	switch strings.ToLower(s) {
	case "mainnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	default:
		return "", fmt.Errorf("invalid network %q. Use 'mainnet' or 'testnet'", s)
	}
}

// Label returns the lower-case form used in JSON and boundary output.
func (n NetworkID) Label() string {
	return strings.ToLower(string(n))
}
