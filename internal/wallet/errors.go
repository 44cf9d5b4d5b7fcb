package wallet

import "errors"

// Sentinel errors for wallet operations. Callers match with errors.Is;
// the wrapped detail carries the underlying codec failure.
var (
	// ErrInvalidSecretKey means the supplied secret key text could not be
	// decoded, or decoded to a scalar the curve library rejects.
	ErrInvalidSecretKey = errors.New("invalid secret key")

	// ErrInvalidAddress means the supplied address failed structural or
	// checksum validation.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrSigningFailed is reserved for future signing operations.
	// No current operation returns it.
	ErrSigningFailed = errors.New("signing failed")

	// ErrKeypairGenerationFailed means the secure random source failed
	// while generating a keypair. Safe to retry: generation has no side
	// effects on failure.
	ErrKeypairGenerationFailed = errors.New("keypair generation failed")
)
