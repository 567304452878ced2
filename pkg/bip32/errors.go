package bip32

import "errors"

// Error kinds from spec.md §7 that are local to the BIP-32 engine.
var (
	// ErrInvalidSeed is returned when a seed's length is outside [16,64]
	// or HMAC-SHA512("Bitcoin seed", seed) yields an unusable master key.
	ErrInvalidSeed = errors.New("bip32: invalid seed")

	// ErrInvalidPath is returned for a malformed derivation path string.
	ErrInvalidPath = errors.New("bip32: invalid derivation path")

	// ErrDepthExceeded is returned when derivation would push depth past 255.
	ErrDepthExceeded = errors.New("bip32: derivation depth exceeds 255")

	// ErrHardenedFromPublic is returned when a hardened child is
	// requested from a public-only extended key.
	ErrHardenedFromPublic = errors.New("bip32: cannot derive hardened child from public key")

	// ErrDerivationInvalid marks the rare IL>=n or k_i==0 case. BIP-32's
	// Child retries the next index internally; this is only surfaced if
	// every index in the retry window is exhausted.
	ErrDerivationInvalid = errors.New("bip32: derivation produced an invalid key")

	// ErrInvalidExtendedKey is returned for a malformed Base58Check
	// string, wrong decoded length, a version byte matching neither
	// half of the supplied Versions pair, or a private key field that is
	// not a valid scalar.
	ErrInvalidExtendedKey = errors.New("bip32: invalid extended key encoding")

	// ErrPublicKeyOnly is returned when a private-key operation is
	// attempted on a neutered (public-only) extended key.
	ErrPublicKeyOnly = errors.New("bip32: key holds no private material")
)
