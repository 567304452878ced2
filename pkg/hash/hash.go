// Package hash collects the byte-exact digest primitives the derivation
// tree and address encoders build on: SHA-256, HMAC-SHA-512, RIPEMD-160,
// Hash160 and Keccak-256.
package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is required by Hash160
	"golang.org/x/crypto/sha3"
)

// SHA256 returns the SHA-256 digest of b.
func SHA256(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// DoubleSHA256 returns SHA256(SHA256(b)), as used by Base58Check and WIF.
func DoubleSHA256(b []byte) []byte {
	return SHA256(SHA256(b))
}

// RIPEMD160 returns the RIPEMD-160 digest of b.
func RIPEMD160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(b) //nolint:errcheck // hash.Hash.Write never returns an error
	return h.Sum(nil)
}

// Hash160 returns RIPEMD160(SHA256(b)), the digest behind every P2PKH/
// P2SH/P2WPKH pubkey-hash.
func Hash160(b []byte) []byte {
	return RIPEMD160(SHA256(b))
}

// HMACSHA512 returns HMAC-SHA512(key, msg), the primitive behind BIP-32
// master-key generation and child-key derivation.
func HMACSHA512(key, msg []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(msg) //nolint:errcheck // hash.Hash.Write never returns an error
	return mac.Sum(nil)
}

// Keccak256 returns the Keccak-256 digest of b (the Ethereum/EIP-55
// variant, not NIST SHA3-256).
func Keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b) //nolint:errcheck // hash.Hash.Write never returns an error
	return h.Sum(nil)
}
