// Package address implements the per-coin address encoders (spec.md §4.7):
// P2PKH, P2SH-wrapped P2WPKH, native P2WPKH (Bech32), Ethereum (Keccak-256
// with EIP-55 checksum casing), and Ripple (Base58Check with its own
// alphabet). The Ethereum checksum logic is grounded directly on
// mrz1836-sigil/internal/wallet/derivation.go's toChecksumAddress/
// checksumChar pair; the P2SH-P2WPKH redeem-script construction follows
// BIP-49.
package address

import (
	"encoding/hex"
	"errors"

	"github.com/olehkaliuzhnyi/hdkeyring/pkg/base58"
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/bech32"
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/hash"
)

// ErrInvalidPublicKey is returned when a caller supplies a public key that
// isn't the expected 33-byte compressed encoding.
var ErrInvalidPublicKey = errors.New("address: public key must be 33-byte compressed")

// P2PKH returns Base58Check(version || hash160(pubkey)) — spec.md §4.7, used
// by Bitcoin, Bitcoin Testnet, Litecoin, Dogecoin and Dash.
func P2PKH(pubkey []byte, version byte) (string, error) {
	if len(pubkey) != 33 {
		return "", ErrInvalidPublicKey
	}
	return base58.CheckEncode(version, hash.Hash160(pubkey)), nil
}

// P2SHP2WPKH wraps a P2WPKH witness program in a P2SH redeem script:
// redeem = 0x00 0x14 || hash160(pubkey); address = Base58Check(p2shVersion ||
// hash160(redeem)) — spec.md §4.7, BIP-49.
func P2SHP2WPKH(pubkey []byte, p2shVersion byte) (string, error) {
	if len(pubkey) != 33 {
		return "", ErrInvalidPublicKey
	}
	pubKeyHash := hash.Hash160(pubkey)
	redeem := make([]byte, 0, 22)
	redeem = append(redeem, 0x00, 0x14)
	redeem = append(redeem, pubKeyHash...)
	return base58.CheckEncode(p2shVersion, hash.Hash160(redeem)), nil
}

// P2WPKH returns the native SegWit (BIP-84 / BIP-173) address for pubkey
// under the given human-readable part.
func P2WPKH(pubkey []byte, hrp string) (string, error) {
	if len(pubkey) != 33 {
		return "", ErrInvalidPublicKey
	}
	return bech32.EncodeSegWitAddress(hrp, 0, hash.Hash160(pubkey))
}

// Ripple returns a Ripple classic address: Base58Check(0x00 ||
// hash160(pubkey)) under Ripple's alternate alphabet (spec.md §4.7).
func Ripple(pubkey []byte) (string, error) {
	if len(pubkey) != 33 {
		return "", ErrInvalidPublicKey
	}
	payload := make([]byte, 0, 21)
	payload = append(payload, 0x00)
	payload = append(payload, hash.Hash160(pubkey)...)
	return base58.Ripple.CheckEncode(payload), nil
}

// Ethereum returns the EIP-55 checksummed hex address derived from
// uncompressedPubkey's X||Y coordinates (spec.md §4.7):
// "0x" + checksum(keccak256(pubkey[1:])[12:]).
func Ethereum(uncompressedPubkey []byte) (string, error) {
	if len(uncompressedPubkey) != 65 || uncompressedPubkey[0] != 0x04 {
		return "", ErrInvalidPublicKey
	}
	digest := hash.Keccak256(uncompressedPubkey[1:])
	return toChecksumAddress(digest[12:])
}

// toChecksumAddress converts a 20-byte address to its EIP-55 checksummed
// hex form: capitalize each hex digit whose corresponding Keccak-256
// nibble of the lowercase address string is >= 8.
func toChecksumAddress(addr []byte) (string, error) {
	const addrLen = 20
	if len(addr) != addrLen {
		return "", ErrInvalidPublicKey
	}

	addrHex := hex.EncodeToString(addr)
	digest := hash.Keccak256([]byte(addrHex))

	out := make([]byte, len(addrHex))
	for i := 0; i < len(addrHex); i++ {
		out[i] = checksumChar(addrHex[i], digest[i/2], i%2 == 1)
	}
	return "0x" + string(out), nil
}

// checksumChar applies EIP-55 casing to a single hex character: digits are
// left alone, letters are uppercased when their corresponding nibble of
// hashByte is >= 8.
func checksumChar(c, hashByte byte, lowNibble bool) byte {
	if c >= '0' && c <= '9' {
		return c
	}
	nibble := hashByte >> 4
	if lowNibble {
		nibble = hashByte & 0x0F
	}
	if nibble >= 8 {
		return c - 32
	}
	return c
}

// IsValidChecksumAddress verifies addr ("0x"+40 hex chars) carries correct
// EIP-55 casing.
func IsValidChecksumAddress(addr string) bool {
	if len(addr) != 42 || addr[0:2] != "0x" {
		return false
	}
	raw, err := hex.DecodeString(addr[2:])
	if err != nil || len(raw) != 20 {
		return false
	}
	want, err := toChecksumAddress(raw)
	if err != nil {
		return false
	}
	return want == addr
}
