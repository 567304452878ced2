// Package coins holds the per-coin descriptor registry (spec.md §6): BIP-44
// coin-type index, the BIP-32/49/84 extended-key version-byte pairs, the
// P2PKH/P2SH version bytes, the Bech32 HRP, the WIF version byte, and which
// address family a coin uses. The registry is a plain map literal, the same
// shape the teacher's pkg/models uses for its Network descriptor.
package coins

import (
	"errors"

	"github.com/olehkaliuzhnyi/hdkeyring/pkg/bip32"
)

// AddressFamily identifies which address-encoding scheme a coin uses.
type AddressFamily string

const (
	P2PKH      AddressFamily = "p2pkh"
	P2SHP2WPKH AddressFamily = "p2sh_p2wpkh"
	P2WPKH     AddressFamily = "p2wpkh"
	Ethereum   AddressFamily = "ethereum"
	Ripple     AddressFamily = "ripple"
)

// ErrUnknownCoin is returned by Lookup for a name not in the registry.
var ErrUnknownCoin = errors.New("coins: unknown coin")

// Coin is the immutable per-coin descriptor (spec.md §3 "Coin Descriptor").
type Coin struct {
	Name     string
	CoinType uint32 // BIP-44 coin_type, unhardened; callers hardening it themselves

	// Bip32/Bip49/Bip84 are the extended-key version-byte pairs for each
	// purpose. A zero Versions value means the coin has no registry entry
	// for that purpose (e.g. Dogecoin has no BIP-49/84 entry).
	Bip32 bip32.Versions
	Bip49 bip32.Versions
	Bip84 bip32.Versions

	P2PKHVersion byte
	P2SHVersion  byte
	WIFVersion   byte
	Bech32HRP    string // empty if the coin has no SegWit bech32 address family

	Family AddressFamily
}

func versions(priv, pub uint32) bip32.Versions {
	return bip32.Versions{
		Priv: be32(priv),
		Pub:  be32(pub),
	}
}

func be32(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// Bitcoin, BitcoinTestnet, Litecoin, Dogecoin, Dash, EthereumCoin and
// RippleCoin are the registry entries from spec.md §6's version-byte table.
var (
	Bitcoin = Coin{
		Name:         "bitcoin",
		CoinType:     0,
		Bip32:        versions(0x0488ADE4, 0x0488B21E),
		Bip49:        versions(0x049D7878, 0x049D7CB2),
		Bip84:        versions(0x04B2430C, 0x04B24746),
		P2PKHVersion: 0x00,
		P2SHVersion:  0x05,
		WIFVersion:   0x80,
		Bech32HRP:    "bc",
		Family:       P2PKH,
	}

	BitcoinTestnet = Coin{
		Name:         "bitcoin-testnet",
		CoinType:     1,
		Bip32:        versions(0x04358394, 0x043587CF),
		Bip49:        versions(0x044A4E28, 0x044A5262),
		Bip84:        versions(0x045F18BC, 0x045F1CF6),
		P2PKHVersion: 0x6F,
		P2SHVersion:  0xC4,
		WIFVersion:   0xEF,
		Bech32HRP:    "tb",
		Family:       P2PKH,
	}

	Litecoin = Coin{
		Name:         "litecoin",
		CoinType:     2,
		Bip32:        versions(0x0488ADE4, 0x0488B21E),
		Bip49:        versions(0x01B26792, 0x01B26EF6),
		Bip84:        versions(0x04B2430C, 0x04B24746),
		P2PKHVersion: 0x30,
		P2SHVersion:  0x32,
		WIFVersion:   0xB0,
		Bech32HRP:    "ltc",
		Family:       P2PKH,
	}

	// LitecoinTestnet is not in spec.md's registry table but is needed for
	// S6 (spec.md §8): BIP-84 must allow Litecoin-testnet. Its BIP-32 pair
	// is Litecoin testnet's ttpv/ttub (0x0436EF7D/0x0436F6E1), its BIP-84
	// pair is Bitcoin testnet's vprv/vpub (0x045F18BC/0x045F1CF6), and its
	// P2PKH/P2SH/WIF bytes are Bitcoin testnet's. It has no BIP-49 pair.
	LitecoinTestnet = Coin{
		Name:         "litecoin-testnet",
		CoinType:     1,
		Bip32:        versions(0x0436ef7d, 0x0436f6e1),
		Bip84:        versions(0x045f18bc, 0x045f1cf6),
		P2PKHVersion: 0x6F,
		P2SHVersion:  0xC4,
		WIFVersion:   0xEF,
		Bech32HRP:    "tltc",
		Family:       P2PKH,
	}

	Dogecoin = Coin{
		Name:         "dogecoin",
		CoinType:     3,
		Bip32:        versions(0x02FAC398, 0x02FACAFD),
		P2PKHVersion: 0x1E,
		P2SHVersion:  0x16,
		WIFVersion:   0x9E,
		Family:       P2PKH,
	}

	Dash = Coin{
		Name:         "dash",
		CoinType:     5,
		Bip32:        versions(0x0488ADE4, 0x0488B21E),
		P2PKHVersion: 0x4C,
		P2SHVersion:  0x10,
		WIFVersion:   0xCC,
		Family:       P2PKH,
	}

	EthereumCoin = Coin{
		Name:     "ethereum",
		CoinType: 60,
		Bip32:    versions(0x0488ADE4, 0x0488B21E),
		Family:   Ethereum,
	}

	RippleCoin = Coin{
		Name:     "ripple",
		CoinType: 144,
		Bip32:    versions(0x0488ADE4, 0x0488B21E),
		Family:   Ripple,
	}
)

// registry indexes every Coin above by name for Lookup.
var registry = map[string]*Coin{
	Bitcoin.Name:         &Bitcoin,
	BitcoinTestnet.Name:  &BitcoinTestnet,
	Litecoin.Name:        &Litecoin,
	LitecoinTestnet.Name: &LitecoinTestnet,
	Dogecoin.Name:        &Dogecoin,
	Dash.Name:            &Dash,
	EthereumCoin.Name:    &EthereumCoin,
	RippleCoin.Name:      &RippleCoin,
}

// Lookup returns the registered Coin for name, or ErrUnknownCoin.
func Lookup(name string) (*Coin, error) {
	c, ok := registry[name]
	if !ok {
		return nil, ErrUnknownCoin
	}
	return c, nil
}

// HasBip49 reports whether c has a registered BIP-49 (P2SH-P2WPKH) version pair.
func (c *Coin) HasBip49() bool { return c.Bip49 != (bip32.Versions{}) }

// HasBip84 reports whether c has a registered BIP-84 (native SegWit) version pair.
func (c *Coin) HasBip84() bool { return c.Bip84 != (bip32.Versions{}) }
