// Package hdwallet implements the generic BIP-44/49/84 purpose-policy
// engine spec.md §9's redesign note calls for: one engine parameterized by
// a purpose descriptor (purpose index, version-byte selector, address
// family, allowed-coin set) instead of three near-identical class
// hierarchies. The shape follows the original Python bip_utils package
// (bip84.py's Bip84Const + Bip44Base split into Purpose/Coin/Account/
// Change/AddressIndex steps), reimplemented here as a single Wallet type
// driven by a Purpose record rather than a subclass per BIP.
package hdwallet

import (
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/bip32"
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/coins"
)

// Change selects the external (receiving) or internal (change) chain at
// the BIP-44 "change" derivation step.
type Change uint32

const (
	ChangeExternal Change = 0
	ChangeInternal Change = 1
)

// versionSelector picks which of a Coin's version-byte pairs a purpose
// serializes extended keys under.
type versionSelector func(*coins.Coin) bip32.Versions

// Purpose is the policy record describing one BIP-44-family specification:
// its hardened purpose index, which Versions pair of a Coin it uses, which
// address family it produces (or "" to defer to the coin's own family,
// as BIP-44 does for Ethereum/Ripple), and which coins it permits.
type Purpose struct {
	name         string
	index        uint32
	versions     versionSelector
	family       coins.AddressFamily
	allowedCoins map[string]bool
}

// SpecName returns the specification name ("BIP-0044", "BIP-0049" or
// "BIP-0084").
func (p *Purpose) SpecName() string { return p.name }

// IsCoinAllowed reports whether c may be used under p.
func (p *Purpose) IsCoinAllowed(c *coins.Coin) bool { return p.allowedCoins[c.Name] }

func allCoins(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Bip44 is BIP-0044: legacy P2PKH (or the coin's own family — Ethereum and
// Ripple have no P2PKH notion and use BIP-44 exclusively), allowing every
// registered coin.
var Bip44 = &Purpose{
	name:     "BIP-0044",
	index:    44,
	versions: func(c *coins.Coin) bip32.Versions { return c.Bip32 },
	family:   "", // defer to the coin's own AddressFamily
	allowedCoins: allCoins(
		coins.Bitcoin.Name, coins.BitcoinTestnet.Name,
		coins.Litecoin.Name, coins.LitecoinTestnet.Name,
		coins.Dogecoin.Name, coins.Dash.Name,
		coins.EthereumCoin.Name, coins.RippleCoin.Name,
	),
}

// Bip49 is BIP-0049: P2SH-wrapped P2WPKH, restricted to coins with a
// registered BIP-49 version pair.
var Bip49 = &Purpose{
	name:     "BIP-0049",
	index:    49,
	versions: func(c *coins.Coin) bip32.Versions { return c.Bip49 },
	family:   coins.P2SHP2WPKH,
	allowedCoins: allCoins(
		coins.Bitcoin.Name, coins.BitcoinTestnet.Name, coins.Litecoin.Name,
	),
}

// Bip84 is BIP-0084: native SegWit P2WPKH, restricted the same way the
// original bip_utils Bip84Const.ALLOWED_COINS does: Bitcoin, Bitcoin
// Testnet, Litecoin and Litecoin Testnet (spec.md §8 S6).
var Bip84 = &Purpose{
	name:     "BIP-0084",
	index:    84,
	versions: func(c *coins.Coin) bip32.Versions { return c.Bip84 },
	family:   coins.P2WPKH,
	allowedCoins: allCoins(
		coins.Bitcoin.Name, coins.BitcoinTestnet.Name,
		coins.Litecoin.Name, coins.LitecoinTestnet.Name,
	),
}
