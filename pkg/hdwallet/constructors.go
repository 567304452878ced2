package hdwallet

import "github.com/olehkaliuzhnyi/hdkeyring/pkg/coins"

// NewBip44 builds the master node of a BIP-0044 tree for coin from seed.
func NewBip44(seed []byte, coin *coins.Coin) (*Wallet, error) {
	return NewFromSeed(seed, Bip44, coin)
}

// NewBip49 builds the master node of a BIP-0049 tree for coin from seed.
func NewBip49(seed []byte, coin *coins.Coin) (*Wallet, error) {
	return NewFromSeed(seed, Bip49, coin)
}

// NewBip84 builds the master node of a BIP-0084 tree for coin from seed.
func NewBip84(seed []byte, coin *coins.Coin) (*Wallet, error) {
	return NewFromSeed(seed, Bip84, coin)
}
