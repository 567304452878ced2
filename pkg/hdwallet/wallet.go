package hdwallet

import (
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/address"
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/bip32"
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/coins"
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/ec"
)

// stage tracks which step of m/purpose'/coin_type'/account'/change/address_index
// a Wallet is at, so calling a step out of order fails with ErrWrongDepth
// rather than silently deriving from the wrong parent.
type stage int

const (
	stageMaster stage = iota
	stagePurpose
	stageCoin
	stageAccount
	stageChange
	stageAddressIndex
)

// Wallet is a single node in a BIP-44-family derivation tree: a BIP-32
// extended key plus the Purpose policy and Coin descriptor governing how
// it was (or will be) derived further.
type Wallet struct {
	key     *bip32.ExtendedKey
	purpose *Purpose
	coin    *coins.Coin
	stage   stage
}

// NewFromSeed builds the master Wallet node for purpose over coin from a
// BIP-39 seed (spec.md §4.8 "Bip44::from_seed(coin)"). The seed is passed
// to bip32.FromSeed under the purpose's version-byte pair for coin.
func NewFromSeed(seed []byte, purpose *Purpose, coin *coins.Coin) (*Wallet, error) {
	if !purpose.IsCoinAllowed(coin) {
		return nil, ErrCoinNotAllowed
	}
	versions := purpose.versions(coin)
	master, err := bip32.FromSeed(seed, versions)
	if err != nil {
		return nil, err
	}
	return &Wallet{key: master, purpose: purpose, coin: coin, stage: stageMaster}, nil
}

func (w *Wallet) derive(index uint32, want stage) (*Wallet, error) {
	if w.stage != want-1 {
		return nil, ErrWrongDepth
	}
	child, err := w.key.Child(index)
	if err != nil {
		return nil, err
	}
	return &Wallet{key: child, purpose: w.purpose, coin: w.coin, stage: want}, nil
}

// Purpose derives m/purpose' (spec.md §4.8).
func (w *Wallet) Purpose() (*Wallet, error) {
	return w.derive(bip32.Hardened(w.purpose.index), stagePurpose)
}

// Coin derives m/purpose'/coin_type'.
func (w *Wallet) Coin() (*Wallet, error) {
	return w.derive(bip32.Hardened(w.coin.CoinType), stageCoin)
}

// Account derives m/purpose'/coin_type'/account'.
func (w *Wallet) Account(accountIndex uint32) (*Wallet, error) {
	return w.derive(bip32.Hardened(accountIndex), stageAccount)
}

// Change derives m/purpose'/coin_type'/account'/change.
func (w *Wallet) Change(change Change) (*Wallet, error) {
	return w.derive(uint32(change), stageChange)
}

// AddressIndex derives m/purpose'/coin_type'/account'/change/address_index.
func (w *Wallet) AddressIndex(index uint32) (*Wallet, error) {
	return w.derive(index, stageAddressIndex)
}

// DeriveDefaultAccount walks Purpose -> Coin -> Account(0) -> Change(external)
// -> AddressIndex(index) in one call, the common case of spec.md §4.8's
// worked example.
func (w *Wallet) DeriveDefaultAccount(index uint32) (*Wallet, error) {
	p, err := w.Purpose()
	if err != nil {
		return nil, err
	}
	c, err := p.Coin()
	if err != nil {
		return nil, err
	}
	a, err := c.Account(0)
	if err != nil {
		return nil, err
	}
	ch, err := a.Change(ChangeExternal)
	if err != nil {
		return nil, err
	}
	return ch.AddressIndex(index)
}

// PublicKey returns the 33-byte compressed public key at the current node.
func (w *Wallet) PublicKey() []byte { return w.key.PublicKeyBytes() }

// PrivateKey returns the 32-byte private scalar, or ErrPublicKeyOnly (via
// pkg/bip32) if the node has been neutered.
func (w *Wallet) PrivateKey() ([]byte, error) { return w.key.PrivateKeyBytes() }

// PrivateKeyWIF returns the Wallet Import Format string for the current
// node's private key, under the coin's WIF version byte (spec.md §6).
func (w *Wallet) PrivateKeyWIF() (string, error) {
	return w.key.WIF(w.coin.WIFVersion)
}

// ExtendedPublicKey returns the Base58Check-serialized public extended key.
func (w *Wallet) ExtendedPublicKey() string { return w.key.Neuter().String() }

// ExtendedPrivateKey returns the Base58Check-serialized private extended
// key, or ErrPublicKeyOnly if neutered.
func (w *Wallet) ExtendedPrivateKey() (string, error) {
	if !w.key.IsPrivate() {
		return "", bip32.ErrPublicKeyOnly
	}
	return w.key.String(), nil
}

// Neuter returns a Wallet holding only the public half of the current key.
func (w *Wallet) Neuter() *Wallet {
	return &Wallet{key: w.key.Neuter(), purpose: w.purpose, coin: w.coin, stage: w.stage}
}

// Address renders the current node's public key under the address family
// the purpose (or, for BIP-44, the coin) specifies.
func (w *Wallet) Address() (string, error) {
	family := w.purpose.family
	if family == "" {
		family = w.coin.Family
	}

	pub := w.PublicKey()
	switch family {
	case coins.P2PKH:
		return address.P2PKH(pub, w.coin.P2PKHVersion)
	case coins.P2SHP2WPKH:
		return address.P2SHP2WPKH(pub, w.coin.P2SHVersion)
	case coins.P2WPKH:
		return address.P2WPKH(pub, w.coin.Bech32HRP)
	case coins.Ethereum:
		uncompressed, err := ec.Uncompress(pub)
		if err != nil {
			return "", err
		}
		return address.Ethereum(uncompressed)
	case coins.Ripple:
		return address.Ripple(pub)
	default:
		return "", ErrUnsupportedAddressFamily
	}
}
